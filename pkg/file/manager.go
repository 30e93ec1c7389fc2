// Copyright 2025 walteh LLC
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package file

import (
	"context"
	"io"
	"os"
	"path/filepath"

	"github.com/rs/zerolog"
	"gitlab.com/tozd/go/errors"
)

// 💾 Manager reads and rewrites text files below a base directory
type Manager struct {
	baseDir string
}

// 🏭 NewManager creates a manager rooted at baseDir
func NewManager(baseDir string) *Manager {
	return &Manager{
		baseDir: filepath.Clean(baseDir),
	}
}

// 🔒 getAbsPath returns the path joined to the base directory, absolute paths are kept
func (m *Manager) getAbsPath(path string) string {
	if filepath.IsAbs(path) {
		return filepath.Clean(path)
	}
	return filepath.Join(m.baseDir, path)
}

// ReadFile loads the whole file into memory. The handle is released before returning.
func (m *Manager) ReadFile(ctx context.Context, path string) ([]byte, error) {
	absPath := m.getAbsPath(path)
	zerolog.Ctx(ctx).Debug().Str("path", absPath).Msg("reading file")

	f, err := os.Open(absPath)
	if err != nil {
		return nil, accessError(OpRead, path, err)
	}
	defer f.Close()

	content, err := io.ReadAll(f)
	if err != nil {
		return nil, accessError(OpRead, path, err)
	}

	return content, nil
}

// WriteFileAtomic replaces the content of an existing, writable file. The new content is
// written to a temp file next to the target and renamed over it, so a failed write
// leaves the original untouched. Symlinks are resolved first so the linked file is
// the one replaced and the link itself survives.
func (m *Manager) WriteFileAtomic(ctx context.Context, path string, content []byte) error {
	absPath, err := filepath.EvalSymlinks(m.getAbsPath(path))
	if err != nil {
		return accessError(OpWrite, path, err)
	}
	logger := zerolog.Ctx(ctx)
	logger.Debug().Str("path", absPath).Int("bytes", len(content)).Msg("writing file")

	info, err := os.Stat(absPath)
	if err != nil {
		return accessError(OpWrite, path, err)
	}

	// permission probe, no truncation
	probe, err := os.OpenFile(absPath, os.O_WRONLY, 0)
	if err != nil {
		return accessError(OpWrite, path, err)
	}
	if err := probe.Close(); err != nil {
		return accessError(OpWrite, path, err)
	}

	tmp, err := os.CreateTemp(filepath.Dir(absPath), "."+filepath.Base(absPath)+".*.tmp")
	if err != nil {
		return accessError(OpWrite, path, err)
	}
	tempPath := tmp.Name()

	if err := writeAndClose(tmp, content, info.Mode().Perm()); err != nil {
		os.Remove(tempPath)
		return accessError(OpWrite, path, err)
	}

	if err := os.Rename(tempPath, absPath); err != nil {
		os.Remove(tempPath)
		return accessError(OpWrite, path, errors.Errorf("renaming temp file: %w", err))
	}

	return nil
}

func writeAndClose(f *os.File, content []byte, mode os.FileMode) error {
	if _, err := f.Write(content); err != nil {
		f.Close()
		return errors.Errorf("writing temp file: %w", err)
	}
	if err := f.Chmod(mode); err != nil {
		f.Close()
		return errors.Errorf("setting temp file mode: %w", err)
	}
	if err := f.Sync(); err != nil {
		f.Close()
		return errors.Errorf("syncing temp file: %w", err)
	}
	if err := f.Close(); err != nil {
		return errors.Errorf("closing temp file: %w", err)
	}
	return nil
}
