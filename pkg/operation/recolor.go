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

package operation

import (
	"bytes"
	"context"
	"path/filepath"

	"github.com/rs/zerolog"
	"github.com/walteh/recolor/pkg/file"
	"github.com/walteh/recolor/pkg/log"
	"github.com/walteh/recolor/pkg/status"
	"github.com/walteh/recolor/pkg/text"
	"gitlab.com/tozd/go/errors"
)

// DefaultTargetPath is the stylesheet rewritten by a run, relative to the working directory
var DefaultTargetPath = filepath.Join("FE", "FE-EVRental", "src", "styles", "Staff.css")

const (
	SuccessMessage = "Đã thay đổi màu thành công!"
	SummaryMessage = "Tím/Xanh dương → Xanh lá cây nhạt"
)

// 🔧 Options contains the dependencies of a recolor run.
// Path and Rules are left empty by the command; tests set them to point a run elsewhere.
type Options struct {
	// Path is the target file, DefaultTargetPath when empty
	Path string
	// Rules are applied in order, text.ColorRules() when nil
	Rules []text.ReplacementRule
	// Files reads and writes the target
	Files *file.Manager
	// Console receives the confirmation lines
	Console *log.Logger
}

// 🎨 Recolor rewrites one stylesheet with a fixed rule set
type Recolor struct {
	path    string
	rules   []text.ReplacementRule
	files   *file.Manager
	console *log.Logger
}

// 🏭 New creates a recolor operation with the given options
func New(opts Options) (*Recolor, error) {
	if opts.Files == nil {
		return nil, errors.Errorf("file manager is required")
	}
	if opts.Console == nil {
		return nil, errors.Errorf("console is required")
	}

	path := opts.Path
	if path == "" {
		path = DefaultTargetPath
	}

	rules := opts.Rules
	if rules == nil {
		rules = text.ColorRules()
	}
	if err := text.ValidateRules(rules); err != nil {
		return nil, errors.Errorf("validating rules: %w", err)
	}

	return &Recolor{
		path:    path,
		rules:   append([]text.ReplacementRule(nil), rules...),
		files:   opts.Files,
		console: opts.Console,
	}, nil
}

// Path returns the target file
func (r *Recolor) Path() string {
	return r.path
}

// 🏃 Execute runs the read, replace, write pass and prints the confirmation lines
func (r *Recolor) Execute(ctx context.Context) (*text.ReplacementResult, error) {
	logger := zerolog.Ctx(ctx).With().Str("path", r.path).Logger()
	ctx = logger.WithContext(ctx)

	content, err := r.files.ReadFile(ctx, r.path)
	if err != nil {
		return nil, errors.Errorf("reading stylesheet: %w", err)
	}

	result, err := text.ReplaceText(ctx, bytes.NewReader(content), r.rules)
	if err != nil {
		return nil, errors.Errorf("replacing colors: %w", err)
	}

	// always written back, even when nothing matched
	if err := r.files.WriteFileAtomic(ctx, r.path, result.ModifiedContent); err != nil {
		return nil, errors.Errorf("writing stylesheet: %w", err)
	}

	fileStatus := status.FromModified(result.WasModified)
	logger.Debug().
		Str("status", fileStatus.String()).
		Int("replacements", result.ReplacementCount).
		Ints("per_rule", result.Counts).
		Msg(status.FormatFileOperation(r.path, fileStatus, result.ReplacementCount))

	r.console.Success(SuccessMessage)
	r.console.Line(SummaryMessage)

	return result, nil
}
