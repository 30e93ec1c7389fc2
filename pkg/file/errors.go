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
	"fmt"

	"gitlab.com/tozd/go/errors"
)

const (
	OpRead  = "read"
	OpWrite = "write"
)

// 🚫 FileAccessError is returned when the target cannot be read or written
type FileAccessError struct {
	Op   string // OpRead or OpWrite
	Path string // Path as given by the caller
	Err  error  // Underlying cause
}

func (e *FileAccessError) Error() string {
	return fmt.Sprintf("cannot %s %s: %v", e.Op, e.Path, e.Err)
}

func (e *FileAccessError) Unwrap() error {
	return e.Err
}

func accessError(op, path string, err error) error {
	return errors.WithStack(&FileAccessError{Op: op, Path: path, Err: err})
}
