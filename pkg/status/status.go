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

package status

import (
	"fmt"
)

// 📊 FileStatus represents what a rewrite did to a file
type FileStatus int

const (
	StatusUnknown   FileStatus = iota
	StatusModified             // Content changed
	StatusUnchanged            // Content written back as it was
)

// String returns a string representation of FileStatus
func (s FileStatus) String() string {
	switch s {
	case StatusModified:
		return "modified"
	case StatusUnchanged:
		return "unchanged"
	default:
		return "unknown"
	}
}

// FromModified maps a replacement outcome onto a status
func FromModified(wasModified bool) FileStatus {
	if wasModified {
		return StatusModified
	}
	return StatusUnchanged
}

// FormatFileOperation formats a status message with emojis
func FormatFileOperation(path string, s FileStatus, replacements int) string {
	switch s {
	case StatusModified:
		return fmt.Sprintf("📝 Modified %s (%d replacements)", path, replacements)
	case StatusUnchanged:
		return fmt.Sprintf("👍 Unchanged %s", path)
	default:
		return fmt.Sprintf("❓ Unknown %s", path)
	}
}
