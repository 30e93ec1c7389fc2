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
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFileStatus(t *testing.T) {
	tests := []struct {
		name         string
		status       FileStatus
		replacements int
		wantString   string
		wantMessage  string
	}{
		{
			name:         "modified",
			status:       FromModified(true),
			replacements: 3,
			wantString:   "modified",
			wantMessage:  "📝 Modified Staff.css (3 replacements)",
		},
		{
			name:        "unchanged",
			status:      FromModified(false),
			wantString:  "unchanged",
			wantMessage: "👍 Unchanged Staff.css",
		},
		{
			name:        "unknown",
			status:      StatusUnknown,
			wantString:  "unknown",
			wantMessage: "❓ Unknown Staff.css",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.wantString, tt.status.String())
			assert.Equal(t, tt.wantMessage, FormatFileOperation("Staff.css", tt.status, tt.replacements))
		})
	}
}
