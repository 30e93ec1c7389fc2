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

package log

import (
	"bytes"
	"context"
	"io"
	"strings"
	"testing"

	"github.com/fatih/color"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLogger(t *testing.T) {
	// Disable color for testing
	color.NoColor = true
	defer func() { color.NoColor = false }()

	tests := []struct {
		name     string
		op       func(t *testing.T, logger *Logger)
		wantLogs []string
	}{
		{
			name: "log_messages",
			op: func(t *testing.T, logger *Logger) {
				logger.Success("success message")
				logger.Line("plain message")
				logger.Error("error message")
			},
			wantLogs: []string{
				"✅ success message",
				"plain message",
				"❌ error message",
			},
		},
		{
			name: "log_formatted_messages",
			op: func(t *testing.T, logger *Logger) {
				logger.Errorf("error %s %d", "test", 2)
			},
			wantLogs: []string{
				"❌ error test 2",
			},
		},
		{
			name: "line_is_verbatim",
			op: func(t *testing.T, logger *Logger) {
				logger.Line("Tím/Xanh dương → Xanh lá cây nhạt")
			},
			wantLogs: []string{
				"Tím/Xanh dương → Xanh lá cây nhạt",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			logger := New(&buf, io.Discard, zerolog.InfoLevel)

			tt.op(t, logger)

			got := strings.Split(strings.TrimSuffix(buf.String(), "\n"), "\n")
			assert.Equal(t, tt.wantLogs, got)
		})
	}
}

func TestLoggerDiagnostics(t *testing.T) {
	color.NoColor = true
	defer func() { color.NoColor = false }()

	var console, diagnostics bytes.Buffer
	logger := New(&console, &diagnostics, zerolog.InfoLevel)

	logger.Success("done")
	logger.Error("failed")

	assert.Equal(t, "✅ done\n❌ failed\n", console.String())
	assert.Contains(t, diagnostics.String(), `"level":"info"`)
	assert.Contains(t, diagnostics.String(), `"message":"done"`)
	assert.Contains(t, diagnostics.String(), `"level":"error"`)
	assert.Contains(t, diagnostics.String(), `"message":"failed"`)
}

func TestLoggerContext(t *testing.T) {
	t.Run("round_trip", func(t *testing.T) {
		logger := New(io.Discard, io.Discard, zerolog.InfoLevel)
		ctx := NewContext(context.Background(), logger)
		require.Same(t, logger, FromContext(ctx))
	})

	t.Run("missing_logger", func(t *testing.T) {
		assert.Panics(t, func() {
			FromContext(context.Background())
		})
	})
}
