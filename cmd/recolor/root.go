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

package main

import (
	"context"
	"io"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/walteh/recolor/pkg/file"
	"github.com/walteh/recolor/pkg/log"
	"github.com/walteh/recolor/pkg/operation"
	"gitlab.com/tozd/go/errors"
)

// newRootCmd creates the recolor command. Paths resolve against workDir.
func newRootCmd(workDir string) *cobra.Command {
	return &cobra.Command{
		Use:   "recolor",
		Short: "Switch the staff stylesheet from the purple/blue palette to light green",
		Long: `recolor rewrites FE/FE-EVRental/src/styles/Staff.css in place.
It will:
1. Read the stylesheet
2. Replace the purple/blue colors with their light green counterparts
3. Write the stylesheet back
4. Print a confirmation`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			op, err := operation.New(operation.Options{
				Files:   file.NewManager(workDir),
				Console: log.FromContext(ctx),
			})
			if err != nil {
				return errors.Errorf("creating recolor operation: %w", err)
			}

			result, err := op.Execute(ctx)
			if err != nil {
				return err
			}

			zerolog.Ctx(ctx).Debug().
				Str("path", op.Path()).
				Int("replacements", result.ReplacementCount).
				Msg("recolor complete")

			return nil
		},
	}
}

// setupLogging attaches a zerolog console logger writing to w
func setupLogging(ctx context.Context, w io.Writer) context.Context {
	logger := zerolog.New(zerolog.ConsoleWriter{Out: w}).
		Level(zerolog.InfoLevel).
		With().Timestamp().Logger()
	return logger.WithContext(ctx)
}
