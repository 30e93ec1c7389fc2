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
	"os"

	"github.com/rs/zerolog"
	"github.com/walteh/recolor/pkg/log"
)

func main() {
	// Setup logging
	ctx := setupLogging(context.Background(), os.Stderr)

	// Confirmation lines go to stdout, everything else to stderr
	ctx = log.NewContext(ctx, log.New(os.Stdout, os.Stderr, zerolog.WarnLevel))

	rootCmd := newRootCmd(".")
	rootCmd.SetOut(os.Stdout)
	rootCmd.SetErr(os.Stderr)

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		zerolog.Ctx(ctx).Error().Err(err).Msg("recolor failed")
		log.New(os.Stderr, io.Discard, zerolog.Disabled).Errorf("%v", err)
		os.Exit(1)
	}
}
