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

package text

import (
	"context"
	"io"
	"strings"

	"github.com/rs/zerolog"
	"gitlab.com/tozd/go/errors"
)

// 📊 ReplacementResult contains the results of a text replacement pass
type ReplacementResult struct {
	// WasModified indicates if any replacements were made
	WasModified bool

	// ReplacementCount is the total number of replacements made
	ReplacementCount int

	// Counts holds the number of replacements made by each rule, indexed like the rules
	Counts []int

	// OriginalContent is the content before replacements
	OriginalContent []byte

	// ModifiedContent is the content after replacements
	ModifiedContent []byte
}

// ReplaceText reads all of content and applies rules in order. Each rule replaces every
// non-overlapping occurrence, left to right, in the output of the rule before it.
func ReplaceText(ctx context.Context, content io.Reader, rules []ReplacementRule) (*ReplacementResult, error) {
	logger := zerolog.Ctx(ctx)

	if err := ValidateRules(rules); err != nil {
		return nil, errors.Errorf("validating rules: %w", err)
	}

	originalContent, err := io.ReadAll(content)
	if err != nil {
		return nil, errors.Errorf("reading content: %w", err)
	}

	result := &ReplacementResult{
		OriginalContent: originalContent,
		Counts:          make([]int, len(rules)),
	}

	current := string(originalContent)
	for i, rule := range rules {
		n := strings.Count(current, rule.FromText)
		if n > 0 {
			current = strings.ReplaceAll(current, rule.FromText, rule.ToText)
			result.WasModified = true
			result.ReplacementCount += n
		}
		result.Counts[i] = n

		logger.Debug().
			Str("from", rule.FromText).
			Str("to", rule.ToText).
			Int("count", n).
			Msg("applied replacement rule")
	}

	result.ModifiedContent = []byte(current)
	return result, nil
}

// ValidateRules checks that every rule has something to search for
func ValidateRules(rules []ReplacementRule) error {
	for i, rule := range rules {
		if rule.FromText == "" {
			return errors.Errorf("rule %d: from_text is required", i)
		}
	}
	return nil
}
