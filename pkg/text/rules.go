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

// 🔄 ReplacementRule is a literal search string paired with its literal replacement
type ReplacementRule struct {
	FromText string // Text to search for
	ToText   string // Text to put in its place
}

// 🎨 colorRules maps the purple/blue palette onto the light green one.
// Order is part of the contract.
var colorRules = [...]ReplacementRule{
	{FromText: "#667eea", ToText: "#66c9a9"},
	{FromText: "#764ba2", ToText: "#56ab91"},
	{FromText: "#1e3c72", ToText: "#56ab91"},
	{FromText: "#2a5298", ToText: "#66c9a9"},
	{FromText: "rgba(102, 126, 234", ToText: "rgba(102, 201, 169"},
}

// ColorRules returns a copy of the fixed stylesheet color rules, in application order.
func ColorRules() []ReplacementRule {
	rules := make([]ReplacementRule, len(colorRules))
	copy(rules, colorRules[:])
	return rules
}
