// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package standardise

import "fixmytime/internal/help"

// HelpProvider exposes help content for the name standardisation rule
type HelpProvider struct{}

// GetRuleInfo returns standardized information about the name standardisation rule
func (HelpProvider) GetRuleInfo() help.RuleInfo {
	return help.RuleInfo{
		Name:             "NAME_STANDARDISATION",
		ShortDescription: "Rewrites informal fee-earner references to canonical full names",
		DetailedDescription: `The Name Standardisation rule scans each narrative for informal references
to fee earners on the matter roster and rewrites them to the canonical
full name, writing the result to the Amended Narrative column.

It matches first names exactly, prefixes in either direction when partial
matching is enabled, and informal names via the nickname database
("Dave" -> "David"). A reference followed by what looks like a surname is
left alone, so "John Smith" is never doubled into "Jonathan Smith Smith".
When several fee earners share a first name, the one flagged as default
for that name wins, falling back to roster order.`,
		Defaults: []string{
			"Partial matching on, minimum length 3",
			"Nickname database on; custom nicknames shadow built-in entries",
			"No excluded words",
		},
		ConfigurationInfo: `Per matter, under rules:
  excluded_words:                tokens never treated as name references
  allow_partial_matches:         enable prefix matching (default true)
  min_partial_match_length:      minimum token length for prefixes (default 3)
  use_nickname_database:         expand nicknames (default true)
  replace_only_first_occurrence: stop after the first rewrite
Custom nicknames live under the matter's nicknames map.`,
		Examples: []string{
			"fixmytime --file january.csv --rules NAME_STANDARDISATION",
			"fixmytime --file january.csv --matter meridian --rules NAME_STANDARDISATION --verbose",
		},
	}
}
