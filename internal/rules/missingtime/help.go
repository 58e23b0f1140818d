// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package missingtime

import "fixmytime/internal/help"

// GetRuleInfo returns standardized information about the missing-time rule
func (a *Auditor) GetRuleInfo() help.RuleInfo {
	return help.RuleInfo{
		Name:             "MISSING_TIME",
		ShortDescription: "Flags meetings whose other participants never recorded an entry",
		DetailedDescription: `The Missing Time rule scans every entry whose narrative contains a
meeting keyword, works out which fee earners it mentions, and searches
the period for a reciprocal entry by each of them: an entry on a date
within tolerance whose narrative refers back to the original author or
to a meeting. When none exists, it emits a finding and appends

  Missing Time: <name> should have entry for <date>

to the source row's Notes column. The same note is never appended twice.
A person is mentioned when their full name appears as a phrase, or their
first and last names both appear as separate words. An entry never
produces a finding for its own author.`,
		Defaults: []string{
			"Meeting keywords: meeting, call, conference, discussion, telephone, phone",
			"Date tolerance: 0 days (same day required)",
		},
		ConfigurationInfo: `Per matter, under rules:
  meeting_keywords:     keywords marking an entry as meeting-type
  date_tolerance_days:  allowed gap between a meeting and its reciprocal
The --tolerance flag overrides the matter's tolerance for one run;
--placeholders appends a draft reciprocal row per finding.`,
		Examples: []string{
			"fixmytime --file january.csv --rules MISSING_TIME",
			"fixmytime --file january.csv --rules MISSING_TIME --tolerance 1 --placeholders",
		},
	}
}
