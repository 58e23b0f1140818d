// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package charge

import "fixmytime/internal/help"

// HelpProvider exposes help content for the charge rule
type HelpProvider struct{}

// GetRuleInfo returns standardized information about the charge rule
func (HelpProvider) GetRuleInfo() help.RuleInfo {
	return help.RuleInfo{
		Name:             "CHARGE",
		ShortDescription: "Prepopulates the Charge column (Y/N/Q) from the narrative",
		DetailedDescription: `The Charge rule fills empty Charge cells: Q when the narrative is empty
and the entry needs a human decision, N when the narrative opens with a
no-charge keyword, Y otherwise. Cells that already hold a value are
never overwritten.`,
		Defaults: []string{
			"No-charge keywords: NC, DO NOT CHARGE, Non Chargeable",
		},
		ConfigurationInfo: `Per matter, under rules:
  no_charge_keywords: narrative prefixes marking an entry non-chargeable`,
		Examples: []string{
			"fixmytime --file january.csv --rules CHARGE",
		},
	}
}
