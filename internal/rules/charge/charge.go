// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

// Package charge prepopulates the Charge column for time entries: Y for
// chargeable, N for narratives flagged non-chargeable, Q when the
// narrative is empty and the entry needs a human decision.
package charge

import "strings"

// Value is a Charge column value.
type Value string

const (
	Chargeable    Value = "Y"
	NonChargeable Value = "N"
	Query         Value = "Q"
)

// DefaultNoChargeKeywords are the narrative prefixes that mark an entry
// as non-chargeable out of the box.
var DefaultNoChargeKeywords = []string{"NC", "DO NOT CHARGE", "Non Chargeable"}

// Classify maps a narrative to a Charge value. Empty or whitespace-only
// narratives are a Query; narratives opening with a no-charge keyword
// are NonChargeable; everything else is Chargeable. Keyword comparison
// ignores case and checks the start of the narrative only.
func Classify(narrative string, noChargeKeywords []string) Value {
	trimmed := strings.TrimSpace(narrative)
	if trimmed == "" {
		return Query
	}
	lower := strings.ToLower(trimmed)
	for _, kw := range noChargeKeywords {
		kw = strings.ToLower(strings.TrimSpace(kw))
		if kw == "" {
			continue
		}
		if strings.HasPrefix(lower, kw) {
			return NonChargeable
		}
	}
	return Chargeable
}
