// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package timesheet

import "strings"

// Header resolution is fuzzy on purpose: exports from different billing
// systems label the same column "Narrative", "Description of Work" or
// "Activity Detail". Finders scan keywords in priority order and return
// the first header containing one, or -1.

var (
	narrativeKeywords = []string{"narrative", "description", "notes", "detail", "work", "activity"}
	dateKeywords      = []string{"date", "day", "when"}
	authorKeywords    = []string{"name", "person", "who", "user"}
	notesKeywords     = []string{"notes", "note", "rules applied", "tracking"}
	timeKeywords      = []string{"time", "hours", "duration"}
	roleKeywords      = []string{"role", "title", "position", "grade", "level", "rank"}
	rateKeywords      = []string{"rate", "charge", "cost", "price", "fee", "bill", "amount"}
)

// AmendedNarrativeHeader is the derived column the standardiser writes.
const AmendedNarrativeHeader = "Amended Narrative"

// ChargeHeader is the derived Charge column.
const ChargeHeader = "Charge"

// NotesHeader is the derived Notes column used when none exists.
const NotesHeader = "Notes"

// NarrativeColumn finds the source narrative column. A header containing
// both "original" and "narrative" wins outright; the derived amended
// column is never selected.
func (s *Sheet) NarrativeColumn() int {
	for i, h := range s.Headers {
		lower := strings.ToLower(h)
		if strings.Contains(lower, "original") && strings.Contains(lower, "narrative") {
			return i
		}
	}
	amended := strings.ToLower(AmendedNarrativeHeader)
	return s.findByKeywords(narrativeKeywords, func(lower string) bool {
		return strings.Contains(lower, amended)
	})
}

// DateColumn finds the entry-date column.
func (s *Sheet) DateColumn() int {
	return s.findByKeywords(dateKeywords, nil)
}

// AuthorColumn finds the fee-earner column. A header containing both
// "fee" and "earner" wins before the generic keywords.
func (s *Sheet) AuthorColumn() int {
	for i, h := range s.Headers {
		lower := strings.ToLower(h)
		if strings.Contains(lower, "fee") && strings.Contains(lower, "earner") {
			return i
		}
	}
	return s.findByKeywords(authorKeywords, nil)
}

// NotesColumn finds the notes/tracking column.
func (s *Sheet) NotesColumn() int {
	return s.findByKeywords(notesKeywords, nil)
}

// TimeColumn finds the recorded-hours column.
func (s *Sheet) TimeColumn() int {
	return s.findByKeywords(timeKeywords, nil)
}

// RoleColumn finds the fee-earner role/title column.
func (s *Sheet) RoleColumn() int {
	return s.findByKeywords(roleKeywords, nil)
}

// RateColumn finds the hourly-rate column.
func (s *Sheet) RateColumn() int {
	return s.findByKeywords(rateKeywords, nil)
}

func (s *Sheet) findByKeywords(keywords []string, skip func(lower string) bool) int {
	for _, kw := range keywords {
		for i, h := range s.Headers {
			lower := strings.ToLower(h)
			if skip != nil && skip(lower) {
				continue
			}
			if strings.Contains(lower, kw) {
				return i
			}
		}
	}
	return -1
}
