// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

// Package missingtime audits a period's time entries for meetings whose
// other participants never recorded their own entry. For every entry
// that narrates a meeting and mentions a fee earner, it searches the
// period for a reciprocal entry by that fee earner on a tolerant-matching
// date and emits a finding when none exists.
package missingtime

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/google/uuid"

	"fixmytime/internal/dates"
	"fixmytime/internal/rules/meetings"
	"fixmytime/internal/roster"
)

// Entry is one time entry as seen by the auditor. Row is the source row
// in the timesheet, kept so findings can be traced back.
type Entry struct {
	Row       int
	Date      string
	Author    string
	Narrative string
}

// Finding records one missing reciprocal entry. The same person and date
// can appear in several findings when several meeting entries reference
// them; findings are per triggering entry, not per pair.
type Finding struct {
	ID            string
	SourceEntry   Entry
	MissingPerson *roster.Person
	ExpectedDate  string
}

// Note renders the annotation appended to the source row's Notes column.
func (f Finding) Note() string {
	return fmt.Sprintf("Missing Time: %s should have entry for %s", f.MissingPerson.FullName, f.ExpectedDate)
}

// Auditor holds the audit configuration for one matter.
type Auditor struct {
	// Keywords mark an entry as meeting-type. Empty means no entry
	// triggers the audit.
	Keywords []string

	// ToleranceDays is the allowed gap between a meeting entry and its
	// reciprocal. Zero requires the same day.
	ToleranceDays int
}

// Audit scans the full entry list and returns findings in entry order.
// Entries missing a date, author or narrative neither trigger the audit
// nor satisfy a reciprocal search. The scan is quadratic over entries,
// which is fine for timesheet-sized periods.
func (a *Auditor) Audit(entries []Entry, people []*roster.Person) []Finding {
	var findings []Finding
	for _, entry := range entries {
		if entry.Narrative == "" || entry.Author == "" || entry.Date == "" {
			continue
		}
		if !meetings.HasKeyword(entry.Narrative, a.Keywords) {
			continue
		}
		for _, person := range meetings.MentionedPeople(entry.Narrative, people, entry.Author) {
			if a.hasReciprocal(entries, entry, person) {
				continue
			}
			findings = append(findings, Finding{
				ID:            uuid.New().String(),
				SourceEntry:   entry,
				MissingPerson: person,
				ExpectedDate:  entry.Date,
			})
		}
	}
	return findings
}

// hasReciprocal reports whether anyone on the entry list corroborates
// the meeting: an entry by the mentioned person, on a date within
// tolerance, whose narrative refers back to the original author or to a
// meeting at all. The reference check is a plain substring scan, looser
// than the word-boundary mention detection on the triggering side.
func (a *Auditor) hasReciprocal(entries []Entry, source Entry, person *roster.Person) bool {
	for _, other := range entries {
		if other.Author != person.FullName {
			continue
		}
		if other.Narrative == "" || other.Date == "" {
			continue
		}
		if !dates.WithinTolerance(source.Date, other.Date, a.ToleranceDays) {
			continue
		}
		narrative := strings.ToLower(other.Narrative)
		if strings.Contains(narrative, strings.ToLower(firstName(source.Author))) ||
			strings.Contains(narrative, strings.ToLower(source.Author)) {
			return true
		}
		for _, kw := range a.Keywords {
			kw = strings.ToLower(strings.TrimSpace(kw))
			if kw != "" && strings.Contains(narrative, kw) {
				return true
			}
		}
	}
	return false
}

// PlaceholderEntry drafts the reciprocal entry a finding asks for: same
// date and narrative as the source, authored by the missing person, with
// references to them swapped for the original author.
func (f Finding) PlaceholderEntry() Entry {
	narrative := replaceInsensitive(f.SourceEntry.Narrative, f.MissingPerson.FullName, f.SourceEntry.Author)
	narrative = replaceInsensitive(narrative, f.MissingPerson.FirstName(), f.SourceEntry.Author)
	return Entry{
		Date:      f.ExpectedDate,
		Author:    f.MissingPerson.FullName,
		Narrative: narrative,
	}
}

func replaceInsensitive(text, old, new string) string {
	if old == "" {
		return text
	}
	re, err := regexp.Compile(`(?i)` + regexp.QuoteMeta(old))
	if err != nil {
		return text
	}
	return re.ReplaceAllLiteralString(text, new)
}

func firstName(fullName string) string {
	fields := strings.Fields(fullName)
	if len(fields) == 0 {
		return ""
	}
	return fields[0]
}
