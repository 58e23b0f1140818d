// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package missingtime

import (
	"strings"
	"testing"

	"fixmytime/internal/rules/meetings"
	"fixmytime/internal/roster"
)

func testRoster() []*roster.Person {
	return []*roster.Person{
		{FullName: "Sophie Whitmore"},
		{FullName: "Callum Reyes"},
	}
}

func TestAudit_MissingReciprocal(t *testing.T) {
	a := &Auditor{Keywords: meetings.DefaultKeywords}
	entries := []Entry{
		{Row: 2, Date: "2024-01-06", Author: "Sophie Whitmore", Narrative: "Call with Callum Reyes re disclosure"},
		{Row: 3, Date: "2024-01-06", Author: "Callum Reyes", Narrative: "Review partnership agreement"},
	}

	findings := a.Audit(entries, testRoster())
	if len(findings) != 1 {
		t.Fatalf("got %d findings, want 1", len(findings))
	}
	f := findings[0]
	if f.MissingPerson.FullName != "Callum Reyes" {
		t.Errorf("missing person = %s, want Callum Reyes", f.MissingPerson.FullName)
	}
	if f.SourceEntry.Author != "Sophie Whitmore" {
		t.Errorf("source author = %s, want Sophie Whitmore", f.SourceEntry.Author)
	}
	if f.ExpectedDate != "2024-01-06" {
		t.Errorf("expected date = %s, want 2024-01-06", f.ExpectedDate)
	}
	if f.ID == "" {
		t.Error("finding should carry an ID")
	}
	want := "Missing Time: Callum Reyes should have entry for 2024-01-06"
	if f.Note() != want {
		t.Errorf("Note() = %q, want %q", f.Note(), want)
	}
}

func TestAudit_SatisfiedReciprocal(t *testing.T) {
	a := &Auditor{Keywords: meetings.DefaultKeywords}
	entries := []Entry{
		{Date: "2024-01-06", Author: "Sophie Whitmore", Narrative: "Call with Callum Reyes re disclosure"},
		{Date: "2024-01-06", Author: "Callum Reyes", Narrative: "Call with Sophie about disclosure"},
	}
	if findings := a.Audit(entries, testRoster()); len(findings) != 0 {
		t.Fatalf("got %d findings, want 0", len(findings))
	}
}

func TestAudit_ReciprocalByKeywordOnly(t *testing.T) {
	// The reciprocal side matches on a bare keyword even without naming
	// the original author.
	a := &Auditor{Keywords: meetings.DefaultKeywords}
	entries := []Entry{
		{Date: "2024-01-06", Author: "Sophie Whitmore", Narrative: "Call with Callum Reyes re disclosure"},
		{Date: "2024-01-06", Author: "Callum Reyes", Narrative: "Attend conference re disclosure"},
	}
	if findings := a.Audit(entries, testRoster()); len(findings) != 0 {
		t.Fatalf("got %d findings, want 0", len(findings))
	}
}

func TestAudit_ReciprocalIsSubstringMatch(t *testing.T) {
	// Unlike mention detection, reciprocal verification is a plain
	// substring scan: "Sophie" inside "Sophie's" satisfies it.
	a := &Auditor{Keywords: []string{"meeting"}}
	entries := []Entry{
		{Date: "2024-01-06", Author: "Sophie Whitmore", Narrative: "Meeting with Callum Reyes"},
		{Date: "2024-01-06", Author: "Callum Reyes", Narrative: "Prepared note on Sophie's disclosure points"},
	}
	if findings := a.Audit(entries, testRoster()); len(findings) != 0 {
		t.Fatalf("got %d findings, want 0", len(findings))
	}
}

func TestAudit_DateTolerance(t *testing.T) {
	entries := []Entry{
		{Date: "2024-01-06", Author: "Sophie Whitmore", Narrative: "Call with Callum Reyes"},
		{Date: "2024-01-07", Author: "Callum Reyes", Narrative: "Call with Sophie"},
	}

	a := &Auditor{Keywords: meetings.DefaultKeywords, ToleranceDays: 1}
	if findings := a.Audit(entries, testRoster()); len(findings) != 0 {
		t.Fatalf("tolerance 1 got %d findings, want 0", len(findings))
	}

	a.ToleranceDays = 0
	findings := a.Audit(entries, testRoster())
	if len(findings) != 1 {
		t.Fatalf("tolerance 0 got %d findings, want 1", len(findings))
	}
}

func TestAudit_SelfReferenceExcluded(t *testing.T) {
	a := &Auditor{Keywords: meetings.DefaultKeywords}
	entries := []Entry{
		{Date: "2024-01-06", Author: "Sophie Whitmore", Narrative: "Sophie Whitmore attended internal call"},
	}
	if findings := a.Audit(entries, testRoster()); len(findings) != 0 {
		t.Fatalf("self-reference produced %d findings, want 0", len(findings))
	}
}

func TestAudit_SkipsIncompleteEntries(t *testing.T) {
	a := &Auditor{Keywords: meetings.DefaultKeywords}
	entries := []Entry{
		{Date: "", Author: "Sophie Whitmore", Narrative: "Call with Callum Reyes"},
		{Date: "2024-01-06", Author: "", Narrative: "Call with Callum Reyes"},
		{Date: "2024-01-06", Author: "Sophie Whitmore", Narrative: ""},
	}
	if findings := a.Audit(entries, testRoster()); len(findings) != 0 {
		t.Fatalf("incomplete entries produced %d findings, want 0", len(findings))
	}
}

func TestAudit_NoDeduplicationAcrossTriggers(t *testing.T) {
	// Two meeting entries referencing the same absent person each
	// produce their own finding.
	a := &Auditor{Keywords: meetings.DefaultKeywords}
	entries := []Entry{
		{Date: "2024-01-06", Author: "Sophie Whitmore", Narrative: "Morning call with Callum Reyes"},
		{Date: "2024-01-06", Author: "Sophie Whitmore", Narrative: "Afternoon call with Callum Reyes"},
	}
	findings := a.Audit(entries, testRoster())
	if len(findings) != 2 {
		t.Fatalf("got %d findings, want 2", len(findings))
	}
	if findings[0].ID == findings[1].ID {
		t.Error("findings should carry distinct IDs")
	}
}

func TestPlaceholderEntry(t *testing.T) {
	f := Finding{
		SourceEntry: Entry{
			Date:      "2024-01-06",
			Author:    "Sophie Whitmore",
			Narrative: "Call with Callum Reyes re disclosure; callum to circulate note",
		},
		MissingPerson: &roster.Person{FullName: "Callum Reyes"},
		ExpectedDate:  "2024-01-06",
	}

	got := f.PlaceholderEntry()
	if got.Author != "Callum Reyes" {
		t.Errorf("author = %s, want Callum Reyes", got.Author)
	}
	if got.Date != "2024-01-06" {
		t.Errorf("date = %s, want 2024-01-06", got.Date)
	}
	if strings.Contains(strings.ToLower(got.Narrative), "callum") {
		t.Errorf("narrative still references the missing person: %q", got.Narrative)
	}
	if !strings.Contains(got.Narrative, "Sophie Whitmore") {
		t.Errorf("narrative should reference the original author: %q", got.Narrative)
	}
}
