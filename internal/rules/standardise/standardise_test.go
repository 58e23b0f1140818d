// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package standardise

import (
	"testing"

	"fixmytime/internal/nicknames"
	"fixmytime/internal/roster"
)

func testDirectory() *roster.Directory {
	return roster.BuildIndex([]*roster.Person{
		{FullName: "Jonathan Smith"},
		{FullName: "David Okafor"},
		{FullName: "Elizabeth Tan"},
	}, true)
}

func TestApply_Basics(t *testing.T) {
	dir := testDirectory()
	nicks := nicknames.NewIndex(nil)
	cfg := DefaultConfig()

	cases := []struct {
		name      string
		narrative string
		want      string
	}{
		{
			"first name rewritten",
			"Call with Jonathan re disclosure",
			"Call with Jonathan Smith re disclosure",
		},
		{
			"nickname expanded",
			"Meeting with Dave about completion accounts",
			"Meeting with David Okafor about completion accounts",
		},
		{
			"nickname expansion is case-insensitive",
			"Email from liz",
			"Email from Elizabeth Tan",
		},
		{
			"unknown names untouched",
			"Call with Marcus re disclosure",
			"Call with Marcus re disclosure",
		},
		{
			"empty narrative untouched",
			"",
			"",
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := Apply(tc.narrative, dir, nicks, cfg, ""); got != tc.want {
				t.Errorf("Apply(%q) = %q, want %q", tc.narrative, got, tc.want)
			}
		})
	}
}

func TestApply_AlreadyFullNameSuppressed(t *testing.T) {
	dir := roster.BuildIndex([]*roster.Person{{FullName: "Jonathan Smith"}}, true)
	cfg := DefaultConfig()

	// "John Smith" must not become "Jonathan Smith Smith".
	got := Apply("Call with John Smith", dir, nicknames.NewIndex(nil), cfg, "")
	if got != "Call with John Smith" {
		t.Errorf("got %q, want narrative unchanged", got)
	}

	// An unknown capitalized word after the token also suppresses.
	got = Apply("Call with John Pemberton", dir, nicknames.NewIndex(nil), cfg, "")
	if got != "Call with John Pemberton" {
		t.Errorf("got %q, want narrative unchanged", got)
	}

	// Stoplist words following the token do not suppress.
	got = Apply("Worked with John about the lease", dir, nicknames.NewIndex(nil), cfg, "")
	if got != "Worked with Jonathan Smith about the lease" {
		t.Errorf("got %q, want replacement despite following word", got)
	}
}

func TestApply_Idempotent(t *testing.T) {
	dir := testDirectory()
	nicks := nicknames.NewIndex(nil)
	cfg := DefaultConfig()

	once := Apply("Call with Dave and Jonathan", dir, nicks, cfg, "")
	twice := Apply(once, dir, nicks, cfg, "")
	if once != twice {
		t.Errorf("second pass changed text: %q -> %q", once, twice)
	}
}

func TestApply_FirstOccurrenceOnly(t *testing.T) {
	dir := testDirectory()
	nicks := nicknames.NewIndex(nil)

	cfg := DefaultConfig()
	cfg.ReplaceOnlyFirstOccurrence = true

	got := Apply("Dave called; Dave followed up with Liz", dir, nicks, cfg, "")
	want := "David Okafor called; Dave followed up with Liz"
	if got != want {
		t.Errorf("got %q, want %q", got, want)
	}

	// Without the flag every occurrence is rewritten.
	cfg.ReplaceOnlyFirstOccurrence = false
	got = Apply("Dave called; Dave followed up", dir, nicks, cfg, "")
	want = "David Okafor called; David Okafor followed up"
	if got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestApply_ExcludedWords(t *testing.T) {
	dir := testDirectory()
	cfg := DefaultConfig()
	cfg.ExcludedWords = []string{"jonathan"}

	got := Apply("Call with Jonathan", dir, nicknames.NewIndex(nil), cfg, "")
	if got != "Call with Jonathan" {
		t.Errorf("excluded word replaced: %q", got)
	}
}

func TestApply_PartialMatching(t *testing.T) {
	dir := testDirectory()
	nicks := nicknames.NewIndex(nil)

	cfg := DefaultConfig()
	got := Apply("Note from Eliza re filings", dir, nicks, cfg, "")
	if got != "Note from Elizabeth Tan re filings" {
		t.Errorf("prefix match failed: %q", got)
	}

	cfg.AllowPartialMatches = false
	got = Apply("Note from Eliza re filings", dir, nicks, cfg, "")
	if got != "Note from Eliza re filings" {
		t.Errorf("partial match applied while disabled: %q", got)
	}
}

func TestApply_DuplicateFirstNameDeterministic(t *testing.T) {
	dir := roster.BuildIndex([]*roster.Person{
		{FullName: "John Smith"},
		{FullName: "John Doe"},
	}, true)
	cfg := DefaultConfig()

	for i := 0; i < 5; i++ {
		got := Apply("Call with John", dir, nicknames.NewIndex(nil), cfg, "")
		if got != "Call with John Smith" {
			t.Fatalf("run %d: got %q, want first-inserted John Smith", i, got)
		}
	}
}

func TestApply_NicknameLookupIsExactOnly(t *testing.T) {
	// "sam" expands to "samantha"; with no Samantha on the roster the
	// expanded lookup must not prefix-match another person.
	dir := roster.BuildIndex([]*roster.Person{{FullName: "Samuel Price"}}, true)
	cfg := DefaultConfig()
	cfg.AllowPartialMatches = false

	got := Apply("Call with sam", dir, nicknames.NewIndex(nil), cfg, "")
	if got != "Call with sam" {
		t.Errorf("expanded nickname should miss: %q", got)
	}

	// A custom override points the nickname at the right person.
	nicks := nicknames.NewIndex(map[string]string{"sam": "samuel"})
	got = Apply("Call with sam", dir, nicks, cfg, "")
	if got != "Call with Samuel Price" {
		t.Errorf("custom nickname lookup failed: %q", got)
	}
}
