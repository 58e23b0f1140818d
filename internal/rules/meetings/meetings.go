// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

// Package meetings decides whether a time-entry narrative describes a
// meeting or call, and which fee earners it mentions. Both checks are
// case-insensitive and word-boundary safe: "recall" never counts as
// "call".
package meetings

import (
	"regexp"
	"strings"

	"fixmytime/internal/roster"
)

// DefaultKeywords is the shipped meeting keyword list. Matters override
// it through their rule configuration.
var DefaultKeywords = []string{"meeting", "call", "conference", "discussion", "telephone", "phone"}

// HasKeyword reports whether the narrative contains any keyword as a
// whole word, ignoring case. Empty narratives and empty keyword lists
// never match.
func HasKeyword(narrative string, keywords []string) bool {
	if narrative == "" {
		return false
	}
	for _, kw := range keywords {
		kw = strings.TrimSpace(kw)
		if kw == "" {
			continue
		}
		if wordBoundary(kw).MatchString(narrative) {
			return true
		}
	}
	return false
}

// MentionedPeople returns every roster member referenced in the
// narrative, either by full name as a phrase or by first name and last
// name appearing separately. The author is excluded even when
// self-referenced; exclusion compares full names exactly.
func MentionedPeople(narrative string, people []*roster.Person, author string) []*roster.Person {
	if narrative == "" {
		return nil
	}
	var out []*roster.Person
	for _, p := range people {
		if p.FullName == "" || p.FullName == author {
			continue
		}
		if mentions(narrative, p) {
			out = append(out, p)
		}
	}
	return out
}

func mentions(narrative string, p *roster.Person) bool {
	if wordBoundary(p.FullName).MatchString(narrative) {
		return true
	}
	first, last := p.FirstName(), p.LastName()
	if first == "" || last == "" {
		return false
	}
	return wordBoundary(first).MatchString(narrative) && wordBoundary(last).MatchString(narrative)
}

func wordBoundary(phrase string) *regexp.Regexp {
	return regexp.MustCompile(`(?i)\b` + regexp.QuoteMeta(phrase) + `\b`)
}
