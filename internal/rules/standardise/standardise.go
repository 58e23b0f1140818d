// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

// Package standardise rewrites informal references to fee earners inside
// time-entry narratives into canonical full names. It is the rule behind
// the "Amended Narrative" column: "Call with Dave re disclosure" becomes
// "Call with David Okafor re disclosure" when the matter roster knows a
// David Okafor.
package standardise

import (
	"regexp"
	"strings"
	"unicode"

	"fixmytime/internal/nicknames"
	"fixmytime/internal/roster"
)

// Config controls a standardisation pass. Zero value means: no
// exclusions, exact matching only, nicknames off. Use DefaultConfig for
// the shipped defaults.
type Config struct {
	// ExcludedWords are tokens never treated as name references,
	// compared case-insensitively.
	ExcludedWords []string

	// AllowPartialMatches enables prefix matching against the roster.
	AllowPartialMatches bool

	// MinPartialMatchLength is the shortest token and key eligible for
	// prefix matching. Zero falls back to 3.
	MinPartialMatchLength int

	// UseNicknameDatabase expands tokens through the nickname index
	// when a direct roster lookup misses.
	UseNicknameDatabase bool

	// ReplaceOnlyFirstOccurrence stops the pass after the first
	// successful replacement.
	ReplaceOnlyFirstOccurrence bool

	// UseDateMatching consults Strategy to break ties between fee
	// earners sharing a first name, using the entry date.
	UseDateMatching bool

	// Strategy disambiguates duplicate first names. Nil declines every
	// pick and defers to the roster tie-break.
	Strategy roster.DisambiguationStrategy
}

// DefaultConfig returns the configuration applied when a matter declares
// nothing: partial matching on at the default minimum length, nickname
// database on.
func DefaultConfig() Config {
	return Config{
		AllowPartialMatches:   true,
		MinPartialMatchLength: 3,
		UseNicknameDatabase:   true,
	}
}

var (
	wordPattern     = regexp.MustCompile(`\b\w+\b`)
	nextWordPattern = regexp.MustCompile(`^\s+(\w+)`)
)

// Apply rewrites narrative against the directory and nickname index and
// returns the amended text. The input is never mutated; an empty
// narrative or empty directory comes back unchanged. Output is
// deterministic for a given narrative, roster and config.
func Apply(narrative string, dir *roster.Directory, nicks *nicknames.Index, cfg Config, entryDate string) string {
	if narrative == "" || dir == nil || dir.Len() == 0 {
		return narrative
	}

	minLen := cfg.MinPartialMatchLength
	if minLen <= 0 {
		minLen = 3
	}
	excluded := make(map[string]bool, len(cfg.ExcludedWords))
	for _, w := range cfg.ExcludedWords {
		excluded[strings.ToLower(strings.TrimSpace(w))] = true
	}
	var strategy roster.DisambiguationStrategy
	if cfg.UseDateMatching {
		strategy = cfg.Strategy
	}

	processed := narrative
	replaced := false

	// Tokens come from the original text so that replacements made
	// along the way do not shift what still gets considered. Each
	// occurrence of a word is its own iteration.
	for _, loc := range wordPattern.FindAllStringIndex(narrative, -1) {
		token := narrative[loc[0]:loc[1]]
		if len(token) < 2 || excluded[strings.ToLower(token)] {
			continue
		}

		candidates := dir.FindCandidates(token, cfg.AllowPartialMatches, minLen)
		if len(candidates) == 0 && cfg.UseNicknameDatabase && nicks != nil {
			if canonical, ok := nicks.Resolve(token); ok {
				// Nickname expansion resolves to an exact given name,
				// so prefix matching is off for the second lookup.
				candidates = dir.FindCandidates(canonical, false, minLen)
			}
		}
		if len(candidates) == 0 {
			continue
		}

		person := roster.SelectBest(candidates, strategy, entryDate)
		if person == nil || person.FullName == token {
			continue
		}
		if isAlreadyFullName(token, person, narrative, loc[1]) {
			continue
		}

		pattern, err := regexp.Compile(`\b` + regexp.QuoteMeta(token) + `\b`)
		if err != nil {
			continue
		}

		// The first replacement of the pass touches one occurrence; later
		// iterations replace globally, since their earlier occurrences
		// have already been rewritten to full names.
		if !replaced {
			first := pattern.FindStringIndex(processed)
			if first == nil {
				continue
			}
			processed = processed[:first[0]] + person.FullName + processed[first[1]:]
		} else {
			processed = pattern.ReplaceAllLiteralString(processed, person.FullName)
		}
		replaced = true
		if cfg.ReplaceOnlyFirstOccurrence {
			break
		}
	}

	return processed
}

// isAlreadyFullName reports whether the token at the given end offset is
// already part of a fully qualified name, so replacing it would double
// the surname ("John Smith" -> "Jonathan Smith Smith").
func isAlreadyFullName(token string, person *roster.Person, text string, tokenEnd int) bool {
	m := nextWordPattern.FindStringSubmatch(text[tokenEnd:])
	if m == nil {
		return false
	}
	next := m[1]

	if strings.EqualFold(token+" "+next, person.FirstName()+" "+person.LastName()) {
		return true
	}
	return isLikelySurname(next)
}

// surnameStoplist holds capitalized words that commonly follow a first
// name without being a surname.
var surnameStoplist = map[string]bool{
	"THE": true, "AND": true, "OR": true, "BUT": true, "FOR": true,
	"NOR": true, "SO": true, "YET": true,
	"IN": true, "ON": true, "AT": true, "TO": true, "FROM": true,
	"BY": true, "WITH": true, "ABOUT": true,
	"MONDAY": true, "TUESDAY": true, "WEDNESDAY": true, "THURSDAY": true,
	"FRIDAY": true, "SATURDAY": true, "SUNDAY": true,
	"JANUARY": true, "FEBRUARY": true, "MARCH": true, "APRIL": true,
	"MAY": true, "JUNE": true, "JULY": true, "AUGUST": true,
	"SEPTEMBER": true, "OCTOBER": true, "NOVEMBER": true, "DECEMBER": true,
	"THIS": true, "THAT": true, "THESE": true, "THOSE": true,
	"HIS": true, "HER": true, "THEIR": true, "OUR": true, "YOUR": true,
	"WORKED": true, "ATTENDED": true, "REVIEWED": true, "PREPARED": true,
	"DRAFTED": true, "MEETING": true, "CALL": true,
}

func isLikelySurname(word string) bool {
	if len(word) < 2 {
		return false
	}
	runes := []rune(word)
	if !unicode.IsUpper(runes[0]) {
		return false
	}
	return !surnameStoplist[strings.ToUpper(word)]
}
