// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package dates

import (
	"regexp"
	"strconv"
	"strings"
	"time"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Spreadsheet serial dates count days from the 1900 epoch. Serial 60 is the
// phantom 1900-02-29, so serials above 59 use an epoch one day earlier to
// compensate.
var (
	serialEpoch      = time.Date(1899, time.December, 31, 0, 0, 0, 0, time.UTC)
	serialEpochQuirk = time.Date(1899, time.December, 30, 0, 0, 0, 0, time.UTC)
)

// maxSerial is the serial for 9999-12-31; anything larger is not a date.
const maxSerial = 2958465

var (
	isoPattern    = regexp.MustCompile(`^(\d{4})[-/](\d{1,2})[-/](\d{1,2})$`)
	dotPattern    = regexp.MustCompile(`^(\d{1,2})\.(\d{1,2})\.(\d{4})$`)
	slashPattern  = regexp.MustCompile(`^(\d{1,2})[/-](\d{1,2})[/-](\d{4})$`)
	serialPattern = regexp.MustCompile(`^\d+(\.\d+)?$`)
	ordinalSuffix = regexp.MustCompile(`(\d+)(st|nd|rd|th)\b`)
)

// naturalLayouts are tried, in order, for free-form date strings after
// ordinal suffixes are stripped and words are title-cased.
var naturalLayouts = []string{
	"2 January 2006",
	"2 Jan 2006",
	"January 2, 2006",
	"Jan 2, 2006",
	"January 2 2006",
	"Jan 2 2006",
	"2 January, 2006",
	"2006-01-02T15:04:05",
	time.RFC3339,
}

var titleCaser = cases.Title(language.English)

// Parse converts a raw cell value into a canonical instant (midnight UTC).
// It accepts ISO dates, dotted European dates, slash/dash dates with a
// month-first default, spreadsheet serial numbers, and natural-language
// forms. The second return value is false when the input is not a date.
func Parse(raw string) (time.Time, bool) {
	s := strings.TrimSpace(raw)
	if s == "" {
		return time.Time{}, false
	}

	if m := isoPattern.FindStringSubmatch(s); m != nil {
		return makeDate(m[1], m[2], m[3])
	}

	// Dot separator is unambiguous: always day-first.
	if m := dotPattern.FindStringSubmatch(s); m != nil {
		return makeDate(m[3], m[2], m[1])
	}

	if m := slashPattern.FindStringSubmatch(s); m != nil {
		a, _ := strconv.Atoi(m[1])
		b, _ := strconv.Atoi(m[2])
		switch {
		case a > 12:
			// First component cannot be a month: day-first.
			return makeDate(m[3], m[2], m[1])
		case b > 12:
			return makeDate(m[3], m[1], m[2])
		default:
			// Ambiguous; month-first (US convention) wins. Known
			// limitation for UK-style exports.
			return makeDate(m[3], m[1], m[2])
		}
	}

	if serialPattern.MatchString(s) {
		return parseSerial(s)
	}

	return parseNatural(s)
}

// WithinTolerance reports whether two raw date values are at most
// toleranceDays apart. A value that fails to parse never matches.
func WithinTolerance(a, b string, toleranceDays int) bool {
	da, ok := Parse(a)
	if !ok {
		return false
	}
	db, ok := Parse(b)
	if !ok {
		return false
	}
	diff := da.Sub(db)
	if diff < 0 {
		diff = -diff
	}
	return int(diff/(24*time.Hour)) <= toleranceDays
}

func makeDate(year, month, day string) (time.Time, bool) {
	y, _ := strconv.Atoi(year)
	m, _ := strconv.Atoi(month)
	d, _ := strconv.Atoi(day)
	if m < 1 || m > 12 || d < 1 || d > 31 {
		return time.Time{}, false
	}
	t := time.Date(y, time.Month(m), d, 0, 0, 0, 0, time.UTC)
	// time.Date normalizes overflow (e.g. Feb 30 -> Mar 1); reject it.
	if t.Day() != d || t.Month() != time.Month(m) {
		return time.Time{}, false
	}
	return t, true
}

func parseSerial(s string) (time.Time, bool) {
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return time.Time{}, false
	}
	serial := int(f)
	if serial < 1 || serial > maxSerial {
		return time.Time{}, false
	}
	epoch := serialEpoch
	if serial > 59 {
		epoch = serialEpochQuirk
	}
	return epoch.AddDate(0, 0, serial), true
}

func parseNatural(s string) (time.Time, bool) {
	cleaned := ordinalSuffix.ReplaceAllString(s, "$1")
	cleaned = strings.Join(strings.Fields(cleaned), " ")
	cased := titleCaser.String(cleaned)
	for _, layout := range naturalLayouts {
		if t, err := time.Parse(layout, cased); err == nil {
			return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC), true
		}
	}
	return time.Time{}, false
}
