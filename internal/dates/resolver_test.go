// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package dates

import (
	"testing"
	"time"
)

func TestParse_KnownFormats(t *testing.T) {
	cases := []struct {
		name  string
		input string
		want  string // YYYY-MM-DD
	}{
		{"ISO dashes", "2024-01-06", "2024-01-06"},
		{"ISO slashes", "2024/01/06", "2024-01-06"},
		{"ISO single-digit parts", "2024-1-6", "2024-01-06"},
		{"dotted is day-first", "06.01.2024", "2024-01-06"},
		{"dotted unambiguous", "25.12.2024", "2024-12-25"},
		{"slash month-first default", "01/06/2024", "2024-01-06"},
		{"slash day greater than twelve", "25/12/2024", "2024-12-25"},
		{"slash second component is day", "12/25/2024", "2024-12-25"},
		{"dash with month-first default", "1-6-2024", "2024-01-06"},
		{"natural long month", "6 January 2024", "2024-01-06"},
		{"natural with ordinal", "6th January 2024", "2024-01-06"},
		{"natural US comma", "January 6, 2024", "2024-01-06"},
		{"natural short month", "Jan 6, 2024", "2024-01-06"},
		{"natural lowercase month", "6 january 2024", "2024-01-06"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, ok := Parse(tc.input)
			if !ok {
				t.Fatalf("Parse(%q) failed, want %s", tc.input, tc.want)
			}
			if got.Format("2006-01-02") != tc.want {
				t.Errorf("Parse(%q) = %s, want %s", tc.input, got.Format("2006-01-02"), tc.want)
			}
		})
	}
}

func TestParse_SerialNumbers(t *testing.T) {
	// Serial 45297 is 2024-01-06 in the 1900 date system.
	got, ok := Parse("45297")
	if !ok {
		t.Fatal("serial 45297 should parse")
	}
	want := time.Date(2024, time.January, 6, 0, 0, 0, 0, time.UTC)
	if !got.Equal(want) {
		t.Errorf("serial 45297 = %s, want %s", got, want)
	}

	// Serial 1 is 1900-01-01: below the leap-year quirk threshold.
	got, ok = Parse("1")
	if !ok {
		t.Fatal("serial 1 should parse")
	}
	want = time.Date(1900, time.January, 1, 0, 0, 0, 0, time.UTC)
	if !got.Equal(want) {
		t.Errorf("serial 1 = %s, want %s", got, want)
	}

	// Serial 61 is 1900-03-01: the quirk epoch absorbs the phantom Feb 29.
	got, ok = Parse("61")
	if !ok {
		t.Fatal("serial 61 should parse")
	}
	want = time.Date(1900, time.March, 1, 0, 0, 0, 0, time.UTC)
	if !got.Equal(want) {
		t.Errorf("serial 61 = %s, want %s", got, want)
	}

	// Fractional serials carry a time-of-day component; the day part wins.
	got, ok = Parse("45297.75")
	if !ok {
		t.Fatal("fractional serial should parse")
	}
	if got.Format("2006-01-02") != "2024-01-06" {
		t.Errorf("fractional serial day = %s, want 2024-01-06", got.Format("2006-01-02"))
	}
}

func TestParse_Failures(t *testing.T) {
	inputs := []string{
		"",
		"   ",
		"not a date",
		"2024-13-01",
		"30.02.2024",
		"0",
		"99999999",
		"Callum",
	}
	for _, input := range inputs {
		if _, ok := Parse(input); ok {
			t.Errorf("Parse(%q) should fail", input)
		}
	}
}

func TestWithinTolerance_Boundaries(t *testing.T) {
	cases := []struct {
		name string
		a, b string
		tol  int
		want bool
	}{
		{"same day zero tolerance", "2024-01-06", "2024-01-06", 0, true},
		{"one day apart within one", "2024-01-06", "2024-01-07", 1, true},
		{"two days apart outside one", "2024-01-06", "2024-01-08", 1, false},
		{"order independent", "2024-01-07", "2024-01-06", 1, true},
		{"mixed representations", "01/06/2024", "2024-01-06", 0, true},
		{"serial versus ISO", "45297", "2024-01-06", 0, true},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := WithinTolerance(tc.a, tc.b, tc.tol); got != tc.want {
				t.Errorf("WithinTolerance(%q, %q, %d) = %v, want %v", tc.a, tc.b, tc.tol, got, tc.want)
			}
		})
	}
}

func TestWithinTolerance_FailsClosed(t *testing.T) {
	if WithinTolerance("invalid-date", "2024-01-06", 10) {
		t.Error("unparseable first operand must not match")
	}
	if WithinTolerance("2024-01-06", "", 10) {
		t.Error("empty second operand must not match")
	}
	if WithinTolerance("", "", 10) {
		t.Error("two unparseable operands must not match")
	}
}
