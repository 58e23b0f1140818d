// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

// Package timesheet models a billing spreadsheet exported to CSV: a
// header row plus data rows, with fuzzy header resolution for the
// columns the rules care about and helpers for the derived columns the
// rules write back.
package timesheet

import (
	"strconv"
	"strings"

	"fixmytime/internal/roster"
)

// Sheet is an in-memory timesheet. Rows hold data only; Headers is the
// header row. Rows are padded to the header width on load, so column
// indexes from the finders are always valid.
type Sheet struct {
	Headers []string
	Rows    [][]string
}

// Entry is one data row projected onto the columns the rules consume.
// Row is the 1-based spreadsheet row number (header is row 1).
type Entry struct {
	Row       int
	Date      string
	Author    string
	Narrative string
	Notes     string
}

// Column returns the index of the first header equal to name, ignoring
// case, or -1.
func (s *Sheet) Column(name string) int {
	for i, h := range s.Headers {
		if strings.EqualFold(strings.TrimSpace(h), name) {
			return i
		}
	}
	return -1
}

// EnsureColumn returns the index of the named column, appending it (and
// widening every row) when absent.
func (s *Sheet) EnsureColumn(name string) int {
	if idx := s.Column(name); idx >= 0 {
		return idx
	}
	s.Headers = append(s.Headers, name)
	for i := range s.Rows {
		s.Rows[i] = append(s.Rows[i], "")
	}
	return len(s.Headers) - 1
}

// Get returns the cell at row/column, or "" when out of range.
func (s *Sheet) Get(row, col int) string {
	if row < 0 || row >= len(s.Rows) || col < 0 || col >= len(s.Rows[row]) {
		return ""
	}
	return s.Rows[row][col]
}

// Set writes a cell, ignoring out-of-range coordinates.
func (s *Sheet) Set(row, col int, value string) {
	if row < 0 || row >= len(s.Rows) || col < 0 || col >= len(s.Rows[row]) {
		return
	}
	s.Rows[row][col] = value
}

// AddNote appends a note to a row's notes cell, comma-separated. A note
// already present verbatim is not appended again.
func (s *Sheet) AddNote(row, notesCol int, note string) {
	existing := s.Get(row, notesCol)
	if existing == "" {
		s.Set(row, notesCol, note)
		return
	}
	for _, part := range strings.Split(existing, ",") {
		if strings.TrimSpace(part) == note {
			return
		}
	}
	s.Set(row, notesCol, existing+", "+note)
}

// Entries projects the sheet onto the rule-facing columns. Rows where
// none of the three columns resolve come back with empty fields; the
// rules treat those as skippable.
func (s *Sheet) Entries() []Entry {
	dateCol := s.DateColumn()
	authorCol := s.AuthorColumn()
	narrativeCol := s.NarrativeColumn()

	entries := make([]Entry, 0, len(s.Rows))
	notesCol := s.NotesColumn()
	for i := range s.Rows {
		e := Entry{Row: i + 2}
		if dateCol >= 0 {
			e.Date = strings.TrimSpace(s.Get(i, dateCol))
		}
		if authorCol >= 0 {
			e.Author = strings.TrimSpace(s.Get(i, authorCol))
		}
		if narrativeCol >= 0 {
			e.Narrative = s.Get(i, narrativeCol)
		}
		if notesCol >= 0 {
			e.Notes = s.Get(i, notesCol)
		}
		entries = append(entries, e)
	}
	return entries
}

// FeeEarners extracts a roster from the sheet itself: one person per
// distinct name/role/rate combination, in first-seen order. Rates that
// do not parse as numbers count as zero. Used when the matter profile
// declares no fee earners.
func (s *Sheet) FeeEarners() []*roster.Person {
	nameCol := s.AuthorColumn()
	if nameCol < 0 {
		return nil
	}
	roleCol := s.RoleColumn()
	rateCol := s.RateColumn()

	type rosterKey struct {
		name, role string
		rate       float64
	}
	var out []*roster.Person
	seen := make(map[rosterKey]bool)
	for i := range s.Rows {
		name := strings.TrimSpace(s.Get(i, nameCol))
		if name == "" {
			continue
		}
		var role string
		if roleCol >= 0 {
			role = strings.TrimSpace(s.Get(i, roleCol))
		}
		var rate float64
		if rateCol >= 0 {
			rate, _ = strconv.ParseFloat(strings.TrimSpace(s.Get(i, rateCol)), 64)
		}
		key := rosterKey{name: name, role: role, rate: rate}
		if seen[key] {
			continue
		}
		seen[key] = true
		out = append(out, &roster.Person{FullName: name, Role: role, Rate: rate})
	}
	return out
}

// Authors returns the distinct non-empty author cell values in first-seen
// order. Useful for building a roster when the matter declares none.
func (s *Sheet) Authors() []string {
	col := s.AuthorColumn()
	if col < 0 {
		return nil
	}
	var out []string
	seen := make(map[string]bool)
	for i := range s.Rows {
		name := strings.TrimSpace(s.Get(i, col))
		if name == "" || seen[name] {
			continue
		}
		seen[name] = true
		out = append(out, name)
	}
	return out
}
