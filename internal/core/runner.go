// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

// Package core runs the rule pipeline over a loaded timesheet: name
// standardisation, missing-time auditing and charge prepopulation, in
// that order, against one matter profile. The CLI and tests both drive
// the pipeline through RunRules.
package core

import (
	"fmt"
	"strings"

	"fixmytime/internal/matter"
	"fixmytime/internal/nicknames"
	"fixmytime/internal/observability"
	"fixmytime/internal/roster"
	"fixmytime/internal/rules/charge"
	"fixmytime/internal/rules/missingtime"
	"fixmytime/internal/rules/standardise"
	"fixmytime/internal/timesheet"
)

// Rule names accepted by ParseRulesToRun.
const (
	RuleNameStandardisation = "NAME_STANDARDISATION"
	RuleMissingTime         = "MISSING_TIME"
	RuleCharge              = "CHARGE"
)

// RunConfig holds configuration for one rule application.
type RunConfig struct {
	Sheet   *timesheet.Sheet
	Profile *matter.Profile
	Rules   []string

	// ToleranceOverride, when >= 0, replaces the profile's date
	// tolerance for the missing-time audit.
	ToleranceOverride int

	// Placeholders appends a draft reciprocal row for every finding.
	Placeholders bool

	Observer *observability.StandardObserver
}

// Result holds the outcome of one rule application.
type Result struct {
	// Amendments counts rows whose narrative was rewritten.
	Amendments int
	// Findings are the missing-time findings, in entry order.
	Findings []missingtime.Finding
	// ChargesSet counts Charge cells filled in.
	ChargesSet int
	// PlaceholdersAdded counts draft rows appended to the sheet.
	PlaceholdersAdded int
	// RulesRun lists the rules that actually executed.
	RulesRun []string
}

// ParseRulesToRun converts a rule name list into an enablement map.
// Empty input or "all" enables everything; unknown names are ignored.
func ParseRulesToRun(rules []string) map[string]bool {
	result := map[string]bool{
		RuleNameStandardisation: false,
		RuleMissingTime:         false,
		RuleCharge:              false,
	}

	if len(rules) == 0 || (len(rules) == 1 && strings.TrimSpace(rules[0]) == "all") {
		for key := range result {
			result[key] = true
		}
		return result
	}

	for _, rule := range rules {
		if name := strings.ToUpper(strings.TrimSpace(rule)); name != "" {
			if _, exists := result[name]; exists {
				result[name] = true
			}
		}
	}

	return result
}

// RunRules applies the enabled rules to the sheet in place and reports
// what changed. The directory and nickname index are rebuilt on every
// call so a roster edit between runs is always picked up.
func RunRules(cfg RunConfig) (*Result, error) {
	if cfg.Sheet == nil {
		return nil, fmt.Errorf("no timesheet loaded")
	}
	if cfg.Profile == nil {
		return nil, fmt.Errorf("no matter profile selected")
	}

	observer := cfg.Observer
	if observer == nil {
		observer = observability.NewStandardObserver(observability.ObservabilityOff, nil)
	}
	done := observer.StartTiming("core", "run_rules")

	enabled := ParseRulesToRun(cfg.Rules)
	stdCfg := cfg.Profile.StandardiserConfig()

	people := cfg.Profile.People()
	if len(people) == 0 {
		// A profile without a roster still gets the audit and the
		// standardiser's full-name suppression: extract the roster from
		// the timesheet itself.
		people = cfg.Sheet.FeeEarners()
	}
	dir := roster.BuildIndex(people, stdCfg.AllowPartialMatches)
	nicks := nicknames.NewIndex(cfg.Profile.Nicknames)

	result := &Result{}
	entries := cfg.Sheet.Entries()

	debugObs := observer.DebugObserver
	if debugObs != nil {
		debugObs.LogDetail("core", fmt.Sprintf("Roster: %d people, %d rows loaded", len(people), len(entries)))
	}

	if enabled[RuleNameStandardisation] {
		result.RulesRun = append(result.RulesRun, RuleNameStandardisation)
		step := startStep(debugObs, "standardise", "rewrite narratives")
		runStandardisation(cfg.Sheet, entries, dir, nicks, stdCfg, result)
		step(true, fmt.Sprintf("%d amended", result.Amendments))
	}
	if enabled[RuleMissingTime] {
		result.RulesRun = append(result.RulesRun, RuleMissingTime)
		step := startStep(debugObs, "missingtime", "audit reciprocal entries")
		runMissingTime(cfg, entries, people, result)
		step(true, fmt.Sprintf("%d findings", len(result.Findings)))
	}
	if enabled[RuleCharge] {
		result.RulesRun = append(result.RulesRun, RuleCharge)
		step := startStep(debugObs, "charge", "prepopulate charge column")
		runCharge(cfg.Sheet, entries, cfg.Profile.NoChargeKeywords(), result)
		step(true, fmt.Sprintf("%d set", result.ChargesSet))
	}

	done(true, map[string]interface{}{
		"rules":      result.RulesRun,
		"rows":       len(entries),
		"amendments": result.Amendments,
		"findings":   len(result.Findings),
	})
	return result, nil
}

// startStep is a no-op when debug logging is off.
func startStep(debugObs *observability.DebugObserver, component, step string) func(success bool, details string) {
	if debugObs == nil {
		return func(bool, string) {}
	}
	return debugObs.StartStep(component, step)
}

func runStandardisation(sheet *timesheet.Sheet, entries []timesheet.Entry, dir *roster.Directory, nicks *nicknames.Index, cfg standardise.Config, result *Result) {
	amendedCol := sheet.EnsureColumn(timesheet.AmendedNarrativeHeader)
	notesCol := sheet.NotesColumn()
	if notesCol < 0 {
		notesCol = sheet.EnsureColumn(timesheet.NotesHeader)
	}
	for i, entry := range entries {
		if entry.Narrative == "" {
			continue
		}
		amended := standardise.Apply(entry.Narrative, dir, nicks, cfg, entry.Date)
		sheet.Set(i, amendedCol, amended)
		if amended != entry.Narrative {
			sheet.AddNote(i, notesCol, "Name Standardised")
			result.Amendments++
		}
	}
}

func runMissingTime(cfg RunConfig, entries []timesheet.Entry, people []*roster.Person, result *Result) {
	tolerance := cfg.Profile.Rules.DateToleranceDays
	if cfg.ToleranceOverride >= 0 {
		tolerance = cfg.ToleranceOverride
	}
	auditor := &missingtime.Auditor{
		Keywords:      cfg.Profile.MeetingKeywords(),
		ToleranceDays: tolerance,
	}

	auditEntries := make([]missingtime.Entry, len(entries))
	for i, e := range entries {
		auditEntries[i] = missingtime.Entry{
			Row:       e.Row,
			Date:      e.Date,
			Author:    e.Author,
			Narrative: e.Narrative,
		}
	}
	result.Findings = auditor.Audit(auditEntries, people)
	if len(result.Findings) == 0 {
		return
	}

	sheet := cfg.Sheet
	notesCol := sheet.NotesColumn()
	if notesCol < 0 {
		notesCol = sheet.EnsureColumn(timesheet.NotesHeader)
	}
	for _, f := range result.Findings {
		sheet.AddNote(f.SourceEntry.Row-2, notesCol, f.Note())
	}

	if cfg.Placeholders {
		appendPlaceholders(sheet, result)
	}
}

// appendPlaceholders drafts a reciprocal row per finding so the missing
// fee earner has something to amend rather than a blank row.
func appendPlaceholders(sheet *timesheet.Sheet, result *Result) {
	dateCol := sheet.DateColumn()
	authorCol := sheet.AuthorColumn()
	narrativeCol := sheet.NarrativeColumn()
	notesCol := sheet.NotesColumn()

	for _, f := range result.Findings {
		draft := f.PlaceholderEntry()
		row := make([]string, len(sheet.Headers))
		if dateCol >= 0 {
			row[dateCol] = draft.Date
		}
		if authorCol >= 0 {
			row[authorCol] = draft.Author
		}
		if narrativeCol >= 0 {
			row[narrativeCol] = draft.Narrative
		}
		if notesCol >= 0 {
			row[notesCol] = "Placeholder: proposed by missing-time audit"
		}
		sheet.Rows = append(sheet.Rows, row)
		result.PlaceholdersAdded++
	}
}

func runCharge(sheet *timesheet.Sheet, entries []timesheet.Entry, noChargeKeywords []string, result *Result) {
	chargeCol := sheet.EnsureColumn(timesheet.ChargeHeader)
	for i, entry := range entries {
		if sheet.Get(i, chargeCol) != "" {
			continue
		}
		sheet.Set(i, chargeCol, string(charge.Classify(entry.Narrative, noChargeKeywords)))
		result.ChargesSet++
	}
}
