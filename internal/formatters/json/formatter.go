// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package json

import (
	"encoding/json"
	"fmt"

	"fixmytime/internal/formatters"
)

// Formatter implements JSON output formatting
type Formatter struct{}

// NewFormatter creates a new JSON formatter
func NewFormatter() *Formatter {
	return &Formatter{}
}

func (f *Formatter) Name() string {
	return "json"
}

func (f *Formatter) Description() string {
	return "Structured JSON output for programmatic consumption"
}

func (f *Formatter) FileExtension() string {
	return ".json"
}

type jsonReport struct {
	File              string        `json:"file"`
	Matter            string        `json:"matter,omitempty"`
	RulesRun          []string      `json:"rules_run"`
	RowCount          int           `json:"row_count"`
	Amendments        int           `json:"amendments"`
	ChargesSet        int           `json:"charges_set"`
	PlaceholdersAdded int           `json:"placeholders_added,omitempty"`
	Findings          []jsonFinding `json:"findings"`
	Warnings          []jsonWarning `json:"warnings,omitempty"`
}

type jsonFinding struct {
	ID            string `json:"id"`
	Row           int    `json:"row"`
	Author        string `json:"author"`
	MissingPerson string `json:"missing_person"`
	ExpectedDate  string `json:"expected_date"`
	Note          string `json:"note"`
}

type jsonWarning struct {
	Row     int    `json:"row"`
	Message string `json:"message"`
}

func (f *Formatter) Format(report *formatters.Report, options formatters.FormatterOptions) (string, error) {
	out := jsonReport{
		File:              report.File,
		Matter:            report.Matter,
		RulesRun:          report.Result.RulesRun,
		RowCount:          report.RowCount,
		Amendments:        report.Result.Amendments,
		ChargesSet:        report.Result.ChargesSet,
		PlaceholdersAdded: report.Result.PlaceholdersAdded,
		Findings:          []jsonFinding{},
	}
	for _, finding := range report.Result.Findings {
		out.Findings = append(out.Findings, jsonFinding{
			ID:            finding.ID,
			Row:           finding.SourceEntry.Row,
			Author:        finding.SourceEntry.Author,
			MissingPerson: finding.MissingPerson.FullName,
			ExpectedDate:  finding.ExpectedDate,
			Note:          finding.Note(),
		})
	}
	for _, w := range report.Warnings {
		out.Warnings = append(out.Warnings, jsonWarning{Row: w.Row, Message: w.Message})
	}

	data, err := json.MarshalIndent(out, "", "  ")
	if err != nil {
		return "", fmt.Errorf("error marshaling to JSON: %w", err)
	}
	return string(data), nil
}

// Register the formatter during package initialization
func init() {
	formatters.Register(NewFormatter())
}
