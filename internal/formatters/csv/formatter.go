// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package csv

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"strconv"

	"fixmytime/internal/formatters"
)

// Formatter implements CSV output formatting of missing-time findings
type Formatter struct{}

// NewFormatter creates a new CSV formatter
func NewFormatter() *Formatter {
	return &Formatter{}
}

func (f *Formatter) Name() string {
	return "csv"
}

func (f *Formatter) Description() string {
	return "Comma-separated values for spreadsheet import"
}

func (f *Formatter) FileExtension() string {
	return ".csv"
}

func (f *Formatter) Format(report *formatters.Report, options formatters.FormatterOptions) (string, error) {
	var buf bytes.Buffer
	writer := csv.NewWriter(&buf)

	headers := []string{"Row", "Author", "Missing Person", "Expected Date", "Note"}
	if options.Verbose {
		headers = append(headers, "Source Narrative")
	}
	if err := writer.Write(headers); err != nil {
		return "", fmt.Errorf("error writing CSV header: %w", err)
	}

	for _, finding := range report.Result.Findings {
		row := []string{
			strconv.Itoa(finding.SourceEntry.Row),
			finding.SourceEntry.Author,
			finding.MissingPerson.FullName,
			finding.ExpectedDate,
			finding.Note(),
		}
		if options.Verbose {
			row = append(row, finding.SourceEntry.Narrative)
		}
		if err := writer.Write(row); err != nil {
			return "", fmt.Errorf("error writing CSV row: %w", err)
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		return "", fmt.Errorf("error flushing CSV output: %w", err)
	}
	return buf.String(), nil
}

// Register the formatter during package initialization
func init() {
	formatters.Register(NewFormatter())
}
