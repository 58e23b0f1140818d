// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package text

import (
	"fmt"
	"strings"

	"fixmytime/internal/formatters"

	"github.com/fatih/color"
)

// Formatter implements text-based output formatting
type Formatter struct {
	colors map[string]*color.Color
}

// NewFormatter creates a new text formatter
func NewFormatter() *Formatter {
	return &Formatter{
		colors: map[string]*color.Color{
			"green":  color.New(color.FgGreen),
			"yellow": color.New(color.FgYellow),
			"red":    color.New(color.FgRed),
			"cyan":   color.New(color.FgCyan),
			"white":  color.New(color.FgWhite, color.Bold),
		},
	}
}

func (f *Formatter) Name() string {
	return "text"
}

func (f *Formatter) Description() string {
	return "Human-readable text output with colors"
}

func (f *Formatter) FileExtension() string {
	return ".txt"
}

// Format renders the run report: a summary block plus one line per
// missing-time finding.
func (f *Formatter) Format(report *formatters.Report, options formatters.FormatterOptions) (string, error) {
	if options.NoColor {
		color.NoColor = true
	}

	var builder strings.Builder
	result := report.Result

	builder.WriteString(f.colors["white"].Sprintf("%s", report.File))
	if report.Matter != "" {
		builder.WriteString(fmt.Sprintf(" (matter: %s)", report.Matter))
	}
	builder.WriteString("\n")
	builder.WriteString(fmt.Sprintf("Rules run: %s\n", strings.Join(result.RulesRun, ", ")))
	builder.WriteString(fmt.Sprintf("Rows: %d   Narratives amended: %d   Charges set: %d\n",
		report.RowCount, result.Amendments, result.ChargesSet))

	if len(report.Warnings) > 0 {
		builder.WriteString(f.colors["yellow"].Sprintf("Warnings: %d\n", len(report.Warnings)))
		if options.Verbose {
			for _, w := range report.Warnings {
				builder.WriteString(fmt.Sprintf("  row %d: %s\n", w.Row, w.Message))
			}
		}
	}

	if len(result.Findings) == 0 {
		builder.WriteString(f.colors["green"].Sprint("No missing time entries found.\n"))
		return builder.String(), nil
	}

	builder.WriteString(f.colors["red"].Sprintf("Missing time entries: %d\n", len(result.Findings)))
	for _, finding := range result.Findings {
		line := fmt.Sprintf("  row %-5d %s\n", finding.SourceEntry.Row, finding.Note())
		if options.Verbose {
			line = fmt.Sprintf("  row %-5d %s\n            triggered by %s: %q\n",
				finding.SourceEntry.Row, finding.Note(),
				finding.SourceEntry.Author, finding.SourceEntry.Narrative)
		}
		builder.WriteString(line)
	}
	if result.PlaceholdersAdded > 0 {
		builder.WriteString(f.colors["cyan"].Sprintf("Placeholder rows appended: %d\n", result.PlaceholdersAdded))
	}

	return builder.String(), nil
}

// Register the formatter during package initialization
func init() {
	formatters.Register(NewFormatter())
}
