// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"fixmytime/internal/core"
	"fixmytime/internal/help"
	"fixmytime/internal/matter"
	"fixmytime/internal/observability"
	"fixmytime/internal/rules/charge"
	"fixmytime/internal/rules/missingtime"
	"fixmytime/internal/rules/standardise"
	"fixmytime/internal/timesheet"
	"fixmytime/internal/version"

	"fixmytime/internal/formatters"
	_ "fixmytime/internal/formatters/csv"
	_ "fixmytime/internal/formatters/json"
	_ "fixmytime/internal/formatters/text"

	"github.com/fatih/color"
	"golang.org/x/term"
)

// Exit codes: 0 clean run, 1 missing-time findings present, 2 usage or
// processing error.
const (
	exitClean    = 0
	exitFindings = 1
	exitError    = 2
)

func main() {
	inputFile := flag.String("file", "", "Path to the timesheet CSV to process")
	outputFile := flag.String("output", "", "Path for the processed timesheet (default: <input>.fixed.csv)")
	profilesFile := flag.String("profiles", "", "Path to matter profiles file (YAML)")
	matterName := flag.String("matter", "", "Matter profile to apply (default: the profile file's default matter)")
	rulesToRun := flag.String("rules", "", "Rules to run: NAME_STANDARDISATION, MISSING_TIME, CHARGE, or combinations like 'MISSING_TIME,CHARGE' (default: all)")
	outputFormat := flag.String("format", "text", "Report format: text, json, csv")
	tolerance := flag.Int("tolerance", -1, "Override the matter's date tolerance in days for the missing-time audit")
	placeholders := flag.Bool("placeholders", false, "Append a draft reciprocal row for every missing-time finding")
	listMatters := flag.Bool("list-matters", false, "List matters declared in the profiles file")
	listRules := flag.Bool("list-rules", false, "List the available rules")
	verbose := flag.Bool("verbose", false, "Display detailed information for each finding")
	debug := flag.Bool("debug", false, "Enable debug logging of the rule pipeline")
	noColor := flag.Bool("no-color", false, "Disable colored output")
	showHelp := flag.Bool("help", false, "Show help information")
	showVersion := flag.Bool("version", false, "Show version information")

	flag.Parse()

	// Colors are for humans at a terminal, not for pipes.
	if *noColor || !isTerminal(os.Stdout) {
		color.NoColor = true
	}

	helpSystem := help.NewSystem(*noColor)
	helpSystem.RegisterProvider(standardise.HelpProvider{})
	helpSystem.RegisterProvider(&missingtime.Auditor{})
	helpSystem.RegisterProvider(charge.HelpProvider{})

	if *showVersion {
		fmt.Println(version.Info())
		return
	}
	if *listRules {
		helpSystem.ShowRulesHelp()
		return
	}
	if *showHelp {
		args := flag.Args()
		switch {
		case len(args) == 0:
			helpSystem.ShowGeneralHelp()
		case args[0] == "rules":
			helpSystem.ShowRulesHelp()
		default:
			if !helpSystem.ShowRuleHelp(args[0]) {
				os.Exit(exitError)
			}
		}
		return
	}

	store := matter.LoadStoreOrDefault(*profilesFile)

	if *listMatters {
		for _, name := range store.ListMatters() {
			profile := store.GetMatter(name)
			marker := " "
			if name == store.DefaultMatter {
				marker = "*"
			}
			if profile.Description != "" {
				fmt.Printf("%s %s - %s\n", marker, name, profile.Description)
			} else {
				fmt.Printf("%s %s\n", marker, name)
			}
		}
		return
	}

	if *inputFile == "" {
		fmt.Fprintln(os.Stderr, "Error: --file is required")
		fmt.Fprintln(os.Stderr, "Use --help for usage information")
		os.Exit(exitError)
	}

	profile := store.GetMatter(*matterName)
	if profile == nil {
		fmt.Fprintf(os.Stderr, "Error: matter '%s' not found. Available matters: %s\n",
			*matterName, strings.Join(store.ListMatters(), ", "))
		os.Exit(exitError)
	}
	matterLabel := *matterName
	if matterLabel == "" {
		matterLabel = store.DefaultMatter
	}

	observer := observability.NewStandardObserver(observability.ObservabilityOff, os.Stderr)
	if *debug {
		debugObs := observability.NewDebugObserver(os.Stderr)
		observer = debugObs.StandardObserver
		observer.DebugObserver = debugObs
	}

	sheet, warnings, err := readTimesheet(*inputFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(exitError)
	}
	rowCount := len(sheet.Rows)

	var rules []string
	if *rulesToRun != "" {
		rules = strings.Split(*rulesToRun, ",")
	}

	result, err := core.RunRules(core.RunConfig{
		Sheet:             sheet,
		Profile:           profile,
		Rules:             rules,
		ToleranceOverride: *tolerance,
		Placeholders:      *placeholders,
		Observer:          observer,
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(exitError)
	}

	outputPath := *outputFile
	if outputPath == "" {
		outputPath = defaultOutputPath(*inputFile)
	}
	if err := writeTimesheet(outputPath, sheet); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(exitError)
	}

	report := &formatters.Report{
		File:     *inputFile,
		Matter:   matterLabel,
		RowCount: rowCount,
		Result:   result,
		Warnings: warnings,
	}
	output, err := formatters.Export(*outputFormat, report, formatters.FormatterOptions{
		Verbose: *verbose,
		NoColor: *noColor,
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(exitError)
	}
	fmt.Print(output)
	if !strings.HasSuffix(output, "\n") {
		fmt.Println()
	}
	fmt.Fprintf(os.Stderr, "Processed timesheet written to %s\n", outputPath)

	if len(result.Findings) > 0 {
		os.Exit(exitFindings)
	}
	os.Exit(exitClean)
}

func readTimesheet(path string) (*timesheet.Sheet, []timesheet.Warning, error) {
	f, err := os.Open(filepath.Clean(path))
	if err != nil {
		return nil, nil, fmt.Errorf("error opening timesheet: %w", err)
	}
	defer f.Close()
	return timesheet.ReadCSV(f)
}

func writeTimesheet(path string, sheet *timesheet.Sheet) error {
	f, err := os.Create(filepath.Clean(path))
	if err != nil {
		return fmt.Errorf("error creating output file: %w", err)
	}
	defer f.Close()
	if err := timesheet.WriteCSV(f, sheet); err != nil {
		return fmt.Errorf("error writing output file: %w", err)
	}
	return nil
}

// defaultOutputPath derives <name>.fixed.csv next to the input so the
// source file is never overwritten in place.
func defaultOutputPath(input string) string {
	ext := filepath.Ext(input)
	return strings.TrimSuffix(input, ext) + ".fixed" + ext
}

// isTerminal checks if the file descriptor is a terminal
func isTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}
