// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package help

import (
	"fmt"
	"os"
	"sort"
	"strings"
	"text/tabwriter"

	"github.com/fatih/color"
)

// RuleInfo contains standardized information about a rule
type RuleInfo struct {
	Name                string   // Name of the rule (e.g., "MISSING_TIME")
	ShortDescription    string   // Short description for the rules list
	DetailedDescription string   // Detailed description of what the rule does
	Defaults            []string // Default settings applied when a matter declares none
	ConfigurationInfo   string   // Information about how to configure the rule
	Examples            []string // Usage examples
}

// Provider defines the interface for help content providers
type Provider interface {
	GetRuleInfo() RuleInfo
}

// System manages help content for the application
type System struct {
	providers map[string]Provider
	noColor   bool
	colors    map[string]*color.Color
}

// NewSystem creates a new help system
func NewSystem(noColor bool) *System {
	// Disable colors if requested
	if noColor {
		color.NoColor = true
	}

	return &System{
		providers: make(map[string]Provider),
		noColor:   noColor,
		colors: map[string]*color.Color{
			"title":    color.New(color.FgWhite, color.Bold),
			"header":   color.New(color.FgBlue, color.Bold),
			"item":     color.New(color.FgCyan),
			"emphasis": color.New(color.FgWhite, color.Bold),
			"negative": color.New(color.FgRed),
			"example":  color.New(color.FgMagenta),
		},
	}
}

// RegisterProvider adds a help provider to the system
func (h *System) RegisterProvider(provider Provider) {
	info := provider.GetRuleInfo()
	h.providers[strings.ToLower(info.Name)] = provider
}

// ShowGeneralHelp displays general help information
func (h *System) ShowGeneralHelp() {
	h.colors["title"].Println("FixMyTime - Legal Billing Timesheet Rules")
	fmt.Println("=========================================")
	fmt.Println()
	h.colors["header"].Println("USAGE:")
	fmt.Println("  fixmytime --file <timesheet.csv> [options]")
	fmt.Println()

	h.colors["header"].Println("OPTIONS:")

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "  --file\t<path>\tPath to the timesheet CSV to process (required)")
	fmt.Fprintln(w, "  --output\t<path>\tPath for the processed timesheet (default: <name>.fixed.csv alongside the input)")
	fmt.Fprintln(w, "  --profiles\t<path>\tPath to matter profiles file (YAML)")
	fmt.Fprintln(w, "  --matter\t<name>\tMatter profile to apply (default: the profile file's default matter)")
	fmt.Fprintln(w, "  --rules\t<rules>\tRules to run: NAME_STANDARDISATION,MISSING_TIME,CHARGE,all (default: all)")
	fmt.Fprintln(w, "  --format\t<format>\tReport format: text, json, csv (default: text)")
	fmt.Fprintln(w, "  --tolerance\t<days>\tOverride the matter's date tolerance for the missing-time audit")
	fmt.Fprintln(w, "  --placeholders\t\tAppend a draft reciprocal row for every missing-time finding")
	fmt.Fprintln(w, "  --list-matters\t\tList matters declared in the profiles file")
	fmt.Fprintln(w, "  --list-rules\t\tList the available rules")
	fmt.Fprintln(w, "  --verbose\t\tDisplay detailed information for each finding")
	fmt.Fprintln(w, "  --debug\t\tEnable debug logging of the rule pipeline")
	fmt.Fprintln(w, "  --no-color\t\tDisable colored output")
	fmt.Fprintln(w, "  --version\t\tShow version information")
	fmt.Fprintln(w, "  --help\t\tShow this help message")
	fmt.Fprintln(w, "  --help rules\t\tList all available rules")
	fmt.Fprintln(w, "  --help <rule>\t\tShow detailed help for a specific rule")
	w.Flush()

	fmt.Println()
	h.colors["header"].Println("EXAMPLES:")
	h.colors["example"].Println("  fixmytime --file january.csv")
	h.colors["example"].Println("  fixmytime --file january.csv --matter meridian --rules MISSING_TIME --format json")
	h.colors["example"].Println("  fixmytime --file january.csv --tolerance 1 --placeholders")

	fmt.Println()
	h.colors["header"].Println("CONFIGURATION:")
	fmt.Println("  Project profiles: fixmytime.yaml or profiles.yaml (in current directory)")
	fmt.Println("  User profiles:    <user config dir>/fixmytime/profiles.yaml")
	fmt.Println("  Environment:      FIXMYTIME_CONFIG_DIR - Override config directory")
}

// ShowRulesHelp displays information about all available rules
func (h *System) ShowRulesHelp() {
	h.colors["title"].Println("Available Rules")
	fmt.Println("===============")
	fmt.Println()

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	h.colors["header"].Fprintln(w, "  RULE\tDESCRIPTION")
	h.colors["header"].Fprintln(w, "  ----\t-----------")

	var names []string
	for _, provider := range h.providers {
		names = append(names, provider.GetRuleInfo().Name)
	}
	sort.Strings(names)

	for _, name := range names {
		info := h.providers[strings.ToLower(name)].GetRuleInfo()
		fmt.Fprintf(w, "  ")
		h.colors["emphasis"].Fprintf(w, "%s", info.Name)
		fmt.Fprintf(w, "\t%s\n", info.ShortDescription)
	}
	w.Flush()

	fmt.Println()
	fmt.Println("For detailed information about a specific rule, use:")
	h.colors["example"].Println("  fixmytime --help <rule>")
}

// ShowRuleHelp displays detailed help for a specific rule
func (h *System) ShowRuleHelp(ruleName string) bool {
	provider, exists := h.providers[strings.ToLower(ruleName)]
	if !exists {
		h.colors["negative"].Printf("Error: Rule '%s' not found.\n", ruleName)
		fmt.Println("Use 'fixmytime --help rules' to see a list of available rules.")
		return false
	}

	info := provider.GetRuleInfo()

	h.colors["title"].Printf("%s Rule\n", info.Name)
	fmt.Println(strings.Repeat("=", len(info.Name)+5))
	fmt.Println()
	fmt.Println(info.DetailedDescription)
	fmt.Println()

	if len(info.Defaults) > 0 {
		h.colors["header"].Println("DEFAULTS:")
		for _, d := range info.Defaults {
			fmt.Print("  - ")
			h.colors["item"].Println(d)
		}
		fmt.Println()
	}

	if info.ConfigurationInfo != "" {
		h.colors["header"].Println("CONFIGURATION:")
		fmt.Println(info.ConfigurationInfo)
		fmt.Println()
	}

	if len(info.Examples) > 0 {
		h.colors["header"].Println("EXAMPLES:")
		for _, example := range info.Examples {
			fmt.Print("  ")
			h.colors["example"].Println(example)
		}
	}

	return true
}
