// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

// Package matter loads and resolves matter profiles: per-engagement
// configuration bundling the fee-earner roster, nickname overrides and
// rule settings. Profiles live in a YAML file so they can be shared and
// versioned alongside the timesheets they apply to.
package matter

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"gopkg.in/yaml.v3"

	"fixmytime/internal/paths"
	"fixmytime/internal/roster"
	"fixmytime/internal/rules/charge"
	"fixmytime/internal/rules/meetings"
	"fixmytime/internal/rules/standardise"
)

// Store is the on-disk profile collection.
type Store struct {
	// DefaultMatter names the profile used when the caller does not
	// pick one.
	DefaultMatter string `yaml:"default_matter"`

	Matters map[string]*Profile `yaml:"matters"`
}

// Profile is the configuration for one matter.
type Profile struct {
	Description string `yaml:"description"`

	FeeEarners []FeeEarner       `yaml:"fee_earners"`
	Nicknames  map[string]string `yaml:"nicknames"`

	Rules RuleSettings `yaml:"rules"`
}

// FeeEarner is one roster member as declared in the profile file.
type FeeEarner struct {
	Name                string   `yaml:"name"`
	Role                string   `yaml:"role"`
	Rate                float64  `yaml:"rate"`
	Email               string   `yaml:"email"`
	DefaultForGivenName bool     `yaml:"default_for_given_name"`
	Variations          []string `yaml:"variations"`
}

// RuleSettings carries the per-matter rule configuration. Booleans that
// default to true are pointers so "absent" and "explicitly false" stay
// distinguishable after unmarshaling.
type RuleSettings struct {
	MeetingKeywords  []string `yaml:"meeting_keywords"`
	NoChargeKeywords []string `yaml:"no_charge_keywords"`
	ExcludedWords    []string `yaml:"excluded_words"`

	DateToleranceDays     int `yaml:"date_tolerance_days"`
	MinPartialMatchLength int `yaml:"min_partial_match_length"`

	AllowPartialMatches        *bool `yaml:"allow_partial_matches"`
	UseNicknameDatabase        *bool `yaml:"use_nickname_database"`
	UseDateMatching            bool  `yaml:"use_date_matching"`
	ReplaceOnlyFirstOccurrence bool  `yaml:"replace_only_first_occurrence"`
}

// LoadStore reads a profile file. An empty path returns the default
// store: one general-purpose matter with the shipped rule settings.
func LoadStore(path string) (*Store, error) {
	if path == "" {
		return &Store{
			DefaultMatter: "general",
			Matters: map[string]*Profile{
				"general": {
					Description: "Default rules, no roster; fee earners are taken from the timesheet",
				},
			},
		}, nil
	}

	store := &Store{}
	data, err := os.ReadFile(filepath.Clean(path))
	if err != nil {
		return nil, fmt.Errorf("error reading profiles file: %w", err)
	}
	if err := yaml.Unmarshal(data, store); err != nil {
		return nil, fmt.Errorf("error parsing profiles file: %w", err)
	}
	if len(store.Matters) == 0 {
		return nil, fmt.Errorf("profiles file %s declares no matters", path)
	}
	if store.DefaultMatter == "" {
		store.DefaultMatter = store.ListMatters()[0]
	}
	return store, nil
}

// FindProfilesFile looks for a profile file in standard locations:
// the working directory first, then the user configuration directory.
func FindProfilesFile() string {
	for _, name := range []string{"fixmytime.yaml", "fixmytime.yml", ".fixmytime.yaml", "profiles.yaml"} {
		if fileExists(name) {
			return name
		}
	}
	standard := paths.GetProfilesFile()
	if fileExists(standard) {
		return standard
	}
	return ""
}

// LoadStoreOrDefault loads profiles from path, searching standard
// locations when path is empty, and falls back to the default store on
// any failure. Callers should not crash on a missing or bad file.
func LoadStoreOrDefault(path string) *Store {
	if path == "" {
		path = FindProfilesFile()
	}
	store, err := LoadStore(path)
	if err != nil {
		store, _ = LoadStore("")
	}
	return store
}

// ListMatters returns the matter names in sorted order.
func (s *Store) ListMatters() []string {
	names := make([]string, 0, len(s.Matters))
	for name := range s.Matters {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// GetMatter returns the named profile, or the default profile when name
// is empty, or nil when absent.
func (s *Store) GetMatter(name string) *Profile {
	if name == "" {
		name = s.DefaultMatter
	}
	return s.Matters[name]
}

// People builds the roster declared on the profile. Entries with an
// empty name are dropped.
func (p *Profile) People() []*roster.Person {
	out := make([]*roster.Person, 0, len(p.FeeEarners))
	for _, fe := range p.FeeEarners {
		if fe.Name == "" {
			continue
		}
		out = append(out, &roster.Person{
			FullName:              fe.Name,
			Role:                  fe.Role,
			Rate:                  fe.Rate,
			Email:                 fe.Email,
			IsDefaultForGivenName: fe.DefaultForGivenName,
			NameVariations:        fe.Variations,
		})
	}
	return out
}

// StandardiserConfig resolves the profile's rule settings into a
// standardiser configuration, applying the documented defaults for
// absent fields.
func (p *Profile) StandardiserConfig() standardise.Config {
	cfg := standardise.DefaultConfig()
	cfg.ExcludedWords = p.Rules.ExcludedWords
	cfg.UseDateMatching = p.Rules.UseDateMatching
	cfg.ReplaceOnlyFirstOccurrence = p.Rules.ReplaceOnlyFirstOccurrence
	if p.Rules.MinPartialMatchLength > 0 {
		cfg.MinPartialMatchLength = p.Rules.MinPartialMatchLength
	}
	if p.Rules.AllowPartialMatches != nil {
		cfg.AllowPartialMatches = *p.Rules.AllowPartialMatches
	}
	if p.Rules.UseNicknameDatabase != nil {
		cfg.UseNicknameDatabase = *p.Rules.UseNicknameDatabase
	}
	return cfg
}

// MeetingKeywords returns the profile's keyword list or the shipped
// default.
func (p *Profile) MeetingKeywords() []string {
	if len(p.Rules.MeetingKeywords) > 0 {
		return p.Rules.MeetingKeywords
	}
	return meetings.DefaultKeywords
}

// NoChargeKeywords returns the profile's no-charge list or the shipped
// default.
func (p *Profile) NoChargeKeywords() []string {
	if len(p.Rules.NoChargeKeywords) > 0 {
		return p.Rules.NoChargeKeywords
	}
	return charge.DefaultNoChargeKeywords
}

func fileExists(filename string) bool {
	info, err := os.Stat(filename)
	if err != nil {
		return false
	}
	return !info.IsDir()
}
