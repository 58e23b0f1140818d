// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

// Package roster models the fee earners attached to a matter and provides
// the lookup structures used by the text rules. Full names are not unique:
// two fee earners may share a first name, and disambiguating between them
// is part of the lookup contract, not an error.
package roster

import "strings"

// Person is a fee earner as configured on a matter. The core rules treat
// it as read-only; editing happens in the matter profile store.
type Person struct {
	FullName string
	Role     string
	Rate     float64
	Email    string

	// IsDefaultForGivenName marks the person to prefer when several fee
	// earners share a first name and nothing else disambiguates.
	IsDefaultForGivenName bool

	// NameVariations are extra lookup keys (maiden names, initials,
	// habitual misspellings) declared on the matter.
	NameVariations []string
}

// FirstName returns the first whitespace-separated component of the full
// name, or "" for an empty name.
func (p *Person) FirstName() string {
	fields := strings.Fields(p.FullName)
	if len(fields) == 0 {
		return ""
	}
	return fields[0]
}

// LastName returns everything after the first name component, or "" when
// the person has a single-word name.
func (p *Person) LastName() string {
	fields := strings.Fields(p.FullName)
	if len(fields) < 2 {
		return ""
	}
	return strings.Join(fields[1:], " ")
}
