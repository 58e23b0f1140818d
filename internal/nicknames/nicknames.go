// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

// Package nicknames maps informal given names to the canonical given name
// they usually stand for. The built-in table ships with the binary; each
// matter may layer custom entries on top, and custom entries shadow
// built-in ones.
package nicknames

import "strings"

// Index resolves informal given names against a custom per-matter layer
// and the built-in table, in that order.
type Index struct {
	custom map[string]string
}

// NewIndex builds an Index over the supplied custom mappings. Keys and
// values are lowercased; a nil map is fine.
func NewIndex(custom map[string]string) *Index {
	idx := &Index{custom: make(map[string]string, len(custom))}
	for nickname, canonical := range custom {
		nickname = strings.ToLower(strings.TrimSpace(nickname))
		canonical = strings.ToLower(strings.TrimSpace(canonical))
		if nickname == "" || canonical == "" {
			continue
		}
		idx.custom[nickname] = canonical
	}
	return idx
}

// Resolve returns the canonical given name for an informal name. Custom
// entries take precedence over the built-in table.
func (idx *Index) Resolve(word string) (string, bool) {
	key := strings.ToLower(word)
	if idx != nil && idx.custom != nil {
		if canonical, ok := idx.custom[key]; ok {
			return canonical, true
		}
	}
	canonical, ok := builtin[key]
	return canonical, ok
}

// Builtin returns a copy of the built-in nickname table.
func Builtin() map[string]string {
	out := make(map[string]string, len(builtin))
	for k, v := range builtin {
		out[k] = v
	}
	return out
}
