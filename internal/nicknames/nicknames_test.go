// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package nicknames

import "testing"

func TestResolve_Builtin(t *testing.T) {
	idx := NewIndex(nil)

	got, ok := idx.Resolve("dave")
	if !ok || got != "david" {
		t.Errorf("Resolve(dave) = %q, %v; want david, true", got, ok)
	}

	// Lookup is case-insensitive.
	got, ok = idx.Resolve("Dave")
	if !ok || got != "david" {
		t.Errorf("Resolve(Dave) = %q, %v; want david, true", got, ok)
	}

	if _, ok := idx.Resolve("zebedee"); ok {
		t.Error("Resolve(zebedee) should miss")
	}
}

func TestResolve_CustomShadowsBuiltin(t *testing.T) {
	idx := NewIndex(map[string]string{
		"dave": "davide",
		"Wolf": "Wolfgang",
	})

	// Custom entry wins over the built-in dave -> david.
	got, ok := idx.Resolve("dave")
	if !ok || got != "davide" {
		t.Errorf("Resolve(dave) = %q, %v; want custom davide", got, ok)
	}

	// Custom keys and values are lowercased at construction.
	got, ok = idx.Resolve("wolf")
	if !ok || got != "wolfgang" {
		t.Errorf("Resolve(wolf) = %q, %v; want wolfgang", got, ok)
	}

	// Built-in entries without a custom shadow still resolve.
	got, ok = idx.Resolve("liz")
	if !ok || got != "elizabeth" {
		t.Errorf("Resolve(liz) = %q, %v; want elizabeth", got, ok)
	}
}

func TestNewIndex_SkipsEmptyEntries(t *testing.T) {
	idx := NewIndex(map[string]string{
		"":     "someone",
		"nick": "",
		" al ": " Albert ",
	})
	if _, ok := idx.Resolve(""); ok {
		t.Error("empty nickname should not resolve")
	}
	// The built-in nick -> nicholas must survive the empty custom value.
	got, ok := idx.Resolve("nick")
	if !ok || got != "nicholas" {
		t.Errorf("Resolve(nick) = %q, %v; want builtin nicholas", got, ok)
	}
	got, ok = idx.Resolve("al")
	if !ok || got != "albert" {
		t.Errorf("Resolve(al) = %q, %v; want trimmed albert", got, ok)
	}
}
