// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package roster

import "strings"

// MatchKind records how a candidate's key related to the search word.
type MatchKind int

const (
	// Exact means the lowercased key equalled the lowercased search word.
	Exact MatchKind = iota
	// PrefixOfStored means the search word is a prefix of the stored key.
	PrefixOfStored
	// PrefixOfSearch means the stored key is a prefix of the search word.
	PrefixOfSearch
)

// Candidate is one person surfaced by a directory lookup, together with
// the key that matched and how it matched.
type Candidate struct {
	Person *Person
	Key    string
	Kind   MatchKind
}

// Directory indexes fee earners by first name and declared variations.
// Lookups walk keys in the order they were first inserted, so candidate
// ordering is stable across runs for the same roster.
type Directory struct {
	byKey map[string][]*Person
	keys  []string
}

// BuildIndex indexes people by lowercased first name. When partial
// matching is enabled, every prefix-free variation declared on a person
// is indexed too. People with an empty first name are skipped.
func BuildIndex(people []*Person, indexVariations bool) *Directory {
	d := &Directory{byKey: make(map[string][]*Person)}
	for _, p := range people {
		first := strings.ToLower(p.FirstName())
		if first == "" {
			continue
		}
		d.add(first, p)
		if !indexVariations {
			continue
		}
		for _, v := range p.NameVariations {
			key := strings.ToLower(strings.TrimSpace(v))
			if key == "" {
				continue
			}
			d.add(key, p)
		}
	}
	return d
}

func (d *Directory) add(key string, p *Person) {
	if _, seen := d.byKey[key]; !seen {
		d.keys = append(d.keys, key)
	}
	for _, existing := range d.byKey[key] {
		if existing == p {
			return
		}
	}
	d.byKey[key] = append(d.byKey[key], p)
}

// Len reports how many distinct keys the directory holds.
func (d *Directory) Len() int {
	return len(d.keys)
}

// FindCandidates looks up a word against the directory. An exact key hit
// returns those people outright; otherwise, when partial matching is on,
// it collects bidirectional prefix matches where both the word and the
// key are at least minLen runes long. Each person appears at most once,
// keyed by their first qualifying match in key insertion order.
func (d *Directory) FindCandidates(word string, allowPartial bool, minLen int) []Candidate {
	search := strings.ToLower(word)
	if search == "" {
		return nil
	}

	if people, ok := d.byKey[search]; ok {
		out := make([]Candidate, 0, len(people))
		for _, p := range people {
			out = append(out, Candidate{Person: p, Key: search, Kind: Exact})
		}
		return out
	}

	if !allowPartial || len(search) < minLen {
		return nil
	}

	var out []Candidate
	seen := make(map[*Person]bool)
	for _, key := range d.keys {
		if len(key) < minLen {
			continue
		}
		var kind MatchKind
		switch {
		case strings.HasPrefix(key, search):
			kind = PrefixOfStored
		case strings.HasPrefix(search, key):
			kind = PrefixOfSearch
		default:
			continue
		}
		for _, p := range d.byKey[key] {
			if seen[p] {
				continue
			}
			seen[p] = true
			out = append(out, Candidate{Person: p, Key: key, Kind: kind})
		}
	}
	return out
}
