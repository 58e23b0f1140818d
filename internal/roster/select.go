// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package roster

// DisambiguationStrategy lets a caller break ties between several
// candidates using context from the surrounding timesheet entry, such as
// the entry date. Returning nil declines to choose and falls through to
// the static tie-break.
type DisambiguationStrategy interface {
	Pick(candidates []Candidate, entryDate string) *Person
}

// SelectBest chooses one person from a candidate list. A single candidate
// wins outright. With several, the strategy (if any) is consulted first;
// then a person flagged as default for the given name; then the earliest
// candidate in directory order. Empty input returns nil.
func SelectBest(candidates []Candidate, strategy DisambiguationStrategy, entryDate string) *Person {
	switch len(candidates) {
	case 0:
		return nil
	case 1:
		return candidates[0].Person
	}

	if strategy != nil {
		if p := strategy.Pick(candidates, entryDate); p != nil {
			return p
		}
	}

	for _, c := range candidates {
		if c.Person.IsDefaultForGivenName {
			return c.Person
		}
	}
	return candidates[0].Person
}
