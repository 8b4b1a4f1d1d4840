// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package examples

import "strings"

// Outcome is the result variant of resolving a requested name.
type Outcome int

const (
	// OutcomeResolved means the name matched exactly one target.
	OutcomeResolved Outcome = iota
	// OutcomeNoNameGiven means no name (or a blank one) was requested.
	OutcomeNoNameGiven
	// OutcomeNotFound means the name matched nothing, exact or case-insensitive.
	OutcomeNotFound
)

// Resolution is the outcome of matching a requested name against a mapping.
// Available carries the sorted name list for the two listing outcomes.
type Resolution struct {
	Outcome   Outcome
	Target    Target
	Requested string
	Available []string
}

// Resolve looks up requested in the mapping. Lookup is exact first, then a
// case-insensitive scan over the sorted names so the fallback is
// deterministic. Resolve is pure and total: it never fails and performs no
// I/O.
func Resolve(m Mapping, requested string) Resolution {
	if strings.TrimSpace(requested) == "" {
		return Resolution{Outcome: OutcomeNoNameGiven, Available: m.Names()}
	}

	if t, ok := m[requested]; ok {
		return Resolution{Outcome: OutcomeResolved, Target: t, Requested: requested}
	}

	for _, name := range m.Names() {
		if strings.EqualFold(name, requested) {
			return Resolution{Outcome: OutcomeResolved, Target: m[name], Requested: requested}
		}
	}

	return Resolution{Outcome: OutcomeNotFound, Requested: requested, Available: m.Names()}
}
