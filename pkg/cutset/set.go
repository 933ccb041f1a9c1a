// Package cutset finds minimal cut sets of a reliability network using two
// independent engines: a MOCUS-style path cross-product expansion and a
// decision-diagram enumeration of the system failure function. A comparison
// harness runs both and checks that they agree.
package cutset

import (
	"sort"
	"strings"
)

// Set is an unordered collection of component IDs. Forcing every member
// to the failed state disconnects all source-sink paths.
type Set map[string]struct{}

// NewSet builds a set from component IDs.
func NewSet(ids ...string) Set {
	s := make(Set, len(ids))
	for _, id := range ids {
		s[id] = struct{}{}
	}
	return s
}

// Clone returns an independent copy.
func (s Set) Clone() Set {
	out := make(Set, len(s))
	for id := range s {
		out[id] = struct{}{}
	}
	return out
}

// Contains reports membership of a component ID.
func (s Set) Contains(id string) bool {
	_, ok := s[id]
	return ok
}

// SubsetOf reports whether every member of s is in other.
func (s Set) SubsetOf(other Set) bool {
	if len(s) > len(other) {
		return false
	}
	for id := range s {
		if _, ok := other[id]; !ok {
			return false
		}
	}
	return true
}

// Equal reports whether both sets hold exactly the same members.
func (s Set) Equal(other Set) bool {
	return len(s) == len(other) && s.SubsetOf(other)
}

// Sorted returns the members in lexical order.
func (s Set) Sorted() []string {
	ids := make([]string, 0, len(s))
	for id := range s {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

// Key returns a canonical string form, usable as a map key when comparing
// collections of sets.
func (s Set) Key() string {
	return strings.Join(s.Sorted(), "\x1f")
}

// minimize reduces candidates to the minimal antichain: candidates are
// sorted by size ascending and kept only when no already-accepted set is
// a subset. The result is deterministic (size, then canonical key).
func minimize(candidates []Set) []Set {
	sorted := make([]Set, len(candidates))
	copy(sorted, candidates)
	sort.Slice(sorted, func(i, j int) bool {
		if len(sorted[i]) != len(sorted[j]) {
			return len(sorted[i]) < len(sorted[j])
		}
		return sorted[i].Key() < sorted[j].Key()
	})

	var minimal []Set
	seen := make(map[string]struct{})
	for _, cand := range sorted {
		key := cand.Key()
		if _, dup := seen[key]; dup {
			continue
		}
		dominated := false
		for _, accepted := range minimal {
			if accepted.SubsetOf(cand) {
				dominated = true
				break
			}
		}
		if !dominated {
			minimal = append(minimal, cand)
			seen[key] = struct{}{}
		}
	}
	return minimal
}

// setsEqual compares two collections of sets ignoring order.
func setsEqual(a, b []Set) bool {
	if len(a) != len(b) {
		return false
	}
	keys := make(map[string]struct{}, len(a))
	for _, s := range a {
		keys[s.Key()] = struct{}{}
	}
	for _, s := range b {
		if _, ok := keys[s.Key()]; !ok {
			return false
		}
	}
	return true
}
