// Package reliability turns minimal cut sets into exact probability
// figures: system unreliability via inclusion-exclusion, and per-component
// Birnbaum and criticality importance measures built on top of it.
package reliability

import (
	"errors"
	"fmt"

	"github.com/dd0wney/cluso-reliability/pkg/cutset"
)

// ErrMissingProbability is returned when a cut set references a component
// absent from the supplied probability map. Absence is never treated as
// "always working".
var ErrMissingProbability = errors.New("reliability: no failure probability for component")

// SystemUnreliability computes the probability that at least one cut set
// is fully failed, assuming independent component failures, by the exact
// inclusion-exclusion expansion: for every non-empty subset of cut sets,
// the probability that the union of their members all fail (product over
// the union, so shared components are counted once), signed + for odd
// subset sizes and - for even.
//
// The expansion has 2^n - 1 terms for n cut sets. Minimal cut-set counts
// of realistic networks keep this small, but callers with many cut sets
// should expect this to dominate runtime.
func SystemUnreliability(sets []cutset.Set, probs map[string]float64) (float64, error) {
	if len(sets) == 0 {
		// No cut sets: the system cannot fail structurally.
		return 0, nil
	}
	for _, s := range sets {
		for id := range s {
			if _, ok := probs[id]; !ok {
				return 0, fmt.Errorf("%w: %s", ErrMissingProbability, id)
			}
		}
	}

	// DFS over include/exclude decisions per cut set, maintaining the
	// multiset union so the member product is taken over distinct
	// components at each leaf.
	total := 0.0
	counts := make(map[string]int)
	var walk func(idx, size int)
	walk = func(idx, size int) {
		if idx == len(sets) {
			if size == 0 {
				return
			}
			p := 1.0
			for id, c := range counts {
				if c > 0 {
					p *= probs[id]
				}
			}
			if size%2 == 1 {
				total += p
			} else {
				total -= p
			}
			return
		}
		walk(idx+1, size)
		for id := range sets[idx] {
			counts[id]++
		}
		walk(idx+1, size+1)
		for id := range sets[idx] {
			counts[id]--
		}
	}
	walk(0, 0)

	return clamp01(total), nil
}

// clamp01 guards against floating-point drift just outside [0,1].
func clamp01(p float64) float64 {
	if p < 0 {
		return 0
	}
	if p > 1 {
		return 1
	}
	return p
}
