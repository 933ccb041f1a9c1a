package cutset

import (
	"github.com/dd0wney/cluso-reliability/pkg/model"
)

// MOCUS finds minimal cut sets by the Method of Obtaining Cut Sets: every
// source-sink path is expanded into a cross-product of candidates, so each
// surviving candidate intersects every path and is therefore a true cut
// set. Candidate growth is exponential in path count in the worst case;
// the decision-diagram engine exists as the alternative for dense graphs.
func MOCUS(net *model.Network) (Structure, error) {
	paths, perfect, err := preparePaths(net)
	if err != nil {
		return Structure{}, err
	}
	if perfect {
		return Structure{Kind: KindPerfect}, nil
	}

	// Seed with singletons from the first path: any cut must break it.
	candidates := make([]Set, 0, len(paths[0]))
	for _, comp := range paths[0] {
		candidates = append(candidates, NewSet(comp))
	}

	// Each remaining path multiplies the candidate pool: a cut must also
	// contain at least one of its components. Duplicates are collapsed per
	// round to keep the pool from ballooning beyond distinct candidates.
	for _, path := range paths[1:] {
		next := make([]Set, 0, len(candidates)*len(path))
		seen := make(map[string]struct{})
		for _, cand := range candidates {
			for _, comp := range path {
				grown := cand.Clone()
				grown[comp] = struct{}{}
				key := grown.Key()
				if _, dup := seen[key]; dup {
					continue
				}
				seen[key] = struct{}{}
				next = append(next, grown)
			}
		}
		candidates = next
	}

	return Structure{Kind: KindCutSets, Sets: minimize(candidates)}, nil
}
