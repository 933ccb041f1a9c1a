package cutset

import (
	"fmt"

	"github.com/dd0wney/cluso-reliability/pkg/model"
)

// Kind classifies the structural outcome of a cut-set analysis.
type Kind int

const (
	// KindCutSets means the system can fail and Sets holds the minimal cut sets.
	KindCutSets Kind = iota
	// KindPerfect means the system cannot fail structurally (a direct
	// source-sink edge, or a path of only perfectly reliable components).
	KindPerfect
	// KindAlwaysFails means the system fails regardless of component states.
	KindAlwaysFails
)

// String returns a human-readable kind name.
func (k Kind) String() string {
	switch k {
	case KindCutSets:
		return "cut-sets"
	case KindPerfect:
		return "perfect-reliability"
	case KindAlwaysFails:
		return "always-fails"
	default:
		return "unknown"
	}
}

// Structure is the result of a cut-set engine: an explicit outcome kind
// instead of sentinel exceptions for the degenerate cases.
type Structure struct {
	Kind Kind
	Sets []Set // populated only for KindCutSets
}

// CutSets materializes the conventional list form: nil for perfect
// reliability, a single empty set for unconditional failure.
func (s Structure) CutSets() []Set {
	switch s.Kind {
	case KindPerfect:
		return nil
	case KindAlwaysFails:
		return []Set{NewSet()}
	default:
		return s.Sets
	}
}

// preparePaths applies the shared pre-processing of both engines: the
// direct-connection short-circuit, terminal stripping, and removal of
// perfectly reliable components. It returns (paths, perfect, err); when
// perfect is true the analysis is already decided.
func preparePaths(net *model.Network) ([][]string, bool, error) {
	if net.HasEdge(model.SourceID, model.SinkID) {
		return nil, true, nil
	}

	all := net.AllPaths()
	if len(all) == 0 {
		return nil, false, model.ErrNoPaths
	}

	var paths [][]string
	for _, path := range all {
		comps := make([]string, 0, len(path))
		for _, node := range path {
			if node == model.SourceID || node == model.SinkID {
				continue
			}
			c, ok := net.Component(node)
			if !ok {
				return nil, false, fmt.Errorf("%w: %s", model.ErrUnknownNode, node)
			}
			if c.Distribution == nil {
				return nil, false, fmt.Errorf("%w: %s", model.ErrMissingDistribution, node)
			}
			if structurallyPerfect(c.Distribution) {
				continue
			}
			comps = append(comps, node)
		}
		// A path left with no fallible components can never be broken,
		// so the system as a whole cannot fail.
		if len(comps) == 0 {
			return nil, true, nil
		}
		paths = append(paths, comps)
	}
	return paths, false, nil
}

// structurallyPerfect reports whether a distribution describes a component
// that never fails: a zero-rate exponential constructed directly, bypassing
// parameter validation.
func structurallyPerfect(d model.Distribution) bool {
	exp, ok := d.(model.Exponential)
	return ok && exp.Rate == 0
}
