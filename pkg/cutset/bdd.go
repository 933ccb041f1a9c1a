package cutset

import (
	"sort"

	"github.com/dd0wney/cluso-reliability/pkg/model"
)

// Terminal node indices in the diagram arena.
const (
	falseNode = 0
	trueNode  = 1
)

// Operation tags for the apply cache.
const (
	opAnd = iota
	opOr
	opNot
)

// diagramNode is one decision node. lo is the branch taken when the
// variable is failed (0), hi when it is working (1). Terminals carry a
// level one past the last variable.
type diagramNode struct {
	level int
	lo    int
	hi    int
}

type nodeKey struct{ level, lo, hi int }

type applyKey struct{ op, a, b int }

// diagram is an arena-backed, hash-consed decision diagram over an ordered
// variable set. Nodes are addressed by index; the unique table keyed on
// (level, lo, hi) guarantees structural sharing, and the apply cache
// memoizes Boolean combinations. A diagram is owned by a single analysis
// call and is not safe for concurrent use.
type diagram struct {
	vars   []string
	level  map[string]int
	nodes  []diagramNode
	unique map[nodeKey]int
	cache  map[applyKey]int
}

// newDiagram allocates a diagram whose variable order is the given slice,
// first entry tested first.
func newDiagram(vars []string) *diagram {
	d := &diagram{
		vars:   vars,
		level:  make(map[string]int, len(vars)),
		unique: make(map[nodeKey]int),
		cache:  make(map[applyKey]int),
	}
	for i, v := range vars {
		d.level[v] = i
	}
	terminal := len(vars)
	d.nodes = append(d.nodes, diagramNode{level: terminal}, diagramNode{level: terminal})
	return d
}

// mk returns the canonical node for (level, lo, hi), eliminating redundant
// tests and sharing isomorphic subgraphs.
func (d *diagram) mk(level, lo, hi int) int {
	if lo == hi {
		return lo
	}
	key := nodeKey{level, lo, hi}
	if idx, ok := d.unique[key]; ok {
		return idx
	}
	idx := len(d.nodes)
	d.nodes = append(d.nodes, diagramNode{level: level, lo: lo, hi: hi})
	d.unique[key] = idx
	return idx
}

// variable returns the node for a single variable tested in isolation.
func (d *diagram) variable(name string) int {
	return d.mk(d.level[name], falseNode, trueNode)
}

// apply combines two functions with a binary Boolean operation,
// memoized on (op, a, b).
func (d *diagram) apply(op, a, b int) int {
	switch op {
	case opAnd:
		if a == falseNode || b == falseNode {
			return falseNode
		}
		if a == trueNode {
			return b
		}
		if b == trueNode {
			return a
		}
	case opOr:
		if a == trueNode || b == trueNode {
			return trueNode
		}
		if a == falseNode {
			return b
		}
		if b == falseNode {
			return a
		}
	}
	if a > b {
		a, b = b, a // both ops are commutative
	}
	key := applyKey{op, a, b}
	if idx, ok := d.cache[key]; ok {
		return idx
	}

	na, nb := d.nodes[a], d.nodes[b]
	level := na.level
	if nb.level < level {
		level = nb.level
	}
	aLo, aHi := a, a
	if na.level == level {
		aLo, aHi = na.lo, na.hi
	}
	bLo, bHi := b, b
	if nb.level == level {
		bLo, bHi = nb.lo, nb.hi
	}

	idx := d.mk(level, d.apply(op, aLo, bLo), d.apply(op, aHi, bHi))
	d.cache[key] = idx
	return idx
}

// negate complements a function.
func (d *diagram) negate(a int) int {
	switch a {
	case falseNode:
		return trueNode
	case trueNode:
		return falseNode
	}
	key := applyKey{opNot, a, a}
	if idx, ok := d.cache[key]; ok {
		return idx
	}
	n := d.nodes[a]
	idx := d.mk(n.level, d.negate(n.lo), d.negate(n.hi))
	d.cache[key] = idx
	return idx
}

// satisfyingFailures walks every path from root to the true terminal and
// collects the variables assigned failed (0) along each. Variables skipped
// by the ordering are don't-cares and are left out; the minimality
// reduction downstream removes any candidate whose don't-cares actually
// mattered.
func (d *diagram) satisfyingFailures(root int) []Set {
	var out []Set
	var walk func(idx int, failed []string)
	walk = func(idx int, failed []string) {
		switch idx {
		case falseNode:
			return
		case trueNode:
			out = append(out, NewSet(failed...))
			return
		}
		n := d.nodes[idx]
		walk(n.lo, append(failed, d.vars[n.level]))
		walk(n.hi, failed)
	}
	walk(root, nil)
	return out
}

// BDD finds minimal cut sets by building the system failure function as a
// decision diagram and enumerating its satisfying assignments. It must
// agree with MOCUS on every network; Compare is the cross-check.
func BDD(net *model.Network) (Structure, error) {
	paths, perfect, err := preparePaths(net)
	if err != nil {
		return Structure{}, err
	}
	if perfect {
		return Structure{Kind: KindPerfect}, nil
	}

	d := newDiagram(orderVariables(net, paths))

	// One variable per component, true meaning "working". A path works
	// when all of its components work; the system works when any path
	// does; failure is the complement.
	works := falseNode
	for _, path := range paths {
		pathWorks := trueNode
		for _, comp := range path {
			pathWorks = d.apply(opAnd, pathWorks, d.variable(comp))
		}
		works = d.apply(opOr, works, pathWorks)
	}
	fails := d.negate(works)

	switch fails {
	case falseNode:
		return Structure{Kind: KindPerfect}, nil
	case trueNode:
		return Structure{Kind: KindAlwaysFails}, nil
	}

	return Structure{Kind: KindCutSets, Sets: minimize(d.satisfyingFailures(fails))}, nil
}

// orderVariables ranks components by total graph degree, most-connected
// first, so heavily shared components sit near the diagram root. This is
// a compactness heuristic only; any order is correct.
func orderVariables(net *model.Network, paths [][]string) []string {
	seen := make(map[string]struct{})
	var vars []string
	for _, path := range paths {
		for _, comp := range path {
			if _, ok := seen[comp]; !ok {
				seen[comp] = struct{}{}
				vars = append(vars, comp)
			}
		}
	}
	sort.Slice(vars, func(i, j int) bool {
		di, dj := net.Degree(vars[i]), net.Degree(vars[j])
		if di != dj {
			return di > dj
		}
		return vars[i] < vars[j]
	})
	return vars
}
