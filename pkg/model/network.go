package model

import (
	"fmt"
	"sort"
)

// Sentinel terminal node IDs. They are always present and are never
// components: cut sets and probability maps exclude them by construction.
const (
	SourceID = "source"
	SinkID   = "sink"
)

// Network is a directed graph of components between the source and sink
// terminals. It is built once per analysis session and treated as a
// read-only snapshot by every engine.
type Network struct {
	components map[string]*Component
	adjacency  map[string]map[string]struct{} // from -> set of to
	inDegree   map[string]int
}

// NewNetwork creates an empty network containing only the two terminals.
func NewNetwork() *Network {
	n := &Network{
		components: make(map[string]*Component),
		adjacency:  make(map[string]map[string]struct{}),
		inDegree:   make(map[string]int),
	}
	n.adjacency[SourceID] = make(map[string]struct{})
	n.adjacency[SinkID] = make(map[string]struct{})
	return n
}

// AddComponent registers a component node. Re-adding an existing ID (or
// shadowing a terminal) returns ErrDuplicateEntity.
func (n *Network) AddComponent(c *Component) error {
	if c.ID == SourceID || c.ID == SinkID {
		return fmt.Errorf("%w: %q is a reserved terminal", ErrDuplicateEntity, c.ID)
	}
	if _, exists := n.components[c.ID]; exists {
		return fmt.Errorf("%w: %s", ErrDuplicateEntity, c.ID)
	}
	n.components[c.ID] = c
	n.adjacency[c.ID] = make(map[string]struct{})
	return nil
}

// Connect adds a directed edge between two existing nodes.
func (n *Network) Connect(from, to string) error {
	if _, ok := n.adjacency[from]; !ok {
		return fmt.Errorf("%w: %s", ErrUnknownNode, from)
	}
	if _, ok := n.adjacency[to]; !ok {
		return fmt.Errorf("%w: %s", ErrUnknownNode, to)
	}
	if _, dup := n.adjacency[from][to]; !dup {
		n.adjacency[from][to] = struct{}{}
		n.inDegree[to]++
	}
	return nil
}

// Component looks up a component by ID.
func (n *Network) Component(id string) (*Component, bool) {
	c, ok := n.components[id]
	return c, ok
}

// ComponentIDs returns all component IDs in sorted order.
func (n *Network) ComponentIDs() []string {
	ids := make([]string, 0, len(n.components))
	for id := range n.components {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

// HasEdge reports whether a directed edge from -> to exists.
func (n *Network) HasEdge(from, to string) bool {
	_, ok := n.adjacency[from][to]
	return ok
}

// Successors returns the targets of a node's outgoing edges, sorted for
// deterministic traversal.
func (n *Network) Successors(id string) []string {
	out := make([]string, 0, len(n.adjacency[id]))
	for to := range n.adjacency[id] {
		out = append(out, to)
	}
	sort.Strings(out)
	return out
}

// Degree returns the total (in + out) degree of a node. Used by the
// decision-diagram engine to order variables, most-connected first.
func (n *Network) Degree(id string) int {
	return len(n.adjacency[id]) + n.inDegree[id]
}

// AllPaths enumerates every simple path from source to sink via DFS.
// Paths include the terminal nodes. The result is freshly computed on
// each call; nothing is cached.
func (n *Network) AllPaths() [][]string {
	var paths [][]string
	visited := map[string]bool{SourceID: true}
	stack := []string{SourceID}

	var walk func(node string)
	walk = func(node string) {
		if node == SinkID {
			path := make([]string, len(stack))
			copy(path, stack)
			paths = append(paths, path)
			return
		}
		for _, next := range n.Successors(node) {
			if visited[next] {
				continue
			}
			visited[next] = true
			stack = append(stack, next)
			walk(next)
			stack = stack[:len(stack)-1]
			visited[next] = false
		}
	}
	walk(SourceID)
	return paths
}

// ComponentPaths returns AllPaths with terminals stripped, keeping only
// non-empty component sequences. Callers that need the raw paths
// (direct-edge detection) should use AllPaths.
func (n *Network) ComponentPaths() [][]string {
	var out [][]string
	for _, path := range n.AllPaths() {
		comps := stripTerminals(path)
		if len(comps) > 0 {
			out = append(out, comps)
		}
	}
	return out
}

func stripTerminals(path []string) []string {
	comps := make([]string, 0, len(path))
	for _, node := range path {
		if node != SourceID && node != SinkID {
			comps = append(comps, node)
		}
	}
	return comps
}
