// Package paths provides the Path value type and the stateless
// path/triple predicates shared by the separation oracle and the
// PAG structural searches.
package paths

import (
	"fmt"

	"github.com/katalvlaran/lvlpag/core"
)

// Sentinel errors for path construction and predicate evaluation.
var (
	// ErrBrokenPath indicates a Path value that does not describe a
	// simple path of the given graph (repeated node, missing hop edge,
	// or hop metadata out of sync with the node sequence).
	ErrBrokenPath = fmt.Errorf("paths: broken path: %w", core.ErrInvalidQuery)

	// ErrNonAdjacent indicates a triple predicate was asked about nodes
	// that lack the required connecting edges.
	ErrNonAdjacent = fmt.Errorf("paths: required edge missing: %w", core.ErrInvalidQuery)
)

// Path is an immutable ordered sequence of distinct nodes together
// with the edges each consecutive pair travels. Hops[i] joins Nodes[i]
// and Nodes[i+1], oriented so that Hops[i].U == Nodes[i]; carrying the
// hop edges keeps collider and covering tests free of graph lookups.
//
// A Path never references the graph it came from; pass the graph
// alongside explicitly when re-validating.
type Path struct {
	// Nodes is the visited node sequence, in order.
	Nodes []string

	// Hops holds the edge used between each consecutive node pair.
	Hops []core.Edge
}

// BuildPath constructs a Path from a node ID sequence, resolving every
// hop against g and validating simplicity.
//
// Errors:
//   - core.ErrUnknownNode: if any node is absent from g.
//   - ErrBrokenPath: if a node repeats or a hop edge is missing.
//
// Complexity: O(k) for k nodes.
func BuildPath(g *core.Graph, ids ...string) (Path, error) {
	seen := make(map[string]struct{}, len(ids))
	p := Path{Nodes: make([]string, len(ids)), Hops: make([]core.Edge, 0, len(ids))}
	copy(p.Nodes, ids)

	for i, id := range ids {
		if !g.HasNode(id) {
			return Path{}, fmt.Errorf("%w: %q", core.ErrUnknownNode, id)
		}
		if _, dup := seen[id]; dup {
			return Path{}, fmt.Errorf("%w: node %q repeats", ErrBrokenPath, id)
		}
		seen[id] = struct{}{}

		if i == 0 {
			continue
		}
		e, err := g.EdgeBetween(ids[i-1], id)
		if err != nil {
			return Path{}, fmt.Errorf("%w: no edge %q - %q", ErrBrokenPath, ids[i-1], id)
		}
		p.Hops = append(p.Hops, e)
	}

	return p, nil
}

// Len returns the number of nodes on the path.
func (p Path) Len() int { return len(p.Nodes) }

// Interior returns the internal nodes of the path (everything but the
// two endpoints). The returned slice is freshly allocated.
func (p Path) Interior() []string {
	if len(p.Nodes) <= 2 {
		return nil
	}
	out := make([]string, len(p.Nodes)-2)
	copy(out, p.Nodes[1:len(p.Nodes)-1])

	return out
}

// Validate checks that p is a simple path of g and that every hop
// matches the graph's current edge between its endpoints.
//
// Errors:
//   - core.ErrUnknownNode: if a node is absent from g.
//   - ErrBrokenPath: otherwise, when the path is malformed.
func (p Path) Validate(g *core.Graph) error {
	if len(p.Nodes) == 0 {
		return fmt.Errorf("%w: empty node sequence", ErrBrokenPath)
	}
	if len(p.Hops) != len(p.Nodes)-1 {
		return fmt.Errorf("%w: %d nodes with %d hops", ErrBrokenPath, len(p.Nodes), len(p.Hops))
	}

	seen := make(map[string]struct{}, len(p.Nodes))
	for i, id := range p.Nodes {
		if !g.HasNode(id) {
			return fmt.Errorf("%w: %q", core.ErrUnknownNode, id)
		}
		if _, dup := seen[id]; dup {
			return fmt.Errorf("%w: node %q repeats", ErrBrokenPath, id)
		}
		seen[id] = struct{}{}

		if i == 0 {
			continue
		}
		e, err := g.EdgeBetween(p.Nodes[i-1], id)
		if err != nil || e != p.Hops[i-1] {
			return fmt.Errorf("%w: hop %q - %q out of sync with graph", ErrBrokenPath, p.Nodes[i-1], id)
		}
	}

	return nil
}

// String renders the path in PAG notation, e.g. "A --> B <-> C".
func (p Path) String() string {
	if len(p.Nodes) == 0 {
		return "<empty>"
	}
	out := p.Nodes[0]
	for i, e := range p.Hops {
		mid := e.String()
		// Edge.String renders "U mark-mark V"; strip the endpoint names.
		out += mid[len(e.U) : len(mid)-len(e.V)]
		out += p.Nodes[i+1]
	}

	return out
}
