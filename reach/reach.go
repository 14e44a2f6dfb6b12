// Package reach computes possible-ancestor and possible-descendant
// sets over a mixed-edge graph: reachability along chains of edges
// that are each compatible with the required direction.
package reach

import (
	"fmt"

	"github.com/katalvlaran/lvlpag/core"
)

// ErrGraphNil is returned if a nil graph pointer is passed.
var ErrGraphNil = fmt.Errorf("reach: graph is nil: %w", core.ErrInvalidQuery)

// direction selects which way a reachability walk follows
// possibly-directed edges.
type direction uint8

const (
	towardAncestors direction = iota
	towardDescendants
	towardAnteriors
)

// PossibleAncestors returns every node w with a path w ⇢ … ⇢ v whose
// edges are all possibly directed toward v, including v itself.
//
// Errors:
//   - ErrGraphNil: if g is nil.
//   - core.ErrUnknownNode: if v is absent.
//
// Complexity: O(V + E); the visited set makes the walk terminate even
// when the partial orientation admits cycles.
func PossibleAncestors(g *core.Graph, v string) (core.NodeSet, error) {
	return walk(g, v, towardAncestors)
}

// PossibleDescendants returns every node w with a path v ⇢ … ⇢ w whose
// edges are all possibly directed away from v, including v itself.
//
// Errors and complexity: as PossibleAncestors.
func PossibleDescendants(g *core.Graph, v string) (core.NodeSet, error) {
	return walk(g, v, towardDescendants)
}

// PossibleAncestorsOf returns the union of PossibleAncestors over vs.
// An empty vs yields an empty set.
func PossibleAncestorsOf(g *core.Graph, vs ...string) (core.NodeSet, error) {
	return walkAll(g, vs, towardAncestors)
}

// PossibleDescendantsOf returns the union of PossibleDescendants
// over vs. An empty vs yields an empty set.
func PossibleDescendantsOf(g *core.Graph, vs ...string) (core.NodeSet, error) {
	return walkAll(g, vs, towardDescendants)
}

// Anteriors returns the anterior closure of vs: every node reaching
// some member of vs along edges that are each undirected or possibly
// directed toward that member, including vs itself. Anteriors extend
// possible ancestors across selection (undirected) edges, the closure
// behind anterior-graph restrictions in ancestral-graph constructions.
//
// Errors and complexity: as PossibleAncestorsOf.
func Anteriors(g *core.Graph, vs ...string) (core.NodeSet, error) {
	return walkAll(g, vs, towardAnteriors)
}

// IsPossibleAncestor reports whether w is a possible ancestor of v
// (equivalently, v a possible descendant of w). Every node is a
// possible ancestor of itself.
//
// Errors: as PossibleAncestors, for either argument.
func IsPossibleAncestor(g *core.Graph, w, v string) (bool, error) {
	if g == nil {
		return false, ErrGraphNil
	}
	if !g.HasNode(w) {
		return false, fmt.Errorf("%w: %q", core.ErrUnknownNode, w)
	}
	anc, err := PossibleAncestors(g, v)
	if err != nil {
		return false, err
	}

	return anc.Has(w), nil
}

// walk runs the frontier traversal from a single start node.
func walk(g *core.Graph, start string, dir direction) (core.NodeSet, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	if !g.HasNode(start) {
		return nil, fmt.Errorf("%w: %q", core.ErrUnknownNode, start)
	}

	result := core.NewNodeSet(start)
	frontier := []string{start}
	for len(frontier) > 0 {
		cur := frontier[0]
		frontier = frontier[1:]

		adj, _ := g.Neighbors(cur) // cur is always a known node here
		for _, a := range adj {
			if result.Has(a.Node) || !steps(a.Edge, dir) {
				continue
			}
			result.Add(a.Node)
			frontier = append(frontier, a.Node)
		}
	}

	return result, nil
}

// walkAll unions single-start walks, validating every start first so
// the query fails fast before any traversal.
func walkAll(g *core.Graph, starts []string, dir direction) (core.NodeSet, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	for _, v := range starts {
		if !g.HasNode(v) {
			return nil, fmt.Errorf("%w: %q", core.ErrUnknownNode, v)
		}
	}

	result := core.NewNodeSet()
	for _, v := range starts {
		part, err := walk(g, v, dir)
		if err != nil {
			return nil, err
		}
		for id := range part {
			result.Add(id)
		}
	}

	return result, nil
}

// steps reports whether e (oriented cur → neighbor) may be traversed
// one hop in the requested direction:
//
//	towardAncestors:   the edge must be possibly directed neighbor → cur
//	towardDescendants: the edge must be possibly directed cur → neighbor
//	towardAnteriors:   as towardAncestors, or an undirected edge
func steps(e core.Edge, dir direction) bool {
	if dir == towardAnteriors && e.Kind == core.Undirected {
		return true
	}
	if dir != towardDescendants {
		e = e.Reversed()
	}

	return (e.MarkV == core.Arrow || e.MarkV == core.Circle) && e.MarkU != core.Arrow
}
