// Package msep implements the m-separation oracle over mixed-edge
// causal graphs: are the node sets x and y separated given the
// conditioning set z?
package msep

import (
	"fmt"

	"github.com/katalvlaran/lvlpag/core"
	"github.com/katalvlaran/lvlpag/reach"
)

// MSeparated reports whether x and y are m-separated by z in g.
//
// x, y, z must be pairwise disjoint sets of existing nodes (z may be
// empty). An empty x or y is vacuously separated. The answer is
// symmetric in x and y.
//
// Errors (checked before any traversal):
//   - ErrGraphNil: if g is nil.
//   - ErrOptionViolation: for invalid options.
//   - core.ErrUnknownNode: if any referenced node is absent.
//   - ErrOverlappingSets: if x∩y, x∩z, or y∩z is non-empty.
//   - ErrBudgetExceeded: legal-path strategy only, when WithMaxPaths
//     trips before a verdict.
//
// Complexity: O(V·E) for the default reachability strategy;
// exponential worst case for StrategyLegalPaths.
func MSeparated(g *core.Graph, x, y, z core.NodeSet, opts ...Option) (bool, error) {
	o, err := validate(g, x, y, z, opts)
	if err != nil {
		return false, err
	}
	// Vacuous separation by convention.
	if len(x) == 0 || len(y) == 0 {
		return true, nil
	}

	if o.Strategy == StrategyLegalPaths {
		_, connected, err := connectingPath(g, x, y, z, o)

		return !connected, err
	}

	return hopSeparated(g, x, y, z), nil
}

// validate applies options and runs every precondition check of §7:
// fail fast, before any traversal begins.
func validate(g *core.Graph, x, y, z core.NodeSet, opts []Option) (Options, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return o, o.err
	}
	if g == nil {
		return o, ErrGraphNil
	}
	for _, set := range []core.NodeSet{x, y, z} {
		for _, id := range set.Sorted() {
			if !g.HasNode(id) {
				return o, fmt.Errorf("%w: %q", core.ErrUnknownNode, id)
			}
		}
	}
	if x.Intersects(y) || x.Intersects(z) || y.Intersects(z) {
		return o, ErrOverlappingSets
	}

	return o, nil
}

// hopSeparated decides the query by reachability over (prev, cur) hop
// states: the walk arrived at cur along the prev-cur edge. A state may
// extend to a neighbor next of cur exactly when cur is open between
// prev and next under the m-connecting rule:
//
//   - collider (arrowheads at cur from both sides): cur must be in z
//     or have a possible descendant in z;
//   - otherwise: cur must lie outside z.
//
// Reaching any y node means an open walk exists, and an open walk
// exists iff an open simple path does (the m-connecting walk lemma),
// so this is the polynomial equivalent of the legal-path strategy.
// Hop states rather than plain nodes let a node be traversed as a
// collider from one side and a non-collider from another.
func hopSeparated(g *core.Graph, x, y, z core.NodeSet) bool {
	// Colliders open via a possible descendant in z; a node has one
	// exactly when it is a possible ancestor of some z member.
	zAnc, _ := reach.PossibleAncestorsOf(g, z.Sorted()...) // z validated upfront

	type hop struct{ prev, cur string }
	seen := make(map[hop]struct{})
	var queue []hop

	// A direct x-y edge has no interior and is always open.
	for _, s := range x.Sorted() {
		adj, _ := g.Neighbors(s)
		for _, a := range adj {
			if y.Has(a.Node) {
				return false
			}
			h := hop{s, a.Node}
			if _, dup := seen[h]; dup {
				continue
			}
			seen[h] = struct{}{}
			queue = append(queue, h)
		}
	}

	for len(queue) > 0 {
		h := queue[0]
		queue = queue[1:]

		into, _ := g.MarkAt(h.prev, h.cur) // mark at cur from the prev side
		adj, _ := g.Neighbors(h.cur)
		for _, a := range adj {
			if a.Node == h.prev {
				continue
			}
			// a.Edge is oriented cur → next: MarkU sits at cur.
			if into == core.Arrow && a.Edge.MarkU == core.Arrow {
				if !zAnc.Has(h.cur) { // z ⊆ zAnc by reflexivity
					continue
				}
			} else if z.Has(h.cur) {
				continue
			}
			if y.Has(a.Node) {
				return false
			}
			nh := hop{h.cur, a.Node}
			if _, dup := seen[nh]; dup {
				continue
			}
			seen[nh] = struct{}{}
			queue = append(queue, nh)
		}
	}

	return true
}
