// Package pds computes possible-d-separating sets: the collider-chain
// reachable nodes that bound conditioning-set search in FCI-family
// discovery.
package pds

import (
	"fmt"

	"github.com/katalvlaran/lvlpag/core"
	"github.com/katalvlaran/lvlpag/paths"
	"github.com/katalvlaran/lvlpag/reach"
)

// Sentinel errors for PDS queries.
var (
	// ErrGraphNil is returned if a nil graph pointer is passed.
	ErrGraphNil = fmt.Errorf("pds: graph is nil: %w", core.ErrInvalidQuery)

	// ErrSameNode is returned when x == y.
	ErrSameNode = fmt.Errorf("pds: x and y must differ: %w", core.ErrInvalidQuery)
)

// PDS returns the possible-d-separating set of y relative to x: every
// node w ∉ {x, y} connected to y by a path on which each internal node
// is a collider and a possible ancestor of y. Neighbors of y (other
// than x) qualify vacuously. An empty result is a normal outcome.
//
// Errors:
//   - ErrGraphNil: if g is nil.
//   - core.ErrUnknownNode: if x or y is absent.
//   - ErrSameNode: if x == y.
//
// Complexity: O(E²) worst case — the walk visits each ordered hop pair
// at most once, with one possible-ancestor check per expanded node.
func PDS(g *core.Graph, x, y string) (core.NodeSet, error) {
	if err := validate(g, x, y); err != nil {
		return nil, err
	}

	return chainWalk(g, x, y, nil, false)
}

// PDSPath refines PDS: the connecting paths must additionally run
// entirely through pdsSet and be uncovered. Passing a nil pdsSet
// computes PDS(g, x, y) first and restricts to it — the common calling
// pattern when no tighter restriction is known.
//
// Errors: as PDS.
func PDSPath(g *core.Graph, x, y string, pdsSet core.NodeSet) (core.NodeSet, error) {
	if err := validate(g, x, y); err != nil {
		return nil, err
	}
	if pdsSet == nil {
		var err error
		if pdsSet, err = chainWalk(g, x, y, nil, false); err != nil {
			return nil, err
		}
	}

	return chainWalk(g, x, y, pdsSet, true)
}

// validate runs the shared precondition checks, fail-fast.
func validate(g *core.Graph, x, y string) error {
	if g == nil {
		return ErrGraphNil
	}
	if !g.HasNode(x) {
		return fmt.Errorf("%w: %q", core.ErrUnknownNode, x)
	}
	if !g.HasNode(y) {
		return fmt.Errorf("%w: %q", core.ErrUnknownNode, y)
	}
	if x == y {
		return ErrSameNode
	}

	return nil
}

// chainWalk walks outward from y over ordered hop pairs (prev, cur):
// extending a path past cur requires cur to be a collider between its
// path neighbors and a possible ancestor of y. Every node so reached
// (bar x and y) joins the result. Restricting to a node set and
// requiring uncovered triples turns the same walk into PDSPath.
//
// Tracking visited hop pairs rather than nodes is what lets distinct
// collider chains cross a shared node without looping.
func chainWalk(g *core.Graph, x, y string, restrict core.NodeSet, uncoveredOnly bool) (core.NodeSet, error) {
	ancOfY, err := reach.PossibleAncestors(g, y)
	if err != nil {
		return nil, err
	}

	type hop struct{ prev, cur string }
	result := core.NewNodeSet()
	seen := make(map[hop]struct{})
	var queue []hop

	admit := func(id string) bool {
		return restrict == nil || restrict.Has(id)
	}

	firstAdj, err := g.Neighbors(y)
	if err != nil {
		return nil, err
	}
	for _, a := range firstAdj {
		if !admit(a.Node) {
			continue
		}
		h := hop{y, a.Node}
		seen[h] = struct{}{}
		queue = append(queue, h)
		if a.Node != x {
			result.Add(a.Node)
		}
	}

	for len(queue) > 0 {
		h := queue[0]
		queue = queue[1:]

		// cur may only serve as an internal node of a longer chain if
		// it is a possible ancestor of y.
		if !ancOfY.Has(h.cur) {
			continue
		}

		adj, err := g.Neighbors(h.cur)
		if err != nil {
			return nil, err
		}
		for _, a := range adj {
			next := a.Node
			if next == h.prev || !admit(next) {
				continue
			}
			collider, err := paths.IsCollider(g, h.prev, h.cur, next)
			if err != nil {
				return nil, err
			}
			if !collider {
				continue
			}
			if uncoveredOnly {
				covered, err := paths.IsCoveredTriple(g, h.prev, h.cur, next)
				if err != nil {
					return nil, err
				}
				if covered {
					continue
				}
			}

			nh := hop{h.cur, next}
			if _, dup := seen[nh]; dup {
				continue
			}
			seen[nh] = struct{}{}
			queue = append(queue, nh)
			if next != x && next != y {
				result.Add(next)
			}
		}
	}

	return result, nil
}
