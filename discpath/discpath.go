// Package discpath searches for discriminating paths, the uncovered
// collider-chain structure FCI-style orientation rules use to decide
// whether a node is a collider.
package discpath

import (
	"fmt"

	"github.com/katalvlaran/lvlpag/core"
	"github.com/katalvlaran/lvlpag/paths"
)

// Sentinel errors for discriminating-path queries.
var (
	// ErrGraphNil is returned if a nil graph pointer is passed.
	ErrGraphNil = fmt.Errorf("discpath: graph is nil: %w", core.ErrInvalidQuery)

	// ErrNotATriple is returned when (a, b, c) is not a path triple of
	// the graph: the a–b or b–c edge is missing, or the nodes repeat.
	ErrNotATriple = fmt.Errorf("discpath: not a path triple: %w", core.ErrInvalidQuery)

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = fmt.Errorf("discpath: invalid option supplied: %w", core.ErrInvalidQuery)
)

// Option configures the search via functional arguments.
type Option func(*Options)

// Options holds the tunable parameters of a discriminating-path search.
type Options struct {
	// MaxPathLength, if > 0, bounds the node count of any returned
	// path; candidates longer than this are pruned. 0 disables the
	// bound. This is the caller-side budget for very dense graphs.
	MaxPathLength int

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns Options with no length bound.
func DefaultOptions() Options {
	return Options{MaxPathLength: 0, err: nil}
}

// WithMaxPathLength bounds the length (node count) of candidate paths.
//
//	n > 0:  prune candidates longer than n nodes
//	n == 0: explicit no bound
//	n < 0:  invalid option → ErrOptionViolation
func WithMaxPathLength(n int) Option {
	return func(o *Options) {
		if n < 0 {
			o.err = fmt.Errorf("%w: MaxPathLength cannot be negative (%d)", ErrOptionViolation, n)

			return
		}
		o.MaxPathLength = n
	}
}

// DiscriminatingPath searches for a discriminating path for the triple
// (a, b, c), where a–b and b–c are edges of g and b is the candidate
// collider under examination.
//
// A discriminating path here is a simple path p = ⟨v₀, …, a, b⟩ with
// at least three nodes such that:
//
//   - v₀ and b are non-adjacent;
//   - every node strictly between v₀ and a is a collider on p and a
//     possible parent of b (its edge toward b admits the orientation
//     into b);
//   - p is uncovered: no three consecutive nodes form a covered triple.
//
// The third triple node c anchors the query (it is the neighbor whose
// orientation the consuming rule will set) but does not constrain the
// path beyond the triple's validity.
//
// found == false with a nil error means no such path exists — a normal
// miss signaling that the consuming orientation rule does not apply.
//
// The search runs an explicit breadth-first worklist outward from b
// through a, expanding neighbors in lexicographic order, so the first
// hit — and therefore the returned path — is deterministic.
//
// Errors:
//   - ErrGraphNil: if g is nil.
//   - ErrOptionViolation: for invalid options.
//   - core.ErrUnknownNode: if a, b, or c is absent.
//   - ErrNotATriple: if a, b, c repeat or lack the a–b / b–c edges.
//
// Complexity: worst-case exponential in path count, bounded in
// practice by the collider-and-parent pruning and WithMaxPathLength.
func DiscriminatingPath(g *core.Graph, a, b, c string, opts ...Option) (paths.Path, bool, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return paths.Path{}, false, o.err
	}
	if g == nil {
		return paths.Path{}, false, ErrGraphNil
	}
	for _, id := range []string{a, b, c} {
		if !g.HasNode(id) {
			return paths.Path{}, false, fmt.Errorf("%w: %q", core.ErrUnknownNode, id)
		}
	}
	if a == b || b == c || a == c {
		return paths.Path{}, false, fmt.Errorf("%w: nodes repeat", ErrNotATriple)
	}
	if !g.HasAnyEdge(a, b) {
		return paths.Path{}, false, fmt.Errorf("%w: no edge %q - %q", ErrNotATriple, a, b)
	}
	if !g.HasAnyEdge(b, c) {
		return paths.Path{}, false, fmt.Errorf("%w: no edge %q - %q", ErrNotATriple, b, c)
	}

	return search(g, a, b, o)
}

// search grows candidate suffixes ⟨b, a, …, head⟩ breadth-first and
// returns the first completed discriminating path, reversed into
// ⟨v₀, …, a, b⟩ order.
func search(g *core.Graph, a, b string, o Options) (paths.Path, bool, error) {
	// Worklist frames hold the path reversed: frame[0] == b.
	queue := [][]string{{b, a}}

	for len(queue) > 0 {
		frame := queue[0]
		queue = queue[1:]
		head := frame[len(frame)-1]
		prev := frame[len(frame)-2]

		if o.MaxPathLength > 0 && len(frame)+1 > o.MaxPathLength {
			continue
		}

		adj, err := g.Neighbors(head)
		if err != nil {
			return paths.Path{}, false, err
		}
		for _, cand := range adj {
			w := cand.Node
			if onFrame(frame, w) {
				continue
			}

			// Extending past head makes head an interior node of the
			// suffix; beyond a, it must be a collider on the path.
			if head != a {
				collider, err := paths.IsCollider(g, w, head, prev)
				if err != nil {
					return paths.Path{}, false, err
				}
				if !collider {
					continue
				}
			}

			// Keep the path uncovered against the trailing triple.
			covered, err := paths.IsCoveredTriple(g, w, head, prev)
			if err != nil {
				return paths.Path{}, false, err
			}
			if covered {
				continue
			}

			if !g.HasAnyEdge(w, b) {
				// w closes the path as v₀: non-adjacent to b.
				return assemble(g, frame, w)
			}

			// w can only serve as a future interior node if its edge
			// toward b admits the orientation w → b.
			parent, err := paths.IsPossiblyDirected(g, w, b)
			if err != nil {
				return paths.Path{}, false, err
			}
			if !parent {
				continue
			}
			next := make([]string, len(frame)+1)
			copy(next, frame)
			next[len(frame)] = w
			queue = append(queue, next)
		}
	}

	return paths.Path{}, false, nil
}

// assemble reverses a completed frame ⟨b, a, …, head⟩ plus terminal w
// into path order ⟨w, head, …, a, b⟩ and materializes the hop edges.
func assemble(g *core.Graph, frame []string, w string) (paths.Path, bool, error) {
	ids := make([]string, 0, len(frame)+1)
	ids = append(ids, w)
	for i := len(frame) - 1; i >= 0; i-- {
		ids = append(ids, frame[i])
	}
	p, err := paths.BuildPath(g, ids...)
	if err != nil {
		return paths.Path{}, false, err
	}

	return p, true, nil
}

// onFrame reports whether id already occurs on the frame.
func onFrame(frame []string, id string) bool {
	for _, f := range frame {
		if f == id {
			return true
		}
	}

	return false
}
