// File: legal.go
// Role: the legal-path separation strategy — exhaustive simple-path
//       enumeration with the open-path test applied per candidate.

package msep

import (
	"github.com/katalvlaran/lvlpag/core"
	"github.com/katalvlaran/lvlpag/paths"
)

// MConnectingPath returns a witness m-connecting path between x and y
// given z, if one exists. found == false with a nil error means every
// path is blocked — x and y are m-separated by z.
//
// The witness is deterministic: start nodes, then neighbors at every
// branch, are expanded in lexicographic order, so a fixed graph always
// yields the same path.
//
// Errors: as MSeparated; WithStrategy is ignored (this operation is
// the legal-path strategy), WithMaxPaths applies.
//
// Complexity: exponential in the worst case — intended for small
// graphs and for verifying the moralization strategy.
func MConnectingPath(g *core.Graph, x, y, z core.NodeSet, opts ...Option) (paths.Path, bool, error) {
	o, err := validate(g, x, y, z, opts)
	if err != nil {
		return paths.Path{}, false, err
	}
	if len(x) == 0 || len(y) == 0 {
		return paths.Path{}, false, nil
	}

	return connectingPath(g, x, y, z, o)
}

// connectingPath enumerates simple paths out of x and returns the
// first one that m-connects to y given z.
//
// Enumeration stops a path at its first y node: if a longer path
// through that node were open, its prefix would be open too (the
// prefix's interior is a subset of the longer path's interior), so
// nothing is missed. For the same reason paths never pass through
// other x nodes. Conditioning nodes are traversable — a collider in z
// is exactly how a path opens.
func connectingPath(g *core.Graph, x, y, z core.NodeSet, o Options) (paths.Path, bool, error) {
	var tested int

	for _, start := range x.Sorted() {
		// Explicit stack of candidate path prefixes; neighbors are
		// pushed in reverse order so expansion pops lexicographically.
		stack := [][]string{{start}}

		for len(stack) > 0 {
			prefix := stack[len(stack)-1]
			stack = stack[:len(stack)-1]
			head := prefix[len(prefix)-1]

			adj, _ := g.Neighbors(head) // nodes on prefixes always exist
			for i := len(adj) - 1; i >= 0; i-- {
				nbr := adj[i].Node
				if onPath(prefix, nbr) || x.Has(nbr) {
					continue
				}

				if y.Has(nbr) {
					tested++
					if o.MaxPaths > 0 && tested > o.MaxPaths {
						return paths.Path{}, false, ErrBudgetExceeded
					}
					candidate, err := paths.BuildPath(g, append(prefix[:len(prefix):len(prefix)], nbr)...)
					if err != nil {
						return paths.Path{}, false, err
					}
					open, err := paths.IsMConnecting(g, candidate, z)
					if err != nil {
						return paths.Path{}, false, err
					}
					if open {
						return candidate, true, nil
					}

					continue
				}

				next := make([]string, len(prefix)+1)
				copy(next, prefix)
				next[len(prefix)] = nbr
				stack = append(stack, next)
			}
		}
	}

	return paths.Path{}, false, nil
}

// onPath reports whether id already occurs on the prefix.
func onPath(prefix []string, id string) bool {
	for _, p := range prefix {
		if p == id {
			return true
		}
	}

	return false
}
