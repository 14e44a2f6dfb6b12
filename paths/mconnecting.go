// File: mconnecting.go
// Role: the open-path (m-connecting) test behind the legal-path
//       separation strategy.

package paths

import "github.com/katalvlaran/lvlpag/core"

// IsMConnecting reports whether p is open (m-connecting) given the
// conditioning set z:
//
//   - every non-collider on p must lie outside z, and
//   - every collider on p must lie in z or have a possible descendant
//     in z (conditioning on a collider, or downstream of one, opens it).
//
// A path failing either rule is blocked by z; m-separation holds
// exactly when every path between the query sets is blocked.
//
// Collider status is read off the hop marks carried by p, so the test
// itself is O(k) plus one bounded descendant walk per collider.
//
// Errors:
//   - core.ErrUnknownNode / ErrBrokenPath: if p does not validate
//     against g.
func IsMConnecting(g *core.Graph, p Path, z core.NodeSet) (bool, error) {
	if err := p.Validate(g); err != nil {
		return false, err
	}

	for i := 1; i < len(p.Nodes)-1; i++ {
		node := p.Nodes[i]
		// Hops[i-1] is oriented into node (MarkV at node);
		// Hops[i] is oriented out of node (MarkU at node).
		collider := p.Hops[i-1].MarkV == core.Arrow && p.Hops[i].MarkU == core.Arrow

		if !collider {
			if z.Has(node) {
				return false, nil
			}

			continue
		}
		if z.Has(node) {
			continue
		}
		if !descendantInSet(g, node, z) {
			return false, nil
		}
	}

	return true, nil
}

// descendantInSet reports whether some possible descendant of v (v
// excluded, it was already checked) is a member of z. Frontier walk
// over possibly-directed edges; the visited set bounds it to O(V + E).
func descendantInSet(g *core.Graph, v string, z core.NodeSet) bool {
	visited := core.NewNodeSet(v)
	frontier := []string{v}

	for len(frontier) > 0 {
		cur := frontier[0]
		frontier = frontier[1:]

		adj, err := g.Neighbors(cur)
		if err != nil {
			// cur came off the graph itself; unreachable for valid input.
			return false
		}
		for _, a := range adj {
			if visited.Has(a.Node) || !possiblyInto(a.Edge) {
				continue
			}
			if z.Has(a.Node) {
				return true
			}
			visited.Add(a.Node)
			frontier = append(frontier, a.Node)
		}
	}

	return false
}
