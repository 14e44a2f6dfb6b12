// File: methods_adjacent.go
// Role: read-only query API (node/edge lookups, endpoint marks,
//       neighborhoods, per-kind edge enumeration).
// Determinism:
//   - Nodes(), NeighborIDs() return IDs sorted lex asc.
//   - Neighbors() sorts by neighbor ID asc.
//   - Edges(), EdgesOfKind() sort by (U, V) asc on the canonical edge.

package core

import "sort"

// Adjacency describes one edge incident to a queried node. Edge is
// oriented so that Edge.U is the queried node; Node repeats Edge.V for
// convenience.
type Adjacency struct {
	// Node is the neighbor on the far end of Edge.
	Node string

	// Edge is the connecting edge, oriented from the queried node.
	Edge Edge
}

// HasNode reports whether id is a node of the graph.
// Complexity: O(1).
func (g *Graph) HasNode(id string) bool {
	_, ok := g.nodes[id]

	return ok
}

// Nodes returns all node IDs sorted lexicographically ascending.
// Complexity: O(V log V).
func (g *Graph) Nodes() []string {
	ids := make([]string, 0, len(g.nodes))
	for id := range g.nodes {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	return ids
}

// NodeCount returns the number of nodes.
func (g *Graph) NodeCount() int { return len(g.nodes) }

// EdgeCount returns the number of edges across all kinds.
func (g *Graph) EdgeCount() int {
	var n int
	for _, bucket := range g.edges {
		n += len(bucket)
	}

	return n
}

// HasAnyEdge reports whether any edge, of whatever kind, connects u
// and v. Complexity: O(1).
func (g *Graph) HasAnyEdge(u, v string) bool {
	_, ok := g.adjacency[u][v]

	return ok
}

// HasEdge reports whether an edge of the given kind connects u and v.
// Directed edges respect orientation (true only for u → v); the other
// kinds match in either order, since direction sense for circle edges
// lives in their marks, not their storage order.
// Complexity: O(1).
func (g *Graph) HasEdge(u, v string, kind EdgeKind) bool {
	e, ok := g.adjacency[u][v]
	if !ok || e.Kind != kind {
		return false
	}
	if kind == Directed {
		// Adjacency keeps the true direction recoverable via marks:
		// the stored copy under u has MarkU == Tail only for u → v.
		return e.MarkU == Tail && e.MarkV == Arrow
	}

	return true
}

// EdgeBetween returns the unique edge connecting u and v, oriented so
// that the returned Edge.U == u.
//
// Errors:
//   - ErrUnknownNode: if u or v is absent.
//   - ErrEdgeNotFound: if no edge connects u and v.
//
// Complexity: O(1).
func (g *Graph) EdgeBetween(u, v string) (Edge, error) {
	if !g.HasNode(u) || !g.HasNode(v) {
		return Edge{}, ErrUnknownNode
	}
	e, ok := g.adjacency[u][v]
	if !ok {
		return Edge{}, ErrEdgeNotFound
	}

	return e, nil
}

// MarkAt returns the endpoint mark at v on the edge u *-* v.
//
// Errors:
//   - ErrUnknownNode: if u or v is absent.
//   - ErrEdgeNotFound: if no edge connects u and v.
//
// Complexity: O(1).
func (g *Graph) MarkAt(u, v string) (Mark, error) {
	e, err := g.EdgeBetween(u, v)
	if err != nil {
		return Tail, err
	}

	return e.MarkV, nil
}

// Neighbors returns every edge incident to v whose kind is in kinds
// (all kinds when none are given), as Adjacency values oriented from v.
// Unlike a plain directed-graph neighborhood, incoming directed edges
// are included: the separation queries need full incidence, and the
// direction sense is recoverable from the marks.
//
// The result is sorted by neighbor ID ascending, so every traversal
// built on it is deterministic.
//
// Errors:
//   - ErrEmptyNodeID: if v == "".
//   - ErrUnknownNode: if v is absent.
//
// Complexity: O(d log d), where d is the degree of v.
func (g *Graph) Neighbors(v string, kinds ...EdgeKind) ([]Adjacency, error) {
	if v == "" {
		return nil, ErrEmptyNodeID
	}
	if !g.HasNode(v) {
		return nil, ErrUnknownNode
	}

	var keep map[EdgeKind]struct{}
	if len(kinds) > 0 {
		keep = make(map[EdgeKind]struct{}, len(kinds))
		for _, k := range kinds {
			keep[k] = struct{}{}
		}
	}

	out := make([]Adjacency, 0, len(g.adjacency[v]))
	for nbr, e := range g.adjacency[v] {
		if keep != nil {
			if _, ok := keep[e.Kind]; !ok {
				continue
			}
		}
		out = append(out, Adjacency{Node: nbr, Edge: e})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Node < out[j].Node })

	return out, nil
}

// NeighborIDs returns the IDs of nodes adjacent to v via any edge kind
// in kinds (all kinds when none are given), sorted lex ascending.
//
// Errors: propagated from Neighbors.
// Complexity: O(d log d).
func (g *Graph) NeighborIDs(v string, kinds ...EdgeKind) ([]string, error) {
	adj, err := g.Neighbors(v, kinds...)
	if err != nil {
		return nil, err
	}
	ids := make([]string, len(adj))
	for i, a := range adj {
		ids[i] = a.Node
	}

	return ids, nil
}

// EdgesOfKind returns every edge of the given kind in canonical
// orientation, sorted by (U, V) ascending. This is the read-only
// iteration surface for export collaborators.
// Complexity: O(E log E) in the bucket size.
func (g *Graph) EdgesOfKind(kind EdgeKind) []Edge {
	bucket := g.edges[kind]
	out := make([]Edge, 0, len(bucket))
	for _, e := range bucket {
		out = append(out, e)
	}
	sortEdges(out)

	return out
}

// Edges returns every edge of the graph in canonical orientation,
// grouped by kind in AllKinds order and sorted by (U, V) within each
// kind. Complexity: O(E log E).
func (g *Graph) Edges() []Edge {
	out := make([]Edge, 0, g.EdgeCount())
	for _, kind := range AllKinds {
		out = append(out, g.EdgesOfKind(kind)...)
	}

	return out
}

// sortEdges orders edges by (U, V) ascending.
func sortEdges(es []Edge) {
	sort.Slice(es, func(i, j int) bool {
		if es[i].U != es[j].U {
			return es[i].U < es[j].U
		}

		return es[i].V < es[j].V
	})
}
