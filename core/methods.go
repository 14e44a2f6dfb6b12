// Package core: Graph construction methods.
//
// This file provides the mutating operations (AddNode, AddEdge,
// AddCircleEdge, RemoveEdge, RemoveNode, Clone) used by the external
// graph-construction collaborator and by tests. The query packages
// never call anything here: they read a Graph as a frozen snapshot.
package core

// AddNode inserts a node with the given ID.
// Adding an existing node is a no-op.
//
// Errors:
//   - ErrEmptyNodeID: if id == "".
//
// Complexity: O(1).
func (g *Graph) AddNode(id string) error {
	if id == "" {
		return ErrEmptyNodeID
	}
	g.nodes[id] = struct{}{}

	return nil
}

// AddEdge inserts an edge of one of the three fixed kinds between u and
// v, auto-registering both endpoints. Directed edges are ordered u → v;
// bidirected and undirected edges are unordered and stored canonically.
//
// Errors:
//   - ErrEmptyNodeID: if u or v is empty.
//   - ErrSelfLoop: if u == v.
//   - ErrCircleMarks: if kind is CircleKind (use AddCircleEdge).
//   - ErrEdgeKindConflict: if any edge already connects u and v.
//
// Complexity: O(1).
func (g *Graph) AddEdge(u, v string, kind EdgeKind) error {
	if kind == CircleKind {
		return ErrCircleMarks
	}
	markU, markV := fixedMarks(kind)

	return g.insertEdge(Edge{U: u, V: v, Kind: kind, MarkU: markU, MarkV: markV})
}

// AddCircleEdge inserts a partially-oriented edge between u and v with
// explicit endpoint marks: markU at u, markV at v. At least one of the
// marks must be Circle; a fully determined mark pair belongs to one of
// the fixed kinds and is rejected here.
//
// Errors:
//   - ErrEmptyNodeID: if u or v is empty.
//   - ErrSelfLoop: if u == v.
//   - ErrCircleMarks: if neither mark is Circle.
//   - ErrEdgeKindConflict: if any edge already connects u and v.
//
// Complexity: O(1).
func (g *Graph) AddCircleEdge(u, v string, markU, markV Mark) error {
	if markU != Circle && markV != Circle {
		return ErrCircleMarks
	}

	return g.insertEdge(Edge{U: u, V: v, Kind: CircleKind, MarkU: markU, MarkV: markV})
}

// insertEdge validates endpoints, enforces kind exclusivity, and stores
// e in the per-kind catalog plus both adjacency orientations.
func (g *Graph) insertEdge(e Edge) error {
	if e.U == "" || e.V == "" {
		return ErrEmptyNodeID
	}
	if e.U == e.V {
		return ErrSelfLoop
	}
	if _, taken := g.adjacency[e.U][e.V]; taken {
		return ErrEdgeKindConflict
	}

	// Auto-register endpoints.
	g.nodes[e.U] = struct{}{}
	g.nodes[e.V] = struct{}{}

	// Canonical orientation: unordered kinds store U < V.
	canon := e
	if (e.Kind == Bidirected || e.Kind == Undirected) && canon.U > canon.V {
		canon = canon.Reversed()
	}
	if g.edges[canon.Kind] == nil {
		g.edges[canon.Kind] = make(map[pairKey]Edge)
	}
	g.edges[canon.Kind][pairKey{canon.U, canon.V}] = canon

	// Symmetric adjacency index.
	if g.adjacency[e.U] == nil {
		g.adjacency[e.U] = make(map[string]Edge)
	}
	if g.adjacency[e.V] == nil {
		g.adjacency[e.V] = make(map[string]Edge)
	}
	g.adjacency[e.U][e.V] = e
	g.adjacency[e.V][e.U] = e.Reversed()

	return nil
}

// RemoveEdge deletes the edge between u and v, whatever its kind.
//
// Errors:
//   - ErrUnknownNode: if u or v is absent.
//   - ErrEdgeNotFound: if no edge connects u and v.
//
// Complexity: O(1).
func (g *Graph) RemoveEdge(u, v string) error {
	if _, ok := g.nodes[u]; !ok {
		return ErrUnknownNode
	}
	if _, ok := g.nodes[v]; !ok {
		return ErrUnknownNode
	}
	e, ok := g.adjacency[u][v]
	if !ok {
		return ErrEdgeNotFound
	}

	delete(g.edges[e.Kind], g.catalogKey(e))
	delete(g.adjacency[u], v)
	delete(g.adjacency[v], u)

	return nil
}

// RemoveNode deletes a node and every edge incident to it.
//
// Errors:
//   - ErrUnknownNode: if id is absent.
//
// Complexity: O(d) where d is the degree of id.
func (g *Graph) RemoveNode(id string) error {
	if _, ok := g.nodes[id]; !ok {
		return ErrUnknownNode
	}
	for nbr, e := range g.adjacency[id] {
		delete(g.edges[e.Kind], g.catalogKey(e))
		delete(g.adjacency[nbr], id)
	}
	delete(g.adjacency, id)
	delete(g.nodes, id)

	return nil
}

// Clone returns a deep copy of the graph. The copy shares no state
// with the original, so callers can snapshot a graph before a query
// batch and keep mutating the original freely.
//
// Complexity: O(V + E).
func (g *Graph) Clone() *Graph {
	c := NewGraph()
	for id := range g.nodes {
		c.nodes[id] = struct{}{}
	}
	for kind, bucket := range g.edges {
		if len(bucket) == 0 {
			continue
		}
		c.edges[kind] = make(map[pairKey]Edge, len(bucket))
		for k, e := range bucket {
			c.edges[kind][k] = e
		}
	}
	for u, row := range g.adjacency {
		c.adjacency[u] = make(map[string]Edge, len(row))
		for v, e := range row {
			c.adjacency[u][v] = e
		}
	}

	return c
}

// catalogKey recovers the per-kind catalog key for an edge held in the
// adjacency index (which may carry either orientation).
func (g *Graph) catalogKey(e Edge) pairKey {
	if e.Kind == Bidirected || e.Kind == Undirected {
		if e.U > e.V {
			return pairKey{e.V, e.U}
		}

		return pairKey{e.U, e.V}
	}
	// Ordered kinds keep their insertion orientation in the catalog.
	if _, ok := g.edges[e.Kind][pairKey{e.U, e.V}]; ok {
		return pairKey{e.U, e.V}
	}

	return pairKey{e.V, e.U}
}

// fixedMarks returns the endpoint marks implied by a fixed edge kind.
func fixedMarks(kind EdgeKind) (Mark, Mark) {
	switch kind {
	case Directed:
		return Tail, Arrow
	case Bidirected:
		return Arrow, Arrow
	default: // Undirected
		return Tail, Tail
	}
}
