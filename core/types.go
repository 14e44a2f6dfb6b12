// Package core defines the central MixedEdgeGraph type used by every
// query package in lvlpag: a node set plus four coexisting edge kinds
// (directed, bidirected, undirected, circle) with per-endpoint marks.
//
// This file declares Mark, EdgeKind, Edge, Graph, GraphOption,
// sentinel errors, and the NewGraph constructor.
//
// Errors:
//
//	ErrEmptyNodeID      - node ID is the empty string.
//	ErrUnknownNode      - requested node does not exist.
//	ErrEdgeNotFound     - requested edge does not exist.
//	ErrSelfLoop         - self-loops are not representable.
//	ErrEdgeKindConflict - a second edge between the same node pair.
//	ErrCircleMarks      - invalid mark pair for a circle edge.
//	ErrInvalidQuery     - query arguments violate a precondition.
package core

import "errors"

// Sentinel errors for core graph operations.
var (
	// ErrEmptyNodeID indicates that the provided node ID is empty.
	ErrEmptyNodeID = errors.New("core: node ID is empty")

	// ErrUnknownNode indicates an operation referenced a non-existent node.
	ErrUnknownNode = errors.New("core: unknown node")

	// ErrEdgeNotFound indicates an operation referenced a non-existent edge.
	ErrEdgeNotFound = errors.New("core: edge not found")

	// ErrSelfLoop indicates an edge from a node to itself was attempted.
	ErrSelfLoop = errors.New("core: self-loop not allowed")

	// ErrEdgeKindConflict indicates a second edge (of any kind) was
	// attempted between a node pair that is already connected. Edge kinds
	// are mutually exclusive per node pair; circle marks encode all PAG
	// ambiguity within a single edge.
	ErrEdgeKindConflict = errors.New("core: edge kind conflict between node pair")

	// ErrCircleMarks indicates a circle edge was requested with a mark
	// pair that carries no circle mark (use the fixed kind instead), or a
	// fixed-kind edge was requested through the circle-edge API.
	ErrCircleMarks = errors.New("core: invalid circle edge marks")

	// ErrInvalidQuery is the shared base error for precondition
	// violations in query arguments (set overlaps, degenerate triples).
	// Query packages wrap it with their own context.
	ErrInvalidQuery = errors.New("core: invalid query")
)

// Mark is an endpoint mark of a mixed-graph edge as drawn in a PAG:
// a tail (-), an arrowhead (>), or a circle (o) standing for an
// undetermined mark.
type Mark uint8

// Endpoint marks.
const (
	// Tail is the plain endpoint mark "-".
	Tail Mark = iota
	// Arrow is the arrowhead endpoint mark ">".
	Arrow
	// Circle is the undetermined endpoint mark "o".
	Circle
)

// String returns the conventional single-character spelling of m.
func (m Mark) String() string {
	switch m {
	case Tail:
		return "-"
	case Arrow:
		return ">"
	case Circle:
		return "o"
	default:
		return "?"
	}
}

// EdgeKind is the closed set of edge kinds a MixedEdgeGraph stores.
// Each kind fixes (or, for CircleKind, stores) the two endpoint marks:
//
//	Directed   u → v : Tail at u, Arrow at v (ordered)
//	Bidirected u ↔ v : Arrow at both ends    (unordered)
//	Undirected u − v : Tail at both ends     (unordered)
//	CircleKind       : explicit marks, at least one Circle (ordered)
type EdgeKind uint8

// Edge kinds.
const (
	// Directed marks a known causal direction u → v.
	Directed EdgeKind = iota
	// Bidirected marks latent confounding u ↔ v.
	Bidirected
	// Undirected marks selection-induced association u − v.
	Undirected
	// CircleKind marks a partially-oriented PAG edge such as o→ or o-o;
	// its two endpoint marks are stored explicitly on the Edge.
	CircleKind
)

// AllKinds lists every edge kind in storage order. Query helpers use it
// when a caller passes no kind filter.
var AllKinds = []EdgeKind{Directed, Bidirected, Undirected, CircleKind}

// String returns the lowercase name of k.
func (k EdgeKind) String() string {
	switch k {
	case Directed:
		return "directed"
	case Bidirected:
		return "bidirected"
	case Undirected:
		return "undirected"
	case CircleKind:
		return "circle"
	default:
		return "unknown"
	}
}

// Edge is a value describing one edge of a Graph, oriented from U to V.
// MarkU is the endpoint mark at U, MarkV the mark at V. For the three
// fixed kinds the marks are derived from the kind; for CircleKind they
// are whatever the edge was added with.
//
// Edges are plain values: copying one never aliases graph state.
type Edge struct {
	// U is the first endpoint in this orientation of the edge.
	U string

	// V is the second endpoint in this orientation of the edge.
	V string

	// Kind is the edge kind bucket this edge is stored under.
	Kind EdgeKind

	// MarkU is the endpoint mark at U.
	MarkU Mark

	// MarkV is the endpoint mark at V.
	MarkV Mark
}

// Reversed returns e with its orientation flipped: endpoints and their
// marks swapped. The kind is unchanged.
func (e Edge) Reversed() Edge {
	return Edge{U: e.V, V: e.U, Kind: e.Kind, MarkU: e.MarkV, MarkV: e.MarkU}
}

// String renders the edge in PAG notation, e.g. "A o-> B" or "A <-> B".
func (e Edge) String() string {
	var left string
	switch e.MarkU {
	case Arrow:
		left = "<"
	case Circle:
		left = "o"
	default:
		left = "-"
	}
	var right string
	switch e.MarkV {
	case Arrow:
		right = ">"
	case Circle:
		right = "o"
	default:
		right = "-"
	}

	return e.U + " " + left + "-" + right + " " + e.V
}

// GraphOption configures a Graph at construction time.
type GraphOption func(g *Graph)

// WithNodes pre-populates the graph with the given node IDs.
// Empty IDs are ignored; duplicates are harmless.
func WithNodes(ids ...string) GraphOption {
	return func(g *Graph) {
		for _, id := range ids {
			if id != "" {
				g.nodes[id] = struct{}{}
			}
		}
	}
}

// Graph is the in-memory mixed-edge causal graph.
//
// It stores a node set, a per-kind catalog of canonical edges, and a
// symmetric adjacency index for O(1) pair lookups. At most one edge of
// any kind connects a given node pair, so every endpoint-mark query is
// unambiguous.
//
// Graph carries no locks: the query packages treat a Graph as an
// immutable snapshot, and callers must not mutate it while queries are
// in flight. This is a documented caller obligation, not enforced by
// the type.
type Graph struct {
	// nodes is the node set.
	nodes map[string]struct{}

	// edges[kind] maps a canonical pair key to the canonical Edge.
	// Directed and circle edges keep their insertion orientation;
	// bidirected and undirected edges are stored with U < V.
	edges map[EdgeKind]map[pairKey]Edge

	// adjacency[u][v] holds the edge between u and v oriented with
	// Edge.U == u; every edge appears under both endpoints.
	adjacency map[string]map[string]Edge
}

// pairKey identifies a node pair inside a per-kind edge catalog.
type pairKey struct{ a, b string }

// NewGraph creates an empty mixed-edge graph.
// Complexity: O(1) plus the cost of applied options.
func NewGraph(opts ...GraphOption) *Graph {
	g := &Graph{
		nodes:     make(map[string]struct{}),
		edges:     make(map[EdgeKind]map[pairKey]Edge),
		adjacency: make(map[string]map[string]Edge),
	}
	for _, opt := range opts {
		opt(g)
	}

	return g
}
