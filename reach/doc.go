// Package reach answers possible-ancestry queries over a mixed-edge
// causal graph.
//
// What
//
//   - PossibleAncestors(g, v): nodes that reach v along edges each
//     compatible with pointing toward v (directed v-ward, or circle
//     marks admitting that orientation). Includes v.
//   - PossibleDescendants(g, v): the mirror query. Includes v.
//   - PossibleAncestorsOf / PossibleDescendantsOf: set-union variants
//     over several roots.
//   - Anteriors(g, vs...): possible ancestry extended across undirected
//     selection edges, the closure behind anterior-graph restrictions.
//   - IsPossibleAncestor(g, w, v): membership convenience.
//
// A single edge u *-* v counts as possibly directed u → v when its
// mark at v is an arrowhead or circle and its mark at u is not an
// arrowhead; a possible ancestor is anything connected by an unbroken
// chain of such edges. On a fully oriented graph this degenerates to
// ordinary ancestry.
//
// Duality: w ∈ PossibleAncestors(g, v) exactly when
// v ∈ PossibleDescendants(g, w); transposing every edge of the graph
// swaps the two results.
//
// Termination needs no cycle handling: each node enters the frontier
// at most once, so the walk is O(V + E) even if the partial
// orientation admits cycles.
//
// Errors
//
//   - ErrGraphNil          — nil graph (wraps core.ErrInvalidQuery).
//   - core.ErrUnknownNode  — a start node is absent.
package reach
