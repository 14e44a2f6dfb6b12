// Package paths provides the Path value type and the stateless
// predicates every other lvlpag query package is built from.
//
// What
//
//   - Path: an immutable node sequence plus the edge used by each hop,
//     so collider and covering status can be read off the marks without
//     further graph lookups. Build with BuildPath, re-check with
//     Validate.
//   - IsCollider / IsDefiniteNoncollider: triple classification by the
//     two endpoint marks at the middle node.
//   - IsPossiblyDirected: whether an edge is compatible with some
//     orientation u → v (arrowhead or circle at v, no arrowhead at u).
//   - IsCoveredTriple / IsUncovered: the path-covering tests used by
//     discriminating-path and PDS-path searches.
//   - IsMConnecting: the open-path rule of m-separation — non-colliders
//     must avoid the conditioning set, colliders must be in it or have
//     a possible descendant in it.
//
// Why
//
// The FCI-family searches all reason about the same three things:
// where the arrowheads sit, whether a triple is shielded, and whether
// conditioning opens or blocks a hop. Centralizing those rules keeps
// the oracle, the discriminating-path search, and the PDS computation
// in agreement, and gives tests an independent verifier for any path a
// search returns.
//
// Errors
//
//   - core.ErrUnknownNode   — a referenced node is absent.
//   - ErrNonAdjacent        — a triple lacks a required edge
//     (wraps core.ErrInvalidQuery).
//   - ErrBrokenPath         — a Path value fails validation
//     (wraps core.ErrInvalidQuery).
//
// All predicates are pure functions over (graph, arguments); none
// mutate the graph or keep state between calls.
//
// Complexity: triple predicates are O(1); path predicates are O(k) in
// path length, plus one bounded possible-descendant walk per collider
// for IsMConnecting.
package paths
