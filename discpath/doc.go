// Package discpath finds discriminating paths for a path triple
// (a, b, c) of a mixed-edge causal graph.
//
// What
//
// DiscriminatingPath(g, a, b, c) returns a path ⟨v₀, …, a, b⟩ whose
// far endpoint v₀ is non-adjacent to b, whose nodes strictly between
// v₀ and a are all colliders on the path and possible parents of b,
// and which contains no covered triple. Orientation rules in
// FCI-family discovery consume such a path to decide whether b is a
// collider between a and c; a miss (found == false) simply means the
// rule does not apply, and is not an error.
//
// Determinism
//
// The search is an explicit breadth-first worklist expanding
// lexicographically ordered neighbors, so for a fixed graph the same
// triple always yields the same path — shortest first, ties broken by
// node ID. WithMaxPathLength bounds the search on dense graphs.
//
// Errors
//
//   - ErrGraphNil          — nil graph.
//   - ErrOptionViolation   — invalid option value.
//   - core.ErrUnknownNode  — a referenced node is absent.
//   - ErrNotATriple        — (a, b, c) repeat or lack the a–b / b–c
//     edges (all wrap core.ErrInvalidQuery).
package discpath
