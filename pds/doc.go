// Package pds computes possible-d-separating (PDS) sets over
// mixed-edge causal graphs.
//
// What
//
//   - PDS(g, x, y): every node w ∉ {x, y} joined to y by a path whose
//     internal nodes are all colliders and possible ancestors of y.
//     Discovery algorithms search subsets of this set when looking for
//     a separating set between x and y after the adjacency phase.
//   - PDSPath(g, x, y, pdsSet): the same reachability, restricted to
//     run inside pdsSet and to uncovered paths only; nil pdsSet means
//     "restrict to PDS(g, x, y)".
//
// The oracle's contract is purely structural — it returns the
// reachable set, and the discovery-rule consumer decides what to do
// with it. An empty set is a normal result, not an error.
//
// The walk visits ordered hop pairs (prev, cur) instead of plain
// nodes: a collider chain's validity depends on how it enters a node,
// and two different chains may legitimately cross the same node.
//
// Errors
//
//   - ErrGraphNil          — nil graph.
//   - core.ErrUnknownNode  — x or y absent.
//   - ErrSameNode          — x == y (wraps core.ErrInvalidQuery).
package pds
