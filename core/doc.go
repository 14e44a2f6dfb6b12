// Package core provides the in-memory mixed-edge causal graph that
// every lvlpag query package reads.
//
// The Graph G = (V, E₁..E₄) stores one node set and four per-kind edge
// catalogs:
//
//   - Directed   (u → v)  — known causal direction
//   - Bidirected (u ↔ v)  — latent confounding
//   - Undirected (u − v)  — selection-induced association
//   - CircleKind (u o-* v) — partially-oriented PAG edges with explicit
//     endpoint marks (Tail, Arrow, Circle)
//
// Invariants enforced at construction time:
//
//   - no self-loops;
//   - at most one edge, of any kind, per node pair (kind exclusivity),
//     so MarkAt(u, v) is always unambiguous;
//   - circle edges carry at least one Circle mark — a fully determined
//     mark pair must be added under its fixed kind.
//
// Query surface:
//
//   - HasNode / Nodes / NodeCount / EdgeCount
//   - HasEdge / HasAnyEdge / EdgeBetween / MarkAt
//   - Neighbors / NeighborIDs (kind-filterable, sorted, deterministic)
//   - Edges / EdgesOfKind (canonical, sorted — the export boundary)
//
// Concurrency
//
// Graph holds no locks. All query packages are read-only, so any
// number of queries may run concurrently against the same Graph — but
// callers must not mutate a Graph while queries are in flight. Use
// Clone to snapshot a graph before a query batch if the original keeps
// changing.
//
// Determinism
//
// Every enumeration (Nodes, Neighbors, NeighborIDs, Edges) is sorted,
// so all traversals built on core are reproducible run to run.
package core
