// Package lvlpag is a structural-query engine for mixed-edge causal
// graphs: the graphs of FCI-family causal discovery, with directed,
// bidirected, undirected, and partially-oriented circle-mark edges
// coexisting in one structure.
//
// 🚀 What is lvlpag?
//
//	A read-only oracle over partial ancestral graphs (PAGs) and
//	acyclic directed mixed graphs (ADMGs):
//		• core     — the MixedEdgeGraph: nodes, four edge kinds, endpoint marks
//		• paths    — collider / covered / possibly-directed / open-path predicates
//		• reach    — possible-ancestor & possible-descendant reachability
//		• msep     — the m-separation oracle (moralization and legal-path strategies)
//		• discpath — discriminating-path search for orientation rules
//		• pds      — possible-d-separating sets and PDS-restricted paths
//
// ✨ Why choose lvlpag?
//
//   - Pure queries – no component ever mutates a graph; every answer is
//     a fresh boolean, set, or path
//   - Deterministic – sorted adjacency everywhere, so searches return
//     the same witness run after run
//   - Rock-solid contracts – preconditions fail fast with sentinel
//     errors; absence of a path or set member is a result, never an error
//   - Pure Go – no cgo, a single test-only dependency
//
// Quick ASCII example:
//
//	    A ──▶ B ◀── C ──▶ D
//
//	m-separated(A, C | ∅)  = true   (B is an unconditioned collider)
//	m-separated(A, C | {B}) = false (conditioning on a collider opens it)
//
// Graph construction, format conversion, visualization, and the
// discovery algorithms themselves live with external collaborators;
// lvlpag is the engine they query.
//
//	go get github.com/katalvlaran/lvlpag
package lvlpag
