// Package msep decides m-separation queries over mixed-edge causal
// graphs: given disjoint node sets x, y and a conditioning set z, is
// every path between x and y blocked by z?
//
// What
//
//   - MSeparated(g, x, y, z, opts...): the oracle. Symmetric in x and
//     y; an empty x or y is vacuously separated.
//   - MConnectingPath(g, x, y, z, opts...): a deterministic witness
//     path when the sets are not separated.
//
// A path is open (m-connecting) given z when every non-collider on it
// avoids z and every collider is in z or has a possible descendant in
// z. m-separation holds exactly when no open path exists.
//
// Strategies
//
// Two functionally equivalent procedures are offered via WithStrategy:
//
//   - StrategyMoralize (default): breadth-first reachability over
//     (prev, cur) hop states, extending a state past cur only when cur
//     is open between its two path neighbors under the m-connecting
//     rule. On fully oriented graphs this coincides with classical
//     ancestral moralization (hence the name); on circle-mark graphs
//     the hop states additionally let partially oriented non-colliders
//     carry the walk, which plain ancestor-restricted moralization
//     misses. Polynomial: O(V·E) worst case.
//   - StrategyLegalPaths: enumerate simple paths between x and y and
//     test each with paths.IsMConnecting. Exponential worst case; meant
//     for small graphs and as an independent verifier. WithMaxPaths
//     bounds the enumeration (ErrBudgetExceeded when it trips), which
//     is the caller-side iteration budget this library offers instead
//     of cancellation plumbing.
//
// Errors
//
// All preconditions are checked before any traversal begins:
//
//   - ErrGraphNil            — nil graph.
//   - ErrOptionViolation     — invalid option value.
//   - core.ErrUnknownNode    — a referenced node is absent.
//   - ErrOverlappingSets     — x∩y, x∩z, or y∩z non-empty.
//   - ErrBudgetExceeded      — WithMaxPaths cap hit (legal paths only).
//
// The oracle never mutates the graph; callers must keep the graph
// unmutated while queries run (see package core).
package msep
