// File: predicates.go
// Role: pure triple predicates over (graph, nodes): collider status,
//       possibly-directed edges, covered triples, uncovered paths.

package paths

import (
	"fmt"

	"github.com/katalvlaran/lvlpag/core"
)

// IsCollider reports whether b is a collider between a and c, i.e.
// both endpoint marks at b (on the a–b and c–b edges) are arrowheads:
// a *→ b ←* c.
//
// Errors:
//   - core.ErrUnknownNode: if a, b, or c is absent.
//   - ErrNonAdjacent: if the a–b or b–c edge is missing.
//
// Complexity: O(1).
func IsCollider(g *core.Graph, a, b, c string) (bool, error) {
	atBFromA, atBFromC, err := marksAt(g, a, b, c)
	if err != nil {
		return false, err
	}

	return atBFromA == core.Arrow && atBFromC == core.Arrow, nil
}

// IsDefiniteNoncollider reports whether b is a definite non-collider
// between a and c: at least one of the marks at b is a tail, so no
// orientation consistent with the graph can make b a collider.
//
// Errors: as IsCollider.
// Complexity: O(1).
func IsDefiniteNoncollider(g *core.Graph, a, b, c string) (bool, error) {
	atBFromA, atBFromC, err := marksAt(g, a, b, c)
	if err != nil {
		return false, err
	}

	return atBFromA == core.Tail || atBFromC == core.Tail, nil
}

// marksAt resolves the two endpoint marks at b on the a–b and c–b
// edges, validating node existence and adjacency.
func marksAt(g *core.Graph, a, b, c string) (core.Mark, core.Mark, error) {
	for _, id := range []string{a, b, c} {
		if !g.HasNode(id) {
			return 0, 0, fmt.Errorf("%w: %q", core.ErrUnknownNode, id)
		}
	}
	atBFromA, err := g.MarkAt(a, b)
	if err != nil {
		return 0, 0, fmt.Errorf("%w: %q - %q", ErrNonAdjacent, a, b)
	}
	atBFromC, err := g.MarkAt(c, b)
	if err != nil {
		return 0, 0, fmt.Errorf("%w: %q - %q", ErrNonAdjacent, c, b)
	}

	return atBFromA, atBFromC, nil
}

// IsPossiblyDirected reports whether the edge u *-* v is compatible
// with an orientation u → v: the mark at v is an arrowhead or circle,
// and the mark at u is not an arrowhead. A missing edge yields false
// with no error (absence of orientation is not a query fault).
//
// Errors:
//   - core.ErrUnknownNode: if u or v is absent.
//
// Complexity: O(1).
func IsPossiblyDirected(g *core.Graph, u, v string) (bool, error) {
	if !g.HasNode(u) {
		return false, fmt.Errorf("%w: %q", core.ErrUnknownNode, u)
	}
	if !g.HasNode(v) {
		return false, fmt.Errorf("%w: %q", core.ErrUnknownNode, v)
	}
	e, err := g.EdgeBetween(u, v)
	if err != nil {
		return false, nil
	}

	return possiblyInto(e), nil
}

// possiblyInto reports whether e (oriented U → V) is compatible with
// direction U → V: arrowhead or circle at V, no arrowhead at U.
func possiblyInto(e core.Edge) bool {
	return (e.MarkV == core.Arrow || e.MarkV == core.Circle) && e.MarkU != core.Arrow
}

// IsCoveredTriple reports whether the path triple (a, b, c) is covered:
// a and c are themselves adjacent, and the a–c edge repeats the path's
// endpoint marks (its mark at a equals the a–b edge's mark at a, and
// its mark at c equals the c–b edge's mark at c). A covered triple is
// what uncovered-path tests exclude.
//
// Errors:
//   - core.ErrUnknownNode: if a, b, or c is absent.
//   - ErrNonAdjacent: if the a–b or b–c path edge is missing.
//
// Complexity: O(1).
func IsCoveredTriple(g *core.Graph, a, b, c string) (bool, error) {
	if _, _, err := marksAt(g, a, b, c); err != nil {
		return false, err
	}
	chord, err := g.EdgeBetween(a, c)
	if err != nil {
		// a and c non-adjacent: the triple is unshielded, hence uncovered.
		return false, nil
	}

	atAOnPath, err := g.MarkAt(b, a)
	if err != nil {
		return false, fmt.Errorf("%w: %q - %q", ErrNonAdjacent, b, a)
	}
	atCOnPath, err := g.MarkAt(b, c)
	if err != nil {
		return false, fmt.Errorf("%w: %q - %q", ErrNonAdjacent, b, c)
	}

	// chord is oriented a → c, so MarkU is the mark at a.
	return chord.MarkU == atAOnPath && chord.MarkV == atCOnPath, nil
}

// IsUncovered reports whether p contains no covered consecutive triple.
// Paths shorter than three nodes are trivially uncovered.
//
// Errors:
//   - core.ErrUnknownNode / ErrBrokenPath: if p does not validate
//     against g.
//
// Complexity: O(k) for k nodes.
func IsUncovered(g *core.Graph, p Path) (bool, error) {
	if err := p.Validate(g); err != nil {
		return false, err
	}
	for i := 2; i < len(p.Nodes); i++ {
		covered, err := IsCoveredTriple(g, p.Nodes[i-2], p.Nodes[i-1], p.Nodes[i])
		if err != nil {
			return false, err
		}
		if covered {
			return false, nil
		}
	}

	return true, nil
}
