package msep_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvlpag/core"
	"github.com/katalvlaran/lvlpag/msep"
)

// colliderChain builds A --> B <-- C --> D.
func colliderChain(t *testing.T) *core.Graph {
	t.Helper()
	g := core.NewGraph()
	require.NoError(t, g.AddEdge("A", "B", core.Directed))
	require.NoError(t, g.AddEdge("C", "B", core.Directed))
	require.NoError(t, g.AddEdge("C", "D", core.Directed))

	return g
}

// districtGraph builds A --> B <-> C <-- D, a single bidirected district.
func districtGraph(t *testing.T) *core.Graph {
	t.Helper()
	g := core.NewGraph()
	require.NoError(t, g.AddEdge("A", "B", core.Directed))
	require.NoError(t, g.AddEdge("B", "C", core.Bidirected))
	require.NoError(t, g.AddEdge("D", "C", core.Directed))

	return g
}

// strategies holds both decision procedures; every verdict case runs
// under each and the answers must agree.
var strategies = []msep.Strategy{msep.StrategyMoralize, msep.StrategyLegalPaths}

// TestMSeparated_Verdicts runs the verdict table under both strategies
// and checks symmetry in x and y.
func TestMSeparated_Verdicts(t *testing.T) {
	descendantChain := colliderChain(t)
	require.NoError(t, descendantChain.AddEdge("B", "E", core.Directed))

	selection := core.NewGraph()
	require.NoError(t, selection.AddEdge("A", "B", core.Undirected))
	require.NoError(t, selection.AddEdge("B", "C", core.Undirected))

	circleCollider := core.NewGraph()
	require.NoError(t, circleCollider.AddCircleEdge("A", "B", core.Circle, core.Arrow))
	require.NoError(t, circleCollider.AddCircleEdge("C", "B", core.Circle, core.Arrow))

	circleChain := core.NewGraph()
	require.NoError(t, circleChain.AddCircleEdge("A", "B", core.Circle, core.Circle))
	require.NoError(t, circleChain.AddCircleEdge("B", "C", core.Circle, core.Circle))

	// A <-> B o-o C <-> D: B and C carry arrowheads yet are
	// non-colliders on the path, so the path is open unconditioned even
	// though neither interior node is a possible ancestor of the query.
	circleBridge := core.NewGraph()
	require.NoError(t, circleBridge.AddEdge("A", "B", core.Bidirected))
	require.NoError(t, circleBridge.AddCircleEdge("B", "C", core.Circle, core.Circle))
	require.NoError(t, circleBridge.AddEdge("C", "D", core.Bidirected))

	cases := []struct {
		name      string
		g         *core.Graph
		x, y, z   core.NodeSet
		separated bool
	}{
		{"collider blocks", colliderChain(t), core.NewNodeSet("A"), core.NewNodeSet("C"), core.NewNodeSet(), true},
		{"conditioned collider opens", colliderChain(t), core.NewNodeSet("A"), core.NewNodeSet("C"), core.NewNodeSet("B"), false},
		{"collider blocks longer path", colliderChain(t), core.NewNodeSet("A"), core.NewNodeSet("D"), core.NewNodeSet(), true},
		{"opened collider, open chain", colliderChain(t), core.NewNodeSet("A"), core.NewNodeSet("D"), core.NewNodeSet("B"), false},
		{"collider descendant opens", descendantChain, core.NewNodeSet("A"), core.NewNodeSet("C"), core.NewNodeSet("E"), false},
		{"district unconditioned", districtGraph(t), core.NewNodeSet("A"), core.NewNodeSet("D"), core.NewNodeSet(), true},
		{"district fully conditioned", districtGraph(t), core.NewNodeSet("A"), core.NewNodeSet("D"), core.NewNodeSet("B", "C"), false},
		{"selection chain open", selection, core.NewNodeSet("A"), core.NewNodeSet("C"), core.NewNodeSet(), false},
		{"selection chain blocked", selection, core.NewNodeSet("A"), core.NewNodeSet("C"), core.NewNodeSet("B"), true},
		{"circle collider blocks", circleCollider, core.NewNodeSet("A"), core.NewNodeSet("C"), core.NewNodeSet(), true},
		{"circle collider opened", circleCollider, core.NewNodeSet("A"), core.NewNodeSet("C"), core.NewNodeSet("B"), false},
		{"circle chain open", circleChain, core.NewNodeSet("A"), core.NewNodeSet("C"), core.NewNodeSet(), false},
		{"circle chain blocked", circleChain, core.NewNodeSet("A"), core.NewNodeSet("C"), core.NewNodeSet("B"), true},
		{"circle bridge open", circleBridge, core.NewNodeSet("A"), core.NewNodeSet("D"), core.NewNodeSet(), false},
		{"circle bridge blocked", circleBridge, core.NewNodeSet("A"), core.NewNodeSet("D"), core.NewNodeSet("B"), true},
	}

	for _, tc := range cases {
		for _, s := range strategies {
			got, err := msep.MSeparated(tc.g, tc.x, tc.y, tc.z, msep.WithStrategy(s))
			require.NoError(t, err, "%s (%s)", tc.name, s)
			assert.Equal(t, tc.separated, got, "%s (%s)", tc.name, s)

			// Separation is symmetric in x and y.
			sym, err := msep.MSeparated(tc.g, tc.y, tc.x, tc.z, msep.WithStrategy(s))
			require.NoError(t, err)
			assert.Equal(t, got, sym, "%s (%s): asymmetric answer", tc.name, s)
		}
	}
}

// TestMSeparated_StrategyAgreement sweeps every mixed-edge orientation
// of the path X - B - C - Y and every conditioning choice, asserting
// both strategies return the same verdict. This is the equivalence
// contract exercised beyond hand-picked cases; in particular it covers
// circle edges adjacent to fixed arrowheads, where interior nodes are
// open non-colliders without being possible ancestors of the query.
func TestMSeparated_StrategyAgreement(t *testing.T) {
	edgeVariants := []struct {
		name string
		add  func(g *core.Graph, u, v string) error
	}{
		{"-->", func(g *core.Graph, u, v string) error { return g.AddEdge(u, v, core.Directed) }},
		{"<--", func(g *core.Graph, u, v string) error { return g.AddEdge(v, u, core.Directed) }},
		{"<->", func(g *core.Graph, u, v string) error { return g.AddEdge(u, v, core.Bidirected) }},
		{"---", func(g *core.Graph, u, v string) error { return g.AddEdge(u, v, core.Undirected) }},
		{"o-o", func(g *core.Graph, u, v string) error { return g.AddCircleEdge(u, v, core.Circle, core.Circle) }},
		{"o->", func(g *core.Graph, u, v string) error { return g.AddCircleEdge(u, v, core.Circle, core.Arrow) }},
		{"<-o", func(g *core.Graph, u, v string) error { return g.AddCircleEdge(u, v, core.Arrow, core.Circle) }},
	}
	conditioning := []core.NodeSet{
		core.NewNodeSet(),
		core.NewNodeSet("B"),
		core.NewNodeSet("C"),
		core.NewNodeSet("B", "C"),
	}
	x, y := core.NewNodeSet("X"), core.NewNodeSet("Y")

	for _, xb := range edgeVariants {
		for _, bc := range edgeVariants {
			for _, cy := range edgeVariants {
				g := core.NewGraph()
				require.NoError(t, xb.add(g, "X", "B"))
				require.NoError(t, bc.add(g, "B", "C"))
				require.NoError(t, cy.add(g, "C", "Y"))

				for _, z := range conditioning {
					moral, err := msep.MSeparated(g, x, y, z)
					require.NoError(t, err)
					legal, err := msep.MSeparated(g, x, y, z, msep.WithStrategy(msep.StrategyLegalPaths))
					require.NoError(t, err)
					assert.Equal(t, legal, moral,
						"X %s B %s C %s Y | z=%v", xb.name, bc.name, cy.name, z.Sorted())
				}
			}
		}
	}
}

// TestMSeparated_Vacuous: an empty query side is separated by convention.
func TestMSeparated_Vacuous(t *testing.T) {
	g := colliderChain(t)
	for _, s := range strategies {
		got, err := msep.MSeparated(g, core.NewNodeSet(), core.NewNodeSet("A"), core.NewNodeSet(), msep.WithStrategy(s))
		require.NoError(t, err)
		assert.True(t, got)
	}
}

// TestMSeparated_SetQueries exercise multi-node x and y.
func TestMSeparated_SetQueries(t *testing.T) {
	g := colliderChain(t)
	for _, s := range strategies {
		// D is reachable from C through the open chain edge.
		got, err := msep.MSeparated(g, core.NewNodeSet("A", "D"), core.NewNodeSet("C"), core.NewNodeSet(), msep.WithStrategy(s))
		require.NoError(t, err)
		assert.False(t, got, "strategy %s", s)

		got, err = msep.MSeparated(g, core.NewNodeSet("A"), core.NewNodeSet("C", "D"), core.NewNodeSet("B"), msep.WithStrategy(s))
		require.NoError(t, err)
		assert.False(t, got, "strategy %s", s)
	}
}

// TestMSeparated_Errors covers the precondition taxonomy.
func TestMSeparated_Errors(t *testing.T) {
	g := colliderChain(t)

	_, err := msep.MSeparated(nil, core.NewNodeSet("A"), core.NewNodeSet("C"), core.NewNodeSet())
	assert.ErrorIs(t, err, msep.ErrGraphNil)
	assert.ErrorIs(t, err, core.ErrInvalidQuery)

	_, err = msep.MSeparated(g, core.NewNodeSet("A"), core.NewNodeSet("Z"), core.NewNodeSet())
	assert.ErrorIs(t, err, core.ErrUnknownNode)

	_, err = msep.MSeparated(g, core.NewNodeSet("A"), core.NewNodeSet("A"), core.NewNodeSet())
	assert.ErrorIs(t, err, msep.ErrOverlappingSets)
	_, err = msep.MSeparated(g, core.NewNodeSet("A"), core.NewNodeSet("C"), core.NewNodeSet("C"))
	assert.ErrorIs(t, err, msep.ErrOverlappingSets)

	_, err = msep.MSeparated(g, core.NewNodeSet("A"), core.NewNodeSet("C"), core.NewNodeSet(), msep.WithStrategy(msep.Strategy(99)))
	assert.ErrorIs(t, err, msep.ErrOptionViolation)
	_, err = msep.MSeparated(g, core.NewNodeSet("A"), core.NewNodeSet("C"), core.NewNodeSet(), msep.WithMaxPaths(-1))
	assert.ErrorIs(t, err, msep.ErrOptionViolation)
}

// TestMSeparated_PathBudget: the diamond has two candidate paths, both
// blocked; a one-path budget trips before the verdict.
func TestMSeparated_PathBudget(t *testing.T) {
	g := core.NewGraph()
	require.NoError(t, g.AddEdge("A", "B", core.Directed))
	require.NoError(t, g.AddEdge("B", "D", core.Directed))
	require.NoError(t, g.AddEdge("A", "C", core.Directed))
	require.NoError(t, g.AddEdge("C", "D", core.Directed))

	x, y, z := core.NewNodeSet("A"), core.NewNodeSet("D"), core.NewNodeSet("B", "C")

	_, err := msep.MSeparated(g, x, y, z, msep.WithStrategy(msep.StrategyLegalPaths), msep.WithMaxPaths(1))
	assert.ErrorIs(t, err, msep.ErrBudgetExceeded)

	// With room for both candidates the verdict lands.
	got, err := msep.MSeparated(g, x, y, z, msep.WithStrategy(msep.StrategyLegalPaths), msep.WithMaxPaths(2))
	require.NoError(t, err)
	assert.True(t, got)

	// The budget never applies to the moralization strategy.
	got, err = msep.MSeparated(g, x, y, z, msep.WithMaxPaths(1))
	require.NoError(t, err)
	assert.True(t, got)
}

// TestMConnectingPath returns a deterministic witness when one exists.
func TestMConnectingPath(t *testing.T) {
	g := core.NewGraph()
	require.NoError(t, g.AddEdge("A", "B", core.Directed))
	require.NoError(t, g.AddEdge("B", "C", core.Directed))
	require.NoError(t, g.AddEdge("C", "D", core.Directed))

	p, found, err := msep.MConnectingPath(g, core.NewNodeSet("A"), core.NewNodeSet("D"), core.NewNodeSet())
	require.NoError(t, err)
	require.True(t, found)
	assert.Equal(t, []string{"A", "B", "C", "D"}, p.Nodes)
	require.NoError(t, p.Validate(g))

	// Blocking the chain removes every witness.
	_, found, err = msep.MConnectingPath(g, core.NewNodeSet("A"), core.NewNodeSet("D"), core.NewNodeSet("B"))
	require.NoError(t, err)
	assert.False(t, found)

	// Vacuous miss for an empty side.
	_, found, err = msep.MConnectingPath(g, core.NewNodeSet(), core.NewNodeSet("D"), core.NewNodeSet())
	require.NoError(t, err)
	assert.False(t, found)
}

// TestMConnectingPath_AgreesWithVerdict: a witness exists exactly when
// the sets are not separated.
func TestMConnectingPath_AgreesWithVerdict(t *testing.T) {
	g := districtGraph(t)
	queries := []core.NodeSet{core.NewNodeSet(), core.NewNodeSet("B"), core.NewNodeSet("C"), core.NewNodeSet("B", "C")}
	for _, z := range queries {
		sep, err := msep.MSeparated(g, core.NewNodeSet("A"), core.NewNodeSet("D"), z)
		require.NoError(t, err)
		_, found, err := msep.MConnectingPath(g, core.NewNodeSet("A"), core.NewNodeSet("D"), z)
		require.NoError(t, err)
		assert.Equal(t, !sep, found, "z=%v", z.Sorted())
	}
}

// TestStrategyString names both strategies.
func TestStrategyString(t *testing.T) {
	assert.Equal(t, "moralize", msep.StrategyMoralize.String())
	assert.Equal(t, "legal-paths", msep.StrategyLegalPaths.String())
	assert.Equal(t, "unknown", msep.Strategy(99).String())
}
