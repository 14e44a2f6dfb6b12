package discpath_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvlpag/core"
	"github.com/katalvlaran/lvlpag/discpath"
	"github.com/katalvlaran/lvlpag/paths"
)

// fciGraph builds the canonical four-node discriminating structure:
//
//	V0 --> W <-> A <-> B, W o-> B, B --> C
//
// W is a collider on ⟨V0, W, A⟩ and a possible parent of B, and V0 is
// non-adjacent to B.
func fciGraph(t *testing.T) *core.Graph {
	t.Helper()
	g := core.NewGraph()
	require.NoError(t, g.AddEdge("V0", "W", core.Directed))
	require.NoError(t, g.AddEdge("W", "A", core.Bidirected))
	require.NoError(t, g.AddEdge("A", "B", core.Bidirected))
	require.NoError(t, g.AddCircleEdge("W", "B", core.Circle, core.Arrow))
	require.NoError(t, g.AddEdge("B", "C", core.Directed))

	return g
}

// TestDiscriminatingPath_Minimal: a lone non-adjacent parent of a closes
// the shortest possible path.
func TestDiscriminatingPath_Minimal(t *testing.T) {
	g := core.NewGraph()
	require.NoError(t, g.AddEdge("X", "A", core.Directed))
	require.NoError(t, g.AddEdge("A", "B", core.Directed))
	require.NoError(t, g.AddEdge("B", "C", core.Directed))

	p, found, err := discpath.DiscriminatingPath(g, "A", "B", "C")
	require.NoError(t, err)
	require.True(t, found)
	assert.Equal(t, []string{"X", "A", "B"}, p.Nodes)
}

// TestDiscriminatingPath_Collider walks through an interior collider
// that is a possible parent of b.
func TestDiscriminatingPath_Collider(t *testing.T) {
	g := fciGraph(t)

	p, found, err := discpath.DiscriminatingPath(g, "A", "B", "C")
	require.NoError(t, err)
	require.True(t, found)
	assert.Equal(t, []string{"V0", "W", "A", "B"}, p.Nodes)
	assert.Equal(t, "V0 --> W <-> A <-> B", p.String())

	// The returned path satisfies the structural definition.
	assert.False(t, g.HasAnyEdge("V0", "B"))
	un, err := paths.IsUncovered(g, p)
	require.NoError(t, err)
	assert.True(t, un)
	col, err := paths.IsCollider(g, "V0", "W", "A")
	require.NoError(t, err)
	assert.True(t, col)
	parent, err := paths.IsPossiblyDirected(g, "W", "B")
	require.NoError(t, err)
	assert.True(t, parent)
}

// TestDiscriminatingPath_LengthBound prunes candidates by node count.
func TestDiscriminatingPath_LengthBound(t *testing.T) {
	g := fciGraph(t)

	_, found, err := discpath.DiscriminatingPath(g, "A", "B", "C", discpath.WithMaxPathLength(3))
	require.NoError(t, err)
	assert.False(t, found)

	p, found, err := discpath.DiscriminatingPath(g, "A", "B", "C", discpath.WithMaxPathLength(4))
	require.NoError(t, err)
	require.True(t, found)
	assert.Equal(t, 4, p.Len())
}

// TestDiscriminatingPath_Misses: valid triples with no path behind them
// are a normal miss, not an error.
func TestDiscriminatingPath_Misses(t *testing.T) {
	// a has no neighbor beyond b: nothing can serve as v0.
	g := core.NewGraph()
	require.NoError(t, g.AddEdge("A", "B", core.Directed))
	require.NoError(t, g.AddEdge("C", "B", core.Directed))
	_, found, err := discpath.DiscriminatingPath(g, "A", "B", "C")
	require.NoError(t, err)
	assert.False(t, found)

	// The only candidate is adjacent to b, so it cannot close the path
	// as v0, and it has no further neighbor to extend through.
	g2 := core.NewGraph()
	require.NoError(t, g2.AddEdge("X", "A", core.Directed))
	require.NoError(t, g2.AddEdge("A", "B", core.Bidirected))
	require.NoError(t, g2.AddCircleEdge("X", "B", core.Circle, core.Arrow))
	require.NoError(t, g2.AddEdge("B", "C", core.Directed))
	_, found, err = discpath.DiscriminatingPath(g2, "A", "B", "C")
	require.NoError(t, err)
	assert.False(t, found)
}

// TestDiscriminatingPath_Deterministic: ties break lexicographically.
func TestDiscriminatingPath_Deterministic(t *testing.T) {
	g := core.NewGraph()
	require.NoError(t, g.AddEdge("X1", "A", core.Directed))
	require.NoError(t, g.AddEdge("X2", "A", core.Directed))
	require.NoError(t, g.AddEdge("A", "B", core.Directed))
	require.NoError(t, g.AddEdge("B", "C", core.Directed))

	p, found, err := discpath.DiscriminatingPath(g, "A", "B", "C")
	require.NoError(t, err)
	require.True(t, found)
	assert.Equal(t, []string{"X1", "A", "B"}, p.Nodes)
}

// TestDiscriminatingPath_Errors covers the precondition taxonomy.
func TestDiscriminatingPath_Errors(t *testing.T) {
	g := fciGraph(t)

	_, _, err := discpath.DiscriminatingPath(nil, "A", "B", "C")
	assert.ErrorIs(t, err, discpath.ErrGraphNil)
	assert.ErrorIs(t, err, core.ErrInvalidQuery)

	_, _, err = discpath.DiscriminatingPath(g, "A", "B", "Z")
	assert.ErrorIs(t, err, core.ErrUnknownNode)

	_, _, err = discpath.DiscriminatingPath(g, "A", "B", "A")
	assert.ErrorIs(t, err, discpath.ErrNotATriple)
	// V0 and C are both nodes of g, but share no edge.
	_, _, err = discpath.DiscriminatingPath(g, "V0", "C", "A")
	assert.ErrorIs(t, err, discpath.ErrNotATriple)

	_, _, err = discpath.DiscriminatingPath(g, "A", "B", "C", discpath.WithMaxPathLength(-1))
	assert.ErrorIs(t, err, discpath.ErrOptionViolation)
}
