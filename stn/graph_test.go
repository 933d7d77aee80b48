package stn_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/temporalgraph/chronosolve/stn"
)

func TestInsertEdge_Tightens(t *testing.T) {
	g := stn.New()
	g.InsertEdge("a", "b", 5, "assertion-1")
	g.InsertEdge("a", "b", 2, "assertion-2") // tighter bound wins
	g.InsertEdge("a", "b", 9, "assertion-3") // looser bound ignored

	edges := g.Edges()
	require.Len(t, edges, 1)
	assert.Equal(t, 2.0, edges[0].Weight)
	assert.Equal(t, "assertion-2", edges[0].Origin)
}

func TestInsertEdge_NoDuplicateVertices(t *testing.T) {
	g := stn.New()
	g.InsertEdge("a", "b", 1, "x")
	g.InsertEdge("a", "c", 1, "x")

	assert.ElementsMatch(t, []string{"a", "b", "c"}, g.Vertices())
}

func TestEdges_DeterministicOrder(t *testing.T) {
	g := stn.New()
	g.InsertEdge("c", "a", 1, "x")
	g.InsertEdge("a", "b", 1, "x")
	g.InsertEdge("a", "c", 1, "x")

	edges := g.Edges()
	require.Len(t, edges, 3)
	assert.Equal(t, "a", edges[0].From)
	assert.Equal(t, "b", edges[0].To)
	assert.Equal(t, "a", edges[1].From)
	assert.Equal(t, "c", edges[1].To)
	assert.Equal(t, "c", edges[2].From)
}

func TestRemoveByOrigin(t *testing.T) {
	g := stn.New()
	g.InsertEdge("a", "b", 1, "keep")
	g.InsertEdge("b", "c", 1, "drop")
	g.InsertEdge("c", "d", 1, "drop")

	removed := g.RemoveByOrigin("drop")
	assert.Equal(t, 2, removed)

	edges := g.Edges()
	require.Len(t, edges, 1)
	assert.Equal(t, "keep", edges[0].Origin)
}

func TestRemoveByOrigin_TightenedEdgeUnaffected(t *testing.T) {
	g := stn.New()
	g.InsertEdge("a", "b", 5, "loser")
	g.InsertEdge("a", "b", 1, "winner")

	// "loser" no longer owns any edge: it was tightened away.
	removed := g.RemoveByOrigin("loser")
	assert.Equal(t, 0, removed)
	assert.Len(t, g.Edges(), 1)
}

func TestInjectVirtualSource(t *testing.T) {
	g := stn.New()
	g.InsertEdge("a", "b", 3, "x")
	g.InjectVirtualSource("__source__")

	assert.True(t, g.HasVertex("__source__"))
	out := g.Outgoing("__source__")
	require.Len(t, out, 2) // fans out to "a" and "b"
	for _, e := range out {
		assert.Equal(t, 0.0, e.Weight)
		assert.Equal(t, stn.OriginVirtualSource, e.Origin)
	}
}

func TestInjectVirtualSource_DoesNotConnectToItself(t *testing.T) {
	g := stn.New()
	g.InsertVertex("a")
	g.InjectVirtualSource("src")

	out := g.Outgoing("src")
	require.Len(t, out, 1)
	assert.Equal(t, "a", out[0].To)
}

func TestClone_IsIndependent(t *testing.T) {
	g := stn.New()
	g.InsertEdge("a", "b", 1, "x")

	clone := g.Clone()
	clone.InsertEdge("b", "c", 1, "y")

	assert.Len(t, g.Edges(), 1)
	assert.Len(t, clone.Edges(), 2)
}
