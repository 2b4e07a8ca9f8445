package core_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/orderlygen/agcap/core"
)

func TestAddVertexIdempotent(t *testing.T) {
	g := core.NewGraph()
	require.NoError(t, g.AddVertex("p0", core.KindPoint))
	require.NoError(t, g.AddVertex("p0", core.KindPoint))
	require.Equal(t, 1, g.VertexCount())

	kind, err := g.VertexKindOf("p0")
	require.NoError(t, err)
	require.Equal(t, core.KindPoint, kind)
}

func TestAddVertexEmptyID(t *testing.T) {
	g := core.NewGraph()
	require.ErrorIs(t, g.AddVertex("", core.KindPoint), core.ErrEmptyVertexID)
}

func TestAddEdge(t *testing.T) {
	g := core.NewGraph()
	require.NoError(t, g.AddVertex("p0", core.KindPoint))
	require.NoError(t, g.AddVertex("h0", core.KindHyperplane))

	eid, err := g.AddEdge("p0", "h0")
	require.NoError(t, err)
	require.NotEmpty(t, eid)
	require.True(t, g.HasEdge("p0", "h0"))
	require.True(t, g.HasEdge("h0", "p0"))
	require.Equal(t, 1, g.EdgeCount())
}

func TestAddEdgeRejectsLoopAndMulti(t *testing.T) {
	g := core.NewGraph()
	require.NoError(t, g.AddVertex("p0", core.KindPoint))
	require.NoError(t, g.AddVertex("h0", core.KindHyperplane))

	_, err := g.AddEdge("p0", "p0")
	require.ErrorIs(t, err, core.ErrLoopNotAllowed)

	_, err = g.AddEdge("p0", "h0")
	require.NoError(t, err)
	_, err = g.AddEdge("p0", "h0")
	require.ErrorIs(t, err, core.ErrMultiEdgeNotAllowed)
}

func TestNeighborIDsSortedAndDegree(t *testing.T) {
	g := core.NewGraph()
	require.NoError(t, g.AddVertex("p0", core.KindPoint))
	for _, h := range []string{"h2", "h0", "h1"} {
		require.NoError(t, g.AddVertex(h, core.KindHyperplane))
		_, err := g.AddEdge("p0", h)
		require.NoError(t, err)
	}

	nbrs, err := g.NeighborIDs("p0")
	require.NoError(t, err)
	require.Equal(t, []string{"h0", "h1", "h2"}, nbrs)

	deg, err := g.Degree("p0")
	require.NoError(t, err)
	require.Equal(t, 3, deg)
}

func TestVerticesSortedAndUnknown(t *testing.T) {
	g := core.NewGraph()
	require.NoError(t, g.AddVertex("p1", core.KindPoint))
	require.NoError(t, g.AddVertex("p0", core.KindPoint))
	require.Equal(t, []string{"p0", "p1"}, g.Vertices())

	_, err := g.VertexKindOf("missing")
	require.ErrorIs(t, err, core.ErrVertexNotFound)

	_, err = g.NeighborIDs("missing")
	require.ErrorIs(t, err, core.ErrVertexNotFound)
}
