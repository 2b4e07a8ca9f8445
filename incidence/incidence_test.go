package incidence_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/orderlygen/agcap/affine"
	"github.com/orderlygen/agcap/core"
	"github.com/orderlygen/agcap/incidence"
)

func TestBuildInvariants(t *testing.T) {
	sp, err := affine.NewSpace(3)
	require.NoError(t, err)

	ig, err := incidence.Build(sp)
	require.NoError(t, err)

	require.Equal(t, sp.QN+ig.Hyperplanes, ig.G.VertexCount())
	require.Equal(t, sp.NumNormals*sp.QN, ig.G.EdgeCount())

	for h := 0; h < ig.Hyperplanes; h++ {
		require.Len(t, ig.HypPoint[h], sp.QN/3, "hyperplane %d", h)
	}

	for p := 0; p < sp.QN; p++ {
		for j := 0; j < sp.NumNormals; j++ {
			h := ig.PointHyp[p][j]
			found := false
			for _, q := range ig.HypPoint[h] {
				if q == p {
					found = true
					break
				}
			}
			require.True(t, found, "point %d normal %d hyperplane %d", p, j, h)
			require.True(t, ig.G.HasEdge(incidence.PointVertexID(p), incidence.HyperplaneVertexID(h)))
		}
	}
}

func TestVertexIndexInvertsTheConstructors(t *testing.T) {
	idx, kind, err := incidence.VertexIndex(incidence.PointVertexID(17))
	require.NoError(t, err)
	require.Equal(t, 17, idx)
	require.Equal(t, core.KindPoint, kind)

	idx, kind, err = incidence.VertexIndex(incidence.HyperplaneVertexID(4))
	require.NoError(t, err)
	require.Equal(t, 4, idx)
	require.Equal(t, core.KindHyperplane, kind)

	_, _, err = incidence.VertexIndex("x3")
	require.Error(t, err)
}
