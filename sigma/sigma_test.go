package sigma_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/orderlygen/agcap/affine"
	"github.com/orderlygen/agcap/incidence"
	"github.com/orderlygen/agcap/sigma"
)

func sumRow(row []int64) int64 {
	var s int64
	for _, v := range row {
		s += v
	}

	return s
}

func TestAddRemoveRoundTrip(t *testing.T) {
	sp, err := affine.NewSpace(2)
	require.NoError(t, err)
	ig, err := incidence.Build(sp)
	require.NoError(t, err)

	alphaCols := sp.QN/3 + 1
	st := sigma.New(ig, alphaCols)

	for p := 0; p < sp.QN; p++ {
		require.Equal(t, int64(sp.NumNormals), sumRow(st.Alpha[p]))
	}

	st.Add(0)
	st.Add(1)

	for p := 0; p < sp.QN; p++ {
		require.Equal(t, int64(sp.NumNormals), sumRow(st.Alpha[p]), "invariant must hold after adds")
	}

	st.Remove(1)
	st.Remove(0)

	for p := 0; p < sp.QN; p++ {
		for k := 0; k < alphaCols; k++ {
			want := int64(0)
			if k == 0 {
				want = int64(sp.NumNormals)
			}
			require.Equal(t, want, st.Alpha[p][k], "p=%d k=%d", p, k)
		}
	}
}

func TestVecGEQAndEQ(t *testing.T) {
	sp, err := affine.NewSpace(2)
	require.NoError(t, err)
	ig, err := incidence.Build(sp)
	require.NoError(t, err)

	st := sigma.New(ig, sp.QN/3+1)
	require.True(t, st.VecGEQ(0, 1))
	require.True(t, st.VecEQ(0, 1))

	st.Add(0)
	require.False(t, st.VecEQ(0, 1))
}

func TestCapCountMatchesMembership(t *testing.T) {
	sp, err := affine.NewSpace(2)
	require.NoError(t, err)
	ig, err := incidence.Build(sp)
	require.NoError(t, err)

	st := sigma.New(ig, sp.QN/3+1)
	cap := []int{0, 1, 2}
	for _, p := range cap {
		st.Add(p)
	}

	for h := 0; h < ig.Hyperplanes; h++ {
		want := int64(0)
		for _, q := range ig.HypPoint[h] {
			for _, p := range cap {
				if p == q {
					want++
				}
			}
		}
		require.Equal(t, want, st.Caps[h], "hyperplane %d", h)
	}
}
