package orderly_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/orderlygen/agcap/orderly"
	"github.com/orderlygen/agcap/report"
)

type nopSink struct{}

func (nopSink) Emit(string) {}

// n2MaxDepth is MAX_DEPTH for n=2 (original_source/all/all_caps.c:11),
// one more than AG(2,3)'s known maximum cap size of 4.
const n2MaxDepth = 5

func TestRunMatchesKnownN2Counts(t *testing.T) {
	e, err := orderly.New(2, n2MaxDepth, nopSink{})
	require.NoError(t, err)

	res := e.Run()

	// spec.md §8's named end-to-end scenario for n=2.
	wantTots := []int64{1, 9, 36, 54, 54, 0}
	require.Len(t, res.Tots, len(wantTots))
	for lvl, want := range wantTots {
		require.Equal(t, want, res.Tots[lvl].Int64(), "Tots[%d]", lvl)
	}

	require.Equal(t, int64(1), res.Cases[0])

	for lvl, comp := range res.Comps {
		if lvl == 4 {
			require.Equal(t, int64(1), comp, "Comps[4] (the maximal-cap count)")
		} else {
			require.Equal(t, int64(0), comp, "Comps[%d]", lvl)
		}
	}
}

func TestRunWithDefaultSink(t *testing.T) {
	e, err := orderly.New(2, n2MaxDepth, report.WriterSink{W: discard{}})
	require.NoError(t, err)
	require.NotPanics(t, func() { e.Run() })
}

type discard struct{}

func (discard) Write(p []byte) (int, error) { return len(p), nil }
