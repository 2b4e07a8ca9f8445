package report_test

import (
	"bytes"
	"math/big"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/orderlygen/agcap/report"
)

type bufSink struct{ lines []string }

func (b *bufSink) Emit(line string) { b.lines = append(b.lines, line) }

func TestTraceIncrementsCounterAndFormats(t *testing.T) {
	sink := &bufSink{}
	var counter int64

	report.Trace(sink, &counter, 2, ".", 7)
	report.Trace(sink, &counter, 3, "..", 1)

	require.Equal(t, int64(2), counter)
	require.Equal(t, []string{"1 ..7 (2)", "2 ...1 (3)"}, sink.lines)
}

func TestSummaryRendersAllRows(t *testing.T) {
	var buf bytes.Buffer
	tots := []*big.Int{big.NewInt(1), big.NewInt(9), big.NewInt(36)}
	report.Summary(&buf, 5*time.Millisecond, tots, []int64{1, 3, 4}, []int64{0, 0, 2})

	out := buf.String()
	require.Contains(t, out, "elapsed:")
	require.Contains(t, out, "N")
	require.Contains(t, out, "36")
	require.Contains(t, out, "Complete")
}
