// Package report renders the orderly engine's progress trace and final
// summary table. Output is decoupled from the engine behind the Sink
// interface so tests can capture it and cmd/agcap can point it at
// stdout, matching the teacher's pattern of keeping algorithmic packages
// free of direct os.Stdout writes.
package report

import (
	"fmt"
	"io"
	"math/big"
	"time"
)

// Sink receives one rendered trace line at a time.
type Sink interface {
	Emit(line string)
}

// WriterSink adapts an io.Writer into a Sink, one line per Emit.
type WriterSink struct {
	W io.Writer
}

// Emit writes line followed by a newline, ignoring write errors (the
// trace is best-effort progress output, not a correctness channel).
func (s WriterSink) Emit(line string) {
	fmt.Fprintln(s.W, line)
}

// Trace emits one progress line for an accepted extension at the given
// depth: a running counter, a dot prefix one character per ancestor
// level, and the point index just added, e.g. "42 ...5 (3)". counter is
// incremented in place before being printed.
func Trace(sink Sink, counter *int64, depth int, dots string, pointIdx int) {
	*counter++
	sink.Emit(fmt.Sprintf("%d %s.%d (%d)", *counter, dots, pointIdx, depth))
}

// Summary renders the elapsed-time line followed by the final
// "N | Cap(s) | Case(s) | Complete" table: row ℓ lists tots[ℓ], cases[ℓ]
// and comps[ℓ].
func Summary(w io.Writer, elapsed time.Duration, tots []*big.Int, cases, comps []int64) {
	fmt.Fprintf(w, "elapsed: %s\n\n", elapsed)
	fmt.Fprintf(w, "%-4s %-20s %-12s %s\n", "N", "Cap(s)", "Case(s)", "Complete")

	for n := 0; n < len(tots); n++ {
		fmt.Fprintf(w, "%-4d %-20s %-12d %d\n", n, tots[n].String(), cases[n], comps[n])
	}
}
