// Package orderly implements the backtracking search of spec.md §4.6: an
// orderly-generation enumeration of maximal caps in AG(n,3), up to the
// action of the affine group, that expands exactly one representative
// per symmetry orbit at every depth.
//
// The recursion carries all of its state through an owned *Engine value
// rather than package-level globals, mirroring tsp.bbEngine's
// add/recurse/undo discipline: every mutation made on descent into a
// child is paired with its exact inverse before the call returns.
package orderly

import (
	"fmt"
	"math/big"
	"time"

	"github.com/orderlygen/agcap/affine"
	"github.com/orderlygen/agcap/canon"
	"github.com/orderlygen/agcap/incidence"
	"github.com/orderlygen/agcap/report"
	"github.com/orderlygen/agcap/sigma"
)

// Result is the final count of Engine.Run: one slot per cap size
// 0..MaxDepth.
type Result struct {
	Tots    []*big.Int
	Cases   []int64
	Comps   []int64
	Elapsed time.Duration
}

// Engine owns every piece of mutable search state: the affine/incidence
// tables (read-only after construction), the Σ-invariant bookkeeping,
// the Symmetry Oracle, the elimination marks, and the counters.
type Engine struct {
	sp     *affine.Space
	ig     *incidence.Graph
	oracle *canon.Oracle
	st     *sigma.State

	glfqnSize *big.Int // |AGL(n,3)|, fixed for the whole run

	maxDepth int
	cap      []int  // committed cap points, in addition order
	inCap    []bool // inCap[p]
	elim     []bool // elim[p]

	Cases []int64
	Tots  []*big.Int
	Comps []int64
	sink  report.Sink
	trace int64
}

// New builds an Engine over a freshly constructed affine.Space of
// dimension n. maxDepth bounds the recursion (spec.md §4.6:
// informational only, chosen >= the true maximum cap size + 1).
func New(n, maxDepth int, sink report.Sink) (*Engine, error) {
	sp, err := affine.NewSpace(n)
	if err != nil {
		return nil, fmt.Errorf("orderly: %w", err)
	}
	ig, err := incidence.Build(sp)
	if err != nil {
		return nil, fmt.Errorf("orderly: %w", err)
	}

	alphaCols := sp.QN/3 + 1
	if maxDepth+1 < alphaCols {
		alphaCols = maxDepth + 1
	}

	e := &Engine{
		sp:        sp,
		ig:        ig,
		oracle:    canon.NewOracle(ig),
		st:        sigma.New(ig, alphaCols),
		glfqnSize: canon.AffineGroupOrder(n),
		maxDepth:  maxDepth,
		inCap:     make([]bool, sp.QN),
		elim:      make([]bool, sp.QN),
		Cases:     make([]int64, maxDepth+1),
		Tots:      make([]*big.Int, maxDepth+1),
		Comps:     make([]int64, maxDepth+1),
		sink:      sink,
	}
	for i := range e.Tots {
		e.Tots[i] = big.NewInt(0)
	}

	return e, nil
}

// Run executes the full search starting from the empty cap and returns
// the accumulated counters.
func (e *Engine) Run() *Result {
	start := time.Now()

	// AGL(n,3) is point-transitive, so at the empty cap every point lies
	// in a single orbit; representative 0 is the only level-0 candidate.
	// This mirrors using the closed-form glfqnSize instead of invoking
	// the oracle on the maximally symmetric, cap-free coloring.
	orbit0 := make([]int, e.sp.QN)
	e.search(0, e.glfqnSize, orbit0, "")

	return &Result{
		Tots:    e.Tots,
		Cases:   e.Cases,
		Comps:   e.Comps,
		Elapsed: time.Since(start),
	}
}

// search implements enter(ℓ) of spec.md §4.6. orbitAtLevel is the orbit
// array computed by the parent canonicalization, giving the distinct
// uneliminated point-orbit representatives available at this depth.
func (e *Engine) search(lvl int, grpSize *big.Int, orbitAtLevel []int, dots string) {
	e.Cases[lvl]++
	e.Tots[lvl].Add(e.Tots[lvl], new(big.Int).Div(e.glfqnSize, grpSize))

	if lvl == e.maxDepth {
		return
	}

	candidates := e.candidatesFrom(orbitAtLevel)
	if len(candidates) == 0 {
		e.Comps[lvl]++
		return
	}

	for _, p := range candidates {
		e.st.Add(p)
		e.addToCap(p)

		if e.alphaMaximal(p) {
			if e.canonicalLast(p) {
				report.Trace(e.sink, &e.trace, lvl+1, dots, p)

				childOrbit, childGrpSize := e.canonicalizeDiscrete()
				undo := e.markEliminations(p)

				e.search(lvl+1, childGrpSize, childOrbit, dots+".")

				e.unmarkEliminations(undo)
			}
		}

		e.removeFromCap(p)
		e.st.Remove(p)
	}
}

// candidatesFrom scans orbitAtLevel ascending and collects each
// uneliminated, not-yet-committed point the first time its orbit
// representative is seen — which, since orbit[v] is always the smallest
// index in v's orbit, is exactly when orbitAtLevel[p] == p.
func (e *Engine) candidatesFrom(orbitAtLevel []int) []int {
	var out []int
	for p := 0; p < e.sp.QN; p++ {
		if e.inCap[p] || e.elim[p] {
			continue
		}
		if orbitAtLevel[p] == p {
			out = append(out, p)
		}
	}

	return out
}

func (e *Engine) addToCap(p int) {
	e.cap = append(e.cap, p)
	e.inCap[p] = true
}

func (e *Engine) removeFromCap(p int) {
	e.cap = e.cap[:len(e.cap)-1]
	e.inCap[p] = false
}

// alphaMaximal is test 4.4(a): p must be a >=_lex-greatest element of
// C ∪ {p} under the just-updated α.
func (e *Engine) alphaMaximal(p int) bool {
	for _, c := range e.cap[:len(e.cap)-1] {
		if !e.st.VecGEQ(p, c) {
			return false
		}
	}

	return true
}

// markEliminations marks, for every pair (p, c) with c already in the
// cap before p was added, third(p,c) as eliminated (unless it already
// was), and returns the list to undo on the way back up.
func (e *Engine) markEliminations(p int) []int {
	var undo []int
	for _, c := range e.cap[:len(e.cap)-1] {
		t := e.sp.Third(p, c)
		if !e.elim[t] {
			e.elim[t] = true
			undo = append(undo, t)
		}
	}

	return undo
}

func (e *Engine) unmarkEliminations(undo []int) {
	for _, t := range undo {
		e.elim[t] = false
	}
}

// vertexColors builds the coloring canonicalizeDiscrete passes to the
// oracle: each committed cap point gets its own singleton color (in
// addition order), all other points share one color, all hyperplanes
// share the next one. canonicalLast builds its own coloring.
func (e *Engine) vertexColors() []int {
	colors := make([]int, e.oracle.N())
	for i, c := range e.cap {
		colors[c] = i
	}
	rest := len(e.cap)
	for p := 0; p < e.sp.QN; p++ {
		if !e.inCap[p] {
			colors[p] = rest
		}
	}
	for h := e.sp.QN; h < e.oracle.N(); h++ {
		colors[h] = rest + 1
	}

	return colors
}

func (e *Engine) invariantFn() func(int) int64 {
	return func(v int) int64 {
		if v >= e.sp.QN {
			return 0
		}
		return e.st.Invariant(v)
	}
}

// canonicalizeDiscrete canonicalizes G with every cap point (including
// the just-added one) as its own singleton color, for use as the child
// level's orbit array and stabilizer order.
func (e *Engine) canonicalizeDiscrete() ([]int, *big.Int) {
	return e.oracle.Canonicalize(e.vertexColors(), e.invariantFn())
}

// canonicalLast is test 4.4(b), grounded directly on
// original_source/all/all_caps.c:267-284: every committed cap point
// (including the just-added p) is colored as a single merged cell, and
// composeColors' invariant-driven refinement is what splits that cell —
// by Σ-invariant value alone, exactly as the original's invarproc/α-hash
// does inside densenauty. Any two cap points sharing an α value stay
// tied under the resulting stabilizer regardless of their relationship
// to p; p is accepted only when it is the smallest vertex id in its own
// orbit, keeping exactly one search path per final set.
func (e *Engine) canonicalLast(p int) bool {
	colors := make([]int, e.oracle.N())
	for _, c := range e.cap {
		colors[c] = 0
	}

	rest := 1
	for q := 0; q < e.sp.QN; q++ {
		if !e.inCap[q] {
			colors[q] = rest
		}
	}
	for h := e.sp.QN; h < e.oracle.N(); h++ {
		colors[h] = rest + 1
	}

	orbit, _ := e.oracle.Canonicalize(colors, e.invariantFn())

	return orbit[p] == p
}
