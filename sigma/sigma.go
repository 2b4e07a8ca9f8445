// Package sigma maintains the Σ-invariant: for every point p and every
// k in [0, Alpha), alpha[p][k] counts the hyperplanes through p that
// currently contain exactly k points of the cap under construction. It
// is the cheap, affine-invariant refinement that lets the orderly engine
// reject most non-canonical extensions before invoking the Symmetry
// Oracle (package canon).
package sigma

import "github.com/orderlygen/agcap/incidence"

// State holds the mutable Σ-invariant bookkeeping for one search. It is
// owned by exactly one orderly.Engine and mutated only by Add/Remove,
// which are always called in matching pairs along a recursion path.
type State struct {
	ig    *incidence.Graph
	Alpha [][]int64 // Alpha[p][k], p in [0,QN), k in [0,AlphaCols)
	Caps  []int64   // Caps[h] = |cap ∩ hyperplane h|

	// AlphaCols is the number of alpha columns. orderly.New sets it to
	// min(QN/3, MaxDepth) + 1, so k can reach both QN/3 (the number of
	// points on a hyperplane) and MaxDepth (the largest cap searched).
	AlphaCols int
}

// New allocates a State for ig with the given AlphaCols bound and
// initializes alpha[p][0] = NumNormals for every point (no hyperplane
// yet contains any cap point).
func New(ig *incidence.Graph, alphaCols int) *State {
	s := &State{ig: ig, AlphaCols: alphaCols}

	qn := ig.Space.QN
	s.Alpha = make([][]int64, qn)
	for p := 0; p < qn; p++ {
		row := make([]int64, alphaCols)
		row[0] = int64(ig.Space.NumNormals)
		s.Alpha[p] = row
	}
	s.Caps = make([]int64, ig.Hyperplanes)

	return s
}

// Add records that point p has just been added to the cap: for each
// normal j, the hyperplane h = PointHyp[p][j] gains one cap point, and
// every point on h moves from alpha bucket c to c+1.
// Cost: O(NumNormals * QN/3).
func (s *State) Add(p int) {
	for _, h := range s.ig.PointHyp[p] {
		c := s.Caps[h]
		s.Caps[h] = c + 1
		for _, q := range s.ig.HypPoint[h] {
			s.Alpha[q][c]--
			s.Alpha[q][c+1]++
		}
	}
}

// Remove undoes Add(p); it must be called with the cap in exactly the
// state Add(p) left it (i.e. as the matching undo step of a tree walk).
func (s *State) Remove(p int) {
	for _, h := range s.ig.PointHyp[p] {
		c := s.Caps[h]
		s.Caps[h] = c - 1
		for _, q := range s.ig.HypPoint[h] {
			s.Alpha[q][c]--
			s.Alpha[q][c-1]++
		}
	}
}

// Invariant returns the signed vertex-invariant hash of point p used by
// the Symmetry Oracle as a color refinement: Σ_{k>=1} alpha[p][k]*k^2,
// negated if alpha[p][0] != 0. The exact form is not load-bearing for
// correctness (the oracle treats it as a refinement, not a bijection);
// it must merely be a function of alpha[p] alone, which it is.
func (s *State) Invariant(p int) int64 {
	row := s.Alpha[p]
	var acc int64
	for k := 1; k < s.AlphaCols; k++ {
		acc += row[k] * int64(k*k)
	}
	if row[0] != 0 {
		acc = -acc
	}

	return acc
}

// VecGEQ reports whether alpha[a] >= alpha[b] in lexicographic order,
// compared from the highest index down to 0 (high-to-low, per spec.md
// §4.3).
func (s *State) VecGEQ(a, b int) bool {
	ra, rb := s.Alpha[a], s.Alpha[b]
	for k := s.AlphaCols - 1; k >= 0; k-- {
		if ra[k] != rb[k] {
			return ra[k] > rb[k]
		}
	}

	return true // equal vectors satisfy >=
}

// VecEQ reports whether alpha[a] == alpha[b] componentwise.
func (s *State) VecEQ(a, b int) bool {
	ra, rb := s.Alpha[a], s.Alpha[b]
	for k := 0; k < s.AlphaCols; k++ {
		if ra[k] != rb[k] {
			return false
		}
	}

	return true
}
