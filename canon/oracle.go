// Package canon implements the Symmetry Oracle contract of spec.md §4.5:
// given a graph and a colored vertex partition, it returns the orbit
// partition under the stabilizer of that coloring and the stabilizer's
// order. This is the "opaque canonical-labeling service" spec.md treats
// as an external collaborator; no such library appeared anywhere in the
// retrieved example pack, so this package is the straightforward (but,
// as the spec itself allows, slow for larger n) fallback: equitable
// partition refinement plus individualization backtracking, verified by
// direct edge comparison rather than trusted blindly. It is correct for
// any n; its cost only grows with how much symmetry survives refinement,
// which in practice shrinks fast once a few cap points are fixed.
package canon

import (
	"fmt"
	"math/big"
	"sort"

	"github.com/orderlygen/agcap/core"
	"github.com/orderlygen/agcap/incidence"
)

// Oracle holds the fixed adjacency structure of G once, shared by every
// canonicalization call the orderly engine makes.
type Oracle struct {
	n   int
	adj [][]int32
}

// NewOracle builds an Oracle over ig's incidence graph, reading
// adjacency directly from ig.G (the core.Graph incidence.Build
// constructed) rather than keeping a second, independently derived copy.
// Vertices 0..QN-1 are points; QN..QN+Hyperplanes-1 are hyperplanes, in
// that order.
func NewOracle(ig *incidence.Graph) *Oracle {
	n := ig.Space.QN + ig.Hyperplanes
	adj := make([][]int32, n)

	for v := 0; v < n; v++ {
		id := vertexID(ig, v)
		nbrIDs, err := ig.G.NeighborIDs(id)
		if err != nil {
			panic(fmt.Sprintf("canon: vertex %s missing from incidence graph: %v", id, err))
		}

		nbrs := make([]int32, len(nbrIDs))
		for i, nid := range nbrIDs {
			nbrs[i] = globalIndex(ig, nid)
		}
		sort.Slice(nbrs, func(i, j int) bool { return nbrs[i] < nbrs[j] })
		adj[v] = nbrs
	}

	return &Oracle{n: n, adj: adj}
}

// vertexID returns the core.Graph vertex ID for global vertex index v.
func vertexID(ig *incidence.Graph, v int) string {
	if v < ig.Space.QN {
		return incidence.PointVertexID(v)
	}
	return incidence.HyperplaneVertexID(v - ig.Space.QN)
}

// globalIndex is vertexID's inverse: it maps a core.Graph vertex ID back
// to its global vertex index (points 0..QN-1, hyperplanes QN..n-1).
func globalIndex(ig *incidence.Graph, id string) int32 {
	idx, kind, err := incidence.VertexIndex(id)
	if err != nil {
		panic(err)
	}
	if kind == core.KindHyperplane {
		idx += ig.Space.QN
	}

	return int32(idx)
}

// N returns the total vertex count QN+Hyperplanes.
func (o *Oracle) N() int { return o.n }

// hasEdge reports whether v and w are adjacent, via binary search over
// the sorted neighbor list.
func (o *Oracle) hasEdge(v, w int32) bool {
	nbrs := o.adj[v]
	i := sort.Search(len(nbrs), func(i int) bool { return nbrs[i] >= w })

	return i < len(nbrs) && nbrs[i] == w
}

// Canonicalize computes the orbit partition and stabilizer order of the
// automorphism group of the graph that respects the initial coloring
// colors (same color ⇒ same class) refined by invariant, a further
// per-vertex key (e.g. the Σ-invariant hash) that splits classes without
// merging any. It returns orbit[v] = the smallest-indexed vertex in v's
// orbit, and the stabilizer's order.
func (o *Oracle) Canonicalize(colors []int, invariant func(v int) int64) ([]int, *big.Int) {
	init := composeColors(colors, invariant)
	init = o.refine(init)

	var leaves [][]int32 // each leaf: vertices sorted by final (distinct) color
	o.search(init, &leaves)

	return o.orbitsFromLeaves(leaves)
}

// composeColors merges the caller's color classes with the invariant
// function into one initial partition: (colors[v], invariant(v)) pairs
// are ranked into dense small-int colors, preserving colors[v]'s
// grouping (never merging two different colors[v] values) while
// splitting within it by invariant value.
func composeColors(colors []int, invariant func(v int) int64) []int {
	n := len(colors)
	type key struct {
		c int
		h int64
	}
	keys := make([]key, n)
	for v := 0; v < n; v++ {
		keys[v] = key{colors[v], invariant(v)}
	}

	uniq := make([]key, 0, n)
	seen := make(map[key]bool, n)
	for _, k := range keys {
		if !seen[k] {
			seen[k] = true
			uniq = append(uniq, k)
		}
	}
	sort.Slice(uniq, func(i, j int) bool {
		if uniq[i].c != uniq[j].c {
			return uniq[i].c < uniq[j].c
		}
		return uniq[i].h < uniq[j].h
	})
	rank := make(map[key]int, len(uniq))
	for i, k := range uniq {
		rank[k] = i
	}

	out := make([]int, n)
	for v := 0; v < n; v++ {
		out[v] = rank[keys[v]]
	}

	return out
}
