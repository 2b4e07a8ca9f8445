// Package incidence builds, once, the bipartite point-hyperplane
// incidence graph G of an affine.Space: QN point vertices and
// 3*NumNormals hyperplane vertices, with an edge wherever a point lies
// on a hyperplane.
//
// Graph is built once (typically at process start) and then only read:
// canon.NewOracle reads G's adjacency once to build its own Oracle, and
// the hot backtracking path in package orderly never touches G at all —
// it consults the flat PointHyp/HypPoint tables instead, which is why
// those tables, not G itself, are what the engine carries through
// recursion.
package incidence

import (
	"fmt"
	"strconv"

	"github.com/orderlygen/agcap/affine"
	"github.com/orderlygen/agcap/core"
)

// Graph bundles the incidence core.Graph with the flat lookup tables the
// rest of the pipeline needs for O(1) access during the search.
type Graph struct {
	Space *affine.Space
	G     *core.Graph

	// Hyperplanes is the total vertex count on that side: 3*NumNormals.
	Hyperplanes int

	// PointHyp[p][j] is the hyperplane index (0..Hyperplanes) of pencil j
	// through point p.
	PointHyp [][]int

	// HypPoint[h] lists the QN/3 point indices lying on hyperplane h, in
	// insertion (point-index ascending) order.
	HypPoint [][]int
}

// PointVertexID returns the core.Graph vertex ID for point p.
func PointVertexID(p int) string { return "p" + strconv.Itoa(p) }

// HyperplaneVertexID returns the core.Graph vertex ID for hyperplane h.
func HyperplaneVertexID(h int) string { return "h" + strconv.Itoa(h) }

// VertexIndex parses a vertex ID produced by PointVertexID or
// HyperplaneVertexID back into its side-local index and kind — the
// inverse of those two constructors.
func VertexIndex(id string) (idx int, kind core.VertexKind, err error) {
	if len(id) < 2 {
		return 0, 0, fmt.Errorf("incidence: malformed vertex id %q", id)
	}

	n, convErr := strconv.Atoi(id[1:])
	if convErr != nil {
		return 0, 0, fmt.Errorf("incidence: malformed vertex id %q: %w", id, convErr)
	}

	switch id[0] {
	case 'p':
		return n, core.KindPoint, nil
	case 'h':
		return n, core.KindHyperplane, nil
	default:
		return 0, 0, fmt.Errorf("incidence: malformed vertex id %q", id)
	}
}

// Build constructs G from sp. For each point i and each normal j, it
// computes r = <normals[j], cards[i]> mod 3 and records the incidence
// between point i and hyperplane 3*j+r.
func Build(sp *affine.Space) (*Graph, error) {
	hyperplanes := 3 * sp.NumNormals

	ig := &Graph{
		Space:       sp,
		G:           core.NewGraph(),
		Hyperplanes: hyperplanes,
		PointHyp:    make([][]int, sp.QN),
		HypPoint:    make([][]int, hyperplanes),
	}

	for p := 0; p < sp.QN; p++ {
		if err := ig.G.AddVertex(PointVertexID(p), core.KindPoint); err != nil {
			return nil, fmt.Errorf("incidence: add point vertex %d: %w", p, err)
		}
		ig.PointHyp[p] = make([]int, sp.NumNormals)
	}
	for h := 0; h < hyperplanes; h++ {
		if err := ig.G.AddVertex(HyperplaneVertexID(h), core.KindHyperplane); err != nil {
			return nil, fmt.Errorf("incidence: add hyperplane vertex %d: %w", h, err)
		}
	}

	normals := sp.Normals()
	for p := 0; p < sp.QN; p++ {
		for j, nv := range normals {
			r := sp.Dot(nv, p)
			h := 3*j + r
			ig.PointHyp[p][j] = h
			ig.HypPoint[h] = append(ig.HypPoint[h], p)

			if _, err := ig.G.AddEdge(PointVertexID(p), HyperplaneVertexID(h)); err != nil {
				return nil, fmt.Errorf("incidence: add edge p%d-h%d: %w", p, h, err)
			}
		}
	}

	return ig, nil
}
