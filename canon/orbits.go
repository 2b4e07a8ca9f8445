package canon

import "math/big"

// unionFind is a minimal disjoint-set structure, path-compressed, used
// both over leaf indices (to size the stabilizer) and over vertex ids
// (to compute orbits).
type unionFind struct {
	parent []int
}

func newUnionFind(n int) *unionFind {
	p := make([]int, n)
	for i := range p {
		p[i] = i
	}
	return &unionFind{parent: p}
}

func (u *unionFind) find(x int) int {
	for u.parent[x] != x {
		u.parent[x] = u.parent[u.parent[x]]
		x = u.parent[x]
	}
	return x
}

func (u *unionFind) union(a, b int) {
	ra, rb := u.find(a), u.find(b)
	if ra != rb {
		u.parent[ra] = rb
	}
}

// matchPermutation builds the candidate permutation g with g[lab1[r]] =
// lab2[r] for every rank r, then verifies it is a graph automorphism by
// direct edge comparison. It returns (g, true) only if every edge of the
// graph maps to an edge under g.
func (o *Oracle) matchPermutation(lab1, lab2 []int32) ([]int32, bool) {
	g := make([]int32, o.n)
	for r := 0; r < o.n; r++ {
		g[lab1[r]] = lab2[r]
	}

	for v := int32(0); int(v) < o.n; v++ {
		for _, w := range o.adj[v] {
			if !o.hasEdge(g[v], g[w]) {
				return nil, false
			}
		}
	}

	return g, true
}

// orbitsFromLeaves turns the set of discrete leaves reached by search
// into an orbit partition over vertices and the stabilizer order. Every
// pair of leaves is compared; each verified automorphism contributes
// unions both among leaves (to size the group) and among the vertices
// it moves (to compute orbits). The stabilizer order is the number of
// leaves equivalent to leaf 0.
func (o *Oracle) orbitsFromLeaves(leaves [][]int32) ([]int, *big.Int) {
	leafUF := newUnionFind(len(leaves))
	vertexUF := newUnionFind(o.n)

	for i := 0; i < len(leaves); i++ {
		for j := i + 1; j < len(leaves); j++ {
			g, ok := o.matchPermutation(leaves[i], leaves[j])
			if !ok {
				continue
			}
			leafUF.union(i, j)
			for v := int32(0); int(v) < o.n; v++ {
				vertexUF.union(int(v), int(g[v]))
			}
		}
	}

	classSize := make(map[int]int)
	for i := range leaves {
		classSize[leafUF.find(i)]++
	}
	groupOrder := big.NewInt(int64(classSize[leafUF.find(0)]))

	orbit := make([]int, o.n)
	roots := make(map[int]int)
	for v := 0; v < o.n; v++ {
		r := vertexUF.find(v)
		if min, ok := roots[r]; !ok || v < min {
			roots[r] = v
		}
	}
	for v := 0; v < o.n; v++ {
		orbit[v] = roots[vertexUF.find(v)]
	}

	return orbit, groupOrder
}
