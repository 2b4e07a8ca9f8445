package canon

import "sort"

// refine computes the coarsest equitable partition finer than or equal
// to colors: repeatedly, every vertex's signature becomes (its current
// color, the sorted multiset of its neighbors' current colors), and
// signatures are ranked into dense color ids. This only ever splits
// cells, never merges them, so it converges in at most n rounds.
func (o *Oracle) refine(colors []int) []int {
	cur := append([]int(nil), colors...)

	for {
		type sig struct {
			c    int
			nbrs string
		}
		sigs := make([]sig, o.n)
		for v := 0; v < o.n; v++ {
			nb := make([]int, len(o.adj[v]))
			for i, w := range o.adj[v] {
				nb[i] = cur[w]
			}
			sort.Ints(nb)
			sigs[v] = sig{cur[v], encodeInts(nb)}
		}

		uniq := make([]sig, 0, o.n)
		seen := make(map[sig]bool, o.n)
		for _, s := range sigs {
			if !seen[s] {
				seen[s] = true
				uniq = append(uniq, s)
			}
		}
		sort.Slice(uniq, func(i, j int) bool {
			if uniq[i].c != uniq[j].c {
				return uniq[i].c < uniq[j].c
			}
			return uniq[i].nbrs < uniq[j].nbrs
		})
		rank := make(map[sig]int, len(uniq))
		for i, s := range uniq {
			rank[s] = i
		}

		next := make([]int, o.n)
		changed := false
		for v := 0; v < o.n; v++ {
			next[v] = rank[sigs[v]]
			if next[v] != cur[v] {
				changed = true
			}
		}
		cur = next
		if !changed {
			return cur
		}
	}
}

// encodeInts turns a sorted []int into a comparable string key; used
// only to make neighbor-color multisets hashable/sortable as map keys.
func encodeInts(xs []int) string {
	b := make([]byte, 0, len(xs)*5)
	for _, x := range xs {
		b = appendVarint(b, x)
	}

	return string(b)
}

func appendVarint(b []byte, x int) []byte {
	u := uint32(x)
	for u >= 0x80 {
		b = append(b, byte(u)|0x80)
		u >>= 7
	}
	return append(b, byte(u), ',')
}

// cellCounts returns, for each color id, how many vertices carry it.
func cellCounts(colors []int) map[int]int {
	counts := make(map[int]int)
	for _, c := range colors {
		counts[c]++
	}
	return counts
}

// discrete reports whether every color class in colors is a singleton.
func discrete(colors []int) bool {
	counts := cellCounts(colors)
	for _, n := range counts {
		if n > 1 {
			return false
		}
	}
	return true
}

// firstNonSingletonCell returns the smallest color id with more than one
// member, and the sorted list of vertices carrying it.
func firstNonSingletonCell(colors []int) (int, []int32) {
	counts := cellCounts(colors)

	ids := make([]int, 0, len(counts))
	for c, n := range counts {
		if n > 1 {
			ids = append(ids, c)
		}
	}
	sort.Ints(ids)
	target := ids[0]

	var members []int32
	for v, c := range colors {
		if c == target {
			members = append(members, int32(v))
		}
	}

	return target, members
}

// individualize returns a copy of colors with v split out of its cell
// into its own singleton: v keeps color 2c, every other member of the
// cell gets 2c+1, and every other vertex's color is doubled to leave
// room. A subsequent refine() re-derives a canonical dense coloring, so
// these particular numeric values are not load-bearing.
func individualize(colors []int, v int32) []int {
	out := make([]int, len(colors))
	c := colors[v]
	for u, cu := range colors {
		switch {
		case int32(u) == v:
			out[u] = 2 * cu
		case cu == c:
			out[u] = 2*cu + 1
		default:
			out[u] = 2 * cu
		}
	}
	return out
}

// search walks the individualization/refinement tree rooted at colors,
// appending one leaf (the vertex order sorted by final color) per
// discrete coloring reached.
func (o *Oracle) search(colors []int, leaves *[][]int32) {
	colors = o.refine(colors)

	if discrete(colors) {
		lab := make([]int32, o.n)
		for v := range lab {
			lab[v] = int32(v)
		}
		sort.Slice(lab, func(i, j int) bool { return colors[lab[i]] < colors[lab[j]] })
		*leaves = append(*leaves, lab)
		return
	}

	_, members := firstNonSingletonCell(colors)
	for _, v := range members {
		o.search(individualize(colors, v), leaves)
	}
}
