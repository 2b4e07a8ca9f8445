package canon

import "math/big"

// AffineGroupOrder returns |AGL(n,3)|, the order of the full affine
// group acting on AG(n,3): 3^n * prod_{i=0}^{n-1} (3^n - 3^i). At level 0
// of the search (empty cap, only the point/hyperplane bipartition as
// coloring) this is exactly the stabilizer the generic Canonicalize
// would otherwise have to rediscover by individualization over the
// full, maximally symmetric incidence graph — QN+Hyperplanes vertices
// with no cap points yet fixed, the single case where that search is
// genuinely expensive rather than merely thorough. The orderly engine
// uses this closed form for glfqn_size instead, and calls Canonicalize
// only from level 1 onward, where at least one cap point is already a
// singleton color.
func AffineGroupOrder(n int) *big.Int {
	qn := new(big.Int).Exp(big.NewInt(3), big.NewInt(int64(n)), nil)

	glOrder := big.NewInt(1)
	pow := big.NewInt(1)
	for i := 0; i < n; i++ {
		term := new(big.Int).Sub(qn, pow)
		glOrder.Mul(glOrder, term)
		pow.Mul(pow, big.NewInt(3))
	}

	return glOrder.Mul(glOrder, qn)
}
