package prim_kruskal_test

import (
	"math/rand"

	"github.com/katalvlaran/mststep/core"
)

// triangle: 0-1 (1), 1-2 (2), 0-2 (4). MST = {0-1, 1-2}, weight 3.
func triangle() *core.Graph {
	return core.NewGraph([][]int64{
		{0, 1, 4},
		{1, 0, 2},
		{4, 2, 0},
	})
}

// isolatedThird: only 0-1 (5); vertex 2 has no edges.
func isolatedThird() *core.Graph {
	return core.NewGraph([][]int64{
		{0, 5, 0},
		{5, 0, 0},
		{0, 0, 0},
	})
}

// kite: 0-1 (1), 0-2 (2), 1-2 (3), 2-3 (10). From 0, Prim pops the stale 1-2 before 2-3.
func kite() *core.Graph {
	return core.NewGraph([][]int64{
		{0, 1, 2, 0},
		{1, 0, 3, 0},
		{2, 3, 0, 10},
		{0, 0, 10, 0},
	})
}

// connectedRandom returns a connected n-vertex graph: a chain 0-1-…-(n-1)
// plus extra pairs with probability p, weights in [1, maxW].
func connectedRandom(r *rand.Rand, n int, p float64, maxW int64) *core.Graph {
	m := make([][]int64, n)
	for i := range m {
		m[i] = make([]int64, n)
	}
	set := func(i, j int) {
		w := 1 + r.Int63n(maxW)
		m[i][j], m[j][i] = w, w
	}
	for i := 1; i < n; i++ {
		set(i-1, i)
	}
	for i := 0; i < n; i++ {
		for j := i + 2; j < n; j++ {
			if r.Float64() < p {
				set(i, j)
			}
		}
	}

	return core.NewGraph(m)
}

// spans reports whether edges connect all n vertices.
func spans(n int, edges []core.Edge) bool {
	label := make([]int, n)
	for i := range label {
		label[i] = i
	}
	var find func(int) int
	find = func(i int) int {
		if label[i] != i {
			label[i] = find(label[i])
		}
		return label[i]
	}
	for _, e := range edges {
		label[find(e.From)] = find(e.To)
	}
	root := find(0)
	for i := 1; i < n; i++ {
		if find(i) != root {
			return false
		}
	}

	return true
}
