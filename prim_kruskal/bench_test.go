package prim_kruskal_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/mststep/prim_kruskal"
)

// BenchmarkKruskal measures a full stepwise run on a dense 200-vertex graph.
func BenchmarkKruskal(b *testing.B) {
	g := connectedRandom(rand.New(rand.NewSource(42)), 200, 0.3, 100)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _, _ = prim_kruskal.Kruskal(g)
	}
}

// BenchmarkPrim measures a full stepwise run from vertex 0 on the same graph.
func BenchmarkPrim(b *testing.B) {
	g := connectedRandom(rand.New(rand.NewSource(42)), 200, 0.3, 100)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _, _ = prim_kruskal.Prim(g, 0)
	}
}
