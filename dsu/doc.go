// Package dsu provides a fixed-size disjoint-set (union-find) structure over
// dense integer elements 0..n-1, used by the stepwise Kruskal engine.
//
// Find compresses the whole path: every node visited on the way to the root
// is repointed directly at it. Union attaches the root of y under the root
// of x (no rank or size balancing), so the surviving root after
// Union(x, y) is always Find(x). The resulting forest differs from a
// rank-balanced one only in depth, never in which elements share a set.
//
// Complexity: Find is amortized O(log n) without balancing; for the matrix
// sizes mststep handles this is effectively constant.
package dsu
