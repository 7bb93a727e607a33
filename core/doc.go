// Package core defines the Node, Edge and Graph types shared by every
// mststep package.
//
// A Graph is built once from a square, symmetric adjacency matrix and is
// never mutated afterwards:
//
//   - Nodes are dense integer IDs 0..n-1, each placed on a fixed circle
//     (radius LayoutRadius, centered at LayoutCenterX/LayoutCenterY) so a
//     renderer can draw the graph without its own layout pass.
//   - Edges hold each undirected pair once, From < To, in row-major order.
//     A matrix entry ≤ 0 means "no edge" and is never materialized.
//   - Matrix keeps the raw weights so Prim can look up m[u][v] directly.
//
// Validation of the matrix (squareness, symmetry, integer tokens) belongs
// to package matrix; NewGraph trusts its input.
//
// Quick ASCII example (triangle, weights 1, 2, 4):
//
//	      0
//	   1 / \ 4
//	    1───2
//	      2
package core
