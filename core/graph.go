// SPDX-License-Identifier: MIT
// Package core: Graph construction and read-only accessors.

package core

import "math"

// Layout constants for the circular node placement.
const (
	LayoutRadius  = 150.0
	LayoutCenterX = 250.0
	LayoutCenterY = 250.0
)

// NewGraph builds a Graph over a square symmetric matrix. The matrix is
// copied, so later changes by the caller do not leak into the Graph.
//
// Steps:
//  1. Copy the matrix row by row.
//  2. Place node i at angle 2π·i/n on the layout circle.
//  3. Emit Edge{i, j, m[i][j]} for every i<j with m[i][j] > 0.
//
// Complexity: O(n²) time and memory.
func NewGraph(m [][]int64) *Graph {
	n := len(m)
	g := &Graph{
		Nodes:  make([]Node, n),
		Edges:  make([]Edge, 0, n*(n-1)/2),
		Matrix: make([][]int64, n),
	}
	for i, row := range m {
		g.Matrix[i] = append([]int64(nil), row...)
	}

	for i := 0; i < n; i++ {
		g.Nodes[i] = circleNode(i, n)
	}

	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			if w := g.Matrix[i][j]; w > 0 {
				g.Edges = append(g.Edges, Edge{From: i, To: j, Weight: w})
			}
		}
	}

	return g
}

// circleNode places node i of n on the layout circle.
func circleNode(i, n int) Node {
	angle := float64(i) * 2 * math.Pi / float64(n)

	return Node{
		ID: i,
		X:  LayoutCenterX + LayoutRadius*math.Cos(angle),
		Y:  LayoutCenterY + LayoutRadius*math.Sin(angle),
	}
}

// Order returns the number of nodes. A nil Graph has order 0.
func (g *Graph) Order() int {
	if g == nil {
		return 0
	}

	return len(g.Nodes)
}

// HasVertex reports whether v is a valid node ID.
func (g *Graph) HasVertex(v int) bool {
	return v >= 0 && v < g.Order()
}

// Neighbors returns the edges leaving v, oriented From=v, in ascending
// order of the other endpoint. Self-loops are skipped.
// Complexity: O(n).
func (g *Graph) Neighbors(v int) ([]Edge, error) {
	if !g.HasVertex(v) {
		return nil, ErrVertexOutOfRange
	}
	out := make([]Edge, 0, len(g.Nodes))
	for k, w := range g.Matrix[v] {
		if k != v && w > 0 {
			out = append(out, Edge{From: v, To: k, Weight: w})
		}
	}

	return out, nil
}

// Clone returns a deep copy of g.
func (g *Graph) Clone() *Graph {
	if g == nil {
		return nil
	}
	c := NewGraph(g.Matrix)
	copy(c.Nodes, g.Nodes)

	return c
}
