// SPDX-License-Identifier: MIT
// Package core: value types for nodes, edges and the immutable Graph.

package core

import (
	"errors"
	"fmt"
)

// ErrVertexOutOfRange indicates that a node ID is outside [0, n-1].
var ErrVertexOutOfRange = errors.New("core: vertex out of range")

// Node is a graph vertex with its presentational coordinates.
type Node struct {
	// ID is the dense 0-based index of the node.
	ID int `json:"id"`

	// X and Y are layout coordinates assigned once at construction.
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Edge is an undirected weighted connection between two nodes.
//
// Kruskal enumerates edges with From < To; Prim reports edges oriented from
// the already-visited endpoint to the newly reached one. Both denote the
// same undirected pair.
type Edge struct {
	// From is one endpoint (the visited side for Prim).
	From int `json:"from"`

	// To is the other endpoint.
	To int `json:"to"`

	// Weight is strictly positive for every materialized edge.
	Weight int64 `json:"weight"`
}

// String renders the edge the way the step log prints it: "0 -- 1 (weight: 3)".
func (e Edge) String() string {
	return fmt.Sprintf("%d -- %d (weight: %d)", e.From, e.To, e.Weight)
}

// SameEndpoints reports whether e and o connect the same unordered pair.
func (e Edge) SameEndpoints(o Edge) bool {
	return (e.From == o.From && e.To == o.To) || (e.From == o.To && e.To == o.From)
}

// Graph is an immutable weighted undirected graph backed by its adjacency matrix.
//
// Invariants: len(Matrix) == len(Nodes), every row has len(Nodes) entries,
// Matrix[i][j] == Matrix[j][i], and Edges lists exactly the pairs i<j with
// Matrix[i][j] > 0.
type Graph struct {
	Nodes  []Node    `json:"nodes"`
	Edges  []Edge    `json:"edges"`
	Matrix [][]int64 `json:"matrix"`
}
