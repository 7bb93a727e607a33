// Package prim_kruskal computes the Minimum Spanning Tree (MST) of a
// *core.Graph either in one call or one step at a time, with Kruskal's or
// Prim's algorithm.
//
// What & Why
//
//   - An MST of a connected weighted undirected graph G = (V, E) is a subset
//     T ⊆ E spanning every vertex with minimum total weight; |T| = |V|-1.
//   - Stepping exists so a caller can observe the algorithm: which edge is
//     under consideration, whether it was accepted, the union-find forest
//     (Kruskal) or the visited set and frontier (Prim) after every step.
//
// Steppers
//
//   - KruskalStepper: edges are stable-sorted by weight once; a cursor walks
//     them. Each Step examines the next edge and accepts it iff its
//     endpoints have different dsu roots. Rejected edges still consume a
//     step. Done when the cursor reaches the last edge, even if the tree is
//     incomplete.
//
//   - PrimStepper: a visited set seeded with the start vertex and a
//     frontier of candidate edges kept stable-sorted by weight. Each Step
//     pops the head (the "current edge", kept for observation even when
//     rejected). If its target is already visited the edge is dropped (lazy
//     deletion; the frontier is never pruned eagerly). Otherwise the target
//     is visited, the edge joins the tree and the target's edges to
//     unvisited vertices join the frontier. Done when the frontier is empty
//     or the tree has |V|-1 edges.
//
//   - A Step on a finished stepper is a no-op: nothing is mutated and the
//     result reports Done.
//
// Whole-run API
//
//   - Kruskal(g) and Prim(g, root) drive a stepper to completion and return
//     (edges, totalWeight, error). Compute dispatches on MSTOptions.Method.
//
// Error Conditions
//
//	- ErrInvalidGraph      graph is nil
//	- ErrDisconnected      |V| == 0, or fewer than |V|-1 edges could be found
//	- ErrUnknownAlgorithm  algorithm name is neither "kruskal" nor "prim"
//	- core.ErrVertexOutOfRange  Prim root outside [0, |V|-1] (whole-run API only;
//	  NewPrim clamps instead)
//
// Determinism: ties in weight keep their original order (row-major i<j for
// Kruskal, enumeration order for Prim) because every sort is stable.
package prim_kruskal
