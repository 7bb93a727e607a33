// Package export renders an engine.Snapshot for external viewers.
//
//   - DOT: a Graphviz "graph" (undirected) built with gographviz. Nodes are
//     pinned to their layout coordinates; tree edges are red and thick, the
//     edge under consideration is blue and dashed, Prim's start vertex is
//     gold and visited vertices pale green.
//   - JSON: a D3-style {nodes, links} document carrying the same markings
//     as plain fields, plus the algorithm progress.
//
// Both functions are pure: they read the snapshot and return text.
package export
