// Package mststep builds Minimum Spanning Trees one observable step at a time.
//
// What is mststep?
//
//	A small library plus CLI that loads a weighted undirected graph from an
//	adjacency-matrix text and runs Kruskal's or Prim's algorithm step by step,
//	exposing the full intermediate state after every step:
//		• Kruskal: sorted edge list, cursor and union-find parents
//		• Prim: visited set and lazily-pruned frontier
//		• Both: current edge, accepted edges, total weight, completion
//
// Layout:
//
//	core/         — Node, Edge, Graph and the circular node layout
//	matrix/       — adjacency-matrix parsing, validation, generation
//	dsu/          — disjoint-set union with full path compression
//	prim_kruskal/ — stepwise Kruskal and Prim, plus whole-run helpers
//	engine/       — thread-safe session facade, snapshots, paced auto-run
//	export/       — Graphviz DOT and JSON renderings of a snapshot
//	config/       — YAML + flag session settings
//	cmd/mststep/  — command-line front end
//
// Quick start:
//
//	e := engine.New(engine.WithAlgorithm(prim_kruskal.MethodPrim))
//	if err := e.Load("0 1 4\n1 0 2\n4 2 0"); err != nil {
//		log.Fatal(err)
//	}
//	for !e.IsComplete() {
//		res, _ := e.Step()
//		fmt.Println(res.Edge, res.Accepted)
//	}
//	fmt.Println(e.TotalWeight()) // 3
//
// Installation:
//
//	go install github.com/katalvlaran/mststep/cmd/mststep@latest
package mststep
