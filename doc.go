// Package kcoloring is an approximate graph k-coloring engine for undirected
// simple graphs, built around the DIMACS benchmark family.
//
// 🎨 What is kcoloring?
//
//	A compact, thread-free, zero-dependency optimization core that brings
//	together:
//
//	  • graph:     bitset-backed adjacency, degree cache, and DIMACS .col loader
//	  • clique:    bit-parallel branch-and-bound max-clique lower bound
//	  • rlf:       Recursive-Largest-First constructive coloring
//	  • reduction: clique/colorCount-threshold low-degree pruning
//	  • solution:  incrementally maintained conflict-tracking coloring state
//	  • tabu:      reactive tabu search at a fixed color count
//	  • ils:       iterated local search driving the color count downward
//	  • xrand:     deterministic xorshift* PRNG shared by every randomized step
//
// ✨ Why kcoloring?
//
//   - Deterministic  — identical seed + input ⇒ identical coloring, always.
//   - Single-threaded — no locks, no goroutines, no hidden concurrency.
//   - Incremental     — conflict bookkeeping is O(deg) per move, never recomputed.
//   - Pure Go         — no cgo, no third-party runtime dependency in the core.
//
// Quick usage:
//
//	g, err := graph.LoadFile("dsjc125.1.col")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	tau := clique.MaxClique(g)
//	rlf.Construct(g)
//	if _, err := reduction.Apply(g, tau); err != nil {
//	    log.Fatal(err)
//	}
//	res, err := ils.Run(g, ils.WithDeadline(time.Now().Add(30*time.Second)))
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(res.BestK, g.ValidColoring())
//
// Dive into SPEC_FULL.md and DESIGN.md for the full component contracts and
// grounding rationale.
package kcoloring
