// Package lvmst computes minimum spanning trees and forests of weighted
// undirected graphs with Kruskal's algorithm over a union-find.
//
// What is lvmst?
//
//	A small, dependency-light library plus a benchmark harness:
//		• unionfind/ — fixed-size disjoint set, path halving + union by rank
//		• mst/       — Node/Edge/Graph, edge sorting (optionally parallel),
//		               Kruskal over pre-sorted or unsorted edges, forests
//		• builder/   — deterministic weighted fixtures (path, cycle, grid,
//		               G(n,p), sparse band, isolated nodes)
//		• cmd/mstbench — CLI measuring the sort, union-find and combined phases
//
// Quick ASCII example:
//
//	    0───1        0—1 (10), 0—2 (6), 0—3 (5), 1—3 (15), 2—3 (4)
//	    │ ╲ │
//	    2───3        MST: 2—3, 0—3, 0—1  (total 19)
//
// Node ids are dense and zero-based; the node count is fixed when the graph
// is created, so isolated nodes are never lost. Disconnected inputs yield a
// spanning forest with one tree per component.
//
//	go get github.com/katalvlaran/lvmst
package lvmst
