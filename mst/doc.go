// Package mst computes a Minimum Spanning Tree (or, on disconnected input, a
// minimum spanning forest) of a weighted undirected multigraph with Kruskal's
// algorithm on top of the unionfind package.
//
// What & Why
//
//   - What is an MST?
//     Given an undirected, connected, weighted graph G = (V, E), an MST is a
//     subset T ⊆ E that connects every vertex with no cycle and minimum total
//     weight. On a disconnected graph the same greedy procedure yields one
//     spanning tree per component: a spanning forest.
//
//   - Why Kruskal works (cut property):
//     For any cut of V into two non-empty sides, the lightest edge crossing the
//     cut belongs to some MST. Scanning edges in ascending weight and keeping an
//     edge iff it joins two different components applies the cut property at
//     every step.
//
// Data model
//
//   - Node is a dense, zero-based integer id in [0, NumNodes()).
//   - Edge is a small immutable value {U, V, Weight}; Weight is any int64
//     (negative weights are fine, an MST has no cycles to exploit them).
//   - Graph owns a flat []Edge in insertion order until sorted.
//
// Node-count policy
//
//	Graph has an explicit node count fixed at NewGraph. AddEdge rejects
//	endpoints outside [0, NumNodes()) with ErrNodeOutOfRange, so isolated
//	vertices are never lost. DynamicGraph is the opt-in convenience layer that
//	grows the id space as edges arrive; it freezes into a Graph.
//
// Algorithm
//
//  1. SortEdges orders edges by ascending weight. Ties are broken arbitrarily;
//     callers must not depend on the relative order of equal-weight edges.
//     With WithSortWorkers(k>1) and enough edges, chunks are sorted in parallel
//     and merged. Only the sort is parallel.
//  2. KruskalFromSortedEdges validates the input once (ascending order,
//     endpoints in range), then walks it sequentially: Union(u, v) == true
//     accepts the edge, false rejects it as cycle-forming. Self-loops are always
//     rejected.
//  3. The walk stops as soon as NumNodes()-1 edges are accepted: that many
//     edges over an exact node count already span everything. A forest never
//     reaches that count, so disconnected inputs are always scanned to the end.
//
// Complexity: O(E log E) for the sort, O(E·α(V)) for the union-find pass,
// O(V + E) memory.
//
// Errors
//
//   - ErrNodeOutOfRange: an endpoint outside [0, NumNodes()).
//   - ErrNotSorted: KruskalFromSortedEdges received edges out of weight order.
//
// An empty graph (no nodes or no edges) is not an error: the result is an
// empty edge slice with total weight 0.
//
// Graph is not safe for concurrent mutation.
package mst
