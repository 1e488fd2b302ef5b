// Package mst provides Kruskal's Minimum Spanning Tree over a Graph.
package mst

import (
	"fmt"
	"slices"

	"github.com/katalvlaran/lvmst/unionfind"
)

// KruskalMST sorts the stored edges in place and runs KruskalFromSortedEdges
// on them.
//
// Returns:
//
//	[]Edge — accepted edges in acceptance order (empty, never nil, when nothing is accepted).
//	int64  — sum of accepted weights.
//	error  — non-nil only if the stored edges violate the graph's invariants.
//
// Complexity: O(E log E + E·α(V)). Memory: O(V + E).
func (g *Graph) KruskalMST() ([]Edge, int64, error) {
	g.SortEdges()

	return g.KruskalFromSortedEdges(g.edges)
}

// KruskalFromSortedEdges computes a minimum spanning forest from edges that
// are already in ascending weight order. The slice is only read.
//
// Error Conditions:
//   - ErrNotSorted      : sorted is not weight-ascending.
//   - ErrNodeOutOfRange : an endpoint lies outside [0, NumNodes()).
//
// Steps:
//  1. Validate order and endpoints in one pass; after this every index handed
//     to the union-find is trusted.
//  2. Create a union-find sized to NumNodes().
//  3. For each edge, Union(u, v): true accepts it, false rejects a cycle.
//  4. Stop once NumNodes()-1 edges are accepted. On a forest that count is
//     never reached and the scan runs to the end.
//
// Complexity: O(E·α(V)). Memory: O(V).
func (g *Graph) KruskalFromSortedEdges(sorted []Edge) ([]Edge, int64, error) {
	// 1. Validate once at the boundary.
	if !slices.IsSortedFunc(sorted, compareWeight) {
		return nil, 0, fmt.Errorf("KruskalFromSortedEdges: %w", ErrNotSorted)
	}
	for _, e := range sorted {
		if err := g.checkNode("KruskalFromSortedEdges", e.U); err != nil {
			return nil, 0, err
		}
		if err := g.checkNode("KruskalFromSortedEdges", e.V); err != nil {
			return nil, 0, err
		}
	}

	// 2. Fresh union-find per computation.
	uf := unionfind.New(g.numNodes)
	limit := g.numNodes - 1
	if limit < 0 {
		limit = 0
	}

	var (
		forest = make([]Edge, 0, limit)
		total  int64
	)
	// 3. Greedy scan.
	for _, e := range sorted {
		// 4. A spanning tree over all nodes is complete.
		if len(forest) == limit {
			break
		}
		merged, err := uf.Union(int(e.U), int(e.V))
		if err != nil {
			return nil, 0, fmt.Errorf("KruskalFromSortedEdges: %w", err)
		}
		if !merged {
			continue
		}
		forest = append(forest, e)
		total += e.Weight
	}

	return forest, total, nil
}

// Components returns the number of connected components that edges induce
// over the nodes [0, numNodes). An accepted Kruskal forest over the same nodes
// always has numNodes - Components(numNodes, graphEdges) edges.
// Returns ErrNodeOutOfRange if an endpoint is outside [0, numNodes).
//
// Complexity: O(V + E·α(V)).
func Components(numNodes int, edges []Edge) (int, error) {
	uf := unionfind.New(numNodes)
	for _, e := range edges {
		if _, err := uf.Union(int(e.U), int(e.V)); err != nil {
			return 0, fmt.Errorf("Components: edge %s: %w: %w", e, ErrNodeOutOfRange, err)
		}
	}

	return uf.Count(), nil
}
