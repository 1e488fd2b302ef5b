package mst_test

import (
	"github.com/katalvlaran/lvmst/mst"
)

// bfsLabels labels every node in [0,n) with the smallest node id of its
// connected component under edges. It uses plain adjacency lists and BFS so
// that forest checks do not depend on the union-find under test.
func bfsLabels(n int, edges []mst.Edge) []int {
	adj := make([][]int, n)
	for _, e := range edges {
		u, v := int(e.U), int(e.V)
		adj[u] = append(adj[u], v)
		adj[v] = append(adj[v], u)
	}
	label := make([]int, n)
	for i := range label {
		label[i] = -1
	}
	for s := 0; s < n; s++ {
		if label[s] >= 0 {
			continue
		}
		label[s] = s
		queue := []int{s}
		for len(queue) > 0 {
			x := queue[0]
			queue = queue[1:]
			for _, y := range adj[x] {
				if label[y] < 0 {
					label[y] = s
					queue = append(queue, y)
				}
			}
		}
	}
	return label
}

// countComponents returns the number of distinct BFS labels.
func countComponents(n int, edges []mst.Edge) int {
	seen := make(map[int]struct{})
	for _, l := range bfsLabels(n, edges) {
		seen[l] = struct{}{}
	}
	return len(seen)
}

// isForest reports whether edges contain no cycle: a multigraph is acyclic iff
// |E| == |V| - components. Self-loops and parallel pairs break the equality.
func isForest(n int, edges []mst.Edge) bool {
	return len(edges) == n-countComponents(n, edges)
}

// sameComponents reports whether a and b induce the same partition of [0,n).
func sameComponents(n int, a, b []mst.Edge) bool {
	la, lb := bfsLabels(n, a), bfsLabels(n, b)
	for i := range la {
		if la[i] != lb[i] {
			return false
		}
	}
	return true
}

// bruteForceMin enumerates every k-subset of edges, k = n - components, and
// returns the minimum total weight among subsets that form a spanning forest
// of the same components.
func bruteForceMin(n int, edges []mst.Edge) (int64, bool) {
	k := n - countComponents(n, edges)
	var (
		best  int64
		found bool
		pick  = make([]mst.Edge, 0, k)
	)
	var rec func(start int, sum int64)
	rec = func(start int, sum int64) {
		if len(pick) == k {
			if isForest(n, pick) && sameComponents(n, pick, edges) {
				if !found || sum < best {
					best, found = sum, true
				}
			}
			return
		}
		for i := start; i <= len(edges)-(k-len(pick)); i++ {
			pick = append(pick, edges[i])
			rec(i+1, sum+edges[i].Weight)
			pick = pick[:len(pick)-1]
		}
	}
	rec(0, 0)
	return best, found
}

// weights projects edges onto their weights.
func weights(edges []mst.Edge) []int64 {
	out := make([]int64, len(edges))
	for i, e := range edges {
		out[i] = e.Weight
	}
	return out
}
