package mst

import (
	"slices"

	"golang.org/x/sync/errgroup"
)

// SortEdges reorders the stored edges by ascending weight, in place.
// Ties are broken arbitrarily. Calling it twice yields the same weight order.
//
// Complexity: O(E log E).
func (g *Graph) SortEdges() {
	sortByWeight(g.edges, g.cfg.sortWorkers, g.cfg.parallelThreshold)
}

// SortedEdges returns a weight-ascending copy of the edges and leaves the
// stored order untouched.
//
// Complexity: O(E log E) time, O(E) extra memory.
func (g *Graph) SortedEdges() []Edge {
	out := g.Edges()
	sortByWeight(out, g.cfg.sortWorkers, g.cfg.parallelThreshold)

	return out
}

// sortByWeight sorts edges by weight. With workers > 1 and at least threshold
// edges, it sorts contiguous chunks concurrently and then merges neighbouring
// runs pairwise until a single run remains.
func sortByWeight(edges []Edge, workers, threshold int) {
	if workers <= 1 || len(edges) < threshold || len(edges) < 2 {
		slices.SortFunc(edges, compareWeight)
		return
	}

	// 1) Split into at most `workers` runs of near-equal size.
	chunk := (len(edges) + workers - 1) / workers
	bounds := make([]int, 0, workers+1)
	for lo := 0; lo < len(edges); lo += chunk {
		bounds = append(bounds, lo)
	}
	bounds = append(bounds, len(edges))

	// 2) Sort every run concurrently.
	var eg errgroup.Group
	for i := 0; i+1 < len(bounds); i++ {
		run := edges[bounds[i]:bounds[i+1]]
		eg.Go(func() error {
			slices.SortFunc(run, compareWeight)
			return nil
		})
	}
	_ = eg.Wait()

	// 3) Merge runs pairwise, ping-ponging between edges and a scratch buffer.
	src, dst := edges, make([]Edge, len(edges))
	for len(bounds) > 2 {
		next := make([]int, 0, len(bounds)/2+1)
		var mg errgroup.Group
		mg.SetLimit(workers)
		for i := 0; i+1 < len(bounds); i += 2 {
			lo := bounds[i]
			next = append(next, lo)
			if i+2 >= len(bounds) {
				// Odd run out: carry it over unchanged.
				copy(dst[lo:bounds[i+1]], src[lo:bounds[i+1]])
				continue
			}
			mid, hi := bounds[i+1], bounds[i+2]
			mg.Go(func() error {
				mergeRuns(dst[lo:hi], src[lo:mid], src[mid:hi])
				return nil
			})
		}
		_ = mg.Wait()
		bounds = append(next, len(edges))
		src, dst = dst, src
	}

	// src holds the fully merged run; copy back if it is the scratch buffer.
	if &src[0] != &edges[0] {
		copy(edges, src)
	}
}

// mergeRuns merges the sorted runs a and b into out (len(out) == len(a)+len(b)).
// Left-run elements win ties, so the merge itself is stable.
func mergeRuns(out, a, b []Edge) {
	i, j, k := 0, 0, 0
	for i < len(a) && j < len(b) {
		if b[j].Weight < a[i].Weight {
			out[k] = b[j]
			j++
		} else {
			out[k] = a[i]
			i++
		}
		k++
	}
	k += copy(out[k:], a[i:])
	copy(out[k:], b[j:])
}
