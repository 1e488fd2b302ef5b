// SPDX-License-Identifier: MIT
// Package: lvmst/builder
//
// impl_sparse_band.go - SparseBand(n, k): node i links to i+1..i+k (clipped
// at n-1). This is the sparse benchmark workload: with a uniform weight
// distribution it matches the "2000 nodes, 20 edges per node, weights 1..1000"
// profile used by the mstbench harness.
//
// Contract:
//   - n ≥ 1 and k ≥ 1 (else ErrTooFewVertices).
//   - Edge order: i asc, then offset asc. Always connected for n ≥ 1.
//
// Complexity: O(n·k).

package builder

import (
	"fmt"

	"github.com/katalvlaran/lvmst/mst"
)

const (
	methodSparseBand = "SparseBand"
	minBandNodes     = 1
	minBandWidth     = 1
)

// SparseBand returns a Constructor that builds a band graph of width k.
func SparseBand(n, k int) Constructor {
	return func(g *mst.DynamicGraph, cfg builderConfig) error {
		if n < minBandNodes || k < minBandWidth {
			return fmt.Errorf("%s: n=%d k=%d below min n=%d k=%d: %w",
				methodSparseBand, n, k, minBandNodes, minBandWidth, ErrTooFewVertices)
		}
		base := g.AddNodes(n)
		for i := 0; i < n; i++ {
			for j := i + 1; j <= i+k && j < n; j++ {
				if err := addEdge(methodSparseBand, g, cfg, base, i, j); err != nil {
					return err
				}
			}
		}

		return nil
	}
}
