// SPDX-License-Identifier: MIT
// Package: lvmst/builder
//
// impl_star.go - Star(n): hub at the first id of the block, n-1 leaves.
//
// Contract:
//   - n ≥ 2 (else ErrTooFewVertices).
//   - Edges 0 — i for i=1..n-1. Complexity: O(n).

package builder

import (
	"fmt"

	"github.com/katalvlaran/lvmst/mst"
)

const (
	methodStar   = "Star"
	minStarNodes = 2
)

// Star returns a Constructor that builds a star with one hub and n-1 leaves.
func Star(n int) Constructor {
	return func(g *mst.DynamicGraph, cfg builderConfig) error {
		if n < minStarNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodStar, n, minStarNodes, ErrTooFewVertices)
		}
		base := g.AddNodes(n)
		for i := 1; i < n; i++ {
			if err := addEdge(methodStar, g, cfg, base, 0, i); err != nil {
				return err
			}
		}

		return nil
	}
}
