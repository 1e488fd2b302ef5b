// SPDX-License-Identifier: MIT
// Package: lvmst/builder
//
// impl_complete.go - Complete(n): K_n over a fresh block.
//
// Contract:
//   - n ≥ 1 (else ErrTooFewVertices). K_1 has no edges.
//   - Edge order: i asc, then j asc with j > i.
//
// Complexity: O(n²) edges.

package builder

import (
	"fmt"

	"github.com/katalvlaran/lvmst/mst"
)

const (
	methodComplete   = "Complete"
	minCompleteNodes = 1
)

// Complete returns a Constructor that builds the complete simple graph K_n.
func Complete(n int) Constructor {
	return func(g *mst.DynamicGraph, cfg builderConfig) error {
		if n < minCompleteNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodComplete, n, minCompleteNodes, ErrTooFewVertices)
		}
		base := g.AddNodes(n)
		for i := 0; i < n; i++ {
			for j := i + 1; j < n; j++ {
				if err := addEdge(methodComplete, g, cfg, base, i, j); err != nil {
					return err
				}
			}
		}

		return nil
	}
}
