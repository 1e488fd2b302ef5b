// SPDX-License-Identifier: MIT
// Package: lvmst/builder
//
// impl_path.go - Path(n): n nodes, edges i-1 — i for i=1..n-1.
//
// Contract:
//   - n ≥ 2 (else ErrTooFewVertices).
//   - Edge order: increasing i. Complexity: O(n).

package builder

import (
	"fmt"

	"github.com/katalvlaran/lvmst/mst"
)

const (
	methodPath   = "Path"
	minPathNodes = 2
)

// Path returns a Constructor that builds a simple path P_n.
func Path(n int) Constructor {
	return func(g *mst.DynamicGraph, cfg builderConfig) error {
		if n < minPathNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodPath, n, minPathNodes, ErrTooFewVertices)
		}
		base := g.AddNodes(n)
		for i := 1; i < n; i++ {
			if err := addEdge(methodPath, g, cfg, base, i-1, i); err != nil {
				return err
			}
		}

		return nil
	}
}
