// SPDX-License-Identifier: MIT
// Package: lvmst/builder
//
// impl_cycle.go - Cycle(n): the ring C_n.
//
// Contract:
//   - n ≥ 3 (else ErrTooFewVertices).
//   - Edges i — (i+1)%n for i asc. Complexity: O(n).

package builder

import (
	"fmt"

	"github.com/katalvlaran/lvmst/mst"
)

const (
	methodCycle   = "Cycle"
	minCycleNodes = 3
)

// Cycle returns a Constructor that builds a simple cycle C_n.
func Cycle(n int) Constructor {
	return func(g *mst.DynamicGraph, cfg builderConfig) error {
		if n < minCycleNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodCycle, n, minCycleNodes, ErrTooFewVertices)
		}
		base := g.AddNodes(n)
		for i := 0; i < n; i++ {
			if err := addEdge(methodCycle, g, cfg, base, i, (i+1)%n); err != nil {
				return err
			}
		}

		return nil
	}
}
