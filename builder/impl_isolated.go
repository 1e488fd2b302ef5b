// SPDX-License-Identifier: MIT
// Package: lvmst/builder
//
// impl_isolated.go - Isolated(n): n degree-zero nodes, no edges.

package builder

import (
	"fmt"

	"github.com/katalvlaran/lvmst/mst"
)

const (
	methodIsolated   = "Isolated"
	minIsolatedNodes = 1
)

// Isolated returns a Constructor that reserves n nodes without edges.
// Each one is its own component in any spanning forest.
func Isolated(n int) Constructor {
	return func(g *mst.DynamicGraph, _ builderConfig) error {
		if n < minIsolatedNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodIsolated, n, minIsolatedNodes, ErrTooFewVertices)
		}
		g.AddNodes(n)

		return nil
	}
}
