// SPDX-License-Identifier: MIT
// Package: lvmst/builder
//
// impl_grid.go — Grid(rows, cols): 4-neighborhood lattice.
//
// Contract:
//   • rows ≥ 1 and cols ≥ 1 (else ErrTooFewVertices).
//   • Node r*cols+c of the block is cell (r,c), row-major.
//   • For each cell emit Right then Bottom where they exist.
//
// Complexity: O(rows*cols) nodes and edges.

package builder

import (
	"fmt"

	"github.com/katalvlaran/lvmst/mst"
)

const (
	methodGrid = "Grid"
	minGridDim = 1
)

// Grid returns a Constructor that builds a rows×cols grid.
func Grid(rows, cols int) Constructor {
	return func(g *mst.DynamicGraph, cfg builderConfig) error {
		if rows < minGridDim || cols < minGridDim {
			return fmt.Errorf("%s: rows=%d cols=%d < min=%d: %w",
				methodGrid, rows, cols, minGridDim, ErrTooFewVertices)
		}
		base := g.AddNodes(rows * cols)
		for r := 0; r < rows; r++ {
			for c := 0; c < cols; c++ {
				cell := r*cols + c
				if c+1 < cols {
					if err := addEdge(methodGrid, g, cfg, base, cell, cell+1); err != nil {
						return err
					}
				}
				if r+1 < rows {
					if err := addEdge(methodGrid, g, cfg, base, cell, cell+cols); err != nil {
						return err
					}
				}
			}
		}

		return nil
	}
}
