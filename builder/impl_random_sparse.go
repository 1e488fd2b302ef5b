// SPDX-License-Identifier: MIT
// Package: lvmst/builder
//
// impl_random_sparse.go - RandomSparse(n, p): Erdős–Rényi-like G(n, p).
//
// Contract:
//   - n ≥ 1 (else ErrTooFewVertices).
//   - 0 ≤ p ≤ 1 (else ErrInvalidProbability).
//   - cfg.rng must be non-nil when 0 < p < 1 (else ErrNeedRandSource).
//   - Trials over unordered pairs {i,j}, i asc then j asc with j > i.
//
// Complexity: O(n²) Bernoulli trials. Deterministic for a fixed seed.

package builder

import (
	"fmt"

	"github.com/katalvlaran/lvmst/mst"
)

const (
	methodRandomSparse      = "RandomSparse"
	minRandomSparseVertices = 1
	probMin                 = 0.0
	probMax                 = 1.0
)

// RandomSparse returns a Constructor that samples G(n, p) over a fresh block.
func RandomSparse(n int, p float64) Constructor {
	return func(g *mst.DynamicGraph, cfg builderConfig) error {
		// 1) Validate parameters early, before touching g.
		if n < minRandomSparseVertices {
			return fmt.Errorf("%s: n=%d < min=%d: %w",
				methodRandomSparse, n, minRandomSparseVertices, ErrTooFewVertices)
		}
		if p < probMin || p > probMax {
			return fmt.Errorf("%s: p=%.6f not in [%.1f,%.1f]: %w",
				methodRandomSparse, p, probMin, probMax, ErrInvalidProbability)
		}
		if cfg.rng == nil && p > probMin && p < probMax {
			return fmt.Errorf("%s: rng is required: %w", methodRandomSparse, ErrNeedRandSource)
		}

		// 2) Reserve the block, then run one trial per unordered pair.
		base := g.AddNodes(n)
		for i := 0; i < n; i++ {
			for j := i + 1; j < n; j++ {
				switch {
				case p == probMin:
					continue
				case p == probMax:
				case cfg.rng.Float64() >= p:
					continue
				}
				if err := addEdge(methodRandomSparse, g, cfg, base, i, j); err != nil {
					return err
				}
			}
		}

		return nil
	}
}
