// SPDX-License-Identifier: MIT
// Package: lvmst/builder
//
// api.go - public entry-point for the builder package.
//
// Design contract:
//   - One orchestrator: BuildGraph(bopts, cons...). Creates a DynamicGraph,
//     resolves cfg, runs cons in order, freezes into an explicit-count mst.Graph.
//   - Every constructor reserves its own block of node ids with AddNodes and
//     only emits edges inside that block.
//   - Determinism: same inputs/options/seed and constructor order ⇒ identical graphs.

package builder

import (
	"fmt"

	"github.com/katalvlaran/lvmst/mst"
)

// Constructor reserves a block of nodes on g and emits edges between them
// using the resolved builderConfig. Constructors validate parameters first
// and return sentinel errors; they never panic.
type Constructor func(g *mst.DynamicGraph, cfg builderConfig) error

// BuildGraph resolves the builder configuration from bopts, applies all
// constructors in order and returns the frozen graph configured with gopts.
// Any constructor error is wrapped with "BuildGraph: %w".
//
// Complexity: O(len(bopts)) + Σ cost of each constructor.
func BuildGraph(bopts []BuilderOption, gopts []mst.Option, cons ...Constructor) (*mst.Graph, error) {
	dg := mst.NewDynamicGraph()
	cfg := newBuilderConfig(bopts...)

	for i, fn := range cons {
		if fn == nil {
			return nil, fmt.Errorf("BuildGraph: nil constructor at index %d: %w", i, ErrConstructFailed)
		}
		if err := fn(dg, cfg); err != nil {
			return nil, fmt.Errorf("BuildGraph: %w", err)
		}
	}

	return dg.Graph(gopts...), nil
}

// addEdge inserts base+i — base+j with the next configured weight.
func addEdge(method string, g *mst.DynamicGraph, cfg builderConfig, base mst.Node, i, j int) error {
	u, v := base+mst.Node(i), base+mst.Node(j)
	w := cfg.weight()
	if err := g.AddEdge(u, v, w); err != nil {
		return fmt.Errorf("%s: AddEdge(%d-%d, w=%d): %w: %w", method, u, v, w, ErrConstructFailed, err)
	}

	return nil
}
