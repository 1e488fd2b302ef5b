// Package mst defines the Node and Edge value types, sentinel errors and
// functional options for MST computation.
package mst

import (
	"cmp"
	"errors"
	"fmt"
)

// ErrNodeOutOfRange indicates that a node id lies outside [0, NumNodes()),
// or is negative for a DynamicGraph.
var ErrNodeOutOfRange = errors.New("mst: node id out of range")

// ErrNotSorted indicates that KruskalFromSortedEdges received edges that are
// not in ascending weight order; the greedy scan would not be minimal.
var ErrNotSorted = errors.New("mst: edges not sorted by weight")

// Node is a dense, zero-based node identifier. Equality is by value.
type Node int

// Edge is an undirected weighted edge between U and V.
// It is a value type: copying it is cheap and never aliases graph state.
type Edge struct {
	U, V   Node
	Weight int64
}

// String renders the edge as "U-V:Weight".
func (e Edge) String() string {
	return fmt.Sprintf("%d-%d:%d", e.U, e.V, e.Weight)
}

// IsLoop reports whether the edge is a self-loop.
func (e Edge) IsLoop() bool {
	return e.U == e.V
}

// compareWeight orders edges by ascending weight only.
func compareWeight(a, b Edge) int {
	return cmp.Compare(a.Weight, b.Weight)
}

// defaultParallelThreshold is the minimum number of edges before the parallel
// sort path is taken; below it goroutine fan-out costs more than it saves.
const defaultParallelThreshold = 4096

// graphConfig holds the resolved options of a Graph.
type graphConfig struct {
	// sortWorkers is the number of goroutines used by SortEdges; 1 is sequential.
	sortWorkers int
	// parallelThreshold is the minimum edge count for the parallel path.
	parallelThreshold int
}

// Option configures a Graph at construction time.
type Option func(*graphConfig)

// WithSortWorkers enables the parallel sort with k workers.
// Panics if k < 1.
func WithSortWorkers(k int) Option {
	if k < 1 {
		panic("mst: WithSortWorkers(k<1)")
	}
	return func(c *graphConfig) {
		c.sortWorkers = k
	}
}

// WithParallelThreshold sets the minimum edge count before the parallel sort
// is used. Panics if n < 1.
func WithParallelThreshold(n int) Option {
	if n < 1 {
		panic("mst: WithParallelThreshold(n<1)")
	}
	return func(c *graphConfig) {
		c.parallelThreshold = n
	}
}

// newGraphConfig resolves opts over the defaults (sequential sort).
func newGraphConfig(opts ...Option) graphConfig {
	cfg := graphConfig{
		sortWorkers:       1,
		parallelThreshold: defaultParallelThreshold,
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}
