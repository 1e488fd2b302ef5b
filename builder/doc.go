// Package builder generates deterministic weighted fixture graphs for the mst
// package: tests, benchmarks and the mstbench harness all draw their inputs
// from here.
//
// The package offers the following key components:
//
//   - Orchestration:
//     – BuildGraph:        resolve options, run constructors, freeze into *mst.Graph.
//     – Constructor:       one topology emitter over a growing mst.DynamicGraph.
//   - Topologies (each occupies a fresh block of node ids):
//     – Path, Cycle, Star, Complete, Grid: classic shapes.
//     – RandomSparse:      Erdős–Rényi-like G(n, p).
//     – SparseBand:        node i links to i+1..i+k (benchmark workload).
//     – Isolated:          degree-zero nodes (forest fixtures).
//   - Edge-weight distributions (WeightFn, int64):
//     – DefaultWeightFn, ConstantWeightFn, UniformWeightFn.
//   - Input perturbation:
//     – Shuffle:           random transpositions for partly-sorted edge lists.
//
// Guarantees:
//
//   - Determinism: same options, seed and constructor order ⇒ identical graphs.
//   - Fast-fail on meaningless option values via panics in WithX constructors.
//   - Constructors never panic; they return sentinel errors wrapped with the
//     method name (errors.Is friendly).
//
// Composing several constructors in one BuildGraph call yields a graph with
// one component per constructor (more for Isolated or sparse random blocks),
// which is how forest inputs are produced.
package builder
