package cli

import (
	"context"
	"fmt"
	"math/rand"
	"time"

	log "github.com/sirupsen/logrus"

	"github.com/katalvlaran/lvmst/builder"
	"github.com/katalvlaran/lvmst/mst"
)

// PhaseStats aggregates the durations of one phase over all iterations.
type PhaseStats struct {
	Min  time.Duration
	Mean time.Duration

	total time.Duration
	n     int
}

func (p *PhaseStats) add(d time.Duration) {
	if p.n == 0 || d < p.Min {
		p.Min = d
	}
	p.n++
	p.total += d
	p.Mean = p.total / time.Duration(p.n)
}

// Report is the outcome of one scenario. Graph figures come from the last
// iteration; every iteration uses a different seed, so they vary slightly.
type Report struct {
	RunID    string
	Scenario string

	Sorting   PhaseStats
	UnionFind PhaseStats
	Both      PhaseStats

	Nodes       int
	Edges       int
	Accepted    int
	Components  int
	TotalWeight int64
}

// buildScenarioGraph builds the iteration's workload. With Swaps > 0 the edge
// list is sorted and then disturbed by random transpositions.
func buildScenarioGraph(sc Scenario, iter int) (*mst.Graph, error) {
	seed := sc.Seed + int64(iter)
	g, err := builder.BuildGraph(
		[]builder.BuilderOption{builder.WithSeed(seed), builder.WithUniformWeight(sc.MinWeight, sc.MaxWeight)},
		[]mst.Option{mst.WithSortWorkers(sc.SortWorkers)},
		builder.SparseBand(sc.Nodes, sc.EdgesPerNode),
	)
	if err != nil {
		return nil, err
	}
	if sc.Swaps == 0 {
		return g, nil
	}

	edges := g.SortedEdges()
	builder.Shuffle(edges, sc.Swaps, rand.New(rand.NewSource(seed)))
	out := mst.NewGraph(g.NumNodes(), mst.WithSortWorkers(sc.SortWorkers))
	for _, e := range edges {
		if err := out.AddEdge(e.U, e.V, e.Weight); err != nil {
			return nil, err
		}
	}

	return out, nil
}

// RunScenario measures the sorting, union-find and combined phases sc.Iterations
// times. ctx is checked between iterations; a cancelled run returns ctx.Err().
func RunScenario(ctx context.Context, logger log.FieldLogger, runID string, sc Scenario) (Report, error) {
	if err := sc.Validate(); err != nil {
		return Report{}, err
	}
	rep := Report{RunID: runID, Scenario: sc.Name}
	entry := logger.WithFields(log.Fields{"run": runID, "scenario": sc.Name})

	for iter := 0; iter < sc.Iterations; iter++ {
		if err := ctx.Err(); err != nil {
			return rep, err
		}

		g, err := buildScenarioGraph(sc, iter)
		if err != nil {
			return rep, fmt.Errorf("scenario %q: build: %w", sc.Name, err)
		}

		// Sorting phase on a clone, so g keeps its unsorted order.
		sortG := g.Clone()
		start := time.Now()
		sortG.SortEdges()
		rep.Sorting.add(time.Since(start))

		// Union-find phase over already sorted edges.
		sorted := sortG.Edges()
		start = time.Now()
		if _, _, err := g.KruskalFromSortedEdges(sorted); err != nil {
			return rep, fmt.Errorf("scenario %q: union-find: %w", sc.Name, err)
		}
		rep.UnionFind.add(time.Since(start))

		// Both phases on the original order.
		start = time.Now()
		forest, total, err := g.KruskalMST()
		if err != nil {
			return rep, fmt.Errorf("scenario %q: kruskal: %w", sc.Name, err)
		}
		rep.Both.add(time.Since(start))

		comps, err := mst.Components(g.NumNodes(), forest)
		if err != nil {
			return rep, fmt.Errorf("scenario %q: components: %w", sc.Name, err)
		}
		rep.Nodes, rep.Edges = g.NumNodes(), g.NumEdges()
		rep.Accepted, rep.Components, rep.TotalWeight = len(forest), comps, total

		entry.WithFields(log.Fields{
			"iteration": iter,
			"accepted":  len(forest),
			"weight":    total,
		}).Debug("iteration done")
	}

	entry.WithFields(log.Fields{
		"nodes":      rep.Nodes,
		"edges":      rep.Edges,
		"sort_mean":  rep.Sorting.Mean,
		"uf_mean":    rep.UnionFind.Mean,
		"both_mean":  rep.Both.Mean,
		"components": rep.Components,
	}).Info("scenario finished")

	return rep, nil
}
