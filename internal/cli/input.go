package cli

import (
	"github.com/spf13/pflag"
)

// Input holds the command-line state of mstbench.
type Input struct {
	configPath string
	verbose    bool
	scenario   Scenario
}

// addRunFlags registers the scenario flags on fs, defaulting to the reference workload.
func (i *Input) addRunFlags(fs *pflag.FlagSet) {
	def := DefaultScenario()
	fs.StringVarP(&i.configPath, "config", "c", "", "yaml profile listing scenarios")
	fs.IntVarP(&i.scenario.Nodes, "nodes", "n", def.Nodes, "number of nodes")
	fs.IntVarP(&i.scenario.EdgesPerNode, "edges-per-node", "k", def.EdgesPerNode, "edges from each node to its successors")
	fs.Int64Var(&i.scenario.MinWeight, "min-weight", def.MinWeight, "smallest edge weight")
	fs.Int64Var(&i.scenario.MaxWeight, "max-weight", def.MaxWeight, "largest edge weight")
	fs.Int64VarP(&i.scenario.Seed, "seed", "s", def.Seed, "base RNG seed; iteration i uses seed+i")
	fs.IntVarP(&i.scenario.Iterations, "iterations", "i", def.Iterations, "iterations per scenario")
	fs.IntVar(&i.scenario.Swaps, "swaps", 0, "random transpositions applied to a sorted edge list (partly sorted input)")
	fs.IntVarP(&i.scenario.SortWorkers, "sort-workers", "p", def.SortWorkers, "goroutines used by the edge sort")
}

// override copies every flag the user set explicitly onto sc.
func (i *Input) override(fs *pflag.FlagSet, sc Scenario) Scenario {
	if fs.Changed("nodes") {
		sc.Nodes = i.scenario.Nodes
	}
	if fs.Changed("edges-per-node") {
		sc.EdgesPerNode = i.scenario.EdgesPerNode
	}
	if fs.Changed("min-weight") {
		sc.MinWeight = i.scenario.MinWeight
	}
	if fs.Changed("max-weight") {
		sc.MaxWeight = i.scenario.MaxWeight
	}
	if fs.Changed("seed") {
		sc.Seed = i.scenario.Seed
	}
	if fs.Changed("iterations") {
		sc.Iterations = i.scenario.Iterations
	}
	if fs.Changed("swaps") {
		sc.Swaps = i.scenario.Swaps
	}
	if fs.Changed("sort-workers") {
		sc.SortWorkers = i.scenario.SortWorkers
	}

	return sc
}
