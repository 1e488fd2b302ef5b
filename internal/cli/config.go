package cli

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

// ErrInvalidScenario indicates a scenario whose parameters cannot drive a run.
var ErrInvalidScenario = errors.New("cli: invalid scenario")

// Defaults reproduce the reference workload: 2000 nodes, 20 edges per node,
// weights in [1,1000].
const (
	defaultNodes        = 2000
	defaultEdgesPerNode = 20
	defaultMinWeight    = 1
	defaultMaxWeight    = 1000
	defaultIterations   = 10
	defaultSeed         = 1
	defaultSortWorkers  = 1
)

// Scenario describes one benchmark workload. It holds generator parameters
// only; graphs themselves are never read from disk.
type Scenario struct {
	Name         string `yaml:"name"`
	Nodes        int    `yaml:"nodes"`
	EdgesPerNode int    `yaml:"edges_per_node"`
	MinWeight    int64  `yaml:"min_weight"`
	MaxWeight    int64  `yaml:"max_weight"`
	Seed         int64  `yaml:"seed"`
	Iterations   int    `yaml:"iterations"`
	// Swaps > 0 turns the input into a partly sorted one.
	Swaps       int `yaml:"swaps"`
	SortWorkers int `yaml:"sort_workers"`
}

// Profile is the on-disk list of scenarios.
type Profile struct {
	Scenarios []Scenario `yaml:"scenarios"`
}

// DefaultScenario returns the reference workload.
func DefaultScenario() Scenario {
	return Scenario{
		Name:         "default",
		Nodes:        defaultNodes,
		EdgesPerNode: defaultEdgesPerNode,
		MinWeight:    defaultMinWeight,
		MaxWeight:    defaultMaxWeight,
		Seed:         defaultSeed,
		Iterations:   defaultIterations,
		SortWorkers:  defaultSortWorkers,
	}
}

// withDefaults fills zero fields from DefaultScenario. Weights are filled only
// when both bounds are zero, so [0,0] must be written as min=max=0 explicitly
// through flags.
func (s Scenario) withDefaults() Scenario {
	def := DefaultScenario()
	if s.Nodes == 0 {
		s.Nodes = def.Nodes
	}
	if s.EdgesPerNode == 0 {
		s.EdgesPerNode = def.EdgesPerNode
	}
	if s.MinWeight == 0 && s.MaxWeight == 0 {
		s.MinWeight, s.MaxWeight = def.MinWeight, def.MaxWeight
	}
	if s.Iterations == 0 {
		s.Iterations = def.Iterations
	}
	if s.SortWorkers == 0 {
		s.SortWorkers = def.SortWorkers
	}

	return s
}

// Validate reports the first parameter that cannot drive a run.
func (s Scenario) Validate() error {
	switch {
	case s.Name == "":
		return fmt.Errorf("scenario: empty name: %w", ErrInvalidScenario)
	case s.Nodes < 1:
		return fmt.Errorf("scenario %q: nodes=%d < 1: %w", s.Name, s.Nodes, ErrInvalidScenario)
	case s.EdgesPerNode < 1:
		return fmt.Errorf("scenario %q: edges_per_node=%d < 1: %w", s.Name, s.EdgesPerNode, ErrInvalidScenario)
	case s.MaxWeight < s.MinWeight:
		return fmt.Errorf("scenario %q: max_weight=%d < min_weight=%d: %w", s.Name, s.MaxWeight, s.MinWeight, ErrInvalidScenario)
	case s.Iterations < 1:
		return fmt.Errorf("scenario %q: iterations=%d < 1: %w", s.Name, s.Iterations, ErrInvalidScenario)
	case s.Swaps < 0:
		return fmt.Errorf("scenario %q: swaps=%d < 0: %w", s.Name, s.Swaps, ErrInvalidScenario)
	case s.SortWorkers < 1:
		return fmt.Errorf("scenario %q: sort_workers=%d < 1: %w", s.Name, s.SortWorkers, ErrInvalidScenario)
	}

	return nil
}

// ReadProfile decodes a yaml profile, rejecting unknown keys, then applies
// defaults and validates every scenario. Scenario names must be unique.
func ReadProfile(r io.Reader) (Profile, error) {
	var p Profile
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&p); err != nil && !errors.Is(err, io.EOF) {
		return Profile{}, fmt.Errorf("decode profile: %w", err)
	}

	seen := make(map[string]bool, len(p.Scenarios))
	for i, s := range p.Scenarios {
		s = s.withDefaults()
		if err := s.Validate(); err != nil {
			return Profile{}, err
		}
		if seen[s.Name] {
			return Profile{}, fmt.Errorf("scenario %q: duplicate name: %w", s.Name, ErrInvalidScenario)
		}
		seen[s.Name] = true
		p.Scenarios[i] = s
	}

	return p, nil
}

// LoadProfile reads and decodes the profile at path.
func LoadProfile(path string) (Profile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Profile{}, err
	}

	return ReadProfile(bytes.NewReader(data))
}

// Select returns the scenarios named in names, in the given order. An empty
// names list selects every scenario.
func (p Profile) Select(names []string) ([]Scenario, error) {
	if len(names) == 0 {
		return p.Scenarios, nil
	}
	out := make([]Scenario, 0, len(names))
	for _, name := range names {
		found := false
		for _, s := range p.Scenarios {
			if s.Name == name {
				out = append(out, s)
				found = true
				break
			}
		}
		if !found {
			return nil, fmt.Errorf("scenario %q: not in profile: %w", name, ErrInvalidScenario)
		}
	}

	return out, nil
}
