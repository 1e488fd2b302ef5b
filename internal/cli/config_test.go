package cli

import (
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadProfile(t *testing.T) {
	p, err := LoadProfile(filepath.Join("testdata", "profile.yml"))
	require.NoError(t, err)
	require.Len(t, p.Scenarios, 2)

	small := p.Scenarios[0]
	assert.Equal(t, "small", small.Name)
	assert.Equal(t, 50, small.Nodes)
	assert.Equal(t, 3, small.EdgesPerNode)
	// Unset fields fall back to the reference workload.
	assert.Equal(t, int64(defaultMinWeight), small.MinWeight)
	assert.Equal(t, int64(defaultMaxWeight), small.MaxWeight)
	assert.Equal(t, defaultSortWorkers, small.SortWorkers)

	ps := p.Scenarios[1]
	assert.Equal(t, int64(-10), ps.MinWeight)
	assert.Equal(t, 20, ps.Swaps)
	assert.Equal(t, 2, ps.SortWorkers)
}

func TestLoadProfile_UnknownKey(t *testing.T) {
	_, err := LoadProfile(filepath.Join("testdata", "unknown_key.yml"))
	assert.Error(t, err)
}

func TestLoadProfile_Missing(t *testing.T) {
	_, err := LoadProfile(filepath.Join("testdata", "does-not-exist.yml"))
	assert.Error(t, err)
}

func TestReadProfile_Invalid(t *testing.T) {
	tests := map[string]string{
		"empty name":     "scenarios:\n  - nodes: 10\n",
		"negative nodes": "scenarios:\n  - name: a\n    nodes: -1\n",
		"weights":        "scenarios:\n  - name: a\n    min_weight: 5\n    max_weight: 1\n",
		"swaps":          "scenarios:\n  - name: a\n    swaps: -2\n",
		"duplicate":      "scenarios:\n  - name: a\n  - name: a\n",
	}
	for name, doc := range tests {
		_, err := ReadProfile(strings.NewReader(doc))
		assert.ErrorIs(t, err, ErrInvalidScenario, name)
	}
}

func TestReadProfile_Empty(t *testing.T) {
	p, err := ReadProfile(strings.NewReader(""))
	require.NoError(t, err)
	assert.Empty(t, p.Scenarios)
}

func TestProfile_Select(t *testing.T) {
	p := Profile{Scenarios: []Scenario{{Name: "a"}, {Name: "b"}, {Name: "c"}}}

	all, err := p.Select(nil)
	require.NoError(t, err)
	assert.Len(t, all, 3)

	some, err := p.Select([]string{"c", "a"})
	require.NoError(t, err)
	require.Len(t, some, 2)
	assert.Equal(t, "c", some[0].Name)
	assert.Equal(t, "a", some[1].Name)

	_, err = p.Select([]string{"zzz"})
	assert.ErrorIs(t, err, ErrInvalidScenario)
}
