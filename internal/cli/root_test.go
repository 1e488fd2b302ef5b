package cli

import (
	"bytes"
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func runRoot(t *testing.T, args ...string) (string, error) {
	t.Helper()
	rootCmd := createRootCommand(context.Background(), &Input{}, "test")
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetArgs(args)
	err := rootCmd.Execute()
	return out.String(), err
}

func TestRun_Flags(t *testing.T) {
	out, err := runRoot(t, "run", "--nodes", "30", "-k", "2", "--iterations", "1")
	require.NoError(t, err)
	assert.Contains(t, out, "SCENARIO")
	assert.Contains(t, out, "default")
}

func TestRun_Profile(t *testing.T) {
	out, err := runRoot(t, "run", "--config", filepath.Join("testdata", "profile.yml"), "--iterations", "1", "small")
	require.NoError(t, err)
	assert.Contains(t, out, "small")
	assert.NotContains(t, out, "partly-sorted")
}

func TestRun_ScenarioWithoutProfile(t *testing.T) {
	_, err := runRoot(t, "run", "small")
	assert.ErrorIs(t, err, ErrInvalidScenario)
}

func TestRun_InvalidFlags(t *testing.T) {
	_, err := runRoot(t, "run", "--nodes", "0")
	assert.ErrorIs(t, err, ErrInvalidScenario)
}

func TestInput_Override(t *testing.T) {
	input := &Input{}
	rootCmd := createRootCommand(context.Background(), input, "test")
	runCmd, _, err := rootCmd.Find([]string{"run"})
	require.NoError(t, err)
	require.NoError(t, runCmd.Flags().Parse([]string{"--swaps", "7"}))

	sc := input.override(runCmd.Flags(), Scenario{Name: "x", Nodes: 5, Swaps: 1})
	assert.Equal(t, 7, sc.Swaps)
	assert.Equal(t, 5, sc.Nodes, "unset flags must not override")
}
