package cli

import (
	"context"
	"testing"

	log "github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func smallScenario() Scenario {
	sc := DefaultScenario()
	sc.Name = "small"
	sc.Nodes = 40
	sc.EdgesPerNode = 3
	sc.Iterations = 3
	return sc
}

func TestRunScenario(t *testing.T) {
	logger, hook := test.NewNullLogger()

	rep, err := RunScenario(context.Background(), logger, "run-1", smallScenario())
	require.NoError(t, err)

	assert.Equal(t, "run-1", rep.RunID)
	assert.Equal(t, 40, rep.Nodes)
	assert.Equal(t, 3*37+2+1, rep.Edges)
	// A band graph is connected: a spanning tree over every node.
	assert.Equal(t, 39, rep.Accepted)
	assert.Equal(t, 1, rep.Components)
	assert.Positive(t, rep.TotalWeight)
	assert.LessOrEqual(t, rep.Sorting.Min, rep.Sorting.Mean)
	assert.LessOrEqual(t, rep.Both.Min, rep.Both.Mean)

	last := hook.LastEntry()
	require.NotNil(t, last)
	assert.Equal(t, log.InfoLevel, last.Level)
	assert.Equal(t, "small", last.Data["scenario"])
	assert.Equal(t, "run-1", last.Data["run"])
}

func TestRunScenario_PartlySortedParallel(t *testing.T) {
	logger, _ := test.NewNullLogger()

	sc := smallScenario()
	sc.Swaps = 30
	sc.SortWorkers = 3
	sc.MinWeight, sc.MaxWeight = -20, 20

	rep, err := RunScenario(context.Background(), logger, "run-2", sc)
	require.NoError(t, err)
	assert.Equal(t, 39, rep.Accepted)
}

func TestRunScenario_Cancelled(t *testing.T) {
	logger, _ := test.NewNullLogger()
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := RunScenario(ctx, logger, "run-3", smallScenario())
	assert.ErrorIs(t, err, context.Canceled)
}

func TestRunScenario_Invalid(t *testing.T) {
	logger, _ := test.NewNullLogger()
	sc := smallScenario()
	sc.Iterations = 0

	_, err := RunScenario(context.Background(), logger, "run-4", sc)
	assert.ErrorIs(t, err, ErrInvalidScenario)
}
