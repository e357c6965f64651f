package metrics_test

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"fastroute/internal/core/application/simulation"
	"fastroute/internal/metrics"
)

func TestSimulationMetrics(t *testing.T) {
	m := metrics.NewSimulationMetrics()

	// The instruments satisfy the engine's sink contract.
	var _ simulation.MetricsSink = m

	m.RunStarted()
	m.RunStarted()
	m.TickRecorded()
	m.TickRecorded()
	m.TickRecorded()
	m.RunFinished(simulation.OutcomeDelivered)

	gathered, err := m.Registry().Gather()
	require.NoError(t, err)
	names := make(map[string]bool, len(gathered))
	for _, family := range gathered {
		names[family.GetName()] = true
	}
	assert.True(t, names["fastroute_simulation_active_runs"])
	assert.True(t, names["fastroute_simulation_ticks_total"])
	assert.True(t, names["fastroute_simulation_runs_finished_total"])

	count, err := testutil.GatherAndCount(m.Registry(),
		"fastroute_simulation_runs_finished_total")
	require.NoError(t, err)
	assert.Equal(t, 1, count)
}
