// Package metrics exposes prometheus instruments for the simulation engine.
// The instruments live on a dedicated registry so tests can create as many
// instances as they like without collisions on the default registry.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
)

// SimulationMetrics implements the engine's metrics sink on top of
// prometheus instruments.
type SimulationMetrics struct {
	registry *prometheus.Registry

	activeRuns   prometheus.Gauge
	ticks        prometheus.Counter
	finishedRuns *prometheus.CounterVec
}

// NewSimulationMetrics creates the instrument set on a fresh registry,
// including the standard Go and process collectors.
func NewSimulationMetrics() *SimulationMetrics {
	m := &SimulationMetrics{
		registry: prometheus.NewRegistry(),
		activeRuns: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "fastroute_simulation_active_runs",
			Help: "Number of orders currently being simulated.",
		}),
		ticks: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "fastroute_simulation_ticks_total",
			Help: "Total bot movement ticks across all runs.",
		}),
		finishedRuns: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "fastroute_simulation_runs_finished_total",
			Help: "Finished simulation runs by outcome.",
		}, []string{"outcome"}),
	}

	m.registry.MustRegister(m.activeRuns, m.ticks, m.finishedRuns)
	m.registry.MustRegister(collectors.NewGoCollector())
	m.registry.MustRegister(collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))

	return m
}

// Registry returns the registry backing the instruments, for the /metrics
// endpoint handler.
func (m *SimulationMetrics) Registry() *prometheus.Registry {
	return m.registry
}

// RunStarted bumps the active-runs gauge.
func (m *SimulationMetrics) RunStarted() {
	m.activeRuns.Inc()
}

// RunFinished drops the active-runs gauge and counts the outcome.
func (m *SimulationMetrics) RunFinished(outcome string) {
	m.activeRuns.Dec()
	m.finishedRuns.WithLabelValues(outcome).Inc()
}

// TickRecorded counts one cell of bot movement.
func (m *SimulationMetrics) TickRecorded() {
	m.ticks.Inc()
}
