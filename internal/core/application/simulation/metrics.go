package simulation

// Run outcomes reported to the metrics sink.
const (
	OutcomeDelivered = "delivered"
	OutcomeStopped   = "stopped"
	OutcomeFailed    = "failed"
)

// MetricsSink receives engine lifecycle events. The prometheus adapter in
// internal/metrics implements it; tests use NopMetrics.
type MetricsSink interface {
	// RunStarted is called when a simulation run is registered.
	RunStarted()

	// RunFinished is called exactly once per run with one of the
	// Outcome constants.
	RunFinished(outcome string)

	// TickRecorded is called for every cell a bot moves.
	TickRecorded()
}

// NopMetrics discards all events.
type NopMetrics struct{}

func (NopMetrics) RunStarted()        {}
func (NopMetrics) RunFinished(string) {}
func (NopMetrics) TickRecorded()      {}
