// Package metrics exposes the bot's turn-level telemetry as Prometheus
// gauges/histograms/counters, following the same global-registry and
// package-level Record* function pattern the rest of the stack's daemon
// used: domain/application code calls the free functions without
// importing this adapter's concrete collector type.
package metrics

import "github.com/prometheus/client_golang/prometheus"

const (
	namespace = "halite3_bot"
	subsystem = "turn"
)

var (
	// Registry is the global Prometheus registry for all metrics.
	Registry *prometheus.Registry

	// globalCollector is the singleton turn metrics collector, set by
	// SetGlobalCollector() when metrics are enabled.
	globalCollector TurnMetricsRecorder
)

// TurnMetricsRecorder defines the interface for recording one turn's
// outcome; the bot's application/bot package calls this through the
// package-level Record* wrappers below, never holding a reference to the
// concrete collector.
type TurnMetricsRecorder interface {
	RecordTurnDuration(seconds float64)
	RecordShipCount(count int)
	RecordHaliteBanked(halite int)
	RecordCommandCounts(moves, spawns, converts int)
	RecordInfeasibleAssignment(actorCount int)
	RecordAvgReturnLength(turns float64)
}

// InitRegistry initializes the Prometheus registry. Call once at startup
// if metrics collection is enabled.
func InitRegistry() {
	Registry = prometheus.NewRegistry()
}

// GetRegistry returns the global Prometheus registry, or nil if metrics
// are not initialized.
func GetRegistry() *prometheus.Registry {
	return Registry
}

// IsEnabled reports whether metrics collection is enabled.
func IsEnabled() bool {
	return Registry != nil
}

// SetGlobalCollector sets the global turn metrics collector.
func SetGlobalCollector(collector TurnMetricsRecorder) {
	globalCollector = collector
}

// RecordTurnDuration records how long one turn's Step call took.
func RecordTurnDuration(seconds float64) {
	if globalCollector != nil {
		globalCollector.RecordTurnDuration(seconds)
	}
}

// RecordShipCount records the owned fleet size after a turn's frame
// parse.
func RecordShipCount(count int) {
	if globalCollector != nil {
		globalCollector.RecordShipCount(count)
	}
}

// RecordHaliteBanked records the player's current treasury.
func RecordHaliteBanked(halite int) {
	if globalCollector != nil {
		globalCollector.RecordHaliteBanked(halite)
	}
}

// RecordCommandCounts records how many of each command kind the solver
// emitted this turn.
func RecordCommandCounts(moves, spawns, converts int) {
	if globalCollector != nil {
		globalCollector.RecordCommandCounts(moves, spawns, converts)
	}
}

// RecordInfeasibleAssignment records a turn where one or more actors had
// no feasible option (§7 InfeasibleAssignment).
func RecordInfeasibleAssignment(actorCount int) {
	if globalCollector != nil {
		globalCollector.RecordInfeasibleAssignment(actorCount)
	}
}

// RecordAvgReturnLength records the strategic controller's current
// avg_return_length EWMA.
func RecordAvgReturnLength(turns float64) {
	if globalCollector != nil {
		globalCollector.RecordAvgReturnLength(turns)
	}
}
