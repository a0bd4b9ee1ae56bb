package metrics

import "github.com/prometheus/client_golang/prometheus"

// Collector is the concrete Prometheus-backed TurnMetricsRecorder.
type Collector struct {
	turnDuration        prometheus.Histogram
	shipCount           prometheus.Gauge
	haliteBanked        prometheus.Gauge
	moveCommands        prometheus.Counter
	spawnCommands       prometheus.Counter
	convertCommands     prometheus.Counter
	infeasibleTurns     prometheus.Counter
	infeasibleActors    prometheus.Counter
	avgReturnLength     prometheus.Gauge
}

// NewCollector registers every metric against reg and returns the ready
// collector.
func NewCollector(reg *prometheus.Registry) *Collector {
	c := &Collector{
		turnDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace, Subsystem: subsystem, Name: "duration_seconds",
			Help:    "Wall-clock time spent in one turn's Step call.",
			Buckets: prometheus.DefBuckets,
		}),
		shipCount: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace, Subsystem: subsystem, Name: "ship_count",
			Help: "Owned ship count after the turn's frame parse.",
		}),
		haliteBanked: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace, Subsystem: subsystem, Name: "halite_banked",
			Help: "Player treasury after the turn's frame parse.",
		}),
		moveCommands: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace, Subsystem: subsystem, Name: "move_commands_total",
			Help: "Cumulative move commands emitted.",
		}),
		spawnCommands: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace, Subsystem: subsystem, Name: "spawn_commands_total",
			Help: "Cumulative spawn commands emitted.",
		}),
		convertCommands: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace, Subsystem: subsystem, Name: "convert_commands_total",
			Help: "Cumulative convert (drop-off build) commands emitted.",
		}),
		infeasibleTurns: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace, Subsystem: subsystem, Name: "infeasible_assignment_turns_total",
			Help: "Turns where the solver could not satisfy every actor.",
		}),
		infeasibleActors: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace, Subsystem: subsystem, Name: "infeasible_assignment_actors_total",
			Help: "Cumulative actors left without a feasible option.",
		}),
		avgReturnLength: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace, Subsystem: subsystem, Name: "avg_return_length",
			Help: "Strategic controller's smoothed turns-to-deliver estimate.",
		}),
	}

	reg.MustRegister(
		c.turnDuration, c.shipCount, c.haliteBanked,
		c.moveCommands, c.spawnCommands, c.convertCommands,
		c.infeasibleTurns, c.infeasibleActors, c.avgReturnLength,
	)

	return c
}

func (c *Collector) RecordTurnDuration(seconds float64) { c.turnDuration.Observe(seconds) }
func (c *Collector) RecordShipCount(count int)          { c.shipCount.Set(float64(count)) }
func (c *Collector) RecordHaliteBanked(halite int)      { c.haliteBanked.Set(float64(halite)) }

func (c *Collector) RecordCommandCounts(moves, spawns, converts int) {
	c.moveCommands.Add(float64(moves))
	c.spawnCommands.Add(float64(spawns))
	c.convertCommands.Add(float64(converts))
}

func (c *Collector) RecordInfeasibleAssignment(actorCount int) {
	c.infeasibleTurns.Inc()
	c.infeasibleActors.Add(float64(actorCount))
}

func (c *Collector) RecordAvgReturnLength(turns float64) { c.avgReturnLength.Set(turns) }

var _ TurnMetricsRecorder = (*Collector)(nil)
