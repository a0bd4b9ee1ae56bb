// Package bot wires the configuration, protocol and turn-engine layers
// into the process entry point (§6, §4.7).
package bot

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/google/uuid"

	"github.com/MyForking/halite3-bot-1/internal/adapters/logging"
	"github.com/MyForking/halite3-bot-1/internal/adapters/metrics"
	"github.com/MyForking/halite3-bot-1/internal/adapters/persistence"
	"github.com/MyForking/halite3-bot-1/internal/adapters/protocol"
	"github.com/MyForking/halite3-bot-1/internal/application/turn"
	"github.com/MyForking/halite3-bot-1/internal/domain/fields"
	"github.com/MyForking/halite3-bot-1/internal/domain/shared"
	"github.com/MyForking/halite3-bot-1/internal/domain/shipai"
	"github.com/MyForking/halite3-bot-1/internal/domain/solver"
	"github.com/MyForking/halite3-bot-1/internal/domain/strategy"
	"github.com/MyForking/halite3-bot-1/internal/domain/world"
	"github.com/MyForking/halite3-bot-1/internal/infrastructure/config"
	"github.com/MyForking/halite3-bot-1/internal/infrastructure/database"
)

// Options bundles the bot's CLI flags (§6).
type Options struct {
	ConfigPath string
	RunID      string
}

// Run loads configuration, performs the startup handshake, then drives
// the turn loop until the engine closes stdin at the end of the match.
func Run(opts Options) error {
	cfg, err := config.LoadConfig(opts.ConfigPath)
	if err != nil {
		return err
	}

	reader := protocol.NewReader(os.Stdin)
	constants, err := reader.ReadConstants()
	if err != nil {
		return err
	}

	w, err := reader.ReadInit()
	if err != nil {
		return err
	}
	w.Constants = constants

	runID := opts.RunID
	if runID == "" {
		runID = uuid.NewString()
	}

	logFile, err := os.OpenFile(fmt.Sprintf("bot-%d.log", w.Me), os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0644)
	if err != nil {
		return err
	}
	defer logFile.Close()
	logger := logging.NewFileLogger(logFile)

	engine := turn.New(w,
		fields.Params{
			ReturnStepCost:       cfg.Navigation.ReturnStepCost,
			DiffusionCoefficient: cfg.Pheromones.DiffusionCoefficient,
			DecayRate:            cfg.Pheromones.DecayRate,
			ShipAbsorption:       cfg.Pheromones.ShipAbsorbtion,
			ShipEvaporation:      cfg.Pheromones.ShipEvaporation,
			TimeStep:             cfg.Pheromones.TimeStep,
			NSteps:               cfg.Pheromones.NSteps,
		},
		strategy.Params{
			ReturnDistance:           cfg.Expansion.ReturnDistance,
			ExpansionDistance:        cfg.Expansion.ExpansionDistance,
			MinHaliteDensity:         cfg.Expansion.MinHaliteDensity,
			ShipRadius:               cfg.Expansion.ShipRadius,
			NShips:                   cfg.Expansion.NShips,
			SpawnHaliteFloor:         cfg.Strategy.SpawnHaliteFloor,
			SpawnMinRoundsLeftFactor: cfg.Strategy.SpawnMinRoundsLeftFactor,
		},
		shipai.Params{
			ReturnStepCost:     cfg.Navigation.ReturnStepCost,
			GoHomeSafetyFactor: cfg.Navigation.GoHomeSafetyFactor,
			ReturnDistance:     cfg.Expansion.ReturnDistance,
			GreedyHarvestLimit: cfg.Ships.GreedyHarvestLimit,
			CarefulnessLimit:   cfg.Ships.CarefulnessLimit,
		},
	)

	writer := protocol.NewWriter(os.Stdout)
	name := "halite3-bot-1"
	if opts.RunID != "" {
		name = fmt.Sprintf("%s-%s", name, opts.RunID)
	}
	if err := writer.WriteReady(name); err != nil {
		return err
	}

	metrics.InitRegistry()
	metrics.SetGlobalCollector(metrics.NewCollector(metrics.GetRegistry()))

	recorder, closeDB, err := newTurnRecorder(cfg.Telemetry)
	if err != nil {
		logger.Log("error", "telemetry database unavailable", map[string]interface{}{"error": err.Error()})
		recorder = persistence.NoopTurnRecorder{}
	}
	if closeDB != nil {
		defer closeDB()
	}

	clock := shared.NewRealClock()

	logger.Log("info", "bot ready", map[string]interface{}{"player_id": w.Me, "run_id": runID})

	for {
		if err := reader.ReadTurn(w); err != nil {
			if err == io.EOF {
				logger.Log("info", "match ended", nil)
				return nil
			}
			logger.Log("error", "malformed turn input", map[string]interface{}{"error": err.Error()})
			return err
		}

		start := clock.Now()
		commands := engine.Step()
		metrics.RecordTurnDuration(clock.Now().Sub(start).Seconds())

		if err := writer.WriteCommands(commands); err != nil {
			return err
		}

		recordTurnMetrics(w, commands, engine.Controller())
		if err := persistTurn(recorder, runID, w, commands, engine.Controller(), clock.Now()); err != nil {
			logger.Log("warn", "turn telemetry write failed", map[string]interface{}{"error": err.Error()})
		}

		logger.Log("info", "turn complete", map[string]interface{}{
			"turn":              w.Turn,
			"commands":          len(commands),
			"avg_return_length": engine.Controller().AvgReturnLength(),
			"total_spent":       engine.Controller().TotalSpent(),
		})
	}
}

// newTurnRecorder opens the optional telemetry database per cfg and
// migrates its schema, or returns a no-op recorder when disabled.
func newTurnRecorder(cfg config.TelemetryConfig) (persistence.TurnRecorder, func(), error) {
	if !cfg.Enabled {
		return persistence.NoopTurnRecorder{}, nil, nil
	}

	db, err := database.NewConnection(cfg)
	if err != nil {
		return nil, nil, err
	}
	if err := database.AutoMigrate(db); err != nil {
		return nil, nil, err
	}

	closeFn := func() { _ = database.Close(db) }
	return persistence.NewGormTurnRecorder(db), closeFn, nil
}

// recordTurnMetrics reports the post-Step turn state to the global
// metrics collector (§6 observability: ship count, treasury, command mix,
// avg_return_length).
func recordTurnMetrics(w *world.World, commands []solver.Command, ctrl *strategy.Controller) {
	me := w.MyPlayer()
	metrics.RecordShipCount(len(me.ShipIDs))
	metrics.RecordHaliteBanked(me.Halite)
	metrics.RecordAvgReturnLength(ctrl.AvgReturnLength())

	var moves, spawns, converts int
	for _, c := range commands {
		switch c.Kind {
		case solver.CommandMove:
			moves++
		case solver.CommandSpawn:
			spawns++
		case solver.CommandConvert:
			converts++
		}
	}
	metrics.RecordCommandCounts(moves, spawns, converts)
}

// persistTurn writes one row of post-match telemetry; a no-op when
// telemetry is disabled (persistence.NoopTurnRecorder).
func persistTurn(recorder persistence.TurnRecorder, runID string, w *world.World, commands []solver.Command, ctrl *strategy.Controller, at time.Time) error {
	me := w.MyPlayer()

	var moves, spawns, converts int
	for _, c := range commands {
		switch c.Kind {
		case solver.CommandMove:
			moves++
		case solver.CommandSpawn:
			spawns++
		case solver.CommandConvert:
			converts++
		}
	}

	return recorder.RecordTurn(persistence.TurnRecord{
		RunID:           runID,
		Turn:            w.Turn,
		ShipCount:       len(me.ShipIDs),
		HaliteBanked:    me.Halite,
		TotalSpent:      ctrl.TotalSpent(),
		AvgReturnLength: ctrl.AvgReturnLength(),
		MoveCommands:    moves,
		SpawnCommands:   spawns,
		ConvertCommands: converts,
		RecordedAt:      at,
	})
}
