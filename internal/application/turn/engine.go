// Package turn drives the per-turn control flow (§4.7): parse, recompute
// derived fields, sync agents, let the strategic controller plan, let
// every ship agent think, solve the assignment, and hand back the
// resolved command list for emission.
package turn

import (
	"github.com/MyForking/halite3-bot-1/internal/domain/fields"
	"github.com/MyForking/halite3-bot-1/internal/domain/shipai"
	"github.com/MyForking/halite3-bot-1/internal/domain/solver"
	"github.com/MyForking/halite3-bot-1/internal/domain/strategy"
	"github.com/MyForking/halite3-bot-1/internal/domain/threat"
	"github.com/MyForking/halite3-bot-1/internal/domain/world"
)

// Engine owns the long-lived, across-turn collaborators: the field
// layer's double buffers and the strategic controller's accumulators.
// Everything else (ThreatMap, MoveSolver, the derived fields snapshot) is
// rebuilt fresh each turn per §5's mutation discipline.
type Engine struct {
	world      *world.World
	fieldLayer *fields.FieldLayer
	controller *strategy.Controller
	params     shipai.Params

	agents map[world.ShipID]*shipai.Agent
}

// New constructs an Engine bound to w (already populated by ReadInit) and
// the given tunable parameter groups.
func New(w *world.World, fieldParams fields.Params, strategyParams strategy.Params, shipParams shipai.Params) *Engine {
	return &Engine{
		world:      w,
		fieldLayer: fields.NewFieldLayer(fieldParams, w.Map.Size),
		controller: strategy.NewController(strategyParams),
		params:     shipParams,
		agents:     make(map[world.ShipID]*shipai.Agent),
	}
}

// Controller exposes the strategic controller for telemetry.
func (e *Engine) Controller() *strategy.Controller { return e.controller }

// Step runs one full turn (§4.7 steps 2-7); the caller is responsible for
// step 1 (parsing the frame into e.world before calling Step).
func (e *Engine) Step() []solver.Command {
	df := e.fieldLayer.Recompute(e.world)
	threats := threat.Update(e.world)

	e.syncAgents()

	s := solver.NewMoveSolver(e.world.Map.Size)
	e.controller.PlanTurn(e.world, df, s)

	ctx := &shipai.Context{
		World:      e.world,
		Fields:     df,
		FieldLayer: e.fieldLayer,
		Threats:    threats,
		Solver:     s,
		Commander:  e.controller,
		Params:     e.params,
	}

	for _, id := range e.world.SortedOwnedShipIDs() {
		e.agents[id].Think(ctx)
	}

	return s.Solve()
}

// syncAgents inserts agents for ship ids observed for the first time this
// turn and drops agents whose ship id no longer belongs to me (died or
// delivered into a structure and was removed) (§4.7 step 3).
func (e *Engine) syncAgents() {
	owned := make(map[world.ShipID]struct{}, len(e.world.SortedOwnedShipIDs()))
	for _, id := range e.world.SortedOwnedShipIDs() {
		owned[id] = struct{}{}
		if _, ok := e.agents[id]; !ok {
			e.agents[id] = shipai.NewAgent(id)
		}
	}
	for id := range e.agents {
		if _, ok := owned[id]; !ok {
			delete(e.agents, id)
		}
	}
}
