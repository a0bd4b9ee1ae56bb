package turn_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MyForking/halite3-bot-1/internal/application/turn"
	"github.com/MyForking/halite3-bot-1/internal/domain/fields"
	"github.com/MyForking/halite3-bot-1/internal/domain/grid"
	"github.com/MyForking/halite3-bot-1/internal/domain/shipai"
	"github.com/MyForking/halite3-bot-1/internal/domain/solver"
	"github.com/MyForking/halite3-bot-1/internal/domain/strategy"
	"github.com/MyForking/halite3-bot-1/internal/domain/world"
)

func newTestWorld() *world.World {
	w := world.NewWorld(16, 16, world.Constants{
		MaxTurns: 400, MoveCostRatio: 10, ExtractRatio: 4, MaxHalite: 1000,
		ShipCost: 1000, DropoffCost: 4000,
	})
	w.Me = 0
	shipyard := grid.Position{X: 0, Y: 0}
	w.Players[0] = &world.Player{ID: 0, Halite: 5000, ShipyardPos: shipyard}
	w.Map.At(shipyard).Structure = world.Structure{Kind: world.StructureShipyard, PlayerID: 0}
	for i := range w.Map.Cells {
		w.Map.Cells[i].Halite = 2000
	}
	return w
}

func newEngine(w *world.World) *turn.Engine {
	fieldParams := fields.Params{
		ReturnStepCost: 1, DiffusionCoefficient: 0.3, DecayRate: 0.05,
		ShipAbsorption: 1.0, ShipEvaporation: 0.1, TimeStep: 1, NSteps: 3,
	}
	strategyParams := strategy.Params{
		ReturnDistance: 15, ExpansionDistance: 10, MinHaliteDensity: 200,
		ShipRadius: 8, NShips: 3, SpawnHaliteFloor: 1000, SpawnMinRoundsLeftFactor: 0.5,
	}
	shipParams := shipai.Params{
		ReturnStepCost: 1, GoHomeSafetyFactor: 2, ReturnDistance: 15,
		GreedyHarvestLimit: 500, CarefulnessLimit: 100,
	}
	return turn.New(w, fieldParams, strategyParams, shipParams)
}

func TestStepWithNoShipsRequestsSpawn(t *testing.T) {
	w := newTestWorld()
	w.Turn = 1
	e := newEngine(w)

	commands := e.Step()

	require.Len(t, commands, 1)
	assert.Equal(t, solver.CommandSpawn, commands[0].Kind)
}

func TestStepMovesAnIdleShip(t *testing.T) {
	w := newTestWorld()
	w.Turn = 1
	ship, err := world.NewShip(1, 0, grid.Position{X: 5, Y: 5}, 0, 1000)
	require.NoError(t, err)
	w.Ships[1] = ship
	w.Players[0].ShipIDs = []world.ShipID{1}
	e := newEngine(w)

	commands := e.Step()

	var sawShipMove bool
	for _, c := range commands {
		if c.ShipID == 1 {
			sawShipMove = true
			assert.Equal(t, solver.CommandMove, c.Kind)
		}
	}
	assert.True(t, sawShipMove, "expected a command for ship 1")
}

func TestStepDropsAgentForShipNoLongerOwned(t *testing.T) {
	w := newTestWorld()
	w.Turn = 1
	ship, err := world.NewShip(1, 0, grid.Position{X: 5, Y: 5}, 0, 1000)
	require.NoError(t, err)
	w.Ships[1] = ship
	w.Players[0].ShipIDs = []world.ShipID{1}
	e := newEngine(w)
	_ = e.Step()

	// Ship 1 delivered or died; next frame it is gone from the world.
	delete(w.Ships, 1)
	w.Players[0].ShipIDs = nil
	w.Turn = 2

	commands := e.Step()

	for _, c := range commands {
		assert.NotEqual(t, world.ShipID(1), c.ShipID)
	}
}

func TestControllerAccumulatesStateAcrossSteps(t *testing.T) {
	w := newTestWorld()
	w.Turn = 1
	e := newEngine(w)

	_ = e.Step()
	spent := e.Controller().TotalSpent()

	assert.Equal(t, w.Constants.ShipCost, spent)

	w.Turn = 2
	_ = e.Step()

	assert.Equal(t, 2*w.Constants.ShipCost, e.Controller().TotalSpent())
}
