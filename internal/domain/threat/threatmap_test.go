package threat_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MyForking/halite3-bot-1/internal/domain/grid"
	"github.com/MyForking/halite3-bot-1/internal/domain/threat"
	"github.com/MyForking/halite3-bot-1/internal/domain/world"
)

func newWorld() *world.World {
	w := world.NewWorld(10, 10, world.Constants{})
	w.Me = 0
	w.Players[0] = &world.Player{ID: 0}
	w.Players[1] = &world.Player{ID: 1}
	return w
}

func TestEnemyShipMarksItsCellOccupied(t *testing.T) {
	w := newWorld()
	enemy, err := world.NewShip(1, 1, grid.Position{X: 5, Y: 5}, 0, 1000)
	require.NoError(t, err)
	w.Ships[1] = enemy

	tm := threat.Update(w)

	assert.True(t, tm.IsOccupied(grid.Position{X: 5, Y: 5}))
}

func TestEnemyShipMarksNeighborsReachableNotOccupied(t *testing.T) {
	w := newWorld()
	enemy, err := world.NewShip(1, 1, grid.Position{X: 5, Y: 5}, 0, 1000)
	require.NoError(t, err)
	w.Ships[1] = enemy

	tm := threat.Update(w)

	n := grid.Position{X: 5, Y: 4}
	assert.True(t, tm.IsReachable(n))
	assert.False(t, tm.IsOccupied(n))
}

func TestOwnStructureIsExemptFromThreat(t *testing.T) {
	w := newWorld()
	shipyard := grid.Position{X: 5, Y: 5}
	w.Map.At(shipyard).Structure = world.Structure{Kind: world.StructureShipyard, PlayerID: 0}
	enemy, err := world.NewShip(1, 1, shipyard, 0, 1000)
	require.NoError(t, err)
	w.Ships[1] = enemy

	tm := threat.Update(w)

	assert.False(t, tm.IsOccupied(shipyard))
	assert.False(t, tm.IsReachable(grid.Position{X: 5, Y: 4}))
}

func TestDisallowedCargoThreshold(t *testing.T) {
	w := newWorld()
	enemy, err := world.NewShip(1, 1, grid.Position{X: 5, Y: 5}, 0, 1000)
	require.NoError(t, err)
	w.Ships[1] = enemy
	tm := threat.Update(w)

	reachableOnly := grid.Position{X: 5, Y: 4}

	// Heavily laden ship (cargo above the carefulness limit) avoids
	// anything merely Reachable.
	assert.True(t, tm.Disallowed(reachableOnly, 500, 100))
	// Lightly laden ship only avoids cells an enemy already Occupies.
	assert.False(t, tm.Disallowed(reachableOnly, 50, 100))
}
