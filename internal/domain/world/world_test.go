package world_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MyForking/halite3-bot-1/internal/domain/grid"
	"github.com/MyForking/halite3-bot-1/internal/domain/world"
)

func newTestWorld() *world.World {
	w := world.NewWorld(10, 10, world.Constants{MaxTurns: 400, MoveCostRatio: 10, MaxHalite: 1000})
	w.Me = 0
	w.Players[0] = &world.Player{ID: 0, Halite: 5000, ShipyardPos: grid.Position{X: 0, Y: 0}}
	return w
}

func TestMyShipRejectsUnownedID(t *testing.T) {
	w := newTestWorld()
	ship, err := world.NewShip(1, 1, grid.Position{X: 2, Y: 2}, 0, 1000)
	require.NoError(t, err)
	w.Ships[1] = ship

	_, err = w.MyShip(1)

	assert.Error(t, err)
}

func TestMyShipReturnsOwnedShip(t *testing.T) {
	w := newTestWorld()
	ship, err := world.NewShip(1, 0, grid.Position{X: 2, Y: 2}, 50, 1000)
	require.NoError(t, err)
	w.Ships[1] = ship
	w.Players[0].ShipIDs = []world.ShipID{1}

	got, err := w.MyShip(1)

	require.NoError(t, err)
	assert.Equal(t, 50, got.Cargo())
}

func TestRoundsLeftIncludesCurrentTurn(t *testing.T) {
	w := newTestWorld()
	w.Turn = 399

	assert.Equal(t, 2, w.RoundsLeft())
}

func TestSortedOwnedShipIDsIsAscending(t *testing.T) {
	w := newTestWorld()
	w.Players[0].ShipIDs = []world.ShipID{5, 1, 3}

	got := w.SortedOwnedShipIDs()

	assert.Equal(t, []world.ShipID{1, 3, 5}, got)
}

func TestOwnedStructurePositionsIncludesShipyardAndDropoffs(t *testing.T) {
	w := newTestWorld()
	w.Players[0].DropoffIDs = []int{7}
	w.Dropoffs[7] = &world.Dropoff{ID: 7, Owner: 0, Position: grid.Position{X: 4, Y: 4}}

	got := w.OwnedStructurePositions()

	assert.ElementsMatch(t, []grid.Position{{X: 0, Y: 0}, {X: 4, Y: 4}}, got)
}

func TestNewShipRejectsOverCapacityCargo(t *testing.T) {
	_, err := world.NewShip(1, 0, grid.Position{}, 1500, 1000)

	assert.Error(t, err)
}

func TestMoveCostIsHaliteOverRatio(t *testing.T) {
	c := world.Constants{MoveCostRatio: 10}

	assert.Equal(t, 45, c.MoveCost(455))
}

func TestMapIsOwnedStructureDistinguishesOwners(t *testing.T) {
	m := world.NewMap(5, 5)
	p := grid.Position{X: 1, Y: 1}
	m.At(p).Structure = world.Structure{Kind: world.StructureShipyard, PlayerID: 1}

	assert.False(t, m.IsOwnedStructure(p, 0))
	assert.True(t, m.IsOwnedStructure(p, 1))
}
