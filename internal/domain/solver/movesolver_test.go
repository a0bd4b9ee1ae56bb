package solver_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MyForking/halite3-bot-1/internal/domain/grid"
	"github.com/MyForking/halite3-bot-1/internal/domain/solver"
	"github.com/MyForking/halite3-bot-1/internal/domain/world"
)

func TestSolveSingleShipPrefersLowestCostDirection(t *testing.T) {
	s := solver.NewMoveSolver(grid.Size{Width: 10, Height: 10})
	p := grid.Position{X: 5, Y: 5}

	// Cost vector order matches grid.AllOptions: Still, N, S, E, W.
	costs := [5]float64{0, -100, 0, 0, 0}
	valid := [5]bool{true, true, true, true, true}
	s.ProposeShipMove(1, p, costs, valid)

	commands := s.Solve()

	require.Len(t, commands, 1)
	assert.Equal(t, solver.CommandMove, commands[0].Kind)
	assert.Equal(t, grid.North, commands[0].Direction)
}

func TestSolveTwoShipsAvoidCollidingOnSameCell(t *testing.T) {
	// §8 invariant 1: collision-freeness. Both ships prefer the same
	// target cell; the solver must assign at most one of them there.
	s := solver.NewMoveSolver(grid.Size{Width: 10, Height: 10})

	a := grid.Position{X: 5, Y: 5}
	b := grid.Position{X: 5, Y: 7}
	// A's best move is South into (5,6); B's best move is North into (5,6).
	costsA := [5]float64{0, 0, -100, 0, 0}
	costsB := [5]float64{0, -100, 0, 0, 0}
	valid := [5]bool{true, true, true, true, true}
	s.ProposeShipMove(1, a, costsA, valid)
	s.ProposeShipMove(2, b, costsB, valid)

	commands := s.Solve()

	destinations := make(map[grid.Position]int)
	for _, c := range commands {
		var pos grid.Position
		switch c.ShipID {
		case 1:
			pos = grid.Size{Width: 10, Height: 10}.Move(a, c.Direction)
		case 2:
			pos = grid.Size{Width: 10, Height: 10}.Move(b, c.Direction)
		}
		destinations[pos]++
	}
	for pos, count := range destinations {
		assert.LessOrEqualf(t, count, 1, "cell %v assigned to %d ships", pos, count)
	}
}

func TestSolveSpawnOnlyWhenNotified(t *testing.T) {
	s := solver.NewMoveSolver(grid.Size{Width: 10, Height: 10})
	s.NotifySpawn(grid.Position{X: 0, Y: 0})

	commands := s.Solve()

	require.Len(t, commands, 1)
	assert.Equal(t, solver.CommandSpawn, commands[0].Kind)
}

func TestForcedMovesBypassSolverEntirely(t *testing.T) {
	s := solver.NewMoveSolver(grid.Size{Width: 10, Height: 10})
	s.ForceMove(world.ShipID(9), grid.North)

	commands := s.Solve()

	require.Len(t, commands, 1)
	assert.Equal(t, solver.CommandMove, commands[0].Kind)
	assert.Equal(t, world.ShipID(9), commands[0].ShipID)
}

func TestForceConvertProducesConvertCommand(t *testing.T) {
	s := solver.NewMoveSolver(grid.Size{Width: 10, Height: 10})
	s.ForceConvert(world.ShipID(3))

	commands := s.Solve()

	require.Len(t, commands, 1)
	assert.Equal(t, solver.CommandConvert, commands[0].Kind)
}

func TestInfeasibleDirectionIsNeverChosenWhenAlternativeExists(t *testing.T) {
	s := solver.NewMoveSolver(grid.Size{Width: 10, Height: 10})
	p := grid.Position{X: 5, Y: 5}

	costs := [5]float64{0, solver.InfCost, 0, 0, 0}
	valid := [5]bool{true, true, true, true, true}
	s.ProposeShipMove(1, p, costs, valid)

	commands := s.Solve()

	require.Len(t, commands, 1)
	assert.NotEqual(t, grid.North, commands[0].Direction)
}
