package shipai

import (
	"github.com/MyForking/halite3-bot-1/internal/domain/grid"
	"github.com/MyForking/halite3-bot-1/internal/domain/world"
)

// GoHome is the end-game override: once too few rounds remain for
// another full harvest-and-return cycle, every ship rushes the nearest
// owned structure, only avoiding cells an enemy ship occupies right now,
// and forces a final collision into an adjacent structure to bank cargo
// on the last turns (§4.3.5).
type GoHome struct{}

func (GoHome) IsBuilder() bool { return false }

func (GoHome) Step(ctx *Context, id world.ShipID) Op {
	ship, err := ctx.World.MyShip(id)
	if err != nil {
		return DoneOp()
	}

	p := ship.Position()
	if ctx.World.Map.IsOwnedStructure(p, ctx.World.Me) {
		return DoneOp()
	}

	size := ctx.World.Map.Size
	for _, d := range grid.Directions {
		if ctx.World.Map.IsOwnedStructure(size.Move(p, d), ctx.World.Me) {
			ctx.Solver.ForceMove(id, d)
			return DoneOp()
		}
	}

	if stuckMove(ctx, id) {
		return NoneOp()
	}

	costs := returnGradientCardinalCosts(ctx, p)
	costs[grid.Still] = float64(ctx.Params.ReturnStepCost)

	forbidThreatenedDirections(ctx, &costs, p, func(target grid.Position) bool {
		return ctx.Threats.IsOccupied(target)
	})

	valid := [5]bool{true, true, true, true, true}
	ctx.Solver.ProposeShipMove(id, p, costs, valid)
	return NoneOp()
}
