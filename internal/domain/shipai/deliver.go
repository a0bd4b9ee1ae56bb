package shipai

import (
	"github.com/MyForking/halite3-bot-1/internal/domain/grid"
	"github.com/MyForking/halite3-bot-1/internal/domain/world"
)

// Deliver steers a full (or returning) ship down the precomputed
// return-cost gradient toward the nearest owned structure, laying a
// cargo-proportional pheromone trail as it goes (§4.3.4).
type Deliver struct {
	// StartTurn is the turn this state was pushed, so Pop can report the
	// elapsed turns to the avg_return_length EWMA.
	StartTurn int
}

func (Deliver) IsBuilder() bool { return false }

func (d Deliver) Step(ctx *Context, id world.ShipID) Op {
	ship, err := ctx.World.MyShip(id)
	if err != nil {
		return DoneOp()
	}

	if ship.Cargo() == 0 {
		ctx.Commander.NotifyReturn(ctx.World.Turn - d.StartTurn)
		return DoneOp()
	}
	if stuckMove(ctx, id) {
		return NoneOp()
	}

	p := ship.Position()
	ctx.FieldLayer.AddTransientSource(p, float64(ship.Cargo())*ctx.FieldLayer.ShipEvaporation())

	costs := returnGradientCardinalCosts(ctx, p)
	capacity := ship.Capacity(ctx.World.Constants.MaxHalite)
	costs[grid.Still] = float64(ctx.Params.ReturnStepCost - capGain(haliteGain(ctx.World, p), capacity))

	forbidThreatenedDirections(ctx, &costs, p, func(target grid.Position) bool {
		return ctx.Threats.IsReachable(target)
	})

	valid := [5]bool{true, true, true, true, true}
	ctx.Solver.ProposeShipMove(id, p, costs, valid)
	return NoneOp()
}

// returnGradientCardinalCosts fills the four cardinal-direction entries of
// a Deliver/GoHome cost vector with the incremental change in return-cost
// from stepping there (§4.3.4); the Still entry is left zero for the
// caller to set, since Deliver and GoHome price staying differently
// (§4.3.1, §4.3.5).
func returnGradientCardinalCosts(ctx *Context, p grid.Position) [5]float64 {
	homeCost := ctx.Fields.ReturnCost(p)

	var costs [5]float64
	for i, dir := range grid.AllOptions {
		if dir == grid.Still {
			continue
		}
		target := ctx.World.Map.Size.Move(p, dir)
		costs[i] = float64(int64(ctx.Fields.ReturnCost(target)) - int64(homeCost))
	}
	return costs
}
