package shipai

import (
	"github.com/MyForking/halite3-bot-1/internal/domain/grid"
	"github.com/MyForking/halite3-bot-1/internal/domain/solver"
	"github.com/MyForking/halite3-bot-1/internal/domain/world"
)

// stuckMove implements the common "stuck move" helper (§4.3.1): if the
// movement cost of leaving the current cell exceeds the ship's cargo, it
// cannot leave and must propose staying. It returns true when it handled
// the turn (the caller must stop further planning this cycle).
func stuckMove(ctx *Context, id world.ShipID) bool {
	ship, err := ctx.World.MyShip(id)
	if err != nil {
		return true
	}

	p := ship.Position()
	halite := ctx.World.Map.Halite(p)
	moveCost := ctx.World.Constants.MoveCost(halite)

	if ship.Cargo() >= moveCost {
		return false
	}

	capacity := ship.Capacity(ctx.World.Constants.MaxHalite)
	gain := capGain(haliteGain(ctx.World, p), capacity)
	harvest := float64(ctx.Params.ReturnStepCost - gain)

	costs := [5]float64{harvest, solver.InfCost, solver.InfCost, solver.InfCost, solver.InfCost}
	valid := [5]bool{true, true, true, true, true}
	ctx.Solver.ProposeShipMove(id, p, costs, valid)
	return true
}

// forbidThreatenedDirections applies the caller's ThreatMap predicate to a
// 5-way cost vector in place, setting InfCost on any cardinal it
// disallows: the cargo-thresholded rule for Collect, Reachable for
// Deliver, Occupied for GoHome and BuildDropoff (§4.3.3 final bullet,
// §4.3.4, §4.3.5).
func forbidThreatenedDirections(ctx *Context, costs *[5]float64, p grid.Position, disallow func(grid.Position) bool) {
	size := ctx.World.Map.Size
	for i, d := range grid.AllOptions {
		if d == grid.Still {
			continue
		}
		target := size.Move(p, d)
		if disallow(target) {
			costs[i] = solver.InfCost
		}
	}
}
