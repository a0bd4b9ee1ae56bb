package shipai

import (
	"time"

	"golang.org/x/time/rate"

	"github.com/MyForking/halite3-bot-1/internal/domain/grid"
	"github.com/MyForking/halite3-bot-1/internal/domain/world"
)

// dropoffBeaconStrength is the per-turn pheromone spike BuildDropoff adds
// at its target to pull the builder (and allies) toward it.
const dropoffBeaconStrength = 5000.0

// NewBuildDropoffBeaconLimiter gates how often the beacon in
// BuildDropoff.Step is allowed to re-spike after a competing pheromone
// source has decayed it: at most once per turn, matching the once-a-turn
// cadence of everything else in the turn loop.
func NewBuildDropoffBeaconLimiter() *rate.Limiter {
	return rate.NewLimiter(1, 1)
}

// BuildDropoff walks a single designated ship to a strategic-controller
// chosen expansion site and converts it into a drop-off on arrival
// (§4.3.6). It is pushed onto an otherwise-Collect(ing) ship's stack
// rather than replacing it, so a failed build falls back to whatever the
// ship was doing before.
type BuildDropoff struct {
	Target  grid.Position
	Beacon  *rate.Limiter
}

func (BuildDropoff) IsBuilder() bool { return true }

func (b BuildDropoff) Step(ctx *Context, id world.ShipID) Op {
	ship, err := ctx.World.MyShip(id)
	if err != nil {
		return DoneOp()
	}

	if !ctx.Commander.IsValidExpansionLocation(ctx.World, b.Target) {
		return DoneOp()
	}

	// The limiter refills one token per second; feeding it the turn number
	// as the clock makes that one token per turn.
	if b.Beacon == nil || b.Beacon.AllowN(time.Unix(int64(ctx.World.Turn), 0), 1) {
		ctx.FieldLayer.AddTransientSource(b.Target, dropoffBeaconStrength)
	}

	p := ship.Position()
	size := ctx.World.Map.Size
	if size.Normalize(p) == size.Normalize(b.Target) {
		if ctx.World.MyPlayer().Halite >= ctx.World.Constants.DropoffCost {
			ctx.Solver.ForceConvert(id)
			ctx.Commander.NotifyDropoffBuilt()
			return DoneOp()
		}
		ctx.Commander.NotifyBuildFailed(id)
		return DoneOp()
	}

	if stuckMove(ctx, id) {
		return NoneOp()
	}

	costs := navigateTowards(ctx, p, b.Target)
	for i := range costs {
		costs[i] -= hugeWeight * 100
	}
	// A ship building a drop-off must make progress every turn; forbid
	// staying regardless of what the search priced it at.
	costs[grid.Still] = hugeWeight * 100

	forbidThreatenedDirections(ctx, &costs, p, func(target grid.Position) bool {
		return ctx.Threats.IsOccupied(target)
	})

	valid := [5]bool{true, true, true, true, true}
	ctx.Solver.ProposeShipMove(id, p, costs, valid)
	return NoneOp()
}
