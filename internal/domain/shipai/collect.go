package shipai

import (
	"github.com/MyForking/halite3-bot-1/internal/domain/grid"
	"github.com/MyForking/halite3-bot-1/internal/domain/solver"
	"github.com/MyForking/halite3-bot-1/internal/domain/world"
)

// hugeWeight is the "infinite" magnitude used inside the local w[] weight
// vector before the final *-100 projection into solver cost units.
const hugeWeight = 1e9

// Collect is the default harvesting state: sit on rich cells, drift
// toward pheromone-rich neighbors, avoid loitering on exhausted ground,
// and ambush weaker enemies passing by (§4.3.3).
type Collect struct{}

func (Collect) IsBuilder() bool { return false }

func (Collect) Step(ctx *Context, id world.ShipID) Op {
	ship, err := ctx.World.MyShip(id)
	if err != nil {
		return DoneOp()
	}

	capacity := ctx.World.Constants.MaxHalite
	if ship.IsFull(capacity) {
		return DoneOp()
	}
	if stuckMove(ctx, id) {
		return NoneOp()
	}

	me := ctx.World.MyPlayer()
	nShips := len(me.ShipIDs)
	nDropoffs := len(me.DropoffIDs)
	goHomeThreshold := ctx.Params.ReturnDistance + nShips*ctx.Params.GoHomeSafetyFactor/(1+nDropoffs)
	if ctx.World.RoundsLeft() <= goHomeThreshold {
		return OverrideOp(&GoHome{})
	}

	p := ship.Position()
	currentHalite := ctx.World.Map.Halite(p)
	phiHere := ctx.Fields.Pheromones(p)

	var w [5]float64
	w[grid.Still] = phiHere
	for _, d := range grid.Directions {
		w[d] = ctx.Fields.Pheromones(ctx.World.Map.Size.Move(p, d))
	}

	allNeighborsLow := true
	for _, d := range grid.Directions {
		if w[d] >= 1 {
			allNeighborsLow = false
			break
		}
	}

	switch {
	case allNeighborsLow && currentHalite < 1:
		w[grid.Still] = -hugeWeight
		returnHere := ctx.Fields.ReturnCost(p)
		for _, d := range grid.Directions {
			target := ctx.World.Map.Size.Move(p, d)
			bias := 0.1 * float64(int64(ctx.Fields.ReturnCost(target))-int64(returnHere))
			w[d] += bias
		}
	case ctx.World.Map.IsOwnedStructure(p, ctx.World.Me):
		w[grid.Still] = -hugeWeight
	case currentHalite > ctx.Params.GreedyHarvestLimit && phiHere < 1000:
		w[grid.Still] = float64(1000 + currentHalite)
	case float64(currentHalite) > phiHere:
		w[grid.Still] = float64(currentHalite)
	}

	applyPredation(ctx, id, ship, p, &w)

	var costs [5]float64
	for i := range costs {
		costs[i] = -100 * w[i]
	}
	forbidThreatenedDirections(ctx, &costs, p, func(target grid.Position) bool {
		return ctx.Threats.Disallowed(target, ship.Cargo(), ctx.Params.CarefulnessLimit)
	})

	valid := [5]bool{true, true, true, true, true}
	ctx.Solver.ProposeShipMove(id, p, costs, valid)
	return NoneOp()
}

// applyPredation estimates an ambush against any adjacent enemy ship
// carrying more cargo than me: if my nearby allies' unused capacity
// outweighs my own cargo, the direction toward that enemy becomes highly
// attractive and I mark the spot with a pheromone spike to draw allies in
// (§4.3.3 "Predation").
func applyPredation(ctx *Context, id world.ShipID, ship *world.Ship, p grid.Position, w *[5]float64) {
	size := ctx.World.Map.Size
	aggressiveness := 10.0
	if len(ctx.World.Players) == 2 {
		aggressiveness = 1000.0
	}

	for _, d := range grid.Directions {
		target := size.Move(p, d)
		enemy := enemyShipAt(ctx.World, target)
		if enemy == nil || enemy.Cargo() <= ship.Cargo() {
			continue
		}

		nearestOtherEnemy := nearestEnemyDistance(ctx.World, p, enemy)
		unusedCapacity := 0
		for _, ally := range ctx.World.Ships {
			if ally.Owner() != ctx.World.Me || ally.ID() == id {
				continue
			}
			if size.ManhattanDistance(p, ally.Position()) < nearestOtherEnemy {
				unusedCapacity += ally.Capacity(ctx.World.Constants.MaxHalite)
			}
		}

		if unusedCapacity > ship.Cargo() {
			w[d] = -aggressiveness * float64(enemy.Cargo()-ship.Cargo())
			ctx.FieldLayer.AddTransientSource(p, float64(enemy.Cargo()))
		}
	}
}

func enemyShipAt(w *world.World, p grid.Position) *world.Ship {
	norm := w.Map.Size.Normalize(p)
	for _, s := range w.Ships {
		if s.Owner() != w.Me && w.Map.Size.Normalize(s.Position()) == norm {
			return s
		}
	}
	return nil
}

func nearestEnemyDistance(w *world.World, p grid.Position, excluding *world.Ship) int {
	best := solver.InfCost
	for _, s := range w.Ships {
		if s.Owner() == w.Me || s.ID() == excluding.ID() {
			continue
		}
		d := float64(w.Map.Size.ManhattanDistance(p, s.Position()))
		if d < best {
			best = d
		}
	}
	return int(best)
}
