// Package strategy implements the StrategicController: the single
// per-turn decision maker for fleet-wide concerns no individual ship
// agent can see on its own — when to spawn, where and who builds the
// next drop-off, and the default task handed to an idle ship (§4.6).
package strategy

import (
	"golang.org/x/time/rate"

	"github.com/MyForking/halite3-bot-1/internal/domain/fields"
	"github.com/MyForking/halite3-bot-1/internal/domain/grid"
	"github.com/MyForking/halite3-bot-1/internal/domain/shipai"
	"github.com/MyForking/halite3-bot-1/internal/domain/solver"
	"github.com/MyForking/halite3-bot-1/internal/domain/world"
)

// Params bundles the "expansion" and "strategy" configuration groups.
type Params struct {
	ReturnDistance    int
	ExpansionDistance int
	MinHaliteDensity  int
	ShipRadius        int
	NShips            int

	SpawnHaliteFloor         int
	SpawnMinRoundsLeftFactor float64
}

// Controller owns the fleet-level state that persists across turns: the
// smoothed average return length, cumulative spend, and the single
// in-progress drop-off assignment (at most one ship builds at a time,
// §4.6). It satisfies shipai.Commander structurally.
type Controller struct {
	params Params

	world  *world.World
	fields *fields.DerivedFields

	avgReturnLength float64
	totalSpent      int

	builderShip *world.ShipID
	buildTarget grid.Position
	buildBeacon *rate.Limiter
}

// NewController creates a controller with no return-length history yet;
// the first NotifyReturn call seeds the EWMA baseline.
func NewController(params Params) *Controller {
	return &Controller{params: params}
}

// AvgReturnLength is the current EWMA estimate of turns-to-deliver,
// exposed for telemetry and consulted by the build-request trigger.
func (c *Controller) AvgReturnLength() float64 { return c.avgReturnLength }

// TotalSpent is the cumulative halite spent on ships and drop-offs,
// exposed for telemetry.
func (c *Controller) TotalSpent() int { return c.totalSpent }

// PlanTurn runs the fleet-wide decisions that must happen once, before
// any ship agent thinks (§4.7 step 4): the build request and the spawn
// request. It caches w and df so this turn's RequestTask and
// IsValidExpansionLocation calls see consistent state.
func (c *Controller) PlanTurn(w *world.World, df *fields.DerivedFields, s *solver.MoveSolver) {
	c.world = w
	c.fields = df

	c.maybeAssignBuilder(w)
	c.maybeSpawn(w, s)
}

// maybeAssignBuilder implements the build request (§4.6): triggers once
// avg_return_length has grown past expansion.return_distance and no ship
// is already building, then searches the densest valid cell and assigns
// it to the nearest ship.
func (c *Controller) maybeAssignBuilder(w *world.World) {
	if c.builderShip != nil {
		if _, err := w.MyShip(*c.builderShip); err != nil {
			c.builderShip = nil
		} else {
			return
		}
	}

	if c.avgReturnLength < float64(c.params.ReturnDistance) {
		return
	}

	target, found := c.bestExpansionSite(w)
	if !found {
		return
	}

	builder, haveBuilder := c.nearestShip(w, target)
	if !haveBuilder {
		return
	}

	c.builderShip = &builder
	c.buildTarget = target
	c.buildBeacon = shipai.NewBuildDropoffBeaconLimiter()
}

// bestExpansionSite scans every cell satisfying IsValidExpansionLocation
// for the highest halite density, returning it only if that density
// clears min_halite_density.
func (c *Controller) bestExpansionSite(w *world.World) (grid.Position, bool) {
	size := w.Map.Size
	best := grid.Position{}
	bestScore := int32(-1)
	found := false

	for y := 0; y < size.Height; y++ {
		for x := 0; x < size.Width; x++ {
			pos := grid.Position{X: x, Y: y}
			if !c.IsValidExpansionLocation(w, pos) {
				continue
			}
			score := c.fields.Density(pos)
			if score > bestScore {
				bestScore, best, found = score, pos, true
			}
		}
	}
	if !found || int(bestScore) < c.params.MinHaliteDensity {
		return grid.Position{}, false
	}
	return best, true
}

// nearestShip picks the closest owned ship to target, iterating in
// ascending ship id order for determinism on distance ties (§9).
func (c *Controller) nearestShip(w *world.World, target grid.Position) (world.ShipID, bool) {
	size := w.Map.Size
	const unset = 1 << 30
	bestDist := unset
	var best world.ShipID
	found := false

	for _, id := range w.SortedOwnedShipIDs() {
		ship, err := w.MyShip(id)
		if err != nil {
			continue
		}
		d := size.ManhattanDistance(ship.Position(), target)
		if d < bestDist {
			bestDist, best, found = d, id, true
		}
	}
	return best, found
}

// maybeSpawn implements the spawn request (§4.6): estimates the
// remaining harvestable halite per ship, compares against ship_cost, and
// gates on both a rounds-remaining floor and the build request's own
// affordability so a spawn never starves an already-committed drop-off.
func (c *Controller) maybeSpawn(w *world.World, s *solver.MoveSolver) {
	haliteLeft := 0
	for _, cell := range w.Map.Cells {
		if over := cell.Halite - c.params.SpawnHaliteFloor; over > 0 {
			haliteLeft += over
		}
	}

	me := w.MyPlayer()
	nShips := len(me.ShipIDs)

	wantShip := float64(haliteLeft)/float64(nShips+1) > float64(w.Constants.ShipCost)
	wantShip = wantShip && float64(w.RoundsLeft()) > float64(w.Map.Size.Width)*c.params.SpawnMinRoundsLeftFactor

	wantDropoff := c.builderShip != nil
	if wantDropoff && me.Halite < w.Constants.DropoffCost+w.Constants.ShipCost {
		wantShip = false
	}

	if !wantShip || me.Halite < w.Constants.ShipCost {
		return
	}

	s.NotifySpawn(me.ShipyardPos)
	c.totalSpent += w.Constants.ShipCost
}

// RequestTask assigns the single designated builder its BuildDropoff
// task; every other idle ship defaults to Collect below cargo 500, else
// Deliver (§4.3, §4.6).
func (c *Controller) RequestTask(id world.ShipID, w *world.World) shipai.State {
	if c.builderShip != nil && *c.builderShip == id {
		return shipai.BuildDropoff{Target: c.buildTarget, Beacon: c.buildBeacon}
	}
	ship, err := w.MyShip(id)
	if err == nil && ship.Cargo() >= 500 {
		return shipai.Deliver{StartTurn: w.Turn}
	}
	return shipai.Collect{}
}

// NotifyReturn folds a completed delivery's turn count into the
// avg_return_length EWMA, with a fixed smoothing factor of 0.9. While the
// average is 0 (no history, or just reset by a drop-off build) the turn
// count is taken as the new baseline.
func (c *Controller) NotifyReturn(turnsTaken int) {
	const alpha = 0.9
	if c.avgReturnLength == 0 {
		c.avgReturnLength = float64(turnsTaken)
		return
	}
	c.avgReturnLength = alpha*c.avgReturnLength + (1-alpha)*float64(turnsTaken)
}

// NotifyDropoffBuilt clears the builder assignment, accounts for its
// cost, and resets avg_return_length to 0 so the next build request
// doesn't trigger again immediately (§4.3.6).
func (c *Controller) NotifyDropoffBuilt() {
	if c.world != nil {
		c.totalSpent += c.world.Constants.DropoffCost
	}
	c.builderShip = nil
	c.avgReturnLength = 0
}

// NotifyBuildFailed clears the builder assignment without charging
// anything, when a ship reaches its target but the treasury can't afford
// the conversion (§7 BuildFailed): the controller will reassign (perhaps
// the same ship, once it next clears the trigger) on a later turn.
func (c *Controller) NotifyBuildFailed(id world.ShipID) {
	if c.builderShip != nil && *c.builderShip == id {
		c.builderShip = nil
	}
}

// IsValidExpansionLocation enforces both conditions from §4.6: minimum
// spacing from every owned structure, and at least NShips owned ships
// within ShipRadius of pos.
func (c *Controller) IsValidExpansionLocation(w *world.World, pos grid.Position) bool {
	size := w.Map.Size
	for _, s := range w.OwnedStructurePositions() {
		if size.ManhattanDistance(pos, s) < c.params.ExpansionDistance {
			return false
		}
	}

	nearby := 0
	for _, id := range w.SortedOwnedShipIDs() {
		ship, err := w.MyShip(id)
		if err != nil {
			continue
		}
		if size.ManhattanDistance(ship.Position(), pos) <= c.params.ShipRadius {
			nearby++
			if nearby >= c.params.NShips {
				return true
			}
		}
	}
	return false
}
