package steps

import (
	"bytes"
	"context"
	"fmt"
	"strings"

	"github.com/cucumber/godog"

	"github.com/MyForking/halite3-bot-1/internal/adapters/protocol"
	"github.com/MyForking/halite3-bot-1/internal/application/turn"
	"github.com/MyForking/halite3-bot-1/internal/domain/fields"
	"github.com/MyForking/halite3-bot-1/internal/domain/grid"
	"github.com/MyForking/halite3-bot-1/internal/domain/shipai"
	"github.com/MyForking/halite3-bot-1/internal/domain/solver"
	"github.com/MyForking/halite3-bot-1/internal/domain/strategy"
	"github.com/MyForking/halite3-bot-1/internal/domain/threat"
	"github.com/MyForking/halite3-bot-1/internal/domain/world"
)

// turnContext holds one scenario's World and the command set produced by
// the most recent Step(), plus the ships named by the steps so later
// steps can refer back to "ship 1" without re-deriving ids.
type turnContext struct {
	w               *world.World
	ships           map[string]world.ShipID
	nextShipID      world.ShipID
	avgReturnLength int
	commands        []solver.Command
	wire            string
}

func (tc *turnContext) reset() {
	tc.w = world.NewWorld(32, 32, world.Constants{
		MaxTurns: 400, MoveCostRatio: 10, ExtractRatio: 4, MaxHalite: 1000,
		ShipCost: 1000, DropoffCost: 4000,
	})
	tc.w.Me = 0
	tc.w.Turn = 1
	tc.w.Players[0] = &world.Player{ID: 0, Halite: 0}
	tc.ships = make(map[string]world.ShipID)
	tc.nextShipID = 1
	tc.commands = nil
	tc.wire = ""
}

func (tc *turnContext) aMapOfSize(width, height int) error {
	tc.w.Map = world.NewMap(width, height)
	return nil
}

func (tc *turnContext) theConstants(maxTurns, moveCostRatio, extractRatio, shipCost, dropoffCost int) error {
	tc.w.Constants.MaxTurns = maxTurns
	tc.w.Constants.MoveCostRatio = moveCostRatio
	tc.w.Constants.ExtractRatio = extractRatio
	tc.w.Constants.ShipCost = shipCost
	tc.w.Constants.DropoffCost = dropoffCost
	return nil
}

func (tc *turnContext) theShipyardIsAtOwnedByMe(x, y int) error {
	pos := grid.Position{X: x, Y: y}
	tc.w.Players[0].ShipyardPos = pos
	tc.w.Map.At(pos).Structure = world.Structure{Kind: world.StructureShipyard, PlayerID: 0}
	return nil
}

func (tc *turnContext) myTreasuryIs(amount int) error {
	tc.w.Players[0].Halite = amount
	return nil
}

func (tc *turnContext) itIsTurn(turnNo int) error {
	tc.w.Turn = turnNo
	return nil
}

func (tc *turnContext) aShipAtWithCargo(name string, x, y, cargo int) error {
	id := tc.nextShipID
	tc.nextShipID++
	ship, err := world.NewShip(id, tc.w.Me, grid.Position{X: x, Y: y}, cargo, tc.w.Constants.MaxHalite)
	if err != nil {
		return err
	}
	tc.w.Ships[id] = ship
	tc.w.Players[0].ShipIDs = append(tc.w.Players[0].ShipIDs, id)
	tc.ships[name] = id
	return nil
}

func (tc *turnContext) theMapHoldsAbundantHalite() error {
	for i := range tc.w.Map.Cells {
		tc.w.Map.Cells[i].Halite = 2000
	}
	return nil
}

func (tc *turnContext) cellHasHalite(x, y, halite int) error {
	tc.w.Map.At(grid.Position{X: x, Y: y}).Halite = halite
	return nil
}

func (tc *turnContext) everyNeighborOfHasHalite(x, y, halite int) error {
	p := grid.Position{X: x, Y: y}
	for _, d := range grid.Directions {
		off := d.Offset()
		tc.w.Map.At(grid.Position{X: p.X + off.X, Y: p.Y + off.Y}).Halite = halite
	}
	return nil
}

func (tc *turnContext) aDenseHaliteDiskOfCenteredAt(density, x, y int) error {
	center := grid.Position{X: x, Y: y}
	for _, off := range grid.DiskOffsets(5) {
		tc.w.Map.At(grid.Position{X: center.X + off.X, Y: center.Y + off.Y}).Halite = density
	}
	return nil
}

func (tc *turnContext) nShipsOfMineWithinRadiusOf(count, radius, x, y int) error {
	center := grid.Position{X: x, Y: y}
	for i := 0; i < count; i++ {
		name := fmt.Sprintf("scout-%d", i)
		if err := tc.aShipAtWithCargo(name, center.X-i, center.Y, 0); err != nil {
			return err
		}
	}
	return nil
}

func (tc *turnContext) theControllerHasRecordedAnAverageReturnLengthOf(turns int) error {
	// Stashed until the engine exists; applied via NotifyReturn in
	// iRunTheTurnEngine since the controller isn't constructed yet here.
	tc.avgReturnLength = turns
	return nil
}

func (tc *turnContext) iRunTheTurnEngine() error {
	fieldParams := fields.Params{
		ReturnStepCost: 1, DiffusionCoefficient: 0.3, DecayRate: 0.05,
		ShipAbsorption: 1.0, ShipEvaporation: 0.1, TimeStep: 1, NSteps: 3,
	}
	strategyParams := strategy.Params{
		ReturnDistance: 15, ExpansionDistance: 10, MinHaliteDensity: 200,
		ShipRadius: 8, NShips: 4, SpawnHaliteFloor: 1000, SpawnMinRoundsLeftFactor: 0.5,
	}
	shipParams := shipai.Params{
		ReturnStepCost: 1, GoHomeSafetyFactor: 2, ReturnDistance: 15,
		GreedyHarvestLimit: 50, CarefulnessLimit: 100,
	}

	e := turn.New(tc.w, fieldParams, strategyParams, shipParams)
	if tc.avgReturnLength > 0 {
		e.Controller().NotifyReturn(tc.avgReturnLength)
	}

	tc.commands = e.Step()

	var buf bytes.Buffer
	if err := protocol.NewWriter(&buf).WriteCommands(tc.commands); err != nil {
		return err
	}
	tc.wire = strings.TrimSuffix(buf.String(), "\n")
	return nil
}

func (tc *turnContext) theCommandsShouldBeExactly(expected string) error {
	if tc.wire != expected {
		return fmt.Errorf("expected commands %q but got %q", expected, tc.wire)
	}
	return nil
}

func (tc *turnContext) shipShouldReceiveCommand(name, expected string) error {
	id := tc.ships[name]
	for _, c := range tc.commands {
		if c.Kind == solver.CommandMove && c.ShipID == id {
			got := fmt.Sprintf("m %d %s", id, c.Direction)
			if got != expected {
				return fmt.Errorf("expected %q but got %q", expected, got)
			}
			return nil
		}
	}
	return fmt.Errorf("no move command found for ship %q", name)
}

func (tc *turnContext) shipShouldMoveTowardTheShipyard(name string) error {
	id := tc.ships[name]
	ship := tc.w.Ships[id]
	shipyard := tc.w.Players[0].ShipyardPos
	before := manhattan(tc.w.Map.Size, ship.Position(), shipyard)

	for _, c := range tc.commands {
		if c.ShipID == id && c.Kind == solver.CommandMove {
			dest := tc.w.Map.Size.Normalize(grid.Position{
				X: ship.Position().X + c.Direction.Offset().X,
				Y: ship.Position().Y + c.Direction.Offset().Y,
			})
			after := manhattan(tc.w.Map.Size, dest, shipyard)
			if after > before {
				return fmt.Errorf("ship %q moved away from the shipyard (%d -> %d)", name, before, after)
			}
			return nil
		}
	}
	return fmt.Errorf("no move command found for ship %q", name)
}

func (tc *turnContext) shipShouldNotMoveIntoADisallowedCell(name string) error {
	// A cell is disallowed when an enemy ship could occupy it next turn;
	// staying still is never counted as a move into one.
	id := tc.ships[name]
	ship := tc.w.Ships[id]
	threats := threat.Update(tc.w)
	for _, c := range tc.commands {
		if c.ShipID == id {
			if c.Kind == solver.CommandMove && c.Direction != grid.Still {
				dest := tc.w.Map.Size.Move(ship.Position(), c.Direction)
				if threats.IsReachable(dest) {
					return fmt.Errorf("ship %q moved into threatened cell %s", name, dest)
				}
			}
			return nil
		}
	}
	return fmt.Errorf("no command found for ship %q", name)
}

func (tc *turnContext) noTwoShipsShouldBeAssignedTheSameDestinationCell() error {
	dest := make(map[grid.Position]world.ShipID)
	for _, c := range tc.commands {
		if c.Kind != solver.CommandMove {
			continue
		}
		ship, ok := tc.w.Ships[c.ShipID]
		if !ok {
			continue
		}
		off := c.Direction.Offset()
		to := tc.w.Map.Size.Normalize(grid.Position{X: ship.Position().X + off.X, Y: ship.Position().Y + off.Y})
		if tc.w.Map.IsOwnedStructure(to, tc.w.Me) {
			continue
		}
		if other, clash := dest[to]; clash {
			return fmt.Errorf("ships %d and %d both assigned destination %s", other, c.ShipID, to)
		}
		dest[to] = c.ShipID
	}
	return nil
}

func (tc *turnContext) shipShouldMoveIntoTheShipyard(name string) error {
	id := tc.ships[name]
	ship := tc.w.Ships[id]
	for _, c := range tc.commands {
		if c.ShipID == id && c.Kind == solver.CommandMove {
			off := c.Direction.Offset()
			to := tc.w.Map.Size.Normalize(grid.Position{X: ship.Position().X + off.X, Y: ship.Position().Y + off.Y})
			if !tc.w.Map.IsOwnedStructure(to, tc.w.Me) {
				return fmt.Errorf("ship %q moved to %s, not the shipyard", name, to)
			}
			return nil
		}
	}
	return fmt.Errorf("no move command found for ship %q", name)
}

func (tc *turnContext) theNearestShipToShouldBeAssignedToBuildADropoffThere(x, y int) error {
	target := grid.Position{X: x, Y: y}
	var nearest world.ShipID
	best := -1
	for _, id := range tc.ships {
		ship := tc.w.Ships[id]
		d := manhattan(tc.w.Map.Size, ship.Position(), target)
		if best == -1 || d < best {
			best, nearest = d, id
		}
	}
	for _, c := range tc.commands {
		if c.ShipID == nearest && (c.Kind == solver.CommandConvert || c.Kind == solver.CommandMove) {
			return nil
		}
	}
	return fmt.Errorf("no command found for the nearest ship to %s", target)
}

func manhattan(size grid.Size, a, b grid.Position) int {
	a = size.Normalize(a)
	b = size.Normalize(b)
	dx := abs(a.X - b.X)
	if size.Width-dx < dx {
		dx = size.Width - dx
	}
	dy := abs(a.Y - b.Y)
	if size.Height-dy < dy {
		dy = size.Height - dy
	}
	return dx + dy
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

// InitializeTurnScenario registers the end-to-end turn-scenario steps.
func InitializeTurnScenario(ctx *godog.ScenarioContext) {
	tc := &turnContext{}

	ctx.Before(func(c context.Context, sc *godog.Scenario) (context.Context, error) {
		tc.reset()
		return c, nil
	})

	ctx.Step(`^a (\d+)x(\d+) toroidal map$`, tc.aMapOfSize)
	ctx.Step(`^the constants max_turns=(\d+), move_cost_ratio=(\d+), extract_ratio=(\d+), ship_cost=(\d+), dropoff_cost=(\d+)$`, tc.theConstants)
	ctx.Step(`^the shipyard is at \((\d+), (\d+)\) owned by me$`, tc.theShipyardIsAtOwnedByMe)
	ctx.Step(`^my treasury is (\d+)$`, tc.myTreasuryIs)
	ctx.Step(`^the map holds abundant halite$`, tc.theMapHoldsAbundantHalite)
	ctx.Step(`^it is turn (\d+)$`, tc.itIsTurn)
	ctx.Step(`^a ship "([^"]*)" at \((\d+), (\d+)\) with cargo (\d+)$`, tc.aShipAtWithCargo)
	ctx.Step(`^cell \((\d+), (\d+)\) has halite (\d+)$`, tc.cellHasHalite)
	ctx.Step(`^every neighbor of \((\d+), (\d+)\) has halite (\d+)$`, tc.everyNeighborOfHasHalite)
	ctx.Step(`^a dense halite disk of (\d+) centered at \((\d+), (\d+)\)$`, tc.aDenseHaliteDiskOfCenteredAt)
	ctx.Step(`^(\d+) ships of mine within radius (\d+) of \((\d+), (\d+)\)$`, tc.nShipsOfMineWithinRadiusOf)
	ctx.Step(`^the controller has recorded an average return length of (\d+)$`, tc.theControllerHasRecordedAnAverageReturnLengthOf)
	ctx.Step(`^I run the turn engine$`, tc.iRunTheTurnEngine)
	ctx.Step(`^the commands should be exactly "([^"]*)"$`, tc.theCommandsShouldBeExactly)
	ctx.Step(`^ship "([^"]*)" should receive command "([^"]*)"$`, tc.shipShouldReceiveCommand)
	ctx.Step(`^ship "([^"]*)" should move toward the shipyard$`, tc.shipShouldMoveTowardTheShipyard)
	ctx.Step(`^ship "([^"]*)" should not move into a disallowed cell$`, tc.shipShouldNotMoveIntoADisallowedCell)
	ctx.Step(`^no two ships should be assigned the same destination cell$`, tc.noTwoShipsShouldBeAssignedTheSameDestinationCell)
	ctx.Step(`^ship "([^"]*)" should move into the shipyard$`, tc.shipShouldMoveIntoTheShipyard)
	ctx.Step(`^the nearest ship to \((\d+), (\d+)\) should be assigned to build a dropoff there$`, tc.theNearestShipToShouldBeAssignedToBuildADropoffThere)
}
