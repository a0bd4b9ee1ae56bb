// Package solver reconciles every ship agent's proposed cost vector (plus
// an optional shipyard spawn option) into a single collision-free set of
// commands via maximum-weight bipartite matching (§4.5).
package solver

import (
	"math"

	"github.com/MyForking/halite3-bot-1/internal/domain/grid"
	"github.com/MyForking/halite3-bot-1/internal/domain/world"
)

// InfCost marks an option as effectively forbidden: a ThreatMap-disallowed
// cell, an opponent shipyard, or one of the shipyard actor's four blocked
// spawn-row entries. It is finite so matrix arithmetic stays well behaved,
// but large enough that the solver only ever picks it when every other
// option for that actor is exhausted.
const InfCost = 1e12

// CommandKind distinguishes the three wire commands the solver can emit.
// Convert never comes out of the matching: BuildDropoff queues it through
// ForceConvert (§4.3.6) and Solve appends it with the other forced
// commands, so one Command slice carries all three kinds.
type CommandKind int

const (
	CommandMove CommandKind = iota
	CommandSpawn
	CommandConvert
)

// Command is one resolved action ready for wire serialization.
type Command struct {
	Kind      CommandKind
	ShipID    world.ShipID
	Direction grid.Direction
}

// shipyardActor is a sentinel ship id used to enter the spawn option into
// the same actor/cell matching as ship moves.
const shipyardActor world.ShipID = -1

type actor struct {
	id      world.ShipID
	current grid.Position
	options [5]float64 // indexed by grid.AllOptions order
	present [5]bool
}

// MoveSolver accumulates this turn's proposed actors and produces the
// resolved, collision-free command set.
type MoveSolver struct {
	size     grid.Size
	actors   []actor
	forced   []Command
	spawnPos grid.Position
	spawning bool
}

// NewMoveSolver creates an empty solver for a map of the given size.
func NewMoveSolver(size grid.Size) *MoveSolver {
	return &MoveSolver{size: size}
}

// ProposeShipMove registers a ship's 5-way cost vector, indexed by
// grid.AllOptions (Still, N, S, E, W). Costs use math.Inf(1) or InfCost to
// mark a direction forbidden; omit a direction from valid to mean it was
// never a candidate (e.g. it would step off the map edge of a bounded
// variant, which does not occur on Halite's torus but is supported for
// completeness).
func (s *MoveSolver) ProposeShipMove(id world.ShipID, current grid.Position, costs [5]float64, valid [5]bool) {
	a := actor{id: id, current: current, present: valid}
	for i, c := range costs {
		if math.IsInf(c, 1) || c > InfCost {
			c = InfCost
		}
		a.options[i] = c
	}
	s.actors = append(s.actors, a)
}

// ForceMove queues a move that bypasses the solver entirely (§4.3.5's
// Force into an owned structure on the final turns).
func (s *MoveSolver) ForceMove(id world.ShipID, dir grid.Direction) {
	s.forced = append(s.forced, Command{Kind: CommandMove, ShipID: id, Direction: dir})
}

// ForceConvert queues a drop-off build that bypasses the solver entirely
// (§4.3.6): BuildDropoff issues this the turn its ship reaches the chosen
// expansion site.
func (s *MoveSolver) ForceConvert(id world.ShipID) {
	s.forced = append(s.forced, Command{Kind: CommandConvert, ShipID: id})
}

// NotifySpawn requests a spawn at the shipyard position this turn. It is
// entered into the matching as a low-cost actor occupying its own cell,
// the other four directions blocked, per §4.5.
func (s *MoveSolver) NotifySpawn(shipyardPos grid.Position) {
	s.spawning = true
	s.spawnPos = shipyardPos
}
