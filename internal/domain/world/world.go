// Package world holds the immutable per-turn snapshot: the map, every
// ship and drop-off, player treasuries and the announced game constants.
// A World is rebuilt each turn by the protocol reader and is read-only for
// the remainder of the turn (§5 of the design: FieldLayer writes the
// derived fields exactly once, everything downstream only reads).
package world

import (
	"fmt"
	"sort"

	"github.com/MyForking/halite3-bot-1/internal/domain/grid"
)

// World is the immutable snapshot driving one turn of planning.
type World struct {
	Turn      int
	Constants Constants
	Map       *Map
	Me        int
	Players   map[int]*Player
	Ships     map[ShipID]*Ship
	Dropoffs  map[int]*Dropoff
}

// NewWorld constructs an empty World for the given map dimensions; the
// protocol reader populates players/ships/dropoffs as it parses frames.
func NewWorld(width, height int, constants Constants) *World {
	return &World{
		Constants: constants,
		Map:       NewMap(width, height),
		Players:   make(map[int]*Player),
		Ships:     make(map[ShipID]*Ship),
		Dropoffs:  make(map[int]*Dropoff),
	}
}

// MyPlayer returns the Player entry for the bot itself.
func (w *World) MyPlayer() *Player {
	return w.Players[w.Me]
}

// MyShip looks up an owned ship, returning an error if it is missing or
// not owned by Me (ships vanish mid-turn when they die or deliver).
func (w *World) MyShip(id ShipID) (*Ship, error) {
	s, ok := w.Ships[id]
	if !ok || s.Owner() != w.Me {
		return nil, fmt.Errorf("ship %d is not an owned ship", id)
	}
	return s, nil
}

// RoundsLeft returns the number of turns remaining including the current
// one.
func (w *World) RoundsLeft() int {
	return w.Constants.MaxTurns - w.Turn + 1
}

// OwnedStructurePositions returns the grid position of every structure
// (shipyard + drop-offs) owned by Me, used as Dijkstra sources for the
// return map and as BuildDropoff/expansion distance anchors.
func (w *World) OwnedStructurePositions() []grid.Position {
	me := w.MyPlayer()
	if me == nil {
		return nil
	}
	positions := make([]grid.Position, 0, 1+len(me.DropoffIDs))
	positions = append(positions, me.ShipyardPos)
	for _, id := range me.DropoffIDs {
		if d, ok := w.Dropoffs[id]; ok {
			positions = append(positions, d.Position)
		}
	}
	return positions
}

// SortedOwnedShipIDs returns Me's ship ids in ascending order, giving the
// turn driver a stable, reproducible iteration order (§9 determinism).
func (w *World) SortedOwnedShipIDs() []ShipID {
	me := w.MyPlayer()
	if me == nil {
		return nil
	}
	ids := make([]ShipID, len(me.ShipIDs))
	copy(ids, me.ShipIDs)
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids
}
