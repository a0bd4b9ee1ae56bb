// Package threat tracks where enemy ships can reach next turn so the ship
// behavior layer can steer away from collisions.
package threat

import (
	"github.com/MyForking/halite3-bot-1/internal/domain/grid"
	"github.com/MyForking/halite3-bot-1/internal/domain/world"
)

// Level is a three-way enemy-reachability rating per cell, ordered
// Clear < Reachable < Occupied.
type Level int

const (
	Clear Level = iota
	Reachable
	Occupied
)

// ThreatMap is a Width*Height grid of Level, rebuilt fresh each turn.
type ThreatMap struct {
	size   grid.Size
	levels []Level
}

// Update rebuilds the threat map from w: every enemy ship's cell is
// Occupied, its four cardinal neighbors are Reachable unless already
// Occupied, and any of my own structure cells are exempt from becoming
// threatened (§4.2).
func Update(w *world.World) *ThreatMap {
	size := w.Map.Size
	t := &ThreatMap{size: size, levels: make([]Level, size.Width*size.Height)}

	for _, ship := range w.Ships {
		if ship.Owner() == w.Me {
			continue
		}
		p := size.Normalize(ship.Position())
		if w.Map.IsOwnedStructure(p, w.Me) {
			continue
		}
		t.mark(p, Occupied)
		for _, n := range size.Neighbors(p) {
			if w.Map.IsOwnedStructure(n, w.Me) {
				continue
			}
			if t.levelAt(n) < Reachable {
				t.mark(n, Reachable)
			}
		}
	}

	return t
}

func (t *ThreatMap) mark(p grid.Position, lvl Level) {
	idx := t.size.Index(p)
	if lvl > t.levels[idx] {
		t.levels[idx] = lvl
	}
}

func (t *ThreatMap) levelAt(p grid.Position) Level {
	return t.levels[t.size.Index(t.size.Normalize(p))]
}

// IsReachable reports whether an enemy could occupy p next turn.
func (t *ThreatMap) IsReachable(p grid.Position) bool {
	return t.levelAt(p) >= Reachable
}

// IsOccupied reports whether an enemy ship sits on p right now.
func (t *ThreatMap) IsOccupied(p grid.Position) bool {
	return t.levelAt(p) == Occupied
}

// Disallowed applies the cargo-thresholded rule: loaded ships (cargo
// above carefulnessLimit) avoid anything Reachable; lightly-loaded ships
// only avoid cells that are actually Occupied right now.
func (t *ThreatMap) Disallowed(p grid.Position, cargo, carefulnessLimit int) bool {
	if cargo <= carefulnessLimit {
		return t.IsOccupied(p)
	}
	return t.IsReachable(p)
}
