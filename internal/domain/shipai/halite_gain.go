package shipai

import (
	"github.com/MyForking/halite3-bot-1/internal/domain/grid"
	"github.com/MyForking/halite3-bot-1/internal/domain/world"
	"github.com/MyForking/halite3-bot-1/pkg/utils"
)

// haliteGain returns the halite a ship would extract by staying one turn
// at p (§4.3.2). Division truncates toward zero, Go's native integer
// division behavior; the spec leaves the rounding direction an
// implementation-consistent choice and this repository picks truncation
// uniformly rather than rounding up.
func haliteGain(w *world.World, p grid.Position) int {
	gain := w.Map.Halite(p) / w.Constants.ExtractRatio
	if isInspired(w, p) {
		gain *= w.Constants.InspiredBonusMultiplier
	}
	return gain
}

// isInspired reports whether at least InspirationShipCount enemy ships
// lie within Manhattan InspirationRadius of p.
func isInspired(w *world.World, p grid.Position) bool {
	count := 0
	for _, ship := range w.Ships {
		if ship.Owner() == w.Me {
			continue
		}
		if w.Map.Size.ManhattanDistance(p, ship.Position()) <= w.Constants.InspirationRadius {
			count++
			if count >= w.Constants.InspirationShipCount {
				return true
			}
		}
	}
	return false
}

// capGain clamps gain to the ship's remaining cargo capacity.
func capGain(gain, capacity int) int {
	return utils.Min(gain, capacity)
}
