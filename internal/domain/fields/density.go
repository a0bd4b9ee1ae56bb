package fields

import (
	"github.com/MyForking/halite3-bot-1/internal/domain/grid"
	"github.com/MyForking/halite3-bot-1/internal/domain/world"
)

// densityRadius is the fixed Manhattan radius of the halite-density disk
// (§4.1.1): n = 2r(r+1)+1 = 61 cells.
const densityRadius = 5

var densityOffsets = grid.DiskOffsets(densityRadius)

// computeHaliteDensity fills out.HaliteDensity with the mean halite over
// a Manhattan-5 disk around every cell, wrapping toroidally.
func computeHaliteDensity(w *world.World, out *DerivedFields) {
	size := w.Map.Size
	n := len(densityOffsets)
	for y := 0; y < size.Height; y++ {
		for x := 0; x < size.Width; x++ {
			center := grid.Position{X: x, Y: y}
			sum := 0
			for _, off := range densityOffsets {
				p := grid.Position{X: center.X + off.X, Y: center.Y + off.Y}
				sum += w.Map.Halite(p)
			}
			out.HaliteDensity[size.Index(center)] = int32(sum / n)
		}
	}
}
