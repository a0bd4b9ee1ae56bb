package fields

import (
	"github.com/MyForking/halite3-bot-1/internal/domain/grid"
	"github.com/MyForking/halite3-bot-1/internal/domain/world"
)

// updatePheromones iterates the diffusion-decay-source PDE for
// params.NSteps substeps over the double-buffered front/back grids
// (§4.1.3), then copies the result into out.Pheromone. The buffers
// persist across turns: pheromone is a standing potential field, not
// reset each turn, so the front grid always holds last turn's ending
// state when this method starts.
func (f *FieldLayer) updatePheromones(w *world.World, out *DerivedFields) {
	size := w.Map.Size
	p := f.params

	for step := 0; step < p.NSteps; step++ {
		for y := 0; y < size.Height; y++ {
			for x := 0; x < size.Width; x++ {
				here := grid.Position{X: x, Y: y}
				idx := size.Index(here)
				phi := f.front[idx]

				laplacian := 0.0
				for _, d := range grid.Directions {
					n := size.Move(here, d)
					laplacian += f.front[size.Index(n)]
				}
				laplacian -= 4 * phi

				halite := float64(w.Map.Halite(here))
				attractor := halite - phi
				if attractor < 0 {
					attractor = 0
				}

				dphi := p.DiffusionCoefficient*laplacian - p.DecayRate*phi + attractor
				f.back[idx] = phi + dphi*p.TimeStep
			}
		}

		for _, ship := range w.Ships {
			idx := size.Index(size.Normalize(ship.Position()))
			phi := f.front[idx]
			if ship.Owner() == w.Me {
				capacity := float64(w.Constants.MaxHalite - ship.Cargo())
				if phi > capacity {
					f.back[idx] -= (phi - capacity) * p.ShipAbsorption
				}
			} else {
				radiated := float64(ship.Cargo()) - phi
				if radiated > 0 {
					f.back[idx] += radiated * 0.1
				}
			}
		}

		if step == 0 {
			for _, src := range f.transient {
				idx := size.Index(size.Normalize(src.pos))
				f.back[idx] += src.amount
			}
			f.transient = f.transient[:0]
		}

		f.front, f.back = f.back, f.front
	}

	copy(out.Pheromone, f.front)
}
