// Package fields computes the per-turn derived scalar fields that every
// ship agent and the strategic controller read from: halite density, the
// return-to-home cost/direction field, the pheromone potential field and
// the halite percentile table. Every field is written exactly once per
// turn by FieldLayer.Recompute and is read-only afterward.
package fields

import (
	"math"

	"github.com/MyForking/halite3-bot-1/internal/domain/grid"
	"github.com/MyForking/halite3-bot-1/internal/domain/world"
)

// Unreachable is the sentinel cost for cells the return map cannot reach
// from any owned structure this turn.
const Unreachable = math.MaxInt32

// Params bundles the tunable coefficients the field layer needs; these
// mirror the "navigation" and "pheromones" groups of the configuration
// file.
type Params struct {
	ReturnStepCost int

	DiffusionCoefficient float64
	DecayRate            float64
	ShipAbsorption       float64
	ShipEvaporation      float64
	TimeStep             float64
	NSteps               int
}

// DerivedFields holds the four grids FieldLayer produces each turn. All
// grids are row-major Width*Height slices matching the map's Size.
type DerivedFields struct {
	Size grid.Size

	HaliteDensity []int32
	ReturnCosts   []int32
	ReturnDirs    []grid.Direction
	Pheromone     []float64
	Percentiles   [101]int
}

func newDerivedFields(size grid.Size) *DerivedFields {
	n := size.Width * size.Height
	return &DerivedFields{
		Size:          size,
		HaliteDensity: make([]int32, n),
		ReturnCosts:   make([]int32, n),
		ReturnDirs:    make([]grid.Direction, n),
		Pheromone:     make([]float64, n),
	}
}

func (d *DerivedFields) Density(p grid.Position) int32 {
	return d.HaliteDensity[d.Size.Index(d.Size.Normalize(p))]
}

func (d *DerivedFields) ReturnCost(p grid.Position) int32 {
	return d.ReturnCosts[d.Size.Index(d.Size.Normalize(p))]
}

func (d *DerivedFields) ReturnDir(p grid.Position) grid.Direction {
	return d.ReturnDirs[d.Size.Index(d.Size.Normalize(p))]
}

func (d *DerivedFields) Pheromones(p grid.Position) float64 {
	return d.Pheromone[d.Size.Index(d.Size.Normalize(p))]
}

// FieldLayer owns the double-buffered pheromone grids (allocated once,
// reused every turn per the design's "allocate twice, swap forever" rule)
// and the pending transient point sources queued by the ship states.
type FieldLayer struct {
	params Params

	front, back []float64
	transient   []transientSource
}

type transientSource struct {
	pos    grid.Position
	amount float64
}

// NewFieldLayer allocates the double buffers for a map of the given size.
func NewFieldLayer(params Params, size grid.Size) *FieldLayer {
	n := size.Width * size.Height
	return &FieldLayer{
		params: params,
		front:  make([]float64, n),
		back:   make([]float64, n),
	}
}

// ShipEvaporation returns the configured ship_evaporation coefficient,
// used by the Deliver ship state to size its trail-marking pheromone
// drop (cargo * ShipEvaporation).
func (f *FieldLayer) ShipEvaporation() float64 {
	return f.params.ShipEvaporation
}

// AddTransientSource queues a one-shot pheromone injection at pos to be
// applied during the first diffusion substep of the next Recompute, then
// cleared. Used by the ship behavior layer: the BuildDropoff beacon, the
// Collect predation spike and the Deliver cargo trail.
func (f *FieldLayer) AddTransientSource(pos grid.Position, amount float64) {
	f.transient = append(f.transient, transientSource{pos: pos, amount: amount})
}

// Recompute rebuilds all four derived fields from w. It must run after
// the World for this turn is fully parsed and before any ship agent
// thinks.
func (f *FieldLayer) Recompute(w *world.World) *DerivedFields {
	out := newDerivedFields(w.Map.Size)
	computeHaliteDensity(w, out)
	computeReturnMap(w, f.params.ReturnStepCost, out)
	f.updatePheromones(w, out)
	computePercentiles(w, out)
	return out
}
