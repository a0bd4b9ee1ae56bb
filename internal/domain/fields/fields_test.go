package fields_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MyForking/halite3-bot-1/internal/domain/fields"
	"github.com/MyForking/halite3-bot-1/internal/domain/grid"
	"github.com/MyForking/halite3-bot-1/internal/domain/world"
)

func newTestWorld(width, height int) *world.World {
	w := world.NewWorld(width, height, world.Constants{
		MaxTurns: 400, MoveCostRatio: 10, ExtractRatio: 4, MaxHalite: 1000,
	})
	w.Me = 0
	w.Players[0] = &world.Player{ID: 0, ShipyardPos: grid.Position{X: 0, Y: 0}}
	w.Map.At(grid.Position{X: 0, Y: 0}).Structure = world.Structure{Kind: world.StructureShipyard, PlayerID: 0}
	return w
}

func testParams() fields.Params {
	return fields.Params{
		ReturnStepCost:       1,
		DiffusionCoefficient: 0.3,
		DecayRate:            0.05,
		ShipAbsorption:       1.0,
		ShipEvaporation:      0.1,
		TimeStep:             1.0,
		NSteps:               3,
	}
}

func TestReturnCostAtShipyardIsZero(t *testing.T) {
	w := newTestWorld(10, 10)
	layer := fields.NewFieldLayer(testParams(), w.Map.Size)

	df := layer.Recompute(w)

	assert.EqualValues(t, 0, df.ReturnCost(grid.Position{X: 0, Y: 0}))
	assert.Equal(t, grid.Still, df.ReturnDir(grid.Position{X: 0, Y: 0}))
}

func TestReturnFieldOptimalityFollowsDirsToStructure(t *testing.T) {
	// §8 invariant 4: following return_dirs from a reachable cell reaches
	// a structure within return_costs real steps.
	w := newTestWorld(10, 10)
	layer := fields.NewFieldLayer(testParams(), w.Map.Size)
	df := layer.Recompute(w)

	start := grid.Position{X: 5, Y: 5}
	require.Less(t, df.ReturnCost(start), int32(fields.Unreachable))

	p := start
	steps := 0
	for w.Map.Size.Normalize(p) != w.Players[0].ShipyardPos && steps < 64 {
		dir := df.ReturnDir(p)
		require.NotEqual(t, grid.Still, dir, "got stuck away from structure at step %d", steps)
		p = w.Map.Size.Move(p, dir)
		steps++
	}
	assert.Equal(t, w.Players[0].ShipyardPos, w.Map.Size.Normalize(p))
}

func TestFieldWrappingInvariantForReturnCost(t *testing.T) {
	// §8 invariant 3: field(p) = field(normalize(p)).
	w := newTestWorld(8, 8)
	layer := fields.NewFieldLayer(testParams(), w.Map.Size)
	df := layer.Recompute(w)

	p := grid.Position{X: -1, Y: 9}
	assert.Equal(t, df.ReturnCost(w.Map.Size.Normalize(p)), df.ReturnCost(p))
}

func TestPheromoneStaysNonNegativeWithNonNegativeSources(t *testing.T) {
	// §8 invariant 5.
	w := newTestWorld(10, 10)
	for i := range w.Map.Cells {
		w.Map.Cells[i].Halite = 50
	}
	layer := fields.NewFieldLayer(testParams(), w.Map.Size)

	for turn := 0; turn < 5; turn++ {
		layer.AddTransientSource(grid.Position{X: 3, Y: 3}, 500)
		df := layer.Recompute(w)
		for _, v := range df.Pheromone {
			require.GreaterOrEqual(t, v, 0.0)
		}
	}
}

func TestPercentilesAreSortedAndCoverRange(t *testing.T) {
	w := newTestWorld(4, 4)
	for i := range w.Map.Cells {
		w.Map.Cells[i].Halite = i * 10
	}
	layer := fields.NewFieldLayer(testParams(), w.Map.Size)

	df := layer.Recompute(w)

	assert.Equal(t, 0, df.Percentiles[0])
	assert.Equal(t, w.Map.Cells[len(w.Map.Cells)-1].Halite, df.Percentiles[100])
	for k := 1; k <= 100; k++ {
		assert.GreaterOrEqual(t, df.Percentiles[k], df.Percentiles[k-1])
	}
}

func TestHaliteDensityIsWindowedMean(t *testing.T) {
	w := newTestWorld(20, 20)
	for i := range w.Map.Cells {
		w.Map.Cells[i].Halite = 100
	}
	layer := fields.NewFieldLayer(testParams(), w.Map.Size)

	df := layer.Recompute(w)

	// Uniform halite everywhere: every cell's mean-of-disk equals 100.
	assert.EqualValues(t, 100, df.Density(grid.Position{X: 10, Y: 10}))
}
