package fields

import (
	"sort"

	"github.com/MyForking/halite3-bot-1/internal/domain/world"
)

// computePercentiles sorts every cell's halite amount and samples the
// 101-bin quantile table (§4.1.4).
func computePercentiles(w *world.World, out *DerivedFields) {
	halites := make([]int, len(w.Map.Cells))
	for i, cell := range w.Map.Cells {
		halites[i] = cell.Halite
	}
	sort.Ints(halites)

	n := len(halites)
	if n == 0 {
		return
	}
	for k := 0; k <= 100; k++ {
		out.Percentiles[k] = halites[(n-1)*k/100]
	}
}
