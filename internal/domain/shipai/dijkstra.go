package shipai

import (
	"container/heap"

	"github.com/MyForking/halite3-bot-1/internal/domain/grid"
)

// dijkstraNode is one frontier entry: a reached position and its
// accumulated cost from the search's source.
type dijkstraNode struct {
	pos  grid.Position
	cost int
}

type dijkstraHeap []dijkstraNode

func (h dijkstraHeap) Len() int            { return len(h) }
func (h dijkstraHeap) Less(i, j int) bool  { return h[i].cost < h[j].cost }
func (h dijkstraHeap) Swap(i, j int)       { h[i], h[j] = h[j], h[i] }
func (h *dijkstraHeap) Push(x interface{}) { *h = append(*h, x.(dijkstraNode)) }
func (h *dijkstraHeap) Pop() interface{} {
	old := *h
	n := len(old)
	item := old[n-1]
	*h = old[:n-1]
	return item
}

// navigateTowards runs a single-ship Dijkstra search *backward* from dst
// (§4.4): unlike the precomputed whole-map return field, a BuildDropoff
// target is an arbitrary in-progress expansion site with no standing
// gradient, so each ship in that state searches fresh. Running the search
// from dst lets one pass price all five of src's options (itself plus the
// four cardinals) at once, returned as a cost array indexed by
// grid.AllOptions. Edge cost is movement-cost(target)+1, the literal "+1
// per step" the original charges to prefer shorter paths among
// equal-halite routes. Opponent shipyards are impassable (the anti-grief
// mechanic); an option never reached (boxed in) gets a hugeWeight
// sentinel so the solver still treats it as a last resort rather than a
// tied zero-cost option.
func navigateTowards(ctx *Context, src, dst grid.Position) [5]float64 {
	size := ctx.World.Map.Size
	src = size.Normalize(src)
	dst = size.Normalize(dst)

	var moves [5]grid.Position
	var visited [5]bool
	for i, d := range grid.AllOptions {
		off := d.Offset()
		moves[i] = size.Normalize(grid.Position{X: src.X + off.X, Y: src.Y + off.Y})
	}

	best := map[grid.Position]int{dst: 0}
	h := &dijkstraHeap{{pos: dst, cost: 0}}
	heap.Init(h)

	var costs [5]float64
	remaining := 5

	for h.Len() > 0 && remaining > 0 {
		node := heap.Pop(h).(dijkstraNode)
		if c, ok := best[node.pos]; ok && node.cost > c {
			continue
		}

		for i, m := range moves {
			if !visited[i] && m == node.pos {
				costs[i] = float64(node.cost)
				visited[i] = true
				remaining--
			}
		}
		if remaining == 0 {
			break
		}

		for _, d := range grid.Directions {
			next := size.Move(node.pos, d)
			if ctx.World.Map.IsOpponentShipyard(next, ctx.World.Me) {
				continue
			}

			edgeCost := ctx.World.Constants.MoveCost(ctx.World.Map.Halite(next)) + 1
			nextCost := node.cost + edgeCost

			if c, ok := best[next]; !ok || nextCost < c {
				best[next] = nextCost
				heap.Push(h, dijkstraNode{pos: next, cost: nextCost})
			}
		}
	}

	for i, v := range visited {
		if !v {
			costs[i] = hugeWeight
		}
	}

	return costs
}
