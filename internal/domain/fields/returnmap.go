package fields

import (
	"container/heap"

	"github.com/MyForking/halite3-bot-1/internal/domain/grid"
	"github.com/MyForking/halite3-bot-1/internal/domain/world"
)

// returnNode is one entry of the Dijkstra frontier: the cell and the
// tentative cumulative cost to reach an owned structure from it.
type returnNode struct {
	pos  grid.Position
	cost int32
}

type returnHeap []returnNode

func (h returnHeap) Len() int            { return len(h) }
func (h returnHeap) Less(i, j int) bool  { return h[i].cost < h[j].cost }
func (h returnHeap) Swap(i, j int)       { h[i], h[j] = h[j], h[i] }
func (h *returnHeap) Push(x interface{}) { *h = append(*h, x.(returnNode)) }
func (h *returnHeap) Pop() interface{} {
	old := *h
	n := len(old)
	item := old[n-1]
	*h = old[:n-1]
	return item
}

// computeReturnMap runs a multi-source Dijkstra seeded at every owned
// structure, fanning outward via the inverted cardinal so that each
// relaxed cell records the direction that makes progress toward home
// (§4.1.2). Every ReturnCosts entry starts at the Unreachable sentinel;
// cells the search never reaches keep it.
func computeReturnMap(w *world.World, returnStepCost int, out *DerivedFields) {
	size := w.Map.Size
	for i := range out.ReturnCosts {
		out.ReturnCosts[i] = Unreachable
	}

	visited := make([]bool, len(out.ReturnCosts))
	isSource := make([]bool, len(out.ReturnCosts))

	h := &returnHeap{}
	for _, src := range w.OwnedStructurePositions() {
		idx := size.Index(size.Normalize(src))
		out.ReturnCosts[idx] = 0
		out.ReturnDirs[idx] = grid.Still
		isSource[idx] = true
		heap.Push(h, returnNode{pos: size.Normalize(src), cost: 0})
	}

	for h.Len() > 0 {
		node := heap.Pop(h).(returnNode)
		uIdx := size.Index(node.pos)
		if visited[uIdx] {
			continue
		}
		if node.cost > out.ReturnCosts[uIdx] {
			continue
		}
		visited[uIdx] = true

		fromStill := isSource[uIdx]

		for _, d := range grid.Directions {
			if fromStill && d == grid.East {
				continue
			}

			v := size.Move(node.pos, d.Invert())
			if w.Map.IsOpponentShipyard(v, w.Me) {
				continue
			}
			vIdx := size.Index(v)
			if visited[vIdx] {
				continue
			}

			edgeCost := int32(w.Constants.MoveCost(w.Map.Halite(v)) + returnStepCost)
			newCost := out.ReturnCosts[uIdx] + edgeCost
			if newCost < out.ReturnCosts[vIdx] {
				out.ReturnCosts[vIdx] = newCost
				out.ReturnDirs[vIdx] = d
				heap.Push(h, returnNode{pos: v, cost: newCost})
			}
		}
	}
}
