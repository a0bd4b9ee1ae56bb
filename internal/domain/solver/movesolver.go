package solver

import (
	"sort"

	"github.com/MyForking/halite3-bot-1/internal/domain/grid"
	"github.com/MyForking/halite3-bot-1/internal/domain/world"
)

type rowKind int

const (
	rowShip rowKind = iota
	rowShipyard
)

type row struct {
	kind    rowKind
	shipID  world.ShipID
	current grid.Position
	// targets maps a candidate cell index to (cost, direction, isSpawn).
	targets map[int]target
}

type target struct {
	cost      float64
	direction grid.Direction
	isSpawn   bool
}

// Solve runs the matching over every actor registered this turn via
// ProposeShipMove/NotifySpawn and returns the resolved move/spawn
// commands. Forced moves queued via ForceMove are appended afterward,
// unconditionally, bypassing the matching entirely (§4.3.5, §4.5 step 4).
func (s *MoveSolver) Solve() []Command {
	rows := s.buildRows()
	if len(rows) == 0 {
		return append([]Command{}, s.forced...)
	}

	colOf, cols := s.buildColumns(rows)

	n := len(rows)
	m := len(cols)
	if m < n {
		m = n
	}

	cost := make([][]float64, n)
	for i := range cost {
		cost[i] = make([]float64, m)
		for j := range cost[i] {
			cost[i][j] = hungarianBig
		}
		for cellIdx, t := range rows[i].targets {
			if j, ok := colOf[cellIdx]; ok {
				if t.cost < cost[i][j] {
					cost[i][j] = t.cost
				}
			}
		}
	}

	assignment := solveAssignment(cost)

	commands := make([]Command, 0, n)
	for i, r := range rows {
		j := assignment[i]
		if j < 0 || j >= len(cols) {
			continue // assigned to a padding column: no feasible real option, equivalent to Stay.
		}
		cellIdx := cols[j]
		t, declared := r.targets[cellIdx]
		if !declared {
			continue
		}

		switch r.kind {
		case rowShipyard:
			if t.isSpawn {
				commands = append(commands, Command{Kind: CommandSpawn, ShipID: r.shipID})
			}
		case rowShip:
			commands = append(commands, Command{Kind: CommandMove, ShipID: r.shipID, Direction: t.direction})
		}
	}

	commands = append(commands, s.forced...)
	return commands
}

func (s *MoveSolver) buildRows() []row {
	rows := make([]row, 0, len(s.actors)+1)

	sorted := make([]actor, len(s.actors))
	copy(sorted, s.actors)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].id < sorted[j].id })

	for _, a := range sorted {
		r := row{kind: rowShip, shipID: a.id, current: a.current, targets: make(map[int]target)}
		for k, dir := range grid.AllOptions {
			if !a.present[k] {
				continue
			}
			cell := s.size.Move(a.current, dir)
			idx := s.size.Index(cell)
			r.targets[idx] = target{cost: a.options[k], direction: dir}
		}
		rows = append(rows, r)
	}

	if s.spawning {
		r := row{kind: rowShipyard, shipID: shipyardActor, current: s.spawnPos, targets: make(map[int]target)}
		selfIdx := s.size.Index(s.size.Normalize(s.spawnPos))
		r.targets[selfIdx] = target{cost: -hungarianBig / 2, direction: grid.Still, isSpawn: true}
		rows = append(rows, r)
	}

	return rows
}

// buildColumns collects the union of every row's declared cell indices,
// in ascending order for deterministic tie-breaking (§9), and returns the
// index-to-column mapping alongside the ordered cell-index slice.
func (s *MoveSolver) buildColumns(rows []row) (map[int]int, []int) {
	set := make(map[int]struct{})
	for _, r := range rows {
		for idx := range r.targets {
			set[idx] = struct{}{}
		}
	}
	cols := make([]int, 0, len(set))
	for idx := range set {
		cols = append(cols, idx)
	}
	sort.Ints(cols)

	colOf := make(map[int]int, len(cols))
	for j, idx := range cols {
		colOf[idx] = j
	}
	return colOf, cols
}
