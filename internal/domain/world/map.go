package world

import "github.com/MyForking/halite3-bot-1/internal/domain/grid"

// StructureKind distinguishes the three possible occupants of a MapCell.
type StructureKind int

const (
	StructureNone StructureKind = iota
	StructureShipyard
	StructureDropoff
)

// Structure describes the owned or enemy installation sitting on a cell,
// if any. PlayerID is meaningful for StructureShipyard; DropoffID is
// meaningful for StructureDropoff.
type Structure struct {
	Kind      StructureKind
	PlayerID  int
	DropoffID int
}

// MapCell is a single grid cell: its resting halite amount plus whatever
// structure occupies it.
type MapCell struct {
	Halite    int
	Structure Structure
}

// Map is the Width*Height row-major grid of cells, matching the input
// format's (y, x) layout.
type Map struct {
	Size  grid.Size
	Cells []MapCell
}

// NewMap allocates a zeroed map of the given size.
func NewMap(width, height int) *Map {
	return &Map{
		Size:  grid.Size{Width: width, Height: height},
		Cells: make([]MapCell, width*height),
	}
}

// At returns the cell at p, normalizing p onto the torus first.
func (m *Map) At(p grid.Position) *MapCell {
	return &m.Cells[m.Size.Index(m.Size.Normalize(p))]
}

// Halite returns the halite amount at p.
func (m *Map) Halite(p grid.Position) int {
	return m.At(p).Halite
}

// IsOpponentShipyard reports whether p holds a shipyard owned by a player
// other than me.
func (m *Map) IsOpponentShipyard(p grid.Position, me int) bool {
	s := m.At(p).Structure
	return s.Kind == StructureShipyard && s.PlayerID != me
}

// IsOwnedStructure reports whether p holds a shipyard or drop-off owned by
// me.
func (m *Map) IsOwnedStructure(p grid.Position, me int) bool {
	s := m.At(p).Structure
	switch s.Kind {
	case StructureShipyard:
		return s.PlayerID == me
	case StructureDropoff:
		return s.PlayerID == me
	default:
		return false
	}
}
