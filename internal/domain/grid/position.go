// Package grid provides the toroidal coordinate system shared by every
// component that reasons about cell positions: field computation, threat
// detection, ship behavior and the move solver.
package grid

import (
	"fmt"

	"github.com/MyForking/halite3-bot-1/pkg/utils"
)

// Position is an integer grid coordinate. All geometric operations apply
// wrap on the owning map's (Width, Height); Position itself carries no
// bounds, normalization happens against an explicit size.
type Position struct {
	X, Y int
}

// Direction is one of the four cardinal headings or Still (no movement).
type Direction int

const (
	Still Direction = iota
	North
	South
	East
	West
)

// Directions lists the four cardinal directions in a stable iteration
// order; callers needing deterministic enumeration (the move solver's
// column construction) should range over this slice rather than redefine
// the order locally.
var Directions = [4]Direction{North, South, East, West}

// AllOptions lists Still followed by the four cardinals, matching the
// 5-tuple cost vector order used throughout the ship behavior layer.
var AllOptions = [5]Direction{Still, North, South, East, West}

func (d Direction) String() string {
	switch d {
	case Still:
		return "o"
	case North:
		return "n"
	case South:
		return "s"
	case East:
		return "e"
	case West:
		return "w"
	default:
		return "?"
	}
}

// Offset returns the unit displacement of d; Still is the zero offset.
func (d Direction) Offset() Position {
	switch d {
	case North:
		return Position{X: 0, Y: -1}
	case South:
		return Position{X: 0, Y: 1}
	case East:
		return Position{X: 1, Y: 0}
	case West:
		return Position{X: -1, Y: 0}
	default:
		return Position{}
	}
}

// Invert returns the opposite heading; Still inverts to itself.
func (d Direction) Invert() Direction {
	switch d {
	case North:
		return South
	case South:
		return North
	case East:
		return West
	case West:
		return East
	default:
		return Still
	}
}

// Size is a map's (Width, Height) used to normalize positions and measure
// wrapped distance.
type Size struct {
	Width, Height int
}

// mod computes the non-negative modulo of v by m, handling negative v the
// way Go's % operator does not.
func mod(v, m int) int {
	r := v % m
	if r < 0 {
		r += m
	}
	return r
}

// Normalize wraps p onto the torus defined by s.
func (s Size) Normalize(p Position) Position {
	return Position{X: mod(p.X, s.Width), Y: mod(p.Y, s.Height)}
}

// Move returns the position reached from p after stepping in direction d,
// normalized onto the torus.
func (s Size) Move(p Position, d Direction) Position {
	off := d.Offset()
	return s.Normalize(Position{X: p.X + off.X, Y: p.Y + off.Y})
}

// Neighbors returns the four cardinal neighbors of p, in the stable
// Directions order.
func (s Size) Neighbors(p Position) [4]Position {
	var out [4]Position
	for i, d := range Directions {
		out[i] = s.Move(p, d)
	}
	return out
}

// ManhattanDistance returns the minimum Manhattan distance between a and b
// on the torus defined by s.
func (s Size) ManhattanDistance(a, b Position) int {
	dx := mod(a.X-b.X, s.Width)
	dx = utils.Min(dx, s.Width-dx)
	dy := mod(a.Y-b.Y, s.Height)
	dy = utils.Min(dy, s.Height-dy)
	return dx + dy
}

// DirectionTo returns the cardinal direction whose single step from a
// reaches b, or (Still, false) if b is not one of a's five options
// (itself or one cardinal step away).
func (s Size) DirectionTo(a, b Position) (Direction, bool) {
	if s.Normalize(a) == s.Normalize(b) {
		return Still, true
	}
	for _, d := range Directions {
		if s.Move(a, d) == s.Normalize(b) {
			return d, true
		}
	}
	return Still, false
}

// Index returns the row-major (y, x) index of p into a flattened
// Width*Height slice, matching the input format's row-major layout.
func (s Size) Index(p Position) int {
	return p.Y*s.Width + p.X
}

// Within reports whether a disk of Manhattan radius r around center,
// normalized, contains p.
func (s Size) Within(center Position, p Position, r int) bool {
	return s.ManhattanDistance(center, p) <= r
}

func (p Position) String() string {
	return fmt.Sprintf("(%d,%d)", p.X, p.Y)
}

// DiskOffsets returns the relative offsets of every cell within Manhattan
// radius r of the origin, including the origin itself. Size is
// 2*r*(r+1)+1.
func DiskOffsets(r int) []Position {
	offsets := make([]Position, 0, 2*r*(r+1)+1)
	for dx := -r; dx <= r; dx++ {
		maxDy := r - abs(dx)
		for dy := -maxDy; dy <= maxDy; dy++ {
			offsets = append(offsets, Position{X: dx, Y: dy})
		}
	}
	return offsets
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
