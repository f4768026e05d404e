// Package grid holds the primitive value types the rest of the solver
// is built from: board coordinates and compass directions.
package grid

import (
	"errors"
	"fmt"
)

// ErrInvalidNotation represents a malformed point or direction notation.
var ErrInvalidNotation = errors.New("invalid notation")

// Point is a non-negative integer grid coordinate.
type Point struct {
	X, Y int
}

// NewPoint constructs a Point. Negative components are a programmer
// error in every caller of this package; they are not range-checked
// here, nor by board.New.
func NewPoint(x, y int) Point {
	return Point{X: x, Y: y}
}

func (p Point) String() string {
	return fmt.Sprintf("(%d,%d)", p.X, p.Y)
}

// Add returns p translated by the given offset.
func (p Point) Add(o Point) Point {
	return Point{X: p.X + o.X, Y: p.Y + o.Y}
}

// Sub returns p translated by the negated offset.
func (p Point) Sub(o Point) Point {
	return Point{X: p.X - o.X, Y: p.Y - o.Y}
}

// Less orders points in (y, x) increasing order, the iteration and
// pivot tie-break order used throughout the solver.
func (p Point) Less(o Point) bool {
	if p.Y != o.Y {
		return p.Y < o.Y
	}
	return p.X < o.X
}

// Direction is one of the four compass directions used by the
// domino-only variant's orientation table.
type Direction uint8

const (
	DirectionUnknown Direction = iota
	DirectionNorth
	DirectionEast
	DirectionSouth
	DirectionWest
)

func (d Direction) String() string {
	switch d {
	case DirectionNorth:
		return "N"
	case DirectionEast:
		return "E"
	case DirectionSouth:
		return "S"
	case DirectionWest:
		return "W"
	default:
		return ""
	}
}

// Offset returns the unit offset a second cell sits at relative to an
// anchor placed in this direction from it, i.e. the domino's tail cell.
func (d Direction) Offset() Point {
	switch d {
	case DirectionNorth:
		return Point{X: 0, Y: 1}
	case DirectionEast:
		return Point{X: 1, Y: 0}
	case DirectionSouth:
		return Point{X: 0, Y: -1}
	case DirectionWest:
		return Point{X: -1, Y: 0}
	default:
		return Point{}
	}
}
