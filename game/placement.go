package game

import (
	"errors"
	"fmt"

	"github.com/pipslab/pips/grid"
	"github.com/pipslab/pips/piece"
)

// ErrOrientationIndex is returned when a Placement names an orientation
// index its piece's shape does not have.
var ErrOrientationIndex = errors.New("orientation index out of range")

// ErrPipOrderMismatch is returned when a Placement's PipOrder length
// does not match the piece's cell count.
var ErrPipOrderMismatch = errors.New("pip order length does not match piece cell count")

// Placement binds a Piece to a board location: which orientation of its
// shape, anchored where, and in what pip order (one of the piece's
// UniquePipPermutations, chosen independently of the shape orientation
// since shape symmetry and pip arrangement vary independently).
type Placement struct {
	Piece            piece.Piece
	Anchor           grid.Point
	OrientationIndex int
	PipOrder         []grid.Pip
}

// NewPlacement validates orientation and pip-order bounds before
// returning a Placement.
func NewPlacement(p piece.Piece, anchor grid.Point, orientationIndex int, pipOrder []grid.Pip) (Placement, error) {
	if orientationIndex < 0 || orientationIndex >= p.Shape.OrientationCount() {
		return Placement{}, fmt.Errorf("%w: %d (shape %s has %d)", ErrOrientationIndex, orientationIndex, p.Shape.ID, p.Shape.OrientationCount())
	}
	if len(pipOrder) != len(p.Pips) {
		return Placement{}, ErrPipOrderMismatch
	}
	order := make([]grid.Pip, len(pipOrder))
	copy(order, pipOrder)
	return Placement{Piece: p, Anchor: anchor, OrientationIndex: orientationIndex, PipOrder: order}, nil
}

// Cells returns the absolute board cells this placement occupies, in
// the same positional order as the shape's orientation cell list (and
// thus aligned with PipOrder).
func (pl Placement) Cells() []grid.Point {
	offsets := pl.Piece.Shape.Orientation(pl.OrientationIndex)
	cells := make([]grid.Point, len(offsets))
	for i, o := range offsets {
		cells[i] = pl.Anchor.Add(o)
	}
	return cells
}

// Assignments returns the pip-to-point pinning this placement implies,
// the unit of work the constraint reducers consume.
func (pl Placement) Assignments() []Assignment {
	cells := pl.Cells()
	out := make([]Assignment, len(cells))
	for i, c := range cells {
		out[i] = Assignment{Pip: pl.PipOrder[i], Point: c}
	}
	return out
}
