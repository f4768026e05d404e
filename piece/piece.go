package piece

import (
	"fmt"

	"github.com/pipslab/pips/grid"
)

// ErrPipCountMismatch is returned when a Piece is constructed with a
// pip sequence whose length does not match its shape's cell count.
var ErrPipCountMismatch = fmt.Errorf("pip sequence length does not match shape cell count")

// Piece is an immutable shape plus an ordered sequence of pips, one
// per cell in the shape's canonical cell order.
type Piece struct {
	Shape *Shape
	Pips  []grid.Pip
}

// New constructs a Piece, validating the pip-count/cell-count invariant.
func New(shape *Shape, pips []grid.Pip) (Piece, error) {
	if shape == nil {
		return Piece{}, fmt.Errorf("%w: nil shape", ErrPipCountMismatch)
	}
	if len(pips) != shape.CellCount {
		return Piece{}, ErrPipCountMismatch
	}
	cp := make([]grid.Pip, len(pips))
	copy(cp, pips)
	return Piece{Shape: shape, Pips: cp}, nil
}

// Equal reports structural equality: same shape identity and identical
// pip sequence in the same order.
func (p Piece) Equal(o Piece) bool {
	if p.Shape != o.Shape || len(p.Pips) != len(o.Pips) {
		return false
	}
	for i := range p.Pips {
		if p.Pips[i] != o.Pips[i] {
			return false
		}
	}
	return true
}

// IsDoubleton reports whether every pip on this piece is identical,
// meaning the piece is symmetric under every permutation of its own
// pips and under any shape symmetry that merely permutes same-valued
// cells.
func (p Piece) IsDoubleton() bool {
	for _, pip := range p.Pips[1:] {
		if pip != p.Pips[0] {
			return false
		}
	}
	return true
}

// UniquePipPermutations returns the set of distinct pip sequences
// obtainable by permuting p.Pips, deduplicated. A doubleton piece
// (or a piece with only one cell) yields exactly one permutation: itself.
func (p Piece) UniquePipPermutations() [][]grid.Pip {
	if len(p.Pips) <= 1 || p.IsDoubleton() {
		return [][]grid.Pip{append([]grid.Pip(nil), p.Pips...)}
	}
	seen := make(map[string]struct{})
	var out [][]grid.Pip
	perm := append([]grid.Pip(nil), p.Pips...)
	permute(perm, 0, func(p []grid.Pip) {
		key := pipKey(p)
		if _, ok := seen[key]; ok {
			return
		}
		seen[key] = struct{}{}
		out = append(out, append([]grid.Pip(nil), p...))
	})
	return out
}

func pipKey(pips []grid.Pip) string {
	b := make([]byte, len(pips))
	for i, p := range pips {
		b[i] = byte(p)
	}
	return string(b)
}

func permute(a []grid.Pip, k int, emit func([]grid.Pip)) {
	if k == len(a) {
		emit(a)
		return
	}
	for i := k; i < len(a); i++ {
		a[k], a[i] = a[i], a[k]
		permute(a, k+1, emit)
		a[k], a[i] = a[i], a[k]
	}
}

func (p Piece) String() string {
	return fmt.Sprintf("%s:%v", p.Shape.ID, p.Pips)
}
