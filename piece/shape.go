// Package piece holds the polyomino shape catalog and the Piece value
// type (a shape plus the sequence of pips carried on its cells).
package piece

import (
	"sort"

	"github.com/pipslab/pips/grid"
)

// Shape is a named polyomino with a precomputed orientation table.
// The zero value is not valid; use the catalog via Lookup.
type Shape struct {
	ID           ShapeID
	CellCount    int
	Orientations [][]grid.Point // orientation[0] is the normalized base; cell order is positional and aligned with a Piece's Pips.
}

// Orientation returns the i'th orientation's cell list, or nil if i is
// out of range.
func (s *Shape) Orientation(i int) []grid.Point {
	if i < 0 || i >= len(s.Orientations) {
		return nil
	}
	return s.Orientations[i]
}

// OrientationCount reports how many unique orientations this shape has.
func (s *Shape) OrientationCount() int {
	return len(s.Orientations)
}

// buildOrientations rotates (and, if chiral, reflects) base around the
// origin, normalizes each result so its minimum x and y are 0, and
// de-duplicates by sorted-cell-set equality. The cell order within each
// kept orientation is preserved from the rotation/reflection transform,
// NOT re-sorted, so a Piece's Pips slice still maps positionally onto
// it.
func buildOrientations(base []grid.Point, chiral bool) [][]grid.Point {
	transforms := []func(grid.Point) grid.Point{
		identity,
		rotate90,
		rotate180,
		rotate270,
	}
	if chiral {
		transforms = append(transforms,
			compose(reflect, identity),
			compose(reflect, rotate90),
			compose(reflect, rotate180),
			compose(reflect, rotate270),
		)
	}

	var out [][]grid.Point
	seen := make(map[string]struct{})
	for _, tf := range transforms {
		cells := make([]grid.Point, len(base))
		for i, c := range base {
			cells[i] = tf(c)
		}
		cells = normalize(cells)
		sig := signature(cells)
		if _, ok := seen[sig]; ok {
			continue
		}
		seen[sig] = struct{}{}
		out = append(out, cells)
	}
	return out
}

func identity(p grid.Point) grid.Point { return p }

// rotate90 rotates a point 90 degrees counter-clockwise about the origin.
func rotate90(p grid.Point) grid.Point {
	return grid.Point{X: -p.Y, Y: p.X}
}

func rotate180(p grid.Point) grid.Point {
	return rotate90(rotate90(p))
}

func rotate270(p grid.Point) grid.Point {
	return rotate90(rotate180(p))
}

// reflect mirrors a point across the vertical axis.
func reflect(p grid.Point) grid.Point {
	return grid.Point{X: -p.X, Y: p.Y}
}

func compose(outer, inner func(grid.Point) grid.Point) func(grid.Point) grid.Point {
	return func(p grid.Point) grid.Point { return outer(inner(p)) }
}

func normalize(cells []grid.Point) []grid.Point {
	minX, minY := cells[0].X, cells[0].Y
	for _, c := range cells[1:] {
		if c.X < minX {
			minX = c.X
		}
		if c.Y < minY {
			minY = c.Y
		}
	}
	out := make([]grid.Point, len(cells))
	for i, c := range cells {
		out[i] = grid.Point{X: c.X - minX, Y: c.Y - minY}
	}
	return out
}

func signature(cells []grid.Point) string {
	sorted := make([]grid.Point, len(cells))
	copy(sorted, cells)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].Less(sorted[j]) })
	b := make([]byte, 0, len(sorted)*8)
	for _, c := range sorted {
		b = append(b, byte(c.X), byte(c.X>>8), byte(c.Y), byte(c.Y>>8))
	}
	return string(b)
}
