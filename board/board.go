// Package board holds the Board value: a finite set of grid cells the
// puzzle's pieces must exactly cover. It carries no rules of its own —
// piece placement, constraint satisfaction, and the win condition live
// in package game.
package board

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/pipslab/pips/grid"
)

// ErrPointNotOnBoard is returned by RemovePoints when asked to remove
// a point the board does not contain.
var ErrPointNotOnBoard = errors.New("point not on board")

// Board is an immutable, value-semantic set of grid points. The zero
// value is the empty board.
type Board struct {
	cells map[grid.Point]struct{}
}

// New constructs a Board containing exactly the given points,
// deduplicated.
func New(points ...grid.Point) *Board {
	cells := make(map[grid.Point]struct{}, len(points))
	for _, p := range points {
		cells[p] = struct{}{}
	}
	return &Board{cells: cells}
}

// FromRows builds a Board from a rectangular grid of rune rows, where
// present marks a cell as on the board. This mirrors the '#'/' '
// row convention of the plain-text board format, independent of how
// that format is tokenized by a loader.
func FromRows(rows []string, present rune) *Board {
	cells := make(map[grid.Point]struct{})
	height := len(rows)
	for rowIdx, row := range rows {
		y := height - rowIdx - 1 // rows are read top-to-bottom, board y grows upward
		for x, r := range row {
			if r == present {
				cells[grid.Point{X: x, Y: y}] = struct{}{}
			}
		}
	}
	return &Board{cells: cells}
}

// Contains reports whether p is on the board.
func (b *Board) Contains(p grid.Point) bool {
	if b == nil {
		return false
	}
	_, ok := b.cells[p]
	return ok
}

// Len reports the number of cells on the board.
func (b *Board) Len() int {
	if b == nil {
		return 0
	}
	return len(b.cells)
}

// IsEmpty reports whether the board has no cells.
func (b *Board) IsEmpty() bool {
	return b.Len() == 0
}

// Iterate returns the board's points in (y, x) increasing order.
func (b *Board) Iterate() []grid.Point {
	if b == nil {
		return nil
	}
	out := make([]grid.Point, 0, len(b.cells))
	for p := range b.cells {
		out = append(out, p)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Less(out[j]) })
	return out
}

// Bounds reports the board's bounding box. ok is false for an empty board.
func (b *Board) Bounds() (minX, minY, maxX, maxY int, ok bool) {
	if b.IsEmpty() {
		return 0, 0, 0, 0, false
	}
	first := true
	for p := range b.cells {
		if first {
			minX, maxX, minY, maxY = p.X, p.X, p.Y, p.Y
			first = false
			continue
		}
		if p.X < minX {
			minX = p.X
		}
		if p.X > maxX {
			maxX = p.X
		}
		if p.Y < minY {
			minY = p.Y
		}
		if p.Y > maxY {
			maxY = p.Y
		}
	}
	return minX, minY, maxX, maxY, true
}

// Area reports the bounding-box area (width * height), or 0 for an
// empty board.
func (b *Board) Area() int {
	minX, minY, maxX, maxY, ok := b.Bounds()
	if !ok {
		return 0
	}
	return (maxX - minX + 1) * (maxY - minY + 1)
}

// RemovePoints returns a new Board equal to b \ pts. It fails if any
// point in pts is not on b; on failure the returned Board is nil and b
// is untouched (all-or-nothing).
func (b *Board) RemovePoints(pts []grid.Point) (*Board, error) {
	for _, p := range pts {
		if !b.Contains(p) {
			return nil, fmt.Errorf("%w: %s", ErrPointNotOnBoard, p)
		}
	}
	next := make(map[grid.Point]struct{}, len(b.cells)-len(pts))
	removing := make(map[grid.Point]struct{}, len(pts))
	for _, p := range pts {
		removing[p] = struct{}{}
	}
	for p := range b.cells {
		if _, gone := removing[p]; gone {
			continue
		}
		next[p] = struct{}{}
	}
	return &Board{cells: next}, nil
}

// ConnectedComponents partitions the board into maximal orthogonally
// connected groups of cells, each returned as its own Board. Required
// by the pivot rule's component-aware variant.
func (b *Board) ConnectedComponents() []*Board {
	if b.IsEmpty() {
		return nil
	}
	visited := make(map[grid.Point]struct{}, len(b.cells))
	var components []*Board
	neighbors := []grid.Point{{X: 1, Y: 0}, {X: -1, Y: 0}, {X: 0, Y: 1}, {X: 0, Y: -1}}

	for _, start := range b.Iterate() {
		if _, ok := visited[start]; ok {
			continue
		}
		queue := []grid.Point{start}
		visited[start] = struct{}{}
		group := make(map[grid.Point]struct{})
		group[start] = struct{}{}
		for len(queue) > 0 {
			cur := queue[0]
			queue = queue[1:]
			for _, off := range neighbors {
				n := cur.Add(off)
				if !b.Contains(n) {
					continue
				}
				if _, ok := visited[n]; ok {
					continue
				}
				visited[n] = struct{}{}
				group[n] = struct{}{}
				queue = append(queue, n)
			}
		}
		components = append(components, &Board{cells: group})
	}
	return components
}

func (b *Board) String() string {
	minX, minY, maxX, maxY, ok := b.Bounds()
	if !ok {
		return "<empty board>"
	}
	builder := strings.Builder{}
	for y := maxY; y >= minY; y-- {
		for x := minX; x <= maxX; x++ {
			if b.Contains(grid.Point{X: x, Y: y}) {
				builder.WriteByte('#')
			} else {
				builder.WriteByte(' ')
			}
		}
		if y > minY {
			builder.WriteByte('\n')
		}
	}
	return builder.String()
}
