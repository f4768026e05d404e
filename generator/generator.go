// Package generator builds solvable puzzle instances by tiling a board
// with pieces and then laying constraint regions and pips over the
// tiling.
package generator

import (
	"errors"
	"fmt"

	"github.com/pipslab/pips/board"
	"github.com/pipslab/pips/game"
	"github.com/pipslab/pips/grid"
	"github.com/pipslab/pips/piece"
)

// ErrTilingImpossible is returned when no arrangement of the piece
// rule's shapes can exactly cover the board.
var ErrTilingImpossible = errors.New("no piece tiling covers the board")

// ErrCoverageUnreachable is returned when the constraint-region
// placement phase exhausts its retry budget before reaching the
// requested coverage fraction.
var ErrCoverageUnreachable = errors.New("constraint coverage target unreachable")

// PieceRule selects which shapes tile the board. Exactly one of
// Alphabet or ExactMultiset must be set: Alphabet draws shapes with
// replacement (an unbounded supply of each), ExactMultiset requires
// every listed shape to be placed exactly once.
type PieceRule struct {
	Alphabet      []piece.ShapeID
	ExactMultiset []piece.ShapeID
}

// ConstraintRule selects which shapes constraint regions may take.
type ConstraintRule struct {
	Shapes []piece.ShapeID
}

// PipSelectionMode governs how a constraint region's shape is drawn
// from a ConstraintRule.
type PipSelectionMode uint8

const (
	// UniformOverShapes draws each shape ID in the rule with equal
	// probability.
	UniformOverShapes PipSelectionMode = iota
	// UniformOverSizes first draws a cell count uniformly among the
	// rule's distinct sizes, then a shape uniformly within that size,
	// so a rule skewed toward many small shapes doesn't starve larger
	// ones.
	UniformOverSizes
)

// retryBudgetPerCell bounds the constraint-region placement loop,
// scaled by board size. The tiling search has no such bound.
const retryBudgetPerCell = 32

// Config describes one generation request.
type Config struct {
	Board          *board.Board
	PieceRule      PieceRule
	ConstraintRule ConstraintRule
	CoverageTarget float64
	PipSelection   PipSelectionMode
	Seed           uint64
}

// Generated is a freshly built puzzle plus the generator's own playout
// as a solvability witness.
type Generated struct {
	Board       *board.Board
	Pieces      []piece.Piece
	Constraints []*game.Constraint
	Placements  []game.Placement
}

// Generate runs the full tile-then-constrain-then-fill algorithm
// against cfg.
func Generate(cfg Config) (*Generated, error) {
	rng := NewPseudoRand(cfg.Seed)

	tiling, err := tileBoard(cfg.Board, cfg.PieceRule, rng)
	if err != nil {
		return nil, err
	}

	pipOf := make(map[grid.Point]grid.Pip, cfg.Board.Len())
	constraints, err := placeConstraintRegions(cfg, rng, pipOf)
	if err != nil {
		return nil, err
	}

	for _, cell := range cfg.Board.Iterate() {
		if _, ok := pipOf[cell]; ok {
			continue
		}
		pipOf[cell] = grid.Pip(rng.Intn(grid.MaxPip + 1))
	}

	pieces := make([]piece.Piece, 0, len(tiling))
	placements := make([]game.Placement, 0, len(tiling))
	for _, tc := range tiling {
		pips := make([]grid.Pip, len(tc.cells))
		for i, c := range tc.cells {
			pips[i] = pipOf[c]
		}
		pc, err := piece.New(piece.Lookup(tc.shapeID), pips)
		if err != nil {
			return nil, fmt.Errorf("catastrophic: building piece %s: %w", tc.shapeID, err)
		}
		pl, err := game.NewPlacement(pc, tc.anchor, tc.orientationIndex, pips)
		if err != nil {
			return nil, fmt.Errorf("catastrophic: building placement for %s: %w", tc.shapeID, err)
		}
		pieces = append(pieces, pc)
		placements = append(placements, pl)
	}

	return &Generated{
		Board:       cfg.Board,
		Pieces:      pieces,
		Constraints: constraints,
		Placements:  placements,
	}, nil
}

type tilingCandidate struct {
	shapeID          piece.ShapeID
	orientationIndex int
	anchor           grid.Point
	cells            []grid.Point
}

// tileBoard covers b exactly with shapes drawn from rule, trying
// shuffled candidate orders at each step so repeated calls with
// different seeds explore different tilings. It backtracks like the
// solver's exact-cover tiling phase but draws its piece supply from
// rule instead of a fixed Game.Pieces list.
func tileBoard(b *board.Board, rule PieceRule, rng *PseudoRand) ([]tilingCandidate, error) {
	remaining := b.Iterate()
	var multiset []piece.ShapeID
	multiset = append(multiset, rule.ExactMultiset...)

	result, ok := tileStep(remaining, rule, multiset, rng, nil)
	if !ok {
		return nil, ErrTilingImpossible
	}
	return result, nil
}

func tileStep(remaining []grid.Point, rule PieceRule, multiset []piece.ShapeID, rng *PseudoRand, acc []tilingCandidate) ([]tilingCandidate, bool) {
	if len(remaining) == 0 {
		if len(multiset) != 0 {
			return nil, false
		}
		out := make([]tilingCandidate, len(acc))
		copy(out, acc)
		return out, true
	}

	target := remaining[0]
	rest := remaining[1:]

	candidates := candidateShapes(rule, multiset)
	rng.Shuffle(len(candidates), func(i, j int) { candidates[i], candidates[j] = candidates[j], candidates[i] })

	for _, choice := range candidates {
		shape := piece.Lookup(choice.id)
		if shape == nil {
			continue
		}
		orientations := shuffledIndices(shape.OrientationCount(), rng)
		for _, oi := range orientations {
			offsets := shape.Orientation(oi)
			anchors := candidateAnchors(offsets, target, rng)
			for _, anchor := range anchors {
				cells := make([]grid.Point, len(offsets))
				for i, off := range offsets {
					cells[i] = anchor.Add(off)
				}
				if !coversOnly(cells, target, remaining) {
					continue
				}
				nextRemaining := removeCells(rest, cells)
				nextMultiset := multiset
				if choice.fromMultiset {
					nextMultiset = removeOne(multiset, choice.id)
				}
				acc = append(acc, tilingCandidate{shapeID: choice.id, orientationIndex: oi, anchor: anchor, cells: cells})
				if result, ok := tileStep(nextRemaining, rule, nextMultiset, rng, acc); ok {
					return result, true
				}
				acc = acc[:len(acc)-1]
			}
		}
	}
	return nil, false
}

type shapeChoice struct {
	id           piece.ShapeID
	fromMultiset bool
}

func candidateShapes(rule PieceRule, multiset []piece.ShapeID) []shapeChoice {
	if len(rule.ExactMultiset) > 0 {
		seen := make(map[piece.ShapeID]struct{}, len(multiset))
		out := make([]shapeChoice, 0, len(multiset))
		for _, id := range multiset {
			if _, ok := seen[id]; ok {
				continue
			}
			seen[id] = struct{}{}
			out = append(out, shapeChoice{id: id, fromMultiset: true})
		}
		return out
	}
	out := make([]shapeChoice, len(rule.Alphabet))
	for i, id := range rule.Alphabet {
		out[i] = shapeChoice{id: id}
	}
	return out
}

func removeOne(ids []piece.ShapeID, target piece.ShapeID) []piece.ShapeID {
	out := make([]piece.ShapeID, 0, len(ids))
	removed := false
	for _, id := range ids {
		if !removed && id == target {
			removed = true
			continue
		}
		out = append(out, id)
	}
	return out
}

func shuffledIndices(n int, rng *PseudoRand) []int {
	out := make([]int, n)
	for i := range out {
		out[i] = i
	}
	rng.Shuffle(n, func(i, j int) { out[i], out[j] = out[j], out[i] })
	return out
}

func candidateAnchors(offsets []grid.Point, target grid.Point, rng *PseudoRand) []grid.Point {
	seen := make(map[grid.Point]struct{}, len(offsets))
	out := make([]grid.Point, 0, len(offsets))
	for _, off := range offsets {
		anchor := target.Sub(off)
		if _, ok := seen[anchor]; ok {
			continue
		}
		seen[anchor] = struct{}{}
		out = append(out, anchor)
	}
	rng.Shuffle(len(out), func(i, j int) { out[i], out[j] = out[j], out[i] })
	return out
}

func coversOnly(cells []grid.Point, target grid.Point, remaining []grid.Point) bool {
	avail := make(map[grid.Point]struct{}, len(remaining))
	for _, p := range remaining {
		avail[p] = struct{}{}
	}
	foundTarget := false
	for _, c := range cells {
		if c == target {
			foundTarget = true
			continue
		}
		if _, ok := avail[c]; !ok {
			return false
		}
	}
	return foundTarget
}

func removeCells(from []grid.Point, remove []grid.Point) []grid.Point {
	drop := make(map[grid.Point]struct{}, len(remove))
	for _, p := range remove {
		drop[p] = struct{}{}
	}
	out := make([]grid.Point, 0, len(from))
	for _, p := range from {
		if _, ok := drop[p]; ok {
			continue
		}
		out = append(out, p)
	}
	return out
}
