package solver

import (
	"context"

	"github.com/pipslab/pips/game"
	"github.com/pipslab/pips/grid"
	"github.com/pipslab/pips/piece"
)

// tilingCandidate names a piece-orientation-anchor combination that
// covers a set of board cells, without yet committing to a pip order.
type tilingCandidate struct {
	pieceIdx         int
	piece            piece.Piece
	orientationIndex int
	anchor           grid.Point
	cells            []grid.Point
}

// solveExactCover implements the two-phase exact-cover strategy:
// first enumerate exact covers of the board by piece shapes alone
// (ignoring pips), then re-validate each cover's pip assignment
// against the live constraints, backtracking across both phases until
// one fully consistent solution is found or the search is exhausted.
//
// This is a plain recursive exact-cover search rather than a pointer-
// linked dancing-links structure: board sizes in this puzzle family
// are small enough that the asymptotic benefit
// of DLX's O(1) column unlinking doesn't pay for the extra complexity.
func solveExactCover(ctx context.Context, g *game.Game, clock *Clock) ([]game.Placement, bool) {
	used := make([]bool, len(g.Pieces))
	return coverTiling(ctx, clock, g.Board.Iterate(), g, used, nil)
}

func coverTiling(ctx context.Context, clock *Clock, remainingCells []grid.Point, g *game.Game, used []bool, tiling []tilingCandidate) ([]game.Placement, bool) {
	if ctx.Err() != nil {
		return nil, false
	}
	if len(remainingCells) == 0 {
		allUsed := true
		for _, u := range used {
			if !u {
				allUsed = false
				break
			}
		}
		if !allUsed {
			return nil, false
		}
		return validatePipAssignment(tiling, g.Constraints)
	}

	target := remainingCells[0]
	rest := remainingCells[1:]

	for i, pc := range g.Pieces {
		if used[i] {
			continue
		}
		for oi := 0; oi < pc.Shape.OrientationCount(); oi++ {
			offsets := pc.Shape.Orientation(oi)
			seenAnchor := make(map[grid.Point]struct{}, len(offsets))
			for _, off := range offsets {
				anchor := target.Sub(off)
				if _, ok := seenAnchor[anchor]; ok {
					continue
				}
				seenAnchor[anchor] = struct{}{}

				cells := make([]grid.Point, len(offsets))
				for j, o := range offsets {
					cells[j] = anchor.Add(o)
				}
				if !coversOnly(cells, target, remainingCells) {
					continue
				}

				nextRemaining := removeCells(rest, cells)
				used[i] = true
				tiling = append(tiling, tilingCandidate{pieceIdx: i, piece: pc, orientationIndex: oi, anchor: anchor, cells: cells})

				if result, ok := coverTiling(ctx, clock, nextRemaining, g, used, tiling); ok {
					return result, true
				}

				tiling = tiling[:len(tiling)-1]
				used[i] = false
			}
		}
	}
	return nil, false
}

// coversOnly reports whether cells contains target and every other
// cell is still in remaining (i.e. unclaimed and on-board).
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

// validatePipAssignment is the exact-cover strategy's second phase: fix
// a pip order for every piece in tiling (in order), reducing the
// constraint list as it goes, backtracking on violation.
func validatePipAssignment(tiling []tilingCandidate, constraints []*game.Constraint) ([]game.Placement, bool) {
	return assignPips(tiling, 0, constraints, nil)
}

func assignPips(tiling []tilingCandidate, idx int, constraints []*game.Constraint, acc []game.Placement) ([]game.Placement, bool) {
	if idx == len(tiling) {
		if len(constraints) != 0 {
			return nil, false
		}
		out := make([]game.Placement, len(acc))
		copy(out, acc)
		return out, true
	}
	tc := tiling[idx]
	for _, pipOrder := range tc.piece.UniquePipPermutations() {
		pl, err := game.NewPlacement(tc.piece, tc.anchor, tc.orientationIndex, pipOrder)
		if err != nil {
			continue
		}
		nextConstraints, ok := game.ReduceConstraintList(constraints, pl.Assignments())
		if !ok {
			continue
		}
		result, ok := assignPips(tiling, idx+1, nextConstraints, append(acc, pl))
		if ok {
			return result, true
		}
	}
	return nil, false
}
