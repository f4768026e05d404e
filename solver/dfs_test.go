package solver

import (
	"context"
	"testing"

	"github.com/pipslab/pips/board"
	"github.com/pipslab/pips/game"
	"github.com/pipslab/pips/grid"
	"github.com/pipslab/pips/piece"
)

func mustPip(t *testing.T, v int) grid.Pip {
	t.Helper()
	p, err := grid.NewPip(v)
	if err != nil {
		t.Fatal(err)
	}
	return p
}

func mustDominoPiece(t *testing.T, a, b int) piece.Piece {
	t.Helper()
	pc, err := piece.New(piece.Lookup(piece.Domino), []grid.Pip{mustPip(t, a), mustPip(t, b)})
	if err != nil {
		t.Fatal(err)
	}
	return pc
}

func TestSolveDFSFindsConstrainedSolution(t *testing.T) {
	t.Parallel()
	b := board.New(grid.Point{X: 0, Y: 0}, grid.Point{X: 1, Y: 0})
	pc := mustDominoPiece(t, 3, 4)
	c, err := game.NewExactly(7, []grid.Point{{X: 0, Y: 0}, {X: 1, Y: 0}})
	if err != nil {
		t.Fatal(err)
	}
	g := game.New(b, []piece.Piece{pc}, []*game.Constraint{c})

	sol, err := Solve(context.Background(), g, nil)
	if err != nil {
		t.Fatalf("Solve: %v", err)
	}
	if len(sol.Placements) != 1 {
		t.Fatalf("len(placements) = %d, want 1", len(sol.Placements))
	}
}

func TestSolveDFSUnsolvable(t *testing.T) {
	t.Parallel()
	b := board.New(grid.Point{X: 0, Y: 0}, grid.Point{X: 1, Y: 0})
	pc := mustDominoPiece(t, 3, 4)
	c, err := game.NewExactly(1, []grid.Point{{X: 0, Y: 0}, {X: 1, Y: 0}})
	if err != nil {
		t.Fatal(err)
	}
	g := game.New(b, []piece.Piece{pc}, []*game.Constraint{c})

	_, err = Solve(context.Background(), g, nil)
	if err == nil {
		t.Fatal("expected ErrNoSolution")
	}
}

func TestCountSolutionsUnconstrained(t *testing.T) {
	t.Parallel()
	b := board.New(grid.Point{X: 0, Y: 0}, grid.Point{X: 1, Y: 0})
	pc := mustDominoPiece(t, 3, 4)
	g := game.New(b, []piece.Piece{pc}, nil)

	count, err := CountSolutions(context.Background(), g, nil)
	if err != nil {
		t.Fatalf("CountSolutions: %v", err)
	}
	if count != 2 {
		t.Fatalf("count = %d, want 2 (both pip orders, unconstrained)", count)
	}
}

func TestSolveExactCoverStrategyMatchesDFS(t *testing.T) {
	t.Parallel()
	b := board.New(grid.Point{X: 0, Y: 0}, grid.Point{X: 1, Y: 0})
	pc := mustDominoPiece(t, 3, 4)
	c, err := game.NewExactly(7, []grid.Point{{X: 0, Y: 0}, {X: 1, Y: 0}})
	if err != nil {
		t.Fatal(err)
	}
	g := game.New(b, []piece.Piece{pc}, []*game.Constraint{c})

	sol, err := Solve(context.Background(), g, &Config{Strategy: StrategyExactCover})
	if err != nil {
		t.Fatalf("Solve: %v", err)
	}
	if len(sol.Placements) != 1 {
		t.Fatalf("len(placements) = %d, want 1", len(sol.Placements))
	}
}
