package game

import (
	"testing"

	"github.com/pipslab/pips/grid"
	"github.com/pipslab/pips/piece"
)

func mustDomino(t *testing.T, a, b int) piece.Piece {
	t.Helper()
	pa, err := grid.NewPip(a)
	if err != nil {
		t.Fatal(err)
	}
	pb, err := grid.NewPip(b)
	if err != nil {
		t.Fatal(err)
	}
	pc, err := piece.New(piece.Lookup(piece.Domino), []grid.Pip{pa, pb})
	if err != nil {
		t.Fatal(err)
	}
	return pc
}

func TestNewPlacementOrientationBounds(t *testing.T) {
	t.Parallel()
	pc := mustDomino(t, 3, 4)
	_, err := NewPlacement(pc, p(0, 0), 99, pc.Pips)
	if err == nil {
		t.Fatal("expected orientation-out-of-range error")
	}
}

func TestNewPlacementPipOrderMismatch(t *testing.T) {
	t.Parallel()
	pc := mustDomino(t, 3, 4)
	_, err := NewPlacement(pc, p(0, 0), 0, []grid.Pip{pc.Pips[0]})
	if err == nil {
		t.Fatal("expected pip order mismatch error")
	}
}

func TestPlacementCellsAndAssignments(t *testing.T) {
	t.Parallel()
	pc := mustDomino(t, 3, 4)
	pl, err := NewPlacement(pc, p(2, 2), 0, pc.Pips)
	if err != nil {
		t.Fatal(err)
	}
	cells := pl.Cells()
	if len(cells) != 2 {
		t.Fatalf("len(cells) = %d, want 2", len(cells))
	}
	assignments := pl.Assignments()
	if len(assignments) != 2 {
		t.Fatalf("len(assignments) = %d, want 2", len(assignments))
	}
	for i, a := range assignments {
		if a.Point != cells[i] {
			t.Errorf("assignment %d point %v != cell %v", i, a.Point, cells[i])
		}
		if a.Pip != pc.Pips[i] {
			t.Errorf("assignment %d pip %v != piece pip %v", i, a.Pip, pc.Pips[i])
		}
	}
}
