package game

import (
	"testing"

	"github.com/pipslab/pips/grid"
)

func p(x, y int) grid.Point { return grid.Point{X: x, Y: y} }

func pip(t *testing.T, v int) grid.Pip {
	t.Helper()
	pp, err := grid.NewPip(v)
	if err != nil {
		t.Fatalf("NewPip(%d): %v", v, err)
	}
	return pp
}

func TestReduceOneUnchangedOffConstraint(t *testing.T) {
	t.Parallel()
	c, err := NewExactly(5, []grid.Point{p(0, 0), p(1, 0)})
	if err != nil {
		t.Fatal(err)
	}
	status, next := c.ReduceOne(Assignment{Pip: pip(t, 3), Point: p(9, 9)})
	if status != Unchanged {
		t.Fatalf("status = %v, want Unchanged", status)
	}
	if next != c {
		t.Error("expected same constraint pointer on Unchanged")
	}
}

func TestReduceAllDifferent(t *testing.T) {
	t.Parallel()
	c, err := NewAllDifferent(nil, []grid.Point{p(0, 0), p(1, 0)})
	if err != nil {
		t.Fatal(err)
	}
	status, next := c.ReduceOne(Assignment{Pip: pip(t, 2), Point: p(0, 0)})
	if status != Updated {
		t.Fatalf("status = %v, want Updated", status)
	}
	status, _ = next.ReduceOne(Assignment{Pip: pip(t, 2), Point: p(1, 0)})
	if status != Violated {
		t.Fatalf("status = %v, want Violated (repeat pip)", status)
	}
}

func TestReduceAllSameCollapsesToExactlyAtTwoPoints(t *testing.T) {
	t.Parallel()
	c, err := NewAllSame(nil, []grid.Point{p(0, 0), p(1, 0), p(2, 0)})
	if err != nil {
		t.Fatal(err)
	}
	status, next := c.ReduceOne(Assignment{Pip: pip(t, 4), Point: p(0, 0)})
	if status != Updated || next.Kind != KindAllSame {
		t.Fatalf("first reduction: status=%v kind=%v", status, next.Kind)
	}
	status, next = next.ReduceOne(Assignment{Pip: pip(t, 4), Point: p(1, 0)})
	if status != Updated || next.Kind != KindExactly || next.Target != 4 {
		t.Fatalf("expected collapse to Exactly(4): status=%v kind=%v target=%d", status, next.Kind, next.Target)
	}
	status, _ = next.ReduceOne(Assignment{Pip: pip(t, 3), Point: p(2, 0)})
	if status != Violated {
		t.Fatalf("status = %v, want Violated", status)
	}
}

func TestReduceAllSameLastPointSatisfied(t *testing.T) {
	t.Parallel()
	e := pip(t, 5)
	c, err := NewAllSame(&e, []grid.Point{p(0, 0), p(1, 0)})
	if err != nil {
		t.Fatal(err)
	}
	_, next := c.ReduceOne(Assignment{Pip: pip(t, 5), Point: p(0, 0)})
	status, _ := next.ReduceOne(Assignment{Pip: pip(t, 5), Point: p(1, 0)})
	if status != Satisfied {
		t.Fatalf("status = %v, want Satisfied", status)
	}
}

func TestReduceExactlyLastPoint(t *testing.T) {
	t.Parallel()
	c, err := NewExactly(3, []grid.Point{p(0, 0)})
	if err != nil {
		t.Fatal(err)
	}
	status, _ := c.ReduceOne(Assignment{Pip: pip(t, 3), Point: p(0, 0)})
	if status != Satisfied {
		t.Fatalf("status = %v, want Satisfied", status)
	}

	c2, err := NewExactly(3, []grid.Point{p(0, 0)})
	if err != nil {
		t.Fatal(err)
	}
	status, _ = c2.ReduceOne(Assignment{Pip: pip(t, 4), Point: p(0, 0)})
	if status != Violated {
		t.Fatalf("status = %v, want Violated", status)
	}
}

func TestReduceExactlyUnachievablePrune(t *testing.T) {
	t.Parallel()
	c, err := NewExactly(1, []grid.Point{p(0, 0), p(1, 0)})
	if err != nil {
		t.Fatal(err)
	}
	status, _ := c.ReduceOne(Assignment{Pip: pip(t, 2), Point: p(0, 0)})
	if status != Violated {
		t.Fatalf("status = %v, want Violated (exceeds target)", status)
	}
}

func TestReduceLessThanCollapsesAtOnePoint(t *testing.T) {
	t.Parallel()
	c, err := NewLessThan(3, []grid.Point{p(0, 0), p(1, 0)})
	if err != nil {
		t.Fatal(err)
	}
	status, next := c.ReduceOne(Assignment{Pip: pip(t, 2), Point: p(0, 0)})
	if status != Updated || next.Kind != KindExactly || next.Target != 0 {
		t.Fatalf("expected collapse to Exactly(0): status=%v kind=%v target=%d", status, next.Kind, next.Target)
	}
}

func TestReduceLessThanViolatedWhenPipTooLarge(t *testing.T) {
	t.Parallel()
	c, err := NewLessThan(3, []grid.Point{p(0, 0), p(1, 0)})
	if err != nil {
		t.Fatal(err)
	}
	status, _ := c.ReduceOne(Assignment{Pip: pip(t, 3), Point: p(0, 0)})
	if status != Violated {
		t.Fatalf("status = %v, want Violated", status)
	}
}

func TestReduceMoreThanCollapsesAtOnePoint(t *testing.T) {
	t.Parallel()
	c, err := NewMoreThan(6, []grid.Point{p(0, 0), p(1, 0)})
	if err != nil {
		t.Fatal(err)
	}
	status, next := c.ReduceOne(Assignment{Pip: pip(t, 1), Point: p(0, 0)})
	if status != Updated || next.Kind != KindExactly || next.Target != 6 {
		t.Fatalf("expected collapse to Exactly(6): status=%v kind=%v target=%d", status, next.Kind, next.Target)
	}
}

func TestReduceMoreThanSatisfiedAtLastPoint(t *testing.T) {
	t.Parallel()
	c, err := NewMoreThan(2, []grid.Point{p(0, 0)})
	if err != nil {
		t.Fatal(err)
	}
	status, _ := c.ReduceOne(Assignment{Pip: pip(t, 5), Point: p(0, 0)})
	if status != Satisfied {
		t.Fatalf("status = %v, want Satisfied", status)
	}
}

func TestReduceConstraintListDropsSatisfied(t *testing.T) {
	t.Parallel()
	c1, _ := NewExactly(3, []grid.Point{p(0, 0)})
	c2, _ := NewExactly(9, []grid.Point{p(1, 0), p(1, 1)})
	next, ok := ReduceConstraintList([]*Constraint{c1, c2}, []Assignment{{Pip: pip(t, 3), Point: p(0, 0)}})
	if !ok {
		t.Fatal("expected ok")
	}
	if len(next) != 1 || next[0].Kind != KindExactly {
		t.Fatalf("unexpected remaining constraints: %v", next)
	}
}

func TestReduceConstraintListPropagatesViolation(t *testing.T) {
	t.Parallel()
	c1, _ := NewExactly(1, []grid.Point{p(0, 0)})
	_, ok := ReduceConstraintList([]*Constraint{c1}, []Assignment{{Pip: pip(t, 4), Point: p(0, 0)}})
	if ok {
		t.Fatal("expected violation to propagate as ok=false")
	}
}
