package game

import "github.com/pipslab/pips/grid"

// Status is the outcome of reducing a single constraint by one
// assignment. It is total: ReduceOne always returns exactly one case
// (reduction is total: every call produces a definite outcome).
type Status uint8

const (
	// Unchanged means the assignment's point was not in the
	// constraint's point set; the constraint is returned as-is.
	Unchanged Status = iota
	// Updated means the constraint was rewritten but still has
	// outstanding points.
	Updated
	// Satisfied means the constraint's last contributing point was
	// resolved; it should be dropped from the remaining constraint list.
	Satisfied
	// Violated means the assignment makes the constraint impossible to
	// satisfy; the branch that produced it is a dead end.
	Violated
)

// Assignment pins one pip to one board point, derived from a Placement.
type Assignment struct {
	Pip   grid.Pip
	Point grid.Point
}

// ReduceOne rewrites c after a.Pip is pinned to a.Point, per the
// single-assignment rules for c's variant. It never mutates c; on
// Updated it returns a freshly allocated constraint.
func (c *Constraint) ReduceOne(a Assignment) (Status, *Constraint) {
	if _, onConstraint := c.Points[a.Point]; !onConstraint {
		return Unchanged, c
	}

	switch c.Kind {
	case KindAllDifferent:
		return c.reduceAllDifferent(a)
	case KindAllSame:
		return c.reduceAllSame(a)
	case KindExactly:
		return c.reduceExactly(a)
	case KindLessThan:
		return c.reduceLessThan(a)
	case KindMoreThan:
		return c.reduceMoreThan(a)
	default:
		return Violated, nil
	}
}

func withoutPoint(points map[grid.Point]struct{}, remove grid.Point) map[grid.Point]struct{} {
	next := make(map[grid.Point]struct{}, len(points)-1)
	for p := range points {
		if p == remove {
			continue
		}
		next[p] = struct{}{}
	}
	return next
}

func (c *Constraint) reduceAllDifferent(a Assignment) (Status, *Constraint) {
	if _, excluded := c.Excluded[a.Pip]; excluded {
		return Violated, nil
	}
	next := c.clone()
	next.Excluded[a.Pip] = struct{}{}
	next.Points = withoutPoint(c.Points, a.Point)
	if len(next.Points) == 0 {
		return Satisfied, nil
	}
	return Updated, next
}

func (c *Constraint) reduceAllSame(a Assignment) (Status, *Constraint) {
	if c.Expected != nil && *c.Expected != a.Pip {
		return Violated, nil
	}
	wasLen := len(c.Points)
	newExpected := a.Pip
	if c.Expected != nil {
		newExpected = *c.Expected
	}
	nextPoints := withoutPoint(c.Points, a.Point)

	if wasLen == 1 {
		return Satisfied, nil
	}
	if wasLen == 2 {
		return Updated, &Constraint{Kind: KindExactly, Points: nextPoints, Target: int(newExpected)}
	}
	e := newExpected
	return Updated, &Constraint{Kind: KindAllSame, Points: nextPoints, Expected: &e}
}

func (c *Constraint) reduceExactly(a Assignment) (Status, *Constraint) {
	if len(c.Points) == 1 {
		if int(a.Pip) == c.Target {
			return Satisfied, nil
		}
		return Violated, nil
	}
	if int(a.Pip) > c.Target {
		return Violated, nil
	}
	nextTarget := c.Target - int(a.Pip)
	nextPoints := withoutPoint(c.Points, a.Point)
	if nextTarget > grid.MaxPip*len(nextPoints) {
		return Violated, nil
	}
	return Updated, &Constraint{Kind: KindExactly, Points: nextPoints, Target: nextTarget}
}

func (c *Constraint) reduceLessThan(a Assignment) (Status, *Constraint) {
	if int(a.Pip) >= c.Target {
		return Violated, nil
	}
	nextTarget := c.Target - int(a.Pip)
	nextPoints := withoutPoint(c.Points, a.Point)
	if len(nextPoints) == 0 {
		return Satisfied, nil
	}
	if len(nextPoints) == 1 && nextTarget == 1 {
		return Updated, &Constraint{Kind: KindExactly, Points: nextPoints, Target: 0}
	}
	return Updated, &Constraint{Kind: KindLessThan, Points: nextPoints, Target: nextTarget}
}

func (c *Constraint) reduceMoreThan(a Assignment) (Status, *Constraint) {
	if len(c.Points) == 1 {
		if int(a.Pip) > c.Target {
			return Satisfied, nil
		}
		return Violated, nil
	}
	nextTarget := c.Target - int(a.Pip)
	if nextTarget < 0 {
		nextTarget = 0
	}
	nextPoints := withoutPoint(c.Points, a.Point)
	if len(nextPoints) == 1 && nextTarget == 5 {
		return Updated, &Constraint{Kind: KindExactly, Points: nextPoints, Target: 6}
	}
	return Updated, &Constraint{Kind: KindMoreThan, Points: nextPoints, Target: nextTarget}
}

// ReducePlacement applies ReduceOne across every assignment in order,
// short-circuiting on the first violation. ok is false iff some
// assignment violated c. Once an assignment satisfies c, it returns
// satisfied at once without looking at the remaining assignments.
func (c *Constraint) ReducePlacement(assignments []Assignment) (result *Constraint, satisfied, ok bool) {
	cur := c
	for _, a := range assignments {
		status, next := cur.ReduceOne(a)
		switch status {
		case Violated:
			return nil, false, false
		case Satisfied:
			return nil, true, true
		case Updated, Unchanged:
			cur = next
		}
	}
	return cur, false, true
}

// ReduceConstraintList applies a placement's assignments across every
// constraint in cs, dropping any that become satisfied. ok is false iff
// any constraint is violated.
func ReduceConstraintList(cs []*Constraint, assignments []Assignment) (next []*Constraint, ok bool) {
	next = make([]*Constraint, 0, len(cs))
	for _, c := range cs {
		result, satisfied, ok := c.ReducePlacement(assignments)
		if !ok {
			return nil, false
		}
		if satisfied {
			continue
		}
		next = append(next, result)
	}
	return next, true
}
