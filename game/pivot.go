package game

import (
	"github.com/pipslab/pips/grid"
)

// Pivot selects the board cell the solver should branch on next. ok is
// false only when the board is empty (a won or malformed game).
//
// The rule: restrict to the smallest connected component
// of the board, then within it prefer the point belonging to the
// constraint with the fewest remaining points (ties broken by least
// slack, then by order in g.Constraints), taking that constraint's
// first point in (y, x) order; if no constraint touches the component,
// fall back to the component's first point in (y, x) order.
func Pivot(g *Game) (grid.Point, bool) {
	components := g.Board.ConnectedComponents()
	if len(components) == 0 {
		return grid.Point{}, false
	}

	smallest := components[0]
	for _, c := range components[1:] {
		if c.Len() < smallest.Len() {
			smallest = c
		}
	}

	inComponent := make(map[grid.Point]struct{}, smallest.Len())
	for _, pt := range smallest.Iterate() {
		inComponent[pt] = struct{}{}
	}

	var best *Constraint
	bestSlack := 0
	for _, c := range g.Constraints {
		touches := false
		for pt := range c.Points {
			if _, ok := inComponent[pt]; ok {
				touches = true
				break
			}
		}
		if !touches {
			continue
		}
		slack := constraintSlack(c)
		if best == nil || len(c.Points) < len(best.Points) ||
			(len(c.Points) == len(best.Points) && slack < bestSlack) {
			best = c
			bestSlack = slack
		}
	}

	if best == nil {
		return smallest.Iterate()[0], true
	}

	var pivot grid.Point
	found := false
	for _, pt := range best.SortedPoints() {
		if _, ok := inComponent[pt]; ok {
			pivot = pt
			found = true
			break
		}
	}
	if !found {
		return smallest.Iterate()[0], true
	}
	return pivot, true
}

// constraintSlack measures how little room a constraint has left,
// lower meaning tighter. AllDifferent and AllSame constraints have no
// numeric target and sort after numeric ones at equal point-count.
func constraintSlack(c *Constraint) int {
	maxSum := grid.MaxPip * len(c.Points)
	switch c.Kind {
	case KindExactly:
		return grid.Min(c.Target, maxSum-c.Target)
	case KindLessThan:
		return c.Target - 1
	case KindMoreThan:
		return maxSum - c.Target - 1
	default:
		return maxSum
	}
}
