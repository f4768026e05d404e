package generator

import (
	"github.com/pipslab/pips/game"
	"github.com/pipslab/pips/grid"
	"github.com/pipslab/pips/piece"
)

// variantKinds is the fixed draw order for constraint-variant
// selection: a constraint variant is chosen uniformly at random for
// each region.
var variantKinds = []game.Kind{
	game.KindAllSame,
	game.KindAllDifferent,
	game.KindExactly,
	game.KindLessThan,
	game.KindMoreThan,
}

// placeConstraintRegions draws shapes from cfg.ConstraintRule and lays
// them over non-overlapping cells of cfg.Board until the requested
// coverage fraction is reached, assigning each region a random variant
// and pip values and recording them into pipOf.
func placeConstraintRegions(cfg Config, rng *PseudoRand, pipOf map[grid.Point]grid.Pip) ([]*game.Constraint, error) {
	total := cfg.Board.Len()
	targetCovered := int(cfg.CoverageTarget * float64(total))
	if targetCovered <= 0 {
		return nil, nil
	}

	budget := retryBudgetPerCell * total
	claimed := make(map[grid.Point]struct{}, total)
	var constraints []*game.Constraint

	minX, minY, maxX, maxY, haveBounds := cfg.Board.Bounds()
	if !haveBounds {
		return nil, nil
	}

	for len(claimed) < targetCovered && budget > 0 {
		budget--
		shapeID := drawConstraintShape(cfg.ConstraintRule, cfg.PipSelection, rng)
		shape := piece.Lookup(shapeID)
		if shape == nil {
			continue
		}
		oi := rng.Intn(shape.OrientationCount())
		offsets := shape.Orientation(oi)

		width := maxX - minX + 1
		height := maxY - minY + 1
		anchor := grid.Point{X: minX + rng.Intn(width), Y: minY + rng.Intn(height)}

		cells := make([]grid.Point, len(offsets))
		ok := true
		for i, off := range offsets {
			c := anchor.Add(off)
			if !cfg.Board.Contains(c) {
				ok = false
				break
			}
			if _, taken := claimed[c]; taken {
				ok = false
				break
			}
			cells[i] = c
		}
		if !ok {
			continue
		}

		c, err := buildRandomConstraint(cells, rng)
		if err != nil {
			continue
		}
		for point, pip := range c.pips {
			pipOf[point] = pip
			claimed[point] = struct{}{}
		}
		constraints = append(constraints, c.constraint)
	}

	if len(claimed) < targetCovered {
		return nil, ErrCoverageUnreachable
	}
	return constraints, nil
}

func drawConstraintShape(rule ConstraintRule, mode PipSelectionMode, rng *PseudoRand) piece.ShapeID {
	if len(rule.Shapes) == 0 {
		return piece.Monomino
	}
	if mode == UniformOverShapes {
		return rule.Shapes[rng.Intn(len(rule.Shapes))]
	}

	bySize := make(map[int][]piece.ShapeID)
	var sizes []int
	for _, id := range rule.Shapes {
		shape := piece.Lookup(id)
		if shape == nil {
			continue
		}
		if _, ok := bySize[shape.CellCount]; !ok {
			sizes = append(sizes, shape.CellCount)
		}
		bySize[shape.CellCount] = append(bySize[shape.CellCount], id)
	}
	if len(sizes) == 0 {
		return rule.Shapes[rng.Intn(len(rule.Shapes))]
	}
	size := sizes[rng.Intn(len(sizes))]
	candidates := bySize[size]
	return candidates[rng.Intn(len(candidates))]
}

type regionConstraint struct {
	constraint *game.Constraint
	pips       map[grid.Point]grid.Pip
}

// buildRandomConstraint picks a satisfiable variant for cells and draws
// pip values for each cell consistent with it.
func buildRandomConstraint(cells []grid.Point, rng *PseudoRand) (*regionConstraint, error) {
	order := append([]game.Kind(nil), variantKinds...)
	rng.Shuffle(len(order), func(i, j int) { order[i], order[j] = order[j], order[i] })

	for _, kind := range order {
		if kind == game.KindAllDifferent && len(cells) > grid.MaxPip+1 {
			continue
		}
		switch kind {
		case game.KindAllSame:
			v := grid.Pip(rng.Intn(grid.MaxPip + 1))
			e := v
			c, err := game.NewAllSame(&e, cells)
			if err != nil {
				continue
			}
			pips := make(map[grid.Point]grid.Pip, len(cells))
			for _, pt := range cells {
				pips[pt] = v
			}
			return &regionConstraint{constraint: c, pips: pips}, nil

		case game.KindAllDifferent:
			values := distinctPips(len(cells), rng)
			c, err := game.NewAllDifferent(nil, cells)
			if err != nil {
				continue
			}
			pips := make(map[grid.Point]grid.Pip, len(cells))
			for i, pt := range cells {
				pips[pt] = values[i]
			}
			return &regionConstraint{constraint: c, pips: pips}, nil

		case game.KindExactly:
			maxSum := grid.MaxPip * len(cells)
			target := rng.Intn(maxSum + 1)
			values := drawPipsSummingTo(len(cells), target, rng)
			c, err := game.NewExactly(target, cells)
			if err != nil {
				continue
			}
			return &regionConstraint{constraint: c, pips: cellPips(cells, values)}, nil

		case game.KindLessThan:
			maxSum := grid.MaxPip * len(cells)
			target := 1 + rng.Intn(maxSum)
			sum := rng.Intn(target) // sum in [0, target-1]
			values := drawPipsSummingTo(len(cells), sum, rng)
			c, err := game.NewLessThan(target, cells)
			if err != nil {
				continue
			}
			return &regionConstraint{constraint: c, pips: cellPips(cells, values)}, nil

		case game.KindMoreThan:
			maxSum := grid.MaxPip * len(cells)
			if maxSum == 0 {
				continue
			}
			target := rng.Intn(maxSum)
			sum := target + 1 + rng.Intn(maxSum-target)
			values := drawPipsSummingTo(len(cells), sum, rng)
			c, err := game.NewMoreThan(target, cells)
			if err != nil {
				continue
			}
			return &regionConstraint{constraint: c, pips: cellPips(cells, values)}, nil
		}
	}
	return nil, game.ErrInvalidConstraint
}

func cellPips(cells []grid.Point, values []grid.Pip) map[grid.Point]grid.Pip {
	out := make(map[grid.Point]grid.Pip, len(cells))
	for i, pt := range cells {
		out[pt] = values[i]
	}
	return out
}

// distinctPips draws n distinct values from [0, MaxPip] in random order.
func distinctPips(n int, rng *PseudoRand) []grid.Pip {
	pool := make([]grid.Pip, grid.MaxPip+1)
	for i := range pool {
		pool[i] = grid.Pip(i)
	}
	rng.Shuffle(len(pool), func(i, j int) { pool[i], pool[j] = pool[j], pool[i] })
	return pool[:n]
}

// drawPipsSummingTo draws n pip values in [0, MaxPip] summing exactly
// to target (which must be achievable, i.e. 0 <= target <= MaxPip*n),
// distributing the total randomly across cells.
func drawPipsSummingTo(n, target int, rng *PseudoRand) []grid.Pip {
	out := make([]grid.Pip, n)
	remaining := target
	for i := 0; i < n; i++ {
		cellsLeft := n - i - 1
		lo := remaining - grid.MaxPip*cellsLeft
		if lo < 0 {
			lo = 0
		}
		hi := remaining
		if hi > grid.MaxPip {
			hi = grid.MaxPip
		}
		v := lo
		if hi > lo {
			v = lo + rng.Intn(hi-lo+1)
		}
		out[i] = grid.Pip(v)
		remaining -= v
	}
	return out
}
