// Package solver implements search over a game.Game: finding one
// solution (DFS with reduction-driven pruning) or counting all of
// them, plus an exact-cover-based alternate strategy in dlx.go.
package solver

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/pipslab/pips/game"
	"github.com/pipslab/pips/grid"
)

// ErrNoSolution is returned by Solve when the search space is
// exhausted (or the clock runs out) without reaching a won state.
var ErrNoSolution = errors.New("no solution found")

// Strategy selects which search algorithm Solve runs.
type Strategy uint8

const (
	// StrategyDFS walks pivot-driven placements directly against the
	// live constraint set, pruning as soon as any constraint is
	// violated.
	StrategyDFS Strategy = iota
	// StrategyExactCover builds an exact-cover matrix over tiling only,
	// then re-validates each cover's pip assignment against the
	// constraints as a second pass.
	StrategyExactCover
)

// Config tunes a search run.
type Config struct {
	Strategy Strategy
	Timeout  time.Duration
	MaxNodes uint64
	Logger   func(...any)
	Debug    bool
}

// DefaultLogger prints to stdout, matching the engine's default.
func DefaultLogger(a ...any) {
	fmt.Println(a...)
}

// Solution is an ordered list of placements that plays a Game to a won
// state.
type Solution struct {
	Placements []game.Placement
}

// Solve searches g for one solution under cfg.
func Solve(ctx context.Context, g *game.Game, cfg *Config) (*Solution, error) {
	if cfg == nil {
		cfg = &Config{}
	}
	if cfg.Logger == nil {
		cfg.Logger = DefaultLogger
	}
	timeout := cfg.Timeout
	if timeout == 0 && cfg.MaxNodes == 0 {
		timeout = DefaultTimeout
	}
	ctx, clock := NewClock(ctx, timeout, cfg.MaxNodes)
	defer clock.Stop()

	var placements []game.Placement
	var ok bool
	switch cfg.Strategy {
	case StrategyExactCover:
		placements, ok = solveExactCover(ctx, g, clock)
	default:
		s := &dfsSearch{cfg: cfg, clock: clock}
		placements, ok = s.search(ctx, g, nil)
	}

	if !ok {
		if err := ctx.Err(); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrNoSolution, err)
		}
		return nil, ErrNoSolution
	}
	if cfg.Debug {
		cfg.Logger(fmt.Sprintf("solved in %d placements", len(placements)))
	}
	return &Solution{Placements: placements}, nil
}

// CountSolutions exhausts the entire search space and reports how many
// distinct placement sequences reach a won state. It never returns
// early on the first hit.
func CountSolutions(ctx context.Context, g *game.Game, cfg *Config) (int, error) {
	if cfg == nil {
		cfg = &Config{}
	}
	timeout := cfg.Timeout
	if timeout == 0 && cfg.MaxNodes == 0 {
		timeout = DefaultTimeout
	}
	ctx, clock := NewClock(ctx, timeout, cfg.MaxNodes)
	defer clock.Stop()

	s := &dfsSearch{cfg: cfg, clock: clock}
	count := 0
	s.count(ctx, g, &count)
	if ctx.Err() != nil {
		return count, fmt.Errorf("count incomplete: %w", ctx.Err())
	}
	return count, nil
}

type dfsSearch struct {
	cfg      *Config
	clock    *Clock
	explored uint64
}

func (s *dfsSearch) search(ctx context.Context, g *game.Game, trail []game.Placement) ([]game.Placement, bool) {
	if ctx.Err() != nil {
		return nil, false
	}
	s.explored++
	if s.clock.DoneByNodes(s.explored) {
		return nil, false
	}
	if g.IsWon() {
		out := make([]game.Placement, len(trail))
		copy(out, trail)
		return out, true
	}
	if g.Board.IsEmpty() {
		return nil, false
	}
	pivot, ok := game.Pivot(g)
	if !ok {
		return nil, false
	}

	for _, pl := range candidatePlacements(g, pivot) {
		next, err := game.Play(g, pl)
		if err != nil {
			continue
		}
		trail = append(trail, pl)
		if result, ok := s.search(ctx, next, trail); ok {
			return result, true
		}
		trail = trail[:len(trail)-1]
	}
	return nil, false
}

func (s *dfsSearch) count(ctx context.Context, g *game.Game, total *int) {
	if ctx.Err() != nil {
		return
	}
	s.explored++
	if s.clock.DoneByNodes(s.explored) {
		return
	}
	if g.IsWon() {
		*total++
		return
	}
	if g.Board.IsEmpty() {
		return
	}
	pivot, ok := game.Pivot(g)
	if !ok {
		return
	}
	for _, pl := range candidatePlacements(g, pivot) {
		next, err := game.Play(g, pl)
		if err != nil {
			continue
		}
		s.count(ctx, next, total)
		if ctx.Err() != nil {
			return
		}
	}
}

// candidatePlacements enumerates every distinct placement of a
// piece-orientation-anchor-pip-order combination covering pivot,
// deduplicated over pieces that are structurally identical (same shape
// and pip multiset in the same order) so the same branch is never
// explored twice.
func candidatePlacements(g *game.Game, pivot grid.Point) []game.Placement {
	var out []game.Placement
	seenPiece := make(map[string]struct{}, len(g.Pieces))
	for _, pc := range g.Pieces {
		key := pc.String()
		if _, ok := seenPiece[key]; ok {
			continue
		}
		seenPiece[key] = struct{}{}

		for oi := 0; oi < pc.Shape.OrientationCount(); oi++ {
			offsets := pc.Shape.Orientation(oi)
			seenAnchor := make(map[grid.Point]struct{}, len(offsets))
			for _, off := range offsets {
				anchor := pivot.Sub(off)
				if _, ok := seenAnchor[anchor]; ok {
					continue
				}
				seenAnchor[anchor] = struct{}{}

				for _, pipOrder := range pc.UniquePipPermutations() {
					pl, err := game.NewPlacement(pc, anchor, oi, pipOrder)
					if err != nil {
						continue
					}
					out = append(out, pl)
				}
			}
		}
	}
	return out
}
