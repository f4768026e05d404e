package main

import (
	"context"
	"fmt"
	"os"

	"github.com/pipslab/pips/loader"
	"github.com/pipslab/pips/render"
	"github.com/pipslab/pips/solver"
)

func runSolve(ctx context.Context, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	g, err := loader.ParseText(string(data))
	if err != nil {
		return err
	}

	originalConstraints := g.Constraints
	sol, err := solver.Solve(ctx, g, nil)
	if err != nil {
		return err
	}

	render.Solution(os.Stdout, sol.Placements, originalConstraints)
	fmt.Printf("solved with %d placements\n", len(sol.Placements))
	return nil
}

func runCount(ctx context.Context, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	g, err := loader.ParseText(string(data))
	if err != nil {
		return err
	}

	count, err := solver.CountSolutions(ctx, g, nil)
	if err != nil {
		return err
	}
	fmt.Printf("%d solutions\n", count)
	return nil
}
