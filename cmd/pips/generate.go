package main

import (
	"fmt"
	"os"

	"github.com/pipslab/pips/board"
	"github.com/pipslab/pips/game"
	"github.com/pipslab/pips/generator"
	"github.com/pipslab/pips/grid"
	"github.com/pipslab/pips/loader"
	"github.com/pipslab/pips/piece"
)

// defaultGenerateBoard is a 4x4 square, big enough to exercise several
// piece shapes without a long generation tail.
func defaultGenerateBoard() *board.Board {
	var points []grid.Point
	for y := 0; y < 4; y++ {
		for x := 0; x < 4; x++ {
			points = append(points, grid.Point{X: x, Y: y})
		}
	}
	return board.New(points...)
}

func runGenerate(seed uint64) error {
	cfg := generator.Config{
		Board: defaultGenerateBoard(),
		PieceRule: generator.PieceRule{
			Alphabet: []piece.ShapeID{piece.Domino, piece.TriominoI, piece.TriominoL, piece.TetrominoO},
		},
		ConstraintRule: generator.ConstraintRule{
			Shapes: []piece.ShapeID{piece.Domino, piece.TriominoI},
		},
		CoverageTarget: 0.5,
		Seed:           seed,
	}

	generated, err := generator.Generate(cfg)
	if err != nil {
		return err
	}

	g := game.New(generated.Board, generated.Pieces, generated.Constraints)
	fmt.Fprint(os.Stdout, loader.WriteText(g))
	return nil
}
