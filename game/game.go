package game

import (
	"errors"
	"fmt"

	"github.com/pipslab/pips/board"
	"github.com/pipslab/pips/piece"
)

// ErrPieceNotInGame is returned by Play when the placement's piece is
// not (by pointer identity of its Shape, matched against the game's
// remaining pieces by value) available to place.
var ErrPieceNotInGame = errors.New("piece not available in game")

// ErrCellsOffBoard wraps the board.ErrPointNotOnBoard a placement's
// cells produce when they fall outside the board's remaining cells.
var ErrCellsOffBoard = errors.New("placement cells not all on board")

// ErrConstraintViolated is returned by Play when a placement's
// assignments reduce some constraint to Violated.
var ErrConstraintViolated = errors.New("placement violates a constraint")

// Game is the full state a solver searches over: the board cells still
// needing coverage, the pieces still needing placement, and the
// constraints still needing satisfaction.
type Game struct {
	Board       *board.Board
	Pieces      []piece.Piece
	Constraints []*Constraint
}

// New constructs a Game from its three components. It does not validate
// cross-consistency (e.g. that constraint points lie on the board) —
// callers that build a Game from user input should validate with
// loaders before handing it to a solver.
func New(b *board.Board, pieces []piece.Piece, constraints []*Constraint) *Game {
	return &Game{Board: b, Pieces: pieces, Constraints: constraints}
}

// IsWon reports whether g is a solved terminal state: no board cells,
// no pieces, and no constraints remain.
func (g *Game) IsWon() bool {
	return g.Board.IsEmpty() && len(g.Pieces) == 0 && len(g.Constraints) == 0
}

// Play applies pl to g, returning the resulting Game. The transition is
// all-or-nothing: it fails without mutating g if the
// piece isn't available, any cell falls off the board, or any
// constraint is violated.
func Play(g *Game, pl Placement) (*Game, error) {
	pieceIdx := -1
	for i, have := range g.Pieces {
		if have.Equal(pl.Piece) {
			pieceIdx = i
			break
		}
	}
	if pieceIdx == -1 {
		return nil, fmt.Errorf("%w: %s", ErrPieceNotInGame, pl.Piece)
	}

	nextBoard, err := g.Board.RemovePoints(pl.Cells())
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrCellsOffBoard, err)
	}

	assignments := pl.Assignments()
	nextConstraints, ok := ReduceConstraintList(g.Constraints, assignments)
	if !ok {
		return nil, ErrConstraintViolated
	}

	nextPieces := make([]piece.Piece, 0, len(g.Pieces)-1)
	nextPieces = append(nextPieces, g.Pieces[:pieceIdx]...)
	nextPieces = append(nextPieces, g.Pieces[pieceIdx+1:]...)

	return &Game{Board: nextBoard, Pieces: nextPieces, Constraints: nextConstraints}, nil
}
