package game

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pipslab/pips/board"
	"github.com/pipslab/pips/grid"
	"github.com/pipslab/pips/piece"
)

func TestPlayAllOrNothingOnOffBoardCells(t *testing.T) {
	t.Parallel()
	b := board.New(p(0, 0), p(1, 0))
	pc := mustDomino(t, 3, 4)
	g := New(b, []piece.Piece{pc}, nil)

	// anchor (5,5) places the domino entirely off-board.
	pl, err := NewPlacement(pc, p(5, 5), 0, pc.Pips)
	require.NoError(t, err)

	_, err = Play(g, pl)
	assert.Error(t, err)
	assert.Equal(t, 2, g.Board.Len(), "original game mutated on failed Play")
	assert.Len(t, g.Pieces, 1, "original game mutated on failed Play")
}

func TestPlayRemovesPieceAndBoardCells(t *testing.T) {
	t.Parallel()
	b := board.New(p(0, 0), p(1, 0))
	pc := mustDomino(t, 3, 4)
	g := New(b, []piece.Piece{pc}, nil)

	pl, err := NewPlacement(pc, p(0, 0), 0, pc.Pips)
	require.NoError(t, err)

	next, err := Play(g, pl)
	require.NoError(t, err)
	assert.True(t, next.Board.IsEmpty())
	assert.Empty(t, next.Pieces)
	assert.True(t, next.IsWon(), "expected IsWon after covering board with no constraints left")
}

func TestPlayViolatesConstraintLeavesGameUntouched(t *testing.T) {
	t.Parallel()
	b := board.New(p(0, 0), p(1, 0))
	pc := mustDomino(t, 3, 4)
	c, err := NewExactly(1, []grid.Point{p(0, 0)})
	require.NoError(t, err)
	g := New(b, []piece.Piece{pc}, []*Constraint{c})

	pl, err := NewPlacement(pc, p(0, 0), 0, pc.Pips)
	require.NoError(t, err)

	_, err = Play(g, pl)
	assert.Error(t, err)
	assert.Equal(t, 2, g.Board.Len(), "original game mutated on constraint violation")
	assert.Len(t, g.Constraints, 1, "original game mutated on constraint violation")
}

func TestPlayUnknownPiece(t *testing.T) {
	t.Parallel()
	b := board.New(p(0, 0), p(1, 0))
	inGame := mustDomino(t, 3, 4)
	notInGame := mustDomino(t, 1, 2)
	g := New(b, []piece.Piece{inGame}, nil)

	pl, err := NewPlacement(notInGame, p(0, 0), 0, notInGame.Pips)
	require.NoError(t, err)

	_, err = Play(g, pl)
	assert.Error(t, err)
}
