package loader

import (
	"encoding/json"
	"fmt"

	"github.com/pipslab/pips/board"
	"github.com/pipslab/pips/game"
	"github.com/pipslab/pips/grid"
	"github.com/pipslab/pips/piece"
)

// Difficulty names one of a puzzle JSON document's top-level entries.
type Difficulty string

const (
	Easy   Difficulty = "easy"
	Medium Difficulty = "medium"
	Hard   Difficulty = "hard"
)

// PuzzleDocument is the NYT-style puzzle JSON document: one GameDef
// per difficulty.
type PuzzleDocument map[Difficulty]GameDef

// GameDef is one difficulty's puzzle definition.
type GameDef struct {
	Constructors string   `json:"constructors,omitempty"`
	Dominoes     [][2]int `json:"dominoes"`
	Regions      []Region `json:"regions"`
	ID           *uint64  `json:"id,omitempty"`
}

// Region is one constraint region in a GameDef. Indices are (row,
// column) pairs, transposed against the engine's (x, y) convention on
// load.
type Region struct {
	Indices [][2]uint32 `json:"indices"`
	Target  *uint32     `json:"target,omitempty"`
	Type    string      `json:"type"`
}

// ParsePuzzleJSON decodes a full multi-difficulty puzzle document.
func ParsePuzzleJSON(data []byte) (PuzzleDocument, error) {
	var doc PuzzleDocument
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidFormat, err)
	}
	return doc, nil
}

// ToGame reduces one GameDef to a Game. The NYT format never states
// board geometry directly: the board is inferred as the union of every
// region's indices, transposed from (row, column) to (x, y).
func (def GameDef) ToGame() (*game.Game, error) {
	var boardPoints []grid.Point
	for _, r := range def.Regions {
		for _, rc := range r.Indices {
			row, col := int(rc[0]), int(rc[1])
			boardPoints = append(boardPoints, grid.Point{X: col, Y: row})
		}
	}
	if len(boardPoints) == 0 {
		return nil, fmt.Errorf("%w: game has no region indices to infer a board from", ErrInvalidFormat)
	}
	b := board.New(boardPoints...)

	pieces := make([]piece.Piece, 0, len(def.Dominoes))
	for _, d := range def.Dominoes {
		a, err := grid.NewPip(d[0])
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrInvalidFormat, err)
		}
		bb, err := grid.NewPip(d[1])
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrInvalidFormat, err)
		}
		pc, err := piece.New(piece.Lookup(piece.Domino), []grid.Pip{a, bb})
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrInvalidFormat, err)
		}
		pieces = append(pieces, pc)
	}

	constraints := make([]*game.Constraint, 0, len(def.Regions))
	for _, r := range def.Regions {
		if r.Type == "empty" {
			continue
		}
		points := make([]grid.Point, len(r.Indices))
		for i, rc := range r.Indices {
			row, col := int(rc[0]), int(rc[1])
			points[i] = grid.Point{X: col, Y: row}
		}
		target := 0
		if r.Target != nil {
			target = int(*r.Target)
		}
		var c *game.Constraint
		var err error
		switch r.Type {
		case "equals":
			c, err = game.NewAllSame(nil, points)
		case "unequal":
			c, err = game.NewAllDifferent(nil, points)
		case "sum":
			c, err = game.NewExactly(target, points)
		case "greater":
			c, err = game.NewMoreThan(target, points)
		case "less":
			c, err = game.NewLessThan(target, points)
		default:
			return nil, fmt.Errorf("%w: unknown region type %q", ErrInvalidFormat, r.Type)
		}
		if err != nil {
			return nil, fmt.Errorf("%w: region %v: %v", ErrInvalidFormat, r.Indices, err)
		}
		constraints = append(constraints, c)
	}

	return game.New(b, pieces, constraints), nil
}
