package piece

import "github.com/pipslab/pips/grid"

// ShapeID names an entry in the process-global shape catalog.
type ShapeID string

const (
	Monomino ShapeID = "monomino"
	Domino   ShapeID = "domino"

	TriominoI ShapeID = "3I"
	TriominoL ShapeID = "3L"

	TetrominoI     ShapeID = "4I"
	TetrominoLPlus ShapeID = "4L+"
	TetrominoLMin  ShapeID = "4L-"
	TetrominoO     ShapeID = "4O"
	TetrominoSPlus ShapeID = "4S+"
	TetrominoSMin  ShapeID = "4S-"
	TetrominoT     ShapeID = "4T"

	PentominoFPlus ShapeID = "5F+"
	PentominoFMin  ShapeID = "5F-"
	PentominoI     ShapeID = "5I"
	PentominoLPlus ShapeID = "5L+"
	PentominoLMin  ShapeID = "5L-"
	PentominoNPlus ShapeID = "5N+"
	PentominoNMin  ShapeID = "5N-"
	PentominoPPlus ShapeID = "5P+"
	PentominoPMin  ShapeID = "5P-"
	PentominoT     ShapeID = "5T"
	PentominoU     ShapeID = "5U"
	PentominoV     ShapeID = "5V"
	PentominoW     ShapeID = "5W"
	PentominoX     ShapeID = "5X"
	PentominoYPlus ShapeID = "5Y+"
	PentominoYMin  ShapeID = "5Y-"
	PentominoZPlus ShapeID = "5Z+"
	PentominoZMin  ShapeID = "5Z-"
)

// DominoCatalog lists the shapes available to the domino-only game
// variant.
var DominoCatalog = []ShapeID{Domino}

// FullCatalog lists every shape available to the full polyomino
// variant: monomino through pentomino families.
var FullCatalog = []ShapeID{
	Monomino, Domino,
	TriominoI, TriominoL,
	TetrominoI, TetrominoLPlus, TetrominoLMin, TetrominoO, TetrominoSPlus, TetrominoSMin, TetrominoT,
	PentominoFPlus, PentominoFMin, PentominoI, PentominoLPlus, PentominoLMin,
	PentominoNPlus, PentominoNMin, PentominoPPlus, PentominoPMin, PentominoT,
	PentominoU, PentominoV, PentominoW, PentominoX, PentominoYPlus, PentominoYMin,
	PentominoZPlus, PentominoZMin,
}

type shapeDef struct {
	base   []grid.Point
	chiral bool
}

var catalogDefs = map[ShapeID]shapeDef{
	Monomino: {base: pts(0, 0)},
	Domino:   {base: pts(0, 0, 1, 0)},

	TriominoI: {base: pts(0, 0, 1, 0, 2, 0)},
	TriominoL: {base: pts(0, 0, 1, 0, 0, 1), chiral: true},

	TetrominoI:     {base: pts(0, 0, 1, 0, 2, 0, 3, 0)},
	TetrominoO:     {base: pts(0, 0, 1, 0, 0, 1, 1, 1)},
	TetrominoT:     {base: pts(0, 0, 1, 0, 2, 0, 1, 1)},
	TetrominoSPlus: {base: pts(1, 0, 2, 0, 0, 1, 1, 1), chiral: true},
	TetrominoSMin:  {base: pts(0, 0, 1, 0, 1, 1, 2, 1), chiral: true},
	TetrominoLPlus: {base: pts(0, 0, 0, 1, 0, 2, 1, 0), chiral: true},
	TetrominoLMin:  {base: pts(0, 0, 0, 1, 0, 2, 1, 2), chiral: true},

	PentominoI:     {base: pts(0, 0, 1, 0, 2, 0, 3, 0, 4, 0)},
	PentominoX:     {base: pts(1, 0, 0, 1, 1, 1, 2, 1, 1, 2)},
	PentominoT:     {base: pts(0, 0, 1, 0, 2, 0, 1, 1, 1, 2)},
	PentominoU:     {base: pts(0, 0, 2, 0, 0, 1, 1, 1, 2, 1)},
	PentominoV:     {base: pts(0, 0, 0, 1, 0, 2, 1, 2, 2, 2)},
	PentominoW:     {base: pts(0, 0, 0, 1, 1, 1, 1, 2, 2, 2)},
	PentominoZPlus: {base: pts(0, 0, 1, 0, 1, 1, 1, 2, 2, 2), chiral: true},
	PentominoZMin:  {base: pts(2, 0, 1, 0, 1, 1, 1, 2, 0, 2), chiral: true},
	PentominoFPlus: {base: pts(1, 0, 2, 0, 0, 1, 1, 1, 1, 2), chiral: true},
	PentominoFMin:  {base: pts(0, 0, 1, 0, 1, 1, 2, 1, 1, 2), chiral: true},
	PentominoLPlus: {base: pts(0, 0, 0, 1, 0, 2, 0, 3, 1, 0), chiral: true},
	PentominoLMin:  {base: pts(1, 0, 1, 1, 1, 2, 1, 3, 0, 0), chiral: true},
	PentominoNPlus: {base: pts(0, 0, 0, 1, 1, 1, 1, 2, 1, 3), chiral: true},
	PentominoNMin:  {base: pts(1, 0, 1, 1, 0, 1, 0, 2, 0, 3), chiral: true},
	PentominoPPlus: {base: pts(0, 0, 1, 0, 0, 1, 1, 1, 0, 2), chiral: true},
	PentominoPMin:  {base: pts(1, 0, 0, 0, 1, 1, 0, 1, 1, 2), chiral: true},
	PentominoYPlus: {base: pts(1, 0, 0, 1, 1, 1, 1, 2, 1, 3), chiral: true},
	PentominoYMin:  {base: pts(0, 0, 1, 1, 0, 1, 0, 2, 0, 3), chiral: true},
}

func pts(xy ...int) []grid.Point {
	out := make([]grid.Point, 0, len(xy)/2)
	for i := 0; i < len(xy); i += 2 {
		out = append(out, grid.Point{X: xy[i], Y: xy[i+1]})
	}
	return out
}

var catalog map[ShapeID]*Shape

func init() {
	catalog = make(map[ShapeID]*Shape, len(catalogDefs))
	for id, def := range catalogDefs {
		catalog[id] = &Shape{
			ID:           id,
			CellCount:    len(def.base),
			Orientations: buildOrientations(def.base, def.chiral),
		}
	}
}

// Lookup returns the catalog entry for id, or nil if unknown. The
// returned Shape is process-global and must be treated as read-only.
func Lookup(id ShapeID) *Shape {
	return catalog[id]
}
