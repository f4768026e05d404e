// Package render prints a Game (or a solved Game plus its Placements)
// to a terminal, coloring constraint regions so a human can read a
// puzzle or a solution at a glance.
package render

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"

	"github.com/pipslab/pips/game"
	"github.com/pipslab/pips/grid"
)

// regionPalette cycles through distinguishable colors for successive
// constraint regions; it wraps if there are more regions than colors.
var regionPalette = []*color.Color{
	color.New(color.FgRed),
	color.New(color.FgGreen),
	color.New(color.FgYellow),
	color.New(color.FgBlue),
	color.New(color.FgMagenta),
	color.New(color.FgCyan),
}

// Board writes an empty puzzle's board, drawing every board cell as '#',
// colored by its constraint region and white outside every region.
func Board(w io.Writer, g *game.Game) {
	regionOf := regionIndex(g.Constraints)
	writeGrid(w, g, regionOf, nil)
}

// Solution writes a solved Game's board with every cell's pip value,
// still colored by the constraint region (if any) it belonged to
// before solving emptied the constraint list.
func Solution(w io.Writer, placements []game.Placement, constraints []*game.Constraint) {
	regionOf := regionIndex(constraints)
	pipOf := make(map[grid.Point]grid.Pip)
	for _, pl := range placements {
		for _, a := range pl.Assignments() {
			pipOf[a.Point] = a.Pip
		}
	}
	minX, minY, maxX, maxY := bounds(pipOf)
	for y := maxY; y >= minY; y-- {
		for x := minX; x <= maxX; x++ {
			p := grid.Point{X: x, Y: y}
			pip, ok := pipOf[p]
			if !ok {
				fmt.Fprint(w, " . ")
				continue
			}
			c := colorFor(regionOf, p)
			c.Fprintf(w, " %d ", uint8(pip))
		}
		fmt.Fprintln(w)
	}
}

func regionIndex(constraints []*game.Constraint) map[grid.Point]int {
	idx := make(map[grid.Point]int)
	for i, c := range constraints {
		for p := range c.Points {
			idx[p] = i
		}
	}
	return idx
}

func colorFor(regionOf map[grid.Point]int, p grid.Point) *color.Color {
	i, ok := regionOf[p]
	if !ok {
		return color.New(color.FgWhite)
	}
	return regionPalette[i%len(regionPalette)]
}

func writeGrid(w io.Writer, g *game.Game, regionOf map[grid.Point]int, pipOf map[grid.Point]grid.Pip) {
	minX, minY, maxX, maxY, ok := g.Board.Bounds()
	if !ok {
		fmt.Fprintln(w, "<empty board>")
		return
	}
	for y := maxY; y >= minY; y-- {
		for x := minX; x <= maxX; x++ {
			p := grid.Point{X: x, Y: y}
			if !g.Board.Contains(p) {
				fmt.Fprint(w, "   ")
				continue
			}
			c := colorFor(regionOf, p)
			if pipOf != nil {
				if pip, ok := pipOf[p]; ok {
					c.Fprintf(w, " %d ", uint8(pip))
					continue
				}
			}
			c.Fprint(w, " # ")
		}
		fmt.Fprintln(w)
	}
}

func bounds(pipOf map[grid.Point]grid.Pip) (minX, minY, maxX, maxY int) {
	first := true
	for p := range pipOf {
		if first {
			minX, maxX, minY, maxY = p.X, p.X, p.Y, p.Y
			first = false
			continue
		}
		if p.X < minX {
			minX = p.X
		}
		if p.X > maxX {
			maxX = p.X
		}
		if p.Y < minY {
			minY = p.Y
		}
		if p.Y > maxY {
			maxY = p.Y
		}
	}
	return
}

// Legend prints a short key mapping each constraint's color to its
// textual description, for use below a rendered Board.
func Legend(w io.Writer, constraints []*game.Constraint) {
	for i, c := range constraints {
		pal := regionPalette[i%len(regionPalette)]
		pal.Fprintf(w, "  %s", strings.ToUpper(string(rune('A'+i%26))))
		fmt.Fprintf(w, " %s\n", c.String())
	}
}
