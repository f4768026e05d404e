// Package loader reads and writes the external representations of a
// Game: a plain-text board/pieces/constraints format and the NYT-style
// puzzle JSON format.
package loader

import (
	"bufio"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/pipslab/pips/board"
	"github.com/pipslab/pips/game"
	"github.com/pipslab/pips/grid"
	"github.com/pipslab/pips/piece"
)

// ErrInvalidFormat is returned for any malformed text-format input.
var ErrInvalidFormat = errors.New("invalid game text format")

type section uint8

const (
	sectionNone section = iota
	sectionBoard
	sectionPieces
	sectionConstraints
)

// ParseText parses the plain-text game format into a Game.
func ParseText(src string) (*game.Game, error) {
	scanner := bufio.NewScanner(strings.NewReader(src))
	cur := sectionNone
	var boardRows []string
	var pieceTokens []string
	var constraintLines []string

	for scanner.Scan() {
		line := scanner.Text()
		trimmed := strings.TrimSpace(line)
		switch {
		case strings.HasPrefix(trimmed, "//"):
			continue
		case trimmed == "board:":
			cur = sectionBoard
			continue
		case trimmed == "pieces:":
			cur = sectionPieces
			continue
		case trimmed == "constraints:":
			cur = sectionConstraints
			continue
		}

		switch cur {
		case sectionBoard:
			if trimmed == "" {
				cur = sectionNone
				continue
			}
			boardRows = append(boardRows, line)
		case sectionPieces:
			if trimmed == "" {
				cur = sectionNone
				continue
			}
			for _, tok := range strings.Split(trimmed, ",") {
				tok = strings.TrimSpace(tok)
				if tok != "" {
					pieceTokens = append(pieceTokens, tok)
				}
			}
		case sectionConstraints:
			if trimmed == "" {
				continue
			}
			constraintLines = append(constraintLines, trimmed)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidFormat, err)
	}
	if len(boardRows) == 0 {
		return nil, fmt.Errorf("%w: missing board section", ErrInvalidFormat)
	}

	b := board.FromRows(boardRows, '#')

	pieces := make([]piece.Piece, 0, len(pieceTokens))
	for _, tok := range pieceTokens {
		pc, err := parsePieceToken(tok)
		if err != nil {
			return nil, err
		}
		pieces = append(pieces, pc)
	}

	constraints := make([]*game.Constraint, 0, len(constraintLines))
	for _, line := range constraintLines {
		c, err := parseConstraintLine(line)
		if err != nil {
			return nil, err
		}
		constraints = append(constraints, c)
	}

	return game.New(b, pieces, constraints), nil
}

// parsePieceToken parses one piece token: either a two-digit domino
// shorthand ("ab") or a "shape:digits" polyomino form ("5L+:01234").
func parsePieceToken(tok string) (piece.Piece, error) {
	var shapeID piece.ShapeID
	var digits string
	if idx := strings.IndexByte(tok, ':'); idx >= 0 {
		shapeID = piece.ShapeID(tok[:idx])
		digits = tok[idx+1:]
	} else {
		if len(tok) != 2 {
			return piece.Piece{}, fmt.Errorf("%w: malformed piece token %q", ErrInvalidFormat, tok)
		}
		shapeID = piece.Domino
		digits = tok
	}

	shape := piece.Lookup(shapeID)
	if shape == nil {
		return piece.Piece{}, fmt.Errorf("%w: unknown shape %q", ErrInvalidFormat, shapeID)
	}
	if len(digits) != shape.CellCount {
		return piece.Piece{}, fmt.Errorf("%w: piece token %q has %d pips, want %d", ErrInvalidFormat, tok, len(digits), shape.CellCount)
	}
	pips := make([]grid.Pip, len(digits))
	for i := 0; i < len(digits); i++ {
		v, err := strconv.Atoi(string(digits[i]))
		if err != nil {
			return piece.Piece{}, fmt.Errorf("%w: bad pip digit in %q", ErrInvalidFormat, tok)
		}
		pip, err := grid.NewPip(v)
		if err != nil {
			return piece.Piece{}, fmt.Errorf("%w: %v", ErrInvalidFormat, err)
		}
		pips[i] = pip
	}
	pc, err := piece.New(shape, pips)
	if err != nil {
		return piece.Piece{}, fmt.Errorf("%w: %v", ErrInvalidFormat, err)
	}
	return pc, nil
}

func parseConstraintLine(line string) (*game.Constraint, error) {
	fields := strings.Fields(line)
	if len(fields) < 2 {
		return nil, fmt.Errorf("%w: malformed constraint line %q", ErrInvalidFormat, line)
	}
	kind := fields[0]
	pointsRaw := strings.Join(fields[1:], " ")

	switch kind {
	case "AllSame":
		// fields[1] is the expected-pip token, the rest form the point set.
		if len(fields) < 3 {
			return nil, fmt.Errorf("%w: malformed AllSame line %q", ErrInvalidFormat, line)
		}
		expected, err := parseExpectedPip(fields[1])
		if err != nil {
			return nil, err
		}
		points, err := parsePointSet(strings.Join(fields[2:], ""))
		if err != nil {
			return nil, err
		}
		c, err := game.NewAllSame(expected, points)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrInvalidFormat, err)
		}
		return c, nil

	case "AllDifferent":
		braces, err := splitTwoBraceSets(pointsRaw)
		if err != nil {
			return nil, err
		}
		excluded, err := parsePipSet(braces[0])
		if err != nil {
			return nil, err
		}
		points, err := parsePointSet(braces[1])
		if err != nil {
			return nil, err
		}
		c, err := game.NewAllDifferent(excluded, points)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrInvalidFormat, err)
		}
		return c, nil

	case "Exactly", "LessThan", "MoreThan":
		if len(fields) < 3 {
			return nil, fmt.Errorf("%w: malformed %s line %q", ErrInvalidFormat, kind, line)
		}
		target, err := strconv.Atoi(fields[1])
		if err != nil {
			return nil, fmt.Errorf("%w: bad target in %q", ErrInvalidFormat, line)
		}
		points, err := parsePointSet(strings.Join(fields[2:], ""))
		if err != nil {
			return nil, err
		}
		var c *game.Constraint
		switch kind {
		case "Exactly":
			c, err = game.NewExactly(target, points)
		case "LessThan":
			c, err = game.NewLessThan(target, points)
		case "MoreThan":
			c, err = game.NewMoreThan(target, points)
		}
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrInvalidFormat, err)
		}
		return c, nil

	default:
		return nil, fmt.Errorf("%w: unknown constraint kind %q", ErrInvalidFormat, kind)
	}
}

// parseExpectedPip parses AllSame's expected-pip token: "None", a bare
// digit, or "Some(d)".
func parseExpectedPip(tok string) (*grid.Pip, error) {
	if tok == "None" {
		return nil, nil
	}
	tok = strings.TrimPrefix(tok, "Some(")
	tok = strings.TrimSuffix(tok, ")")
	v, err := strconv.Atoi(tok)
	if err != nil {
		return nil, fmt.Errorf("%w: bad expected-pip token %q", ErrInvalidFormat, tok)
	}
	p, err := grid.NewPip(v)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidFormat, err)
	}
	return &p, nil
}

// splitTwoBraceSets splits "{..}{..}" into its two brace-delimited
// substrings (braces retained), the first possibly empty ("{}").
func splitTwoBraceSets(s string) ([2]string, error) {
	s = strings.TrimSpace(s)
	first := strings.IndexByte(s, '}')
	if first < 0 || !strings.HasPrefix(s, "{") {
		return [2]string{}, fmt.Errorf("%w: malformed brace sets %q", ErrInvalidFormat, s)
	}
	a := s[:first+1]
	rest := strings.TrimSpace(s[first+1:])
	if !strings.HasPrefix(rest, "{") || !strings.HasSuffix(rest, "}") {
		return [2]string{}, fmt.Errorf("%w: malformed brace sets %q", ErrInvalidFormat, s)
	}
	return [2]string{a, rest}, nil
}

// parsePipSet parses a "{d,d,...}" digit set, or "{}" for none.
func parsePipSet(s string) ([]grid.Pip, error) {
	s = strings.TrimSpace(s)
	s = strings.TrimPrefix(s, "{")
	s = strings.TrimSuffix(s, "}")
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, nil
	}
	parts := strings.Split(s, ",")
	pips := make([]grid.Pip, 0, len(parts))
	for _, part := range parts {
		v, err := strconv.Atoi(strings.TrimSpace(part))
		if err != nil {
			return nil, fmt.Errorf("%w: bad pip %q", ErrInvalidFormat, part)
		}
		p, err := grid.NewPip(v)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrInvalidFormat, err)
		}
		pips = append(pips, p)
	}
	return pips, nil
}

// parsePointSet parses a "{(x,y),(x,y),...}" point set, or "{}" for none.
func parsePointSet(s string) ([]grid.Point, error) {
	s = strings.TrimSpace(s)
	s = strings.TrimPrefix(s, "{")
	s = strings.TrimSuffix(s, "}")
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, nil
	}
	s = strings.TrimPrefix(s, "(")
	s = strings.TrimSuffix(s, ")")
	parts := strings.Split(s, "),(")
	points := make([]grid.Point, 0, len(parts))
	for _, part := range parts {
		xy := strings.Split(part, ",")
		if len(xy) != 2 {
			return nil, fmt.Errorf("%w: malformed point %q", ErrInvalidFormat, part)
		}
		x, err := strconv.Atoi(strings.TrimSpace(xy[0]))
		if err != nil {
			return nil, fmt.Errorf("%w: bad x in %q", ErrInvalidFormat, part)
		}
		y, err := strconv.Atoi(strings.TrimSpace(xy[1]))
		if err != nil {
			return nil, fmt.Errorf("%w: bad y in %q", ErrInvalidFormat, part)
		}
		points = append(points, grid.Point{X: x, Y: y})
	}
	return points, nil
}

// WriteText renders g back into the text format. Constraint rows follow
// the order of g.Constraints; the points within each row are written in
// (y, x) order, not in their original input order.
func WriteText(g *game.Game) string {
	var b strings.Builder
	b.WriteString("board:\n")
	b.WriteString(g.Board.String())
	b.WriteString("\n\npieces:\n")
	for i, pc := range g.Pieces {
		if i > 0 {
			b.WriteString(",")
		}
		b.WriteString(writePieceToken(pc))
	}
	b.WriteString("\n\nconstraints:\n")
	for _, c := range g.Constraints {
		b.WriteString(writeConstraintLine(c))
		b.WriteString("\n")
	}
	return b.String()
}

func writePieceToken(pc piece.Piece) string {
	digits := make([]byte, len(pc.Pips))
	for i, p := range pc.Pips {
		digits[i] = byte('0' + uint8(p))
	}
	if pc.Shape.ID == piece.Domino {
		return string(digits)
	}
	return fmt.Sprintf("%s:%s", pc.Shape.ID, digits)
}

func writeConstraintLine(c *game.Constraint) string {
	switch c.Kind {
	case game.KindAllSame:
		expected := "None"
		if c.Expected != nil {
			expected = fmt.Sprintf("Some(%s)", c.Expected)
		}
		return fmt.Sprintf("AllSame %s %s", expected, writePointSet(c.SortedPoints()))
	case game.KindAllDifferent:
		return fmt.Sprintf("AllDifferent %s %s", writePipSet(c.Excluded), writePointSet(c.SortedPoints()))
	case game.KindExactly:
		return fmt.Sprintf("Exactly %d %s", c.Target, writePointSet(c.SortedPoints()))
	case game.KindLessThan:
		return fmt.Sprintf("LessThan %d %s", c.Target, writePointSet(c.SortedPoints()))
	case game.KindMoreThan:
		return fmt.Sprintf("MoreThan %d %s", c.Target, writePointSet(c.SortedPoints()))
	default:
		return ""
	}
}

func writePointSet(points []grid.Point) string {
	var b strings.Builder
	b.WriteByte('{')
	for i, p := range points {
		if i > 0 {
			b.WriteByte(',')
		}
		b.WriteString(p.String())
	}
	b.WriteByte('}')
	return b.String()
}

func writePipSet(pips map[grid.Pip]struct{}) string {
	ordered := make([]grid.Pip, 0, len(pips))
	for p := range pips {
		ordered = append(ordered, p)
	}
	for i := 1; i < len(ordered); i++ {
		for j := i; j > 0 && ordered[j] < ordered[j-1]; j-- {
			ordered[j], ordered[j-1] = ordered[j-1], ordered[j]
		}
	}
	var b strings.Builder
	b.WriteByte('{')
	for i, p := range ordered {
		if i > 0 {
			b.WriteByte(',')
		}
		b.WriteString(p.String())
	}
	b.WriteByte('}')
	return b.String()
}
