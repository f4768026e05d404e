package loader

import (
	"strings"
	"testing"
)

const sampleText = `// a trivial two-cell puzzle
board:
##

pieces:
34

constraints:
Exactly 7 {(0,0),(1,0)}
`

func TestParseTextRoundTrip(t *testing.T) {
	t.Parallel()
	g, err := ParseText(sampleText)
	if err != nil {
		t.Fatalf("ParseText: %v", err)
	}
	if g.Board.Len() != 2 {
		t.Fatalf("board len = %d, want 2", g.Board.Len())
	}
	if len(g.Pieces) != 1 {
		t.Fatalf("len(pieces) = %d, want 1", len(g.Pieces))
	}
	if len(g.Constraints) != 1 {
		t.Fatalf("len(constraints) = %d, want 1", len(g.Constraints))
	}

	rendered := WriteText(g)
	g2, err := ParseText(rendered)
	if err != nil {
		t.Fatalf("ParseText(rendered): %v\n%s", err, rendered)
	}
	if g2.Board.Len() != g.Board.Len() || len(g2.Pieces) != len(g.Pieces) || len(g2.Constraints) != len(g.Constraints) {
		t.Errorf("round trip mismatch: %+v vs %+v", g2, g)
	}
}

func TestParseTextMissingBoard(t *testing.T) {
	t.Parallel()
	_, err := ParseText("pieces:\n34\n")
	if err == nil {
		t.Fatal("expected missing-board error")
	}
}

func TestParseTextPolyominoToken(t *testing.T) {
	t.Parallel()
	src := `board:
###

pieces:
3I:012

constraints:
`
	g, err := ParseText(src)
	if err != nil {
		t.Fatalf("ParseText: %v", err)
	}
	if len(g.Pieces) != 1 || len(g.Pieces[0].Pips) != 3 {
		t.Fatalf("unexpected piece: %+v", g.Pieces)
	}
}

func TestParseTextAllDifferentLine(t *testing.T) {
	t.Parallel()
	src := `board:
##

pieces:
34

constraints:
AllDifferent {5,6} {(0,0),(1,0)}
`
	g, err := ParseText(src)
	if err != nil {
		t.Fatalf("ParseText: %v", err)
	}
	if len(g.Constraints) != 1 {
		t.Fatalf("len(constraints) = %d, want 1", len(g.Constraints))
	}
	if len(g.Constraints[0].Excluded) != 2 {
		t.Fatalf("len(excluded) = %d, want 2", len(g.Constraints[0].Excluded))
	}
}

func TestWriteTextContainsSections(t *testing.T) {
	t.Parallel()
	g, err := ParseText(sampleText)
	if err != nil {
		t.Fatal(err)
	}
	out := WriteText(g)
	for _, want := range []string{"board:", "pieces:", "constraints:"} {
		if !strings.Contains(out, want) {
			t.Errorf("rendered text missing %q:\n%s", want, out)
		}
	}
}
