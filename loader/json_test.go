package loader

import (
	"strings"
	"testing"
)

const sampleJSON = `{
  "easy": {
    "dominoes": [[3,4]],
    "regions": [
      {"indices": [[0,0],[0,1]], "target": 7, "type": "sum"}
    ],
    "id": 1
  },
  "medium": {
    "dominoes": [[1,2]],
    "regions": [
      {"indices": [[0,0],[0,1]], "type": "equals"}
    ]
  },
  "hard": {
    "dominoes": [[0,0]],
    "regions": [
      {"indices": [[0,0]], "type": "empty"}
    ]
  }
}`

func TestParsePuzzleJSONAndToGame(t *testing.T) {
	t.Parallel()
	doc, err := ParsePuzzleJSON([]byte(sampleJSON))
	if err != nil {
		t.Fatalf("ParsePuzzleJSON: %v", err)
	}
	def, ok := doc[Easy]
	if !ok {
		t.Fatal("missing easy entry")
	}
	g, err := def.ToGame()
	if err != nil {
		t.Fatalf("ToGame: %v", err)
	}
	if g.Board.Len() != 2 {
		t.Fatalf("board len = %d, want 2 (transposed row/col indices)", g.Board.Len())
	}
	if len(g.Pieces) != 1 {
		t.Fatalf("len(pieces) = %d, want 1", len(g.Pieces))
	}
	if len(g.Constraints) != 1 || g.Constraints[0].Target != 7 {
		t.Fatalf("unexpected constraints: %+v", g.Constraints)
	}
}

func TestGameDefEmptyRegionDropped(t *testing.T) {
	t.Parallel()
	doc, err := ParsePuzzleJSON([]byte(sampleJSON))
	if err != nil {
		t.Fatal(err)
	}
	def := doc[Hard]
	g, err := def.ToGame()
	if err != nil {
		t.Fatalf("ToGame: %v", err)
	}
	if len(g.Constraints) != 0 {
		t.Fatalf("expected empty-type region to be dropped, got %d constraints", len(g.Constraints))
	}
}

func TestConvertJSONToText(t *testing.T) {
	t.Parallel()
	out, err := ConvertJSONToText([]byte(sampleJSON), Medium)
	if err != nil {
		t.Fatalf("ConvertJSONToText: %v", err)
	}
	if !strings.Contains(out, "AllSame") {
		t.Errorf("expected AllSame constraint line in output:\n%s", out)
	}
}

func TestConvertJSONToTextUnknownDifficulty(t *testing.T) {
	t.Parallel()
	_, err := ConvertJSONToText([]byte(sampleJSON), Difficulty("extreme"))
	if err == nil {
		t.Fatal("expected unknown-difficulty error")
	}
}
