package loader

import "fmt"

// ConvertJSONToText decodes one difficulty entry of a puzzle JSON
// document and renders it as the plain text format, mirroring the
// standalone json-to-text conversion tool this engine is compatible
// with.
func ConvertJSONToText(data []byte, difficulty Difficulty) (string, error) {
	doc, err := ParsePuzzleJSON(data)
	if err != nil {
		return "", err
	}
	def, ok := doc[difficulty]
	if !ok {
		return "", fmt.Errorf("%w: document has no %q entry", ErrInvalidFormat, difficulty)
	}
	g, err := def.ToGame()
	if err != nil {
		return "", err
	}
	return WriteText(g), nil
}
