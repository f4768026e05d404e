package grid

import "fmt"

// MaxPip is the largest legal pip value; pips range 0..MaxPip inclusive.
const MaxPip = 6

// ErrInvalidPip is returned when a pip value falls outside 0..MaxPip.
var ErrInvalidPip = fmt.Errorf("pip value out of range 0..%d", MaxPip)

// Pip is a die-face value carried by one piece cell.
type Pip uint8

// NewPip validates and constructs a Pip.
func NewPip(v int) (Pip, error) {
	if v < 0 || v > MaxPip {
		return 0, ErrInvalidPip
	}
	return Pip(v), nil
}

func (p Pip) String() string {
	return fmt.Sprintf("%d", uint8(p))
}
