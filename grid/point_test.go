package grid

import "testing"

func TestPointLess(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name string
		a, b Point
		want bool
	}{
		{name: "lower row wins", a: Point{X: 5, Y: 0}, b: Point{X: 0, Y: 1}, want: true},
		{name: "same row lower col wins", a: Point{X: 0, Y: 1}, b: Point{X: 1, Y: 1}, want: true},
		{name: "equal is not less", a: Point{X: 1, Y: 1}, b: Point{X: 1, Y: 1}, want: false},
		{name: "higher row loses", a: Point{X: 0, Y: 2}, b: Point{X: 0, Y: 1}, want: false},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := tt.a.Less(tt.b); got != tt.want {
				t.Errorf("Less() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestDirectionOffset(t *testing.T) {
	t.Parallel()
	tests := []struct {
		d    Direction
		want Point
	}{
		{d: DirectionNorth, want: Point{X: 0, Y: 1}},
		{d: DirectionEast, want: Point{X: 1, Y: 0}},
		{d: DirectionSouth, want: Point{X: 0, Y: -1}},
		{d: DirectionWest, want: Point{X: -1, Y: 0}},
	}
	for _, tt := range tests {
		if got := tt.d.Offset(); got != tt.want {
			t.Errorf("%s.Offset() = %v, want %v", tt.d, got, tt.want)
		}
	}
}

func TestPipRange(t *testing.T) {
	t.Parallel()
	if _, err := NewPip(-1); err == nil {
		t.Error("expected error for negative pip")
	}
	if _, err := NewPip(7); err == nil {
		t.Error("expected error for pip > 6")
	}
	p, err := NewPip(6)
	if err != nil || p != 6 {
		t.Errorf("NewPip(6) = %v, %v", p, err)
	}
}
