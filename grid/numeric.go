package grid

import "golang.org/x/exp/constraints"

// Min returns the lesser of x1 and x2.
func Min[T constraints.Ordered](x1, x2 T) T {
	if x1 < x2 {
		return x1
	}
	return x2
}

// Max returns the greater of x1 and x2.
func Max[T constraints.Ordered](x1, x2 T) T {
	if x1 > x2 {
		return x1
	}
	return x2
}
