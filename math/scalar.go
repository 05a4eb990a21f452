package math

import (
	"github.com/chewxy/math32"
	"golang.org/x/exp/constraints"
)

// Tolerances for ApproxEqual. LowEpsilon is for values that went through
// trig or several chained transforms.
const (
	Epsilon    float32 = 1e-5
	LowEpsilon float32 = 1e-3
)

func ApproxEqual(a, b, eps float32) bool {
	return math32.Abs(a-b) <= eps
}

func Min[T constraints.Ordered](a, b T) T {
	if a < b {
		return a
	}
	return b
}

func Max[T constraints.Ordered](a, b T) T {
	if a > b {
		return a
	}
	return b
}

// Clamp limits v to [lo, hi]. hi wins if the bounds are inverted.
func Clamp[T constraints.Ordered](v, lo, hi T) T {
	return Min(Max(v, lo), hi)
}
