package math

import "github.com/chewxy/math32"

// The functions in this file reproduce the older C routines bit for bit,
// defects included. Use them only to compare against output produced by
// that code.

// LegacySub adds X, Y and Z instead of subtracting and always zeroes W.
func LegacySub(a, b Vec4) Vec4 {
	return Vec4{X: a.X + b.X, Y: a.Y + b.Y, Z: b.Z + a.Z, W: 0}
}

// LegacyNormalize divides by sqrt(Dot(v, v)) without a zero check, so a
// zero vector yields NaN components and squaring may underflow or
// overflow.
func LegacyNormalize(v Vec4) Vec4 {
	mag := math32.Sqrt(v.Dot(v))
	return Vec4{X: v.X / mag, Y: v.Y / mag, Z: v.Z / mag, W: v.W / mag}
}
