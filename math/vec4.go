package math

import (
	"github.com/chewxy/math32"
	"github.com/pkg/errors"
)

// Vec4 is a homogeneous vector. By convention W is 1 for points and 0 for
// directions; nothing here enforces it.
type Vec4 struct {
	X, Y, Z, W float32
}

var Vec4Zero = Vec4{0, 0, 0, 0}

func NewVec4(x, y, z, w float32) Vec4 {
	return Vec4{X: x, Y: y, Z: z, W: w}
}

// Point returns (x, y, z, 1).
func Point(x, y, z float32) Vec4 {
	return Vec4{X: x, Y: y, Z: z, W: 1}
}

// Direction returns (x, y, z, 0).
func Direction(x, y, z float32) Vec4 {
	return Vec4{X: x, Y: y, Z: z, W: 0}
}

func (v Vec4) IsPoint() bool {
	return v.W == 1
}

func (v Vec4) IsDirection() bool {
	return v.W == 0
}

func (v Vec4) Add(other Vec4) Vec4 {
	return Vec4{X: v.X + other.X, Y: v.Y + other.Y, Z: v.Z + other.Z, W: v.W + other.W}
}

func (v Vec4) Sub(other Vec4) Vec4 {
	return Vec4{X: v.X - other.X, Y: v.Y - other.Y, Z: v.Z - other.Z, W: v.W - other.W}
}

func (v Vec4) Negate() Vec4 {
	return Vec4{X: -v.X, Y: -v.Y, Z: -v.Z, W: -v.W}
}

// Equals compares X, Y and Z exactly. W is bookkeeping and does not take
// part in the comparison.
func (v Vec4) Equals(other Vec4) bool {
	return v.X == other.X && v.Y == other.Y && v.Z == other.Z
}

// ApproxEquals is Equals with a per-component tolerance of eps.
func (v Vec4) ApproxEquals(other Vec4, eps float32) bool {
	return ApproxEqual(v.X, other.X, eps) &&
		ApproxEqual(v.Y, other.Y, eps) &&
		ApproxEqual(v.Z, other.Z, eps)
}

// Dot includes W.
func (v Vec4) Dot(other Vec4) float32 {
	return v.X*other.X + v.Y*other.Y + v.Z*other.Z + v.W*other.W
}

// Cross is the 3D cross product of the XYZ parts. The result is always a
// direction.
func (v Vec4) Cross(other Vec4) Vec4 {
	return Vec4{
		X: v.Y*other.Z - v.Z*other.Y,
		Y: v.Z*other.X - v.X*other.Z,
		Z: v.X*other.Y - v.Y*other.X,
		W: 0,
	}
}

func (v Vec4) Scale(t float32) Vec4 {
	return Vec4{X: v.X * t, Y: v.Y * t, Z: v.Z * t, W: v.W * t}
}

// MagnitudeSqr is Dot(v, v). It overflows for components beyond about
// 1.8e19; use Magnitude when that matters.
func (v Vec4) MagnitudeSqr() float32 {
	return v.Dot(v)
}

// maxAbs is the largest absolute component. NaN wins.
func (v Vec4) maxAbs() float32 {
	return math32.Max(
		math32.Max(math32.Abs(v.X), math32.Abs(v.Y)),
		math32.Max(math32.Abs(v.Z), math32.Abs(v.W)),
	)
}

// unitScaled returns v divided by its largest absolute component together
// with that component. The scaled vector squares without underflow or
// overflow.
func (v Vec4) unitScaled() (Vec4, float32) {
	m := v.maxAbs()
	if m == 0 || math32.IsInf(m, 0) {
		return v, m
	}
	return Vec4{X: v.X / m, Y: v.Y / m, Z: v.Z / m, W: v.W / m}, m
}

// Magnitude is the 4-component Euclidean norm. It is computed on the
// vector scaled by its largest component, so it is zero only for the zero
// vector and finite whenever the true norm fits in a float32.
func (v Vec4) Magnitude() float32 {
	u, m := v.unitScaled()
	if m == 0 || math32.IsInf(m, 0) {
		return m
	}
	return m * math32.Sqrt(u.Dot(u))
}

// Normalize divides every component by the magnitude. Only the zero vector
// has no direction: the result is then the zero vector and the error's
// cause is ErrDomain.
func (v Vec4) Normalize() (Vec4, error) {
	u, m := v.unitScaled()
	if m == 0 {
		return Vec4{}, errors.Wrapf(ErrDomain, "normalize %v: zero magnitude", v)
	}
	n := math32.Sqrt(u.Dot(u))
	return Vec4{X: u.X / n, Y: u.Y / n, Z: u.Z / n, W: u.W / n}, nil
}

// Div divides every component by s. Division by zero is a domain error
// and leaves v unchanged.
func (v Vec4) Div(s float32) (Vec4, error) {
	if s == 0 {
		return v, errors.Wrapf(ErrDomain, "divide %v by zero", v)
	}
	return Vec4{X: v.X / s, Y: v.Y / s, Z: v.Z / s, W: v.W / s}, nil
}

// Reflect mirrors v about normal, which should be unit length.
func (v Vec4) Reflect(normal Vec4) Vec4 {
	return v.Sub(normal.Scale(2 * v.Dot(normal)))
}

func (v Vec4) Lerp(other Vec4, t float32) Vec4 {
	return v.Add(other.Sub(v).Scale(t))
}

func (v Vec4) Distance(other Vec4) float32 {
	return v.Sub(other).Magnitude()
}

func (v Vec4) MulMat(m Mat4) Vec4 {
	return Vec4{
		X: v.X*m[0][0] + v.Y*m[1][0] + v.Z*m[2][0] + v.W*m[3][0],
		Y: v.X*m[0][1] + v.Y*m[1][1] + v.Z*m[2][1] + v.W*m[3][1],
		Z: v.X*m[0][2] + v.Y*m[1][2] + v.Z*m[2][2] + v.W*m[3][2],
		W: v.X*m[0][3] + v.Y*m[1][3] + v.Z*m[2][3] + v.W*m[3][3],
	}
}

// Function forms of the methods above.

func Add(a, b Vec4) Vec4 { return a.Add(b) }
func Sub(a, b Vec4) Vec4 { return a.Sub(b) }
func Equals(a, b Vec4) bool { return a.Equals(b) }
func Dot(u, v Vec4) float32 { return u.Dot(v) }
func Cross(u, v Vec4) Vec4 { return u.Cross(v) }
func Scale(v Vec4, t float32) Vec4 { return v.Scale(t) }
func Magnitude(v Vec4) float32 { return v.Magnitude() }
func Normalize(v Vec4) (Vec4, error) { return v.Normalize() }
