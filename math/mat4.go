package math

import (
	"github.com/chewxy/math32"
	"github.com/pkg/errors"
)

// Mat4 is row-major and multiplies row vectors: v' = v.MulMat(m).
// Translation therefore lives in row 3.
type Mat4 [4][4]float32

func Mat4Identity() Mat4 {
	return Mat4{
		{1, 0, 0, 0},
		{0, 1, 0, 0},
		{0, 0, 1, 0},
		{0, 0, 0, 1},
	}
}

func Mat4Zero() Mat4 {
	return Mat4{}
}

// Mul returns m*other; applied to a vector, m acts first.
func (m Mat4) Mul(other Mat4) Mat4 {
	var result Mat4
	for i := 0; i < 4; i++ {
		for j := 0; j < 4; j++ {
			for k := 0; k < 4; k++ {
				result[i][j] += m[i][k] * other[k][j]
			}
		}
	}
	return result
}

func (m Mat4) MulVec(v Vec4) Vec4 {
	return v.MulMat(m)
}

func (m Mat4) Transpose() Mat4 {
	return Mat4{
		{m[0][0], m[1][0], m[2][0], m[3][0]},
		{m[0][1], m[1][1], m[2][1], m[3][1]},
		{m[0][2], m[1][2], m[2][2], m[3][2]},
		{m[0][3], m[1][3], m[2][3], m[3][3]},
	}
}

func (m Mat4) ApproxEquals(other Mat4, eps float32) bool {
	for i := 0; i < 4; i++ {
		for j := 0; j < 4; j++ {
			if !ApproxEqual(m[i][j], other[i][j], eps) {
				return false
			}
		}
	}
	return true
}

// minors2 holds the 2x2 determinants of the top and bottom row pairs that
// both Determinant and Inverse are built from.
type minors2 struct {
	b00, b01, b02, b03, b04, b05 float32
	b06, b07, b08, b09, b10, b11 float32
}

func (m Mat4) minors() minors2 {
	return minors2{
		b00: m[0][0]*m[1][1] - m[0][1]*m[1][0],
		b01: m[0][0]*m[1][2] - m[0][2]*m[1][0],
		b02: m[0][0]*m[1][3] - m[0][3]*m[1][0],
		b03: m[0][1]*m[1][2] - m[0][2]*m[1][1],
		b04: m[0][1]*m[1][3] - m[0][3]*m[1][1],
		b05: m[0][2]*m[1][3] - m[0][3]*m[1][2],
		b06: m[2][0]*m[3][1] - m[2][1]*m[3][0],
		b07: m[2][0]*m[3][2] - m[2][2]*m[3][0],
		b08: m[2][0]*m[3][3] - m[2][3]*m[3][0],
		b09: m[2][1]*m[3][2] - m[2][2]*m[3][1],
		b10: m[2][1]*m[3][3] - m[2][3]*m[3][1],
		b11: m[2][2]*m[3][3] - m[2][3]*m[3][2],
	}
}

func (b minors2) det() float32 {
	return b.b00*b.b11 - b.b01*b.b10 + b.b02*b.b09 + b.b03*b.b08 - b.b04*b.b07 + b.b05*b.b06
}

func (m Mat4) Determinant() float32 {
	return m.minors().det()
}

// Inverse returns the inverse of m. A singular matrix has none; the
// result is then the identity and the error's cause is ErrDomain.
func (m Mat4) Inverse() (Mat4, error) {
	b := m.minors()
	det := b.det()
	if det == 0 {
		return Mat4Identity(), errors.Wrap(ErrDomain, "inverse: singular matrix")
	}

	inv := Mat4{
		{
			m[1][1]*b.b11 - m[1][2]*b.b10 + m[1][3]*b.b09,
			-m[0][1]*b.b11 + m[0][2]*b.b10 - m[0][3]*b.b09,
			m[3][1]*b.b05 - m[3][2]*b.b04 + m[3][3]*b.b03,
			-m[2][1]*b.b05 + m[2][2]*b.b04 - m[2][3]*b.b03,
		},
		{
			-m[1][0]*b.b11 + m[1][2]*b.b08 - m[1][3]*b.b07,
			m[0][0]*b.b11 - m[0][2]*b.b08 + m[0][3]*b.b07,
			-m[3][0]*b.b05 + m[3][2]*b.b02 - m[3][3]*b.b01,
			m[2][0]*b.b05 - m[2][2]*b.b02 + m[2][3]*b.b01,
		},
		{
			m[1][0]*b.b10 - m[1][1]*b.b08 + m[1][3]*b.b06,
			-m[0][0]*b.b10 + m[0][1]*b.b08 - m[0][3]*b.b06,
			m[3][0]*b.b04 - m[3][1]*b.b02 + m[3][3]*b.b00,
			-m[2][0]*b.b04 + m[2][1]*b.b02 - m[2][3]*b.b00,
		},
		{
			-m[1][0]*b.b09 + m[1][1]*b.b07 - m[1][2]*b.b06,
			m[0][0]*b.b09 - m[0][1]*b.b07 + m[0][2]*b.b06,
			-m[3][0]*b.b03 + m[3][1]*b.b01 - m[3][2]*b.b00,
			m[2][0]*b.b03 - m[2][1]*b.b01 + m[2][2]*b.b00,
		},
	}

	invDet := 1 / det
	for i := 0; i < 4; i++ {
		for j := 0; j < 4; j++ {
			inv[i][j] *= invDet
		}
	}
	return inv, nil
}

// Translation moves points; directions (W = 0) are unaffected.
func Mat4Translation(x, y, z float32) Mat4 {
	m := Mat4Identity()
	m[3][0] = x
	m[3][1] = y
	m[3][2] = z
	return m
}

func Mat4Scaling(x, y, z float32) Mat4 {
	m := Mat4Identity()
	m[0][0] = x
	m[1][1] = y
	m[2][2] = z
	return m
}

func Mat4RotationX(angle float32) Mat4 {
	s, c := math32.Sincos(angle)
	return Mat4{
		{1, 0, 0, 0},
		{0, c, s, 0},
		{0, -s, c, 0},
		{0, 0, 0, 1},
	}
}

func Mat4RotationY(angle float32) Mat4 {
	s, c := math32.Sincos(angle)
	return Mat4{
		{c, 0, -s, 0},
		{0, 1, 0, 0},
		{s, 0, c, 0},
		{0, 0, 0, 1},
	}
}

func Mat4RotationZ(angle float32) Mat4 {
	s, c := math32.Sincos(angle)
	return Mat4{
		{c, s, 0, 0},
		{-s, c, 0, 0},
		{0, 0, 1, 0},
		{0, 0, 0, 1},
	}
}

// Mat4Shearing moves each axis in proportion to the other two: xy is how
// much X moves per unit of Y, and so on.
func Mat4Shearing(xy, xz, yx, yz, zx, zy float32) Mat4 {
	m := Mat4Identity()
	m[1][0] = xy
	m[2][0] = xz
	m[0][1] = yx
	m[2][1] = yz
	m[0][2] = zx
	m[1][2] = zy
	return m
}

// Mat4LookAt is the view transform of a camera at from looking towards to.
// Only the XYZ parts of the arguments are used. The camera looks down -Z;
// up need not be perpendicular to the view direction but must not be
// parallel to it. Coincident from and to, or a parallel up, are domain
// errors and return the identity.
func Mat4LookAt(from, to, up Vec4) (Mat4, error) {
	eye := Direction(from.X, from.Y, from.Z)
	zAxis, err := eye.Sub(Direction(to.X, to.Y, to.Z)).Normalize()
	if err != nil {
		return Mat4Identity(), errors.Wrap(err, "look at: eye and target coincide")
	}
	xAxis, err := Direction(up.X, up.Y, up.Z).Cross(zAxis).Normalize()
	if err != nil {
		return Mat4Identity(), errors.Wrap(err, "look at: up is parallel to view direction")
	}
	yAxis := zAxis.Cross(xAxis)

	return Mat4{
		{xAxis.X, yAxis.X, zAxis.X, 0},
		{xAxis.Y, yAxis.Y, zAxis.Y, 0},
		{xAxis.Z, yAxis.Z, zAxis.Z, 0},
		{-xAxis.Dot(eye), -yAxis.Dot(eye), -zAxis.Dot(eye), 1},
	}, nil
}
