// Package homography computes projective mappings between quadrilaterals.
//
// Matrices use the row-vector convention: a point maps as [x y 1] * M, so
// M[2][0], M[2][1] hold the translation and M[0][2], M[1][2] the perspective
// terms.
package homography

import "github.com/younwookim/apputils/internal/domain/geom"

// Tolerance is the threshold under which the quad's diagonal defect counts
// as zero, selecting the affine branch of SquareToQuad.
const Tolerance = 1e-13

// Mat3 is a 3x3 matrix indexed [row][col].
type Mat3 [3][3]float64

// Identity3 returns the 3x3 identity.
func Identity3() Mat3 {
	return Mat3{{1, 0, 0}, {0, 1, 0}, {0, 0, 1}}
}

// Multiply returns a * b.
func Multiply(a, b Mat3) Mat3 {
	var c Mat3
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			c[i][j] = a[i][0]*b[0][j] + a[i][1]*b[1][j] + a[i][2]*b[2][j]
		}
	}
	return c
}

// Det2 returns the determinant of the 2x2 matrix [a b; c d].
func Det2(a, b, c, d float64) float64 {
	return a*d - b*c
}

// Adjoint returns the adjoint of a and the determinant of a.
// The adjoint is the inverse scaled by the determinant.
func Adjoint(a Mat3) (Mat3, float64) {
	var b Mat3
	b[0][0] = Det2(a[1][1], a[1][2], a[2][1], a[2][2])
	b[1][0] = Det2(a[1][2], a[1][0], a[2][2], a[2][0])
	b[2][0] = Det2(a[1][0], a[1][1], a[2][0], a[2][1])
	b[0][1] = Det2(a[2][1], a[2][2], a[0][1], a[0][2])
	b[1][1] = Det2(a[2][2], a[2][0], a[0][2], a[0][0])
	b[2][1] = Det2(a[2][0], a[2][1], a[0][0], a[0][1])
	b[0][2] = Det2(a[0][1], a[0][2], a[1][1], a[1][2])
	b[1][2] = Det2(a[0][2], a[0][0], a[1][2], a[1][0])
	b[2][2] = Det2(a[0][0], a[0][1], a[1][0], a[1][1])
	det := a[0][0]*b[0][0] + a[0][1]*b[1][0] + a[0][2]*b[2][0]
	return b, det
}

func isZero(x float64) bool {
	return x < Tolerance && x > -Tolerance
}

// SquareToQuad returns the projective mapping of the unit square
// (0,0)-(1,0)-(1,1)-(0,1) onto q.
//
// Parallelograms take an affine shortcut whose perspective terms are
// exactly zero.
func SquareToQuad(q geom.Quad) Mat3 {
	var m Mat3

	px := q[0].X - q[1].X + q[2].X - q[3].X
	py := q[0].Y - q[1].Y + q[2].Y - q[3].Y

	if isZero(px) && isZero(py) {
		m[0][0] = q[1].X - q[0].X
		m[1][0] = q[2].X - q[1].X
		m[2][0] = q[0].X
		m[0][1] = q[1].Y - q[0].Y
		m[1][1] = q[2].Y - q[1].Y
		m[2][1] = q[0].Y
		m[0][2] = 0
		m[1][2] = 0
		m[2][2] = 1
		return m
	}

	dx1 := q[1].X - q[2].X
	dx2 := q[3].X - q[2].X
	dy1 := q[1].Y - q[2].Y
	dy2 := q[3].Y - q[2].Y
	del := Det2(dx1, dx2, dy1, dy2)

	m[0][2] = Det2(px, dx2, py, dy2) / del
	m[1][2] = Det2(dx1, px, dy1, py) / del
	m[2][2] = 1
	m[0][0] = q[1].X - q[0].X + m[0][2]*q[1].X
	m[1][0] = q[3].X - q[0].X + m[1][2]*q[3].X
	m[2][0] = q[0].X
	m[0][1] = q[1].Y - q[0].Y + m[0][2]*q[1].Y
	m[1][1] = q[3].Y - q[0].Y + m[1][2]*q[3].Y
	m[2][1] = q[0].Y
	return m
}

// QuadToQuad returns the mapping of src onto dst as
// adjoint(SquareToQuad(src)) * SquareToQuad(dst).
//
// The adjoint is not divided by its determinant, so the result equals the
// true homography up to a scale factor. Points mapped with Apply are
// unaffected since the factor cancels in the w division.
func QuadToQuad(src, dst geom.Quad) Mat3 {
	ms := SquareToQuad(src)
	sm, _ := Adjoint(ms)
	mt := SquareToQuad(dst)
	return Multiply(sm, mt)
}

// Apply maps (x, y) through m with the row-vector convention and divides
// by w. ok is false when w is zero.
func (m Mat3) Apply(x, y float64) (px, py float64, ok bool) {
	w := x*m[0][2] + y*m[1][2] + m[2][2]
	if w == 0 {
		return 0, 0, false
	}
	px = (x*m[0][0] + y*m[1][0] + m[2][0]) / w
	py = (x*m[0][1] + y*m[1][1] + m[2][1]) / w
	return px, py, true
}

// Scale returns m with every entry multiplied by s.
func (m Mat3) Scale(s float64) Mat3 {
	for i := range m {
		for j := range m[i] {
			m[i][j] *= s
		}
	}
	return m
}

// Normalize divides every entry by m[2][2]. m is returned unchanged when
// m[2][2] is zero.
func (m Mat3) Normalize() Mat3 {
	s := m[2][2]
	if s == 0 {
		return m
	}
	for i := range m {
		for j := range m[i] {
			m[i][j] /= s
		}
	}
	return m
}

// GL expands m into a column-major 4x4 matrix, placing the 3x3 entries in
// rows/columns 0, 1 and 3 and leaving z as identity.
func (m Mat3) GL() geom.Mat4 {
	gl := geom.Identity4()
	gl[0] = m[0][0]
	gl[1] = m[0][1]
	gl[3] = m[0][2]

	gl[4] = m[1][0]
	gl[5] = m[1][1]
	gl[7] = m[1][2]

	gl[12] = m[2][0]
	gl[13] = m[2][1]
	gl[15] = m[2][2]
	return gl
}
