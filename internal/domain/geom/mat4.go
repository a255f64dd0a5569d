package geom

// Mat4 is a 4x4 matrix stored column-major (OpenGL layout):
// element (row r, col c) lives at index c*4+r.
type Mat4 [16]float64

// Identity4 returns the 4x4 identity matrix.
func Identity4() Mat4 {
	return Mat4{
		1, 0, 0, 0,
		0, 1, 0, 0,
		0, 0, 1, 0,
		0, 0, 0, 1,
	}
}

// At returns element (row, col).
func (m Mat4) At(row, col int) float64 {
	return m[col*4+row]
}

// Mul returns m * n.
func (m Mat4) Mul(n Mat4) Mat4 {
	var out Mat4
	for c := 0; c < 4; c++ {
		for r := 0; r < 4; r++ {
			var sum float64
			for k := 0; k < 4; k++ {
				sum += m[k*4+r] * n[c*4+k]
			}
			out[c*4+r] = sum
		}
	}
	return out
}

// IsIdentity reports whether m equals the identity exactly.
func (m Mat4) IsIdentity() bool {
	return m == Identity4()
}

// Project maps (x, y, 0, 1) through m and divides by w.
// ok is false when w is zero.
func (m Mat4) Project(x, y float64) (px, py float64, ok bool) {
	w := m[3]*x + m[7]*y + m[15]
	if w == 0 {
		return 0, 0, false
	}
	px = (m[0]*x + m[4]*y + m[12]) / w
	py = (m[1]*x + m[5]*y + m[13]) / w
	return px, py, true
}
