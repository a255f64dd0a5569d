package render

import (
	"github.com/hajimehoshi/ebiten/v2"

	"github.com/younwookim/apputils/internal/domain/geom"
)

// Default grid resolution for the warp mesh.
const (
	DefaultGridCols = 16
	DefaultGridRows = 16
)

// WarpMesh is a grid of triangles covering a source surface. Each vertex is
// projected through a transform so the surface can be drawn with a
// perspective warp. A finer grid follows the perspective more closely.
type WarpMesh struct {
	cols, rows    int
	width, height float64

	verts []ebiten.Vertex
	inds  []uint32
}

// NewWarpMesh creates a mesh of cols x rows cells. Values below 1 are
// clamped to 1.
func NewWarpMesh(cols, rows int) *WarpMesh {
	if cols < 1 {
		cols = 1
	}
	if rows < 1 {
		rows = 1
	}

	vcols := cols + 1
	m := &WarpMesh{
		cols:  cols,
		rows:  rows,
		verts: make([]ebiten.Vertex, vcols*(rows+1)),
		inds:  make([]uint32, cols*rows*6),
	}

	ii := 0
	for r := 0; r < rows; r++ {
		for c := 0; c < cols; c++ {
			tl := uint32(r*vcols + c)
			tr := tl + 1
			bl := uint32((r+1)*vcols + c)
			br := bl + 1
			m.inds[ii+0] = tl
			m.inds[ii+1] = bl
			m.inds[ii+2] = tr
			m.inds[ii+3] = tr
			m.inds[ii+4] = bl
			m.inds[ii+5] = br
			ii += 6
		}
	}
	return m
}

// Cols returns the number of grid columns.
func (m *WarpMesh) Cols() int { return m.cols }

// Rows returns the number of grid rows.
func (m *WarpMesh) Rows() int { return m.rows }

// Vertices returns the vertex slice from the last Build.
func (m *WarpMesh) Vertices() []ebiten.Vertex { return m.verts }

// Indices returns the triangle indices.
func (m *WarpMesh) Indices() []uint32 { return m.inds }

// Build lays the grid over a width x height surface and projects every
// vertex through t. It reports false if any vertex projects to infinity,
// in which case the mesh should not be drawn.
func (m *WarpMesh) Build(t geom.Mat4, width, height float64) bool {
	m.width = width
	m.height = height

	vcols := m.cols + 1
	cellW := width / float64(m.cols)
	cellH := height / float64(m.rows)
	ok := true

	for r := 0; r <= m.rows; r++ {
		for c := 0; c <= m.cols; c++ {
			idx := r*vcols + c
			x := float64(c) * cellW
			y := float64(r) * cellH

			dx, dy, valid := t.Project(x, y)
			if !valid {
				ok = false
			}
			m.verts[idx] = ebiten.Vertex{
				DstX: float32(dx), DstY: float32(dy),
				SrcX: float32(x), SrcY: float32(y),
				ColorR: 1, ColorG: 1, ColorB: 1, ColorA: 1,
			}
		}
	}
	return ok
}

// Draw builds the mesh for src under t and draws it onto dst.
func (m *WarpMesh) Draw(dst, src *ebiten.Image, t geom.Mat4) {
	b := src.Bounds()
	if !m.Build(t, float64(b.Dx()), float64(b.Dy())) {
		return
	}

	var op ebiten.DrawTrianglesOptions
	op.Filter = ebiten.FilterLinear
	dst.DrawTriangles32(m.verts, m.inds, src, &op)
}
