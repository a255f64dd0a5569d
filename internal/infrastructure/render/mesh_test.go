package render

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/younwookim/apputils/internal/domain/geom"
	"github.com/younwookim/apputils/internal/domain/warp"
)

func TestWarpMesh_Dimensions(t *testing.T) {
	m := NewWarpMesh(4, 3)
	assert.Len(t, m.Vertices(), 20)
	assert.Len(t, m.Indices(), 72)

	m = NewWarpMesh(0, -2)
	assert.Equal(t, 1, m.Cols())
	assert.Equal(t, 1, m.Rows())
	assert.Len(t, m.Vertices(), 4)
	assert.Len(t, m.Indices(), 6)
}

func TestWarpMesh_BuildIdentity(t *testing.T) {
	m := NewWarpMesh(2, 2)
	assert.True(t, m.Build(geom.Identity4(), 100, 50))

	for _, v := range m.Vertices() {
		assert.Equal(t, v.SrcX, v.DstX)
		assert.Equal(t, v.SrcY, v.DstY)
	}
	last := m.Vertices()[len(m.Vertices())-1]
	assert.Equal(t, float32(100), last.SrcX)
	assert.Equal(t, float32(50), last.SrcY)
}

func TestWarpMesh_BuildWarped(t *testing.T) {
	w := warp.New(nil, nil)
	w.SetSize(640, 480)
	w.SetPointXY(warp.LowerRight, 0.5, 0.5)

	m := NewWarpMesh(4, 4)
	assert.True(t, m.Build(w.Matrix(), 640, 480))

	verts := m.Vertices()
	first, last := verts[0], verts[len(verts)-1]
	assert.InDelta(t, 0, first.DstX, 1e-3)
	assert.InDelta(t, 0, first.DstY, 1e-3)
	assert.InDelta(t, 320, last.DstX, 1e-3)
	assert.InDelta(t, 240, last.DstY, 1e-3)
}

func TestWarpMesh_BuildDegenerate(t *testing.T) {
	var zero geom.Mat4
	m := NewWarpMesh(1, 1)
	assert.False(t, m.Build(zero, 10, 10))
}
