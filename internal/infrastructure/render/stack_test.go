package render

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/younwookim/apputils/internal/domain/geom"
	"github.com/younwookim/apputils/internal/domain/warp"
)

func translate(x, y float64) geom.Mat4 {
	m := geom.Identity4()
	m[12] = x
	m[13] = y
	return m
}

func TestMatrixStack_PushPop(t *testing.T) {
	s := NewMatrixStack(nil)
	assert.Equal(t, 0, s.Depth())
	assert.True(t, s.Top().IsIdentity())

	s.Push()
	s.Multiply(translate(10, 20))
	assert.Equal(t, 1, s.Depth())
	assert.Equal(t, translate(10, 20), s.Top())

	s.Push()
	s.Multiply(translate(1, 2))
	assert.Equal(t, translate(11, 22), s.Top())

	s.Pop()
	assert.Equal(t, translate(10, 20), s.Top())
	s.Pop()
	assert.True(t, s.Top().IsIdentity())
}

func TestMatrixStack_PopBase(t *testing.T) {
	s := NewMatrixStack(nil)
	s.Pop()
	assert.Equal(t, 0, s.Depth())
	assert.True(t, s.Top().IsIdentity())
}

func TestMatrixStack_WarpPushPopNetZero(t *testing.T) {
	s := NewMatrixStack(nil)
	w := warp.New(s, nil)
	w.SetSize(640, 480)
	w.SetPointXY(warp.UpperLeft, 0.1, 0.05)

	w.Push()
	require.Equal(t, 1, s.Depth())
	assert.Equal(t, w.Matrix(), s.Top())

	x, y, ok := s.Top().Project(0, 0)
	require.True(t, ok)
	assert.InDelta(t, 64.0, x, 1e-9)
	assert.InDelta(t, 24.0, y, 1e-9)

	w.Pop()
	assert.Equal(t, 0, s.Depth())
	assert.True(t, s.Top().IsIdentity())
}
