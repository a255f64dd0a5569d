package warp

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/younwookim/apputils/internal/domain/geom"
)

func newTestEditor() (*Editor, *Warper) {
	w := New(nil, nil)
	w.SetSize(800, 600)
	e := NewEditor(w, nil)
	e.SetViewSize(800, 600)
	return e, w
}

func TestEditor_IgnoresInputWhenNotEditing(t *testing.T) {
	e, w := newTestEditor()

	assert.False(t, e.PointerPressed(5, 5))
	e.PointerDragged(100, 100)

	assert.Equal(t, DefaultPoints, w.Points())
	assert.Equal(t, -1, e.Selected())
}

func TestEditor_SelectAndDrag(t *testing.T) {
	e, w := newTestEditor()
	e.SetEditing(true)

	// Near the lower right corner.
	assert.True(t, e.PointerPressed(790, 590))
	assert.Equal(t, LowerRight, e.Selected())

	e.PointerDragged(400, 300)
	assert.Equal(t, geom.Point{X: 0.5, Y: 0.5}, w.Point(LowerRight))

	e.PointerReleased()
	assert.Equal(t, -1, e.Selected())

	e.PointerDragged(0, 0)
	assert.Equal(t, geom.Point{X: 0.5, Y: 0.5}, w.Point(LowerRight), "no drag after release")
}

func TestEditor_PressFarFromPoints(t *testing.T) {
	e, _ := newTestEditor()
	e.SetEditing(true)

	assert.True(t, e.PointerPressed(200, 150))
	assert.Equal(t, -1, e.Selected())
}

func TestEditor_PicksNearest(t *testing.T) {
	e, w := newTestEditor()
	w.SetPointXY(UpperRight, 0.06, 0)
	e.SetEditing(true)

	// Pointer at 0.05 normalized: closer to the moved upper right point.
	e.PointerPressed(0.05*800, 0)
	assert.Equal(t, UpperRight, e.Selected())
}

func TestEditor_ExitBox(t *testing.T) {
	e, _ := newTestEditor()
	e.SetEditing(true)

	assert.True(t, e.PointerPressed(400, 300))
	assert.False(t, e.IsEditing())
}

func TestEditor_SetViewSizeInvalid(t *testing.T) {
	e, w := newTestEditor()
	e.SetViewSize(0, 0)
	e.SetEditing(true)

	e.PointerPressed(800, 600)
	e.PointerDragged(400, 300)
	assert.Equal(t, geom.Point{X: 0.5, Y: 0.5}, w.Point(LowerRight), "previous view size kept")
}
