package warp

import (
	"image/color"
	"log/slog"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"

	"github.com/younwookim/apputils/internal/domain/geom"
)

const (
	// SelectRadius is the normalized pick distance around a control point.
	SelectRadius = 0.1
	// ExitBoxSize is the side of the centred box that leaves edit mode.
	ExitBoxSize = 100.0
)

var colorExitBox = color.RGBA{0, 255, 0, 128}

const editHelp = "Quad Warper Edit Mode\nDrag from the corners of the screen\nClick center rectangle to exit"

// Editor lets the user drag the warp's control points with a pointer.
// Pointer coordinates are in window pixels.
type Editor struct {
	warper *Warper
	logger *slog.Logger

	editing  bool
	selected int
	viewW    float64
	viewH    float64
}

// NewEditor creates an editor for w, initially not editing.
func NewEditor(w *Warper, logger *slog.Logger) *Editor {
	if logger == nil {
		logger = slog.Default()
	}
	return &Editor{
		warper:   w,
		logger:   logger.With("component", "warp.editor"),
		selected: -1,
		viewW:    1,
		viewH:    1,
	}
}

// SetViewSize sets the window size pointer coordinates are relative to.
func (e *Editor) SetViewSize(w, h float64) {
	if w <= 0 || h <= 0 {
		e.logger.Warn("ignoring invalid view size", "width", w, "height", h)
		return
	}
	e.viewW = w
	e.viewH = h
}

// SetEditing enters or leaves edit mode.
func (e *Editor) SetEditing(editing bool) {
	e.editing = editing
	if !editing {
		e.selected = -1
	}
}

// IsEditing reports whether edit mode is on.
func (e *Editor) IsEditing() bool {
	return e.editing
}

// Selected returns the index of the point being dragged, or -1.
func (e *Editor) Selected() int {
	return e.selected
}

func (e *Editor) exitBox() geom.Rect {
	return geom.CenteredRect(e.viewW/2, e.viewH/2, ExitBoxSize, ExitBoxSize)
}

// PointerPressed handles a press at (x, y). A press in the centre box leaves
// edit mode; otherwise the nearest point within SelectRadius is selected.
// It reports whether the press was consumed.
func (e *Editor) PointerPressed(x, y float64) bool {
	if !e.editing {
		return false
	}

	if e.exitBox().Contains(x, y) {
		e.SetEditing(false)
		e.logger.Debug("left edit mode")
		return true
	}

	pointer := geom.Point{X: x / e.viewW, Y: y / e.viewH}
	smallest := 1.0
	e.selected = -1
	for i, p := range e.warper.Points() {
		d := p.Dist(pointer)
		if d < smallest && d < SelectRadius {
			e.selected = i
			smallest = d
		}
	}
	return true
}

// PointerDragged moves the selected point to (x, y).
func (e *Editor) PointerDragged(x, y float64) {
	if !e.editing || e.selected < 0 {
		return
	}
	e.warper.SetPointXY(e.selected, x/e.viewW, y/e.viewH)
}

// PointerReleased drops the current selection.
func (e *Editor) PointerReleased() {
	e.selected = -1
}

// Draw renders the control points, the exit box and help text.
func (e *Editor) Draw(dst *ebiten.Image) {
	if !e.editing {
		return
	}
	e.warper.DrawPoints(dst, e.viewW, e.viewH)

	b := e.exitBox()
	ebitenutil.DrawRect(dst, b.X, b.Y, b.Width, b.Height, colorExitBox)
	ebitenutil.DebugPrintAt(dst, editHelp, 28, 28)
}
