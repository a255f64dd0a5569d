// Package warp maps a rectangular render surface onto an arbitrary
// quadrilateral (corner-pin / keystone correction).
package warp

import (
	"image/color"
	"log/slog"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"

	"github.com/younwookim/apputils/internal/domain/geom"
	"github.com/younwookim/apputils/internal/domain/homography"
)

// Corner indexes, in control point order.
const (
	UpperLeft = iota
	UpperRight
	LowerRight
	LowerLeft
	NumPoints
)

// DefaultSettingsFile is the default warp settings file name.
const DefaultSettingsFile = "quadWarper.xml"

const pointSize = 8.0

var colorPoint = color.RGBA{0, 255, 0, 255}

// DefaultPoints are the identity control points.
var DefaultPoints = [NumPoints]geom.Point{{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 1, Y: 1}, {X: 0, Y: 1}}

// Stack is the transform stack the warp is applied to.
type Stack interface {
	Push()
	Pop()
	Multiply(m geom.Mat4)
}

// Warper owns four normalized control points and the perspective matrix
// derived from them. Not safe for concurrent use.
type Warper struct {
	stack  Stack
	logger *slog.Logger

	points        [NumPoints]geom.Point
	width, height float64

	homography homography.Mat3
	matrix     geom.Mat4
	pushed     bool
}

// New creates a warper with identity points and a 1x1 size.
// stack may be nil, in which case Push and Pop only track state.
func New(stack Stack, logger *slog.Logger) *Warper {
	if logger == nil {
		logger = slog.Default()
	}
	w := &Warper{
		stack:  stack,
		logger: logger.With("component", "warp"),
	}
	w.Reset()
	return w
}

// SetSize sets the render surface size and rebuilds the matrix.
func (w *Warper) SetSize(width, height float64) {
	w.width = width
	w.height = height
	w.rebuild()
}

// Size returns the render surface size.
func (w *Warper) Size() (width, height float64) {
	return w.width, w.height
}

// SetPoint sets control point i to p (normalized to [0,1]).
// Out of range indexes are ignored.
func (w *Warper) SetPoint(i int, p geom.Point) {
	if i < 0 || i >= NumPoints {
		w.logger.Warn("ignoring out of range warp point", "index", i)
		return
	}
	w.points[i] = p
	w.rebuild()
}

// SetPointXY is SetPoint with separate coordinates.
func (w *Warper) SetPointXY(i int, x, y float64) {
	w.SetPoint(i, geom.Point{X: x, Y: y})
}

// Point returns control point i. Out of range indexes log a warning and
// return point 0.
func (w *Warper) Point(i int) geom.Point {
	if i < 0 || i >= NumPoints {
		w.logger.Warn("out of range warp point, returning point 0", "index", i)
		return w.points[0]
	}
	return w.points[i]
}

// Points returns a copy of all control points.
func (w *Warper) Points() [NumPoints]geom.Point {
	return w.points
}

// Reset restores the identity points and a 1x1 size.
func (w *Warper) Reset() {
	w.points = DefaultPoints
	w.width = 1
	w.height = 1
	w.rebuild()
}

// Homography returns the raw quad-to-quad matrix for the current state.
func (w *Warper) Homography() homography.Mat3 {
	return w.homography
}

// Matrix returns the 4x4 column-major warp matrix.
func (w *Warper) Matrix() geom.Mat4 {
	return w.matrix
}

// Push applies the warp to the stack. Calling Push twice without a Pop is
// a no-op.
func (w *Warper) Push() {
	if w.pushed {
		return
	}
	if w.stack != nil {
		w.stack.Push()
		w.stack.Multiply(w.matrix)
	}
	w.pushed = true
}

// Pop restores the stack saved by Push. No-op if not pushed.
func (w *Warper) Pop() {
	if !w.pushed {
		return
	}
	if w.stack != nil {
		w.stack.Pop()
	}
	w.pushed = false
}

// IsPushed reports whether the warp is currently applied.
func (w *Warper) IsPushed() bool {
	return w.pushed
}

// MapPoint maps a render surface coordinate through the warp.
func (w *Warper) MapPoint(x, y float64) (float64, float64, bool) {
	return w.matrix.Project(x, y)
}

// DrawPoints draws a marker at each control point scaled to (width, height).
func (w *Warper) DrawPoints(dst *ebiten.Image, width, height float64) {
	for _, p := range w.points {
		x := p.X*width - pointSize/2
		y := p.Y*height - pointSize/2
		ebitenutil.DrawRect(dst, x, y, pointSize, pointSize, colorPoint)
	}
}

func (w *Warper) rebuild() {
	src := geom.RectQuad(w.width, w.height)
	var dst geom.Quad
	for i, p := range w.points {
		dst[i] = p.Scale(w.width, w.height)
	}

	w.homography = homography.QuadToQuad(src, dst)

	// The composition is only defined up to scale; normalize w so the
	// identity warp yields the identity matrix.
	w.matrix = w.homography.Normalize().GL()
}
