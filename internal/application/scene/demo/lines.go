package demo

import (
	"image/color"
	"log/slog"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"

	"github.com/younwookim/apputils/internal/application/scene"
	"github.com/younwookim/apputils/internal/domain/geom"
	"github.com/younwookim/apputils/internal/domain/timer"
)

// LinesName is the name of the Lines scene.
const LinesName = "Lines"

const lineThickness = 5.0

// Lines draws a horizontal and a vertical line sweeping across the surface.
// It fades in and out. Space reverses the sweep.
type Lines struct {
	scene.Base

	logger *slog.Logger
	sweep  *timer.Timer
	fade   *scene.FadeTimer
	width  float64
	height float64

	reversed bool
	horz     [2]geom.Point
	vert     [2]geom.Point
}

// NewLines creates the Lines scene.
func NewLines(opts Options) *Lines {
	opts = opts.withDefaults()
	fade := scene.NewFadeTimer(opts.Clock, opts.FadeIn, opts.FadeOut)
	fade.SetEase(opts.Ease)
	return &Lines{
		Base:   scene.Base{SceneName: LinesName},
		logger: opts.Logger.With("component", "scene.lines"),
		sweep:  timer.New(opts.Clock),
		fade:   fade,
		width:  opts.Width,
		height: opts.Height,
	}
}

func (s *Lines) Setup() {
	s.sweep.Set()
	s.reversed = false
	s.logger.Debug("setup")
}

func (s *Lines) UpdateEnter(r *scene.Runner) {
	if r.IsEnteringFirst() {
		s.logger.Debug("update enter")
	}
	s.fade.Enter(r, s.Update)
	if !r.IsEntering() {
		s.logger.Debug("update enter done")
	}
}

func (s *Lines) Update(r *scene.Runner) {
	t := s.sweep.Elapsed().Seconds()
	if s.reversed {
		t = -t
	}
	// Sweep in [0,1].
	pos := (math.Sin(t) + 1) / 2

	y := pos * s.height
	s.horz = [2]geom.Point{{X: 0, Y: y}, {X: s.width, Y: y}}
	x := pos * s.width
	s.vert = [2]geom.Point{{X: x, Y: 0}, {X: x, Y: s.height}}
}

func (s *Lines) UpdateExit(r *scene.Runner) {
	if r.IsExitingFirst() {
		s.logger.Debug("update exit")
	}
	s.fade.Exit(r, s.Update)
	if !r.IsExiting() {
		s.logger.Debug("update exit done")
	}
}

func (s *Lines) Draw(screen *ebiten.Image) {
	a := uint8(255 * s.fade.Alpha())
	c := color.RGBA{a, a, a, a}
	for _, l := range [][2]geom.Point{s.horz, s.vert} {
		drawThickLine(screen, l[0], l[1], c)
	}
}

func (s *Lines) Teardown() {
	s.logger.Debug("teardown")
}

// KeyPressed reverses the sweep on space.
func (s *Lines) KeyPressed(key ebiten.Key) {
	if key == ebiten.KeySpace {
		s.reversed = !s.reversed
	}
}

// Alpha returns the current fade alpha.
func (s *Lines) Alpha() float64 { return s.fade.Alpha() }

// Segments returns the horizontal and vertical line end points.
func (s *Lines) Segments() (horz, vert [2]geom.Point) { return s.horz, s.vert }

func drawThickLine(dst *ebiten.Image, a, b geom.Point, c color.Color) {
	// Axis-aligned lines only: draw as a rectangle centred on the segment.
	if a.Y == b.Y {
		ebitenutil.DrawRect(dst, a.X, a.Y-lineThickness/2, b.X-a.X, lineThickness, c)
		return
	}
	if a.X == b.X {
		ebitenutil.DrawRect(dst, a.X-lineThickness/2, a.Y, lineThickness, b.Y-a.Y, c)
		return
	}
	ebitenutil.DrawLine(dst, a.X, a.Y, b.X, b.Y, c)
}
