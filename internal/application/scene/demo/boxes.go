package demo

import (
	"image/color"
	"log/slog"
	"math/rand"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"

	"github.com/younwookim/apputils/internal/application/scene"
	"github.com/younwookim/apputils/internal/domain/geom"
	"github.com/younwookim/apputils/internal/domain/timer"
)

// BoxesName is the name of the Boxes scene.
const BoxesName = "Boxes"

const (
	numBoxes = 100
	boxSize  = 10.0
	maxSpeed = 4.0
)

// DefaultBoxesDuration is how long Boxes runs before asking to move on.
const DefaultBoxesDuration = 10 * time.Second

type box struct {
	pos geom.Point
	vel geom.Point
}

// Boxes bounces red boxes around the surface and reports done once its
// run time is up. Boxes are re-created on every activation. A pointer
// press adds a box under the pointer.
type Boxes struct {
	scene.Base

	logger   *slog.Logger
	runTimer *timer.Timer
	duration time.Duration
	fade     *scene.FadeTimer
	rng      *rand.Rand
	width    float64
	height   float64

	boxes []box
}

// NewBoxes creates the Boxes scene. A duration <= 0 uses
// DefaultBoxesDuration.
func NewBoxes(opts Options, duration time.Duration, seed int64) *Boxes {
	opts = opts.withDefaults()
	if duration <= 0 {
		duration = DefaultBoxesDuration
	}
	fade := scene.NewFadeTimer(opts.Clock, opts.FadeIn, opts.FadeOut)
	fade.SetEase(opts.Ease)
	return &Boxes{
		Base:     scene.Base{SceneName: BoxesName, SetupEachTime: true},
		logger:   opts.Logger.With("component", "scene.boxes"),
		runTimer: timer.New(opts.Clock),
		duration: duration,
		fade:     fade,
		rng:      rand.New(rand.NewSource(seed)),
		width:    opts.Width,
		height:   opts.Height,
	}
}

func (s *Boxes) Setup() {
	s.boxes = make([]box, 0, numBoxes)
	for i := 0; i < numBoxes; i++ {
		s.spawn(geom.Point{X: s.rng.Float64() * s.width, Y: s.rng.Float64() * s.height})
	}
	s.runTimer.SetAlarm(s.duration)
	s.logger.Debug("setup", "boxes", len(s.boxes))
}

func (s *Boxes) spawn(at geom.Point) {
	s.boxes = append(s.boxes, box{
		pos: at,
		vel: geom.Point{
			X: (s.rng.Float64()*2 - 1) * maxSpeed,
			Y: (s.rng.Float64()*2 - 1) * maxSpeed,
		},
	})
}

func (s *Boxes) UpdateEnter(r *scene.Runner) {
	if r.IsEnteringFirst() {
		s.runTimer.SetAlarm(s.duration)
		s.logger.Debug("update enter")
	}
	s.fade.Enter(r, s.Update)
}

func (s *Boxes) Update(r *scene.Runner) {
	for i := range s.boxes {
		b := &s.boxes[i]
		b.pos.X += b.vel.X
		b.pos.Y += b.vel.Y
		if b.pos.X < 0 || b.pos.X > s.width {
			b.vel.X = -b.vel.X
			b.pos.X = clamp(b.pos.X, 0, s.width)
		}
		if b.pos.Y < 0 || b.pos.Y > s.height {
			b.vel.Y = -b.vel.Y
			b.pos.Y = clamp(b.pos.Y, 0, s.height)
		}
	}

	if !r.IsEntering() && !r.IsExiting() && s.runTimer.Alarm() {
		r.Done()
	}
}

func (s *Boxes) UpdateExit(r *scene.Runner) {
	if r.IsExitingFirst() {
		s.logger.Debug("update exit")
	}
	s.fade.Exit(r, s.Update)
}

func (s *Boxes) Draw(screen *ebiten.Image) {
	a := uint8(255 * s.fade.Alpha())
	c := color.RGBA{a, 0, 0, a}
	for _, b := range s.boxes {
		ebitenutil.DrawRect(screen, b.pos.X-boxSize/2, b.pos.Y-boxSize/2, boxSize, boxSize, c)
	}
}

func (s *Boxes) Teardown() {
	s.boxes = nil
	s.logger.Debug("teardown")
}

// PointerPressed adds a box at (x, y).
func (s *Boxes) PointerPressed(x, y float64) {
	s.spawn(geom.Point{X: x, Y: y})
}

func (s *Boxes) PointerDragged(x, y float64) {}

func (s *Boxes) PointerReleased(x, y float64) {}

// Len returns the number of boxes.
func (s *Boxes) Len() int { return len(s.boxes) }

// Alpha returns the current fade alpha.
func (s *Boxes) Alpha() float64 { return s.fade.Alpha() }

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
