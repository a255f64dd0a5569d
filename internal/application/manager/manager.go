// Package manager drives a set of scenes and the transitions between them.
package manager

import (
	"log/slog"
	"math"
	"slices"
	"time"

	"cogentcore.org/core/base/keylist"
	"github.com/hajimehoshi/ebiten/v2"

	"github.com/younwookim/apputils/internal/application/scene"
	"github.com/younwookim/apputils/internal/domain/timer"
)

// NoScene is the current index when no scene is active.
const NoScene = -1

// DefaultMinChangeInterval is the default debounce between accepted changes.
const DefaultMinChangeInterval = 100 * time.Millisecond

// noChange marks the absence of a pending request.
const noChange = math.MinInt

// Manager owns a named, ordered collection of scenes. Next and Prev follow
// insertion order. Scene changes are requested with Goto and friends and
// carried out by Update once the outgoing scene has finished exiting.
//
// Not safe for concurrent use; call it from the game loop only.
type Manager struct {
	logger *slog.Logger

	scenes *keylist.List[string, *scene.Runner]

	current       int
	currentRunner *scene.Runner
	pending       int
	changeNow     bool
	overlap       bool

	minChangeInterval   time.Duration
	changeTimer         *timer.Timer
	changed             bool
	signalledAutoChange bool
}

// New creates an empty manager. A nil clock uses the system clock.
func New(clock timer.Clock, logger *slog.Logger) *Manager {
	if logger == nil {
		logger = slog.Default()
	}
	m := &Manager{
		logger:            logger.With("component", "scene.manager"),
		scenes:            keylist.New[string, *scene.Runner](),
		current:           NoScene,
		pending:           noChange,
		minChangeInterval: DefaultMinChangeInterval,
		changeTimer:       timer.New(clock),
	}
	m.changeTimer.Set()
	return m
}

// Add takes ownership of s. Names must be unique.
func (m *Manager) Add(s scene.Scene) bool {
	if s == nil {
		m.logger.Warn("cannot add nil scene")
		return false
	}
	if err := m.scenes.Add(s.Name(), scene.NewRunner(s)); err != nil {
		m.logger.Warn("scene already added, only unique names allowed", "scene", s.Name())
		return false
	}
	return true
}

// Remove tears down and drops the named scene.
func (m *Manager) Remove(name string) bool {
	idx := m.scenes.IndexByKey(name)
	if idx < 0 {
		m.logger.Warn("cannot remove unknown scene", "scene", name)
		return false
	}

	m.scenes.Values[idx].Teardown()
	m.scenes.DeleteByIndex(idx, idx+1)

	switch {
	case m.current == idx:
		m.current = NoScene
		m.currentRunner = nil
	case m.current > idx:
		m.current--
	}
	switch {
	case m.pending == idx:
		m.pending = noChange
		m.changeNow = false
	case m.pending != noChange && m.pending > idx:
		m.pending--
	}
	return true
}

// Clear tears down and drops every scene.
func (m *Manager) Clear() {
	for _, r := range m.scenes.Values {
		r.Teardown()
	}
	m.scenes.Reset()
	m.current = NoScene
	m.currentRunner = nil
	m.pending = noChange
	m.changeNow = false
}

// Setup sets up every scene when loadAll is true, otherwise only the
// current one.
func (m *Manager) Setup(loadAll bool) {
	if loadAll {
		for _, r := range m.scenes.Values {
			r.Setup()
		}
		return
	}
	if m.currentRunner != nil {
		m.currentRunner.Setup()
	}
}

// Update applies pending scene changes, then updates the current scene and,
// in overlap mode, the incoming one.
func (m *Manager) Update() {
	m.handleSceneChanges()

	if r := m.currentRunner; r != nil {
		r.Setup()
		r.Update()

		if r.IsDone() && !m.signalledAutoChange {
			if m.Next(false) {
				m.signalledAutoChange = true
			}
		}
	}

	if r := m.incoming(); r != nil {
		r.Setup()
		r.Update()
	}
}

// Draw draws the current scene and, in overlap mode, the incoming scene
// on top of it.
func (m *Manager) Draw(screen *ebiten.Image) {
	if m.currentRunner != nil {
		m.currentRunner.Draw(screen)
	}
	if r := m.incoming(); r != nil {
		r.Draw(screen)
	}
}

// KeyPressed forwards a key press to the current scene.
func (m *Manager) KeyPressed(key ebiten.Key) {
	if h, ok := m.Current().(scene.KeyHandler); ok {
		h.KeyPressed(key)
	}
}

// PointerPressed forwards a pointer press to the current scene.
func (m *Manager) PointerPressed(x, y float64) {
	if h, ok := m.Current().(scene.PointerHandler); ok {
		h.PointerPressed(x, y)
	}
}

// PointerDragged forwards a pointer drag to the current scene.
func (m *Manager) PointerDragged(x, y float64) {
	if h, ok := m.Current().(scene.PointerHandler); ok {
		h.PointerDragged(x, y)
	}
}

// PointerReleased forwards a pointer release to the current scene.
func (m *Manager) PointerReleased(x, y float64) {
	if h, ok := m.Current().(scene.PointerHandler); ok {
		h.PointerReleased(x, y)
	}
}

// Run pauses or resumes the current scene.
func (m *Manager) Run(run bool) {
	if m.currentRunner == nil {
		return
	}
	m.currentRunner.Run(run)
	m.logger.Debug("scene run", "scene", m.currentRunner.Name(), "running", run)
}

// RunToggle flips the current scene's running flag.
func (m *Manager) RunToggle() {
	m.Run(!m.IsRunning())
}

// IsRunning reports whether the current scene is running.
// False when there is no current scene.
func (m *Manager) IsRunning() bool {
	if m.currentRunner == nil {
		return false
	}
	return m.currentRunner.IsRunning()
}

// Goto requests a change to scene i. Unless now is set, the current scene
// starts exiting and scene i starts entering right away; the swap happens
// in Update once the current scene has finished exiting. With now set the
// swap happens on the next Update without transitions.
// It reports whether the request was accepted.
func (m *Manager) Goto(i int, now bool) bool {
	if m.scenes.Len() == 0 || i < 0 || i >= m.scenes.Len() {
		m.logger.Warn("ignoring goto to invalid scene", "index", i, "scenes", m.scenes.Len())
		return false
	}
	return m.request(i, now)
}

// GotoName is Goto by scene name.
func (m *Manager) GotoName(name string, now bool) bool {
	idx := m.scenes.IndexByKey(name)
	if idx < 0 {
		m.logger.Warn("could not find scene", "scene", name)
		return false
	}
	return m.Goto(idx, now)
}

// Next goes to the following scene, wrapping to the first.
func (m *Manager) Next(now bool) bool {
	if m.current+1 >= m.scenes.Len() {
		return m.Goto(0, now)
	}
	return m.Goto(m.current+1, now)
}

// Prev goes to the preceding scene, wrapping to the last.
func (m *Manager) Prev(now bool) bool {
	if m.current-1 < 0 {
		return m.Goto(m.scenes.Len()-1, now)
	}
	return m.Goto(m.current-1, now)
}

// None requests that no scene be active.
func (m *Manager) None(now bool) bool {
	return m.request(NoScene, now)
}

func (m *Manager) request(i int, now bool) bool {
	if m.changed && m.changeTimer.Elapsed() < m.minChangeInterval {
		m.logger.Debug("ignoring scene change within min change interval", "index", i)
		return false
	}
	if i == m.current {
		m.logger.Warn("ignoring duplicate goto scene change", "index", i)
		return false
	}

	if !now {
		if m.currentRunner != nil {
			m.currentRunner.StartExiting()
		}
		if i != NoScene {
			m.scenes.Values[i].StartEntering()
		}
	}

	m.pending = i
	m.changeNow = now
	m.changed = true
	m.changeTimer.Set()
	m.logger.Debug("goto scene", "index", i, "now", now)
	return true
}

func (m *Manager) handleSceneChanges() {
	if m.pending == noChange {
		return
	}

	if m.pending == m.current {
		if m.currentRunner != nil && m.currentRunner.IsEntering() {
			m.logger.Warn("ignoring duplicate scene change, current scene is not done entering")
			m.changeTimer.Set()
		}
		m.pending = noChange
		m.changeNow = false
		return
	}

	// Wait for the outgoing scene to finish exiting.
	if m.currentRunner != nil && !m.changeNow && m.currentRunner.IsExiting() {
		return
	}

	if m.currentRunner != nil {
		m.currentRunner.Exit()
	}

	m.current = m.pending
	m.currentRunner = m.runnerAt(m.current)
	m.pending = noChange
	m.changeNow = false
	m.signalledAutoChange = false
	m.changeTimer.Set()
	m.logger.Debug("changed scene", "index", m.current, "scene", m.CurrentName())
}

// incoming returns the runner being transitioned to in overlap mode.
func (m *Manager) incoming() *scene.Runner {
	if !m.overlap || m.pending == noChange || m.pending == m.current {
		return nil
	}
	return m.runnerAt(m.pending)
}

func (m *Manager) runnerAt(i int) *scene.Runner {
	if i < 0 || i >= m.scenes.Len() {
		return nil
	}
	return m.scenes.Values[i]
}

// Current returns the current scene, or nil.
func (m *Manager) Current() scene.Scene {
	if m.currentRunner == nil {
		return nil
	}
	return m.currentRunner.Scene()
}

// CurrentRunner returns the current scene's runner, or nil.
func (m *Manager) CurrentRunner() *scene.Runner {
	return m.currentRunner
}

// CurrentIndex returns the current scene index, or NoScene.
func (m *Manager) CurrentIndex() int {
	return m.current
}

// CurrentName returns the current scene name, or "".
func (m *Manager) CurrentName() string {
	if m.currentRunner == nil {
		return ""
	}
	return m.currentRunner.Name()
}

// Pending returns the index of the requested scene, if a change is pending.
// The index may be NoScene.
func (m *Manager) Pending() (int, bool) {
	if m.pending == noChange {
		return 0, false
	}
	return m.pending, true
}

// SceneAt returns scene i, or nil if i is out of range.
func (m *Manager) SceneAt(i int) scene.Scene {
	r := m.runnerAt(i)
	if r == nil {
		m.logger.Warn("scene index out of range", "index", i)
		return nil
	}
	return r.Scene()
}

// Scene returns the named scene, or nil if it is unknown.
func (m *Manager) Scene(name string) scene.Scene {
	r := m.Runner(name)
	if r == nil {
		return nil
	}
	return r.Scene()
}

// Runner returns the named scene's runner, or nil if it is unknown.
func (m *Manager) Runner(name string) *scene.Runner {
	r, ok := m.scenes.AtTry(name)
	if !ok {
		m.logger.Warn("could not find scene", "scene", name)
		return nil
	}
	return r
}

// Names returns the scene names in order.
func (m *Manager) Names() []string {
	return slices.Clone(m.scenes.Keys)
}

// Len returns the number of scenes.
func (m *Manager) Len() int {
	return m.scenes.Len()
}

// SetOverlap enables updating and drawing the incoming scene alongside the
// outgoing one during a transition.
func (m *Manager) SetOverlap(overlap bool) {
	m.overlap = overlap
}

// Overlap reports whether overlap mode is on.
func (m *Manager) Overlap() bool {
	return m.overlap
}

// SetMinChangeInterval sets the debounce between accepted scene changes.
func (m *Manager) SetMinChangeInterval(d time.Duration) {
	if d < 0 {
		d = 0
	}
	m.minChangeInterval = d
}

// MinChangeInterval returns the debounce between accepted scene changes.
func (m *Manager) MinChangeInterval() time.Duration {
	return m.minChangeInterval
}
