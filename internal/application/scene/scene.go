// Package scene defines the Scene interface for application modes.
//
// Each visual mode of the application implements Scene. The manager wraps
// every scene in a Runner, which owns the lifecycle flags and routes the
// per-frame calls to the right callback.
package scene

import "github.com/hajimehoshi/ebiten/v2"

// Scene represents one visual mode of the application.
//
// The manager calls Setup before the first Update, then exactly one of
// UpdateEnter, Update or UpdateExit per tick depending on the transition
// phase. Scenes end their own transitions by calling
// Runner.FinishedEntering and Runner.FinishedExiting.
type Scene interface {
	// Name returns the unique scene name.
	Name() string

	// Setup acquires resources. Called once, or on every activation for
	// scenes that are not single-setup.
	Setup()

	// UpdateEnter is called each tick while the scene is entering.
	UpdateEnter(r *Runner)

	// Update is called each tick while the scene is idle.
	Update(r *Runner)

	// UpdateExit is called each tick while the scene is exiting.
	UpdateExit(r *Runner)

	// Draw renders the scene.
	Draw(screen *ebiten.Image)

	// Teardown releases resources acquired by Setup.
	Teardown()
}

// KeyHandler is implemented by scenes that want key presses.
type KeyHandler interface {
	KeyPressed(key ebiten.Key)
}

// PointerHandler is implemented by scenes that want pointer events.
// Coordinates are in render surface pixels.
type PointerHandler interface {
	PointerPressed(x, y float64)
	PointerDragged(x, y float64)
	PointerReleased(x, y float64)
}

// Base provides default Scene callbacks. Embed it and override what you need.
// Transitions finish instantly unless UpdateEnter/UpdateExit are overridden.
type Base struct {
	SceneName string

	// SetupEachTime makes the scene run Setup on every activation and
	// Teardown when it is swapped out.
	SetupEachTime bool
}

func (b *Base) Name() string { return b.SceneName }

func (b *Base) Setup() {}

func (b *Base) UpdateEnter(r *Runner) { r.FinishedEntering() }

func (b *Base) Update(r *Runner) {}

func (b *Base) UpdateExit(r *Runner) { r.FinishedExiting() }

func (b *Base) Draw(screen *ebiten.Image) {}

func (b *Base) Teardown() {}

// SingleSetup reports whether Setup should run only once.
func (b *Base) SingleSetup() bool { return !b.SetupEachTime }

// singleSetupPolicy is checked on scenes to decide the setup policy.
// Scenes that don't implement it are single-setup.
type singleSetupPolicy interface {
	SingleSetup() bool
}
