package scene

import (
	"github.com/hajimehoshi/ebiten/v2"

	"github.com/younwookim/apputils/internal/application/state"
)

// Runner wraps a Scene and tracks its lifecycle flags.
// Entering and exiting are never set at the same time.
type Runner struct {
	scene Scene

	setup   bool
	running bool
	phase   state.Phase
	first   bool
	done    bool
}

// NewRunner wraps s. The scene starts running, idle and not set up.
func NewRunner(s Scene) *Runner {
	return &Runner{scene: s, running: true}
}

// Scene returns the wrapped scene.
func (r *Runner) Scene() Scene { return r.scene }

// Name returns the wrapped scene's name.
func (r *Runner) Name() string { return r.scene.Name() }

// SingleSetup reports whether the wrapped scene sets up only once.
func (r *Runner) SingleSetup() bool {
	if p, ok := r.scene.(singleSetupPolicy); ok {
		return p.SingleSetup()
	}
	return true
}

// Setup runs the scene's Setup if it has not run yet.
func (r *Runner) Setup() {
	if r.setup {
		return
	}
	r.scene.Setup()
	r.setup = true
}

// Update routes the tick to UpdateEnter, UpdateExit or Update.
// No-op unless the scene is set up and running.
func (r *Runner) Update() {
	if !r.setup || !r.running {
		return
	}

	switch r.phase {
	case state.PhaseEntering:
		r.scene.UpdateEnter(r)
		if r.phase == state.PhaseEntering {
			r.first = false
		}
	case state.PhaseExiting:
		r.scene.UpdateExit(r)
		if r.phase == state.PhaseExiting {
			r.first = false
		}
	default:
		r.scene.Update(r)
	}
}

// Draw draws the scene if it is set up. Paused scenes still draw.
func (r *Runner) Draw(screen *ebiten.Image) {
	if !r.setup {
		return
	}
	r.scene.Draw(screen)
}

// StartEntering begins the enter transition and clears the done flag.
func (r *Runner) StartEntering() {
	r.phase = state.PhaseEntering
	r.first = true
	r.done = false
}

// FinishedEntering ends the enter transition.
func (r *Runner) FinishedEntering() {
	if r.phase == state.PhaseEntering {
		r.phase = state.PhaseIdle
		r.first = false
	}
}

// IsEntering reports whether the scene is entering.
func (r *Runner) IsEntering() bool { return r.phase == state.PhaseEntering }

// IsEnteringFirst reports whether this is the first entering tick.
func (r *Runner) IsEnteringFirst() bool { return r.phase == state.PhaseEntering && r.first }

// StartExiting begins the exit transition.
func (r *Runner) StartExiting() {
	r.phase = state.PhaseExiting
	r.first = true
}

// FinishedExiting ends the exit transition.
func (r *Runner) FinishedExiting() {
	if r.phase == state.PhaseExiting {
		r.phase = state.PhaseIdle
		r.first = false
	}
}

// IsExiting reports whether the scene is exiting.
func (r *Runner) IsExiting() bool { return r.phase == state.PhaseExiting }

// IsExitingFirst reports whether this is the first exiting tick.
func (r *Runner) IsExitingFirst() bool { return r.phase == state.PhaseExiting && r.first }

// Phase returns the current transition phase.
func (r *Runner) Phase() state.Phase { return r.phase }

// Done marks the scene as wanting to end. It does not start exiting.
func (r *Runner) Done() { r.done = true }

// IsDone reports whether the scene wants to end.
func (r *Runner) IsDone() bool { return r.done }

// Run pauses or resumes updates.
func (r *Runner) Run(run bool) { r.running = run }

// RunToggle flips the running flag.
func (r *Runner) RunToggle() { r.running = !r.running }

// IsRunning reports whether updates are forwarded.
func (r *Runner) IsRunning() bool { return r.running }

// IsSetup reports whether Setup has run.
func (r *Runner) IsSetup() bool { return r.setup }

// Exit is called when the scene is swapped out. Any transition in flight
// is abandoned. Scenes that set up on each activation are torn down.
func (r *Runner) Exit() {
	r.phase = state.PhaseIdle
	r.first = false
	if !r.SingleSetup() {
		r.Teardown()
	}
}

// Teardown releases the scene's resources if it was set up.
func (r *Runner) Teardown() {
	if !r.setup {
		return
	}
	r.scene.Teardown()
	r.setup = false
}
