package scene

import (
	"time"

	"github.com/tanema/gween/ease"

	"github.com/younwookim/apputils/internal/domain/timer"
)

// FadeTimer computes a fade alpha for a scene's enter and exit transitions.
// Compose it into a scene and call Enter/Exit from UpdateEnter/UpdateExit.
type FadeTimer struct {
	timer *timer.Timer
	in    time.Duration
	out   time.Duration
	ease  ease.TweenFunc
	alpha float64
}

// NewFadeTimer returns a linear fade with the given durations.
// The alpha starts at 1 so a scene that never enters is fully visible.
func NewFadeTimer(clock timer.Clock, in, out time.Duration) *FadeTimer {
	return &FadeTimer{
		timer: timer.New(clock),
		in:    in,
		out:   out,
		ease:  ease.Linear,
		alpha: 1,
	}
}

// SetEase sets the alpha curve. nil restores linear.
func (f *FadeTimer) SetEase(fn ease.TweenFunc) {
	if fn == nil {
		fn = ease.Linear
	}
	f.ease = fn
}

// SetDurations changes the fade lengths for the next transition.
func (f *FadeTimer) SetDurations(in, out time.Duration) {
	f.in = in
	f.out = out
}

// Durations returns the fade in and fade out lengths.
func (f *FadeTimer) Durations() (in, out time.Duration) {
	return f.in, f.out
}

// Alpha returns the current alpha in [0,1].
func (f *FadeTimer) Alpha() float64 {
	return f.alpha
}

// Enter ramps alpha 0 to 1. The timer is armed on the first entering tick.
// update, if non-nil, runs every tick so the scene keeps animating.
// When the alarm fires alpha snaps to 1 and the runner finishes entering.
func (f *FadeTimer) Enter(r *Runner, update func(*Runner)) {
	if r.IsEnteringFirst() {
		f.timer.SetAlarm(f.in)
	}

	f.alpha = f.curve()
	if update != nil {
		update(r)
	}

	if f.timer.Alarm() {
		f.alpha = 1
		r.FinishedEntering()
	}
}

// Exit ramps alpha 1 to 0, mirroring Enter.
func (f *FadeTimer) Exit(r *Runner, update func(*Runner)) {
	if r.IsExitingFirst() {
		f.timer.SetAlarm(f.out)
	}

	f.alpha = 1 - f.curve()
	if update != nil {
		update(r)
	}

	if f.timer.Alarm() {
		f.alpha = 0
		r.FinishedExiting()
	}
}

func (f *FadeTimer) curve() float64 {
	t := f.timer.ElapsedNormalized()
	if t < 0 {
		t = 0
	} else if t > 1 {
		t = 1
	}
	return float64(f.ease(float32(t), 0, 1, 1))
}

var easings = map[string]ease.TweenFunc{
	"linear":     ease.Linear,
	"inQuad":     ease.InQuad,
	"outQuad":    ease.OutQuad,
	"inOutQuad":  ease.InOutQuad,
	"inCubic":    ease.InCubic,
	"outCubic":   ease.OutCubic,
	"inOutCubic": ease.InOutCubic,
	"inSine":     ease.InSine,
	"outSine":    ease.OutSine,
	"inOutSine":  ease.InOutSine,
	"inExpo":     ease.InExpo,
	"outExpo":    ease.OutExpo,
	"inOutExpo":  ease.InOutExpo,
}

// EaseByName looks up an easing curve by name, e.g. "inOutQuad".
// An empty name is linear.
func EaseByName(name string) (ease.TweenFunc, bool) {
	if name == "" {
		return ease.Linear, true
	}
	fn, ok := easings[name]
	return fn, ok
}
