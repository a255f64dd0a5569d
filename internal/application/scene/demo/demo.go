// Package demo holds the scenes shown by the demo application.
package demo

import (
	"log/slog"
	"time"

	"github.com/tanema/gween/ease"

	"github.com/younwookim/apputils/internal/domain/timer"
)

// Options configures the demo scenes.
type Options struct {
	Clock   timer.Clock
	Logger  *slog.Logger
	Width   float64
	Height  float64
	FadeIn  time.Duration
	FadeOut time.Duration
	Ease    ease.TweenFunc
}

func (o Options) withDefaults() Options {
	if o.Clock == nil {
		o.Clock = timer.SystemClock{}
	}
	if o.Logger == nil {
		o.Logger = slog.Default()
	}
	if o.Width <= 0 {
		o.Width = 640
	}
	if o.Height <= 0 {
		o.Height = 480
	}
	return o
}
