// Package render holds the drawing side of the warp: a transform stack and
// the grid mesh that presents the offscreen surface through it.
package render

import (
	"log/slog"

	"github.com/younwookim/apputils/internal/domain/geom"
)

// MatrixStack is a push/pop stack of 4x4 transforms. The base entry is the
// identity and can never be popped.
type MatrixStack struct {
	logger  *slog.Logger
	entries []geom.Mat4
}

// NewMatrixStack returns a stack holding only the identity.
func NewMatrixStack(logger *slog.Logger) *MatrixStack {
	if logger == nil {
		logger = slog.Default()
	}
	return &MatrixStack{
		logger:  logger.With("component", "render.stack"),
		entries: []geom.Mat4{geom.Identity4()},
	}
}

// Push duplicates the top entry.
func (s *MatrixStack) Push() {
	s.entries = append(s.entries, s.Top())
}

// Pop discards the top entry. Popping the base entry is ignored.
func (s *MatrixStack) Pop() {
	if len(s.entries) == 1 {
		s.logger.Warn("ignoring pop of base transform")
		return
	}
	s.entries = s.entries[:len(s.entries)-1]
}

// Multiply post-multiplies the top entry by m.
func (s *MatrixStack) Multiply(m geom.Mat4) {
	top := len(s.entries) - 1
	s.entries[top] = s.entries[top].Mul(m)
}

// Top returns the current transform.
func (s *MatrixStack) Top() geom.Mat4 {
	return s.entries[len(s.entries)-1]
}

// Depth returns the number of pushes not yet popped.
func (s *MatrixStack) Depth() int {
	return len(s.entries) - 1
}
