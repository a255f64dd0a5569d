package system

import (
	"slices"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// InputState holds the input for one frame
type InputState struct {
	// Keys pressed this frame
	Keys []ebiten.Key
	// Cursor position in window pixels
	MouseX int
	MouseY int
	// Left button edges and level
	MousePressed  bool
	MouseDown     bool
	MouseReleased bool
}

// KeyPressed reports whether key was pressed this frame
func (s InputState) KeyPressed(key ebiten.Key) bool {
	return slices.Contains(s.Keys, key)
}

// MouseDragged reports whether the pointer is held down and not just pressed
func (s InputState) MouseDragged() bool {
	return s.MouseDown && !s.MousePressed
}

// InputSource yields one InputState per frame. ok is false once the
// source has no more input.
type InputSource interface {
	GetInput() (state InputState, ok bool)
}

// InputSystem reads live input from ebiten
type InputSystem struct {
	keys []ebiten.Key
}

// NewInputSystem creates a new input system
func NewInputSystem() *InputSystem {
	return &InputSystem{}
}

// GetInput reads the current input state. It never runs out.
func (s *InputSystem) GetInput() (InputState, bool) {
	s.keys = inpututil.AppendJustPressedKeys(s.keys[:0])
	mx, my := ebiten.CursorPosition()
	return InputState{
		Keys:          slices.Clone(s.keys),
		MouseX:        mx,
		MouseY:        my,
		MousePressed:  inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft),
		MouseDown:     ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft),
		MouseReleased: inpututil.IsMouseButtonJustReleased(ebiten.MouseButtonLeft),
	}, true
}
