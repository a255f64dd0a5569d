package system

import (
	"testing"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewInputSystem(t *testing.T) {
	sys := NewInputSystem()

	require.NotNil(t, sys)
	var _ InputSource = sys
}

func TestInputState_KeyPressed(t *testing.T) {
	input := InputState{Keys: []ebiten.Key{ebiten.KeyD, ebiten.KeyArrowRight}}

	assert.True(t, input.KeyPressed(ebiten.KeyD))
	assert.True(t, input.KeyPressed(ebiten.KeyArrowRight))
	assert.False(t, input.KeyPressed(ebiten.KeyQ))
	assert.False(t, InputState{}.KeyPressed(ebiten.KeyD))
}

func TestInputState_MouseDragged(t *testing.T) {
	tests := []struct {
		name     string
		input    InputState
		expected bool
	}{
		{"idle", InputState{}, false},
		{"press frame", InputState{MousePressed: true, MouseDown: true}, false},
		{"held", InputState{MouseDown: true}, true},
		{"release frame", InputState{MouseReleased: true}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.input.MouseDragged())
		})
	}
}
