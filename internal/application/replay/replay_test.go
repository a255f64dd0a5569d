package replay

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/younwookim/apputils/internal/application/system"
)

func TestReplayer_GetInput(t *testing.T) {
	data := ReplayData{
		Version: Version,
		Seed:    42,
		Scene:   "Lines",
		Frames: []FrameInput{
			{F: 0, K: []int{int(ebiten.KeyD)}, MX: 100, MY: 100},
			{F: 1, MX: 110, MY: 95, MP: true, MD: true},
			{F: 2, MX: 120, MY: 90, MR: true},
		},
	}

	replayer := NewReplayer(data)

	// Frame 0
	input, ok := replayer.GetInput()
	require.True(t, ok)
	assert.True(t, input.KeyPressed(ebiten.KeyD))
	assert.False(t, input.MousePressed)
	assert.Equal(t, 100, input.MouseX)

	// Frame 1
	input, ok = replayer.GetInput()
	require.True(t, ok)
	assert.Empty(t, input.Keys)
	assert.True(t, input.MousePressed)
	assert.True(t, input.MouseDown)
	assert.Equal(t, 95, input.MouseY)

	// Frame 2
	input, ok = replayer.GetInput()
	require.True(t, ok)
	assert.True(t, input.MouseReleased)
	assert.False(t, input.MouseDown)

	// End of frames
	_, ok = replayer.GetInput()
	assert.False(t, ok)
}

func TestReplayer_IsInputSource(t *testing.T) {
	var _ system.InputSource = NewReplayer(ReplayData{})
	var _ system.InputSource = NewRecording(system.NewInputSystem(), NewRecorder(0, ""))
}

func TestReplayer_CurrentFrame(t *testing.T) {
	data := CreateTestReplayData(5, 100, 100)
	replayer := NewReplayer(data)

	assert.Equal(t, 0, replayer.CurrentFrame())

	replayer.GetInput()
	assert.Equal(t, 1, replayer.CurrentFrame())

	replayer.GetInput()
	replayer.GetInput()
	assert.Equal(t, 3, replayer.CurrentFrame())
}

func TestReplayer_TotalFrames(t *testing.T) {
	data := CreateTestReplayData(10, 100, 100)
	replayer := NewReplayer(data)

	assert.Equal(t, 10, replayer.TotalFrames())
}

func TestReplayer_SeedAndScene(t *testing.T) {
	data := CreateTestReplayData(1, 0, 0)
	replayer := NewReplayer(data)

	assert.Equal(t, int64(12345), replayer.Seed())
	assert.Equal(t, "test", replayer.Scene())
}

func TestReplayer_Reset(t *testing.T) {
	data := CreateTestReplayData(3, 100, 100)
	replayer := NewReplayer(data)

	replayer.GetInput()
	replayer.GetInput()
	assert.Equal(t, 2, replayer.CurrentFrame())

	replayer.Reset()
	assert.Equal(t, 0, replayer.CurrentFrame())

	input, ok := replayer.GetInput()
	require.True(t, ok)
	assert.Equal(t, 100, input.MouseX)
}

func TestCreateTestReplayData(t *testing.T) {
	data := CreateTestReplayData(60, 200, 150)

	assert.Equal(t, Version, data.Version)
	assert.Equal(t, int64(12345), data.Seed)
	assert.Equal(t, "test", data.Scene)
	assert.Equal(t, 60, len(data.Frames))

	// Check all frames have correct mouse position
	for i, frame := range data.Frames {
		assert.Equal(t, i, frame.F, "Frame number mismatch at index %d", i)
		assert.Equal(t, 200, frame.MX)
		assert.Equal(t, 150, frame.MY)
	}
}

func TestRecorderAndReplayer(t *testing.T) {
	// Test that recorder and replayer work together
	seed := int64(12345)

	recorder := NewRecorder(seed, "Boxes")
	inputs := []system.InputState{
		{MouseX: 100, MouseY: 100},
		{Keys: []ebiten.Key{ebiten.KeyArrowRight, ebiten.KeyO}, MouseX: 110, MouseY: 95},
		{MousePressed: true, MouseDown: true, MouseX: 120, MouseY: 90},
		{MouseReleased: true, MouseX: 130, MouseY: 100},
	}

	for _, input := range inputs {
		recorder.RecordFrame(input)
	}

	assert.Equal(t, 4, recorder.FrameCount())

	replayer := NewReplayer(recorder.Data())
	assert.Equal(t, seed, replayer.Seed())
	assert.Equal(t, "Boxes", replayer.Scene())
	assert.Equal(t, 4, replayer.TotalFrames())

	for i, expected := range inputs {
		replayed, ok := replayer.GetInput()
		require.True(t, ok, "Should have input for frame %d", i)
		assert.Equal(t, expected, replayed, "frame %d", i)
	}

	_, ok := replayer.GetInput()
	assert.False(t, ok, "Should be at end of replay")
}

func TestRecorder_Stop(t *testing.T) {
	recorder := NewRecorder(1, "Lines")
	recorder.RecordFrame(system.InputState{})
	recorder.Stop()
	recorder.RecordFrame(system.InputState{})

	assert.False(t, recorder.IsRecording())
	assert.Equal(t, 1, recorder.FrameCount())
}

func TestRecorder_SaveAndLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), GenerateFilename())

	recorder := NewRecorder(7, "Lines")
	recorder.RecordFrame(system.InputState{Keys: []ebiten.Key{ebiten.KeyQ}, MouseX: 5, MouseY: 6})
	require.NoError(t, recorder.Save(path))

	data, err := LoadReplay(path)
	require.NoError(t, err)
	assert.Equal(t, Version, data.Version)
	assert.Equal(t, int64(7), data.Seed)
	assert.Equal(t, "Lines", data.Scene)
	require.Len(t, data.Frames, 1)
	assert.Equal(t, []int{int(ebiten.KeyQ)}, data.Frames[0].K)
}

func TestRecorder_SaveEmpty(t *testing.T) {
	recorder := NewRecorder(1, "Lines")
	assert.Error(t, recorder.Save(filepath.Join(t.TempDir(), "empty.json")))
}

func TestLoadReplay_Errors(t *testing.T) {
	dir := t.TempDir()

	_, err := LoadReplay(filepath.Join(dir, "missing.json"))
	assert.Error(t, err)

	bad := filepath.Join(dir, "bad.json")
	require.NoError(t, os.WriteFile(bad, []byte("{not json"), 0o644))
	_, err = LoadReplay(bad)
	assert.Error(t, err)
}

// replaySource feeds fixed frames for Recording tests.
type replaySource struct{ frames []system.InputState }

func (s *replaySource) GetInput() (system.InputState, bool) {
	if len(s.frames) == 0 {
		return system.InputState{}, false
	}
	in := s.frames[0]
	s.frames = s.frames[1:]
	return in, true
}

func TestRecording_RecordsSourceFrames(t *testing.T) {
	src := &replaySource{frames: []system.InputState{{MouseX: 1}, {MouseX: 2}}}
	recorder := NewRecorder(0, "")
	rec := NewRecording(src, recorder)

	for {
		if _, ok := rec.GetInput(); !ok {
			break
		}
	}
	assert.Equal(t, 2, recorder.FrameCount())
	assert.Equal(t, 2, recorder.Data().Frames[1].MX)
}
