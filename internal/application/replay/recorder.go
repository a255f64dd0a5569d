package replay

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/younwookim/apputils/internal/application/system"
)

// Recorder handles input recording
type Recorder struct {
	data      ReplayData
	recording bool
	frame     int
}

// NewRecorder creates a new recorder
func NewRecorder(seed int64, scene string) *Recorder {
	return &Recorder{
		data: ReplayData{
			Version:   Version,
			Seed:      seed,
			Scene:     scene,
			StartTime: time.Now().Format(time.RFC3339),
			Frames:    make([]FrameInput, 0, 3600), // Pre-allocate for ~1 minute at 60fps
		},
		recording: true,
		frame:     0,
	}
}

// RecordFrame records a single frame's input
func (r *Recorder) RecordFrame(input system.InputState) {
	if !r.recording {
		return
	}

	var keys []int
	for _, k := range input.Keys {
		keys = append(keys, int(k))
	}

	r.data.Frames = append(r.data.Frames, FrameInput{
		F:  r.frame,
		K:  keys,
		MX: input.MouseX,
		MY: input.MouseY,
		MP: input.MousePressed,
		MD: input.MouseDown,
		MR: input.MouseReleased,
	})
	r.frame++
}

// Save writes the replay data to a file
func (r *Recorder) Save(filename string) error {
	if len(r.data.Frames) == 0 {
		return fmt.Errorf("no frames to save")
	}

	file, err := os.Create(filename)
	if err != nil {
		return fmt.Errorf("failed to create file: %w", err)
	}
	defer file.Close()

	encoder := json.NewEncoder(file)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(r.data); err != nil {
		return fmt.Errorf("failed to encode replay: %w", err)
	}

	return nil
}

// Stop stops recording
func (r *Recorder) Stop() {
	r.recording = false
}

// IsRecording returns whether recording is active
func (r *Recorder) IsRecording() bool {
	return r.recording
}

// FrameCount returns the number of recorded frames
func (r *Recorder) FrameCount() int {
	return len(r.data.Frames)
}

// Data returns the recorded data
func (r *Recorder) Data() ReplayData {
	return r.data
}

// Recording wraps an InputSource and records every frame it yields
type Recording struct {
	source   system.InputSource
	recorder *Recorder
}

// NewRecording records the input read from source into recorder
func NewRecording(source system.InputSource, recorder *Recorder) *Recording {
	return &Recording{source: source, recorder: recorder}
}

// GetInput reads from the wrapped source and records the frame
func (r *Recording) GetInput() (system.InputState, bool) {
	input, ok := r.source.GetInput()
	if ok {
		r.recorder.RecordFrame(input)
	}
	return input, ok
}

// GenerateFilename creates a filename based on current time
func GenerateFilename() string {
	return fmt.Sprintf("replay_%s.json", time.Now().Format("20060102_150405"))
}
