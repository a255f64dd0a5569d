package replay

// FrameInput records input state for a single frame
type FrameInput struct {
	F  int   `json:"f"`            // Frame number
	K  []int `json:"k,omitempty"`  // Keys pressed
	MX int   `json:"mx"`           // MouseX
	MY int   `json:"my"`           // MouseY
	MP bool  `json:"mp,omitempty"` // MousePressed
	MD bool  `json:"md,omitempty"` // MouseDown
	MR bool  `json:"mr,omitempty"` // MouseReleased
}

// ReplayData contains all data needed to replay a session
type ReplayData struct {
	Version   string       `json:"version"`
	Seed      int64        `json:"seed"`
	Scene     string       `json:"scene"`
	StartTime string       `json:"startTime"`
	Frames    []FrameInput `json:"frames"`
}

// Version is the replay format version
const Version = "1.0"
