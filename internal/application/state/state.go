package state

// Phase is the transition phase of a scene.
type Phase int

const (
	PhaseIdle Phase = iota
	PhaseEntering
	PhaseExiting
)

// String returns the string representation of the phase
func (p Phase) String() string {
	switch p {
	case PhaseIdle:
		return "Idle"
	case PhaseEntering:
		return "Entering"
	case PhaseExiting:
		return "Exiting"
	default:
		return "Unknown"
	}
}

// IsTransitioning reports whether the phase is entering or exiting.
func (p Phase) IsTransitioning() bool {
	return p == PhaseEntering || p == PhaseExiting
}
