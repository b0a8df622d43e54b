package stopwatch

// Phase is the stopwatch's current mode.
type Phase int

const (
	PhaseIdle Phase = iota
	PhaseRunning
	PhasePaused
)

// String returns a lowercase phase name.
func (p Phase) String() string {
	switch p {
	case PhaseIdle:
		return "idle"
	case PhaseRunning:
		return "running"
	case PhasePaused:
		return "paused"
	default:
		return "unknown"
	}
}

// Stopped reports whether the render loop is inactive.
func (p Phase) Stopped() bool {
	return p != PhaseRunning
}
