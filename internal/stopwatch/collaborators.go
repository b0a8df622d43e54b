package stopwatch

import "time"

// Clock is a monotonic time source. Now returns the offset since an
// arbitrary epoch and never decreases within a session.
type Clock interface {
	Now() time.Duration
}

// ClockFunc adapts a function to the Clock interface.
type ClockFunc func() time.Duration

// Now calls f.
func (f ClockFunc) Now() time.Duration {
	return f()
}

type systemClock struct {
	epoch time.Time
}

func (c systemClock) Now() time.Duration {
	return time.Since(c.epoch)
}

// SystemClock returns a Clock backed by the process monotonic clock, with its
// epoch at the moment of the call.
func SystemClock() Clock {
	return systemClock{epoch: time.Now()}
}

// Control names a user-facing affordance.
type Control int

const (
	ControlToggle Control = iota
	ControlLap
	ControlReset
	ControlClearLaps
	ControlTheme
)

// Controls lists every control in display order.
var Controls = []Control{ControlToggle, ControlLap, ControlReset, ControlClearLaps, ControlTheme}

// String returns the control's stable identifier.
func (c Control) String() string {
	switch c {
	case ControlToggle:
		return "start-pause"
	case ControlLap:
		return "lap"
	case ControlReset:
		return "reset"
	case ControlClearLaps:
		return "clear-laps"
	case ControlTheme:
		return "theme"
	default:
		return "unknown"
	}
}

// Renderer is the display surface the controller pushes state into.
type Renderer interface {
	SetDisplay(hours, minutes, seconds, millis string)
	PrependLapRow(index int, cumulative, split string)
	ClearLapRows()
	SetToggleLabel(text string, pressed bool)
	SetControlEnabled(control Control, enabled bool)
	SetThemeFlag(dark bool)
}

// CancelFunc drops a scheduled frame. It must take effect before it returns
// and be safe to call more than once.
type CancelFunc func()

// Scheduler runs fn once on the next available frame.
type Scheduler interface {
	RequestFrame(fn func()) CancelFunc
}
