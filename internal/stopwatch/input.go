package stopwatch

import "strings"

// Action is a controller operation reachable from user input.
type Action int

const (
	ActionNone Action = iota
	ActionToggle
	ActionLap
	ActionReset
	ActionClearLaps
	ActionTheme
)

// String returns the action name.
func (a Action) String() string {
	switch a {
	case ActionToggle:
		return "toggle"
	case ActionLap:
		return "lap"
	case ActionReset:
		return "reset"
	case ActionClearLaps:
		return "clear-laps"
	case ActionTheme:
		return "theme"
	default:
		return "none"
	}
}

// EventKind distinguishes pointer clicks from key presses.
type EventKind int

const (
	EventClick EventKind = iota
	EventKey
)

// Event is a single user input delivered by the host.
type Event struct {
	Kind    EventKind
	Control Control
	// Key is the pressed key; "space" or " " for the space bar, otherwise
	// the character. Matching is case-insensitive.
	Key string
	// InTextField is set when keyboard focus is inside a text entry field.
	InTextField bool
}

// Click builds a click event for control.
func Click(control Control) Event {
	return Event{Kind: EventClick, Control: control}
}

// KeyPress builds a key event.
func KeyPress(key string, inTextField bool) Event {
	return Event{Kind: EventKey, Key: key, InTextField: inTextField}
}

// DispatchResult reports what an event did.
type DispatchResult struct {
	Action  Action
	Handled bool
	// PreventDefault asks the host to suppress the key's default behaviour.
	PreventDefault bool
}

// ClickBindings maps each control to the action a click triggers.
var ClickBindings = map[Control]Action{
	ControlToggle:    ActionToggle,
	ControlLap:       ActionLap,
	ControlReset:     ActionReset,
	ControlClearLaps: ActionClearLaps,
	ControlTheme:     ActionTheme,
}

// KeyBindings maps lowercase key names to the control they press. The theme
// key goes through the theme control like a click would.
var KeyBindings = map[string]Control{
	"space": ControlToggle,
	"l":     ControlLap,
	"r":     ControlReset,
	"t":     ControlTheme,
}

// Resolve maps an event to an action without running it.
func Resolve(ev Event) DispatchResult {
	switch ev.Kind {
	case EventClick:
		action, ok := ClickBindings[ev.Control]
		if !ok {
			return DispatchResult{}
		}
		return DispatchResult{Action: action, Handled: true}
	case EventKey:
		if ev.InTextField {
			return DispatchResult{}
		}
		key := normalizeKey(ev.Key)
		control, ok := KeyBindings[key]
		if !ok {
			return DispatchResult{}
		}
		return DispatchResult{
			Action:         ClickBindings[control],
			Handled:        true,
			PreventDefault: key == "space",
		}
	default:
		return DispatchResult{}
	}
}

// Dispatch resolves ev and calls the matching controller method. Each event
// maps to at most one call.
func (c *Controller) Dispatch(ev Event) DispatchResult {
	res := Resolve(ev)
	if !res.Handled {
		return res
	}

	switch res.Action {
	case ActionToggle:
		c.Toggle()
	case ActionLap:
		c.AddLap()
	case ActionReset:
		c.Reset()
	case ActionClearLaps:
		c.ClearLaps()
	case ActionTheme:
		c.ToggleTheme()
	}
	return res
}

func normalizeKey(key string) string {
	if key == " " {
		return "space"
	}
	return strings.ToLower(key)
}
