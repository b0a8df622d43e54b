package watch

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// keyMap holds the bindings shown in the help footer. Stopwatch shortcuts
// are resolved by the stopwatch dispatch table; these entries only describe
// them.
type keyMap struct {
	Toggle      key.Binding
	Lap         key.Binding
	Reset       key.Binding
	Theme       key.Binding
	NextControl key.Binding
	PrevControl key.Binding
	Press       key.Binding
	EditTitle   key.Binding
	Help        key.Binding
	Quit        key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		Toggle: key.NewBinding(
			key.WithKeys(" ", "space"),
			key.WithHelp("space", "start/pause"),
		),
		Lap: key.NewBinding(
			key.WithKeys("l", "L"),
			key.WithHelp("l", "lap"),
		),
		Reset: key.NewBinding(
			key.WithKeys("r", "R"),
			key.WithHelp("r", "reset"),
		),
		Theme: key.NewBinding(
			key.WithKeys("t", "T"),
			key.WithHelp("t", "theme"),
		),
		NextControl: key.NewBinding(
			key.WithKeys("tab", "right"),
			key.WithHelp("tab", "next button"),
		),
		PrevControl: key.NewBinding(
			key.WithKeys("shift+tab", "left"),
			key.WithHelp("shift+tab", "previous button"),
		),
		Press: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "press button"),
		),
		EditTitle: key.NewBinding(
			key.WithKeys("/"),
			key.WithHelp("/", "edit title"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "more keys"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// ShortHelp implements help.KeyMap.
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Toggle, k.Lap, k.Reset, k.Theme, k.Help, k.Quit}
}

// FullHelp implements help.KeyMap.
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Toggle, k.Lap, k.Reset, k.Theme},
		{k.NextControl, k.PrevControl, k.Press},
		{k.EditTitle, k.Help, k.Quit},
	}
}

// keyName converts a key press into the name used by the dispatch table.
func keyName(msg tea.KeyMsg) string {
	if msg.Type == tea.KeySpace {
		return "space"
	}
	return msg.String()
}
