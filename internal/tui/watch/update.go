package watch

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/alexisbeaulieu97/lapwatch/internal/stopwatch"
)

// Update handles incoming messages and updates the model
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width - 2*appPadX
		m.title.Width = msg.Width - 2*appPadX - 4

		if m.minWidth > 0 && m.minHeight > 0 &&
			(m.width < m.minWidth || m.height < m.minHeight) {
			m.showError = true
			m.errorMsg = fmt.Sprintf("Terminal too small (%dx%d). Minimum size: %dx%d",
				m.width, m.height, m.minWidth, m.minHeight)
		} else if m.showError && strings.HasPrefix(m.errorMsg, "Terminal too small") {
			m.showError = false
			m.errorMsg = ""
		}

		m.sync()
		return m, nil

	case frameMsg:
		m.frames.fire(msg.id)
		return m, m.frames.drain()

	case tea.KeyMsg:
		return m.handleKeyPress(msg)

	case tea.MouseMsg:
		return m.handleMouse(msg)

	case ClearErrorMsg:
		m.showError = false
		m.errorMsg = ""
		return m, nil
	}

	return m, nil
}

// handleKeyPress routes keys to the title field when it has focus and to
// the stopwatch otherwise.
func (m Model) handleKeyPress(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.title.Focused() {
		return m.handleTitleKeys(msg)
	}

	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		return m, nil

	case key.Matches(msg, m.keys.EditTitle):
		cmd := m.title.Focus()
		return m, cmd

	case key.Matches(msg, m.keys.NextControl):
		m.moveFocus(1)
		return m, nil

	case key.Matches(msg, m.keys.PrevControl):
		m.moveFocus(-1)
		return m, nil

	case key.Matches(msg, m.keys.Press):
		return m.click(m.focus)
	}

	res := m.ctrl.Dispatch(stopwatch.KeyPress(keyName(msg), false))
	if res.Handled {
		m.log.WithFields(map[string]any{
			"key":    keyName(msg),
			"action": res.Action.String(),
		}).Debug("key dispatched")
	}

	m.sync()
	return m, m.frames.drain()
}

func (m Model) handleTitleKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c":
		return m, tea.Quit
	case "enter", "esc":
		m.title.Blur()
		m.log.With("title", m.Title()).Debug("title updated")
		return m, tea.SetWindowTitle(m.Title())
	}

	// Shortcuts are inert while typing; the dispatch table drops the event.
	m.ctrl.Dispatch(stopwatch.KeyPress(keyName(msg), true))

	var cmd tea.Cmd
	m.title, cmd = m.title.Update(msg)
	return m, cmd
}

// handleMouse turns a left press on a button into a click.
func (m Model) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	if msg.Action != tea.MouseActionPress || msg.Button != tea.MouseButtonLeft {
		return m, nil
	}

	f := m.layout()
	if f.title.contains(msg.X, msg.Y) && !m.title.Focused() {
		cmd := m.title.Focus()
		return m, cmd
	}

	for control, r := range f.buttons {
		if r.contains(msg.X, msg.Y) {
			if m.title.Focused() {
				m.title.Blur()
			}
			return m.click(control)
		}
	}
	return m, nil
}

// click presses a control. Disabled controls ignore clicks.
func (m Model) click(control stopwatch.Control) (tea.Model, tea.Cmd) {
	if !m.focusable(control) {
		return m, nil
	}

	m.focus = control
	res := m.ctrl.Dispatch(stopwatch.Click(control))
	m.log.WithFields(map[string]any{
		"control": control.String(),
		"action":  res.Action.String(),
	}).Debug("control clicked")

	m.sync()
	return m, m.frames.drain()
}
