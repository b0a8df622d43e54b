package watch

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"github.com/alexisbeaulieu97/lapwatch/internal/stopwatch"
)

// rect is a half-open screen region in terminal cells.
type rect struct {
	x0, y0, x1, y1 int
}

func (r rect) contains(x, y int) bool {
	return x >= r.x0 && x < r.x1 && y >= r.y0 && y < r.y1
}

// frame is a rendered screen plus the hit regions mouse handling needs.
type frame struct {
	body    string
	title   rect
	buttons map[stopwatch.Control]rect
}

// View renders the current model state
func (m Model) View() string {
	if m.width == 0 || m.height == 0 {
		return "Initializing..."
	}
	return m.styles.app.Render(m.layout().body)
}

// layout renders every section top to bottom and records where the header
// and buttons landed, offset by the app padding.
func (m Model) layout() frame {
	var sections []string
	y := 0
	add := func(s string) int {
		start := y
		sections = append(sections, s)
		y += lipgloss.Height(s)
		return start
	}

	if m.showError {
		add(m.styles.errorBanner.Render(m.errorMsg))
	}

	header := m.renderHeader()
	headerY := add(header)

	add(m.styles.clock.Render(m.display.Time()))

	row, spans := m.renderButtons()
	rowY := add(row)
	rowH := lipgloss.Height(row)

	add(m.renderLaps())
	add("")
	add(m.help.View(m.keys))

	f := frame{
		body: lipgloss.JoinVertical(lipgloss.Left, sections...),
		title: rect{
			x0: appPadX,
			y0: appPadY + headerY,
			x1: appPadX + lipgloss.Width(header),
			y1: appPadY + headerY + lipgloss.Height(header),
		},
		buttons: make(map[stopwatch.Control]rect, len(spans)),
	}
	for control, span := range spans {
		f.buttons[control] = rect{
			x0: appPadX + span.x0,
			y0: appPadY + rowY,
			x1: appPadX + span.x1,
			y1: appPadY + rowY + rowH,
		}
	}
	return f
}

func (m Model) renderHeader() string {
	if m.title.Focused() {
		return m.title.View()
	}

	maxWidth := m.width - 2*appPadX - 12
	if maxWidth < 8 {
		maxWidth = 8
	}
	title := m.styles.title.Render(ansi.Truncate(m.Title(), maxWidth, "…"))

	phase := m.ctrl.Phase()
	badge := m.styles.phase.Render(phase.String())
	if phase == stopwatch.PhaseRunning {
		badge = m.styles.phaseRunning.Render("● " + phase.String())
	}

	return lipgloss.JoinHorizontal(lipgloss.Top, title, badge)
}

type span struct {
	x0, x1 int
}

func (m Model) renderButtons() (string, map[stopwatch.Control]span) {
	spans := make(map[stopwatch.Control]span, len(stopwatch.Controls))
	parts := make([]string, 0, 2*len(stopwatch.Controls))
	x := 0

	for i, control := range stopwatch.Controls {
		if i > 0 {
			parts = append(parts, " ")
			x++
		}
		btn := m.buttonStyle(control).Render(m.buttonLabel(control))
		w := lipgloss.Width(btn)
		spans[control] = span{x0: x, x1: x + w}
		parts = append(parts, btn)
		x += w
	}

	return lipgloss.JoinHorizontal(lipgloss.Top, parts...), spans
}

func (m Model) buttonLabel(control stopwatch.Control) string {
	switch control {
	case stopwatch.ControlToggle:
		return m.display.toggleLabel
	case stopwatch.ControlLap:
		return "Lap"
	case stopwatch.ControlReset:
		return "Reset"
	case stopwatch.ControlClearLaps:
		return "Clear laps"
	case stopwatch.ControlTheme:
		if m.display.dark {
			return "Light"
		}
		return "Dark"
	default:
		return control.String()
	}
}

func (m Model) buttonStyle(control stopwatch.Control) lipgloss.Style {
	switch {
	case !m.focusable(control):
		return m.styles.buttonDisabled
	case control == m.focus && !m.title.Focused():
		return m.styles.buttonFocused
	case control == stopwatch.ControlToggle && m.display.pressed:
		return m.styles.buttonPressed
	default:
		return m.styles.button
	}
}

func (m Model) renderLaps() string {
	if len(m.display.rows) == 0 {
		return m.styles.empty.Render("No laps yet")
	}
	return m.laps.View()
}
