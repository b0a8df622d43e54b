package watch

import (
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/alexisbeaulieu97/lapwatch/internal/logger"
	"github.com/alexisbeaulieu97/lapwatch/internal/stopwatch"
)

const (
	defaultFrameInterval = 16 * time.Millisecond
	defaultTitle         = "Stopwatch"
	titleCharLimit       = 64
)

// Options configures a stopwatch Model.
type Options struct {
	Title         string
	DarkTheme     bool
	FrameInterval time.Duration
	MinWidth      int
	MinHeight     int
	Logger        *logger.Logger
	// Clock defaults to stopwatch.SystemClock.
	Clock stopwatch.Clock
}

// Model is the Bubble Tea host for a stopwatch.Controller.
type Model struct {
	ctrl    *stopwatch.Controller
	display *display
	frames  *frameScheduler
	log     *logger.Logger

	keys   keyMap
	help   help.Model
	title  textinput.Model
	laps   table.Model
	styles styles
	focus  stopwatch.Control

	width     int
	height    int
	minWidth  int
	minHeight int

	showError bool
	errorMsg  string
}

// NewModel wires a controller to the terminal display and frame scheduler.
func NewModel(opts Options) (Model, error) {
	interval := opts.FrameInterval
	if interval <= 0 {
		interval = defaultFrameInterval
	}
	clock := opts.Clock
	if clock == nil {
		clock = stopwatch.SystemClock()
	}

	disp := newDisplay()
	frames := newFrameScheduler(interval)

	ctrl, err := stopwatch.New(clock, disp, frames,
		stopwatch.WithLogger(opts.Logger),
		stopwatch.WithDarkTheme(opts.DarkTheme),
	)
	if err != nil {
		return Model{}, fmt.Errorf("create stopwatch: %w", err)
	}

	title := textinput.New()
	title.Placeholder = defaultTitle
	title.CharLimit = titleCharLimit
	title.Prompt = "✎ "
	title.SetValue(opts.Title)

	st := newStyles(disp.dark)
	laps := table.New(
		table.WithColumns(lapColumns()),
		table.WithFocused(false),
		table.WithHeight(minLapRows),
	)
	laps.SetStyles(st.table)

	h := help.New()
	h.Styles = st.help

	return Model{
		ctrl:      ctrl,
		display:   disp,
		frames:    frames,
		log:       opts.Logger,
		keys:      defaultKeyMap(),
		help:      h,
		title:     title,
		laps:      laps,
		styles:    st,
		focus:     stopwatch.ControlToggle,
		width:     80,
		height:    24,
		minWidth:  opts.MinWidth,
		minHeight: opts.MinHeight,
	}, nil
}

// Init sets the terminal window title.
func (m Model) Init() tea.Cmd {
	return tea.SetWindowTitle(m.Title())
}

// Title returns the session title, falling back to the placeholder.
func (m Model) Title() string {
	if v := m.title.Value(); v != "" {
		return v
	}
	return defaultTitle
}

// Controller exposes the underlying state machine.
func (m Model) Controller() *stopwatch.Controller {
	return m.ctrl
}

// Summary returns a one-line description of the session, suitable for
// printing after the program exits.
func (m Model) Summary() string {
	if m.ctrl == nil {
		return ""
	}
	laps := m.ctrl.Laps()
	return fmt.Sprintf("%s: %s (%d laps)", m.Title(), stopwatch.FormatPretty(m.ctrl.Elapsed()), len(laps))
}

// focusable reports whether a control can receive focus or clicks.
func (m Model) focusable(c stopwatch.Control) bool {
	return m.display.enabled[c]
}

// moveFocus steps focus over enabled controls, wrapping at both ends.
func (m *Model) moveFocus(delta int) {
	n := len(stopwatch.Controls)
	idx := int(m.focus)
	for i := 0; i < n; i++ {
		idx = (idx + delta + n) % n
		if m.focusable(stopwatch.Controls[idx]) {
			m.focus = stopwatch.Controls[idx]
			return
		}
	}
}

// ensureFocus moves focus off a control that became disabled.
func (m *Model) ensureFocus() {
	if !m.focusable(m.focus) {
		m.focus = stopwatch.ControlToggle
	}
}

// sync copies controller-driven display state into the bubbles widgets.
func (m *Model) sync() {
	if m.styles.dark() != m.display.dark {
		m.styles = newStyles(m.display.dark)
		m.laps.SetStyles(m.styles.table)
		m.help.Styles = m.styles.help
	}
	m.laps.SetRows(m.display.tableRows())
	m.laps.SetHeight(m.lapRows())
	m.ensureFocus()
}

const (
	minLapRows = 3
	maxLapRows = 20
	// chromeRows approximates everything above and below the lap table.
	chromeRows = 17
)

func (m Model) lapRows() int {
	rows := m.height - chromeRows
	if rows < minLapRows {
		return minLapRows
	}
	if rows > maxLapRows {
		return maxLapRows
	}
	return rows
}

func lapColumns() []table.Column {
	return []table.Column{
		{Title: "Lap", Width: 5},
		{Title: "Cumulative", Width: 14},
		{Title: "Split", Width: 14},
	}
}
