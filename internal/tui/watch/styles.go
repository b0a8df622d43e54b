package watch

import (
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/lipgloss"
)

const (
	appPadX = 2
	appPadY = 1
)

// palette is one theme's colour set.
type palette struct {
	fg      lipgloss.Color
	muted   lipgloss.Color
	primary lipgloss.Color
	accent  lipgloss.Color
	surface lipgloss.Color
	danger  lipgloss.Color
	success lipgloss.Color
}

var (
	darkPalette = palette{
		fg:      lipgloss.Color("252"),
		muted:   lipgloss.Color("245"),
		primary: lipgloss.Color("99"),  // Purple
		accent:  lipgloss.Color("212"), // Pink
		surface: lipgloss.Color("236"),
		danger:  lipgloss.Color("196"),
		success: lipgloss.Color("42"),
	}

	lightPalette = palette{
		fg:      lipgloss.Color("235"),
		muted:   lipgloss.Color("244"),
		primary: lipgloss.Color("25"),  // Blue
		accent:  lipgloss.Color("161"), // Magenta
		surface: lipgloss.Color("254"),
		danger:  lipgloss.Color("160"),
		success: lipgloss.Color("28"),
	}
)

// styles are rebuilt whenever the theme flag flips.
type styles struct {
	isDark bool

	app            lipgloss.Style
	title          lipgloss.Style
	phase          lipgloss.Style
	phaseRunning   lipgloss.Style
	clock          lipgloss.Style
	button         lipgloss.Style
	buttonFocused  lipgloss.Style
	buttonPressed  lipgloss.Style
	buttonDisabled lipgloss.Style
	empty          lipgloss.Style
	errorBanner    lipgloss.Style
	table          table.Styles
	help           help.Styles
}

func newStyles(dark bool) styles {
	p := lightPalette
	if dark {
		p = darkPalette
	}

	button := lipgloss.NewStyle().
		Foreground(p.fg).
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(p.muted).
		Padding(0, 1)

	tbl := table.DefaultStyles()
	tbl.Header = tbl.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(p.muted).
		BorderBottom(true).
		Foreground(p.primary).
		Bold(true)
	tbl.Cell = tbl.Cell.Foreground(p.fg)
	tbl.Selected = lipgloss.NewStyle().Foreground(p.fg)

	hlp := help.New().Styles
	hlp.ShortKey = hlp.ShortKey.Foreground(p.accent)
	hlp.ShortDesc = hlp.ShortDesc.Foreground(p.muted)
	hlp.FullKey = hlp.FullKey.Foreground(p.accent)
	hlp.FullDesc = hlp.FullDesc.Foreground(p.muted)

	return styles{
		isDark: dark,

		app: lipgloss.NewStyle().
			Padding(appPadY, appPadX),

		title: lipgloss.NewStyle().
			Bold(true).
			Foreground(p.primary),

		phase: lipgloss.NewStyle().
			Foreground(p.muted).
			PaddingLeft(2),

		phaseRunning: lipgloss.NewStyle().
			Foreground(p.success).
			Bold(true).
			PaddingLeft(2),

		clock: lipgloss.NewStyle().
			Bold(true).
			Foreground(p.fg).
			Background(p.surface).
			Padding(1, 4).
			MarginTop(1).
			MarginBottom(1),

		button: button,

		buttonFocused: button.
			BorderForeground(p.accent).
			Bold(true),

		buttonPressed: button.
			BorderForeground(p.primary).
			Foreground(p.primary).
			Bold(true),

		buttonDisabled: button.
			Foreground(p.muted).
			Faint(true),

		empty: lipgloss.NewStyle().
			Foreground(p.muted).
			Italic(true).
			MarginTop(1),

		errorBanner: lipgloss.NewStyle().
			Foreground(p.danger).
			Bold(true).
			BorderStyle(lipgloss.ThickBorder()).
			BorderForeground(p.danger).
			Padding(0, 1).
			MarginBottom(1),

		table: tbl,
		help:  hlp,
	}
}

func (s styles) dark() bool {
	return s.isDark
}
