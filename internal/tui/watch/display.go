package watch

import (
	"strconv"

	"github.com/charmbracelet/bubbles/table"

	"github.com/alexisbeaulieu97/lapwatch/internal/stopwatch"
)

type lapRow struct {
	index      int
	cumulative string
	split      string
}

// display is the terminal's stand-in for a document tree. The controller
// writes into it and View reads from it.
type display struct {
	hours   string
	minutes string
	seconds string
	millis  string

	rows        []lapRow
	toggleLabel string
	pressed     bool
	enabled     map[stopwatch.Control]bool
	dark        bool
}

func newDisplay() *display {
	return &display{enabled: make(map[stopwatch.Control]bool)}
}

func (d *display) SetDisplay(hours, minutes, seconds, millis string) {
	d.hours = hours
	d.minutes = minutes
	d.seconds = seconds
	d.millis = millis
}

func (d *display) PrependLapRow(index int, cumulative, split string) {
	d.rows = append([]lapRow{{index: index, cumulative: cumulative, split: split}}, d.rows...)
}

func (d *display) ClearLapRows() {
	d.rows = nil
}

func (d *display) SetToggleLabel(text string, pressed bool) {
	d.toggleLabel = text
	d.pressed = pressed
}

func (d *display) SetControlEnabled(control stopwatch.Control, enabled bool) {
	d.enabled[control] = enabled
}

func (d *display) SetThemeFlag(dark bool) {
	d.dark = dark
}

// Time returns the clock face as HH:MM:SS.mmm.
func (d *display) Time() string {
	return d.hours + ":" + d.minutes + ":" + d.seconds + "." + d.millis
}

func (d *display) tableRows() []table.Row {
	rows := make([]table.Row, 0, len(d.rows))
	for _, r := range d.rows {
		rows = append(rows, table.Row{strconv.Itoa(r.index), r.cumulative, r.split})
	}
	return rows
}

var _ stopwatch.Renderer = (*display)(nil)
