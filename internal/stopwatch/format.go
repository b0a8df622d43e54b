package stopwatch

import (
	"fmt"
	"time"
)

const (
	msPerSecond = int64(1000)
	msPerMinute = 60 * msPerSecond
	msPerHour   = 60 * msPerMinute
)

// TimeParts is an elapsed duration split into zero-padded display fields.
type TimeParts struct {
	Hours   string
	Minutes string
	Seconds string
	Millis  string
}

// String joins the fields as HH:MM:SS.mmm.
func (t TimeParts) String() string {
	return t.Hours + ":" + t.Minutes + ":" + t.Seconds + "." + t.Millis
}

// FormatTime truncates d to whole milliseconds and splits it into fields.
// Hours are not bounded; negative durations render as zero.
func FormatTime(d time.Duration) TimeParts {
	ms := d.Milliseconds()
	if ms < 0 {
		ms = 0
	}

	return TimeParts{
		Hours:   fmt.Sprintf("%02d", ms/msPerHour),
		Minutes: fmt.Sprintf("%02d", (ms%msPerHour)/msPerMinute),
		Seconds: fmt.Sprintf("%02d", (ms%msPerMinute)/msPerSecond),
		Millis:  fmt.Sprintf("%03d", ms%msPerSecond),
	}
}

// FormatPretty renders d as HH:MM:SS.mmm, the form used in lap rows.
func FormatPretty(d time.Duration) string {
	return FormatTime(d).String()
}
