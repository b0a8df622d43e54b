package stopwatch

import (
	"time"

	"github.com/alexisbeaulieu97/lapwatch/internal/logger"
	lwerrors "github.com/alexisbeaulieu97/lapwatch/pkg/errors"
)

const (
	labelStart = "Start"
	labelPause = "Pause"
)

// LapRecord is one recorded lap. Index starts at 1.
type LapRecord struct {
	Index      int
	Cumulative time.Duration
	Split      time.Duration
}

// State is a point-in-time copy of the controller's internals.
type State struct {
	Phase        Phase
	StartedAt    time.Duration
	Accumulated  time.Duration
	LastRendered time.Duration
	LastLapAt    time.Duration
	LapCount     int
	Laps         []LapRecord
	DarkTheme    bool
}

// Option customises a Controller at construction time.
type Option func(*Controller)

// WithLogger attaches a logger for transition and lap events.
func WithLogger(log *logger.Logger) Option {
	return func(c *Controller) {
		c.log = log
	}
}

// WithDarkTheme sets the initial theme flag.
func WithDarkTheme(dark bool) Option {
	return func(c *Controller) {
		c.dark = dark
	}
}

// Controller is the stopwatch state machine.
type Controller struct {
	clock     Clock
	renderer  Renderer
	scheduler Scheduler
	log       *logger.Logger

	phase        Phase
	startedAt    time.Duration
	accumulated  time.Duration
	lastRendered time.Duration

	lastLapAt time.Duration
	lapCount  int
	laps      []LapRecord

	cancelFrame CancelFunc
	dark        bool
}

// New builds a Controller in the Idle phase and renders its initial state.
// A missing collaborator is a host integration defect and is returned as a
// PreconditionError.
func New(clock Clock, renderer Renderer, scheduler Scheduler, opts ...Option) (*Controller, error) {
	switch {
	case clock == nil:
		return nil, lwerrors.NewPreconditionError("clock", "a clock is required to measure elapsed time", nil)
	case renderer == nil:
		return nil, lwerrors.NewPreconditionError("renderer", "a renderer is required to display the stopwatch", nil)
	case scheduler == nil:
		return nil, lwerrors.NewPreconditionError("scheduler", "a frame scheduler is required to drive the render loop", nil)
	}

	c := &Controller{
		clock:     clock,
		renderer:  renderer,
		scheduler: scheduler,
		phase:     PhaseIdle,
	}
	for _, opt := range opts {
		opt(c)
	}

	c.render(0)
	c.renderer.SetToggleLabel(labelStart, false)
	c.renderer.SetControlEnabled(ControlToggle, true)
	c.renderer.SetControlEnabled(ControlLap, false)
	c.renderer.SetControlEnabled(ControlReset, false)
	c.renderer.SetControlEnabled(ControlClearLaps, false)
	c.renderer.SetControlEnabled(ControlTheme, true)
	c.renderer.SetThemeFlag(c.dark)

	return c, nil
}

// Start begins or resumes timing. It is a no-op while already running, so a
// second frame is never scheduled on top of the live one.
func (c *Controller) Start() {
	if c.phase == PhaseRunning {
		c.debug("start ignored: already running")
		return
	}

	from := c.phase
	c.phase = PhaseRunning
	c.startedAt = c.clock.Now()
	c.renderer.SetToggleLabel(labelPause, true)
	c.renderer.SetControlEnabled(ControlLap, true)
	c.renderer.SetControlEnabled(ControlReset, true)
	c.cancelFrame = c.scheduler.RequestFrame(c.frame)

	c.transition(from, "start")
}

// Pause freezes the elapsed time at the last rendered frame.
func (c *Controller) Pause() {
	if c.phase != PhaseRunning {
		c.debug("pause ignored: not running")
		return
	}

	c.stopLoop()
	c.accumulated = c.lastRendered
	c.phase = PhasePaused
	c.renderer.SetToggleLabel(labelStart, false)

	c.transition(PhaseRunning, "pause")
}

// Toggle pauses a running stopwatch and starts a stopped one.
func (c *Controller) Toggle() {
	if c.phase == PhaseRunning {
		c.Pause()
		return
	}
	c.Start()
}

// Reset stops the stopwatch, zeroes it and discards all laps.
func (c *Controller) Reset() {
	from := c.phase
	c.Pause()

	c.phase = PhaseIdle
	c.accumulated = 0
	c.lastRendered = 0
	c.startedAt = 0
	c.resetLaps()

	c.render(0)
	c.renderer.ClearLapRows()
	c.renderer.SetControlEnabled(ControlLap, false)
	c.renderer.SetControlEnabled(ControlReset, false)
	c.renderer.SetControlEnabled(ControlClearLaps, false)

	c.transition(from, "reset")
}

// AddLap records a lap at the last rendered elapsed time. It only has an
// effect while running; the boolean reports whether a lap was recorded.
func (c *Controller) AddLap() (LapRecord, bool) {
	if c.phase != PhaseRunning {
		c.debug("lap ignored: not running")
		return LapRecord{}, false
	}

	total := c.lastRendered
	split := total - c.lastLapAt
	c.lastLapAt = total
	c.lapCount++

	lap := LapRecord{Index: c.lapCount, Cumulative: total, Split: split}
	c.laps = append(c.laps, lap)

	c.renderer.PrependLapRow(lap.Index, FormatPretty(lap.Cumulative), FormatPretty(lap.Split))
	c.renderer.SetControlEnabled(ControlClearLaps, true)

	c.log.WithFields(map[string]any{
		"lap":           lap.Index,
		"cumulative_ms": lap.Cumulative.Milliseconds(),
		"split_ms":      lap.Split.Milliseconds(),
	}).Info("lap recorded")

	return lap, true
}

// ClearLaps discards recorded laps without touching the timer.
func (c *Controller) ClearLaps() {
	cleared := len(c.laps)
	c.resetLaps()
	c.renderer.ClearLapRows()
	c.renderer.SetControlEnabled(ControlClearLaps, false)

	c.log.With("cleared", cleared).Debug("laps cleared")
}

// ToggleTheme flips the theme flag.
func (c *Controller) ToggleTheme() {
	c.SetDarkTheme(!c.dark)
}

// SetDarkTheme sets the theme flag and pushes it to the renderer.
func (c *Controller) SetDarkTheme(dark bool) {
	c.dark = dark
	c.renderer.SetThemeFlag(dark)
	c.log.With("dark", dark).Debug("theme changed")
}

// Phase returns the current phase.
func (c *Controller) Phase() Phase {
	return c.phase
}

// Elapsed returns the most recently rendered elapsed time.
func (c *Controller) Elapsed() time.Duration {
	return c.lastRendered
}

// DarkTheme reports the theme flag.
func (c *Controller) DarkTheme() bool {
	return c.dark
}

// Laps returns the recorded laps, most recent first.
func (c *Controller) Laps() []LapRecord {
	out := make([]LapRecord, len(c.laps))
	for i, lap := range c.laps {
		out[len(c.laps)-1-i] = lap
	}
	return out
}

// Snapshot returns a copy of the controller state. Laps are in ascending
// index order.
func (c *Controller) Snapshot() State {
	laps := make([]LapRecord, len(c.laps))
	copy(laps, c.laps)

	return State{
		Phase:        c.phase,
		StartedAt:    c.startedAt,
		Accumulated:  c.accumulated,
		LastRendered: c.lastRendered,
		LastLapAt:    c.lastLapAt,
		LapCount:     c.lapCount,
		Laps:         laps,
		DarkTheme:    c.dark,
	}
}

// frame is one tick of the render loop.
func (c *Controller) frame() {
	if c.phase != PhaseRunning {
		return
	}

	elapsed := c.accumulated + (c.clock.Now() - c.startedAt)
	if elapsed < c.lastRendered {
		elapsed = c.lastRendered
	}
	c.lastRendered = elapsed
	c.render(elapsed)

	c.cancelFrame = c.scheduler.RequestFrame(c.frame)
}

func (c *Controller) stopLoop() {
	if c.cancelFrame != nil {
		c.cancelFrame()
		c.cancelFrame = nil
	}
}

func (c *Controller) resetLaps() {
	c.laps = nil
	c.lastLapAt = 0
	c.lapCount = 0
}

func (c *Controller) render(d time.Duration) {
	parts := FormatTime(d)
	c.renderer.SetDisplay(parts.Hours, parts.Minutes, parts.Seconds, parts.Millis)
}

func (c *Controller) transition(from Phase, action string) {
	c.log.WithFields(map[string]any{
		"action":     action,
		"from":       from.String(),
		"to":         c.phase.String(),
		"elapsed_ms": c.lastRendered.Milliseconds(),
	}).Debug("stopwatch transition")
}

func (c *Controller) debug(msg string) {
	c.log.With("phase", c.phase.String()).Debug(msg)
}
