package stopwatch

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolveBindingTable(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		event   Event
		want    Action
		handled bool
		prevent bool
	}{
		{name: "click toggle", event: Click(ControlToggle), want: ActionToggle, handled: true},
		{name: "click lap", event: Click(ControlLap), want: ActionLap, handled: true},
		{name: "click reset", event: Click(ControlReset), want: ActionReset, handled: true},
		{name: "click clear laps", event: Click(ControlClearLaps), want: ActionClearLaps, handled: true},
		{name: "click theme", event: Click(ControlTheme), want: ActionTheme, handled: true},
		{name: "space bar", event: KeyPress(" ", false), want: ActionToggle, handled: true, prevent: true},
		{name: "space name", event: KeyPress("space", false), want: ActionToggle, handled: true, prevent: true},
		{name: "lowercase l", event: KeyPress("l", false), want: ActionLap, handled: true},
		{name: "uppercase L", event: KeyPress("L", false), want: ActionLap, handled: true},
		{name: "r", event: KeyPress("R", false), want: ActionReset, handled: true},
		{name: "t", event: KeyPress("t", false), want: ActionTheme, handled: true},
		{name: "unbound key", event: KeyPress("x", false), want: ActionNone},
		{name: "key inside text field", event: KeyPress(" ", true), want: ActionNone},
		{name: "unknown control", event: Click(Control(42)), want: ActionNone},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			res := Resolve(tt.event)
			assert.Equal(t, tt.want, res.Action)
			assert.Equal(t, tt.handled, res.Handled)
			assert.Equal(t, tt.prevent, res.PreventDefault)
		})
	}
}

func TestEveryControlHasAClickBinding(t *testing.T) {
	t.Parallel()

	for _, control := range Controls {
		_, ok := ClickBindings[control]
		assert.True(t, ok, "control %s", control)
	}
}

func TestDispatchDrivesController(t *testing.T) {
	t.Parallel()

	h := newHarness()

	h.ctrl.Dispatch(KeyPress("l", false))
	assert.Empty(t, h.ctrl.Laps(), "lap key does nothing while idle")

	res := h.ctrl.Dispatch(KeyPress(" ", false))
	require.True(t, res.PreventDefault)
	require.Equal(t, PhaseRunning, h.ctrl.Phase())

	h.tick(time.Second)
	h.ctrl.Dispatch(Click(ControlLap))
	h.tick(time.Second)
	h.ctrl.Dispatch(KeyPress("L", false))
	assert.Len(t, h.ctrl.Laps(), 2)

	h.ctrl.Dispatch(KeyPress("t", false))
	assert.True(t, h.ctrl.DarkTheme())

	h.ctrl.Dispatch(Click(ControlClearLaps))
	assert.Empty(t, h.ctrl.Laps())
	assert.Equal(t, PhaseRunning, h.ctrl.Phase())

	h.ctrl.Dispatch(Click(ControlToggle))
	assert.Equal(t, PhasePaused, h.ctrl.Phase())

	h.ctrl.Dispatch(KeyPress("r", false))
	assert.Equal(t, PhaseIdle, h.ctrl.Phase())
	assert.Zero(t, h.ctrl.Elapsed())
}

func TestDispatchIgnoresKeysInTextField(t *testing.T) {
	t.Parallel()

	h := newHarness()
	res := h.ctrl.Dispatch(KeyPress(" ", true))

	assert.False(t, res.Handled)
	assert.False(t, res.PreventDefault)
	assert.Equal(t, PhaseIdle, h.ctrl.Phase())
	assert.Zero(t, h.scheduler.pendingCount())
}

func TestStringers(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "running", PhaseRunning.String())
	assert.Equal(t, "unknown", Phase(9).String())
	assert.True(t, PhasePaused.Stopped())
	assert.False(t, PhaseRunning.Stopped())
	assert.Equal(t, "clear-laps", ControlClearLaps.String())
	assert.Equal(t, "start-pause", ControlToggle.String())
	assert.Equal(t, "theme", ActionTheme.String())
	assert.Equal(t, "none", ActionNone.String())
}
