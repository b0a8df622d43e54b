package stopwatch

import (
	"time"
)

type fakeClock struct {
	now time.Duration
}

func (c *fakeClock) Now() time.Duration { return c.now }

func (c *fakeClock) advance(d time.Duration) { c.now += d }

type lapRow struct {
	index      int
	cumulative string
	split      string
}

type recordingRenderer struct {
	display     string
	rows        []lapRow
	toggleLabel string
	pressed     bool
	enabled     map[Control]bool
	dark        bool
	displays    int
}

func newRecordingRenderer() *recordingRenderer {
	return &recordingRenderer{enabled: make(map[Control]bool)}
}

func (r *recordingRenderer) SetDisplay(h, m, s, ms string) {
	r.display = h + ":" + m + ":" + s + "." + ms
	r.displays++
}

func (r *recordingRenderer) PrependLapRow(index int, cumulative, split string) {
	r.rows = append([]lapRow{{index: index, cumulative: cumulative, split: split}}, r.rows...)
}

func (r *recordingRenderer) ClearLapRows() { r.rows = nil }

func (r *recordingRenderer) SetToggleLabel(text string, pressed bool) {
	r.toggleLabel = text
	r.pressed = pressed
}

func (r *recordingRenderer) SetControlEnabled(c Control, enabled bool) { r.enabled[c] = enabled }

func (r *recordingRenderer) SetThemeFlag(dark bool) { r.dark = dark }

// manualScheduler holds frames until the test fires them.
type manualScheduler struct {
	next    int
	pending map[int]func()
	order   []int
	cancels int
}

func newManualScheduler() *manualScheduler {
	return &manualScheduler{pending: make(map[int]func())}
}

func (s *manualScheduler) RequestFrame(fn func()) CancelFunc {
	s.next++
	id := s.next
	s.pending[id] = fn
	s.order = append(s.order, id)
	return func() {
		if _, ok := s.pending[id]; ok {
			s.cancels++
		}
		delete(s.pending, id)
	}
}

// fire runs every frame pending at call time and reports how many ran.
func (s *manualScheduler) fire() int {
	ids := s.order
	s.order = nil
	ran := 0
	for _, id := range ids {
		fn, ok := s.pending[id]
		if !ok {
			continue
		}
		delete(s.pending, id)
		fn()
		ran++
	}
	return ran
}

func (s *manualScheduler) pendingCount() int { return len(s.pending) }

type harness struct {
	clock     *fakeClock
	renderer  *recordingRenderer
	scheduler *manualScheduler
	ctrl      *Controller
}

func newHarness(opts ...Option) harness {
	h := harness{
		clock:     &fakeClock{now: 5 * time.Second},
		renderer:  newRecordingRenderer(),
		scheduler: newManualScheduler(),
	}
	ctrl, err := New(h.clock, h.renderer, h.scheduler, opts...)
	if err != nil {
		panic(err)
	}
	h.ctrl = ctrl
	return h
}

// tick advances the clock and fires the pending frame.
func (h harness) tick(d time.Duration) {
	h.clock.advance(d)
	h.scheduler.fire()
}
