package watch

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/alexisbeaulieu97/lapwatch/internal/stopwatch"
)

// frameScheduler implements stopwatch.Scheduler on top of tea.Tick. Frames
// are delivered back through Update as frameMsg, so a frame callback never
// runs concurrently with key or mouse handling.
type frameScheduler struct {
	interval time.Duration
	seq      uint64
	pending  map[uint64]func()
	queued   []tea.Cmd
}

func newFrameScheduler(interval time.Duration) *frameScheduler {
	return &frameScheduler{
		interval: interval,
		pending:  make(map[uint64]func()),
	}
}

// RequestFrame queues a tick command; the caller's Update must return drain().
func (s *frameScheduler) RequestFrame(fn func()) stopwatch.CancelFunc {
	s.seq++
	id := s.seq
	s.pending[id] = fn
	s.queued = append(s.queued, frameCmd(s.interval, id))

	return func() {
		delete(s.pending, id)
	}
}

// fire runs the callback for id if it is still pending. Ticks for cancelled
// frames are dropped here.
func (s *frameScheduler) fire(id uint64) bool {
	fn, ok := s.pending[id]
	if !ok {
		return false
	}
	delete(s.pending, id)
	fn()
	return true
}

// drain hands the queued tick commands to Bubble Tea.
func (s *frameScheduler) drain() tea.Cmd {
	if len(s.queued) == 0 {
		return nil
	}
	cmds := s.queued
	s.queued = nil
	return tea.Batch(cmds...)
}

func (s *frameScheduler) pendingCount() int {
	return len(s.pending)
}

func frameCmd(interval time.Duration, id uint64) tea.Cmd {
	return tea.Tick(interval, func(time.Time) tea.Msg {
		return frameMsg{id: id}
	})
}
