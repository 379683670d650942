package tenfoot

import (
	"time"

	"github.com/orbitview/tenfoot/pkg/tenfoot/constants"
)

// Scheduler hands out one-shot ticks. The zoom animator reschedules itself
// each tick, so the only requirement is a monotonically increasing now per
// tick; whether ticks are frame-synchronized or timer-driven is the
// scheduler's business.
type Scheduler interface {
	// Schedule runs fn once on the next tick and returns a cancel func.
	// Cancel is idempotent and a no-op once fn has run.
	Schedule(fn func(now time.Time)) (cancel func())
}

// TimerScheduler is the fixed-interval fallback for hosts without a frame
// loop (headless and test hosts). Callbacks fire on timer goroutines.
type TimerScheduler struct {
	Interval time.Duration
}

func (s *TimerScheduler) Schedule(fn func(now time.Time)) func() {
	interval := s.Interval
	if interval <= 0 {
		interval = constants.DefaultFrameInterval
	}
	t := time.AfterFunc(interval, func() { fn(time.Now()) })
	return func() { t.Stop() }
}

type loopTask struct {
	fn        func(now time.Time)
	cancelled bool
}

// LoopScheduler is frame-synchronized: the host's render loop calls Step
// once per frame and all pending ticks run there. Single-threaded by
// contract: Schedule, Step, and cancel all happen on the pump goroutine.
type LoopScheduler struct {
	pending []*loopTask
}

func NewLoopScheduler() *LoopScheduler {
	return &LoopScheduler{}
}

func (s *LoopScheduler) Schedule(fn func(now time.Time)) func() {
	task := &loopTask{fn: fn}
	s.pending = append(s.pending, task)
	return func() { task.cancelled = true }
}

// Step runs every tick scheduled before this frame. Ticks scheduled while
// running (the animator rescheduling itself) wait for the next frame.
func (s *LoopScheduler) Step(now time.Time) {
	tasks := s.pending
	s.pending = nil
	for _, task := range tasks {
		if task.cancelled {
			continue
		}
		task.fn(now)
	}
}

// Pending reports how many uncancelled ticks are waiting.
func (s *LoopScheduler) Pending() int {
	count := 0
	for _, task := range s.pending {
		if !task.cancelled {
			count++
		}
	}
	return count
}
