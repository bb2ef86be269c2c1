// Package schedule provides cancellable delayed callbacks.
//
// All implementations are cooperative: callbacks run on the caller's goroutine,
// one at a time, so a callback never overlaps another.
package schedule

import "time"

// Token identifies a scheduled callback. The zero Token is never issued.
type Token uint64

// Scheduler runs callbacks after a delay until they are cancelled.
type Scheduler interface {
	Schedule(delay time.Duration, fn func()) Token
	Cancel(tok Token)
}

// Slot holds at most one pending callback on a Scheduler.
// Set always cancels the previous callback first.
type Slot struct {
	sched Scheduler
	tok   Token
}

// NewSlot returns an empty Slot bound to sched.
func NewSlot(sched Scheduler) *Slot {
	return &Slot{sched: sched}
}

// Set replaces the pending callback with fn after delay.
func (s *Slot) Set(delay time.Duration, fn func()) {
	s.Stop()
	var tok Token
	tok = s.sched.Schedule(delay, func() {
		if s.tok == tok {
			s.tok = 0
		}
		fn()
	})
	s.tok = tok
}

// Stop cancels the pending callback, if any.
func (s *Slot) Stop() {
	if s.tok == 0 {
		return
	}
	s.sched.Cancel(s.tok)
	s.tok = 0
}

// Pending reports whether a callback is scheduled.
func (s *Slot) Pending() bool {
	return s.tok != 0
}
