package schedule

import (
	"sort"
	"time"
)

// Manual is a virtual-clock Scheduler. Time only moves through Advance and RunNext.
type Manual struct {
	now    time.Duration
	seq    uint64
	last   Token
	timers map[Token]manualTimer
}

type manualTimer struct {
	at  time.Duration
	seq uint64
	fn  func()
}

// NewManual returns a Manual scheduler at time zero.
func NewManual() *Manual {
	return &Manual{timers: map[Token]manualTimer{}}
}

// Schedule implements Scheduler.
func (m *Manual) Schedule(delay time.Duration, fn func()) Token {
	if delay < 0 {
		delay = 0
	}
	m.last++
	m.seq++
	m.timers[m.last] = manualTimer{at: m.now + delay, seq: m.seq, fn: fn}
	return m.last
}

// Cancel implements Scheduler.
func (m *Manual) Cancel(tok Token) {
	delete(m.timers, tok)
}

// Now returns the elapsed virtual time.
func (m *Manual) Now() time.Duration {
	return m.now
}

// Pending returns the number of scheduled callbacks.
func (m *Manual) Pending() int {
	return len(m.timers)
}

// NextDelay returns the time until the next callback fires.
func (m *Manual) NextDelay() (time.Duration, bool) {
	tok, ok := m.earliest()
	if !ok {
		return 0, false
	}
	return m.timers[tok].at - m.now, true
}

// RunNext jumps to the earliest callback and fires it.
func (m *Manual) RunNext() bool {
	tok, ok := m.earliest()
	if !ok {
		return false
	}
	m.fire(tok)
	return true
}

// Advance moves the clock forward by d, firing every callback that falls due,
// including ones scheduled by callbacks during the advance.
func (m *Manual) Advance(d time.Duration) {
	target := m.now + d
	for {
		tok, ok := m.earliest()
		if !ok || m.timers[tok].at > target {
			break
		}
		m.fire(tok)
	}
	m.now = target
}

func (m *Manual) fire(tok Token) {
	t := m.timers[tok]
	delete(m.timers, tok)
	if t.at > m.now {
		m.now = t.at
	}
	t.fn()
}

func (m *Manual) earliest() (Token, bool) {
	if len(m.timers) == 0 {
		return 0, false
	}
	toks := make([]Token, 0, len(m.timers))
	for tok := range m.timers {
		toks = append(toks, tok)
	}
	sort.Slice(toks, func(i, j int) bool {
		a, b := m.timers[toks[i]], m.timers[toks[j]]
		if a.at == b.at {
			return a.seq < b.seq
		}
		return a.at < b.at
	})
	return toks[0], true
}
