// Package typewriter reveals and deletes phrases one character at a time.
package typewriter

import (
	"fmt"
	"time"

	"github.com/verte-zerg/dailyquotes/internal/deck"
	"github.com/verte-zerg/dailyquotes/internal/schedule"
	"github.com/verte-zerg/dailyquotes/internal/surface"
)

// State is a phase of the typing cycle.
type State int

// Typing cycle phases.
const (
	Typing State = iota
	PausedFull
	Deleting
	PausedEmpty
)

func (s State) String() string {
	switch s {
	case Typing:
		return "typing"
	case PausedFull:
		return "paused-full"
	case Deleting:
		return "deleting"
	case PausedEmpty:
		return "paused-empty"
	default:
		return fmt.Sprintf("state(%d)", int(s))
	}
}

// Timings controls the cadence of the typing cycle.
type Timings struct {
	Type      time.Duration
	Delete    time.Duration
	HoldFull  time.Duration
	HoldEmpty time.Duration
}

// DefaultTimings returns the cadence used on the site.
func DefaultTimings() Timings {
	return Timings{
		Type:      40 * time.Millisecond,
		Delete:    10 * time.Millisecond,
		HoldFull:  5000 * time.Millisecond,
		HoldEmpty: 500 * time.Millisecond,
	}
}

// delay is the wait before the tick that leaves state s.
func (t Timings) delay(s State) time.Duration {
	switch s {
	case PausedFull:
		return t.HoldFull
	case Deleting:
		return t.Delete
	case PausedEmpty:
		return t.HoldEmpty
	default:
		return t.Type
	}
}

// Session is the transient position within one phrase.
type Session struct {
	State State
	Index int
}

// Step returns the session after one tick on a phrase of n runes, and whether
// the revealed text changed.
func Step(s Session, n int) (Session, bool) {
	switch s.State {
	case Typing:
		if s.Index >= n {
			return Session{State: PausedFull, Index: n}, false
		}
		next := s.Index + 1
		if next == n {
			return Session{State: PausedFull, Index: n}, true
		}
		return Session{State: Typing, Index: next}, true
	case PausedFull:
		return Session{State: Deleting, Index: n}, false
	case Deleting:
		if s.Index <= 0 {
			return Session{State: PausedEmpty}, false
		}
		next := s.Index - 1
		if next == 0 {
			return Session{State: PausedEmpty}, true
		}
		return Session{State: Deleting, Index: next}, true
	default:
		return Session{State: Typing}, false
	}
}

// Engine drives a typing cycle over a deck onto a surface.
type Engine struct {
	deck    *deck.Deck
	surface surface.Surface
	slot    *schedule.Slot
	timings Timings

	phrase  []rune
	session Session
	running bool

	// OnShown is called each time a phrase has been fully typed.
	OnShown func(phrase string)
}

// New returns a stopped Engine.
func New(d *deck.Deck, surf surface.Surface, sched schedule.Scheduler, timings Timings) *Engine {
	return &Engine{
		deck:    d,
		surface: surf,
		slot:    schedule.NewSlot(sched),
		timings: timings,
	}
}

// Start cancels any pending tick and begins typing the deck's current phrase
// from the first character. An empty deck leaves the engine idle.
func (e *Engine) Start() {
	e.Stop()
	e.session = Session{State: Typing}
	phrase, ok := e.deck.Current()
	if !ok {
		e.phrase = nil
		return
	}
	e.phrase = []rune(phrase)
	e.running = true
	e.surface.SetText("")
	e.slot.Set(e.timings.Type, e.tick)
}

// Stop cancels the pending tick. Nothing is rendered afterwards.
func (e *Engine) Stop() {
	e.slot.Stop()
	e.running = false
}

// Running reports whether a tick chain is active.
func (e *Engine) Running() bool {
	return e.running
}

// Session returns the current position.
func (e *Engine) Session() Session {
	return e.session
}

// Revealed returns the currently visible part of the phrase.
func (e *Engine) Revealed() string {
	return string(e.phrase[:e.session.Index])
}

func (e *Engine) tick() {
	if !e.running {
		return
	}
	prev := e.session.State
	next, changed := Step(e.session, len(e.phrase))
	if prev == PausedEmpty {
		e.deck.Advance()
		phrase, ok := e.deck.Current()
		if !ok {
			e.running = false
			return
		}
		e.phrase = []rune(phrase)
	}
	e.session = next
	if changed {
		e.surface.SetText(e.Revealed())
	}
	if next.State == PausedFull && prev == Typing && e.OnShown != nil {
		e.OnShown(string(e.phrase))
	}
	e.slot.Set(e.timings.delay(next.State), e.tick)
}
