// Package instant rotates whole phrases with a fade instead of typing them.
package instant

import (
	"time"

	"github.com/verte-zerg/dailyquotes/internal/deck"
	"github.com/verte-zerg/dailyquotes/internal/schedule"
	"github.com/verte-zerg/dailyquotes/internal/surface"
)

// Phase is the presenter's position in a rotation cycle.
type Phase int

// Rotation phases.
const (
	Idle Phase = iota
	FadingOut
	Showing
)

// Timings controls the rotation cycle.
type Timings struct {
	Fade time.Duration
	Hold time.Duration
}

// DefaultTimings returns the fade and hold used on the site.
func DefaultTimings() Timings {
	return Timings{
		Fade: 300 * time.Millisecond,
		Hold: 5000 * time.Millisecond,
	}
}

// Presenter shows one full phrase at a time, fading between them.
type Presenter struct {
	deck    *deck.Deck
	surface surface.Surface
	slot    *schedule.Slot
	timings Timings
	phase   Phase

	// OnShown is called each time a phrase appears.
	OnShown func(phrase string)
}

// New returns an idle Presenter.
func New(d *deck.Deck, surf surface.Surface, sched schedule.Scheduler, timings Timings) *Presenter {
	return &Presenter{
		deck:    d,
		surface: surf,
		slot:    schedule.NewSlot(sched),
		timings: timings,
	}
}

// Start cancels any pending step and begins a fresh cycle with the deck's
// current phrase. An empty deck leaves the presenter idle.
func (p *Presenter) Start() {
	p.Stop()
	p.fadeOut()
}

// Stop cancels the pending fade or hold.
func (p *Presenter) Stop() {
	p.slot.Stop()
	p.phase = Idle
}

// Phase returns the current phase.
func (p *Presenter) Phase() Phase {
	return p.phase
}

func (p *Presenter) fadeOut() {
	phrase, ok := p.deck.Current()
	if !ok {
		p.phase = Idle
		return
	}
	p.phase = FadingOut
	p.surface.SetContainerVisible(false)
	p.slot.Set(p.timings.Fade, func() {
		p.show(phrase)
	})
}

func (p *Presenter) show(phrase string) {
	p.phase = Showing
	p.surface.SetText(phrase)
	p.surface.SetContainerVisible(true)
	if p.OnShown != nil {
		p.OnShown(phrase)
	}
	p.slot.Set(p.timings.Hold, func() {
		p.deck.Advance()
		p.fadeOut()
	})
}
