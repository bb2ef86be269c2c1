// Package controller decides which phrase presenter runs and owns its lifecycle.
package controller

import (
	"context"
	"math/rand"

	"github.com/verte-zerg/dailyquotes/internal/deck"
	"github.com/verte-zerg/dailyquotes/internal/instant"
	"github.com/verte-zerg/dailyquotes/internal/model"
	"github.com/verte-zerg/dailyquotes/internal/phrases"
	"github.com/verte-zerg/dailyquotes/internal/prefs"
	"github.com/verte-zerg/dailyquotes/internal/schedule"
	"github.com/verte-zerg/dailyquotes/internal/surface"
	"github.com/verte-zerg/dailyquotes/internal/typewriter"
)

// Options tunes a Controller.
type Options struct {
	Typewriter typewriter.Timings
	Instant    instant.Timings
	// Rand drives deck shuffles; nil seeds from the clock.
	Rand *rand.Rand
	// OnShown is called with every fully displayed phrase.
	OnShown func(model.ShownQuote)
}

// DefaultOptions returns the site timings.
func DefaultOptions() Options {
	return Options{
		Typewriter: typewriter.DefaultTimings(),
		Instant:    instant.DefaultTimings(),
	}
}

// Controller switches between the typewriter and instant presenters. At most
// one of them has work scheduled at any time.
type Controller struct {
	phrases  phrases.Set
	settings prefs.Settings
	surface  surface.Surface

	deck   *deck.Deck
	typer  *typewriter.Engine
	fader  *instant.Presenter
	onShow func(model.ShownQuote)

	lang     model.Language
	animated bool
	stopped  bool
}

// New builds a stopped Controller for the given language and animation flag.
func New(set phrases.Set, settings prefs.Settings, surf surface.Surface, sched schedule.Scheduler, lang model.Language, animated bool, opts Options) *Controller {
	d := deck.New(set.For(lang), opts.Rand)
	c := &Controller{
		phrases:  set,
		settings: settings,
		surface:  surf,
		deck:     d,
		typer:    typewriter.New(d, surf, sched, opts.Typewriter),
		fader:    instant.New(d, surf, sched, opts.Instant),
		onShow:   opts.OnShown,
		lang:     lang,
		animated: animated,
		stopped:  true,
	}
	c.typer.OnShown = func(p string) { c.shown(p, model.ModeTypewriter) }
	c.fader.OnShown = func(p string) { c.shown(p, model.ModeInstant) }
	return c
}

// Start begins presenting with a clean surface.
func (c *Controller) Start() {
	c.stopped = false
	c.restart()
}

// Resume restarts the active presenter after Stop. It is a no-op when running.
func (c *Controller) Resume() {
	if !c.stopped {
		return
	}
	c.Start()
}

// Stop cancels all scheduled work.
func (c *Controller) Stop() {
	c.typer.Stop()
	c.fader.Stop()
	c.stopped = true
}

// Stopped reports whether Stop was called without a following Start.
func (c *Controller) Stopped() bool {
	return c.stopped
}

// AnimationEnabled reports whether the typewriter is the active presenter.
func (c *Controller) AnimationEnabled() bool {
	return c.animated
}

// Language returns the active phrase language.
func (c *Controller) Language() model.Language {
	return c.lang
}

// Empty reports whether the active language has no phrases.
func (c *Controller) Empty() bool {
	return c.deck.Empty()
}

// SetAnimationEnabled switches presenters, starting the selected one from a
// clean state, and persists the choice. The switch happens even if saving fails.
func (c *Controller) SetAnimationEnabled(ctx context.Context, enabled bool) error {
	c.animated = enabled
	if !c.stopped {
		c.restart()
	}
	return prefs.SaveAnimations(ctx, c.settings, enabled)
}

// SetLanguage rebuilds the deck for lang, restarts the active presenter and
// persists the choice.
func (c *Controller) SetLanguage(ctx context.Context, lang model.Language) error {
	c.lang = lang
	c.deck.Reset(c.phrases.For(lang))
	if !c.stopped {
		c.restart()
	}
	return prefs.SaveLanguage(ctx, c.settings, lang)
}

func (c *Controller) restart() {
	c.typer.Stop()
	c.fader.Stop()
	c.surface.SetText("")
	c.surface.SetContainerVisible(true)
	c.surface.SetCursorVisible(c.animated)
	if c.animated {
		c.typer.Start()
		return
	}
	c.fader.Start()
}

func (c *Controller) shown(phrase string, mode model.Mode) {
	if c.onShow == nil {
		return
	}
	c.onShow(model.ShownQuote{Lang: c.lang, Phrase: phrase, Mode: mode})
}
