package instant

import (
	"math/rand"
	"testing"
	"time"

	"github.com/verte-zerg/dailyquotes/internal/deck"
	"github.com/verte-zerg/dailyquotes/internal/schedule"
	"github.com/verte-zerg/dailyquotes/internal/surface"
)

func newTestPresenter(seed int64, phrases ...string) (*Presenter, *schedule.Manual, *surface.Recorder) {
	sched := schedule.NewManual()
	rec := surface.NewRecorder()
	d := deck.New(phrases, rand.New(rand.NewSource(seed)))
	return New(d, rec, sched, DefaultTimings()), sched, rec
}

func TestFadeThenShow(t *testing.T) {
	p, sched, rec := newTestPresenter(1, "only")
	p.Start()
	if rec.ContainerVisible() || p.Phase() != FadingOut {
		t.Fatalf("expected fade-out first, phase=%v visible=%v", p.Phase(), rec.ContainerVisible())
	}
	if rec.Writes() != 0 {
		t.Fatalf("expected no text before fade completes")
	}
	sched.Advance(300 * time.Millisecond)
	if rec.Text() != "only" || !rec.ContainerVisible() || p.Phase() != Showing {
		t.Fatalf("expected phrase shown, got %q visible=%v phase=%v", rec.Text(), rec.ContainerVisible(), p.Phase())
	}
	if d, _ := sched.NextDelay(); d != 5000*time.Millisecond {
		t.Fatalf("expected 5s hold, got %v", d)
	}
}

func TestRotatesThroughDeck(t *testing.T) {
	p, sched, rec := newTestPresenter(5, "a", "b")
	p.Start()
	cycle := 300*time.Millisecond + 5000*time.Millisecond

	sched.Advance(300 * time.Millisecond)
	first := rec.Text()
	sched.Advance(cycle)
	second := rec.Text()
	sched.Advance(cycle)
	third := rec.Text()

	if first == second {
		t.Fatalf("expected both phrases within one pass, got %q twice", first)
	}
	for _, got := range []string{first, second, third} {
		if got != "a" && got != "b" {
			t.Fatalf("unexpected phrase %q", got)
		}
	}
	if len(rec.Texts) != 3 {
		t.Fatalf("expected 3 renders, got %v", rec.Texts)
	}
}

func TestDeterministicWithSeed(t *testing.T) {
	run := func() []string {
		p, sched, rec := newTestPresenter(99, "a", "b", "c")
		p.Start()
		sched.Advance(10 * 5300 * time.Millisecond)
		return rec.Texts
	}
	a, b := run(), run()
	if len(a) != len(b) || len(a) == 0 {
		t.Fatalf("expected equal non-empty runs, got %v and %v", a, b)
	}
	for i := range a {
		if a[i] != b[i] {
			t.Fatalf("runs diverged at %d: %v vs %v", i, a, b)
		}
	}
}

func TestStopDuringFadeCancelsShow(t *testing.T) {
	p, sched, rec := newTestPresenter(1, "a")
	p.Start()
	sched.Advance(100 * time.Millisecond)
	p.Stop()
	sched.Advance(time.Minute)
	if rec.Writes() != 0 {
		t.Fatalf("expected no writes after stop, got %v", rec.Texts)
	}
	if sched.Pending() != 0 || p.Phase() != Idle {
		t.Fatalf("expected idle with nothing pending, pending=%d phase=%v", sched.Pending(), p.Phase())
	}
}

func TestRestartKeepsOneChain(t *testing.T) {
	p, sched, _ := newTestPresenter(1, "a", "b")
	p.Start()
	sched.Advance(400 * time.Millisecond)
	p.Start()
	if sched.Pending() != 1 {
		t.Fatalf("expected one pending step, got %d", sched.Pending())
	}
}

func TestEmptyDeckDoesNothing(t *testing.T) {
	p, sched, rec := newTestPresenter(1)
	p.Start()
	sched.Advance(time.Minute)
	if rec.Writes() != 0 || len(rec.Visibility) != 0 || sched.Pending() != 0 {
		t.Fatalf("expected inert presenter, writes=%d visibility=%v pending=%d", rec.Writes(), rec.Visibility, sched.Pending())
	}
}

func TestOnShown(t *testing.T) {
	p, sched, _ := newTestPresenter(1, "a")
	var shown []string
	p.OnShown = func(s string) { shown = append(shown, s) }
	p.Start()
	sched.Advance(300*time.Millisecond + 5300*time.Millisecond)
	if len(shown) != 2 {
		t.Fatalf("expected 2 shows, got %v", shown)
	}
}
