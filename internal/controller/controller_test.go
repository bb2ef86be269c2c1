package controller

import (
	"context"
	"math/rand"
	"testing"
	"time"

	"github.com/verte-zerg/dailyquotes/internal/model"
	"github.com/verte-zerg/dailyquotes/internal/phrases"
	"github.com/verte-zerg/dailyquotes/internal/prefs"
	"github.com/verte-zerg/dailyquotes/internal/schedule"
	"github.com/verte-zerg/dailyquotes/internal/surface"
)

type fixture struct {
	c        *Controller
	sched    *schedule.Manual
	rec      *surface.Recorder
	settings *prefs.Memory
	shown    []model.ShownQuote
}

func newFixture(t *testing.T, set phrases.Set, animated bool) *fixture {
	t.Helper()
	f := &fixture{
		sched:    schedule.NewManual(),
		rec:      surface.NewRecorder(),
		settings: prefs.NewMemory(),
	}
	opts := DefaultOptions()
	opts.Rand = rand.New(rand.NewSource(11))
	opts.OnShown = func(q model.ShownQuote) { f.shown = append(f.shown, q) }
	f.c = New(set, f.settings, f.rec, f.sched, model.English, animated, opts)
	return f
}

func testSet() phrases.Set {
	return phrases.Set{
		model.English: {"cat"},
		model.Russian: {"кот", "пёс"},
	}
}

func TestStartTypewriter(t *testing.T) {
	f := newFixture(t, testSet(), true)
	f.c.Start()
	if !f.rec.CursorVisible() {
		t.Fatalf("expected cursor in animated mode")
	}
	f.sched.Advance(3 * 40 * time.Millisecond)
	if f.rec.Text() != "cat" {
		t.Fatalf("expected cat, got %q", f.rec.Text())
	}
	if len(f.shown) != 1 || f.shown[0].Mode != model.ModeTypewriter || f.shown[0].Lang != model.English {
		t.Fatalf("unexpected shown records: %+v", f.shown)
	}
}

func TestDisableAnimationMidPhrase(t *testing.T) {
	f := newFixture(t, testSet(), true)
	f.c.Start()
	f.sched.Advance(2 * 40 * time.Millisecond)
	if f.rec.Text() != "ca" {
		t.Fatalf("expected ca mid-phrase, got %q", f.rec.Text())
	}

	if err := f.c.SetAnimationEnabled(context.Background(), false); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if f.rec.Text() != "" || f.rec.CursorVisible() {
		t.Fatalf("expected cleared text without cursor, got %q cursor=%v", f.rec.Text(), f.rec.CursorVisible())
	}
	if f.sched.Pending() != 1 {
		t.Fatalf("expected only the fade step pending, got %d", f.sched.Pending())
	}
	writes := len(f.rec.Texts)
	f.sched.Advance(299 * time.Millisecond)
	if len(f.rec.Texts) != writes {
		t.Fatalf("expected no typewriter writes after switch, got %v", f.rec.Texts[writes:])
	}
	f.sched.Advance(time.Millisecond)
	if f.rec.Text() != "cat" {
		t.Fatalf("expected instant phrase after fade, got %q", f.rec.Text())
	}

	v, ok, _ := f.settings.GetBool(context.Background(), prefs.KeyAnimations)
	if !ok || v {
		t.Fatalf("expected animations=false persisted, got %v (ok=%v)", v, ok)
	}
}

func TestToggleOffOnRestartsCleanly(t *testing.T) {
	f := newFixture(t, testSet(), true)
	f.c.Start()
	f.sched.Advance(2 * 40 * time.Millisecond)
	ctx := context.Background()
	_ = f.c.SetAnimationEnabled(ctx, false)
	_ = f.c.SetAnimationEnabled(ctx, true)
	if f.sched.Pending() != 1 {
		t.Fatalf("expected a single timer chain, got %d", f.sched.Pending())
	}
	if f.rec.Text() != "" {
		t.Fatalf("expected no leftover characters, got %q", f.rec.Text())
	}
	f.sched.Advance(40 * time.Millisecond)
	if f.rec.Text() != "c" {
		t.Fatalf("expected c from the restarted chain, got %q", f.rec.Text())
	}
}

func TestSetLanguageRebuildsDeck(t *testing.T) {
	f := newFixture(t, testSet(), false)
	f.c.Start()
	f.sched.Advance(300 * time.Millisecond)
	if f.rec.Text() != "cat" {
		t.Fatalf("expected cat, got %q", f.rec.Text())
	}
	if err := f.c.SetLanguage(context.Background(), model.Russian); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if f.c.Language() != model.Russian {
		t.Fatalf("expected ru, got %s", f.c.Language())
	}
	if f.sched.Pending() != 1 {
		t.Fatalf("expected one pending step, got %d", f.sched.Pending())
	}
	f.sched.Advance(300 * time.Millisecond)
	got := f.rec.Text()
	if got != "кот" && got != "пёс" {
		t.Fatalf("expected a russian phrase, got %q", got)
	}
	lang, ok, _ := f.settings.GetString(context.Background(), prefs.KeyLanguage)
	if !ok || lang != "ru" {
		t.Fatalf("expected ru persisted, got %q", lang)
	}
	if last := f.shown[len(f.shown)-1]; last.Lang != model.Russian || last.Mode != model.ModeInstant {
		t.Fatalf("unexpected shown record: %+v", last)
	}
}

func TestStopCancelsEverything(t *testing.T) {
	f := newFixture(t, testSet(), true)
	f.c.Start()
	f.sched.Advance(40 * time.Millisecond)
	f.c.Stop()
	writes := f.rec.Writes()
	f.sched.Advance(time.Minute)
	if f.rec.Writes() != writes || f.sched.Pending() != 0 {
		t.Fatalf("expected nothing after stop, writes=%d pending=%d", f.rec.Writes()-writes, f.sched.Pending())
	}
	if !f.c.Stopped() {
		t.Fatalf("expected stopped controller")
	}
}

func TestToggleWhileStoppedDoesNotStart(t *testing.T) {
	f := newFixture(t, testSet(), true)
	f.c.Start()
	f.c.Stop()
	_ = f.c.SetAnimationEnabled(context.Background(), false)
	_ = f.c.SetLanguage(context.Background(), model.Russian)
	if f.sched.Pending() != 0 {
		t.Fatalf("expected nothing scheduled while stopped, got %d", f.sched.Pending())
	}
	f.c.Resume()
	if f.sched.Pending() != 1 {
		t.Fatalf("expected resume to start one chain, got %d", f.sched.Pending())
	}
	f.c.Resume()
	if f.sched.Pending() != 1 {
		t.Fatalf("expected resume to be idempotent, got %d", f.sched.Pending())
	}
}

func TestEmptyLanguageStaysInert(t *testing.T) {
	f := newFixture(t, phrases.Set{model.Russian: {"да"}}, true)
	f.c.Start()
	f.sched.Advance(time.Minute)
	if f.sched.Pending() != 0 {
		t.Fatalf("expected no ticks, got %d", f.sched.Pending())
	}
	if f.rec.Text() != "" || !f.c.Empty() {
		t.Fatalf("expected empty surface, got %q", f.rec.Text())
	}
	for _, txt := range f.rec.Texts {
		if txt != "" {
			t.Fatalf("expected only clears, got %q", txt)
		}
	}
}
