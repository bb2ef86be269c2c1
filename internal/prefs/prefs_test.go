package prefs

import (
	"context"
	"errors"
	"testing"

	"github.com/verte-zerg/dailyquotes/internal/model"
)

func TestLoadUsesDefaultsWhenUnset(t *testing.T) {
	p, err := Load(context.Background(), NewMemory(), model.DefaultPreferences())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if p != model.DefaultPreferences() {
		t.Fatalf("expected defaults, got %+v", p)
	}
}

func TestLoadReadsStoredValues(t *testing.T) {
	ctx := context.Background()
	m := NewMemory()
	if err := SaveAnimations(ctx, m, false); err != nil {
		t.Fatalf("save animations: %v", err)
	}
	if err := SaveDarkTheme(ctx, m, false); err != nil {
		t.Fatalf("save theme: %v", err)
	}
	if err := SaveLanguage(ctx, m, model.Russian); err != nil {
		t.Fatalf("save language: %v", err)
	}
	p, err := Load(ctx, m, model.DefaultPreferences())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := model.Preferences{Animations: false, DarkTheme: false, Language: model.Russian}
	if p != want {
		t.Fatalf("expected %+v, got %+v", want, p)
	}
}

func TestLoadIgnoresUnknownLanguage(t *testing.T) {
	ctx := context.Background()
	m := NewMemory()
	_ = m.SetString(ctx, KeyLanguage, "de")
	p, err := Load(ctx, m, model.DefaultPreferences())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if p.Language != model.English {
		t.Fatalf("expected fallback to en, got %q", p.Language)
	}
}

type failingSettings struct{ *Memory }

func (failingSettings) GetBool(context.Context, string) (bool, bool, error) {
	return false, false, errors.New("disk on fire")
}

func TestLoadReturnsStoreErrors(t *testing.T) {
	_, err := Load(context.Background(), failingSettings{Memory: NewMemory()}, model.DefaultPreferences())
	if err == nil {
		t.Fatalf("expected error")
	}
}
