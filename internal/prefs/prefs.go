// Package prefs reads and writes user preferences through a settings store.
package prefs

import (
	"context"
	"fmt"

	"github.com/verte-zerg/dailyquotes/internal/model"
)

// Setting keys, shared with the web version's localStorage.
const (
	KeyAnimations = "animationsEnabled"
	KeyDarkTheme  = "blackThemeEnabled"
	KeyLanguage   = "language"
)

// Keys lists every preference key.
var Keys = []string{KeyAnimations, KeyDarkTheme, KeyLanguage}

// Settings is a key/value preference store.
type Settings interface {
	GetBool(ctx context.Context, key string) (bool, bool, error)
	SetBool(ctx context.Context, key string, value bool) error
	GetString(ctx context.Context, key string) (string, bool, error)
	SetString(ctx context.Context, key string, value string) error
}

// Load resolves preferences, using defaults for anything unset.
// An unknown stored language falls back to the default language.
func Load(ctx context.Context, s Settings, defaults model.Preferences) (model.Preferences, error) {
	p := defaults
	if v, ok, err := s.GetBool(ctx, KeyAnimations); err != nil {
		return defaults, fmt.Errorf("failed to read %s: %w", KeyAnimations, err)
	} else if ok {
		p.Animations = v
	}
	if v, ok, err := s.GetBool(ctx, KeyDarkTheme); err != nil {
		return defaults, fmt.Errorf("failed to read %s: %w", KeyDarkTheme, err)
	} else if ok {
		p.DarkTheme = v
	}
	if v, ok, err := s.GetString(ctx, KeyLanguage); err != nil {
		return defaults, fmt.Errorf("failed to read %s: %w", KeyLanguage, err)
	} else if ok {
		if lang, perr := model.ParseLanguage(v); perr == nil {
			p.Language = lang
		}
	}
	return p, nil
}

// SaveAnimations persists the animation flag.
func SaveAnimations(ctx context.Context, s Settings, enabled bool) error {
	if err := s.SetBool(ctx, KeyAnimations, enabled); err != nil {
		return fmt.Errorf("failed to save %s: %w", KeyAnimations, err)
	}
	return nil
}

// SaveDarkTheme persists the theme flag.
func SaveDarkTheme(ctx context.Context, s Settings, dark bool) error {
	if err := s.SetBool(ctx, KeyDarkTheme, dark); err != nil {
		return fmt.Errorf("failed to save %s: %w", KeyDarkTheme, err)
	}
	return nil
}

// SaveLanguage persists the language.
func SaveLanguage(ctx context.Context, s Settings, lang model.Language) error {
	if err := s.SetString(ctx, KeyLanguage, string(lang)); err != nil {
		return fmt.Errorf("failed to save %s: %w", KeyLanguage, err)
	}
	return nil
}
