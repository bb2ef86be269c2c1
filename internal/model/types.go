// Package model defines shared data structures.
package model

import (
	"fmt"
	"strings"
	"time"
)

// Language is a UI and phrase-set language code.
type Language string

// Supported languages.
const (
	English Language = "en"
	Russian Language = "ru"
)

// Languages lists the supported languages in toggle order.
var Languages = []Language{English, Russian}

// ParseLanguage normalizes a language code and rejects unknown ones.
func ParseLanguage(s string) (Language, error) {
	lang := Language(strings.ToLower(strings.TrimSpace(s)))
	for _, known := range Languages {
		if lang == known {
			return lang, nil
		}
	}
	return "", fmt.Errorf("unknown language %q (available: en, ru)", s)
}

// Next returns the language that follows l in toggle order.
func (l Language) Next() Language {
	for i, known := range Languages {
		if known == l {
			return Languages[(i+1)%len(Languages)]
		}
	}
	return English
}

// Mode identifies which presenter rendered a phrase.
type Mode string

// Presenter modes.
const (
	ModeTypewriter Mode = "typewriter"
	ModeInstant    Mode = "instant"
)

// Preferences holds the persisted user choices.
type Preferences struct {
	Animations bool
	DarkTheme  bool
	Language   Language
}

// DefaultPreferences mirrors the site defaults: animated, dark, English.
func DefaultPreferences() Preferences {
	return Preferences{
		Animations: true,
		DarkTheme:  true,
		Language:   English,
	}
}

// ShownQuote records a phrase that was fully displayed.
type ShownQuote struct {
	Lang    Language
	Phrase  string
	Mode    Mode
	ShownAt time.Time
}

// QuoteAggregate summarizes how often a phrase was shown.
type QuoteAggregate struct {
	Lang     Language
	Phrase   string
	Count    int
	LastSeen time.Time
}

// HistoryConfig defines filters for history output.
type HistoryConfig struct {
	Lang  Language
	Since *time.Time
	Top   int
}
