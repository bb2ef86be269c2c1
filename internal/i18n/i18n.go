// Package i18n holds UI labels and date formatting for the supported languages.
package i18n

import (
	"fmt"
	"time"

	"github.com/verte-zerg/dailyquotes/internal/model"
)

// Labels are the fixed UI strings of one language.
type Labels struct {
	Animations string
	Black      string
	DailyQuote string
	Language   string
	Quit       string
	NoQuotes   string
}

var labels = map[model.Language]Labels{
	model.English: {
		Animations: "animations",
		Black:      "black",
		DailyQuote: "daily quotes",
		Language:   "language",
		Quit:       "quit",
		NoQuotes:   "no quotes for this language",
	},
	model.Russian: {
		Animations: "анимации",
		Black:      "черный",
		DailyQuote: "цитаты дня",
		Language:   "язык",
		Quit:       "выход",
		NoQuotes:   "нет цитат для этого языка",
	},
}

var months = map[model.Language][12]string{
	model.English: {"jan", "feb", "mar", "apr", "may", "jun", "jul", "aug", "sep", "oct", "nov", "dec"},
	model.Russian: {"янв", "фев", "мар", "апр", "май", "июн", "июл", "авг", "сен", "окт", "ноя", "дек"},
}

// For returns the labels of lang, falling back to English.
func For(lang model.Language) Labels {
	if l, ok := labels[lang]; ok {
		return l
	}
	return labels[model.English]
}

// FormatDate renders t as "[14 oct 2026]" in lang.
func FormatDate(t time.Time, lang model.Language) string {
	names, ok := months[lang]
	if !ok {
		names = months[model.English]
	}
	return fmt.Sprintf("[%d %s %d]", t.Day(), names[t.Month()-1], t.Year())
}
