package stats

import (
	"testing"
	"time"

	"github.com/verte-zerg/dailyquotes/internal/model"
)

func TestTopQuotesOrdering(t *testing.T) {
	now := time.Date(2026, time.October, 14, 9, 0, 0, 0, time.UTC)
	aggs := []model.QuoteAggregate{
		{Phrase: "b", Count: 3, LastSeen: now},
		{Phrase: "a", Count: 5, LastSeen: now.Add(-time.Hour)},
		{Phrase: "c", Count: 3, LastSeen: now.Add(time.Hour)},
		{Phrase: "d", Count: 1, LastSeen: now},
	}
	top := TopQuotes(aggs, 3)
	if len(top) != 3 {
		t.Fatalf("expected 3 quotes, got %d", len(top))
	}
	if top[0].Phrase != "a" || top[1].Phrase != "c" || top[2].Phrase != "b" {
		t.Fatalf("unexpected order: %+v", top)
	}
	if aggs[0].Phrase != "b" {
		t.Fatalf("expected input to stay untouched")
	}
	if got := len(TopQuotes(aggs, 0)); got != 4 {
		t.Fatalf("expected all quotes for n=0, got %d", got)
	}
	if TotalShown(aggs) != 12 {
		t.Fatalf("expected 12 shows, got %d", TotalShown(aggs))
	}
}
