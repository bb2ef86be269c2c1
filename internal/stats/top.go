// Package stats contains quote history calculations and reporting.
package stats

import (
	"sort"

	"github.com/verte-zerg/dailyquotes/internal/model"
)

// TopQuotes returns the n most shown quotes, most recent first on ties.
// A non-positive n keeps every quote.
func TopQuotes(aggs []model.QuoteAggregate, n int) []model.QuoteAggregate {
	items := append([]model.QuoteAggregate(nil), aggs...)
	sort.Slice(items, func(i, j int) bool {
		if items[i].Count != items[j].Count {
			return items[i].Count > items[j].Count
		}
		if !items[i].LastSeen.Equal(items[j].LastSeen) {
			return items[i].LastSeen.After(items[j].LastSeen)
		}
		return items[i].Phrase < items[j].Phrase
	})
	if n > 0 && n < len(items) {
		items = items[:n]
	}
	return items
}

// TotalShown sums the show counts.
func TotalShown(aggs []model.QuoteAggregate) int {
	total := 0
	for _, agg := range aggs {
		total += agg.Count
	}
	return total
}
