package stats

import (
	"context"

	"github.com/verte-zerg/dailyquotes/internal/model"
	"github.com/verte-zerg/dailyquotes/internal/store"
)

// Report contains precomputed data for history rendering.
type Report struct {
	Quotes []model.QuoteAggregate
	Total  int
	Unique int
}

// BuildReport loads and ranks the shown quotes.
func BuildReport(ctx context.Context, st *store.Store, cfg model.HistoryConfig) (Report, error) {
	aggs, err := st.ListQuoteAggregates(ctx, cfg)
	if err != nil {
		return Report{}, err
	}
	return Report{
		Quotes: TopQuotes(aggs, cfg.Top),
		Total:  TotalShown(aggs),
		Unique: len(aggs),
	}, nil
}
