package keywords

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/amal-alexander/autocomplete-keyword-engine/internal/metrics"
	"github.com/amal-alexander/autocomplete-keyword-engine/internal/modifier"
)

// Fetcher returns autosuggest completions for one query. Implementations are
// best-effort: a failed query yields an empty slice, never an error.
type Fetcher interface {
	Suggest(ctx context.Context, query, market string) []string
}

// Service runs the seed × modifier fetch loop.
type Service struct {
	fetcher Fetcher
	table   modifier.Table
}

// NewService creates a keyword service over the given fetcher and table.
func NewService(fetcher Fetcher, table modifier.Table) *Service {
	return &Service{fetcher: fetcher, table: table}
}

// Aggregate crosses every seed with every modifier group and collects the
// completions into a fresh ResultSet. Seeds drive the outer loop, groups and
// their tokens the inner ones, so rows land in a stable order. Queries run
// one at a time; a query that returns nothing simply contributes no rows.
// No deduplication: the same suggestion may appear under several groups.
func (s *Service) Aggregate(ctx context.Context, seeds []string, market string) *ResultSet {
	rs := &ResultSet{
		ID:      uuid.New(),
		Market:  market,
		Seeds:   seeds,
		Created: time.Now(),
	}

	for _, seed := range seeds {
		for _, spec := range s.table {
			for _, query := range spec.Queries(seed) {
				start := time.Now()
				values := s.fetcher.Suggest(ctx, query, market)
				metrics.RecordQuery(string(spec.Group), len(values) > 0, time.Since(start))
				for _, v := range values {
					rs.Rows = append(rs.Rows, Row{Seed: seed, Group: spec.Group, Suggestion: v})
				}
			}
		}
	}

	metrics.RecordRun()
	return rs
}
