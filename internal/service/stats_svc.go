package service

import (
	"context"

	"golang.org/x/sync/errgroup"

	"github.com/ca-io-systems/YT-Trends/internal/model"
)

// StatsService serves the analytics dashboard.
type StatsService struct {
	source     *SourceResolver
	categories *CategoryService
}

func NewStatsService(source *SourceResolver, categories *CategoryService) *StatsService {
	return &StatsService{source: source, categories: categories}
}

// Query resolves videos for q and aggregates them. The category taxonomy
// lookup runs alongside the aggregation and is merged before returning; its
// failure only affects category display names. An empty batch yields an
// empty result together with ErrNoResults.
func (s *StatsService) Query(ctx context.Context, q model.VideoQuery) (*model.AggregationResult, error) {
	batch, err := s.source.Resolve(ctx, q)
	if err != nil {
		return nil, err
	}

	var (
		result model.AggregationResult
		names  map[string]string
		g      errgroup.Group
	)
	g.Go(func() error {
		names = s.categories.LookupNames(ctx, q.Region)
		return nil
	})
	g.Go(func() error {
		result = Aggregate(batch.Videos)
		return nil
	})
	_ = g.Wait()

	result.Categories = ApplyNames(result.Categories, names)

	if result.Totals.Videos == 0 {
		return &result, ErrNoResults
	}
	return &result, nil
}
