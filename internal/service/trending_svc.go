package service

import (
	"context"

	"github.com/ca-io-systems/YT-Trends/internal/model"
)

// TrendingService serves the video grid: resolved videos, no aggregation.
type TrendingService struct {
	source *SourceResolver
}

func NewTrendingService(source *SourceResolver) *TrendingService {
	return &TrendingService{source: source}
}

// Query resolves videos for q, capped at q.MaxResults. When nothing matches it
// returns an empty page together with ErrNoResults.
func (s *TrendingService) Query(ctx context.Context, q model.VideoQuery) (*model.VideoPage, error) {
	batch, err := s.source.Resolve(ctx, q)
	if err != nil {
		return nil, err
	}

	videos := batch.Videos
	if videos == nil {
		videos = []model.VideoRecord{}
	}
	if q.MaxResults > 0 && int64(len(videos)) > q.MaxResults {
		videos = videos[:q.MaxResults]
	}

	page := &model.VideoPage{Videos: videos, TotalResults: batch.TotalResults}
	if len(videos) == 0 {
		return page, ErrNoResults
	}
	return page, nil
}
