package service

import (
	"context"
	"strings"

	"github.com/ca-io-systems/YT-Trends/internal/model"
	"github.com/ca-io-systems/YT-Trends/internal/youtube"
)

// Batch is the output of one source resolution.
type Batch struct {
	Videos       []model.VideoRecord
	TotalResults int64
}

// SourceResolver picks the chart or the search strategy for a query and runs
// the upstream calls for it.
type SourceResolver struct {
	api VideoAPI
}

func NewSourceResolver(api VideoAPI) *SourceResolver {
	return &SourceResolver{api: api}
}

// Resolve returns videos for q. A blank keyword selects the popularity chart;
// otherwise the keyword search pipeline runs. Any upstream failure aborts the
// whole resolution and nothing partial is returned.
func (r *SourceResolver) Resolve(ctx context.Context, q model.VideoQuery) (Batch, error) {
	keyword := strings.TrimSpace(q.Keyword)
	if keyword == "" {
		return r.chart(ctx, q)
	}
	return r.search(ctx, q, keyword)
}

func (r *SourceResolver) chart(ctx context.Context, q model.VideoQuery) (Batch, error) {
	videos, total, err := r.api.MostPopular(ctx, youtube.ChartRequest{
		Region:     q.Region,
		CategoryID: q.CategoryID,
		MaxResults: q.MaxResults,
	})
	if err != nil {
		return Batch{}, err
	}
	return Batch{Videos: videos, TotalResults: total}, nil
}

// search runs the two sequential stages: ids from the search endpoint, then
// statistics from the detail endpoint. The search order is authoritative.
func (r *SourceResolver) search(ctx context.Context, q model.VideoQuery, keyword string) (Batch, error) {
	ids, total, err := r.api.SearchVideoIDs(ctx, youtube.SearchRequest{
		Query:      keyword,
		Region:     q.Region,
		CategoryID: q.CategoryID,
		Duration:   q.Duration,
		MaxResults: q.MaxResults,
	})
	if err != nil {
		return Batch{}, err
	}
	if len(ids) == 0 {
		return Batch{Videos: []model.VideoRecord{}}, nil
	}

	details, err := r.api.VideosByID(ctx, ids)
	if err != nil {
		return Batch{}, err
	}
	return Batch{Videos: orderByIDs(ids, details), TotalResults: total}, nil
}

// orderByIDs arranges records in the order of ids. IDs the detail call did
// not return are dropped, as are repeats.
func orderByIDs(ids []string, records []model.VideoRecord) []model.VideoRecord {
	byID := make(map[string]model.VideoRecord, len(records))
	for _, rec := range records {
		if _, ok := byID[rec.ID]; !ok {
			byID[rec.ID] = rec
		}
	}

	ordered := make([]model.VideoRecord, 0, len(ids))
	seen := make(map[string]bool, len(ids))
	for _, id := range ids {
		rec, ok := byID[id]
		if !ok || seen[id] {
			continue
		}
		seen[id] = true
		ordered = append(ordered, rec)
	}
	return ordered
}
