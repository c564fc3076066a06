package service

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/ca-io-systems/YT-Trends/internal/metrics"
	"github.com/ca-io-systems/YT-Trends/internal/model"
)

// CategoryService serves the category taxonomy: the assignable list for the
// filter dropdown, and best-effort display names for stats rollups.
type CategoryService struct {
	api   VideoAPI
	cache *CacheService
	log   zerolog.Logger
}

// NewCategoryService creates a CategoryService. cache may be nil.
func NewCategoryService(api VideoAPI, cache *CacheService, log zerolog.Logger) *CategoryService {
	return &CategoryService{api: api, cache: cache, log: log}
}

// List returns the assignable categories for region. Upstream failures are
// returned to the caller.
func (s *CategoryService) List(ctx context.Context, region string) ([]model.Category, error) {
	all, err := s.taxonomy(ctx, region)
	if err != nil {
		return nil, err
	}
	cats := make([]model.Category, 0, len(all))
	for _, c := range all {
		if c.Assignable {
			cats = append(cats, c)
		}
	}
	return cats, nil
}

// LookupNames returns id → title for region. On any failure it logs and
// returns nil; callers fall back to placeholder names.
func (s *CategoryService) LookupNames(ctx context.Context, region string) map[string]string {
	all, err := s.taxonomy(ctx, region)
	if err != nil {
		s.log.Warn().Err(err).Str("region", region).Msg("category names unavailable, using placeholders")
		return nil
	}
	names := make(map[string]string, len(all))
	for _, c := range all {
		names[c.ID] = c.Title
	}
	return names
}

// ResolveNames attaches display names to rollup. It never fails.
func (s *CategoryService) ResolveNames(ctx context.Context, region string, rollup []model.CategoryRollup) []model.CategoryRollup {
	return ApplyNames(rollup, s.LookupNames(ctx, region))
}

// ApplyNames returns a copy of rollup with DisplayName set from names, or
// "Category <id>" when the id is unknown.
func ApplyNames(rollup []model.CategoryRollup, names map[string]string) []model.CategoryRollup {
	out := make([]model.CategoryRollup, len(rollup))
	for i, r := range rollup {
		if name, ok := names[r.CategoryID]; ok && name != "" {
			r.DisplayName = name
		} else {
			r.DisplayName = FallbackCategoryName(r.CategoryID)
			metrics.CategoryFallbacks.Inc()
		}
		out[i] = r
	}
	return out
}

// FallbackCategoryName is the synthetic name used when no title is known.
func FallbackCategoryName(id string) string {
	return "Category " + id
}

// taxonomy fetches the full category list, going through the cache when enabled.
func (s *CategoryService) taxonomy(ctx context.Context, region string) ([]model.Category, error) {
	if cats, ok, err := s.cache.GetCategories(ctx, region); err != nil {
		s.log.Warn().Err(err).Str("region", region).Msg("cache: categories get error")
	} else if ok {
		return cats, nil
	}

	cats, err := s.api.Categories(ctx, region)
	if err != nil {
		return nil, err
	}

	if err := s.cache.SetCategories(ctx, region, cats); err != nil {
		s.log.Warn().Err(err).Str("region", region).Msg("cache: categories set error")
	}
	return cats, nil
}
