package service

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ca-io-systems/YT-Trends/internal/config"
	"github.com/ca-io-systems/YT-Trends/internal/model"
	"github.com/ca-io-systems/YT-Trends/internal/youtube"
)

func TestResolve_ChartBranch(t *testing.T) {
	api := &fakeAPI{
		chart:      []model.VideoRecord{video("a", "c1", 10), video("b", "c2", 20)},
		chartTotal: 200,
	}
	r := NewSourceResolver(api)

	batch, err := r.Resolve(context.Background(), model.VideoQuery{Region: "US", CategoryID: "10", MaxResults: 2})
	require.NoError(t, err)

	require.Len(t, api.chartCalls, 1)
	assert.Equal(t, youtube.ChartRequest{Region: "US", CategoryID: "10", MaxResults: 2}, api.chartCalls[0])
	assert.Empty(t, api.searchCalls)
	assert.Empty(t, api.detailCalls)

	// chart order is kept as-is, not re-sorted by views
	assert.Equal(t, "a", batch.Videos[0].ID)
	assert.Equal(t, int64(200), batch.TotalResults)
}

func TestResolve_BlankKeywordUsesChart(t *testing.T) {
	api := &fakeAPI{}
	r := NewSourceResolver(api)

	_, err := r.Resolve(context.Background(), model.VideoQuery{Region: "US", Keyword: "   "})
	require.NoError(t, err)
	assert.Len(t, api.chartCalls, 1)
	assert.Empty(t, api.searchCalls)
}

func TestResolve_SearchEmptySkipsDetails(t *testing.T) {
	api := &fakeAPI{searchIDs: []string{}, searchTotal: 0}
	r := NewSourceResolver(api)

	batch, err := r.Resolve(context.Background(), model.VideoQuery{Region: "US", CategoryID: "0", Keyword: "nothing-matches"})
	require.NoError(t, err)

	assert.Len(t, api.searchCalls, 1)
	assert.Empty(t, api.detailCalls, "detail lookup must not run for zero ids")
	assert.NotNil(t, batch.Videos)
	assert.Empty(t, batch.Videos)
	assert.Zero(t, batch.TotalResults)
}

func TestResolve_SearchTrimsKeywordAndForwardsFilters(t *testing.T) {
	api := &fakeAPI{}
	r := NewSourceResolver(api)

	_, err := r.Resolve(context.Background(), model.VideoQuery{
		Region: "DE", CategoryID: "20", MaxResults: 50, Keyword: "  minecraft ", Duration: "short",
	})
	require.NoError(t, err)

	require.Len(t, api.searchCalls, 1)
	assert.Equal(t, youtube.SearchRequest{
		Query: "minecraft", Region: "DE", CategoryID: "20", Duration: "short", MaxResults: 50,
	}, api.searchCalls[0])
}

func TestResolve_SearchPreservesSearchOrder(t *testing.T) {
	api := &fakeAPI{
		searchIDs:   []string{"x", "y", "z"},
		searchTotal: 1000,
		// detail endpoint answers in a different order, and y has the most views
		details: []model.VideoRecord{video("z", "c", 5), video("y", "c", 500), video("x", "c", 50)},
	}
	r := NewSourceResolver(api)

	batch, err := r.Resolve(context.Background(), model.VideoQuery{Region: "US", Keyword: "q"})
	require.NoError(t, err)

	require.Len(t, api.detailCalls, 1)
	assert.Equal(t, []string{"x", "y", "z"}, api.detailCalls[0])

	ids := make([]string, 0, len(batch.Videos))
	for _, v := range batch.Videos {
		ids = append(ids, v.ID)
	}
	assert.Equal(t, []string{"x", "y", "z"}, ids)
	assert.Equal(t, int64(1000), batch.TotalResults)
}

func TestResolve_SearchDropsMissingDetails(t *testing.T) {
	api := &fakeAPI{
		searchIDs: []string{"x", "gone", "z", "x"},
		details:   []model.VideoRecord{video("z", "c", 5), video("x", "c", 50)},
	}
	r := NewSourceResolver(api)

	batch, err := r.Resolve(context.Background(), model.VideoQuery{Region: "US", Keyword: "q"})
	require.NoError(t, err)
	require.Len(t, batch.Videos, 2)
	assert.Equal(t, "x", batch.Videos[0].ID)
	assert.Equal(t, "z", batch.Videos[1].ID)
}

func TestResolve_SearchErrorAborts(t *testing.T) {
	upstream := &youtube.APIError{Endpoint: youtube.EndpointSearch, Status: http.StatusBadRequest, Message: "Invalid regionCode"}
	api := &fakeAPI{searchErr: upstream}
	r := NewSourceResolver(api)

	_, err := r.Resolve(context.Background(), model.VideoQuery{Region: "ZZ", Keyword: "q"})

	var apiErr *youtube.APIError
	require.True(t, errors.As(err, &apiErr))
	assert.Equal(t, http.StatusBadRequest, apiErr.Status)
	assert.Empty(t, api.detailCalls)
}

func TestResolve_DetailErrorDiscardsPartial(t *testing.T) {
	api := &fakeAPI{
		searchIDs:  []string{"x"},
		details:    []model.VideoRecord{video("x", "c", 1)},
		detailsErr: &youtube.APIError{Endpoint: youtube.EndpointVideos, Status: http.StatusForbidden, Message: "quotaExceeded"},
	}
	r := NewSourceResolver(api)

	batch, err := r.Resolve(context.Background(), model.VideoQuery{Region: "US", Keyword: "q"})
	require.Error(t, err)
	assert.Nil(t, batch.Videos)
}

func TestResolve_UnconfiguredFailsFast(t *testing.T) {
	r := NewSourceResolver(Unconfigured(config.ErrMissingAPIKey))

	_, err := r.Resolve(context.Background(), model.VideoQuery{Region: "US"})
	assert.ErrorIs(t, err, config.ErrMissingAPIKey)

	_, err = r.Resolve(context.Background(), model.VideoQuery{Region: "US", Keyword: "q"})
	assert.ErrorIs(t, err, config.ErrMissingAPIKey)
}
