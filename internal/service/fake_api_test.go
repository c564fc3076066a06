package service

import (
	"context"
	"sync"

	"github.com/ca-io-systems/YT-Trends/internal/model"
	"github.com/ca-io-systems/YT-Trends/internal/youtube"
)

// fakeAPI is an in-memory VideoAPI that records every call.
type fakeAPI struct {
	mu sync.Mutex

	chart      []model.VideoRecord
	chartTotal int64
	chartErr   error

	searchIDs   []string
	searchTotal int64
	searchErr   error

	details    []model.VideoRecord
	detailsErr error

	categories    []model.Category
	categoriesErr error

	chartCalls    []youtube.ChartRequest
	searchCalls   []youtube.SearchRequest
	detailCalls   [][]string
	categoryCalls []string
}

func (f *fakeAPI) MostPopular(_ context.Context, req youtube.ChartRequest) ([]model.VideoRecord, int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.chartCalls = append(f.chartCalls, req)
	if f.chartErr != nil {
		return nil, 0, f.chartErr
	}
	return f.chart, f.chartTotal, nil
}

func (f *fakeAPI) SearchVideoIDs(_ context.Context, req youtube.SearchRequest) ([]string, int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.searchCalls = append(f.searchCalls, req)
	if f.searchErr != nil {
		return nil, 0, f.searchErr
	}
	return f.searchIDs, f.searchTotal, nil
}

func (f *fakeAPI) VideosByID(_ context.Context, ids []string) ([]model.VideoRecord, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.detailCalls = append(f.detailCalls, ids)
	if f.detailsErr != nil {
		return nil, f.detailsErr
	}
	return f.details, nil
}

func (f *fakeAPI) Categories(_ context.Context, region string) ([]model.Category, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.categoryCalls = append(f.categoryCalls, region)
	if f.categoriesErr != nil {
		return nil, f.categoriesErr
	}
	return f.categories, nil
}

func video(id, channelID string, views uint64) model.VideoRecord {
	return model.VideoRecord{
		ID:          id,
		Title:       "Video " + id,
		ChannelID:   channelID,
		ChannelName: "Channel " + channelID,
		ViewCount:   views,
		Tags:        []string{},
	}
}
