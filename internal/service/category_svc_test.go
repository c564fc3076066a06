package service

import (
	"context"
	"errors"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ca-io-systems/YT-Trends/internal/model"
)

var usCategories = []model.Category{
	{ID: "1", Title: "Film & Animation", Assignable: true},
	{ID: "10", Title: "Music", Assignable: true},
	{ID: "18", Title: "Short Movies", Assignable: false},
}

func TestCategoryList_AssignableOnly(t *testing.T) {
	api := &fakeAPI{categories: usCategories}
	svc := NewCategoryService(api, nil, zerolog.Nop())

	cats, err := svc.List(context.Background(), "US")
	require.NoError(t, err)
	require.Len(t, cats, 2)
	assert.Equal(t, "1", cats[0].ID)
	assert.Equal(t, "10", cats[1].ID)
	assert.Equal(t, []string{"US"}, api.categoryCalls)
}

func TestCategoryList_PropagatesError(t *testing.T) {
	api := &fakeAPI{categoriesErr: errors.New("boom")}
	svc := NewCategoryService(api, nil, zerolog.Nop())

	_, err := svc.List(context.Background(), "US")
	assert.Error(t, err)
}

func TestResolveNames(t *testing.T) {
	api := &fakeAPI{categories: usCategories}
	svc := NewCategoryService(api, nil, zerolog.Nop())

	rollup := []model.CategoryRollup{
		{CategoryID: "10", Videos: 5},
		{CategoryID: "18", Videos: 2},
		{CategoryID: "42", Videos: 1},
	}
	named := svc.ResolveNames(context.Background(), "US", rollup)

	require.Len(t, named, 3)
	assert.Equal(t, "Music", named[0].DisplayName)
	assert.Equal(t, "Short Movies", named[1].DisplayName, "non-assignable categories still have names")
	assert.Equal(t, "Category 42", named[2].DisplayName)
	assert.Empty(t, rollup[0].DisplayName, "input must not be modified")
}

func TestResolveNames_LookupFailureFallsBack(t *testing.T) {
	api := &fakeAPI{categoriesErr: errors.New("dial tcp: connection refused")}
	svc := NewCategoryService(api, nil, zerolog.Nop())

	rollup := []model.CategoryRollup{{CategoryID: "10", Videos: 3}, {CategoryID: "20", Videos: 1}}
	named := svc.ResolveNames(context.Background(), "US", rollup)

	require.Len(t, named, 2)
	assert.Equal(t, "Category 10", named[0].DisplayName)
	assert.Equal(t, "Category 20", named[1].DisplayName)
	assert.Equal(t, 3, named[0].Videos)
}

func TestCacheService_DisabledIsNoop(t *testing.T) {
	var nilCache *CacheService
	disabled := NewCacheService("", 0, zerolog.Nop())

	for _, c := range []*CacheService{nilCache, disabled} {
		cats, ok, err := c.GetCategories(context.Background(), "US")
		assert.NoError(t, err)
		assert.False(t, ok)
		assert.Nil(t, cats)
		assert.NoError(t, c.SetCategories(context.Background(), "US", usCategories))
		assert.Nil(t, c.Client())
		assert.NoError(t, c.Close())
	}
}
