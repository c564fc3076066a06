package service

import (
	"context"
	"errors"

	"github.com/ca-io-systems/YT-Trends/internal/model"
	"github.com/ca-io-systems/YT-Trends/internal/youtube"
)

// ErrNoResults signals that the query matched zero videos. It is not a fault;
// the page or digest returned alongside it is valid and empty.
var ErrNoResults = errors.New("no videos found for the selected filters")

// ErrSummaryUnavailable is returned when no text-generation collaborator is configured.
var ErrSummaryUnavailable = errors.New("narrative summary is not configured")

// VideoAPI is the upstream surface the services depend on. *youtube.Client
// implements it.
type VideoAPI interface {
	MostPopular(ctx context.Context, req youtube.ChartRequest) ([]model.VideoRecord, int64, error)
	SearchVideoIDs(ctx context.Context, req youtube.SearchRequest) ([]string, int64, error)
	VideosByID(ctx context.Context, ids []string) ([]model.VideoRecord, error)
	Categories(ctx context.Context, region string) ([]model.Category, error)
}

// Unconfigured returns a VideoAPI that fails every call with err without
// touching the network. main injects it when the credential check fails.
func Unconfigured(err error) VideoAPI {
	return unconfiguredAPI{err: err}
}

type unconfiguredAPI struct{ err error }

func (u unconfiguredAPI) MostPopular(context.Context, youtube.ChartRequest) ([]model.VideoRecord, int64, error) {
	return nil, 0, u.err
}

func (u unconfiguredAPI) SearchVideoIDs(context.Context, youtube.SearchRequest) ([]string, int64, error) {
	return nil, 0, u.err
}

func (u unconfiguredAPI) VideosByID(context.Context, []string) ([]model.VideoRecord, error) {
	return nil, u.err
}

func (u unconfiguredAPI) Categories(context.Context, string) ([]model.Category, error) {
	return nil, u.err
}
