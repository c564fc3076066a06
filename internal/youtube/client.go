package youtube

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"golang.org/x/time/rate"
	"google.golang.org/api/option"
	"google.golang.org/api/youtube/v3"

	"github.com/ca-io-systems/YT-Trends/internal/metrics"
	"github.com/ca-io-systems/YT-Trends/internal/model"
)

// Upstream endpoint names, used for errors and metric labels.
const (
	EndpointVideos     = "videos"
	EndpointSearch     = "search"
	EndpointCategories = "videoCategories"
)

const (
	chartMostPopular = "mostPopular"
	orderViewCount   = "viewCount"

	// AllCategories means "no category filter"; the parameter must be omitted.
	AllCategories = "0"
)

var videoParts = []string{"snippet", "statistics", "contentDetails"}

// Options configures a Client.
type Options struct {
	APIKey   string
	Endpoint string        // overrides the library's default base URL
	Timeout  time.Duration // per upstream call; 0 = no extra deadline
	RPS      float64       // 0 disables throttling

	// HTTPClient replaces the library transport. The API key is not attached
	// in that case, so this is meant for tests against a local server.
	HTTPClient *http.Client
}

// ChartRequest selects the popularity chart for a region.
type ChartRequest struct {
	Region     string
	CategoryID string
	MaxResults int64
}

// SearchRequest selects videos by keyword ordered by view count.
type SearchRequest struct {
	Query      string
	Region     string
	CategoryID string
	Duration   string // any, short, medium, long
	MaxResults int64
}

// Client is a thin typed wrapper over the YouTube Data API v3.
type Client struct {
	svc     *youtube.Service
	timeout time.Duration
	limiter *rate.Limiter
}

// NewClient builds a Client. It performs no network I/O.
func NewClient(ctx context.Context, o Options) (*Client, error) {
	var opts []option.ClientOption
	if o.HTTPClient != nil {
		opts = append(opts, option.WithHTTPClient(o.HTTPClient))
	} else {
		if o.APIKey == "" {
			return nil, fmt.Errorf("api key required")
		}
		opts = append(opts, option.WithAPIKey(o.APIKey))
	}
	if o.Endpoint != "" {
		opts = append(opts, option.WithEndpoint(o.Endpoint))
	}

	svc, err := youtube.NewService(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("create youtube service: %w", err)
	}

	c := &Client{svc: svc, timeout: o.Timeout}
	if o.RPS > 0 {
		burst := int(o.RPS)
		if burst < 1 {
			burst = 1
		}
		c.limiter = rate.NewLimiter(rate.Limit(o.RPS), burst)
	}
	return c, nil
}

// MostPopular fetches the popularity chart, in upstream chart order, along
// with upstream's total result count.
func (c *Client) MostPopular(ctx context.Context, req ChartRequest) ([]model.VideoRecord, int64, error) {
	ctx, done, err := c.begin(ctx)
	if err != nil {
		return nil, 0, err
	}
	defer done()

	call := c.svc.Videos.List(videoParts).
		Chart(chartMostPopular).
		RegionCode(req.Region).
		MaxResults(req.MaxResults).
		Context(ctx)
	if hasCategoryFilter(req.CategoryID) {
		call = call.VideoCategoryId(req.CategoryID)
	}

	start := time.Now()
	resp, err := call.Do()
	observe(EndpointVideos, start, err)
	if err != nil {
		return nil, 0, wrapError(EndpointVideos, err)
	}

	videos := make([]model.VideoRecord, 0, len(resp.Items))
	for _, item := range resp.Items {
		videos = append(videos, Normalize(item))
	}
	return videos, totalResults(resp.PageInfo), nil
}

// SearchVideoIDs runs a keyword search and returns the matching video IDs in
// upstream order. The search endpoint carries no statistics.
func (c *Client) SearchVideoIDs(ctx context.Context, req SearchRequest) ([]string, int64, error) {
	ctx, done, err := c.begin(ctx)
	if err != nil {
		return nil, 0, err
	}
	defer done()

	call := c.svc.Search.List([]string{"id"}).
		Q(req.Query).
		Type("video").
		RegionCode(req.Region).
		Order(orderViewCount).
		MaxResults(req.MaxResults).
		Context(ctx)
	if hasCategoryFilter(req.CategoryID) {
		call = call.VideoCategoryId(req.CategoryID)
	}
	if req.Duration != "" && req.Duration != "any" {
		call = call.VideoDuration(req.Duration)
	}

	start := time.Now()
	resp, err := call.Do()
	observe(EndpointSearch, start, err)
	if err != nil {
		return nil, 0, wrapError(EndpointSearch, err)
	}

	ids := make([]string, 0, len(resp.Items))
	for _, item := range resp.Items {
		if item == nil || item.Id == nil || item.Id.VideoId == "" {
			continue
		}
		ids = append(ids, item.Id.VideoId)
	}
	return ids, totalResults(resp.PageInfo), nil
}

// VideosByID fetches details for a batch of IDs. Items come back in whatever
// order upstream chooses; callers that need a specific order must reapply it.
func (c *Client) VideosByID(ctx context.Context, ids []string) ([]model.VideoRecord, error) {
	if len(ids) == 0 {
		return []model.VideoRecord{}, nil
	}
	ctx, done, err := c.begin(ctx)
	if err != nil {
		return nil, err
	}
	defer done()

	start := time.Now()
	resp, err := c.svc.Videos.List(videoParts).
		Id(ids...).
		MaxResults(int64(len(ids))).
		Context(ctx).
		Do()
	observe(EndpointVideos, start, err)
	if err != nil {
		return nil, wrapError(EndpointVideos, err)
	}

	videos := make([]model.VideoRecord, 0, len(resp.Items))
	for _, item := range resp.Items {
		videos = append(videos, Normalize(item))
	}
	return videos, nil
}

// Categories returns the full category taxonomy for a region, assignable or not.
func (c *Client) Categories(ctx context.Context, region string) ([]model.Category, error) {
	ctx, done, err := c.begin(ctx)
	if err != nil {
		return nil, err
	}
	defer done()

	start := time.Now()
	resp, err := c.svc.VideoCategories.List([]string{"snippet"}).
		RegionCode(region).
		Context(ctx).
		Do()
	observe(EndpointCategories, start, err)
	if err != nil {
		return nil, wrapError(EndpointCategories, err)
	}

	cats := make([]model.Category, 0, len(resp.Items))
	for _, item := range resp.Items {
		if item == nil || item.Snippet == nil {
			continue
		}
		cats = append(cats, model.Category{
			ID:         item.Id,
			Title:      item.Snippet.Title,
			Assignable: item.Snippet.Assignable,
		})
	}
	return cats, nil
}

// begin applies throttling and the per-call deadline.
func (c *Client) begin(ctx context.Context) (context.Context, context.CancelFunc, error) {
	if c.limiter != nil {
		if err := c.limiter.Wait(ctx); err != nil {
			return nil, nil, fmt.Errorf("youtube: throttle: %w", err)
		}
	}
	if c.timeout > 0 {
		ctx, cancel := context.WithTimeout(ctx, c.timeout)
		return ctx, cancel, nil
	}
	return ctx, func() {}, nil
}

func hasCategoryFilter(categoryID string) bool {
	return categoryID != "" && categoryID != AllCategories
}

func totalResults(pi *youtube.PageInfo) int64 {
	if pi == nil {
		return 0
	}
	return pi.TotalResults
}

func observe(endpoint string, start time.Time, err error) {
	outcome := "ok"
	if err != nil {
		outcome = "error"
	}
	metrics.UpstreamCalls.WithLabelValues(endpoint, outcome).Inc()
	metrics.UpstreamDuration.WithLabelValues(endpoint).Observe(time.Since(start).Seconds())
}
