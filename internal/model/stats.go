package model

// Totals sums the batch-wide metrics.
type Totals struct {
	Videos   int    `json:"videos"`
	Views    uint64 `json:"views"`
	Likes    uint64 `json:"likes"`
	Comments uint64 `json:"comments"`
}

// TagCount is one row of the tag frequency rollup. Tags are lowercased.
type TagCount struct {
	Tag   string `json:"tag"`
	Count int    `json:"count"`
}

// ChannelRollup aggregates views and video count for one channel.
type ChannelRollup struct {
	ChannelID   string `json:"id"`
	ChannelName string `json:"name"`
	Views       uint64 `json:"views"`
	Videos      int    `json:"videos"`
}

// CategoryRollup counts videos per category. DisplayName is filled in by
// the category name resolver after aggregation.
type CategoryRollup struct {
	CategoryID  string `json:"id"`
	DisplayName string `json:"name"`
	Videos      int    `json:"count"`
}

// TopVideo is the reduced field set shown in the top-videos table.
type TopVideo struct {
	ID           string `json:"id"`
	Title        string `json:"title"`
	ChannelName  string `json:"channel"`
	ViewCount    uint64 `json:"views"`
	LikeCount    uint64 `json:"likes"`
	CommentCount uint64 `json:"comments"`
	ThumbnailURL string `json:"thumbnail"`
	PublishedAt  string `json:"publishedAt"`
	DurationISO  string `json:"duration,omitempty"`
}

// AggregationResult is the analytics digest computed over one batch.
type AggregationResult struct {
	Totals     Totals           `json:"totals"`
	Tags       []TagCount       `json:"tags"`
	Categories []CategoryRollup `json:"categories"`
	Channels   []ChannelRollup  `json:"channels"`
	TopVideos  []TopVideo       `json:"topVideos"`
	Message    string           `json:"message,omitempty"`
}

// Digest is the structured input handed to the narrative summary collaborator.
type Digest struct {
	Keyword    string           `json:"keyword"`
	Region     string           `json:"region"`
	Tags       []TagCount       `json:"tags"`
	Channels   []ChannelRollup  `json:"channels"`
	TopVideos  []TopVideo       `json:"topVideos"`
	Categories []CategoryRollup `json:"categories"`
	Totals     Totals           `json:"totals"`
}

// SummaryResponse wraps the collaborator's prose.
type SummaryResponse struct {
	Summary string `json:"summary"`
}
