package model

// VideoRecord is the normalized form of one upstream video item.
// Every downstream consumer works on this shape only.
type VideoRecord struct {
	ID           string   `json:"id"`
	Title        string   `json:"title"`
	ChannelName  string   `json:"channel"`
	ChannelID    string   `json:"channelId"`
	Description  string   `json:"description"`
	PublishedAt  string   `json:"publishedAt"`
	ThumbnailURL string   `json:"thumbnail"`
	ViewCount    uint64   `json:"views"`
	LikeCount    uint64   `json:"likes"`
	CommentCount uint64   `json:"comments"`
	DurationISO  string   `json:"duration,omitempty"`
	Tags         []string `json:"tags"`
	CategoryID   string   `json:"categoryId,omitempty"`
}

// VideoPage is the trending query response.
type VideoPage struct {
	Videos       []VideoRecord `json:"videos"`
	TotalResults int64         `json:"totalResults"`
	Message      string        `json:"message,omitempty"`
}

// VideoQuery holds the inputs shared by the trending and stats queries.
type VideoQuery struct {
	Region     string
	CategoryID string
	MaxResults int64
	Keyword    string
	Duration   string
}
