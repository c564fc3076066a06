package youtube

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"google.golang.org/api/youtube/v3"
)

func TestNormalize_MissingStatistics(t *testing.T) {
	rec := Normalize(&youtube.Video{
		Id:      "abc",
		Snippet: &youtube.VideoSnippet{Title: "No stats"},
	})

	assert.Equal(t, "abc", rec.ID)
	assert.Zero(t, rec.ViewCount)
	assert.Zero(t, rec.LikeCount)
	assert.Zero(t, rec.CommentCount)
}

func TestNormalize_NilParts(t *testing.T) {
	rec := Normalize(&youtube.Video{Id: "bare"})

	assert.Equal(t, "bare", rec.ID)
	assert.Empty(t, rec.Title)
	assert.Empty(t, rec.ThumbnailURL)
	assert.Empty(t, rec.DurationISO)
	assert.NotNil(t, rec.Tags)
	assert.Empty(t, rec.Tags)
}

func TestNormalize_Nil(t *testing.T) {
	rec := Normalize(nil)
	assert.Empty(t, rec.ID)
	assert.NotNil(t, rec.Tags)
}

func TestNormalize_ThumbnailFallback(t *testing.T) {
	tests := []struct {
		name  string
		thumb *youtube.ThumbnailDetails
		want  string
	}{
		{
			name: "all resolutions picks high",
			thumb: &youtube.ThumbnailDetails{
				High:    &youtube.Thumbnail{Url: "https://i.ytimg.com/hq.jpg"},
				Medium:  &youtube.Thumbnail{Url: "https://i.ytimg.com/mq.jpg"},
				Default: &youtube.Thumbnail{Url: "https://i.ytimg.com/default.jpg"},
			},
			want: "https://i.ytimg.com/hq.jpg",
		},
		{
			name: "medium and default picks medium",
			thumb: &youtube.ThumbnailDetails{
				Medium:  &youtube.Thumbnail{Url: "https://i.ytimg.com/mq.jpg"},
				Default: &youtube.Thumbnail{Url: "https://i.ytimg.com/default.jpg"},
			},
			want: "https://i.ytimg.com/mq.jpg",
		},
		{
			name: "default only",
			thumb: &youtube.ThumbnailDetails{
				Default: &youtube.Thumbnail{Url: "https://i.ytimg.com/default.jpg"},
			},
			want: "https://i.ytimg.com/default.jpg",
		},
		{
			name:  "none",
			thumb: &youtube.ThumbnailDetails{},
			want:  "",
		},
		{
			name:  "nil details",
			thumb: nil,
			want:  "",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := Normalize(&youtube.Video{Snippet: &youtube.VideoSnippet{Thumbnails: tt.thumb}})
			assert.Equal(t, tt.want, rec.ThumbnailURL)
		})
	}
}

func TestNormalize_FullItem(t *testing.T) {
	rec := Normalize(&youtube.Video{
		Id: "dQw4w9WgXcQ",
		Snippet: &youtube.VideoSnippet{
			Title:        "Never Gonna Give You Up",
			ChannelTitle: "Rick Astley",
			ChannelId:    "UCuAXFkgsw1L7xaCfnd5JJOw",
			Description:  "Official video",
			PublishedAt:  "2009-10-25T06:57:33Z",
			Tags:         []string{"rick", "Rick", "80s"},
			CategoryId:   "10",
		},
		Statistics:     &youtube.VideoStatistics{ViewCount: 1500000000, LikeCount: 17000000, CommentCount: 2300000},
		ContentDetails: &youtube.VideoContentDetails{Duration: "PT3M33S"},
	})

	assert.Equal(t, "Rick Astley", rec.ChannelName)
	assert.Equal(t, "UCuAXFkgsw1L7xaCfnd5JJOw", rec.ChannelID)
	assert.Equal(t, uint64(1500000000), rec.ViewCount)
	assert.Equal(t, uint64(17000000), rec.LikeCount)
	assert.Equal(t, uint64(2300000), rec.CommentCount)
	assert.Equal(t, "PT3M33S", rec.DurationISO)
	assert.Equal(t, "10", rec.CategoryID)
	assert.Equal(t, []string{"rick", "Rick", "80s"}, rec.Tags)
}

func TestNormalize_DoesNotAliasUpstreamTags(t *testing.T) {
	src := &youtube.Video{Snippet: &youtube.VideoSnippet{Tags: []string{"a", "b"}}}
	rec := Normalize(src)
	src.Snippet.Tags[0] = "changed"
	assert.Equal(t, "a", rec.Tags[0])
}
