package service

import (
	"sort"
	"strings"

	"github.com/ca-io-systems/YT-Trends/internal/model"
)

// Rollup sizes.
const (
	TopTags       = 20
	TopChannels   = 10
	TopCategories = 10
	TopVideos     = 10
)

// Aggregate computes totals, rollups and the top-video ranking over a batch.
// Category display names are left empty. An empty batch yields zero totals
// and empty rollups.
func Aggregate(videos []model.VideoRecord) model.AggregationResult {
	return model.AggregationResult{
		Totals:     totals(videos),
		Tags:       tagFrequency(videos),
		Channels:   channelRollup(videos),
		Categories: categoryRollup(videos),
		TopVideos:  topVideos(videos),
	}
}

func totals(videos []model.VideoRecord) model.Totals {
	t := model.Totals{Videos: len(videos)}
	for _, v := range videos {
		t.Views += v.ViewCount
		t.Likes += v.LikeCount
		t.Comments += v.CommentCount
	}
	return t
}

// tagFrequency counts lowercased tags. Ties keep first-encountered order.
func tagFrequency(videos []model.VideoRecord) []model.TagCount {
	index := make(map[string]int)
	counts := []model.TagCount{}
	for _, v := range videos {
		for _, raw := range v.Tags {
			tag := strings.ToLower(strings.TrimSpace(raw))
			if tag == "" {
				continue
			}
			if i, ok := index[tag]; ok {
				counts[i].Count++
				continue
			}
			index[tag] = len(counts)
			counts = append(counts, model.TagCount{Tag: tag, Count: 1})
		}
	}

	sort.SliceStable(counts, func(i, j int) bool { return counts[i].Count > counts[j].Count })
	return truncate(counts, TopTags)
}

// channelRollup groups by channel ID. The first video seen for a channel
// supplies its display name.
func channelRollup(videos []model.VideoRecord) []model.ChannelRollup {
	index := make(map[string]int)
	channels := []model.ChannelRollup{}
	for _, v := range videos {
		i, ok := index[v.ChannelID]
		if !ok {
			i = len(channels)
			index[v.ChannelID] = i
			channels = append(channels, model.ChannelRollup{ChannelID: v.ChannelID, ChannelName: v.ChannelName})
		}
		channels[i].Views += v.ViewCount
		channels[i].Videos++
	}

	sort.SliceStable(channels, func(i, j int) bool { return channels[i].Views > channels[j].Views })
	return truncate(channels, TopChannels)
}

// categoryRollup counts videos per category ID. Videos without a category
// are not counted.
func categoryRollup(videos []model.VideoRecord) []model.CategoryRollup {
	index := make(map[string]int)
	cats := []model.CategoryRollup{}
	for _, v := range videos {
		if v.CategoryID == "" {
			continue
		}
		i, ok := index[v.CategoryID]
		if !ok {
			i = len(cats)
			index[v.CategoryID] = i
			cats = append(cats, model.CategoryRollup{CategoryID: v.CategoryID})
		}
		cats[i].Videos++
	}

	sort.SliceStable(cats, func(i, j int) bool { return cats[i].Videos > cats[j].Videos })
	return truncate(cats, TopCategories)
}

func topVideos(videos []model.VideoRecord) []model.TopVideo {
	sorted := truncate(SortByViews(videos), TopVideos)
	top := make([]model.TopVideo, 0, len(sorted))
	for _, v := range sorted {
		top = append(top, model.TopVideo{
			ID:           v.ID,
			Title:        v.Title,
			ChannelName:  v.ChannelName,
			ViewCount:    v.ViewCount,
			LikeCount:    v.LikeCount,
			CommentCount: v.CommentCount,
			ThumbnailURL: v.ThumbnailURL,
			PublishedAt:  v.PublishedAt,
			DurationISO:  v.DurationISO,
		})
	}
	return top
}

// SortByViews returns a copy of videos ordered by view count, descending.
// Equal counts keep their original relative order.
func SortByViews(videos []model.VideoRecord) []model.VideoRecord {
	sorted := make([]model.VideoRecord, len(videos))
	copy(sorted, videos)
	sort.SliceStable(sorted, func(i, j int) bool { return sorted[i].ViewCount > sorted[j].ViewCount })
	return sorted
}

func truncate[T any](s []T, n int) []T {
	if len(s) > n {
		return s[:n]
	}
	return s
}
