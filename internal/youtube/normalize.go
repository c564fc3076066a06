package youtube

import (
	"google.golang.org/api/youtube/v3"

	"github.com/ca-io-systems/YT-Trends/internal/model"
)

// Normalize maps one upstream video item to a VideoRecord. It never fails:
// absent parts degrade to empty strings, zero counts and an empty tag list.
func Normalize(v *youtube.Video) model.VideoRecord {
	rec := model.VideoRecord{Tags: []string{}}
	if v == nil {
		return rec
	}
	rec.ID = v.Id

	if sn := v.Snippet; sn != nil {
		rec.Title = sn.Title
		rec.ChannelName = sn.ChannelTitle
		rec.ChannelID = sn.ChannelId
		rec.Description = sn.Description
		rec.PublishedAt = sn.PublishedAt
		rec.ThumbnailURL = bestThumbnail(sn.Thumbnails)
		rec.CategoryID = sn.CategoryId
		if len(sn.Tags) > 0 {
			rec.Tags = append(rec.Tags, sn.Tags...)
		}
	}

	if st := v.Statistics; st != nil {
		rec.ViewCount = st.ViewCount
		rec.LikeCount = st.LikeCount
		rec.CommentCount = st.CommentCount
	}

	if cd := v.ContentDetails; cd != nil {
		rec.DurationISO = cd.Duration
	}

	return rec
}

// bestThumbnail picks high, then medium, then default resolution.
func bestThumbnail(td *youtube.ThumbnailDetails) string {
	if td == nil {
		return ""
	}
	for _, t := range []*youtube.Thumbnail{td.High, td.Medium, td.Default} {
		if t != nil && t.Url != "" {
			return t.Url
		}
	}
	return ""
}
