package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/rs/zerolog"

	"github.com/ca-io-systems/YT-Trends/internal/metrics"
	"github.com/ca-io-systems/YT-Trends/internal/model"
)

const summarySystemPrompt = `You are a YouTube trends analyst. Given aggregated statistics for a batch of popular videos, write a short markdown report: what the batch is about, which channels and topics dominate, and one or two notable observations. Use only the numbers provided.`

// Completer is the text-generation collaborator.
type Completer interface {
	Complete(ctx context.Context, system, prompt string) (string, error)
}

// SummaryService forwards a stats digest to the text-generation collaborator
// and passes its prose back unchanged.
type SummaryService struct {
	llm Completer
	log zerolog.Logger
}

// NewSummaryService creates a SummaryService. llm may be nil, in which case
// every call returns ErrSummaryUnavailable.
func NewSummaryService(llm Completer, log zerolog.Logger) *SummaryService {
	return &SummaryService{llm: llm, log: log}
}

// Enabled reports whether a collaborator is configured.
func (s *SummaryService) Enabled() bool {
	return s.llm != nil
}

// Summarize returns the collaborator's prose for d.
func (s *SummaryService) Summarize(ctx context.Context, d model.Digest) (string, error) {
	if s.llm == nil {
		return "", ErrSummaryUnavailable
	}

	text, err := s.llm.Complete(ctx, summarySystemPrompt, BuildDigestPrompt(d))
	if err != nil {
		metrics.SummaryCalls.WithLabelValues("error").Inc()
		s.log.Warn().Err(err).Str("region", d.Region).Msg("summary: collaborator failed")
		return "", fmt.Errorf("summary: %w", err)
	}
	metrics.SummaryCalls.WithLabelValues("ok").Inc()
	return stripFences(text), nil
}

// DigestFromResult builds the collaborator digest from a stats result.
func DigestFromResult(keyword, region string, r *model.AggregationResult) model.Digest {
	return model.Digest{
		Keyword:    keyword,
		Region:     region,
		Tags:       r.Tags,
		Channels:   r.Channels,
		TopVideos:  r.TopVideos,
		Categories: r.Categories,
		Totals:     r.Totals,
	}
}

// BuildDigestPrompt renders d as plain text for the collaborator.
func BuildDigestPrompt(d model.Digest) string {
	var sb strings.Builder

	scope := "trending chart"
	if d.Keyword != "" {
		scope = fmt.Sprintf("search results for %q", d.Keyword)
	}
	fmt.Fprintf(&sb, "Region: %s\nScope: %s\n\n", d.Region, scope)

	fmt.Fprintf(&sb, "Totals: %d videos, %d views, %d likes, %d comments\n",
		d.Totals.Videos, d.Totals.Views, d.Totals.Likes, d.Totals.Comments)

	if len(d.Tags) > 0 {
		sb.WriteString("\nTop tags:\n")
		for _, t := range d.Tags {
			fmt.Fprintf(&sb, "- %s (%d)\n", t.Tag, t.Count)
		}
	}

	if len(d.Categories) > 0 {
		sb.WriteString("\nCategories:\n")
		for _, c := range d.Categories {
			fmt.Fprintf(&sb, "- %s: %d videos\n", c.DisplayName, c.Videos)
		}
	}

	if len(d.Channels) > 0 {
		sb.WriteString("\nTop channels:\n")
		for _, c := range d.Channels {
			fmt.Fprintf(&sb, "- %s: %d views across %d videos\n", c.ChannelName, c.Views, c.Videos)
		}
	}

	if len(d.TopVideos) > 0 {
		sb.WriteString("\nTop videos:\n")
		for i, v := range d.TopVideos {
			fmt.Fprintf(&sb, "%d. %s (%s): %d views, %d likes, %d comments\n",
				i+1, v.Title, v.ChannelName, v.ViewCount, v.LikeCount, v.CommentCount)
		}
	}

	return sb.String()
}

// stripFences removes a wrapping markdown code fence, if any.
func stripFences(s string) string {
	s = strings.TrimSpace(s)
	s = strings.TrimPrefix(s, "```markdown")
	s = strings.TrimPrefix(s, "```")
	s = strings.TrimSuffix(s, "```")
	return strings.TrimSpace(s)
}
