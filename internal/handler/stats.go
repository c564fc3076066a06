package handler

import (
	"errors"

	"github.com/gofiber/fiber/v3"

	"github.com/ca-io-systems/YT-Trends/internal/middleware"
	"github.com/ca-io-systems/YT-Trends/internal/service"
	"github.com/ca-io-systems/YT-Trends/internal/youtube"
)

type StatsHandler struct {
	svc *service.StatsService
}

func NewStatsHandler(svc *service.StatsService) *StatsHandler {
	return &StatsHandler{svc: svc}
}

// GetStats handles GET /api/stats?region=US&maxResults=50&duration=any&keyword=
// The dashboard always analyses across all categories.
func (h *StatsHandler) GetStats(c fiber.Ctx) error {
	q, ok, err := parseVideoQuery(c, middleware.DefaultStatsMaxResults)
	if !ok {
		return err
	}
	q.CategoryID = youtube.AllCategories

	res, err := h.svc.Query(c.Context(), q)
	if errors.Is(err, service.ErrNoResults) {
		res.Message = noResultsMessage(q.Keyword)
		return c.JSON(res)
	}
	if err != nil {
		return writeQueryError(c, err, "Failed to fetch statistics")
	}

	return c.JSON(res)
}
