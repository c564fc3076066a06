package handler

import (
	"errors"

	"github.com/gofiber/fiber/v3"

	"github.com/ca-io-systems/YT-Trends/internal/middleware"
	"github.com/ca-io-systems/YT-Trends/internal/service"
)

type TrendingHandler struct {
	svc *service.TrendingService
}

func NewTrendingHandler(svc *service.TrendingService) *TrendingHandler {
	return &TrendingHandler{svc: svc}
}

// GetTrending handles GET /api/trending?region=US&category=0&maxResults=20&keyword=
func (h *TrendingHandler) GetTrending(c fiber.Ctx) error {
	q, ok, err := parseVideoQuery(c, middleware.DefaultMaxResults)
	if !ok {
		return err
	}

	page, err := h.svc.Query(c.Context(), q)
	if errors.Is(err, service.ErrNoResults) {
		page.Message = noResultsMessage(q.Keyword)
		return c.JSON(page)
	}
	if err != nil {
		return writeQueryError(c, err, "Failed to fetch trending videos")
	}

	return c.JSON(page)
}
