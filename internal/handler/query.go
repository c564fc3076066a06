package handler

import (
	"github.com/gofiber/fiber/v3"

	"github.com/ca-io-systems/YT-Trends/internal/middleware"
	"github.com/ca-io-systems/YT-Trends/internal/model"
)

// parseVideoQuery validates the shared query parameters. On failure it has
// already written a 400 response and returns ok=false.
func parseVideoQuery(c fiber.Ctx, defaultMax int64) (q model.VideoQuery, ok bool, err error) {
	region, msg := middleware.ValidateRegion(c.Query("region"))
	if msg != "" {
		return q, false, middleware.ErrorResponse(c, fiber.StatusBadRequest, "INVALID_REGION", msg)
	}
	category, msg := middleware.ValidateCategory(c.Query("category"))
	if msg != "" {
		return q, false, middleware.ErrorResponse(c, fiber.StatusBadRequest, "INVALID_CATEGORY", msg)
	}
	maxResults, msg := middleware.ValidateMaxResults(c.Query("maxResults"), defaultMax)
	if msg != "" {
		return q, false, middleware.ErrorResponse(c, fiber.StatusBadRequest, "INVALID_MAX_RESULTS", msg)
	}
	keyword, msg := middleware.ValidateKeyword(c.Query("keyword"))
	if msg != "" {
		return q, false, middleware.ErrorResponse(c, fiber.StatusBadRequest, "INVALID_KEYWORD", msg)
	}
	duration, msg := middleware.ValidateDuration(c.Query("duration"))
	if msg != "" {
		return q, false, middleware.ErrorResponse(c, fiber.StatusBadRequest, "INVALID_DURATION", msg)
	}

	return model.VideoQuery{
		Region:     region,
		CategoryID: category,
		MaxResults: maxResults,
		Keyword:    keyword,
		Duration:   duration,
	}, true, nil
}
