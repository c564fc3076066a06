package handler

import (
	"errors"

	"github.com/gofiber/fiber/v3"

	"github.com/ca-io-systems/YT-Trends/internal/middleware"
	"github.com/ca-io-systems/YT-Trends/internal/model"
	"github.com/ca-io-systems/YT-Trends/internal/service"
)

type SummaryHandler struct {
	svc *service.SummaryService
}

func NewSummaryHandler(svc *service.SummaryService) *SummaryHandler {
	return &SummaryHandler{svc: svc}
}

// Summarize handles POST /api/summary. The body is the digest of a stats
// result; the response carries the collaborator's prose unchanged.
func (h *SummaryHandler) Summarize(c fiber.Ctx) error {
	if !h.svc.Enabled() {
		return middleware.ErrorResponse(c, fiber.StatusServiceUnavailable, "SUMMARY_UNAVAILABLE", service.ErrSummaryUnavailable.Error())
	}

	var d model.Digest
	if err := c.Bind().JSON(&d); err != nil {
		return middleware.ErrorResponse(c, fiber.StatusBadRequest, "INVALID_BODY", "Invalid JSON body")
	}

	region, msg := middleware.ValidateRegion(d.Region)
	if msg != "" {
		return middleware.ErrorResponse(c, fiber.StatusBadRequest, "INVALID_REGION", msg)
	}
	d.Region = region

	keyword, msg := middleware.ValidateKeyword(d.Keyword)
	if msg != "" {
		return middleware.ErrorResponse(c, fiber.StatusBadRequest, "INVALID_KEYWORD", msg)
	}
	d.Keyword = keyword

	if d.Totals.Videos == 0 && len(d.TopVideos) == 0 {
		return middleware.ErrorResponse(c, fiber.StatusBadRequest, "EMPTY_DIGEST", "Nothing to summarize")
	}

	text, err := h.svc.Summarize(c.Context(), d)
	if err != nil {
		if errors.Is(err, service.ErrSummaryUnavailable) {
			return middleware.ErrorResponse(c, fiber.StatusServiceUnavailable, "SUMMARY_UNAVAILABLE", err.Error())
		}
		return middleware.ErrorResponse(c, fiber.StatusBadGateway, "SUMMARY_FAILED", "Failed to generate summary")
	}

	return c.JSON(model.SummaryResponse{Summary: text})
}
