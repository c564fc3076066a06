package handler

import (
	"context"
	"errors"
	"net/http"

	"github.com/gofiber/fiber/v3"

	"github.com/ca-io-systems/YT-Trends/internal/config"
	"github.com/ca-io-systems/YT-Trends/internal/middleware"
	"github.com/ca-io-systems/YT-Trends/internal/youtube"
)

// writeQueryError maps a query failure onto the error envelope.
//
//	config.ErrMissingAPIKey  -> 500 CONFIG_ERROR
//	*youtube.APIError        -> upstream status, upstream message
//	deadline exceeded        -> 504 UPSTREAM_TIMEOUT
//	anything else            -> 502 UPSTREAM_UNAVAILABLE
func writeQueryError(c fiber.Ctx, err error, fallback string) error {
	var apiErr *youtube.APIError
	switch {
	case errors.Is(err, config.ErrMissingAPIKey):
		return middleware.ErrorResponse(c, fiber.StatusInternalServerError, "CONFIG_ERROR", err.Error())
	case errors.As(err, &apiErr):
		status := apiErr.Status
		if status < 400 || status > 599 {
			status = fiber.StatusBadGateway
		}
		return middleware.ErrorResponse(c, status, upstreamCode(status), apiErr.Message)
	case errors.Is(err, context.DeadlineExceeded):
		return middleware.ErrorResponse(c, fiber.StatusGatewayTimeout, "UPSTREAM_TIMEOUT", "YouTube API did not respond in time")
	default:
		middleware.Logger.Error().Err(err).Msg("upstream request failed")
		return middleware.ErrorResponse(c, fiber.StatusBadGateway, "UPSTREAM_UNAVAILABLE", fallback)
	}
}

func upstreamCode(status int) string {
	switch status {
	case http.StatusBadRequest:
		return "UPSTREAM_BAD_REQUEST"
	case http.StatusForbidden:
		return "UPSTREAM_FORBIDDEN"
	case http.StatusNotFound:
		return "UPSTREAM_NOT_FOUND"
	case http.StatusTooManyRequests:
		return "UPSTREAM_RATE_LIMITED"
	default:
		return "UPSTREAM_ERROR"
	}
}

func noResultsMessage(keyword string) string {
	if keyword != "" {
		return `No videos found for "` + keyword + `"`
	}
	return "No videos found for the selected filters"
}
