package middleware

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v3"
)

// Query parameter limits and defaults.
const (
	DefaultRegion          = "US"
	DefaultCategory        = "0"
	DefaultMaxResults      = 20
	DefaultStatsMaxResults = 50
	MinMaxResults          = 1
	MaxMaxResults          = 50 // upstream page size limit
	MaxKeywordLen          = 200
)

var (
	// regionRe matches ISO 3166-1 alpha-2 codes.
	regionRe = regexp.MustCompile(`^[A-Z]{2}$`)
	// categoryRe matches numeric YouTube category IDs.
	categoryRe = regexp.MustCompile(`^[0-9]{1,4}$`)
)

// Durations accepted by the search endpoint's videoDuration filter.
var validDurations = map[string]bool{
	"any":    true,
	"short":  true,
	"medium": true,
	"long":   true,
}

// ErrorResponse is a helper that returns a standard API error response.
func ErrorResponse(c fiber.Ctx, status int, code, message string) error {
	return c.Status(status).JSON(fiber.Map{
		"error": fiber.Map{
			"code":    code,
			"message": message,
		},
	})
}

// ValidateRegion upper-cases region and checks it is a two-letter code.
// Empty input yields DefaultRegion.
func ValidateRegion(region string) (string, string) {
	region = strings.ToUpper(strings.TrimSpace(region))
	if region == "" {
		return DefaultRegion, ""
	}
	if !regionRe.MatchString(region) {
		return "", "region must be a two-letter country code"
	}
	return region, ""
}

// ValidateCategory checks the category ID is numeric. Empty input yields
// DefaultCategory ("0", all categories).
func ValidateCategory(category string) (string, string) {
	category = strings.TrimSpace(category)
	if category == "" {
		return DefaultCategory, ""
	}
	if !categoryRe.MatchString(category) {
		return "", "category must be a numeric category ID"
	}
	return category, ""
}

// ValidateMaxResults parses raw and clamps it to 1..50. Empty input yields def.
func ValidateMaxResults(raw string, def int64) (int64, string) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return def, ""
	}
	n, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0, "maxResults must be an integer"
	}
	return min(max(n, MinMaxResults), MaxMaxResults), ""
}

// ValidateKeyword trims the keyword and enforces the length limit.
// An empty result is valid and selects the trending chart.
func ValidateKeyword(keyword string) (string, string) {
	keyword = strings.TrimSpace(keyword)
	if len([]rune(keyword)) > MaxKeywordLen {
		return "", "keyword must be at most 200 characters"
	}
	return keyword, ""
}

// ValidateDuration lower-cases the duration filter and checks it against the
// accepted values. Empty input yields "any".
func ValidateDuration(duration string) (string, string) {
	duration = strings.ToLower(strings.TrimSpace(duration))
	if duration == "" {
		return "any", ""
	}
	if !validDurations[duration] {
		return "", "duration must be one of any, short, medium, long"
	}
	return duration, ""
}
