package handler

import (
	"github.com/gofiber/fiber/v3"

	"github.com/ca-io-systems/YT-Trends/internal/middleware"
	"github.com/ca-io-systems/YT-Trends/internal/model"
	"github.com/ca-io-systems/YT-Trends/internal/service"
)

type CategoryHandler struct {
	svc *service.CategoryService
}

func NewCategoryHandler(svc *service.CategoryService) *CategoryHandler {
	return &CategoryHandler{svc: svc}
}

// GetCategories handles GET /api/categories?region=US
func (h *CategoryHandler) GetCategories(c fiber.Ctx) error {
	region, msg := middleware.ValidateRegion(c.Query("region"))
	if msg != "" {
		return middleware.ErrorResponse(c, fiber.StatusBadRequest, "INVALID_REGION", msg)
	}

	cats, err := h.svc.List(c.Context(), region)
	if err != nil {
		return writeQueryError(c, err, "Failed to fetch categories")
	}

	return c.JSON(model.CategoryList{Categories: cats})
}
