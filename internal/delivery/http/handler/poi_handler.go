package handler

import (
	"strconv"

	"github.com/citypulse-backend/internal/pkg/utils"
	"github.com/citypulse-backend/internal/pkg/validator"
	"github.com/citypulse-backend/internal/usecase"
	"github.com/citypulse-backend/internal/usecase/dto"
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// POIHandler - point of interest endpoints
type POIHandler struct {
	poiUC  *usecase.POIUseCase
	logger *zap.Logger
}

func NewPOIHandler(poiUC *usecase.POIUseCase, logger *zap.Logger) *POIHandler {
	return &POIHandler{
		poiUC:  poiUC,
		logger: logger,
	}
}

// Create - register a point of interest
func (h *POIHandler) Create(c *fiber.Ctx) error {
	var req dto.CreatePOIRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request body"})
	}

	if err := validator.Validate(&req); err != nil {
		return utils.SendError(c, err)
	}

	poi, err := h.poiUC.Create(c.Context(), req)
	if err != nil {
		return utils.SendError(c, err)
	}

	return utils.SendSuccess(c, poi, nil)
}

// Get - fetch a point of interest by ID
func (h *POIHandler) Get(c *fiber.Ctx) error {
	poi, err := h.poiUC.Get(c.Context(), c.Params("id"))
	if err != nil {
		return utils.SendError(c, err)
	}

	return utils.SendSuccess(c, poi, nil)
}

// List - list points of interest
func (h *POIHandler) List(c *fiber.Ctx) error {
	limit, _ := strconv.Atoi(c.Query("limit", "0"))

	result, err := h.poiUC.List(c.Context(), limit)
	if err != nil {
		return utils.SendError(c, err)
	}

	return utils.SendSuccess(c, result, &utils.Meta{
		Total: result.Total,
	})
}

// Update - partial point of interest update
func (h *POIHandler) Update(c *fiber.Ctx) error {
	var req dto.UpdatePOIRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request body"})
	}

	if err := validator.Validate(&req); err != nil {
		return utils.SendError(c, err)
	}

	poi, err := h.poiUC.Update(c.Context(), c.Params("id"), req)
	if err != nil {
		return utils.SendError(c, err)
	}

	return utils.SendSuccess(c, poi, nil)
}

// Delete - remove a point of interest
func (h *POIHandler) Delete(c *fiber.Ctx) error {
	id := c.Params("id")
	if err := h.poiUC.Delete(c.Context(), id); err != nil {
		return utils.SendError(c, err)
	}

	return utils.SendSuccess(c, fiber.Map{"id": id, "deleted": true}, nil)
}
