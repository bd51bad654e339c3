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

// InstitutionHandler - institution profile endpoints
type InstitutionHandler struct {
	institutionUC *usecase.InstitutionUseCase
	logger        *zap.Logger
}

func NewInstitutionHandler(institutionUC *usecase.InstitutionUseCase, logger *zap.Logger) *InstitutionHandler {
	return &InstitutionHandler{
		institutionUC: institutionUC,
		logger:        logger,
	}
}

// Create - register an institution
func (h *InstitutionHandler) Create(c *fiber.Ctx) error {
	var req dto.CreateInstitutionRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request body"})
	}

	if err := validator.Validate(&req); err != nil {
		return utils.SendError(c, err)
	}

	institution, err := h.institutionUC.Create(c.Context(), req)
	if err != nil {
		return utils.SendError(c, err)
	}

	return utils.SendSuccess(c, institution, nil)
}

// Get - fetch an institution by ID
func (h *InstitutionHandler) Get(c *fiber.Ctx) error {
	institution, err := h.institutionUC.Get(c.Context(), c.Params("id"))
	if err != nil {
		return utils.SendError(c, err)
	}

	return utils.SendSuccess(c, institution, nil)
}

// List - list institutions
func (h *InstitutionHandler) List(c *fiber.Ctx) error {
	limit, _ := strconv.Atoi(c.Query("limit", "0"))

	result, err := h.institutionUC.List(c.Context(), limit)
	if err != nil {
		return utils.SendError(c, err)
	}

	return utils.SendSuccess(c, result, &utils.Meta{
		Total: result.Total,
	})
}

// Update - partial institution update
func (h *InstitutionHandler) Update(c *fiber.Ctx) error {
	var req dto.UpdateInstitutionRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request body"})
	}

	if err := validator.Validate(&req); err != nil {
		return utils.SendError(c, err)
	}

	institution, err := h.institutionUC.Update(c.Context(), c.Params("id"), req)
	if err != nil {
		return utils.SendError(c, err)
	}

	return utils.SendSuccess(c, institution, nil)
}

// Delete - remove an institution
func (h *InstitutionHandler) Delete(c *fiber.Ctx) error {
	id := c.Params("id")
	if err := h.institutionUC.Delete(c.Context(), id); err != nil {
		return utils.SendError(c, err)
	}

	return utils.SendSuccess(c, fiber.Map{"id": id, "deleted": true}, nil)
}
