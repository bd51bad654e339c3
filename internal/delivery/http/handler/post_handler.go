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

// PostHandler - institution post endpoints, including the proximity
// and natural language search surfaces
type PostHandler struct {
	postUC *usecase.PostUseCase
	logger *zap.Logger
}

func NewPostHandler(postUC *usecase.PostUseCase, logger *zap.Logger) *PostHandler {
	return &PostHandler{
		postUC: postUC,
		logger: logger,
	}
}

// Create - publish an institution post
func (h *PostHandler) Create(c *fiber.Ctx) error {
	var req dto.CreatePostRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request body"})
	}

	if err := validator.Validate(&req); err != nil {
		return utils.SendError(c, err)
	}

	post, err := h.postUC.Create(c.Context(), req)
	if err != nil {
		return utils.SendError(c, err)
	}

	return utils.SendSuccess(c, post, nil)
}

// Get - fetch a post by ID
func (h *PostHandler) Get(c *fiber.Ctx) error {
	post, err := h.postUC.Get(c.Context(), c.Params("id"))
	if err != nil {
		return utils.SendError(c, err)
	}

	return utils.SendSuccess(c, post, nil)
}

// List - list posts with optional category, time window and sort
// @Summary List institution posts
// @Description Lists posts ordered newest first, optionally narrowed by category and time window
// @Tags posts
// @Produce json
// @Param category query string false "Category filter"
// @Param time_filter query string false "Time window (today, this week, this month)"
// @Param sort query string false "Sort order (popular)"
// @Param limit query int false "Max results" default(50)
// @Success 200 {object} utils.SuccessResponse
// @Router /api/v1/institution-posts [get]
func (h *PostHandler) List(c *fiber.Ctx) error {
	limit, _ := strconv.Atoi(c.Query("limit", "0"))

	req := dto.ListPostsRequest{
		Category:   c.Query("category"),
		TimeFilter: c.Query("time_filter"),
		Sort:       c.Query("sort"),
		Limit:      limit,
	}
	if err := validator.Validate(&req); err != nil {
		return utils.SendError(c, err)
	}

	result, err := h.postUC.List(c.Context(), req)
	if err != nil {
		return utils.SendError(c, err)
	}

	return utils.SendSuccess(c, result, &utils.Meta{
		Total: result.Total,
	})
}

// Update - partial post update
func (h *PostHandler) Update(c *fiber.Ctx) error {
	var req dto.UpdatePostRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request body"})
	}

	if err := validator.Validate(&req); err != nil {
		return utils.SendError(c, err)
	}

	post, err := h.postUC.Update(c.Context(), c.Params("id"), req)
	if err != nil {
		return utils.SendError(c, err)
	}

	return utils.SendSuccess(c, post, nil)
}

// Delete - remove a post
func (h *PostHandler) Delete(c *fiber.Ctx) error {
	id := c.Params("id")
	if err := h.postUC.Delete(c.Context(), id); err != nil {
		return utils.SendError(c, err)
	}

	return utils.SendSuccess(c, fiber.Map{"id": id, "deleted": true}, nil)
}

// Nearby - posts pinned within a radius of a point
// @Summary Find posts near a point
// @Description Returns posts whose pinned location falls within the radius, nearest first with exact distances
// @Tags posts
// @Produce json
// @Param lat query number true "Latitude"
// @Param lon query number true "Longitude"
// @Param radius query number false "Radius in meters" default(500)
// @Success 200 {object} utils.SuccessResponse
// @Failure 400 {object} utils.ErrorResponse
// @Router /api/v1/institution-posts/nearby [get]
func (h *PostHandler) Nearby(c *fiber.Ctx) error {
	lat, err := strconv.ParseFloat(c.Query("lat"), 64)
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "invalid lat"})
	}
	lon, err := strconv.ParseFloat(c.Query("lon"), 64)
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "invalid lon"})
	}
	radius, _ := strconv.ParseFloat(c.Query("radius", "0"), 64)

	result, err := h.postUC.Nearby(c.Context(), dto.NearbyPostsRequest{
		Lat:     lat,
		Lon:     lon,
		RadiusM: radius,
	})
	if err != nil {
		return utils.SendError(c, err)
	}

	return utils.SendSuccess(c, result, &utils.Meta{
		Total: result.Total,
	})
}

// AISearch - natural language post search
// @Summary Search posts in natural language
// @Description Translates the query into structured filters; with coordinates, results matching a nearby intent are ranked by distance
// @Tags posts
// @Produce json
// @Param q query string true "Search query"
// @Param lat query number false "Latitude for proximity ranking"
// @Param lon query number false "Longitude for proximity ranking"
// @Param radius query number false "Radius in meters" default(5000)
// @Success 200 {object} utils.SuccessResponse
// @Failure 400 {object} utils.ErrorResponse
// @Router /api/v1/institution-posts/ai-search [get]
func (h *PostHandler) AISearch(c *fiber.Ctx) error {
	req := dto.AISearchRequest{
		Query: c.Query("q"),
	}

	// Coordinates are optional; proximity ranking needs both.
	if v := c.Query("lat"); v != "" {
		lat, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return c.Status(400).JSON(fiber.Map{"error": "invalid lat"})
		}
		req.Lat = &lat
	}
	if v := c.Query("lon"); v != "" {
		lon, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return c.Status(400).JSON(fiber.Map{"error": "invalid lon"})
		}
		req.Lon = &lon
	}
	radius, _ := strconv.ParseFloat(c.Query("radius", "0"), 64)
	req.RadiusM = radius

	if err := validator.Validate(&req); err != nil {
		return utils.SendError(c, err)
	}

	result, err := h.postUC.AISearch(c.Context(), req)
	if err != nil {
		return utils.SendError(c, err)
	}

	return utils.SendSuccess(c, result, &utils.Meta{
		Total: result.Total,
	})
}
