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

// NewsHandler - curated news CRUD plus the aggregated web search
type NewsHandler struct {
	newsUC *usecase.NewsUseCase
	logger *zap.Logger
}

func NewNewsHandler(newsUC *usecase.NewsUseCase, logger *zap.Logger) *NewsHandler {
	return &NewsHandler{
		newsUC: newsUC,
		logger: logger,
	}
}

// Create - store a curated news entry
func (h *NewsHandler) Create(c *fiber.Ctx) error {
	var req dto.CreateNewsRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request body"})
	}

	if err := validator.Validate(&req); err != nil {
		return utils.SendError(c, err)
	}

	entry, err := h.newsUC.Create(c.Context(), req)
	if err != nil {
		return utils.SendError(c, err)
	}

	return utils.SendSuccess(c, entry, nil)
}

// Get - fetch a news entry by ID
func (h *NewsHandler) Get(c *fiber.Ctx) error {
	entry, err := h.newsUC.Get(c.Context(), c.Params("id"))
	if err != nil {
		return utils.SendError(c, err)
	}

	return utils.SendSuccess(c, entry, nil)
}

// List - list curated news entries
func (h *NewsHandler) List(c *fiber.Ctx) error {
	limit, _ := strconv.Atoi(c.Query("limit", "0"))

	result, err := h.newsUC.List(c.Context(), limit)
	if err != nil {
		return utils.SendError(c, err)
	}

	return utils.SendSuccess(c, result, &utils.Meta{
		Total: result.Total,
	})
}

// Update - partial news entry update
func (h *NewsHandler) Update(c *fiber.Ctx) error {
	var req dto.UpdateNewsRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request body"})
	}

	if err := validator.Validate(&req); err != nil {
		return utils.SendError(c, err)
	}

	entry, err := h.newsUC.Update(c.Context(), c.Params("id"), req)
	if err != nil {
		return utils.SendError(c, err)
	}

	return utils.SendSuccess(c, entry, nil)
}

// Delete - remove a news entry
func (h *NewsHandler) Delete(c *fiber.Ctx) error {
	id := c.Params("id")
	if err := h.newsUC.Delete(c.Context(), id); err != nil {
		return utils.SendError(c, err)
	}

	return utils.SendSuccess(c, fiber.Map{"id": id, "deleted": true}, nil)
}

// Search - aggregated news search across the configured providers
// @Summary Search news across providers
// @Description Fans the query out to the configured providers, merges and dedupes the results and serves them newest first
// @Tags news
// @Produce json
// @Param q query string false "Search query" default(Cameroon)
// @Param page query int false "Page number" default(1)
// @Param page_size query int false "Page size" default(20)
// @Param provider query string false "Restrict to one provider (newsapi, serpapi, serper, rss)"
// @Success 200 {object} utils.SuccessResponse
// @Failure 400 {object} utils.ErrorResponse
// @Router /api/v1/news/search [get]
func (h *NewsHandler) Search(c *fiber.Ctx) error {
	page, _ := strconv.Atoi(c.Query("page", "0"))
	pageSize, _ := strconv.Atoi(c.Query("page_size", "0"))

	req := dto.SearchNewsRequest{
		Query:    c.Query("q"),
		Page:     page,
		PageSize: pageSize,
		Provider: c.Query("provider"),
	}
	if err := validator.Validate(&req); err != nil {
		return utils.SendError(c, err)
	}

	result, err := h.newsUC.Search(c.Context(), req)
	if err != nil {
		return utils.SendError(c, err)
	}

	return utils.SendSuccess(c, result, &utils.Meta{
		Total: result.Total,
		Page:  result.Page,
		Limit: result.PageSize,
	})
}

// Article - readable text of a news page
// @Summary Extract a readable article
// @Description Fetches the page and returns its title and paragraph text with navigation chrome stripped
// @Tags news
// @Produce json
// @Param url query string true "Article URL"
// @Success 200 {object} utils.SuccessResponse
// @Failure 400 {object} utils.ErrorResponse
// @Failure 502 {object} utils.ErrorResponse
// @Router /api/v1/news/article [get]
func (h *NewsHandler) Article(c *fiber.Ctx) error {
	req := dto.ArticleRequest{
		URL: c.Query("url"),
	}
	if err := validator.Validate(&req); err != nil {
		return utils.SendError(c, err)
	}

	article, err := h.newsUC.Article(c.Context(), req.URL)
	if err != nil {
		return utils.SendError(c, err)
	}

	return utils.SendSuccess(c, article, nil)
}
