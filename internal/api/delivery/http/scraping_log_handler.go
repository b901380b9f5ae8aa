package http

import (
	"net/http"

	"golang-news-aggregator/internal/api/dto"
	"golang-news-aggregator/internal/api/repository"
	"golang-news-aggregator/pkg/logger"

	"github.com/labstack/echo/v4"
)

// ScrapingLogHandler exposes read-only access to scraping checkpoints.
// Logs are written by the scraper service only, so there are no mutation
// routes here.
type ScrapingLogHandler struct {
	repo   repository.ScrapingLogRepository
	logger *logger.Logger
}

// NewScrapingLogHandler creates a new ScrapingLogHandler.
func NewScrapingLogHandler(repo repository.ScrapingLogRepository, logger *logger.Logger) *ScrapingLogHandler {
	return &ScrapingLogHandler{repo: repo, logger: logger}
}

// RegisterRoutes registers the scraping log routes to the Echo group.
func (h *ScrapingLogHandler) RegisterRoutes(g *echo.Group) {
	g.GET("", h.GetAllLogs)
	g.GET("/:id", h.GetLogByID)
}

// GetAllLogs godoc
// @Summary List scraping run logs
// @Tags scraping-logs
// @Produce json
// @Success 200 {array} entity.ScrapingLog
// @Failure 500 {object} dto.ErrorResponse
// @Router /scraping-logs [get]
func (h *ScrapingLogHandler) GetAllLogs(c echo.Context) error {
	logs, err := h.repo.FindAll(c.Request().Context())
	if err != nil {
		h.logger.Error("Failed to get scraping logs", logger.ErrorField(err))
		return jsonError(c, err)
	}
	return c.JSON(http.StatusOK, logs)
}

// GetLogByID godoc
// @Summary Get a scraping run log by ID
// @Tags scraping-logs
// @Produce json
// @Param id path int true "Log ID"
// @Success 200 {object} entity.ScrapingLog
// @Failure 404 {object} dto.ErrorResponse
// @Router /scraping-logs/{id} [get]
func (h *ScrapingLogHandler) GetLogByID(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "Invalid log ID"})
	}
	log, err := h.repo.FindByID(c.Request().Context(), id)
	if err != nil {
		return jsonError(c, err)
	}
	return c.JSON(http.StatusOK, log)
}
