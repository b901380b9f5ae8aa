package http

import (
	"errors"
	"net/http"
	"strconv"

	"golang-news-aggregator/internal/api/dto"
	"golang-news-aggregator/internal/api/service"
	"golang-news-aggregator/pkg/logger"

	"github.com/labstack/echo/v4"
	"gorm.io/gorm"
)

// OutletHandler handles HTTP requests for news outlets.
type OutletHandler struct {
	outletService service.OutletService
	logger        *logger.Logger
}

// NewOutletHandler creates a new OutletHandler.
func NewOutletHandler(outletService service.OutletService, logger *logger.Logger) *OutletHandler {
	return &OutletHandler{outletService: outletService, logger: logger}
}

// RegisterRoutes registers the outlet routes to the Echo group.
func (h *OutletHandler) RegisterRoutes(g *echo.Group) {
	g.POST("", h.CreateOutlet)
	g.GET("", h.GetAllOutlets)
	g.GET("/:id", h.GetOutletByID)
	g.PUT("/:id", h.UpdateOutlet)
	g.DELETE("/:id", h.DeleteOutlet)
}

// parseID extracts a uint path parameter named "id".
func parseID(c echo.Context) (uint, error) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	return uint(id), err
}

// jsonError maps repository errors onto HTTP statuses.
func jsonError(c echo.Context, err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return c.JSON(http.StatusNotFound, dto.ErrorResponse{Error: "not found"})
	}
	return c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: err.Error()})
}

// CreateOutlet godoc
// @Summary Create a news outlet
// @Tags outlets
// @Accept json
// @Produce json
// @Param outlet body dto.OutletRequest true "Outlet to create"
// @Success 201 {object} entity.NewsOutlet
// @Failure 400 {object} dto.ErrorResponse
// @Router /outlets [post]
func (h *OutletHandler) CreateOutlet(c echo.Context) error {
	var req dto.OutletRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "Invalid request payload"})
	}
	outlet, err := h.outletService.Create(c.Request().Context(), &req)
	if err != nil {
		return jsonError(c, err)
	}
	return c.JSON(http.StatusCreated, outlet)
}

// GetAllOutlets godoc
// @Summary List news outlets
// @Tags outlets
// @Produce json
// @Success 200 {array} entity.NewsOutlet
// @Failure 500 {object} dto.ErrorResponse
// @Router /outlets [get]
func (h *OutletHandler) GetAllOutlets(c echo.Context) error {
	outlets, err := h.outletService.GetAll(c.Request().Context())
	if err != nil {
		h.logger.Error("Failed to get outlets", logger.ErrorField(err))
		return jsonError(c, err)
	}
	return c.JSON(http.StatusOK, outlets)
}

// GetOutletByID godoc
// @Summary Get a news outlet by ID
// @Tags outlets
// @Produce json
// @Param id path int true "Outlet ID"
// @Success 200 {object} entity.NewsOutlet
// @Failure 404 {object} dto.ErrorResponse
// @Router /outlets/{id} [get]
func (h *OutletHandler) GetOutletByID(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "Invalid outlet ID"})
	}
	outlet, err := h.outletService.GetByID(c.Request().Context(), id)
	if err != nil {
		return jsonError(c, err)
	}
	return c.JSON(http.StatusOK, outlet)
}

// UpdateOutlet godoc
// @Summary Update a news outlet
// @Tags outlets
// @Accept json
// @Produce json
// @Param id path int true "Outlet ID"
// @Param outlet body dto.OutletRequest true "Updated outlet"
// @Success 200 {object} entity.NewsOutlet
// @Failure 404 {object} dto.ErrorResponse
// @Router /outlets/{id} [put]
func (h *OutletHandler) UpdateOutlet(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "Invalid outlet ID"})
	}
	var req dto.OutletRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "Invalid request payload"})
	}
	outlet, err := h.outletService.Update(c.Request().Context(), id, &req)
	if err != nil {
		return jsonError(c, err)
	}
	return c.JSON(http.StatusOK, outlet)
}

// DeleteOutlet godoc
// @Summary Delete a news outlet
// @Tags outlets
// @Param id path int true "Outlet ID"
// @Success 204
// @Failure 404 {object} dto.ErrorResponse
// @Router /outlets/{id} [delete]
func (h *OutletHandler) DeleteOutlet(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "Invalid outlet ID"})
	}
	if err := h.outletService.Delete(c.Request().Context(), id); err != nil {
		return jsonError(c, err)
	}
	return c.NoContent(http.StatusNoContent)
}
