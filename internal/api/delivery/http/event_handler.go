package http

import (
	"net/http"

	"golang-news-aggregator/internal/api/dto"
	"golang-news-aggregator/internal/api/service"
	"golang-news-aggregator/pkg/logger"

	"github.com/labstack/echo/v4"
)

// EventHandler handles HTTP requests for events, event facts and the
// evidence links between event facts and article facts.
type EventHandler struct {
	eventService service.EventService
	logger       *logger.Logger
}

// NewEventHandler creates a new EventHandler.
func NewEventHandler(eventService service.EventService, logger *logger.Logger) *EventHandler {
	return &EventHandler{eventService: eventService, logger: logger}
}

// RegisterRoutes registers the event routes to the Echo group.
func (h *EventHandler) RegisterRoutes(g *echo.Group) {
	g.POST("", h.CreateEvent)
	g.GET("", h.GetAllEvents)
	g.GET("/:id", h.GetEventByID)
	g.PUT("/:id", h.UpdateEvent)
	g.DELETE("/:id", h.DeleteEvent)
}

// RegisterFactRoutes registers the event fact routes.
func (h *EventHandler) RegisterFactRoutes(g *echo.Group) {
	g.POST("", h.CreateFact)
	g.GET("/:id", h.GetFactByID)
	g.PUT("/:id", h.UpdateFact)
	g.DELETE("/:id", h.DeleteFact)
}

// RegisterSourceRoutes registers the event fact source routes.
func (h *EventHandler) RegisterSourceRoutes(g *echo.Group) {
	g.POST("", h.CreateSource)
	g.GET("/:id", h.GetSourceByID)
	g.PUT("/:id", h.UpdateSource)
	g.DELETE("/:id", h.DeleteSource)
}

// CreateEvent godoc
// @Summary Create an event
// @Tags events
// @Accept json
// @Produce json
// @Param event body dto.EventRequest true "Event to create"
// @Success 201 {object} entity.Event
// @Failure 400 {object} dto.ErrorResponse
// @Router /events [post]
func (h *EventHandler) CreateEvent(c echo.Context) error {
	var req dto.EventRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "Invalid request payload"})
	}
	event, err := h.eventService.Create(c.Request().Context(), &req)
	if err != nil {
		return jsonError(c, err)
	}
	return c.JSON(http.StatusCreated, event)
}

// GetAllEvents godoc
// @Summary List events
// @Tags events
// @Produce json
// @Success 200 {array} entity.Event
// @Failure 500 {object} dto.ErrorResponse
// @Router /events [get]
func (h *EventHandler) GetAllEvents(c echo.Context) error {
	events, err := h.eventService.GetAll(c.Request().Context())
	if err != nil {
		h.logger.Error("Failed to get events", logger.ErrorField(err))
		return jsonError(c, err)
	}
	return c.JSON(http.StatusOK, events)
}

// GetEventByID godoc
// @Summary Get an event with its full fact graph
// @Tags events
// @Produce json
// @Param id path int true "Event ID"
// @Success 200 {object} entity.Event
// @Failure 404 {object} dto.ErrorResponse
// @Router /events/{id} [get]
func (h *EventHandler) GetEventByID(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "Invalid event ID"})
	}
	event, err := h.eventService.GetByID(c.Request().Context(), id)
	if err != nil {
		return jsonError(c, err)
	}
	return c.JSON(http.StatusOK, event)
}

// UpdateEvent godoc
// @Summary Update an event
// @Tags events
// @Accept json
// @Produce json
// @Param id path int true "Event ID"
// @Param event body dto.EventRequest true "Updated event"
// @Success 200 {object} entity.Event
// @Failure 404 {object} dto.ErrorResponse
// @Router /events/{id} [put]
func (h *EventHandler) UpdateEvent(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "Invalid event ID"})
	}
	var req dto.EventRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "Invalid request payload"})
	}
	event, err := h.eventService.Update(c.Request().Context(), id, &req)
	if err != nil {
		return jsonError(c, err)
	}
	return c.JSON(http.StatusOK, event)
}

// DeleteEvent godoc
// @Summary Delete an event and its facts
// @Tags events
// @Param id path int true "Event ID"
// @Success 204
// @Failure 404 {object} dto.ErrorResponse
// @Router /events/{id} [delete]
func (h *EventHandler) DeleteEvent(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "Invalid event ID"})
	}
	if err := h.eventService.Delete(c.Request().Context(), id); err != nil {
		return jsonError(c, err)
	}
	return c.NoContent(http.StatusNoContent)
}

// CreateFact godoc
// @Summary Create an event fact
// @Tags event-facts
// @Accept json
// @Produce json
// @Param fact body dto.EventFactRequest true "Fact to create"
// @Success 201 {object} entity.EventFact
// @Failure 400 {object} dto.ErrorResponse
// @Router /event-facts [post]
func (h *EventHandler) CreateFact(c echo.Context) error {
	var req dto.EventFactRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "Invalid request payload"})
	}
	fact, err := h.eventService.CreateFact(c.Request().Context(), &req)
	if err != nil {
		return jsonError(c, err)
	}
	return c.JSON(http.StatusCreated, fact)
}

// GetFactByID godoc
// @Summary Get an event fact by ID
// @Tags event-facts
// @Produce json
// @Param id path int true "Fact ID"
// @Success 200 {object} entity.EventFact
// @Failure 404 {object} dto.ErrorResponse
// @Router /event-facts/{id} [get]
func (h *EventHandler) GetFactByID(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "Invalid fact ID"})
	}
	fact, err := h.eventService.GetFactByID(c.Request().Context(), id)
	if err != nil {
		return jsonError(c, err)
	}
	return c.JSON(http.StatusOK, fact)
}

// UpdateFact godoc
// @Summary Update an event fact
// @Tags event-facts
// @Accept json
// @Produce json
// @Param id path int true "Fact ID"
// @Param fact body dto.EventFactRequest true "Updated fact"
// @Success 200 {object} entity.EventFact
// @Failure 404 {object} dto.ErrorResponse
// @Router /event-facts/{id} [put]
func (h *EventHandler) UpdateFact(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "Invalid fact ID"})
	}
	var req dto.EventFactRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "Invalid request payload"})
	}
	fact, err := h.eventService.UpdateFact(c.Request().Context(), id, &req)
	if err != nil {
		return jsonError(c, err)
	}
	return c.JSON(http.StatusOK, fact)
}

// DeleteFact godoc
// @Summary Delete an event fact and its evidence links
// @Tags event-facts
// @Param id path int true "Fact ID"
// @Success 204
// @Failure 404 {object} dto.ErrorResponse
// @Router /event-facts/{id} [delete]
func (h *EventHandler) DeleteFact(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "Invalid fact ID"})
	}
	if err := h.eventService.DeleteFact(c.Request().Context(), id); err != nil {
		return jsonError(c, err)
	}
	return c.NoContent(http.StatusNoContent)
}

// CreateSource godoc
// @Summary Link an event fact to a supporting article fact
// @Tags event-fact-sources
// @Accept json
// @Produce json
// @Param source body dto.EventFactSourceRequest true "Source link to create"
// @Success 201 {object} entity.EventFactSource
// @Failure 400 {object} dto.ErrorResponse
// @Router /event-fact-sources [post]
func (h *EventHandler) CreateSource(c echo.Context) error {
	var req dto.EventFactSourceRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "Invalid request payload"})
	}
	source, err := h.eventService.CreateSource(c.Request().Context(), &req)
	if err != nil {
		return jsonError(c, err)
	}
	return c.JSON(http.StatusCreated, source)
}

// GetSourceByID godoc
// @Summary Get an event fact source by ID
// @Tags event-fact-sources
// @Produce json
// @Param id path int true "Source ID"
// @Success 200 {object} entity.EventFactSource
// @Failure 404 {object} dto.ErrorResponse
// @Router /event-fact-sources/{id} [get]
func (h *EventHandler) GetSourceByID(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "Invalid source ID"})
	}
	source, err := h.eventService.GetSourceByID(c.Request().Context(), id)
	if err != nil {
		return jsonError(c, err)
	}
	return c.JSON(http.StatusOK, source)
}

// UpdateSource godoc
// @Summary Update an event fact source
// @Tags event-fact-sources
// @Accept json
// @Produce json
// @Param id path int true "Source ID"
// @Param source body dto.EventFactSourceRequest true "Updated source link"
// @Success 200 {object} entity.EventFactSource
// @Failure 404 {object} dto.ErrorResponse
// @Router /event-fact-sources/{id} [put]
func (h *EventHandler) UpdateSource(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "Invalid source ID"})
	}
	var req dto.EventFactSourceRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "Invalid request payload"})
	}
	source, err := h.eventService.UpdateSource(c.Request().Context(), id, &req)
	if err != nil {
		return jsonError(c, err)
	}
	return c.JSON(http.StatusOK, source)
}

// DeleteSource godoc
// @Summary Delete an event fact source
// @Tags event-fact-sources
// @Param id path int true "Source ID"
// @Success 204
// @Failure 404 {object} dto.ErrorResponse
// @Router /event-fact-sources/{id} [delete]
func (h *EventHandler) DeleteSource(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "Invalid source ID"})
	}
	if err := h.eventService.DeleteSource(c.Request().Context(), id); err != nil {
		return jsonError(c, err)
	}
	return c.NoContent(http.StatusNoContent)
}
