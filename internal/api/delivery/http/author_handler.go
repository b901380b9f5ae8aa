package http

import (
	"net/http"

	"golang-news-aggregator/internal/api/dto"
	"golang-news-aggregator/internal/api/service"
	"golang-news-aggregator/pkg/logger"

	"github.com/labstack/echo/v4"
)

// AuthorHandler handles HTTP requests for authors and their outlet
// associations.
type AuthorHandler struct {
	authorService service.AuthorService
	logger        *logger.Logger
}

// NewAuthorHandler creates a new AuthorHandler.
func NewAuthorHandler(authorService service.AuthorService, logger *logger.Logger) *AuthorHandler {
	return &AuthorHandler{authorService: authorService, logger: logger}
}

// RegisterRoutes registers the author routes to the Echo group.
func (h *AuthorHandler) RegisterRoutes(g *echo.Group) {
	g.POST("", h.CreateAuthor)
	g.GET("", h.GetAllAuthors)
	g.GET("/:id", h.GetAuthorByID)
	g.PUT("/:id", h.UpdateAuthor)
	g.DELETE("/:id", h.DeleteAuthor)
}

// RegisterAssociationRoutes registers the author-outlet association routes.
func (h *AuthorHandler) RegisterAssociationRoutes(g *echo.Group) {
	g.POST("", h.CreateAssociation)
	g.GET("", h.GetAllAssociations)
	g.GET("/:id", h.GetAssociationByID)
	g.PUT("/:id", h.UpdateAssociation)
	g.DELETE("/:id", h.DeleteAssociation)
}

// CreateAuthor godoc
// @Summary Create an author
// @Tags authors
// @Accept json
// @Produce json
// @Param author body dto.AuthorRequest true "Author to create"
// @Success 201 {object} entity.Author
// @Failure 400 {object} dto.ErrorResponse
// @Router /authors [post]
func (h *AuthorHandler) CreateAuthor(c echo.Context) error {
	var req dto.AuthorRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "Invalid request payload"})
	}
	author, err := h.authorService.Create(c.Request().Context(), &req)
	if err != nil {
		return jsonError(c, err)
	}
	return c.JSON(http.StatusCreated, author)
}

// GetAllAuthors godoc
// @Summary List authors
// @Tags authors
// @Produce json
// @Success 200 {array} entity.Author
// @Failure 500 {object} dto.ErrorResponse
// @Router /authors [get]
func (h *AuthorHandler) GetAllAuthors(c echo.Context) error {
	authors, err := h.authorService.GetAll(c.Request().Context())
	if err != nil {
		h.logger.Error("Failed to get authors", logger.ErrorField(err))
		return jsonError(c, err)
	}
	return c.JSON(http.StatusOK, authors)
}

// GetAuthorByID godoc
// @Summary Get an author by ID
// @Tags authors
// @Produce json
// @Param id path int true "Author ID"
// @Success 200 {object} entity.Author
// @Failure 404 {object} dto.ErrorResponse
// @Router /authors/{id} [get]
func (h *AuthorHandler) GetAuthorByID(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "Invalid author ID"})
	}
	author, err := h.authorService.GetByID(c.Request().Context(), id)
	if err != nil {
		return jsonError(c, err)
	}
	return c.JSON(http.StatusOK, author)
}

// UpdateAuthor godoc
// @Summary Update an author
// @Tags authors
// @Accept json
// @Produce json
// @Param id path int true "Author ID"
// @Param author body dto.AuthorRequest true "Updated author"
// @Success 200 {object} entity.Author
// @Failure 404 {object} dto.ErrorResponse
// @Router /authors/{id} [put]
func (h *AuthorHandler) UpdateAuthor(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "Invalid author ID"})
	}
	var req dto.AuthorRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "Invalid request payload"})
	}
	author, err := h.authorService.Update(c.Request().Context(), id, &req)
	if err != nil {
		return jsonError(c, err)
	}
	return c.JSON(http.StatusOK, author)
}

// DeleteAuthor godoc
// @Summary Delete an author and their outlet associations
// @Tags authors
// @Param id path int true "Author ID"
// @Success 204
// @Failure 404 {object} dto.ErrorResponse
// @Router /authors/{id} [delete]
func (h *AuthorHandler) DeleteAuthor(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "Invalid author ID"})
	}
	if err := h.authorService.Delete(c.Request().Context(), id); err != nil {
		return jsonError(c, err)
	}
	return c.NoContent(http.StatusNoContent)
}

// CreateAssociation godoc
// @Summary Link an author to an outlet
// @Tags associations
// @Accept json
// @Produce json
// @Param association body dto.AssociationRequest true "Association to create"
// @Success 201 {object} entity.AuthorOutletAssociation
// @Failure 400 {object} dto.ErrorResponse
// @Router /associations [post]
func (h *AuthorHandler) CreateAssociation(c echo.Context) error {
	var req dto.AssociationRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "Invalid request payload"})
	}
	assoc, err := h.authorService.CreateAssociation(c.Request().Context(), &req)
	if err != nil {
		return jsonError(c, err)
	}
	return c.JSON(http.StatusCreated, assoc)
}

// GetAllAssociations godoc
// @Summary List author-outlet associations
// @Tags associations
// @Produce json
// @Success 200 {array} entity.AuthorOutletAssociation
// @Failure 500 {object} dto.ErrorResponse
// @Router /associations [get]
func (h *AuthorHandler) GetAllAssociations(c echo.Context) error {
	assocs, err := h.authorService.GetAllAssociations(c.Request().Context())
	if err != nil {
		return jsonError(c, err)
	}
	return c.JSON(http.StatusOK, assocs)
}

// GetAssociationByID godoc
// @Summary Get an author-outlet association by ID
// @Tags associations
// @Produce json
// @Param id path int true "Association ID"
// @Success 200 {object} entity.AuthorOutletAssociation
// @Failure 404 {object} dto.ErrorResponse
// @Router /associations/{id} [get]
func (h *AuthorHandler) GetAssociationByID(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "Invalid association ID"})
	}
	assoc, err := h.authorService.GetAssociationByID(c.Request().Context(), id)
	if err != nil {
		return jsonError(c, err)
	}
	return c.JSON(http.StatusOK, assoc)
}

// UpdateAssociation godoc
// @Summary Update an author-outlet association
// @Tags associations
// @Accept json
// @Produce json
// @Param id path int true "Association ID"
// @Param association body dto.AssociationRequest true "Updated association"
// @Success 200 {object} entity.AuthorOutletAssociation
// @Failure 404 {object} dto.ErrorResponse
// @Router /associations/{id} [put]
func (h *AuthorHandler) UpdateAssociation(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "Invalid association ID"})
	}
	var req dto.AssociationRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "Invalid request payload"})
	}
	assoc, err := h.authorService.UpdateAssociation(c.Request().Context(), id, &req)
	if err != nil {
		return jsonError(c, err)
	}
	return c.JSON(http.StatusOK, assoc)
}

// DeleteAssociation godoc
// @Summary Delete an author-outlet association
// @Tags associations
// @Param id path int true "Association ID"
// @Success 204
// @Failure 404 {object} dto.ErrorResponse
// @Router /associations/{id} [delete]
func (h *AuthorHandler) DeleteAssociation(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "Invalid association ID"})
	}
	if err := h.authorService.DeleteAssociation(c.Request().Context(), id); err != nil {
		return jsonError(c, err)
	}
	return c.NoContent(http.StatusNoContent)
}
