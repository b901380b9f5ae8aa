package http

import (
	"net/http"

	"golang-news-aggregator/internal/api/dto"
	"golang-news-aggregator/internal/api/service"
	"golang-news-aggregator/pkg/logger"

	"github.com/labstack/echo/v4"
)

// ArticleHandler handles HTTP requests for articles and article facts.
type ArticleHandler struct {
	articleService service.ArticleService
	logger         *logger.Logger
}

// NewArticleHandler creates a new ArticleHandler.
func NewArticleHandler(articleService service.ArticleService, logger *logger.Logger) *ArticleHandler {
	return &ArticleHandler{articleService: articleService, logger: logger}
}

// RegisterRoutes registers the article routes to the Echo group.
func (h *ArticleHandler) RegisterRoutes(g *echo.Group) {
	g.POST("", h.CreateArticle)
	g.GET("", h.GetAllArticles)
	g.GET("/:id", h.GetArticleByID)
	g.PUT("/:id", h.UpdateArticle)
	g.DELETE("/:id", h.DeleteArticle)
}

// RegisterFactRoutes registers the article fact routes.
func (h *ArticleHandler) RegisterFactRoutes(g *echo.Group) {
	g.POST("", h.CreateFact)
	g.GET("", h.GetAllFacts)
	g.GET("/:id", h.GetFactByID)
	g.PUT("/:id", h.UpdateFact)
	g.DELETE("/:id", h.DeleteFact)
}

// CreateArticle godoc
// @Summary Create an article
// @Tags articles
// @Accept json
// @Produce json
// @Param article body dto.ArticleRequest true "Article to create"
// @Success 201 {object} entity.Article
// @Failure 400 {object} dto.ErrorResponse
// @Router /articles [post]
func (h *ArticleHandler) CreateArticle(c echo.Context) error {
	var req dto.ArticleRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "Invalid request payload"})
	}
	article, err := h.articleService.Create(c.Request().Context(), &req)
	if err != nil {
		return jsonError(c, err)
	}
	return c.JSON(http.StatusCreated, article)
}

// GetAllArticles godoc
// @Summary List articles
// @Tags articles
// @Produce json
// @Success 200 {array} entity.Article
// @Failure 500 {object} dto.ErrorResponse
// @Router /articles [get]
func (h *ArticleHandler) GetAllArticles(c echo.Context) error {
	articles, err := h.articleService.GetAll(c.Request().Context())
	if err != nil {
		h.logger.Error("Failed to get articles", logger.ErrorField(err))
		return jsonError(c, err)
	}
	return c.JSON(http.StatusOK, articles)
}

// GetArticleByID godoc
// @Summary Get an article by ID
// @Tags articles
// @Produce json
// @Param id path int true "Article ID"
// @Success 200 {object} entity.Article
// @Failure 404 {object} dto.ErrorResponse
// @Router /articles/{id} [get]
func (h *ArticleHandler) GetArticleByID(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "Invalid article ID"})
	}
	article, err := h.articleService.GetByID(c.Request().Context(), id)
	if err != nil {
		return jsonError(c, err)
	}
	return c.JSON(http.StatusOK, article)
}

// UpdateArticle godoc
// @Summary Update an article
// @Tags articles
// @Accept json
// @Produce json
// @Param id path int true "Article ID"
// @Param article body dto.ArticleRequest true "Updated article"
// @Success 200 {object} entity.Article
// @Failure 404 {object} dto.ErrorResponse
// @Router /articles/{id} [put]
func (h *ArticleHandler) UpdateArticle(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "Invalid article ID"})
	}
	var req dto.ArticleRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "Invalid request payload"})
	}
	article, err := h.articleService.Update(c.Request().Context(), id, &req)
	if err != nil {
		return jsonError(c, err)
	}
	return c.JSON(http.StatusOK, article)
}

// DeleteArticle godoc
// @Summary Delete an article, its facts and evidence links
// @Tags articles
// @Param id path int true "Article ID"
// @Success 204
// @Failure 404 {object} dto.ErrorResponse
// @Router /articles/{id} [delete]
func (h *ArticleHandler) DeleteArticle(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "Invalid article ID"})
	}
	if err := h.articleService.Delete(c.Request().Context(), id); err != nil {
		return jsonError(c, err)
	}
	return c.NoContent(http.StatusNoContent)
}

// CreateFact godoc
// @Summary Create an article fact
// @Tags article-facts
// @Accept json
// @Produce json
// @Param fact body dto.ArticleFactRequest true "Fact to create"
// @Success 201 {object} entity.ArticleFact
// @Failure 400 {object} dto.ErrorResponse
// @Router /article-facts [post]
func (h *ArticleHandler) CreateFact(c echo.Context) error {
	var req dto.ArticleFactRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "Invalid request payload"})
	}
	fact, err := h.articleService.CreateFact(c.Request().Context(), &req)
	if err != nil {
		return jsonError(c, err)
	}
	return c.JSON(http.StatusCreated, fact)
}

// GetAllFacts godoc
// @Summary List article facts
// @Tags article-facts
// @Produce json
// @Success 200 {array} entity.ArticleFact
// @Failure 500 {object} dto.ErrorResponse
// @Router /article-facts [get]
func (h *ArticleHandler) GetAllFacts(c echo.Context) error {
	facts, err := h.articleService.GetAllFacts(c.Request().Context())
	if err != nil {
		return jsonError(c, err)
	}
	return c.JSON(http.StatusOK, facts)
}

// GetFactByID godoc
// @Summary Get an article fact by ID
// @Tags article-facts
// @Produce json
// @Param id path int true "Fact ID"
// @Success 200 {object} entity.ArticleFact
// @Failure 404 {object} dto.ErrorResponse
// @Router /article-facts/{id} [get]
func (h *ArticleHandler) GetFactByID(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "Invalid fact ID"})
	}
	fact, err := h.articleService.GetFactByID(c.Request().Context(), id)
	if err != nil {
		return jsonError(c, err)
	}
	return c.JSON(http.StatusOK, fact)
}

// UpdateFact godoc
// @Summary Update an article fact
// @Tags article-facts
// @Accept json
// @Produce json
// @Param id path int true "Fact ID"
// @Param fact body dto.ArticleFactRequest true "Updated fact"
// @Success 200 {object} entity.ArticleFact
// @Failure 404 {object} dto.ErrorResponse
// @Router /article-facts/{id} [put]
func (h *ArticleHandler) UpdateFact(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "Invalid fact ID"})
	}
	var req dto.ArticleFactRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "Invalid request payload"})
	}
	fact, err := h.articleService.UpdateFact(c.Request().Context(), id, &req)
	if err != nil {
		return jsonError(c, err)
	}
	return c.JSON(http.StatusOK, fact)
}

// DeleteFact godoc
// @Summary Delete an article fact
// @Tags article-facts
// @Param id path int true "Fact ID"
// @Success 204
// @Failure 404 {object} dto.ErrorResponse
// @Router /article-facts/{id} [delete]
func (h *ArticleHandler) DeleteFact(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "Invalid fact ID"})
	}
	if err := h.articleService.DeleteFact(c.Request().Context(), id); err != nil {
		return jsonError(c, err)
	}
	return c.NoContent(http.StatusNoContent)
}
