// File: internal/handler/http/catalog_handler.go
package http

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/overskilled/backend-movie-api/internal/catalog"
)

// CatalogHandler exposes the read-only movie catalog.
type CatalogHandler struct {
	catalog *catalog.Service
	logger  *zap.Logger
}

// NewCatalogHandler creates a new CatalogHandler.
func NewCatalogHandler(svc *catalog.Service, logger *zap.Logger) *CatalogHandler {
	return &CatalogHandler{catalog: svc, logger: logger}
}

// List handles GET /movies.
func (h *CatalogHandler) List(c *gin.Context) {
	p, ok := h.pagination(c)
	if !ok {
		return
	}

	page, err := h.catalog.List(c.Request.Context(), p)
	if err != nil {
		RespondWithError(c, err, h.logger)
		return
	}
	c.JSON(http.StatusOK, page)
}

// Search handles GET /movies/search?title=.
func (h *CatalogHandler) Search(c *gin.Context) {
	title := c.Query("title")
	if title == "" {
		c.AbortWithStatusJSON(http.StatusBadRequest, ResponseError{
			Error: "title query parameter is required",
			Code:  "VALIDATION_ERROR",
		})
		return
	}

	p, ok := h.pagination(c)
	if !ok {
		return
	}

	page, err := h.catalog.SearchByTitle(c.Request.Context(), title, p)
	if err != nil {
		RespondWithError(c, err, h.logger)
		return
	}
	c.JSON(http.StatusOK, page)
}

// ByYear handles GET /movies/year/:year.
func (h *CatalogHandler) ByYear(c *gin.Context) {
	year, err := strconv.Atoi(c.Param("year"))
	if err != nil {
		RespondWithValidationError(c, err)
		return
	}

	p, ok := h.pagination(c)
	if !ok {
		return
	}

	page, err := h.catalog.ByYear(c.Request.Context(), year, p)
	if err != nil {
		RespondWithError(c, err, h.logger)
		return
	}
	c.JSON(http.StatusOK, page)
}

// TopRated handles GET /movies/top-rated.
func (h *CatalogHandler) TopRated(c *gin.Context) {
	p, ok := h.pagination(c)
	if !ok {
		return
	}

	page, err := h.catalog.TopRated(c.Request.Context(), p)
	if err != nil {
		RespondWithError(c, err, h.logger)
		return
	}
	c.JSON(http.StatusOK, page)
}

func (h *CatalogHandler) pagination(c *gin.Context) (catalog.Pagination, bool) {
	var p catalog.Pagination
	if err := c.ShouldBindQuery(&p); err != nil {
		RespondWithValidationError(c, err)
		return catalog.Pagination{}, false
	}
	return p, true
}
