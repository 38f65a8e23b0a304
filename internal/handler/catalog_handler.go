package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"bookshelf/backend/internal/catalog"
	"bookshelf/backend/internal/service"
)

type CatalogHandler struct {
	service service.CatalogService
}

func NewCatalogHandler(service service.CatalogService) *CatalogHandler {
	return &CatalogHandler{service: service}
}

func (h *CatalogHandler) RegisterRoutes(g *echo.Group) {
	g.GET("/books", h.ListBooks)
	g.GET("/regions", h.ListRegions)
}

// ListBooks returns one page of synthetic books.
// @Summary List synthetic books
// @Description Returns exactly 20 generated books. Identical parameters reproduce identical books except for id.
// @Tags catalog
// @Produce json
// @Param seed query string false "Seed" default(default)
// @Param page query int false "1-based page" default(1)
// @Param region query string false "Region code (en, de, fr, ja)" default(en)
// @Param likes query number false "Average likes per book" default(0)
// @Param reviews query number false "Average reviews per book" default(0)
// @Success 200 {array} model.BookRecord
// @Failure 500 {object} errorResponse
// @Router /books [get]
func (h *CatalogHandler) ListBooks(c echo.Context) error {
	q := service.CatalogQuery{
		Seed:    queryString(c, "seed", service.DefaultSeed),
		Page:    queryInt(c, "page", 1),
		Region:  queryString(c, "region", catalog.DefaultRegion),
		Likes:   queryFloat(c, "likes", 0),
		Reviews: queryFloat(c, "reviews", 0),
	}

	books, err := h.service.Page(c.Request().Context(), q)
	if err != nil {
		return writeServiceError(c, err)
	}
	return c.JSON(http.StatusOK, books)
}

// ListRegions returns the supported catalog regions.
// @Summary List regions
// @Tags catalog
// @Produce json
// @Success 200 {array} model.Region
// @Router /regions [get]
func (h *CatalogHandler) ListRegions(c echo.Context) error {
	return c.JSON(http.StatusOK, h.service.Regions())
}
