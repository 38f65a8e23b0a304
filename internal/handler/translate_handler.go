package handler

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"bookshelf/backend/internal/model"
	"bookshelf/backend/internal/service"
)

var errInvalidQuery = errors.New("q must be a string or an array of strings")

type TranslateHandler struct {
	service service.TranslationService
}

type translateRequest struct {
	// Q is either a string or an array of strings.
	Q      json.RawMessage `json:"q" swaggertype:"string"`
	Source string          `json:"source"`
	Target string          `json:"target"`
}

type translateResponse struct {
	TranslatedText string `json:"translatedText"`
}

func NewTranslateHandler(service service.TranslationService) *TranslateHandler {
	return &TranslateHandler{service: service}
}

func (h *TranslateHandler) RegisterRoutes(g *echo.Group) {
	g.POST("/translate", h.Translate)
	g.GET("/translate/cache", h.CacheStats)
	g.DELETE("/translate/cache", h.Forget)
}

// Translate translates one text or an ordered list of texts.
// @Summary Translate text
// @Description Translates q from source to target. A string q returns {translatedText}; an array q returns an array in the same order. Results are cached for 24 hours.
// @Tags translate
// @Accept json
// @Produce json
// @Param request body translateRequest true "Translate request"
// @Success 200 {object} translateResponse "Scalar input"
// @Success 200 {array} string "Array input"
// @Failure 400 {object} missingFieldsResponse
// @Failure 502 {object} errorResponse
// @Failure 500 {object} errorResponse
// @Router /translate [post]
func (h *TranslateHandler) Translate(c echo.Context) error {
	var req translateRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid request"})
	}

	texts, scalar, err := decodeQuery(req.Q)
	if err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: err.Error()})
	}

	res, err := h.service.Translate(c.Request().Context(), model.TranslationBatch{
		Texts:  texts,
		Source: req.Source,
		Target: req.Target,
		Scalar: scalar,
	})
	if err != nil {
		return writeServiceError(c, err)
	}

	if res.Scalar {
		return c.JSON(http.StatusOK, translateResponse{TranslatedText: res.Texts[0]})
	}
	return c.JSON(http.StatusOK, res.Texts)
}

// CacheStats reports translation cache usage.
// @Summary Translation cache stats
// @Tags translate
// @Produce json
// @Success 200 {object} cache.Stats
// @Router /translate/cache [get]
func (h *TranslateHandler) CacheStats(c echo.Context) error {
	return c.JSON(http.StatusOK, h.service.CacheStats(c.Request().Context()))
}

// Forget removes a single cached translation.
// @Summary Forget cached translation
// @Tags translate
// @Param q query string true "Source text"
// @Param source query string true "Source language"
// @Param target query string true "Target language"
// @Success 204
// @Failure 400 {object} missingFieldsResponse
// @Router /translate/cache [delete]
func (h *TranslateHandler) Forget(c echo.Context) error {
	err := h.service.Forget(c.Request().Context(), c.QueryParam("source"), c.QueryParam("target"), c.QueryParam("q"))
	if err != nil {
		return writeServiceError(c, err)
	}
	return c.NoContent(http.StatusNoContent)
}

// decodeQuery accepts a JSON string or array of strings. An absent or null q
// yields nil texts so the service reports it as missing.
func decodeQuery(raw json.RawMessage) ([]string, bool, error) {
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null")) {
		return nil, false, nil
	}

	switch trimmed[0] {
	case '"':
		var s string
		if err := json.Unmarshal(trimmed, &s); err != nil {
			return nil, false, errInvalidQuery
		}
		return []string{s}, true, nil
	case '[':
		var list []string
		if err := json.Unmarshal(trimmed, &list); err != nil {
			return nil, false, errInvalidQuery
		}
		if list == nil {
			list = []string{}
		}
		return list, false, nil
	default:
		return nil, false, errInvalidQuery
	}
}
