package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"bookshelf/backend/internal/logger"
	"bookshelf/backend/internal/service"
)

type errorResponse struct {
	Error string `json:"error"`
}

type missingFieldsResponse struct {
	Error   string   `json:"error"`
	Missing []string `json:"missing"`
}

func writeServiceError(c echo.Context, err error) error {
	var missing *service.MissingFieldsError
	switch {
	case errors.As(err, &missing):
		return c.JSON(http.StatusBadRequest, missingFieldsResponse{Error: "missing required fields", Missing: missing.Fields})
	case errors.Is(err, service.ErrInvalid):
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid request"})
	case errors.Is(err, service.ErrUpstreamFailed):
		return c.JSON(http.StatusBadGateway, errorResponse{Error: "translation failed"})
	default:
		logger.Error("request failed", "module", "handler", "action", "request", "resource", "http", "result", "failed",
			"method", c.Request().Method, "path", c.Request().URL.Path, "error", err)
		return c.JSON(http.StatusInternalServerError, errorResponse{Error: "internal error"})
	}
}
