package http

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	echoSwagger "github.com/swaggo/echo-swagger"

	_ "bookshelf/backend/docs"
	"bookshelf/backend/internal/handler"
	"bookshelf/backend/internal/snowflake"
)

func NewRouter(
	translateHandler *handler.TranslateHandler,
	catalogHandler *handler.CatalogHandler,
	staticDir string,
	corsOrigins []string,
) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Use(middleware.Recover())
	e.Use(middleware.RequestIDWithConfig(middleware.RequestIDConfig{
		Generator: snowflake.NextString,
	}))
	e.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins: corsOrigins,
		AllowMethods: []string{http.MethodGet, http.MethodPost, http.MethodDelete, http.MethodOptions},
		AllowHeaders: []string{echo.HeaderOrigin, echo.HeaderContentType, echo.HeaderAccept},
	}))
	e.Use(RequestLoggerMiddleware())

	e.GET("/healthz", func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
	})
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	api := e.Group("/api")
	translateHandler.RegisterRoutes(api)
	catalogHandler.RegisterRoutes(api)

	registerStatic(e, staticDir)

	return e
}
