package http

import (
	nethttp "net/http"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/labstack/echo/v4"

	"bookshelf/backend/internal/logger"
)

// reservedPrefixes never fall back to the SPA index.
var reservedPrefixes = []string{"/api", "/swagger", "/healthz"}

func isReserved(requestPath string) bool {
	for _, p := range reservedPrefixes {
		if requestPath == p || strings.HasPrefix(requestPath, p+"/") {
			return true
		}
	}
	return false
}

// registerStatic serves the built frontend from dir. Unknown paths get
// index.html so client-side routes survive a reload.
func registerStatic(e *echo.Echo, dir string) {
	if dir == "" {
		return
	}
	indexPath := filepath.Join(dir, "index.html")
	if info, err := os.Stat(indexPath); err != nil || info.IsDir() {
		logger.Warn("static index missing", "module", "http", "action", "serve", "resource", "static", "result", "failed", "path", indexPath)
		return
	}
	logger.Info("static assets enabled", "module", "http", "action", "serve", "resource", "static", "result", "ok", "dir", dir)

	fileServer := nethttp.FileServer(nethttp.Dir(dir))

	e.GET("/*", func(c echo.Context) error {
		requestPath := c.Request().URL.Path
		if isReserved(requestPath) {
			return echo.ErrNotFound
		}

		cleanPath := strings.TrimPrefix(path.Clean(requestPath), "/")
		if cleanPath == "." || cleanPath == "" {
			return c.File(indexPath)
		}

		candidate := filepath.Join(dir, cleanPath)
		if info, err := os.Stat(candidate); err == nil && !info.IsDir() {
			// Vite emits content-hashed names under assets/.
			if strings.HasPrefix(cleanPath, "assets/") {
				c.Response().Header().Set("Cache-Control", "public, max-age=31536000, immutable")
			}
			fileServer.ServeHTTP(c.Response(), c.Request())
			return nil
		}

		logger.Debug("static fallback", "module", "http", "action", "serve", "resource", "static", "result", "ok", "path", requestPath)
		return c.File(indexPath)
	})
}
