package http_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/require"

	"bookshelf/backend/internal/cache"
	"bookshelf/backend/internal/handler"
	transport "bookshelf/backend/internal/http"
	"bookshelf/backend/internal/service"
)

type identityProvider struct{}

func (identityProvider) Name() string { return "identity" }

func (identityProvider) Translate(_ context.Context, text, _, _ string) (string, error) {
	return text, nil
}

func newTestRouter(t *testing.T, staticDir string) *echo.Echo {
	t.Helper()
	translations := service.NewTranslationService(cache.NewMemoryCache(0), identityProvider{}, nil, 2)
	return transport.NewRouter(
		handler.NewTranslateHandler(translations),
		handler.NewCatalogHandler(service.NewCatalogService()),
		staticDir,
		[]string{"*"},
	)
}

func serve(e *echo.Echo, req *http.Request) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func TestRouter_Healthz(t *testing.T) {
	e := newTestRouter(t, "")

	rec := serve(e, httptest.NewRequest(http.MethodGet, "/healthz", nil))
	require.Equal(t, http.StatusOK, rec.Code)
	require.JSONEq(t, `{"status":"ok"}`, rec.Body.String())
	require.NotEmpty(t, rec.Header().Get(echo.HeaderXRequestID))
}

func TestRouter_RequestIDsAreUnique(t *testing.T) {
	e := newTestRouter(t, "")

	first := serve(e, httptest.NewRequest(http.MethodGet, "/api/regions", nil)).Header().Get(echo.HeaderXRequestID)
	second := serve(e, httptest.NewRequest(http.MethodGet, "/api/regions", nil)).Header().Get(echo.HeaderXRequestID)
	require.NotEmpty(t, first)
	require.NotEqual(t, first, second)
}

func TestRouter_CORS(t *testing.T) {
	e := newTestRouter(t, "")

	req := httptest.NewRequest(http.MethodPost, "/api/translate", strings.NewReader(`{"q":"hi","source":"en","target":"de"}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	req.Header.Set(echo.HeaderOrigin, "http://localhost:5173")
	rec := serve(e, req)

	require.Equal(t, http.StatusOK, rec.Code)
	require.Equal(t, "*", rec.Header().Get(echo.HeaderAccessControlAllowOrigin))
	require.JSONEq(t, `{"translatedText":"hi"}`, rec.Body.String())
}

func TestRouter_StaticFallback(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "index.html"), []byte("<html>app</html>"), 0o644))
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "assets"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "assets", "app-1a2b.js"), []byte("console.log(1)"), 0o644))

	e := newTestRouter(t, dir)

	rec := serve(e, httptest.NewRequest(http.MethodGet, "/", nil))
	require.Equal(t, http.StatusOK, rec.Code)
	require.Contains(t, rec.Body.String(), "app")

	rec = serve(e, httptest.NewRequest(http.MethodGet, "/books/42", nil))
	require.Equal(t, http.StatusOK, rec.Code)
	require.Contains(t, rec.Body.String(), "<html>")

	rec = serve(e, httptest.NewRequest(http.MethodGet, "/assets/app-1a2b.js", nil))
	require.Equal(t, http.StatusOK, rec.Code)
	require.Equal(t, "console.log(1)", rec.Body.String())
	require.Contains(t, rec.Header().Get("Cache-Control"), "immutable")

	rec = serve(e, httptest.NewRequest(http.MethodGet, "/api/unknown", nil))
	require.Equal(t, http.StatusNotFound, rec.Code)
}
