package handler

import (
	"math"
	"strconv"
	"strings"

	"github.com/labstack/echo/v4"
)

// queryInt parses an integer query parameter, using fallback when absent or unparsable.
func queryInt(c echo.Context, name string, fallback int) int {
	raw := strings.TrimSpace(c.QueryParam(name))
	if raw == "" {
		return fallback
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return fallback
	}
	return v
}

// queryFloat parses a finite float query parameter, using fallback otherwise.
func queryFloat(c echo.Context, name string, fallback float64) float64 {
	raw := strings.TrimSpace(c.QueryParam(name))
	if raw == "" {
		return fallback
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return fallback
	}
	return v
}

func queryString(c echo.Context, name, fallback string) string {
	if v := strings.TrimSpace(c.QueryParam(name)); v != "" {
		return v
	}
	return fallback
}
