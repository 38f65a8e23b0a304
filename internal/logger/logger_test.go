package logger_test

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/require"

	"bookshelf/backend/internal/logger"
)

func TestParseLevel(t *testing.T) {
	cases := map[string]slog.Level{
		"debug":   slog.LevelDebug,
		"INFO":    slog.LevelInfo,
		"warning": slog.LevelWarn,
		" warn ":  slog.LevelWarn,
		"Error":   slog.LevelError,
		"verbose": slog.LevelInfo,
		"":        slog.LevelInfo,
	}
	for in, want := range cases {
		require.Equal(t, want, logger.ParseLevel(in), "level %q", in)
	}
}

func TestNew_LowercasesLevelAndFilters(t *testing.T) {
	var buf bytes.Buffer
	log := logger.New(&buf, slog.LevelWarn, logger.FormatText)

	log.Info("hidden")
	log.Warn("cache miss", "module", "cache", "result", "failed")

	out := buf.String()
	require.NotContains(t, out, "hidden")
	require.Contains(t, out, "level=warn")
	require.Contains(t, out, "module=cache")
}

func TestNew_JSONFormat(t *testing.T) {
	var buf bytes.Buffer
	log := logger.New(&buf, slog.LevelDebug, "JSON")

	log.Debug("translate batch", "module", "service", "misses", 2)

	var line map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &line))
	require.Equal(t, "debug", line["level"])
	require.Equal(t, "service", line["module"])
	require.Equal(t, float64(2), line["misses"])
}
