package translator_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"bookshelf/backend/internal/network"
	"bookshelf/backend/internal/service/translator"
)

func newLibreServer(t *testing.T, handler http.HandlerFunc) *translator.LibreTranslateProvider {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return translator.NewLibreTranslateProvider(srv.URL+"/", "secret", network.NewClientFactory(nil), time.Second)
}

func TestLibreTranslate_Success(t *testing.T) {
	var got map[string]any
	var path, contentType string
	p := newLibreServer(t, func(w http.ResponseWriter, r *http.Request) {
		path = r.URL.Path
		contentType = r.Header.Get("Content-Type")
		_ = json.NewDecoder(r.Body).Decode(&got)
		_, _ = w.Write([]byte(`{"translatedText":"Hallo Welt"}`))
	})

	out, err := p.Translate(context.Background(), "Hello world", "en", "de")
	require.NoError(t, err)
	require.Equal(t, "Hallo Welt", out)

	require.Equal(t, "/translate", path)
	require.Equal(t, "application/json", contentType)
	require.Equal(t, "Hello world", got["q"])
	require.Equal(t, "en", got["source"])
	require.Equal(t, "de", got["target"])
	require.Equal(t, "text", got["format"])
	require.Equal(t, "secret", got["api_key"])
	require.Equal(t, translator.ProviderLibreTranslate, p.Name())
}

func TestLibreTranslate_EmptyTranslationIsValid(t *testing.T) {
	p := newLibreServer(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"translatedText":""}`))
	})

	out, err := p.Translate(context.Background(), "...", "en", "de")
	require.NoError(t, err)
	require.Empty(t, out)
}

func TestLibreTranslate_MalformedPayloads(t *testing.T) {
	payloads := map[string]string{
		"missing field": `{"detectedLanguage":{"language":"en"}}`,
		"wrong type":    `{"translatedText":42}`,
		"null field":    `{"translatedText":null}`,
		"not json":      `<html>oops</html>`,
		"array":         `["Hallo"]`,
	}
	for name, body := range payloads {
		t.Run(name, func(t *testing.T) {
			p := newLibreServer(t, func(w http.ResponseWriter, r *http.Request) {
				_, _ = w.Write([]byte(body))
			})

			_, err := p.Translate(context.Background(), "Hello", "en", "de")
			require.Error(t, err)
			require.True(t, errors.Is(err, translator.ErrMalformedResponse), "got %v", err)
			require.False(t, errors.Is(err, translator.ErrUpstream))
		})
	}
}

func TestLibreTranslate_ErrorStatusIsUpstreamFailure(t *testing.T) {
	p := newLibreServer(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
		_, _ = w.Write([]byte(`{"error":"Slowdown"}`))
	})

	_, err := p.Translate(context.Background(), "Hello", "en", "de")
	require.ErrorIs(t, err, translator.ErrUpstream)
	require.Contains(t, err.Error(), "429")
}

func TestLibreTranslate_Unreachable(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	url := srv.URL
	srv.Close()

	p := translator.NewLibreTranslateProvider(url, "", network.NewClientFactory(nil), time.Second)
	_, err := p.Translate(context.Background(), "Hello", "en", "de")
	require.ErrorIs(t, err, translator.ErrUpstream)
}

func TestLibreTranslate_Timeout(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-r.Context().Done():
		case <-time.After(2 * time.Second):
		}
	}))
	t.Cleanup(srv.Close)

	p := translator.NewLibreTranslateProvider(srv.URL, "", network.NewClientFactory(nil), 50*time.Millisecond)

	start := time.Now()
	_, err := p.Translate(context.Background(), "Hello", "en", "de")
	require.ErrorIs(t, err, translator.ErrUpstream)
	require.Less(t, time.Since(start), time.Second)
}
