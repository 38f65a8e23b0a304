package translator_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"bookshelf/backend/internal/config"
	"bookshelf/backend/internal/network"
	"bookshelf/backend/internal/service/translator"
)

func TestNewProvider(t *testing.T) {
	clients := network.NewClientFactory(nil)

	p, err := translator.NewProvider(translator.Config{BaseURL: "http://localhost:5000"}, clients)
	require.NoError(t, err)
	require.Equal(t, translator.ProviderLibreTranslate, p.Name())

	p, err = translator.NewProvider(translator.Config{Provider: "openai", APIKey: "k", Model: "gpt-4o-mini"}, clients)
	require.NoError(t, err)
	require.Equal(t, translator.ProviderOpenAI, p.Name())

	p, err = translator.NewProvider(translator.Config{Provider: "anthropic", APIKey: "k", Model: "claude-haiku"}, nil)
	require.NoError(t, err)
	require.Equal(t, translator.ProviderAnthropic, p.Name())

	p, err = translator.NewProvider(translator.Config{Provider: "gemini", APIKey: "k", Model: "gemini-2.0-flash"}, clients)
	require.NoError(t, err)
	require.Equal(t, translator.ProviderGemini, p.Name())
}

func TestFromConfig(t *testing.T) {
	p, err := translator.FromConfig(config.TranslateConfig{
		Provider:        "libretranslate",
		BaseURL:         "http://localhost:5000",
		BreakerFailures: 3,
		BreakerCooldown: time.Second,
	})
	require.NoError(t, err)
	require.Equal(t, translator.ProviderLibreTranslate, p.Name())

	_, err = translator.FromConfig(config.TranslateConfig{Provider: "openai"})
	require.ErrorIs(t, err, translator.ErrMissingAPIKey)
}

func TestNewProvider_ConfigErrors(t *testing.T) {
	cases := []struct {
		name string
		cfg  translator.Config
		want error
	}{
		{"libre without url", translator.Config{Provider: "libretranslate"}, translator.ErrMissingBaseURL},
		{"openai without key", translator.Config{Provider: "openai", Model: "m"}, translator.ErrMissingAPIKey},
		{"openai without model", translator.Config{Provider: "openai", APIKey: "k"}, translator.ErrMissingModel},
		{"anthropic without key", translator.Config{Provider: "anthropic", Model: "m"}, translator.ErrMissingAPIKey},
		{"gemini without model", translator.Config{Provider: "gemini", APIKey: "k"}, translator.ErrMissingModel},
		{"unknown", translator.Config{Provider: "babelfish", BaseURL: "x"}, translator.ErrInvalidProvider},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := translator.NewProvider(tc.cfg, nil)
			require.ErrorIs(t, err, tc.want)
		})
	}
}

func TestOpenAIProvider_Translate(t *testing.T) {
	var path string
	var body struct {
		Model    string `json:"model"`
		Messages []struct {
			Role    string `json:"role"`
			Content string `json:"content"`
		} `json:"messages"`
	}
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		path = r.URL.Path
		_ = json.NewDecoder(r.Body).Decode(&body)
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"id":"c1","object":"chat.completion","created":1,"model":"m",
			"choices":[{"index":0,"finish_reason":"stop","message":{"role":"assistant","content":" Hallo \n"}}]}`))
	}))
	defer srv.Close()

	p := translator.NewOpenAIProvider("key", srv.URL+"/v1/", "m", network.NewClientFactory(nil), time.Second)
	out, err := p.Translate(context.Background(), "Hello", "en", "de")
	require.NoError(t, err)
	require.Equal(t, "Hallo", out)

	require.True(t, strings.HasSuffix(path, "/chat/completions"), path)
	require.Equal(t, "m", body.Model)
	require.Len(t, body.Messages, 2)
	require.Equal(t, "system", body.Messages[0].Role)
	require.Contains(t, body.Messages[0].Content, "<target_language>German</target_language>")
	require.Equal(t, "Hello", body.Messages[1].Content)
}

func TestOpenAIProvider_EmptyCompletionIsMalformed(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"id":"c1","object":"chat.completion","created":1,"model":"m","choices":[]}`))
	}))
	defer srv.Close()

	p := translator.NewOpenAIProvider("key", srv.URL+"/v1/", "m", network.NewClientFactory(nil), time.Second)
	_, err := p.Translate(context.Background(), "Hello", "en", "de")
	require.ErrorIs(t, err, translator.ErrMalformedResponse)
}

func TestOpenAIProvider_ServerErrorIsUpstreamFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write([]byte(`{"error":{"message":"boom","type":"server_error"}}`))
	}))
	defer srv.Close()

	p := translator.NewOpenAIProvider("key", srv.URL+"/v1/", "m", network.NewClientFactory(nil), time.Second)
	_, err := p.Translate(context.Background(), "Hello", "en", "de")
	require.ErrorIs(t, err, translator.ErrUpstream)
}

func TestAnthropicProvider_Translate(t *testing.T) {
	var path string
	var body struct {
		Model  string `json:"model"`
		System []struct {
			Text string `json:"text"`
		} `json:"system"`
	}
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		path = r.URL.Path
		_ = json.NewDecoder(r.Body).Decode(&body)
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"id":"msg_1","type":"message","role":"assistant","model":"m",
			"content":[{"type":"thinking","thinking":"hmm","signature":"sig"},{"type":"text","text":" Hallo \n"}],
			"stop_reason":"end_turn","usage":{"input_tokens":3,"output_tokens":2}}`))
	}))
	defer srv.Close()

	p := translator.NewAnthropicProvider("key", srv.URL, "m", network.NewClientFactory(nil), time.Second)
	out, err := p.Translate(context.Background(), "Hello", "en", "de")
	require.NoError(t, err)
	require.Equal(t, "Hallo", out)

	require.True(t, strings.HasSuffix(path, "/messages"), path)
	require.Equal(t, "m", body.Model)
	require.Len(t, body.System, 1)
	require.Contains(t, body.System[0].Text, "<target_language>German</target_language>")
}

func TestAnthropicProvider_NoTextBlockIsMalformed(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"id":"msg_1","type":"message","role":"assistant","model":"m",
			"content":[{"type":"thinking","thinking":"hmm","signature":"sig"},{"type":"text","text":"  "}],
			"stop_reason":"end_turn","usage":{"input_tokens":3,"output_tokens":2}}`))
	}))
	defer srv.Close()

	p := translator.NewAnthropicProvider("key", srv.URL, "m", network.NewClientFactory(nil), time.Second)
	_, err := p.Translate(context.Background(), "Hello", "en", "de")
	require.ErrorIs(t, err, translator.ErrMalformedResponse)
}

func TestAnthropicProvider_ServerErrorIsUpstreamFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write([]byte(`{"type":"error","error":{"type":"api_error","message":"boom"}}`))
	}))
	defer srv.Close()

	p := translator.NewAnthropicProvider("key", srv.URL, "m", network.NewClientFactory(nil), time.Second)
	_, err := p.Translate(context.Background(), "Hello", "en", "de")
	require.ErrorIs(t, err, translator.ErrUpstream)
	require.NotErrorIs(t, err, translator.ErrMalformedResponse)
}

func TestGeminiProvider_Translate(t *testing.T) {
	var path string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		path = r.URL.Path
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"candidates":[{"content":{"role":"model","parts":[{"text":"Bonjour\n"}]}}]}`))
	}))
	defer srv.Close()

	p, err := translator.NewGeminiProvider(context.Background(), "key", srv.URL, "gemini-test", network.NewClientFactory(nil), time.Second)
	require.NoError(t, err)

	out, err := p.Translate(context.Background(), "Hello", "en", "fr")
	require.NoError(t, err)
	require.Equal(t, "Bonjour", out)
	require.Contains(t, path, "gemini-test:generateContent")
}

func TestGeminiProvider_ClientErrorIsUpstreamFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusBadRequest)
		_, _ = w.Write([]byte(`{"error":{"code":400,"message":"bad model","status":"INVALID_ARGUMENT"}}`))
	}))
	defer srv.Close()

	p, err := translator.NewGeminiProvider(context.Background(), "key", srv.URL, "gemini-test", network.NewClientFactory(nil), time.Second)
	require.NoError(t, err)

	_, err = p.Translate(context.Background(), "Hello", "en", "fr")
	require.ErrorIs(t, err, translator.ErrUpstream)
}

func TestTranslatePrompt(t *testing.T) {
	prompt := translator.TranslatePrompt("en", "ja")
	require.Contains(t, prompt, "<source_language>English</source_language>")
	require.Contains(t, prompt, "<target_language>Japanese</target_language>")

	prompt = translator.TranslatePrompt("xx", "yy")
	require.Contains(t, prompt, "<source_language>xx</source_language>")
}

func TestRateLimiter(t *testing.T) {
	limiter := translator.NewRateLimiter(0)
	require.Equal(t, translator.DefaultRateLimit, limiter.Limit())

	limiter = translator.NewRateLimiter(1)
	require.NoError(t, limiter.Wait(context.Background()))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	require.Error(t, limiter.Wait(ctx))
}
