package translator

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"bookshelf/backend/internal/config"
	"bookshelf/backend/internal/network"
)

const (
	defaultTimeout   = 10 * time.Second
	maxResponseBytes = 1 << 20
)

// LibreTranslateProvider talks to a LibreTranslate-compatible /translate endpoint.
type LibreTranslateProvider struct {
	endpoint string
	apiKey   string
	clients  *network.ClientFactory
	timeout  time.Duration
}

type libreRequest struct {
	Q      string `json:"q"`
	Source string `json:"source"`
	Target string `json:"target"`
	Format string `json:"format"`
	APIKey string `json:"api_key,omitempty"`
}

type libreResponse struct {
	TranslatedText *string `json:"translatedText"`
}

// NewLibreTranslateProvider creates a provider posting to baseURL + "/translate".
func NewLibreTranslateProvider(baseURL, apiKey string, clients *network.ClientFactory, timeout time.Duration) *LibreTranslateProvider {
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	return &LibreTranslateProvider{
		endpoint: strings.TrimRight(baseURL, "/") + "/translate",
		apiKey:   apiKey,
		clients:  clients,
		timeout:  timeout,
	}
}

func (p *LibreTranslateProvider) Name() string {
	return ProviderLibreTranslate
}

func (p *LibreTranslateProvider) Translate(ctx context.Context, text, source, target string) (string, error) {
	body, err := json.Marshal(libreRequest{
		Q:      text,
		Source: source,
		Target: target,
		Format: "text",
		APIKey: p.apiKey,
	})
	if err != nil {
		return "", fmt.Errorf("encode request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, p.endpoint, bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrUpstream, err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", config.UserAgent)

	resp, err := p.clients.NewHTTPClient(ctx, p.timeout).Do(req)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrUpstream, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		snippet, _ := io.ReadAll(io.LimitReader(resp.Body, 256))
		return "", fmt.Errorf("%w: status %d: %s", ErrUpstream, resp.StatusCode, strings.TrimSpace(string(snippet)))
	}

	raw, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
	if err != nil {
		return "", fmt.Errorf("%w: read body: %w", ErrUpstream, err)
	}

	var payload libreResponse
	if err := json.Unmarshal(raw, &payload); err != nil {
		return "", fmt.Errorf("%w: %v", ErrMalformedResponse, err)
	}
	if payload.TranslatedText == nil {
		return "", fmt.Errorf("%w: translatedText missing", ErrMalformedResponse)
	}
	return *payload.TranslatedText, nil
}
