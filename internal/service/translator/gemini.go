package translator

import (
	"context"
	"fmt"
	"strings"
	"time"

	"google.golang.org/genai"

	"bookshelf/backend/internal/network"
)

// GeminiProvider translates through the Gemini generateContent API.
type GeminiProvider struct {
	client *genai.Client
	model  string
}

// NewGeminiProvider creates a Gemini provider. baseURL overrides the API host when set.
func NewGeminiProvider(ctx context.Context, apiKey, baseURL, model string, clients *network.ClientFactory, timeout time.Duration) (*GeminiProvider, error) {
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	cfg := &genai.ClientConfig{
		APIKey:     apiKey,
		Backend:    genai.BackendGeminiAPI,
		HTTPClient: clients.NewHTTPClient(ctx, timeout),
	}
	if baseURL != "" {
		cfg.HTTPOptions = genai.HTTPOptions{BaseURL: baseURL}
	}
	client, err := genai.NewClient(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("create gemini client: %w", err)
	}
	return &GeminiProvider{client: client, model: model}, nil
}

func (p *GeminiProvider) Name() string {
	return ProviderGemini
}

func (p *GeminiProvider) Translate(ctx context.Context, text, source, target string) (string, error) {
	resp, err := p.client.Models.GenerateContent(ctx, p.model, genai.Text(text), &genai.GenerateContentConfig{
		SystemInstruction: genai.NewContentFromText(TranslatePrompt(source, target), genai.RoleUser),
	})
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrUpstream, err)
	}

	out := strings.TrimSpace(resp.Text())
	if out == "" {
		return "", fmt.Errorf("%w: empty candidate", ErrMalformedResponse)
	}
	return out, nil
}
