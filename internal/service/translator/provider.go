package translator

import (
	"context"
	"errors"
	"time"

	"bookshelf/backend/internal/config"
	"bookshelf/backend/internal/network"
)

//go:generate mockgen -destination=../mock/mock_provider.go -package=mock bookshelf/backend/internal/service/translator Provider

// Provider translates a single text through an external service.
type Provider interface {
	// Name returns the provider name.
	Name() string
	// Translate returns text rendered from source into target.
	// A reachable upstream that answers with an unusable payload yields ErrMalformedResponse;
	// transport failures, timeouts and non-2xx statuses yield ErrUpstream.
	Translate(ctx context.Context, text, source, target string) (string, error)
}

// Config holds the configuration for a translation provider.
type Config struct {
	Provider string // libretranslate, openai, anthropic, gemini
	BaseURL  string // required for libretranslate, optional otherwise
	APIKey   string // optional for libretranslate
	Model    string
	Timeout  time.Duration
}

// Provider names.
const (
	ProviderLibreTranslate = "libretranslate"
	ProviderOpenAI         = "openai"
	ProviderAnthropic      = "anthropic"
	ProviderGemini         = "gemini"
)

var (
	ErrMalformedResponse = errors.New("malformed upstream response")
	ErrUpstream          = errors.New("upstream request failed")

	ErrInvalidProvider = errors.New("invalid provider")
	ErrMissingAPIKey   = errors.New("API key is required")
	ErrMissingBaseURL  = errors.New("base URL is required")
	ErrMissingModel    = errors.New("model is required")
)

// NewProvider creates a translation provider based on the config.
func NewProvider(cfg Config, clients *network.ClientFactory) (Provider, error) {
	if clients == nil {
		clients = network.NewClientFactory(nil)
	}

	switch cfg.Provider {
	case "", ProviderLibreTranslate:
		if cfg.BaseURL == "" {
			return nil, ErrMissingBaseURL
		}
		return NewLibreTranslateProvider(cfg.BaseURL, cfg.APIKey, clients, cfg.Timeout), nil
	case ProviderOpenAI:
		if cfg.APIKey == "" {
			return nil, ErrMissingAPIKey
		}
		if cfg.Model == "" {
			return nil, ErrMissingModel
		}
		return NewOpenAIProvider(cfg.APIKey, cfg.BaseURL, cfg.Model, clients, cfg.Timeout), nil
	case ProviderAnthropic:
		if cfg.APIKey == "" {
			return nil, ErrMissingAPIKey
		}
		if cfg.Model == "" {
			return nil, ErrMissingModel
		}
		return NewAnthropicProvider(cfg.APIKey, cfg.BaseURL, cfg.Model, clients, cfg.Timeout), nil
	case ProviderGemini:
		if cfg.APIKey == "" {
			return nil, ErrMissingAPIKey
		}
		if cfg.Model == "" {
			return nil, ErrMissingModel
		}
		p, err := NewGeminiProvider(context.Background(), cfg.APIKey, cfg.BaseURL, cfg.Model, clients, cfg.Timeout)
		if err != nil {
			return nil, err
		}
		return p, nil
	default:
		return nil, ErrInvalidProvider
	}
}

// FromConfig builds the configured provider behind a circuit breaker,
// routing upstream traffic through the configured proxy.
func FromConfig(cfg config.TranslateConfig) (Provider, error) {
	clients := network.NewClientFactory(network.StaticProxy(cfg.ProxyURL))
	p, err := NewProvider(Config{
		Provider: cfg.Provider,
		BaseURL:  cfg.BaseURL,
		APIKey:   cfg.APIKey,
		Model:    cfg.Model,
		Timeout:  cfg.Timeout,
	}, clients)
	if err != nil {
		return nil, err
	}
	return WithBreaker(p, cfg.BreakerFailures, cfg.BreakerCooldown), nil
}
