package config

import (
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

const (
	AppName    = "Bookshelf"
	AppVersion = "1.0.0"
)

// UserAgent is sent with every upstream translation request.
var UserAgent = AppName + "/" + AppVersion

const envPrefix = "BOOKSHELF_"

// Cache backends.
const (
	CacheBackendMemory = "memory"
	CacheBackendRedis  = "redis"
)

type Config struct {
	Addr        string
	LogLevel    string
	LogFormat   string
	StaticDir   string
	CORSOrigins []string
	NodeID      int64
	Translate   TranslateConfig
	Cache       CacheConfig
}

// TranslateConfig configures the upstream translation provider.
type TranslateConfig struct {
	Provider    string // libretranslate, openai, anthropic, gemini
	BaseURL     string
	APIKey      string
	Model       string
	ProxyURL    string
	Timeout     time.Duration
	QPS         int
	Concurrency int

	// BreakerFailures consecutive upstream failures open the circuit; 0 disables it.
	BreakerFailures int
	BreakerCooldown time.Duration
}

// CacheConfig configures the translation cache.
type CacheConfig struct {
	Backend       string
	TTL           time.Duration
	SweepInterval time.Duration
	RedisURL      string
	KeyPrefix     string
}

// Load reads the configuration from BOOKSHELF_* environment variables.
// A .env file in the working directory is loaded first when present;
// variables already set in the environment win.
func Load() Config {
	_ = godotenv.Load()

	staticDir := getEnv("STATIC_DIR", "")
	if staticDir == "" {
		staticDir = detectStaticDir()
	}

	return Config{
		Addr:        getEnv("ADDR", ":8080"),
		LogLevel:    getEnv("LOG_LEVEL", "info"),
		LogFormat:   strings.ToLower(getEnv("LOG_FORMAT", "text")),
		StaticDir:   filepath.Clean(staticDir),
		CORSOrigins: getEnvList("CORS_ORIGINS", []string{"*"}),
		NodeID:      int64(getEnvInt("NODE_ID", 1)),
		Translate: TranslateConfig{
			Provider:    strings.ToLower(getEnv("TRANSLATE_PROVIDER", "libretranslate")),
			BaseURL:     strings.TrimRight(getEnv("TRANSLATE_URL", "https://libretranslate.com"), "/"),
			APIKey:      getEnv("TRANSLATE_API_KEY", ""),
			Model:       getEnv("TRANSLATE_MODEL", ""),
			ProxyURL:    getEnv("TRANSLATE_PROXY", ""),
			Timeout:     getEnvDuration("TRANSLATE_TIMEOUT", 10*time.Second),
			QPS:         getEnvInt("TRANSLATE_QPS", 10),
			Concurrency: getEnvInt("TRANSLATE_CONCURRENCY", 8),

			BreakerFailures: getEnvInt("TRANSLATE_BREAKER_FAILURES", 5),
			BreakerCooldown: getEnvDuration("TRANSLATE_BREAKER_COOLDOWN", 30*time.Second),
		},
		Cache: CacheConfig{
			Backend:       strings.ToLower(getEnv("CACHE_BACKEND", CacheBackendMemory)),
			TTL:           getEnvDuration("CACHE_TTL", 24*time.Hour),
			SweepInterval: getEnvDuration("CACHE_SWEEP", 10*time.Minute),
			RedisURL:      getEnv("REDIS_URL", "redis://localhost:6379/0"),
			KeyPrefix:     getEnv("CACHE_PREFIX", "bookshelf:tr:"),
		},
	}
}

func getEnv(key, fallback string) string {
	if v := strings.TrimSpace(os.Getenv(envPrefix + key)); v != "" {
		return v
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	v := getEnv(key, "")
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return fallback
	}
	return n
}

func getEnvDuration(key string, fallback time.Duration) time.Duration {
	v := getEnv(key, "")
	if v == "" {
		return fallback
	}
	d, err := time.ParseDuration(v)
	if err != nil || d <= 0 {
		return fallback
	}
	return d
}

func getEnvList(key string, fallback []string) []string {
	v := getEnv(key, "")
	if v == "" {
		return fallback
	}
	var out []string
	for _, part := range strings.Split(v, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	if len(out) == 0 {
		return fallback
	}
	return out
}

func detectStaticDir() string {
	candidates := []string{
		"./frontend/dist",
		"../frontend/dist",
	}
	for _, candidate := range candidates {
		indexPath := filepath.Join(candidate, "index.html")
		if info, err := os.Stat(indexPath); err == nil && !info.IsDir() {
			return candidate
		}
	}
	return "./frontend/dist"
}
