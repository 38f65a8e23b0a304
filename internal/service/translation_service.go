package service

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"golang.org/x/sync/errgroup"

	"bookshelf/backend/internal/cache"
	"bookshelf/backend/internal/logger"
	"bookshelf/backend/internal/model"
	"bookshelf/backend/internal/service/translator"
)

// DefaultFetchConcurrency bounds the in-flight upstream calls of one request.
const DefaultFetchConcurrency = 8

// TranslationResult mirrors the shape of the request: one text per input, in input order.
type TranslationResult struct {
	Texts  []string
	Scalar bool
}

type TranslationService interface {
	// Translate resolves every text from cache or upstream. Output order matches input order.
	Translate(ctx context.Context, batch model.TranslationBatch) (TranslationResult, error)
	// Forget drops a single cached translation.
	Forget(ctx context.Context, source, target, text string) error
	// CacheStats reports cache usage.
	CacheStats(ctx context.Context) cache.Stats
	// EvictExpired removes expired cache entries.
	EvictExpired(ctx context.Context) int
}

type translationService struct {
	cache       cache.Cache
	provider    translator.Provider
	limiter     *translator.RateLimiter
	concurrency int
}

// NewTranslationService wires the cache and upstream provider. limiter may be nil.
func NewTranslationService(c cache.Cache, provider translator.Provider, limiter *translator.RateLimiter, concurrency int) TranslationService {
	if concurrency <= 0 {
		concurrency = DefaultFetchConcurrency
	}
	return &translationService{
		cache:       c,
		provider:    provider,
		limiter:     limiter,
		concurrency: concurrency,
	}
}

// TranslationCacheKey builds the cache key for one text. The language tags are
// length-prefixed, so no choice of tags or text can make two tuples share a key.
func TranslationCacheKey(source, target, text string) string {
	return strconv.Itoa(len(source)) + ":" + source + "|" +
		strconv.Itoa(len(target)) + ":" + target + "|" + text
}

// miss is one distinct uncached text and every slot it fills.
type miss struct {
	key     string
	text    string
	indices []int
}

func (s *translationService) Translate(ctx context.Context, batch model.TranslationBatch) (TranslationResult, error) {
	if err := validateBatch(batch); err != nil {
		return TranslationResult{}, err
	}

	results := make([]string, len(batch.Texts))
	var misses []*miss
	pending := make(map[string]*miss)

	for i, text := range batch.Texts {
		key := TranslationCacheKey(batch.Source, batch.Target, text)
		if m, ok := pending[key]; ok {
			m.indices = append(m.indices, i)
			continue
		}
		if val, ok := s.cache.Get(ctx, key); ok {
			results[i] = val
			continue
		}
		m := &miss{key: key, text: text, indices: []int{i}}
		pending[key] = m
		misses = append(misses, m)
	}

	if len(misses) > 0 {
		fetched, err := s.fetchAll(ctx, misses, batch.Source, batch.Target)
		if err != nil {
			logger.Error("translate batch failed", "module", "service", "action", "fetch", "resource", "translation", "result", "failed",
				"provider", s.provider.Name(), "texts", len(batch.Texts), "misses", len(misses), "error", err)
			return TranslationResult{}, fmt.Errorf("%w: %v", ErrUpstreamFailed, err)
		}

		for j, m := range misses {
			if err := s.cache.Set(ctx, m.key, fetched[j]); err != nil {
				logger.Warn("translation cache write failed", "module", "service", "action", "save", "resource", "cache", "result", "failed", "error", err)
			}
			for _, idx := range m.indices {
				results[idx] = fetched[j]
			}
		}
	}

	logger.Debug("translate batch", "module", "service", "action", "fetch", "resource", "translation", "result", "ok",
		"texts", len(batch.Texts), "misses", len(misses), "source", batch.Source, "target", batch.Target)

	return TranslationResult{Texts: results, Scalar: batch.Scalar}, nil
}

// fetchAll resolves every miss concurrently. Each goroutine writes only its own slot.
// The first hard failure cancels the others and nothing is returned.
func (s *translationService) fetchAll(ctx context.Context, misses []*miss, source, target string) ([]string, error) {
	fetched := make([]string, len(misses))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(s.concurrency)

	for j, m := range misses {
		g.Go(func() error {
			val, err := s.fetchOne(gctx, m.text, source, target)
			if err != nil {
				return err
			}
			fetched[j] = val
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return fetched, nil
}

func (s *translationService) fetchOne(ctx context.Context, text, source, target string) (string, error) {
	if s.limiter != nil {
		if err := s.limiter.Wait(ctx); err != nil {
			return "", fmt.Errorf("rate limit: %w", err)
		}
	}

	val, err := s.provider.Translate(ctx, text, source, target)
	if err == nil {
		return val, nil
	}
	if errors.Is(err, translator.ErrMalformedResponse) {
		logger.Warn("malformed translation payload, echoing input", "module", "service", "action", "fetch", "resource", "translation", "result", "degraded",
			"provider", s.provider.Name(), "error", err)
		return text, nil
	}
	return "", err
}

func (s *translationService) Forget(ctx context.Context, source, target, text string) error {
	if err := validateBatch(model.TranslationBatch{Texts: []string{text}, Source: source, Target: target, Scalar: true}); err != nil {
		return err
	}
	if err := s.cache.Delete(ctx, TranslationCacheKey(source, target, text)); err != nil {
		return fmt.Errorf("forget translation: %w", err)
	}
	return nil
}

func (s *translationService) CacheStats(ctx context.Context) cache.Stats {
	return s.cache.Stats(ctx)
}

func (s *translationService) EvictExpired(ctx context.Context) int {
	return s.cache.Evict(ctx)
}

// validateBatch rejects a batch with no texts or an empty language tag.
// An empty list is a present field; a single empty string is not.
func validateBatch(batch model.TranslationBatch) error {
	var missing []string
	if batch.Texts == nil || (batch.Scalar && len(batch.Texts) == 1 && batch.Texts[0] == "") {
		missing = append(missing, "q")
	}
	if strings.TrimSpace(batch.Source) == "" {
		missing = append(missing, "source")
	}
	if strings.TrimSpace(batch.Target) == "" {
		missing = append(missing, "target")
	}
	if len(missing) > 0 {
		return &MissingFieldsError{Fields: missing}
	}
	return nil
}
