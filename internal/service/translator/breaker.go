package translator

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/sony/gobreaker"

	"bookshelf/backend/internal/logger"
)

// breakerProvider stops calling an upstream that keeps failing and
// lets a single probe through after the cooldown.
type breakerProvider struct {
	next Provider
	cb   *gobreaker.CircuitBreaker
}

// WithBreaker wraps p in a circuit breaker that opens after failures
// consecutive upstream errors. failures <= 0 returns p unchanged.
// Malformed payloads and cancelled calls do not count against the upstream.
func WithBreaker(p Provider, failures int, cooldown time.Duration) Provider {
	if failures <= 0 {
		return p
	}
	threshold := uint32(failures)
	cb := gobreaker.NewCircuitBreaker(gobreaker.Settings{
		Name:        p.Name(),
		MaxRequests: 1,
		Timeout:     cooldown,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= threshold
		},
		IsSuccessful: func(err error) bool {
			return err == nil ||
				errors.Is(err, ErrMalformedResponse) ||
				errors.Is(err, context.Canceled)
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			logger.Warn("translation breaker state changed", "module", "translator", "action", "fetch", "resource", "translation", "result", to.String(),
				"provider", name, "from", from.String(), "to", to.String())
		},
	})
	return &breakerProvider{next: p, cb: cb}
}

func (b *breakerProvider) Name() string {
	return b.next.Name()
}

func (b *breakerProvider) Translate(ctx context.Context, text, source, target string) (string, error) {
	out, err := b.cb.Execute(func() (interface{}, error) {
		out, err := b.next.Translate(ctx, text, source, target)
		// SDK clients do not always keep the context error in the chain.
		if err != nil && errors.Is(ctx.Err(), context.Canceled) && !errors.Is(err, context.Canceled) {
			err = fmt.Errorf("%w: %w", err, context.Canceled)
		}
		return out, err
	})
	if errors.Is(err, gobreaker.ErrOpenState) || errors.Is(err, gobreaker.ErrTooManyRequests) {
		return "", fmt.Errorf("%w: %v", ErrUpstream, err)
	}
	if err != nil {
		return "", err
	}
	return out.(string), nil
}
