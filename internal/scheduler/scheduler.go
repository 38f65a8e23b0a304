package scheduler

import (
	"context"
	"sync"
	"time"

	"bookshelf/backend/internal/logger"
)

// Evicter drops expired entries and reports how many were removed.
type Evicter interface {
	EvictExpired(ctx context.Context) int
}

// Scheduler periodically sweeps expired translations out of the cache.
type Scheduler struct {
	evicter  Evicter
	interval time.Duration
	stopCh   chan struct{}
	stopOnce sync.Once
	wg       sync.WaitGroup
}

func New(evicter Evicter, interval time.Duration) *Scheduler {
	return &Scheduler{
		evicter:  evicter,
		interval: interval,
		stopCh:   make(chan struct{}),
	}
}

// Start launches the sweep loop. A non-positive interval disables it.
func (s *Scheduler) Start() {
	if s.interval <= 0 {
		logger.Info("cache sweeper disabled", "module", "scheduler", "action", "evict", "resource", "cache", "result", "skipped")
		return
	}
	s.wg.Add(1)
	go s.run()
	logger.Info("cache sweeper started", "module", "scheduler", "action", "evict", "resource", "cache", "result", "ok", "interval_ms", s.interval.Milliseconds())
}

// Stop ends the loop and waits for an in-flight sweep. Safe to call twice.
func (s *Scheduler) Stop() {
	s.stopOnce.Do(func() {
		close(s.stopCh)
		s.wg.Wait()
		logger.Info("cache sweeper stopped", "module", "scheduler", "action", "evict", "resource", "cache", "result", "ok")
	})
}

func (s *Scheduler) run() {
	defer s.wg.Done()

	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			s.sweep()
		case <-s.stopCh:
			return
		}
	}
}

func (s *Scheduler) sweep() {
	ctx, cancel := context.WithTimeout(context.Background(), s.interval)
	defer cancel()

	removed := s.evicter.EvictExpired(ctx)
	if removed > 0 {
		logger.Info("expired translations evicted", "module", "scheduler", "action", "evict", "resource", "cache", "result", "ok", "count", removed)
		return
	}
	logger.Debug("cache sweep found nothing", "module", "scheduler", "action", "evict", "resource", "cache", "result", "ok")
}
