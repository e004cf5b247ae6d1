package workers

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"educafric/internal/domain"
	"educafric/internal/service"
)

type refreshJob struct {
	scope domain.ZoneScope
}

// ZoneCacheRefresher keeps the per-scope zone cache warm so that the
// tracking path rarely falls back to postgres. A ticker producer lists the
// active scopes and fans refresh jobs out over a small worker pool.
type ZoneCacheRefresher struct {
	zones    service.SafeZoneRepository
	cache    service.ZoneCacheService
	logger   *slog.Logger
	interval time.Duration
	ttl      time.Duration
	jobs     chan refreshJob
	poolSize int
}

func NewZoneCacheRefresher(
	zones service.SafeZoneRepository,
	cache service.ZoneCacheService,
	logger *slog.Logger,
	interval, ttl time.Duration,
	poolSize int,
) *ZoneCacheRefresher {
	if poolSize <= 0 {
		poolSize = 4
	}
	return &ZoneCacheRefresher{
		zones:    zones,
		cache:    cache,
		logger:   logger,
		interval: interval,
		ttl:      ttl,
		jobs:     make(chan refreshJob, 100),
		poolSize: poolSize,
	}
}

func (w *ZoneCacheRefresher) Run(ctx context.Context) {
	var wg sync.WaitGroup

	for i := 0; i < w.poolSize; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			w.worker(ctx)
		}()
	}

	wg.Add(1)
	go func() {
		defer wg.Done()
		w.producer(ctx)
	}()
	wg.Wait()
}

func (w *ZoneCacheRefresher) producer(ctx context.Context) {
	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			scopes, err := w.zones.ListScopes(ctx)
			if err != nil {
				w.logger.Error("list scopes failed", slog.Any("error", err))
				continue
			}
			for _, sc := range scopes {
				select {
				case w.jobs <- refreshJob{scope: sc}:
				case <-ctx.Done():
					return
				default:
					w.logger.Warn("refresh queue full, skipping scope",
						slog.String("scope_type", string(sc.ScopeType)),
						slog.Int64("scope_id", sc.ScopeID))
				}
			}
		}
	}
}

func (w *ZoneCacheRefresher) worker(ctx context.Context) {
	for {
		select {
		case <-ctx.Done():
			return
		case job := <-w.jobs:
			w.refresh(ctx, job.scope)
		}
	}
}

func (w *ZoneCacheRefresher) refresh(ctx context.Context, sc domain.ZoneScope) {
	zones, err := w.zones.ListActiveForScope(ctx, sc.ScopeType, sc.ScopeID)
	if err != nil {
		w.logger.Error("zone refresh load failed",
			slog.String("scope_type", string(sc.ScopeType)),
			slog.Int64("scope_id", sc.ScopeID),
			slog.Any("error", err))
		return
	}

	if err := w.cache.SetScope(ctx, sc.ScopeType, sc.ScopeID, zones, w.ttl); err != nil {
		w.logger.Error("zone refresh cache write failed",
			slog.String("scope_type", string(sc.ScopeType)),
			slog.Int64("scope_id", sc.ScopeID),
			slog.Any("error", err))
		return
	}

	w.logger.Debug("zone cache refreshed",
		slog.String("scope_type", string(sc.ScopeType)),
		slog.Int64("scope_id", sc.ScopeID),
		slog.Int("zones", len(zones)))
}
