package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"time"

	"bukutamu/internal/domain"
	"bukutamu/internal/repository"
	"bukutamu/internal/store"

	"go.uber.org/zap"
)

const (
	// Snapshots live under guestbook:dashboard:{date}:{generation}.
	dashboardKeyPrefix = "guestbook:dashboard:"
	// Bumped by every invalidation. Kept outside the snapshot prefix so the
	// cleanup scan never deletes it.
	dashboardGenKey = "guestbook:dashboard-gen"
)

// DashboardService serves the live statistics panel.
type DashboardService interface {
	GetDashboard(ctx context.Context) (*domain.DashboardSnapshot, error)
	Invalidate(ctx context.Context)
}

type dashboardService struct {
	guestsRepo repository.GuestsRepository
	kv         store.KV // nil disables caching
	ttl        time.Duration
	now        func() time.Time
	logger     *zap.Logger
}

func NewDashboardService(guestsRepo repository.GuestsRepository, kv store.KV, ttl time.Duration, now func() time.Time, logger *zap.Logger) DashboardService {
	if now == nil {
		now = time.Now
	}
	return &dashboardService{
		guestsRepo: guestsRepo,
		kv:         kv,
		ttl:        ttl,
		now:        now,
		logger:     logger,
	}
}

// GetDashboard reads the cache generation before touching the store. A snapshot
// computed across an Invalidate is written under the old generation, which no
// later read looks up.
func (s *dashboardService) GetDashboard(ctx context.Context) (*domain.DashboardSnapshot, error) {
	now := s.now()

	key, cacheable := s.cacheKey(ctx, now)
	if cacheable {
		if snap, ok := s.cached(ctx, key); ok {
			return snap, nil
		}
	}

	guests, err := s.guestsRepo.ListGuestsSince(ctx, startOfMonth(now))
	if err != nil {
		return nil, fmt.Errorf("failed to load guests for dashboard: %w", err)
	}
	snap := AggregateDashboard(guests, now)

	if cacheable {
		if raw, err := json.Marshal(snap); err == nil {
			if err := s.kv.Set(ctx, key, string(raw), s.ttl); err != nil {
				s.logger.Warn("failed to cache dashboard", zap.String("key", key), zap.Error(err))
			}
		}
	}
	return &snap, nil
}

// cacheKey reports false when caching is off or the generation cannot be read.
func (s *dashboardService) cacheKey(ctx context.Context, now time.Time) (string, bool) {
	if s.kv == nil || s.ttl <= 0 {
		return "", false
	}
	gen, err := s.kv.Get(ctx, dashboardGenKey)
	switch {
	case errors.Is(err, store.ErrMiss):
		gen = "0"
	case err != nil:
		s.logger.Warn("dashboard cache generation unavailable, bypassing cache", zap.Error(err))
		return "", false
	}
	if _, err := strconv.ParseInt(gen, 10, 64); err != nil {
		s.logger.Warn("dashboard cache generation is not a number, bypassing cache", zap.String("value", gen))
		return "", false
	}
	return dashboardKeyPrefix + dateKey(now) + ":" + gen, true
}

func (s *dashboardService) cached(ctx context.Context, key string) (*domain.DashboardSnapshot, bool) {
	raw, err := s.kv.Get(ctx, key)
	if err != nil {
		if !errors.Is(err, store.ErrMiss) {
			s.logger.Warn("dashboard cache read failed", zap.String("key", key), zap.Error(err))
		}
		return nil, false
	}
	var snap domain.DashboardSnapshot
	if err := json.Unmarshal([]byte(raw), &snap); err != nil {
		s.logger.Warn("dropping unreadable dashboard cache entry", zap.String("key", key), zap.Error(err))
		_ = s.kv.Del(ctx, key)
		return nil, false
	}
	return &snap, true
}

// Invalidate moves reads to a new generation, then drops the old snapshots.
func (s *dashboardService) Invalidate(ctx context.Context) {
	if s.kv == nil {
		return
	}
	if _, err := s.kv.Incr(ctx, dashboardGenKey); err != nil {
		s.logger.Warn("failed to bump dashboard cache generation", zap.Error(err))
	}
	keys, err := s.kv.ScanKeys(ctx, dashboardKeyPrefix+"*")
	if err != nil {
		s.logger.Warn("failed to scan dashboard cache", zap.Error(err))
		return
	}
	if err := s.kv.Del(ctx, keys...); err != nil {
		s.logger.Warn("failed to invalidate dashboard cache", zap.Int("keys", len(keys)), zap.Error(err))
	}
}
