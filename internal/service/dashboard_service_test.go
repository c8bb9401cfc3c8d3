package service

import (
	"context"
	"testing"
	"time"

	"bukutamu/internal/domain"
	"bukutamu/internal/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestDashboardService_WithoutCache(t *testing.T) {
	now := at(2024, time.March, 15, 12, 0)
	repo := repository.NewMemoryGuestsRepo()
	ctx := context.Background()
	require.NoError(t, repo.InsertGuest(ctx, guestAt(at(2024, time.March, 15, 9, 0), "Puas")))
	require.NoError(t, repo.InsertGuest(ctx, guestAt(at(2024, time.March, 2, 9, 0), "")))
	require.NoError(t, repo.InsertGuest(ctx, guestAt(at(2024, time.February, 28, 9, 0), "")))

	svc := NewDashboardService(repo, nil, time.Minute, fixedClock(now), zap.NewNop())
	snap, err := svc.GetDashboard(ctx)
	require.NoError(t, err)

	assert.Equal(t, 1, snap.TodayCount)
	assert.Equal(t, 2, snap.MonthCount)
	assert.Len(t, snap.WeeklyTrend, 7)

	// No-op without a cache.
	svc.Invalidate(ctx)
}

func TestDashboardService_CachesUntilInvalidated(t *testing.T) {
	now := at(2024, time.March, 15, 12, 0)
	repo := repository.NewMemoryGuestsRepo()
	kv, mr := newTestKV(t)
	ctx := context.Background()
	require.NoError(t, repo.InsertGuest(ctx, guestAt(at(2024, time.March, 15, 9, 0), "")))

	svc := NewDashboardService(repo, kv, 30*time.Second, fixedClock(now), zap.NewNop())

	snap, err := svc.GetDashboard(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, snap.TodayCount)
	assert.True(t, mr.Exists("guestbook:dashboard:2024-03-15:0"))
	assert.Equal(t, 30*time.Second, mr.TTL("guestbook:dashboard:2024-03-15:0"))

	require.NoError(t, repo.InsertGuest(ctx, guestAt(at(2024, time.March, 15, 10, 0), "")))

	snap, err = svc.GetDashboard(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, snap.TodayCount, "served from cache")

	svc.Invalidate(ctx)
	assert.False(t, mr.Exists("guestbook:dashboard:2024-03-15:0"))
	gen, err := mr.Get("guestbook:dashboard-gen")
	require.NoError(t, err)
	assert.Equal(t, "1", gen)

	snap, err = svc.GetDashboard(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, snap.TodayCount)
}

func TestDashboardService_CorruptCacheEntry(t *testing.T) {
	now := at(2024, time.March, 15, 12, 0)
	kv, mr := newTestKV(t)
	require.NoError(t, mr.Set("guestbook:dashboard:2024-03-15:0", "not json"))

	svc := NewDashboardService(repository.NewMemoryGuestsRepo(), kv, time.Minute, fixedClock(now), zap.NewNop())
	snap, err := svc.GetDashboard(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 0, snap.MonthCount)
}

// pausingRepo hands control back to the test after the dashboard read has
// loaded its rows and before the snapshot is cached.
type pausingRepo struct {
	repository.GuestsRepository
	loaded  chan struct{}
	release chan struct{}
}

func (p *pausingRepo) ListGuestsSince(ctx context.Context, since time.Time) ([]*domain.Guest, error) {
	guests, err := p.GuestsRepository.ListGuestsSince(ctx, since)
	close(p.loaded)
	<-p.release
	return guests, err
}

func TestDashboardService_InvalidateDuringReadIsNotOverwritten(t *testing.T) {
	now := at(2024, time.March, 15, 12, 0)
	mem := repository.NewMemoryGuestsRepo()
	kv, _ := newTestKV(t)
	ctx := context.Background()

	paused := &pausingRepo{GuestsRepository: mem, loaded: make(chan struct{}), release: make(chan struct{})}
	slow := NewDashboardService(paused, kv, 30*time.Second, fixedClock(now), zap.NewNop())

	done := make(chan *domain.DashboardSnapshot, 1)
	go func() {
		snap, err := slow.GetDashboard(ctx)
		assert.NoError(t, err)
		done <- snap
	}()

	<-paused.loaded
	require.NoError(t, mem.InsertGuest(ctx, guestAt(at(2024, time.March, 15, 11, 0), "")))
	slow.Invalidate(ctx)
	close(paused.release)

	stale := <-done
	require.NotNil(t, stale)
	assert.Equal(t, 0, stale.TodayCount)

	fresh := NewDashboardService(mem, kv, 30*time.Second, fixedClock(now), zap.NewNop())
	snap, err := fresh.GetDashboard(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, snap.TodayCount, "read after a submission must see it")
}

func TestDashboardService_BadGenerationBypassesCache(t *testing.T) {
	now := at(2024, time.March, 15, 12, 0)
	kv, mr := newTestKV(t)
	require.NoError(t, mr.Set("guestbook:dashboard-gen", "abc"))

	svc := NewDashboardService(repository.NewMemoryGuestsRepo(), kv, time.Minute, fixedClock(now), zap.NewNop())
	_, err := svc.GetDashboard(context.Background())
	require.NoError(t, err)
	assert.Len(t, mr.Keys(), 1)
}
