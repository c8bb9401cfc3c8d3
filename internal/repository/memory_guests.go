package repository

import (
	"context"
	"sort"
	"sync"
	"time"

	"bukutamu/internal/domain"

	"github.com/google/uuid"
)

// MemoryGuestsRepo keeps guests in process memory when DB is disabled.
type MemoryGuestsRepo struct {
	mu     sync.RWMutex
	guests []domain.Guest
	now    func() time.Time
}

func NewMemoryGuestsRepo() *MemoryGuestsRepo {
	return &MemoryGuestsRepo{now: time.Now}
}

// NewMemoryGuestsRepoWithClock stamps CreatedAt from now instead of the wall clock.
func NewMemoryGuestsRepoWithClock(now func() time.Time) *MemoryGuestsRepo {
	return &MemoryGuestsRepo{now: now}
}

var _ GuestsRepository = (*MemoryGuestsRepo)(nil)

func (r *MemoryGuestsRepo) InsertGuest(_ context.Context, g *domain.Guest) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if g.GuestID == "" {
		g.GuestID = uuid.NewString()
	}
	if g.CreatedAt.IsZero() {
		g.CreatedAt = r.now()
	}
	r.guests = append(r.guests, *g)
	return nil
}

func (r *MemoryGuestsRepo) CountGuestsSince(_ context.Context, since time.Time) (int, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	n := 0
	for _, g := range r.guests {
		if !g.CreatedAt.Before(since) {
			n++
		}
	}
	return n, nil
}

func (r *MemoryGuestsRepo) ListGuestsSince(_ context.Context, since time.Time) ([]*domain.Guest, error) {
	return r.filter(func(g *domain.Guest) bool {
		return !g.CreatedAt.Before(since)
	}), nil
}

func (r *MemoryGuestsRepo) ListGuestsInRange(_ context.Context, start, end time.Time) ([]*domain.Guest, error) {
	return r.filter(func(g *domain.Guest) bool {
		return !g.CreatedAt.Before(start) && !g.CreatedAt.After(end)
	}), nil
}

func (r *MemoryGuestsRepo) filter(keep func(*domain.Guest) bool) []*domain.Guest {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]*domain.Guest, 0, len(r.guests))
	for i := range r.guests {
		g := r.guests[i]
		if keep(&g) {
			out = append(out, &g)
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	return out
}
