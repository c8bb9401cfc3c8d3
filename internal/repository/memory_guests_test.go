package repository

import (
	"context"
	"testing"
	"time"

	"bukutamu/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryGuestsRepo_InsertAndQuery(t *testing.T) {
	ctx := context.Background()
	clock := time.Date(2026, 10, 16, 8, 0, 0, 0, time.UTC)
	repo := NewMemoryGuestsRepoWithClock(func() time.Time { return clock })

	old := &domain.Guest{FirstName: "Old", CreatedAt: time.Date(2026, 9, 30, 23, 0, 0, 0, time.UTC)}
	require.NoError(t, repo.InsertGuest(ctx, old))

	first := &domain.Guest{FirstName: "First"}
	require.NoError(t, repo.InsertGuest(ctx, first))
	assert.NotEmpty(t, first.GuestID)
	assert.Equal(t, clock, first.CreatedAt)

	clock = clock.Add(time.Hour)
	second := &domain.Guest{FirstName: "Second"}
	require.NoError(t, repo.InsertGuest(ctx, second))

	monthStart := time.Date(2026, 10, 1, 0, 0, 0, 0, time.UTC)
	n, err := repo.CountGuestsSince(ctx, monthStart)
	require.NoError(t, err)
	assert.Equal(t, 2, n)

	since, err := repo.ListGuestsSince(ctx, monthStart)
	require.NoError(t, err)
	require.Len(t, since, 2)
	assert.Equal(t, "Second", since[0].FirstName)
	assert.Equal(t, "First", since[1].FirstName)

	inRange, err := repo.ListGuestsInRange(ctx,
		time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC),
		time.Date(2026, 9, 30, 23, 59, 59, 999000000, time.UTC))
	require.NoError(t, err)
	require.Len(t, inRange, 1)
	assert.Equal(t, "Old", inRange[0].FirstName)
}

func TestMemoryGuestsRepo_RangeBoundsInclusive(t *testing.T) {
	ctx := context.Background()
	repo := NewMemoryGuestsRepo()

	start := time.Date(2026, 2, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2026, 2, 28, 23, 59, 59, 999000000, time.UTC)
	require.NoError(t, repo.InsertGuest(ctx, &domain.Guest{FirstName: "start", CreatedAt: start}))
	require.NoError(t, repo.InsertGuest(ctx, &domain.Guest{FirstName: "end", CreatedAt: end}))
	require.NoError(t, repo.InsertGuest(ctx, &domain.Guest{FirstName: "march", CreatedAt: end.Add(time.Millisecond)}))

	out, err := repo.ListGuestsInRange(ctx, start, end)
	require.NoError(t, err)
	require.Len(t, out, 2)
	assert.Equal(t, "end", out[0].FirstName)
	assert.Equal(t, "start", out[1].FirstName)
}
