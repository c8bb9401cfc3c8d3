package repository

import (
	"context"
	"time"

	"bukutamu/internal/domain"
)

// GuestsRepository is the record store behind the kiosk.
// Time bounds are inclusive and compared against created_at.
type GuestsRepository interface {
	// InsertGuest stores g. CreatedAt and GuestID are filled from the store when empty.
	InsertGuest(ctx context.Context, g *domain.Guest) error

	// CountGuestsSince counts rows with created_at >= since.
	CountGuestsSince(ctx context.Context, since time.Time) (int, error)

	// ListGuestsSince returns rows with created_at >= since, newest first.
	ListGuestsSince(ctx context.Context, since time.Time) ([]*domain.Guest, error)

	// ListGuestsInRange returns rows with start <= created_at <= end, newest first.
	ListGuestsInRange(ctx context.Context, start, end time.Time) ([]*domain.Guest, error)
}
