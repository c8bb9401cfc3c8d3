package service

import (
	"context"
	"errors"
	"time"

	"bukutamu/internal/domain"
)

var wita = time.FixedZone("WITA", 8*60*60)

func at(y int, m time.Month, d, hh, mm int) time.Time {
	return time.Date(y, m, d, hh, mm, 0, 0, wita)
}

func fixedClock(t time.Time) func() time.Time {
	return func() time.Time { return t }
}

func strPtr(s string) *string { return &s }

func guestAt(t time.Time, satisfaction string) *domain.Guest {
	g := &domain.Guest{
		RegNumber:     "01012024-001",
		FirstName:     "Budi",
		LastName:      "Santoso",
		Origin:        "Dinas Kominfo",
		ContactNumber: "081234567890",
		Purpose:       "Rapat",
		CreatedAt:     t,
	}
	if satisfaction != "" {
		g.Satisfaction = strPtr(satisfaction)
	}
	return g
}

type stubCounter struct {
	count int
	err   error
	since time.Time
}

func (c *stubCounter) CountGuestsSince(_ context.Context, since time.Time) (int, error) {
	c.since = since
	return c.count, c.err
}

var errStoreDown = errors.New("store unavailable")
