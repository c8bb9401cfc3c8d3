package service

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"
)

// GuestCounter is the slice of the record store the generator needs.
type GuestCounter interface {
	CountGuestsSince(ctx context.Context, since time.Time) (int, error)
}

// RegNumberGenerator derives DDMMYYYY-NNN numbers that restart every calendar month.
// The value is advisory: no lock is taken, so two kiosks may hand out the same number.
type RegNumberGenerator struct {
	counter GuestCounter
	logger  *zap.Logger
}

func NewRegNumberGenerator(counter GuestCounter, logger *zap.Logger) *RegNumberGenerator {
	return &RegNumberGenerator{counter: counter, logger: logger}
}

// Generate never fails; when the monthly count is unavailable it returns DDMMYYYY-ERR.
func (g *RegNumberGenerator) Generate(ctx context.Context, now time.Time) string {
	since := startOfMonth(now)
	count, err := g.counter.CountGuestsSince(ctx, since)
	if err != nil {
		g.logger.Warn("failed to count guests for registration number",
			zap.Time("since", since),
			zap.Error(err),
		)
		return regDatePrefix(now) + "-ERR"
	}
	return FormatRegNumber(now, count+1)
}

// FormatRegNumber pads seq to at least three digits; larger values keep every digit.
func FormatRegNumber(now time.Time, seq int) string {
	return fmt.Sprintf("%s-%03d", regDatePrefix(now), seq)
}

func regDatePrefix(now time.Time) string {
	return fmt.Sprintf("%02d%02d%04d", now.Day(), int(now.Month()), now.Year())
}
