package service

import (
	"context"
	"errors"
	"time"

	"bukutamu/internal/domain"

	"go.uber.org/zap"
)

// GuestEvent is what staff are told about a new visitor.
type GuestEvent struct {
	RegNumber  string    `json:"regNumber"`
	FullName   string    `json:"fullName"`
	Origin     string    `json:"origin"`
	Purpose    string    `json:"purpose"`
	Department string    `json:"bidang,omitempty"`
	CreatedAt  time.Time `json:"createdAt"`
}

// NewGuestEvent projects g onto the fields that leave the service.
func NewGuestEvent(g *domain.Guest) GuestEvent {
	ev := GuestEvent{
		RegNumber: g.RegNumber,
		FullName:  g.FullName(),
		Origin:    g.Origin,
		Purpose:   g.Purpose,
		CreatedAt: g.CreatedAt,
	}
	if g.Department != nil {
		ev.Department = *g.Department
	}
	return ev
}

// Notifier is the admin notification side-channel.
type Notifier interface {
	NotifyGuestRegistered(ctx context.Context, ev GuestEvent) error
}

// NoopNotifier only logs; it stands in while outbound messaging is switched off.
type NoopNotifier struct {
	logger *zap.Logger
}

func NewNoopNotifier(logger *zap.Logger) *NoopNotifier {
	return &NoopNotifier{logger: logger}
}

func (n *NoopNotifier) NotifyGuestRegistered(_ context.Context, ev GuestEvent) error {
	n.logger.Info("Admin notification invoked, but sending is disabled",
		zap.String("reg_number", ev.RegNumber),
	)
	return nil
}

// MultiNotifier fans an event out to every notifier and joins their errors.
type MultiNotifier []Notifier

func (m MultiNotifier) NotifyGuestRegistered(ctx context.Context, ev GuestEvent) error {
	var errs []error
	for _, n := range m {
		if err := n.NotifyGuestRegistered(ctx, ev); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}
