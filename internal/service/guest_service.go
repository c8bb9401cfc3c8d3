package service

import (
	"context"
	"fmt"
	"time"

	"bukutamu/internal/domain"
	"bukutamu/internal/repository"
	"bukutamu/internal/store"

	"go.uber.org/zap"
)

const (
	submissionKeyPrefix = "guestbook:submission:"
	submissionKeyTTL    = 10 * time.Minute
)

// GuestService handles kiosk registrations.
type GuestService interface {
	// NextRegNumber is the advisory number shown on an empty form.
	NextRegNumber(ctx context.Context) string

	// Register validates and stores a visit, then refreshes derived state.
	Register(ctx context.Context, req RegisterGuestRequest) (*RegisterGuestResponse, error)
}

// RegisterGuestRequest carries one form submission.
type RegisterGuestRequest struct {
	Form RegistrationForm
	// IdempotencyKey is optional; a repeated key is rejected with ErrDuplicateSubmission.
	IdempotencyKey string
}

// RegisterGuestResponse returns the stored guest and the number for the next form.
type RegisterGuestResponse struct {
	Guest         *domain.Guest `json:"guest"`
	NextRegNumber string        `json:"nextRegNumber"`
}

// DashboardInvalidator drops any cached dashboard after a write.
type DashboardInvalidator interface {
	Invalidate(ctx context.Context)
}

type guestService struct {
	guestsRepo repository.GuestsRepository
	regNumbers *RegNumberGenerator
	dashboard  DashboardInvalidator
	notifier   Notifier
	kv         store.KV // nil disables the idempotency guard
	now        func() time.Time
	logger     *zap.Logger
}

// GuestServiceDeps groups the collaborators of NewGuestService.
type GuestServiceDeps struct {
	GuestsRepo repository.GuestsRepository
	Dashboard  DashboardInvalidator
	Notifier   Notifier
	KV         store.KV
	Now        func() time.Time
	Logger     *zap.Logger
}

func NewGuestService(deps GuestServiceDeps) GuestService {
	s := &guestService{
		guestsRepo: deps.GuestsRepo,
		regNumbers: NewRegNumberGenerator(deps.GuestsRepo, deps.Logger),
		dashboard:  deps.Dashboard,
		notifier:   deps.Notifier,
		kv:         deps.KV,
		now:        deps.Now,
		logger:     deps.Logger,
	}
	if s.now == nil {
		s.now = time.Now
	}
	if s.notifier == nil {
		s.notifier = NewNoopNotifier(deps.Logger)
	}
	return s
}

func (s *guestService) NextRegNumber(ctx context.Context) string {
	return s.regNumbers.Generate(ctx, s.now())
}

func (s *guestService) Register(ctx context.Context, req RegisterGuestRequest) (*RegisterGuestResponse, error) {
	form := req.Form.Normalize()
	if err := form.Validate(); err != nil {
		return nil, err
	}

	key := ""
	if req.IdempotencyKey != "" && s.kv != nil {
		key = submissionKeyPrefix + req.IdempotencyKey
		ok, err := s.kv.SetNX(ctx, key, "1", submissionKeyTTL)
		switch {
		case err != nil:
			s.logger.Warn("idempotency guard unavailable, accepting submission", zap.Error(err))
			key = ""
		case !ok:
			return nil, ErrDuplicateSubmission
		}
	}

	regNumber := form.RegNumber
	if regNumber == "" {
		regNumber = s.regNumbers.Generate(ctx, s.now())
	}

	guest := form.ToGuest(regNumber)
	if err := s.guestsRepo.InsertGuest(ctx, guest); err != nil {
		s.logger.Error("failed to insert guest",
			zap.String("reg_number", regNumber),
			zap.Error(err),
		)
		if key != "" {
			// Let the kiosk resubmit the same form.
			_ = s.kv.Del(ctx, key)
		}
		return nil, fmt.Errorf("failed to register guest: %w", err)
	}

	s.logger.Info("guest registered",
		zap.String("guest_id", guest.GuestID),
		zap.String("reg_number", guest.RegNumber),
		zap.String("purpose", guest.Purpose),
	)

	if s.dashboard != nil {
		s.dashboard.Invalidate(ctx)
	}
	if err := s.notifier.NotifyGuestRegistered(ctx, NewGuestEvent(guest)); err != nil {
		s.logger.Warn("admin notification failed", zap.String("reg_number", guest.RegNumber), zap.Error(err))
	}

	return &RegisterGuestResponse{
		Guest:         guest,
		NextRegNumber: s.regNumbers.Generate(ctx, s.now()),
	}, nil
}
