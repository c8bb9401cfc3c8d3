package mqtt

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"bukutamu/internal/service"

	"go.uber.org/zap"
)

// Publisher is the part of the broker client the guest publisher needs.
type Publisher interface {
	Publish(topic string, qos byte, retained bool, payload []byte) error
	QoS() byte
	IsConnected() bool
}

// ErrNotConnected is returned instead of queueing while the broker link is down.
var ErrNotConnected = errors.New("mqtt broker not connected")

// GuestEventPublisher announces each registration on a broker topic
// so that front-desk displays can show the new visitor.
type GuestEventPublisher struct {
	publisher Publisher
	topic     string
	logger    *zap.Logger
}

func NewGuestEventPublisher(publisher Publisher, topic string, logger *zap.Logger) *GuestEventPublisher {
	return &GuestEventPublisher{
		publisher: publisher,
		topic:     topic,
		logger:    logger,
	}
}

var _ service.Notifier = (*GuestEventPublisher)(nil)

// NotifyGuestRegistered publishes ev as JSON. Messages are not retained.
func (p *GuestEventPublisher) NotifyGuestRegistered(ctx context.Context, ev service.GuestEvent) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if !p.publisher.IsConnected() {
		return ErrNotConnected
	}
	payload, err := json.Marshal(ev)
	if err != nil {
		return fmt.Errorf("failed to marshal guest event: %w", err)
	}
	if err := p.publisher.Publish(p.topic, p.publisher.QoS(), false, payload); err != nil {
		return err
	}
	p.logger.Debug("Guest event published",
		zap.String("topic", p.topic),
		zap.String("reg_number", ev.RegNumber),
		zap.Int("payload_size", len(payload)),
	)
	return nil
}
