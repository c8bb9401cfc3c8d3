package mqtt

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"bukutamu/internal/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type published struct {
	topic    string
	qos      byte
	retained bool
	payload  []byte
}

type fakePublisher struct {
	sent         []published
	qos          byte
	err          error
	disconnected bool
}

func (f *fakePublisher) Publish(topic string, qos byte, retained bool, payload []byte) error {
	if f.err != nil {
		return f.err
	}
	f.sent = append(f.sent, published{topic, qos, retained, payload})
	return nil
}

func (f *fakePublisher) QoS() byte { return f.qos }

func (f *fakePublisher) IsConnected() bool { return !f.disconnected }

func TestGuestEventPublisher_Publishes(t *testing.T) {
	fp := &fakePublisher{qos: 1}
	p := NewGuestEventPublisher(fp, "bukutamu/guests/registered", zap.NewNop())

	ev := service.GuestEvent{RegNumber: "15032024-001", FullName: "Budi Santoso", Purpose: "Rapat"}
	require.NoError(t, p.NotifyGuestRegistered(context.Background(), ev))

	require.Len(t, fp.sent, 1)
	msg := fp.sent[0]
	assert.Equal(t, "bukutamu/guests/registered", msg.topic)
	assert.Equal(t, byte(1), msg.qos)
	assert.False(t, msg.retained)

	var got service.GuestEvent
	require.NoError(t, json.Unmarshal(msg.payload, &got))
	assert.Equal(t, ev.RegNumber, got.RegNumber)
	assert.Equal(t, ev.FullName, got.FullName)
}

func TestGuestEventPublisher_PublishError(t *testing.T) {
	fp := &fakePublisher{err: errors.New("not connected")}
	p := NewGuestEventPublisher(fp, "t", zap.NewNop())

	err := p.NotifyGuestRegistered(context.Background(), service.GuestEvent{RegNumber: "x"})
	assert.EqualError(t, err, "not connected")
}

func TestGuestEventPublisher_CanceledContext(t *testing.T) {
	fp := &fakePublisher{}
	p := NewGuestEventPublisher(fp, "t", zap.NewNop())
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	assert.ErrorIs(t, p.NotifyGuestRegistered(ctx, service.GuestEvent{}), context.Canceled)
	assert.Empty(t, fp.sent)
}

func TestGuestEventPublisher_NotConnected(t *testing.T) {
	fp := &fakePublisher{disconnected: true}
	p := NewGuestEventPublisher(fp, "t", zap.NewNop())

	err := p.NotifyGuestRegistered(context.Background(), service.GuestEvent{RegNumber: "x"})
	assert.ErrorIs(t, err, ErrNotConnected)
	assert.Empty(t, fp.sent)
}
