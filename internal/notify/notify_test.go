package notify_test

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"testing"

	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"mwtrack/internal/domain"
	"mwtrack/internal/notify"
)

type MockPublisher struct {
	mock.Mock
}

func (m *MockPublisher) PublishWithContext(
	ctx context.Context, exchange, key string, mandatory, immediate bool, msg amqp.Publishing,
) error {
	return m.Called(ctx, exchange, key, mandatory, immediate, msg).Error(0)
}

type failing struct{ err error }

func (f failing) Notify(context.Context, domain.Notification) error { return f.err }

var sample = domain.Notification{
	Title:       "Actualización de Pedido",
	Body:        "El pedido 4100 ha recibido una actualización.",
	OrderNumber: "4100",
}

func TestWriter(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, notify.NewWriter(&buf).Notify(t.Context(), sample))
	assert.Equal(t, "Actualización de Pedido: El pedido 4100 ha recibido una actualización.\n", buf.String())
}

func TestMulti(t *testing.T) {
	var buf bytes.Buffer
	errA := errors.New("a down")
	m := notify.Multi{failing{errA}, notify.NewWriter(&buf)}

	err := m.Notify(t.Context(), sample)
	require.ErrorIs(t, err, errA)
	assert.NotEmpty(t, buf.String(), "later notifiers still run")

	assert.NoError(t, notify.Multi(nil).Notify(t.Context(), sample))
}

func TestAMQP_Message(t *testing.T) {
	a := notify.NewAMQP(new(MockPublisher), "", "device-1")

	msg, err := a.Message(sample)
	require.NoError(t, err)
	assert.Equal(t, "application/json", msg.ContentType)
	assert.Equal(t, amqp.Persistent, msg.DeliveryMode)
	assert.Equal(t, "device-1", msg.Headers["device_id"])
	assert.Equal(t, "4100", msg.Headers["order_number"])
	assert.False(t, msg.Timestamp.IsZero())

	var got domain.Notification
	require.NoError(t, json.Unmarshal(msg.Body, &got))
	assert.Equal(t, sample, got)
}

func TestAMQP_Notify(t *testing.T) {
	pub := new(MockPublisher)
	pub.On("PublishWithContext", mock.Anything, notify.DefaultExchange, notify.TrackingRoutingKey,
		false, false, mock.IsType(amqp.Publishing{})).Return(nil).Once()

	a := notify.NewAMQP(pub, "", "device-1")
	require.NoError(t, a.Notify(t.Context(), sample))
	pub.AssertExpectations(t)
	require.NoError(t, a.Close())
}

func TestAMQP_NotifyError(t *testing.T) {
	pub := new(MockPublisher)
	boom := errors.New("channel closed")
	pub.On("PublishWithContext", mock.Anything, "custom", notify.TrackingRoutingKey,
		false, false, mock.Anything).Return(boom)

	err := notify.NewAMQP(pub, "custom", "").Notify(t.Context(), sample)
	require.ErrorIs(t, err, boom)
}
