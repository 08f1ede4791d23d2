package notify

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"

	"mwtrack/internal/domain"
)

// Defaults for the tracking exchange.
const (
	DefaultExchange    = "tracking_exchange"
	TrackingRoutingKey = "tracking.update"
)

// Publisher is the part of an AMQP channel the notifier uses.
type Publisher interface {
	PublishWithContext(
		ctx context.Context,
		exchange, key string,
		mandatory, immediate bool,
		msg amqp.Publishing,
	) error
}

// AMQP publishes notifications as persistent JSON messages on a topic
// exchange.
type AMQP struct {
	pub      Publisher
	exchange string
	deviceID string
	now      func() time.Time

	closers []func() error
}

var _ domain.Notifier = (*AMQP)(nil)

// NewAMQP returns a notifier publishing through pub. deviceID identifies
// this client in the published messages.
func NewAMQP(pub Publisher, exchange, deviceID string) *AMQP {
	if exchange == "" {
		exchange = DefaultExchange
	}
	return &AMQP{pub: pub, exchange: exchange, deviceID: deviceID, now: time.Now}
}

// DialAMQP connects to the broker at url and declares the exchange.
func DialAMQP(url, exchange, deviceID string) (*AMQP, error) {
	const op = "notify.DialAMQP"

	if exchange == "" {
		exchange = DefaultExchange
	}
	conn, err := amqp.Dial(url)
	if err != nil {
		return nil, fmt.Errorf("%s: connect: %w", op, err)
	}
	ch, err := conn.Channel()
	if err != nil {
		conn.Close()
		return nil, fmt.Errorf("%s: open channel: %w", op, err)
	}
	err = ch.ExchangeDeclare(
		exchange,
		"topic",
		true,  // durable
		false, // auto-deleted
		false, // internal
		false, // no-wait
		nil,
	)
	if err != nil {
		ch.Close()
		conn.Close()
		return nil, fmt.Errorf("%s: declare exchange %s: %w", op, exchange, err)
	}

	n := NewAMQP(ch, exchange, deviceID)
	n.closers = []func() error{ch.Close, conn.Close}
	return n, nil
}

// Notify publishes n under the tracking routing key.
func (a *AMQP) Notify(ctx context.Context, n domain.Notification) error {
	msg, err := a.Message(n)
	if err != nil {
		return err
	}
	err = a.pub.PublishWithContext(ctx, a.exchange, TrackingRoutingKey, false, false, msg)
	if err != nil {
		return fmt.Errorf("publish to %s/%s: %w", a.exchange, TrackingRoutingKey, err)
	}
	slog.Debug("notification published", "op", "notify.AMQP", "order", n.OrderNumber)
	return nil
}

// Message builds the publishing for n.
func (a *AMQP) Message(n domain.Notification) (amqp.Publishing, error) {
	body, err := json.Marshal(n)
	if err != nil {
		return amqp.Publishing{}, fmt.Errorf("encode notification: %w", err)
	}
	return amqp.Publishing{
		ContentType:  "application/json",
		DeliveryMode: amqp.Persistent,
		Timestamp:    a.now(),
		AppId:        "mwtrack",
		Headers:      amqp.Table{"device_id": a.deviceID, "order_number": string(n.OrderNumber)},
		Body:         body,
	}, nil
}

// Close closes the channel and connection opened by DialAMQP.
func (a *AMQP) Close() error {
	var first error
	for _, c := range a.closers {
		if err := c(); err != nil && first == nil {
			first = err
		}
	}
	a.closers = nil
	return first
}
