package rabbitmq

import (
	"context"
	"encoding/json"
	"fmt"
	"time"
	"wareland-api/internal/contextkeys"
	"wareland-api/internal/contracts"
	"wareland-api/internal/core/port"

	"github.com/google/uuid"
	amqp "github.com/rabbitmq/amqp091-go"
)

const (
	authEventSchemaName    = "AuthEvent"
	authEventSchemaVersion = "1.0.0"
)

// messagePublisher is satisfied by *rabbitmq_producer.Publisher.
type messagePublisher interface {
	Publish(ctx context.Context, routingKey string, msg amqp.Publishing) error
}

// AuthEventsPublisher publishes auth events to a topic exchange, using the
// event type as the routing key.
type AuthEventsPublisher struct {
	producer messagePublisher
	timeout  time.Duration
}

func NewAuthEventsPublisher(producer messagePublisher) (*AuthEventsPublisher, error) {
	if producer == nil {
		return nil, fmt.Errorf("rabbitmq adapter: producer cannot be nil")
	}
	return &AuthEventsPublisher{producer: producer, timeout: 5 * time.Second}, nil
}

func (a *AuthEventsPublisher) Publish(ctx context.Context, event port.AuthEvent) error {
	logger := contextkeys.LoggerFromContext(ctx)
	adapterLogger := logger.WithFields(port.Fields{
		"component":   "AuthEventsPublisher",
		"routing_key": event.Type,
	})

	body, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("rabbitmq adapter: failed to marshal event: %w", err)
	}
	if err := contracts.ValidateEvent(authEventSchemaName, authEventSchemaVersion, body); err != nil {
		adapterLogger.Error("Outgoing event violates its contract", err, nil)
		return fmt.Errorf("rabbitmq adapter: %w", err)
	}

	msg := amqp.Publishing{
		ContentType:  "application/json",
		Body:         body,
		DeliveryMode: amqp.Persistent,
		MessageId:    uuid.NewString(),
		Timestamp:    event.OccurredAt,
		Type:         authEventSchemaName,
		Headers: amqp.Table{
			"x-event-version": authEventSchemaVersion,
		},
	}
	if traceID := contextkeys.TraceIDFromContext(ctx); traceID != "" {
		msg.Headers["x-trace-id"] = traceID
	}

	publishCtx, cancel := context.WithTimeout(ctx, a.timeout)
	defer cancel()

	if err := a.producer.Publish(publishCtx, event.Type, msg); err != nil {
		adapterLogger.Error("Failed to publish auth event", err, nil)
		return fmt.Errorf("rabbitmq adapter: failed to publish %s: %w", event.Type, err)
	}

	adapterLogger.Debug("Auth event published", nil)
	return nil
}

// NoopAuthEventsPublisher is used when no broker is configured.
type NoopAuthEventsPublisher struct{}

func (NoopAuthEventsPublisher) Publish(ctx context.Context, event port.AuthEvent) error {
	return nil
}
