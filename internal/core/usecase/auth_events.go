package usecase

import (
	"context"
	"time"
	"wareland-api/internal/core/port"
)

// publishAuthEvent is best effort: a broker outage must not fail the request.
func publishAuthEvent(ctx context.Context, publisher port.AuthEventsPublisherPort, logger port.LoggerPort, eventType, username string) {
	if publisher == nil {
		return
	}
	event := port.AuthEvent{
		Type:       eventType,
		Username:   username,
		OccurredAt: time.Now().UTC(),
	}
	if err := publisher.Publish(ctx, event); err != nil {
		logger.Warn("Failed to publish auth event", port.Fields{"event_type": eventType, "error": err.Error()})
	}
}
