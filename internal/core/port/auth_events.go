package port

import (
	"context"
	"time"
)

const (
	EventUserRegistered     = "user.registered"
	EventUserLoggedIn       = "user.logged_in"
	EventUserLoggedOut      = "user.logged_out"
	EventUserProfileUpdated = "user.profile_updated"
)

// AuthEvent is published after a successful account operation.
type AuthEvent struct {
	Type       string    `json:"type"`
	Username   string    `json:"username"`
	OccurredAt time.Time `json:"occurred_at"`
}

// AuthEventsPublisherPort delivers auth events to downstream consumers.
// Publishing is best effort: use cases log failures and carry on.
type AuthEventsPublisherPort interface {
	Publish(ctx context.Context, event AuthEvent) error
}
