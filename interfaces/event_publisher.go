package interfaces

import (
	"context"

	"myregistry/domain"
)

// EventPublisher delivers registry lifecycle events to a downstream
// consumer. Publish failures are logged by the notifier and never affect
// the registry operation that produced the event.
//
//go:generate moq -stub -out mock/event_publisher.go -pkg mock . EventPublisher
type EventPublisher interface {
	// Publish delivers one event.
	// Returns:
	// 1) nil on success;
	// 2) internal_server_error when marshalling or delivery fails.
	Publish(ctx context.Context, event domain.Event) error
}
