package service

import (
	"context"
	"sync"

	"myregistry/domain"
	"myregistry/interfaces"

	"github.com/go-kit/log"
	"github.com/go-kit/log/level"
)

// Notifier fans registry events out to zero or more publishers. With no
// subscribers it degrades to a no-op, so the registry never couples to
// downstream consumers.
type Notifier struct {
	logger log.Logger

	mu         sync.RWMutex
	publishers []interfaces.EventPublisher
}

// NewNotifier creates a Notifier with no subscribers.
func NewNotifier(logger log.Logger) *Notifier {
	logger = log.WithPrefix(logger, "component", "Notifier")
	return &Notifier{logger: logger}
}

// Subscribe adds a publisher that will receive every subsequent event.
func (n *Notifier) Subscribe(publisher interfaces.EventPublisher) {
	n.mu.Lock()
	defer n.mu.Unlock()

	n.publishers = append(n.publishers, publisher)
}

// Notify delivers the event to every subscriber. Publish errors are logged
// and swallowed: event delivery never affects the registry operation that
// produced the event.
func (n *Notifier) Notify(ctx context.Context, event domain.Event) {
	n.mu.RLock()
	publishers := n.publishers
	n.mu.RUnlock()

	for _, publisher := range publishers {
		if err := publisher.Publish(ctx, event); err != nil {
			level.Warn(n.logger).Log(
				"msg", "failed to publish registry event",
				"event_type", event.Type,
				"service_id", event.Instance.ServiceID,
				"err", err,
			)
		}
	}
}
