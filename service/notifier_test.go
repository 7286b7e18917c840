package service

import (
	"context"
	"testing"

	"myregistry/domain"
	"myregistry/interfaces/mock"

	"github.com/go-kit/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testEvent() domain.Event {
	return domain.Event{
		Type:     domain.EventRegistered,
		Instance: domain.ServiceInstance{ServiceID: "a-1", ServiceName: "svc-a"},
		At:       testStart,
	}
}

func TestNotifier_NoSubscribers(t *testing.T) {
	n := NewNotifier(log.NewNopLogger())
	// Degrades to a no-op.
	n.Notify(context.Background(), testEvent())
}

func TestNotifier_DeliversToAllSubscribers(t *testing.T) {
	n := NewNotifier(log.NewNopLogger())
	first := &mock.EventPublisherMock{}
	second := &mock.EventPublisherMock{}
	n.Subscribe(first)
	n.Subscribe(second)

	event := testEvent()
	n.Notify(context.Background(), event)

	require.Len(t, first.PublishCalls(), 1)
	require.Len(t, second.PublishCalls(), 1)
	assert.Equal(t, event, first.PublishCalls()[0].Event)
	assert.Equal(t, event, second.PublishCalls()[0].Event)
}

func TestNotifier_PublisherErrorDoesNotStopOthers(t *testing.T) {
	n := NewNotifier(log.NewNopLogger())
	failing := &mock.EventPublisherMock{
		PublishFunc: func(ctx context.Context, event domain.Event) error {
			return assert.AnError
		},
	}
	working := &mock.EventPublisherMock{}
	n.Subscribe(failing)
	n.Subscribe(working)

	n.Notify(context.Background(), testEvent())

	require.Len(t, failing.PublishCalls(), 1)
	require.Len(t, working.PublishCalls(), 1)
}
