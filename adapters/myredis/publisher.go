// Package myredis publishes registry lifecycle events on a Redis pub/sub
// channel for downstream consumers (e.g. a notification service).
package myredis

import (
	"context"
	"fmt"

	"myregistry/service"

	"github.com/go-redis/redis/v8"
)

// NewRedisUniversalClient creates a redis client from a redis URL
// (redis://host:port/db).
func NewRedisUniversalClient(addr string) (redis.UniversalClient, error) {
	opts, err := redis.ParseURL(addr)
	if err != nil {
		return nil, fmt.Errorf("invalid redis address %q, err: %w", addr, err)
	}
	return redis.NewClient(opts), nil
}

type redisPublisher[T any] struct {
	client  redis.UniversalClient
	channel string
	marshal func(T) ([]byte, error)
}

// NewPublisher creates redis implementation of the generic event publisher
// interface. Events are marshalled with the given func and published on the
// given channel.
func NewPublisher[T any](client redis.UniversalClient, channel string, marshal func(T) ([]byte, error)) *redisPublisher[T] {
	return &redisPublisher[T]{
		client:  client,
		channel: channel,
		marshal: marshal,
	}
}

func (p *redisPublisher[T]) Publish(ctx context.Context, event T) error {
	bytes, err := p.marshal(event)
	if err != nil {
		return service.NewInternalServerError("Redis marshal event error", fmt.Errorf("can't marshal event of type %T, err: %w", event, err))
	}

	err = p.client.Publish(ctx, p.channel, bytes).Err()
	if err != nil {
		return service.NewInternalServerError("Redis publish error", fmt.Errorf("can't publish event of type %T to channel '%s', err: %w", event, p.channel, err))
	}

	return nil
}
