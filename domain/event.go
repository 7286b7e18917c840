package domain

import "time"

// EventType identifies a registry lifecycle event.
type EventType string

const (
	// EventRegistered is emitted when an instance registers or re-registers.
	EventRegistered EventType = "registered"
	// EventDeregistered is emitted when an instance is removed, explicitly
	// or by the expiry sweeper.
	EventDeregistered EventType = "deregistered"
)

// DeregisterReason says why a deregistered event was emitted.
type DeregisterReason string

const (
	// ReasonDeregistered means the instance removed itself via the API.
	ReasonDeregistered DeregisterReason = "deregistered"
	// ReasonExpired means the expiry sweeper evicted the instance because
	// its last heartbeat fell outside the TTL window.
	ReasonExpired DeregisterReason = "expired"
)

// Event is a registry lifecycle event delivered to subscribers.
type Event struct {
	Type     EventType
	Reason   DeregisterReason // empty for registered events
	Instance ServiceInstance
	At       time.Time
}
