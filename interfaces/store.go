package interfaces

import (
	"time"

	"myregistry/domain"
)

// Store holds the authoritative set of registered instances, indexed both
// by service_id and by service_name.
//
// Implementations must be safe for concurrent use: every method is atomic
// with respect to the others, readers never observe a half-updated index,
// and no method blocks on network or disk.
type Store interface {
	// Put inserts or overwrites the instance keyed by its ServiceID,
	// updating both indexes atomically. Always succeeds.
	Put(instance domain.ServiceInstance)

	// Get returns the instance for the given id.
	// Returns (zero, false) when the id is unknown.
	Get(serviceID string) (domain.ServiceInstance, bool)

	// Remove deletes the instance from both indexes.
	// Returns false when the id is unknown; that is not an error.
	Remove(serviceID string) bool

	// ListByName returns every instance registered under the given
	// service name. An unknown name yields an empty slice, not an error.
	ListByName(serviceName string) []domain.ServiceInstance

	// ListAll returns every stored instance.
	ListAll() []domain.ServiceInstance

	// Count returns the number of stored instances.
	Count() int

	// Touch sets the instance's LastHeartbeatAt to now without altering
	// any other field. Returns:
	// 1) (updated instance, true) on success;
	// 2) (zero, false) when the id is unknown.
	Touch(serviceID string, now time.Time) (domain.ServiceInstance, bool)

	// Sweep removes and returns every instance whose last heartbeat is
	// strictly older than ttl relative to now. A heartbeat exactly at the
	// boundary (now - last == ttl) is not stale.
	Sweep(now time.Time, ttl time.Duration) []domain.ServiceInstance
}
