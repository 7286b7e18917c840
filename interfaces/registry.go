package interfaces

import (
	"context"

	"myregistry/domain"
)

// Registry is the business-rule layer over the instance store and the only
// component transport adapters call.
//
//go:generate moq -stub -out mock/registry.go -pkg mock . Registry
type Registry interface {
	// Register validates the descriptor and stores a fresh ACTIVE instance
	// with registered_at = last_heartbeat_at = now.
	// Registering an already-present service_id fully replaces the prior
	// record (including metadata and address) and resets the heartbeat
	// clock. Emits a registered event.
	// Returns:
	// 1) (instance, nil) on success;
	// 2) (zero, bad_parameter) when a required field is empty or the port
	//    is out of range.
	Register(ctx context.Context, descriptor domain.Descriptor) (domain.ServiceInstance, error)

	// Deregister removes the instance and emits a deregistered event.
	// Returns entity_not_found when the id is unknown.
	Deregister(ctx context.Context, serviceID string) error

	// Heartbeat refreshes the instance's liveness. Heartbeats never create
	// instances: an unknown id returns entity_not_found, signaling the
	// caller it must re-register.
	// Returns the refreshed instance on success.
	Heartbeat(ctx context.Context, serviceID string) (domain.ServiceInstance, error)

	// GetByID returns the instance for the given id or entity_not_found.
	GetByID(serviceID string) (domain.ServiceInstance, error)

	// ListByName returns every instance of the named service; an unknown
	// name yields an empty slice, not an error.
	ListByName(serviceName string) []domain.ServiceInstance

	// ListAll returns every registered instance.
	ListAll() []domain.ServiceInstance

	// Count returns the number of registered instances.
	Count() int
}
