package service

import (
	"context"
	"fmt"

	"myregistry/domain"
	"myregistry/interfaces"

	"github.com/go-kit/log"
	"github.com/go-kit/log/level"
)

// Registry implements interfaces.Registry: the business rules layered over
// the instance store. Register, deregister and heartbeat mutate the store
// and emit lifecycle events; queries read through without side effects.
type Registry struct {
	store    interfaces.Store
	clock    interfaces.TimeProvider
	notifier *Notifier
	metrics  *Metrics
	logger   log.Logger
}

// NewRegistry creates a new Registry over the given store.
func NewRegistry(store interfaces.Store, clock interfaces.TimeProvider, notifier *Notifier, metrics *Metrics, logger log.Logger) *Registry {
	logger = log.WithPrefix(logger, "component", "Registry")
	return &Registry{
		store:    store,
		clock:    clock,
		notifier: notifier,
		metrics:  metrics,
		logger:   logger,
	}
}

// Register validates the descriptor and writes a fresh ACTIVE record with
// registered_at = last_heartbeat_at = now. Registering an already-present
// service_id fully replaces the prior record and resets the heartbeat
// clock; this is how an instance re-announces after a restart.
func (r *Registry) Register(ctx context.Context, descriptor domain.Descriptor) (domain.ServiceInstance, error) {
	if err := validateDescriptor(descriptor); err != nil {
		return domain.ServiceInstance{}, err
	}

	now := r.clock.Now()
	instance := domain.ServiceInstance{
		ServiceName:     descriptor.ServiceName,
		ServiceID:       descriptor.ServiceID,
		Host:            descriptor.Host,
		Port:            descriptor.Port,
		HealthCheckURL:  descriptor.HealthCheckURL,
		Metadata:        cloneMetadata(descriptor.Metadata),
		RegisteredAt:    now,
		LastHeartbeatAt: now,
		Status:          domain.StatusActive,
	}

	if _, exists := r.store.Get(descriptor.ServiceID); exists {
		level.Warn(r.logger).Log(
			"msg", "service already registered, updating",
			"service_id", descriptor.ServiceID,
			"service_name", descriptor.ServiceName,
		)
	} else {
		level.Info(r.logger).Log(
			"msg", "new service registration",
			"service_id", descriptor.ServiceID,
			"service_name", descriptor.ServiceName,
			"addr", fmt.Sprintf("%s:%d", descriptor.Host, descriptor.Port),
		)
	}

	r.store.Put(instance)
	r.metrics.Registrations.Inc()
	r.metrics.ActiveInstances.Set(float64(r.store.Count()))
	r.notifier.Notify(ctx, domain.Event{
		Type:     domain.EventRegistered,
		Instance: instance,
		At:       now,
	})

	return instance, nil
}

// Deregister removes the instance from the store.
// Returns entity_not_found when the id is unknown.
func (r *Registry) Deregister(ctx context.Context, serviceID string) error {
	instance, ok := r.store.Get(serviceID)
	if !ok || !r.store.Remove(serviceID) {
		level.Warn(r.logger).Log("msg", "attempted to deregister non-existent service", "service_id", serviceID)
		return NewEntityNotFoundError(fmt.Sprintf("service with id %s not found", serviceID), nil)
	}

	level.Info(r.logger).Log(
		"msg", "service deregistered",
		"service_id", serviceID,
		"service_name", instance.ServiceName,
	)
	r.metrics.Deregistrations.WithLabelValues(string(domain.ReasonDeregistered)).Inc()
	r.metrics.ActiveInstances.Set(float64(r.store.Count()))
	r.notifier.Notify(ctx, domain.Event{
		Type:     domain.EventDeregistered,
		Reason:   domain.ReasonDeregistered,
		Instance: instance,
		At:       r.clock.Now(),
	})

	return nil
}

// Heartbeat refreshes the instance's liveness clock. Heartbeats never
// create instances: an unknown id returns entity_not_found so the caller
// knows it must re-register.
func (r *Registry) Heartbeat(ctx context.Context, serviceID string) (domain.ServiceInstance, error) {
	instance, ok := r.store.Touch(serviceID, r.clock.Now())
	if !ok {
		level.Warn(r.logger).Log("msg", "heartbeat from unregistered service", "service_id", serviceID)
		return domain.ServiceInstance{}, NewEntityNotFoundError(fmt.Sprintf("service with id %s not registered", serviceID), nil)
	}

	level.Debug(r.logger).Log("msg", "heartbeat received", "service_id", serviceID)
	r.metrics.Heartbeats.Inc()
	return instance, nil
}

// GetByID returns the instance for the given id or entity_not_found.
func (r *Registry) GetByID(serviceID string) (domain.ServiceInstance, error) {
	instance, ok := r.store.Get(serviceID)
	if !ok {
		return domain.ServiceInstance{}, NewEntityNotFoundError(fmt.Sprintf("service with id %s not found", serviceID), nil)
	}
	return instance, nil
}

// ListByName returns every instance of the named service; an unknown name
// yields an empty slice, not an error.
func (r *Registry) ListByName(serviceName string) []domain.ServiceInstance {
	return r.store.ListByName(serviceName)
}

// ListAll returns every registered instance.
func (r *Registry) ListAll() []domain.ServiceInstance {
	return r.store.ListAll()
}

// Count returns the number of registered instances.
func (r *Registry) Count() int {
	return r.store.Count()
}

// validateDescriptor checks the required registration fields.
// Returns bad_parameter on the first violation.
func validateDescriptor(descriptor domain.Descriptor) error {
	if descriptor.ServiceName == "" {
		return NewBadParameterError("service_name is required", nil)
	}
	if descriptor.ServiceID == "" {
		return NewBadParameterError("service_id is required", nil)
	}
	if descriptor.Host == "" {
		return NewBadParameterError("host is required", nil)
	}
	if descriptor.Port < 1 || descriptor.Port > 65535 {
		return NewBadParameterError("port must be between 1 and 65535", nil)
	}
	return nil
}

// cloneMetadata copies the caller's metadata so the stored record never
// aliases request memory.
func cloneMetadata(metadata map[string]string) map[string]string {
	if metadata == nil {
		return map[string]string{}
	}
	clone := make(map[string]string, len(metadata))
	for k, v := range metadata {
		clone[k] = v
	}
	return clone
}
