package domain

import "time"

// InstanceStatus is the lifecycle status of a registered instance.
type InstanceStatus string

const (
	// StatusActive is the status of every instance present in the store.
	StatusActive InstanceStatus = "ACTIVE"
	// StatusExpired marks an instance removed by the expiry sweeper. The
	// status is transient: expired instances are removed, never retained
	// as tombstones, so it only appears on eviction events.
	StatusExpired InstanceStatus = "EXPIRED"
)

// Descriptor carries the caller-supplied fields of a registration request.
// Validated by the registry before an instance is created from it.
type Descriptor struct {
	ServiceName    string
	ServiceID      string
	Host           string
	Port           int
	HealthCheckURL string
	Metadata       map[string]string
}

// ServiceInstance represents a registered instance stored by myregistry.
// Fields match API: service_name, service_id, host, port, health_check_url,
// metadata, registered_at, last_heartbeat_at, status.
type ServiceInstance struct {
	ServiceName     string
	ServiceID       string // unique instance identifier, primary key
	Host            string
	Port            int
	HealthCheckURL  string            // passed through to consumers, never probed
	Metadata        map[string]string // opaque to the registry
	RegisteredAt    time.Time         // set once at creation
	LastHeartbeatAt time.Time         // refreshed on every successful heartbeat
	Status          InstanceStatus
}
