package handlers

import (
	"time"

	"github.com/labstack/echo/v4"
)

// Request and response bodies exchanged by the registry HTTP API.

// RegisterRequest is the body of POST /register.
type RegisterRequest struct {
	ServiceName    string             `json:"service_name"`
	ServiceId      string             `json:"service_id"`
	Host           string             `json:"host"`
	Port           int                `json:"port"`
	HealthCheckUrl *string            `json:"health_check_url,omitempty"`
	Metadata       *map[string]string `json:"metadata,omitempty"`
}

// HeartbeatRequest is the body of POST /heartbeat.
type HeartbeatRequest struct {
	ServiceId string `json:"service_id"`
}

// HeartbeatResponse confirms a received heartbeat.
type HeartbeatResponse struct {
	Message   string    `json:"message"`
	ServiceId string    `json:"service_id"`
	Timestamp time.Time `json:"timestamp"`
}

// DeregisterResponse confirms a deregistration.
type DeregisterResponse struct {
	Message   string `json:"message"`
	ServiceId string `json:"service_id"`
}

// ServiceInfo is the API representation of a registered instance.
type ServiceInfo struct {
	ServiceName     string            `json:"service_name"`
	ServiceId       string            `json:"service_id"`
	Host            string            `json:"host"`
	Port            int               `json:"port"`
	HealthCheckUrl  string            `json:"health_check_url,omitempty"`
	Metadata        map[string]string `json:"metadata"`
	RegisteredAt    time.Time         `json:"registered_at"`
	LastHeartbeatAt time.Time         `json:"last_heartbeat_at"`
	Status          string            `json:"status"`
}

// ServicesResponse wraps a list of instances.
type ServicesResponse struct {
	Services []ServiceInfo `json:"services"`
}

// RootResponse is the GET / banner.
type RootResponse struct {
	Service            string    `json:"service"`
	Status             string    `json:"status"`
	RegisteredServices int       `json:"registered_services"`
	Timestamp          time.Time `json:"timestamp"`
}

// HealthResponse reflects the health of the registry process itself,
// not of registered instances.
type HealthResponse struct {
	Status             string    `json:"status"`
	Service            string    `json:"service"`
	SweeperRunning     bool      `json:"sweeper_running"`
	RegisteredServices int       `json:"registered_services"`
	Timestamp          time.Time `json:"timestamp"`
}

// StatsResponse is the GET /stats payload.
type StatsResponse struct {
	TotalInstances       int       `json:"total_instances"`
	DistinctServices     int       `json:"distinct_services"`
	TtlSeconds           int       `json:"ttl_seconds"`
	SweepIntervalSeconds int       `json:"sweep_interval_seconds"`
	Timestamp            time.Time `json:"timestamp"`
}

// ServerInterface represents all server handlers.
type ServerInterface interface {
	// Root (GET /) returns the service banner.
	Root(ectx echo.Context) error
	// RegisterService (POST /register) registers or re-registers an instance.
	RegisterService(ectx echo.Context) error
	// DeregisterService (DELETE /deregister/{service_id}) removes an instance.
	DeregisterService(ectx echo.Context, serviceId string) error
	// Heartbeat (POST /heartbeat) refreshes an instance's liveness.
	Heartbeat(ectx echo.Context) error
	// GetServices (GET /services) lists every registered instance.
	GetServices(ectx echo.Context) error
	// GetServicesByName (GET /services/{service_name}) lists one service's instances.
	GetServicesByName(ectx echo.Context, serviceName string) error
	// GetServiceById (GET /service/{service_id}) returns one instance.
	GetServiceById(ectx echo.Context, serviceId string) error
	// Health (GET /health) reports registry process health.
	Health(ectx echo.Context) error
	// Stats (GET /stats) reports registry statistics.
	Stats(ectx echo.Context) error
}

// RegisterHandlers adds each server route to the router.
func RegisterHandlers(router *echo.Echo, si ServerInterface) {
	router.GET("/", si.Root)
	router.POST("/register", si.RegisterService)
	router.DELETE("/deregister/:service_id", func(c echo.Context) error {
		return si.DeregisterService(c, c.Param("service_id"))
	})
	router.POST("/heartbeat", si.Heartbeat)
	router.GET("/services", si.GetServices)
	router.GET("/services/:service_name", func(c echo.Context) error {
		return si.GetServicesByName(c, c.Param("service_name"))
	})
	router.GET("/service/:service_id", func(c echo.Context) error {
		return si.GetServiceById(c, c.Param("service_id"))
	})
	router.GET("/health", si.Health)
	router.GET("/stats", si.Stats)
}
