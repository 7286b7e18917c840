// Package handlers contains http handlers for myregistry.
package handlers

import (
	"fmt"
	"net/http"
	"time"

	"myregistry/interfaces"
	"myregistry/service"

	"github.com/go-kit/log"
	"github.com/labstack/echo/v4"
)

// SweeperStatus reports whether the expiry sweep loop is alive.
type SweeperStatus interface {
	Running() bool
}

// HTTPServer implements ServerInterface over the registry.
type HTTPServer struct {
	registry      interfaces.Registry
	sweeper       SweeperStatus
	clock         interfaces.TimeProvider
	ttl           time.Duration
	sweepInterval time.Duration
	logger        log.Logger
}

// NewHTTPServer creates a new HTTPServer.
func NewHTTPServer(registry interfaces.Registry, sweeper SweeperStatus, clock interfaces.TimeProvider, ttl, sweepInterval time.Duration, logger log.Logger) *HTTPServer {
	logger = log.WithPrefix(logger, "component", "HTTPServer")
	return &HTTPServer{
		registry:      registry,
		sweeper:       sweeper,
		clock:         clock,
		ttl:           ttl,
		sweepInterval: sweepInterval,
		logger:        logger,
	}
}

// Root (GET /) returns the service banner.
func (h *HTTPServer) Root(ectx echo.Context) error {
	return ectx.JSON(http.StatusOK, RootResponse{
		Service:            "myregistry",
		Status:             "running",
		RegisteredServices: h.registry.Count(),
		Timestamp:          h.clock.Now(),
	})
}

// RegisterService (POST /register) registers or re-registers an instance.
// Returns 201 with the stored representation, 400 on parse/validation error.
func (h *HTTPServer) RegisterService(ectx echo.Context) error {
	var req RegisterRequest
	if err := ectx.Bind(&req); err != nil {
		return service.NewBadParameterError("invalid request body", err)
	}

	ctx := ectx.Request().Context()
	instance, err := h.registry.Register(ctx, fromRegisterRequest(req))
	if err != nil {
		return fmt.Errorf("registerService failed to register instance, err: %w", err)
	}

	return ectx.JSON(http.StatusCreated, toServiceInfo(instance))
}

// DeregisterService (DELETE /deregister/{service_id}) removes an instance.
// Returns 404 when the id is unknown.
func (h *HTTPServer) DeregisterService(ectx echo.Context, serviceId string) error {
	ctx := ectx.Request().Context()
	if err := h.registry.Deregister(ctx, serviceId); err != nil {
		return fmt.Errorf("deregisterService failed for service '%s', err: %w", serviceId, err)
	}

	return ectx.JSON(http.StatusOK, DeregisterResponse{
		Message:   "Service deregistered successfully",
		ServiceId: serviceId,
	})
}

// Heartbeat (POST /heartbeat) refreshes an instance's liveness.
// Returns 404 when the id is unknown: the sender must re-register.
func (h *HTTPServer) Heartbeat(ectx echo.Context) error {
	var req HeartbeatRequest
	if err := ectx.Bind(&req); err != nil {
		return service.NewBadParameterError("invalid request body", err)
	}
	if req.ServiceId == "" {
		return service.NewBadParameterError("service_id is required", nil)
	}

	ctx := ectx.Request().Context()
	instance, err := h.registry.Heartbeat(ctx, req.ServiceId)
	if err != nil {
		return fmt.Errorf("heartbeat failed for service '%s', err: %w", req.ServiceId, err)
	}

	return ectx.JSON(http.StatusOK, HeartbeatResponse{
		Message:   "Heartbeat received",
		ServiceId: instance.ServiceID,
		Timestamp: instance.LastHeartbeatAt,
	})
}

// GetServices (GET /services) lists every registered instance.
func (h *HTTPServer) GetServices(ectx echo.Context) error {
	return ectx.JSON(http.StatusOK, toServicesResponse(h.registry.ListAll()))
}

// GetServicesByName (GET /services/{service_name}) lists one service's
// instances. An unknown name yields 200 with an empty list.
func (h *HTTPServer) GetServicesByName(ectx echo.Context, serviceName string) error {
	return ectx.JSON(http.StatusOK, toServicesResponse(h.registry.ListByName(serviceName)))
}

// GetServiceById (GET /service/{service_id}) returns one instance or 404.
func (h *HTTPServer) GetServiceById(ectx echo.Context, serviceId string) error {
	instance, err := h.registry.GetByID(serviceId)
	if err != nil {
		return fmt.Errorf("getServiceById failed for service '%s', err: %w", serviceId, err)
	}

	return ectx.JSON(http.StatusOK, toServiceInfo(instance))
}

// Health (GET /health) reflects the health of the registry process itself:
// the expiry sweeper must be running for the process to be healthy.
func (h *HTTPServer) Health(ectx echo.Context) error {
	running := h.sweeper.Running()
	status := "healthy"
	statusCode := http.StatusOK
	if !running {
		status = "unhealthy"
		statusCode = http.StatusServiceUnavailable
	}

	return ectx.JSON(statusCode, HealthResponse{
		Status:             status,
		Service:            "myregistry",
		SweeperRunning:     running,
		RegisteredServices: h.registry.Count(),
		Timestamp:          h.clock.Now(),
	})
}

// Stats (GET /stats) reports cheap counts derived from the store.
func (h *HTTPServer) Stats(ectx echo.Context) error {
	instances := h.registry.ListAll()
	names := make(map[string]struct{}, len(instances))
	for _, instance := range instances {
		names[instance.ServiceName] = struct{}{}
	}

	return ectx.JSON(http.StatusOK, StatsResponse{
		TotalInstances:       len(instances),
		DistinctServices:     len(names),
		TtlSeconds:           int(h.ttl / time.Second),
		SweepIntervalSeconds: int(h.sweepInterval / time.Second),
		Timestamp:            h.clock.Now(),
	})
}
