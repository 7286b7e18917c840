package handlers

import (
	"myregistry/domain"
)

// toServiceInfo converts a domain instance to its API representation.
func toServiceInfo(instance domain.ServiceInstance) ServiceInfo {
	return ServiceInfo{
		ServiceName:     instance.ServiceName,
		ServiceId:       instance.ServiceID,
		Host:            instance.Host,
		Port:            instance.Port,
		HealthCheckUrl:  instance.HealthCheckURL,
		Metadata:        instance.Metadata,
		RegisteredAt:    instance.RegisteredAt,
		LastHeartbeatAt: instance.LastHeartbeatAt,
		Status:          string(instance.Status),
	}
}

// toServicesResponse converts domain instances to the API list response.
func toServicesResponse(instances []domain.ServiceInstance) ServicesResponse {
	out := make([]ServiceInfo, 0, len(instances))
	for _, instance := range instances {
		out = append(out, toServiceInfo(instance))
	}
	return ServicesResponse{Services: out}
}
