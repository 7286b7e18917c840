package handlers

import (
	"myregistry/domain"
	"myregistry/service"
)

// fromRegisterRequest converts RegisterRequest to a domain.Descriptor.
// Field validation happens in the registry, not here.
func fromRegisterRequest(req RegisterRequest) domain.Descriptor {
	return domain.Descriptor{
		ServiceName:    req.ServiceName,
		ServiceID:      req.ServiceId,
		Host:           req.Host,
		Port:           req.Port,
		HealthCheckURL: service.Value(req.HealthCheckUrl),
		Metadata:       service.Value(req.Metadata),
	}
}
