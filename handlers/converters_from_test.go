package handlers

import (
	"testing"

	"myregistry/domain"
	"myregistry/service"

	"github.com/stretchr/testify/assert"
)

func TestFromRegisterRequest(t *testing.T) {
	tests := []struct {
		name     string
		request  RegisterRequest
		expected domain.Descriptor
	}{
		{
			name: "all fields",
			request: RegisterRequest{
				ServiceName:    "svc-a",
				ServiceId:      "a-1",
				Host:           "10.0.0.1",
				Port:           9000,
				HealthCheckUrl: service.Ptr("/health"),
				Metadata:       service.Ptr(map[string]string{"version": "1.0.0"}),
			},
			expected: domain.Descriptor{
				ServiceName:    "svc-a",
				ServiceID:      "a-1",
				Host:           "10.0.0.1",
				Port:           9000,
				HealthCheckURL: "/health",
				Metadata:       map[string]string{"version": "1.0.0"},
			},
		},
		{
			name: "optional fields omitted",
			request: RegisterRequest{
				ServiceName: "svc-a",
				ServiceId:   "a-1",
				Host:        "10.0.0.1",
				Port:        9000,
			},
			expected: domain.Descriptor{
				ServiceName: "svc-a",
				ServiceID:   "a-1",
				Host:        "10.0.0.1",
				Port:        9000,
			},
		},
		{
			name:     "zero request maps to zero descriptor",
			request:  RegisterRequest{},
			expected: domain.Descriptor{},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, fromRegisterRequest(tt.request))
		})
	}
}
