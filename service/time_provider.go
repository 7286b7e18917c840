package service

import (
	"time"

	"myregistry/interfaces"
)

// timeProvider implements interfaces.TimeProvider. It returns the current
// time via the injected now func, so the registry and sweeper share one
// substitutable clock.
type timeProvider struct {
	now func() time.Time
}

// NewTimeProvider creates a TimeProvider that returns time via the given
// now func (in prod — time.Now().UTC, in tests — fixed time). Panics on
// nil now.
func NewTimeProvider(now func() time.Time) interfaces.TimeProvider {
	if now == nil {
		panic("service.time_provider.go: now is required")
	}
	return &timeProvider{now: now}
}

// Now returns current time from the injected function.
func (t *timeProvider) Now() time.Time {
	return t.now()
}
