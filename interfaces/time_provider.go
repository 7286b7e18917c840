package interfaces

import "time"

// TimeProvider supplies the current time for TTL bookkeeping.
// Injected so tests can use a fixed clock instead of time.Now().
//
// Used by service.Registry to stamp registered_at / last_heartbeat_at and
// by service.Sweeper to take the sweep snapshot. Constructed in cmd/main
// as NewTimeProvider(func() time.Time { return time.Now().UTC() }).
type TimeProvider interface {
	// Now returns current time (UTC in prod; in tests — fixed time for
	// deterministic expiry checks).
	Now() time.Time
}
