package service

import (
	"context"
	"sync"
	"time"

	"myregistry/domain"
	"myregistry/interfaces"

	"github.com/go-kit/log"
	"github.com/go-kit/log/level"
)

// Sweeper enforces the liveness invariant: on a fixed interval it evicts
// every instance whose last heartbeat is older than the TTL. It owns a
// single background goroutine started by Start and joined by Stop.
type Sweeper struct {
	store    interfaces.Store
	clock    interfaces.TimeProvider
	notifier *Notifier
	metrics  *Metrics
	ttl      time.Duration
	interval time.Duration
	logger   log.Logger

	mu       sync.Mutex
	doneChan chan chan struct{}
	running  bool
}

// NewSweeper creates a Sweeper with the given TTL and sweep interval.
// An interval <= 0 defaults to ttl/2, so heartbeat senders that beat at
// least twice per TTL window always survive.
func NewSweeper(store interfaces.Store, clock interfaces.TimeProvider, notifier *Notifier, metrics *Metrics, ttl, interval time.Duration, logger log.Logger) *Sweeper {
	if interval <= 0 {
		interval = ttl / 2
	}
	logger = log.WithPrefix(logger, "component", "Sweeper")
	return &Sweeper{
		store:    store,
		clock:    clock,
		notifier: notifier,
		metrics:  metrics,
		ttl:      ttl,
		interval: interval,
		logger:   logger,
	}
}

// Start launches the sweep loop. Calling Start on a running sweeper is a
// no-op.
func (s *Sweeper) Start() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.running {
		return
	}
	s.running = true
	s.doneChan = make(chan chan struct{})

	level.Info(s.logger).Log("msg", "starting expiry sweeper", "ttl", s.ttl, "interval", s.interval)
	go s.loop(s.doneChan)
}

func (s *Sweeper) loop(done chan chan struct{}) {
	ticker := time.NewTicker(s.interval)
	for {
		select {
		case <-ticker.C:
			s.sweepOnce(context.Background())
		case stopped := <-done:
			ticker.Stop()
			close(stopped)
			return
		}
	}
}

// Stop terminates the loop and waits for it to exit. A sweep in progress
// completes before Stop returns, so shutdown never leaves a sweep
// half-applied. Calling Stop on a stopped sweeper is a no-op.
func (s *Sweeper) Stop() {
	s.mu.Lock()
	if !s.running {
		s.mu.Unlock()
		return
	}
	s.running = false
	done := s.doneChan
	s.mu.Unlock()

	stopped := make(chan struct{})
	done <- stopped
	<-stopped
	level.Info(s.logger).Log("msg", "expiry sweeper stopped")
}

// Running reports whether the sweep loop is active. Used by GET /health.
func (s *Sweeper) Running() bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.running
}

// sweepOnce takes one now snapshot and evicts every instance stale against
// it. A heartbeat that committed before the store's write lock was acquired
// always survives the sweep; a heartbeat exactly at the TTL boundary is not
// stale. Returns the number of evicted instances.
func (s *Sweeper) sweepOnce(ctx context.Context) int {
	now := s.clock.Now()
	removed := s.store.Sweep(now, s.ttl)
	for _, instance := range removed {
		level.Info(s.logger).Log(
			"msg", "instance expired",
			"service_id", instance.ServiceID,
			"service_name", instance.ServiceName,
			"last_heartbeat_at", instance.LastHeartbeatAt,
		)
		s.metrics.Deregistrations.WithLabelValues(string(domain.ReasonExpired)).Inc()
		s.notifier.Notify(ctx, domain.Event{
			Type:     domain.EventDeregistered,
			Reason:   domain.ReasonExpired,
			Instance: instance,
			At:       now,
		})
	}
	if len(removed) > 0 {
		s.metrics.ActiveInstances.Set(float64(s.store.Count()))
	}
	return len(removed)
}
