// Package memstore provides the in-memory implementation of the instance store.
//
// The store keeps two indexes over the same records:
//
//	byID:   service_id   -> instance
//	byName: service_name -> set of service_ids
//
// Both are guarded by one RWMutex, so a lookup never observes an instance
// whose indexes are half-updated. Critical sections only mutate the maps;
// no method blocks on network or disk.
package memstore

import (
	"sync"
	"time"

	"myregistry/domain"
)

// Store implements interfaces.Store backed by process memory.
type Store struct {
	mu     sync.RWMutex
	byID   map[string]domain.ServiceInstance
	byName map[string]map[string]struct{}
}

// New creates an empty Store.
func New() *Store {
	return &Store{
		byID:   make(map[string]domain.ServiceInstance),
		byName: make(map[string]map[string]struct{}),
	}
}

// Put inserts or overwrites by ServiceID, keeping both indexes in step.
// Re-registration under a different service_name moves the id between
// name buckets.
func (s *Store) Put(instance domain.ServiceInstance) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if prev, ok := s.byID[instance.ServiceID]; ok && prev.ServiceName != instance.ServiceName {
		s.dropFromNameIndex(prev)
	}
	s.byID[instance.ServiceID] = instance

	ids, ok := s.byName[instance.ServiceName]
	if !ok {
		ids = make(map[string]struct{})
		s.byName[instance.ServiceName] = ids
	}
	ids[instance.ServiceID] = struct{}{}
}

// Get returns the instance for the given id, or (zero, false) if absent.
func (s *Store) Get(serviceID string) (domain.ServiceInstance, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	instance, ok := s.byID[serviceID]
	return instance, ok
}

// Remove deletes the instance from both indexes.
// Returns false if the id is unknown.
func (s *Store) Remove(serviceID string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	instance, ok := s.byID[serviceID]
	if !ok {
		return false
	}
	delete(s.byID, serviceID)
	s.dropFromNameIndex(instance)
	return true
}

// ListByName returns every instance registered under the given name.
// An unknown name yields an empty slice.
func (s *Store) ListByName(serviceName string) []domain.ServiceInstance {
	s.mu.RLock()
	defer s.mu.RUnlock()

	ids := s.byName[serviceName]
	instances := make([]domain.ServiceInstance, 0, len(ids))
	for id := range ids {
		instances = append(instances, s.byID[id])
	}
	return instances
}

// ListAll returns every stored instance.
func (s *Store) ListAll() []domain.ServiceInstance {
	s.mu.RLock()
	defer s.mu.RUnlock()

	instances := make([]domain.ServiceInstance, 0, len(s.byID))
	for _, instance := range s.byID {
		instances = append(instances, instance)
	}
	return instances
}

// Count returns the number of stored instances.
func (s *Store) Count() int {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return len(s.byID)
}

// Touch sets LastHeartbeatAt to now without altering any other field.
// Returns (zero, false) if the id is unknown.
func (s *Store) Touch(serviceID string, now time.Time) (domain.ServiceInstance, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	instance, ok := s.byID[serviceID]
	if !ok {
		return domain.ServiceInstance{}, false
	}
	instance.LastHeartbeatAt = now
	s.byID[serviceID] = instance
	return instance, true
}

// Sweep removes every instance whose last heartbeat is strictly older than
// ttl relative to now. The comparison runs under the write lock against the
// single now snapshot supplied by the caller, so a Touch that committed
// before the lock was acquired always survives. A heartbeat exactly at the
// boundary (now - last == ttl) is not stale.
//
// Removed instances are returned with Status set to EXPIRED.
func (s *Store) Sweep(now time.Time, ttl time.Duration) []domain.ServiceInstance {
	s.mu.Lock()
	defer s.mu.Unlock()

	var removed []domain.ServiceInstance
	for id, instance := range s.byID {
		if now.Sub(instance.LastHeartbeatAt) > ttl {
			delete(s.byID, id)
			s.dropFromNameIndex(instance)
			instance.Status = domain.StatusExpired
			removed = append(removed, instance)
		}
	}
	return removed
}

// dropFromNameIndex removes the instance's id from its name bucket,
// deleting the bucket when it empties. Callers must hold the write lock.
func (s *Store) dropFromNameIndex(instance domain.ServiceInstance) {
	ids, ok := s.byName[instance.ServiceName]
	if !ok {
		return
	}
	delete(ids, instance.ServiceID)
	if len(ids) == 0 {
		delete(s.byName, instance.ServiceName)
	}
}
