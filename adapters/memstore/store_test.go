package memstore

import (
	"fmt"
	"sync"
	"testing"
	"time"

	"myregistry/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func makeInstance(id, name string, ts time.Time) domain.ServiceInstance {
	return domain.ServiceInstance{
		ServiceName:     name,
		ServiceID:       id,
		Host:            "10.0.0.1",
		Port:            9000,
		Metadata:        map[string]string{"zone": "a"},
		RegisteredAt:    ts,
		LastHeartbeatAt: ts,
		Status:          domain.StatusActive,
	}
}

func TestStore_PutGet(t *testing.T) {
	s := New()
	ts := time.Date(2026, 2, 19, 12, 0, 0, 0, time.UTC)

	inst := makeInstance("a-1", "svc-a", ts)
	s.Put(inst)

	got, ok := s.Get("a-1")
	require.True(t, ok)
	assert.Equal(t, inst, got)

	_, ok = s.Get("unknown")
	assert.False(t, ok)
	assert.Equal(t, 1, s.Count())
}

func TestStore_Put_OverwriteSameID(t *testing.T) {
	s := New()
	ts := time.Date(2026, 2, 19, 12, 0, 0, 0, time.UTC)

	s.Put(makeInstance("a-1", "svc-a", ts))

	updated := makeInstance("a-1", "svc-a", ts.Add(time.Minute))
	updated.Host = "10.0.0.2"
	updated.Port = 9001
	s.Put(updated)

	got, ok := s.Get("a-1")
	require.True(t, ok)
	assert.Equal(t, "10.0.0.2", got.Host)
	assert.Equal(t, 9001, got.Port)

	// Same id never yields two entries in the name index.
	byName := s.ListByName("svc-a")
	require.Len(t, byName, 1)
	assert.Equal(t, "a-1", byName[0].ServiceID)
}

func TestStore_Put_RenameMovesNameBucket(t *testing.T) {
	s := New()
	ts := time.Date(2026, 2, 19, 12, 0, 0, 0, time.UTC)

	s.Put(makeInstance("a-1", "svc-a", ts))
	s.Put(makeInstance("a-1", "svc-b", ts))

	assert.Empty(t, s.ListByName("svc-a"))
	byName := s.ListByName("svc-b")
	require.Len(t, byName, 1)
	assert.Equal(t, "a-1", byName[0].ServiceID)
	assert.Equal(t, 1, s.Count())
}

func TestStore_Remove(t *testing.T) {
	s := New()
	ts := time.Date(2026, 2, 19, 12, 0, 0, 0, time.UTC)

	s.Put(makeInstance("a-1", "svc-a", ts))
	s.Put(makeInstance("a-2", "svc-a", ts))

	assert.True(t, s.Remove("a-1"))
	assert.False(t, s.Remove("a-1"))
	assert.False(t, s.Remove("never-existed"))

	_, ok := s.Get("a-1")
	assert.False(t, ok)

	// Removing one leaves exactly the other.
	byName := s.ListByName("svc-a")
	require.Len(t, byName, 1)
	assert.Equal(t, "a-2", byName[0].ServiceID)
}

func TestStore_ListByName(t *testing.T) {
	s := New()
	ts := time.Date(2026, 2, 19, 12, 0, 0, 0, time.UTC)

	s.Put(makeInstance("a-1", "svc-a", ts))
	s.Put(makeInstance("a-2", "svc-a", ts))
	s.Put(makeInstance("b-1", "svc-b", ts))

	byName := s.ListByName("svc-a")
	require.Len(t, byName, 2)
	ids := []string{byName[0].ServiceID, byName[1].ServiceID}
	assert.ElementsMatch(t, []string{"a-1", "a-2"}, ids)

	assert.Empty(t, s.ListByName("unknown"))
	assert.Len(t, s.ListAll(), 3)
}

func TestStore_Touch(t *testing.T) {
	s := New()
	ts := time.Date(2026, 2, 19, 12, 0, 0, 0, time.UTC)

	s.Put(makeInstance("a-1", "svc-a", ts))

	later := ts.Add(10 * time.Second)
	got, ok := s.Touch("a-1", later)
	require.True(t, ok)
	assert.Equal(t, later, got.LastHeartbeatAt)
	// No other field changes.
	assert.Equal(t, ts, got.RegisteredAt)
	assert.Equal(t, "10.0.0.1", got.Host)

	_, ok = s.Touch("unknown", later)
	assert.False(t, ok)
}

func TestStore_Sweep(t *testing.T) {
	ttl := 30 * time.Second
	ts := time.Date(2026, 2, 19, 12, 0, 0, 0, time.UTC)

	t.Run("removes stale, keeps fresh", func(t *testing.T) {
		s := New()
		s.Put(makeInstance("stale", "svc-a", ts))
		fresh := makeInstance("fresh", "svc-a", ts)
		fresh.LastHeartbeatAt = ts.Add(20 * time.Second)
		s.Put(fresh)

		removed := s.Sweep(ts.Add(ttl+time.Second), ttl)
		require.Len(t, removed, 1)
		assert.Equal(t, "stale", removed[0].ServiceID)
		assert.Equal(t, domain.StatusExpired, removed[0].Status)

		_, ok := s.Get("stale")
		assert.False(t, ok)
		byName := s.ListByName("svc-a")
		require.Len(t, byName, 1)
		assert.Equal(t, "fresh", byName[0].ServiceID)
	})

	t.Run("heartbeat exactly at the boundary is not stale", func(t *testing.T) {
		s := New()
		s.Put(makeInstance("a-1", "svc-a", ts))

		removed := s.Sweep(ts.Add(ttl), ttl)
		assert.Empty(t, removed)
		_, ok := s.Get("a-1")
		assert.True(t, ok)

		removed = s.Sweep(ts.Add(ttl+time.Nanosecond), ttl)
		require.Len(t, removed, 1)
	})

	t.Run("nothing stale is a no-op", func(t *testing.T) {
		s := New()
		s.Put(makeInstance("a-1", "svc-a", ts))

		removed := s.Sweep(ts.Add(time.Second), ttl)
		assert.Empty(t, removed)
		assert.Equal(t, 1, s.Count())
	})

	t.Run("empty store", func(t *testing.T) {
		s := New()
		assert.Empty(t, s.Sweep(ts, ttl))
	})
}

func TestStore_ConcurrentAccess(t *testing.T) {
	s := New()
	ts := time.Date(2026, 2, 19, 12, 0, 0, 0, time.UTC)

	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func(n int) {
			defer wg.Done()
			id := fmt.Sprintf("inst-%d", n)
			for j := 0; j < 100; j++ {
				s.Put(makeInstance(id, "svc-a", ts))
				s.Touch(id, ts.Add(time.Duration(j)*time.Millisecond))
				s.Get(id)
				s.ListByName("svc-a")
				s.ListAll()
				s.Sweep(ts, time.Hour)
			}
		}(i)
	}
	wg.Wait()

	// Both indexes reflect exactly the surviving set.
	assert.Equal(t, 16, s.Count())
	assert.Len(t, s.ListByName("svc-a"), 16)
}
