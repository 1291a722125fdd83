package cache

import (
	"context"
	"errors"
	"sync"
	"time"

	"golang.org/x/sync/singleflight"
)

type item[V any] struct {
	value     V
	expiresAt time.Time
}

// Store is an in-process TTL map. A zero or negative TTL keeps entries
// until they are deleted. Concurrent loads of one key share a single call.
type Store[V any] struct {
	ttl   time.Duration
	now   func() time.Time
	group singleflight.Group

	mu    sync.RWMutex
	items map[string]item[V]
}

func NewStore[V any](ttl time.Duration) *Store[V] {
	return &Store[V]{
		ttl:   ttl,
		now:   time.Now,
		items: make(map[string]item[V]),
	}
}

func (s *Store[V]) Get(key string) (V, bool) {
	var zero V
	s.mu.RLock()
	it, ok := s.items[key]
	s.mu.RUnlock()
	if !ok {
		return zero, false
	}
	if s.expired(it) {
		s.mu.Lock()
		if cur, still := s.items[key]; still && s.expired(cur) {
			delete(s.items, key)
		}
		s.mu.Unlock()
		return zero, false
	}
	return it.value, true
}

func (s *Store[V]) Set(key string, value V) {
	it := item[V]{value: value}
	if s.ttl > 0 {
		it.expiresAt = s.now().Add(s.ttl)
	}
	s.mu.Lock()
	s.items[key] = it
	s.mu.Unlock()
}

// GetOrLoad returns the cached value for key or stores what load returns.
// Load errors are returned to every waiter and never cached.
func (s *Store[V]) GetOrLoad(ctx context.Context, key string, load func(context.Context) (V, error)) (V, error) {
	var zero V
	if load == nil {
		return zero, errors.New("cache loader is required")
	}
	if v, ok := s.Get(key); ok {
		return v, nil
	}

	v, err, _ := s.group.Do(key, func() (any, error) {
		if v, ok := s.Get(key); ok {
			return v, nil
		}
		loaded, err := load(ctx)
		if err != nil {
			return nil, err
		}
		s.Set(key, loaded)
		return loaded, nil
	})
	if err != nil {
		return zero, err
	}
	return v.(V), nil
}

func (s *Store[V]) expired(it item[V]) bool {
	return s.ttl > 0 && !it.expiresAt.After(s.now())
}
