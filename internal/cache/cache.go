// Package cache is a process-local read-through cache for list/get results.
// Population is lazy, invalidation is wholesale per logical collection: any
// write to a collection evicts every entry cached under it. No TTL, no size
// bound, no cross-process coherence.
package cache

import (
	"sync"
)

type Store struct {
	mu          sync.Mutex
	collections map[string]map[string]any
}

func New() *Store {
	return &Store{collections: make(map[string]map[string]any)}
}

// GetOrLoad returns the cached value for (collection, key), calling loader and
// caching its result on a miss. A loader error is returned as-is and nothing
// is cached. The lock is held across the load so concurrent readers of the
// same cold key do not stampede the store.
func (s *Store) GetOrLoad(collection, key string, loader func() (any, error)) (any, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if entries, ok := s.collections[collection]; ok {
		if v, ok := entries[key]; ok {
			return v, nil
		}
	}

	v, err := loader()
	if err != nil {
		return nil, err
	}

	entries, ok := s.collections[collection]
	if !ok {
		entries = make(map[string]any)
		s.collections[collection] = entries
	}
	entries[key] = v
	return v, nil
}

// EvictCollection drops every entry cached under the collection.
func (s *Store) EvictCollection(collection string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.collections, collection)
}

// Fetch is the typed wrapper services use; a cached value of the wrong type
// counts as a miss and is reloaded.
func Fetch[T any](s *Store, collection, key string, loader func() (T, error)) (T, error) {
	v, err := s.GetOrLoad(collection, key, func() (any, error) {
		return loader()
	})
	if err != nil {
		var zero T
		return zero, err
	}
	typed, ok := v.(T)
	if !ok {
		return loader()
	}
	return typed, nil
}
