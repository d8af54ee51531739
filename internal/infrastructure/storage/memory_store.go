package storage

import (
	"github.com/patrickmn/go-cache"

	"vibe_tracker/internal/app/port"
)

// MemoryStore implements port.KeyValueStore on an in-process go-cache without expiration.
// Its content is lost on restart; it backs tests and the "memory" storage driver.
type MemoryStore struct {
	c *cache.Cache
}

// NewMemoryStore creates an empty MemoryStore.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{c: cache.New(cache.NoExpiration, 0)}
}

// Get returns a copy of the stored value or port.ErrNotFound.
func (s *MemoryStore) Get(key string) ([]byte, error) {
	v, ok := s.c.Get(key)
	if !ok {
		return nil, port.ErrNotFound
	}
	b, _ := v.([]byte)
	return append([]byte(nil), b...), nil
}

// Set stores a copy of value under key.
func (s *MemoryStore) Set(key string, value []byte) error {
	s.c.Set(key, append([]byte(nil), value...), cache.NoExpiration)
	return nil
}

// Clear removes key. Clearing an absent key is not an error.
func (s *MemoryStore) Clear(key string) error {
	s.c.Delete(key)
	return nil
}
