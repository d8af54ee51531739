package port

import "errors"

// ErrNotFound is returned by KeyValueStore.Get for an absent key.
var ErrNotFound = errors.New("key not found")

// KeyValueStore is the local persistent storage used for client-side state
// (the "for trade" list). Values are opaque bytes, usually JSON.
type KeyValueStore interface {
	Get(key string) ([]byte, error)
	Set(key string, value []byte) error
	Clear(key string) error
}
