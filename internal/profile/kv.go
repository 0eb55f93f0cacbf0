// Package profile keeps the player profile shared by every game: points,
// streak, favorites, identity, theme and best scores. Values live in a
// string key/value backend and are written through on every mutation.
package profile

import (
	"strconv"
	"sync"
)

// KV is a durable string key/value store.
type KV interface {
	Get(key string) (value string, ok bool, err error)
	Set(key, value string) error
	// Add atomically adds delta to the integer under key and returns the
	// new value. A missing, malformed or negative value counts as 0.
	Add(key string, delta int) (int, error)
}

// MemoryKV is an in-process KV for tests and ephemeral sessions.
type MemoryKV struct {
	mu sync.RWMutex
	m  map[string]string
}

// NewMemoryKV creates an empty MemoryKV.
func NewMemoryKV() *MemoryKV {
	return &MemoryKV{m: make(map[string]string)}
}

// Get implements KV.
func (kv *MemoryKV) Get(key string) (string, bool, error) {
	kv.mu.RLock()
	defer kv.mu.RUnlock()
	v, ok := kv.m[key]
	return v, ok, nil
}

// Set implements KV.
func (kv *MemoryKV) Set(key, value string) error {
	kv.mu.Lock()
	defer kv.mu.Unlock()
	kv.m[key] = value
	return nil
}

// Add implements KV.
func (kv *MemoryKV) Add(key string, delta int) (int, error) {
	kv.mu.Lock()
	defer kv.mu.Unlock()
	n, err := strconv.Atoi(kv.m[key])
	if err != nil || n < 0 {
		n = 0
	}
	n += delta
	kv.m[key] = strconv.Itoa(n)
	return n, nil
}
