package store

import (
	"context"
	"maps"
	"sync"
)

// Memory is an in-memory Store backed by a mutex-guarded map.
// Safe for concurrent use. Intended for development and tests.
type Memory struct {
	mu    sync.RWMutex
	items map[string]string
}

// NewMemory creates an empty in-memory store.
func NewMemory() *Memory {
	return &Memory{items: make(map[string]string)}
}

// NewMemoryWith creates an in-memory store pre-populated with the given
// items. The map is copied.
func NewMemoryWith(items map[string]string) *Memory {
	m := NewMemory()
	maps.Copy(m.items, items)
	return m
}

func (m *Memory) Get(ctx context.Context, key string) (string, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	v, ok := m.items[key]
	if !ok {
		return "", ErrNotFound
	}
	return v, nil
}

func (m *Memory) Set(ctx context.Context, key, value string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.items[key] = value
	return nil
}

func (m *Memory) Delete(ctx context.Context, key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	delete(m.items, key)
	return nil
}

// Healthcheck always succeeds for the in-memory store.
func (m *Memory) Healthcheck(ctx context.Context) error {
	return nil
}

// Close is a no-op for the in-memory store.
func (m *Memory) Close() error {
	return nil
}

// Len returns the number of stored items.
func (m *Memory) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.items)
}
