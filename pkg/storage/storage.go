package storage

import (
	"context"
	"errors"
	"sync"
)

var ErrNotFound = errors.New("key not found")

// Store is a durable string key-value store.
type Store interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key, value string) error
	Delete(ctx context.Context, key string) error
}

type Memory struct {
	mu   sync.RWMutex
	data map[string]string
}

var _ Store = (*Memory)(nil)

func NewMemory() *Memory {
	return &Memory{data: make(map[string]string)}
}

func (m *Memory) Get(_ context.Context, key string) (string, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	v, ok := m.data[key]
	if !ok {
		return "", ErrNotFound
	}

	return v, nil
}

func (m *Memory) Set(_ context.Context, key, value string) error {
	m.mu.Lock()
	m.data[key] = value
	m.mu.Unlock()

	return nil
}

func (m *Memory) Delete(_ context.Context, key string) error {
	m.mu.Lock()
	delete(m.data, key)
	m.mu.Unlock()

	return nil
}

// Namespace scopes every key of the wrapped store under prefix.
type Namespace struct {
	s      Store
	prefix string
}

var _ Store = Namespace{}

func WithPrefix(s Store, prefix string) Namespace {
	return Namespace{s: s, prefix: prefix + ":"}
}

func (n Namespace) Get(ctx context.Context, key string) (string, error) {
	return n.s.Get(ctx, n.prefix+key)
}

func (n Namespace) Set(ctx context.Context, key, value string) error {
	return n.s.Set(ctx, n.prefix+key, value)
}

func (n Namespace) Delete(ctx context.Context, key string) error {
	return n.s.Delete(ctx, n.prefix+key)
}
