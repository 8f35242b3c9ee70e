package store

import (
	"context"
	"sync"
)

var _ Store = (*Memory)(nil)

// Memory keeps collections in process. It is the default driver and the
// backend used by tests.
type Memory struct {
	mu   sync.RWMutex
	data map[Collection][]byte
}

func NewMemory() *Memory {
	return &Memory{data: make(map[Collection][]byte)}
}

func (m *Memory) Load(_ context.Context, c Collection) ([]byte, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	b, ok := m.data[c]
	if !ok {
		return nil, ErrNotFound
	}
	out := make([]byte, len(b))
	copy(out, b)
	return out, nil
}

func (m *Memory) Save(_ context.Context, c Collection, payload []byte) error {
	b := make([]byte, len(payload))
	copy(b, payload)

	m.mu.Lock()
	m.data[c] = b
	m.mu.Unlock()
	return nil
}

func (m *Memory) Delete(_ context.Context, c Collection) error {
	m.mu.Lock()
	delete(m.data, c)
	m.mu.Unlock()
	return nil
}

func (m *Memory) Close() error {
	return nil
}
