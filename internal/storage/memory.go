package storage

import "sync"

// Memory is an in-memory Collection for tests.
type Memory[T any] struct {
	mu      sync.Mutex
	records []T

	// SaveErr, when set, is returned by every Save call.
	SaveErr error
}

func NewMemory[T any]() *Memory[T] {
	return &Memory[T]{}
}

func (m *Memory[T]) Load() ([]T, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]T, len(m.records))
	copy(out, m.records)
	return out, nil
}

func (m *Memory[T]) Save(records []T) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.SaveErr != nil {
		return m.SaveErr
	}
	m.records = make([]T, len(records))
	copy(m.records, records)
	return nil
}
