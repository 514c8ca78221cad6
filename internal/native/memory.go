package native

import (
	"fmt"
	"sync"
)

// MemoryStorage is an ordered in-memory store. Overwriting a key keeps
// its position. It is safe for concurrent use.
type MemoryStorage struct {
	mu     sync.Mutex
	keys   []string
	values map[string]string
	size   int
	quota  int
}

// MemoryOption configures a MemoryStorage.
type MemoryOption func(*MemoryStorage)

// WithQuota limits the total size of keys and values to n bytes. Zero or
// less means unlimited.
func WithQuota(n int) MemoryOption {
	return func(m *MemoryStorage) {
		m.quota = n
	}
}

// NewMemoryStorage returns an empty MemoryStorage.
func NewMemoryStorage(opts ...MemoryOption) *MemoryStorage {
	m := &MemoryStorage{values: make(map[string]string)}
	for _, apply := range opts {
		apply(m)
	}
	return m
}

func (m *MemoryStorage) SetItem(key, value string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	old, exists := m.values[key]
	size := m.size + len(value)
	if exists {
		size -= len(old)
	} else {
		size += len(key)
	}
	if m.quota > 0 && size > m.quota {
		return fmt.Errorf("%w: %d of %d bytes", ErrQuotaExceeded, size, m.quota)
	}
	if !exists {
		m.keys = append(m.keys, key)
	}
	m.values[key] = value
	m.size = size
	return nil
}

func (m *MemoryStorage) GetItem(key string) (string, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	v, ok := m.values[key]
	return v, ok
}

func (m *MemoryStorage) RemoveItem(key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	v, ok := m.values[key]
	if !ok {
		return nil
	}
	delete(m.values, key)
	m.size -= len(key) + len(v)
	for i, k := range m.keys {
		if k == key {
			m.keys = append(m.keys[:i], m.keys[i+1:]...)
			break
		}
	}
	return nil
}

func (m *MemoryStorage) Key(index int) (string, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if index < 0 || index >= len(m.keys) {
		return "", false
	}
	return m.keys[index], true
}

func (m *MemoryStorage) Length() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.keys)
}

func (m *MemoryStorage) Clear() error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.keys = nil
	m.values = make(map[string]string)
	m.size = 0
	return nil
}
