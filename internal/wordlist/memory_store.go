package wordlist

import (
	"context"
	"slices"
	"sync"
)

// MemoryStore keeps lists for the lifetime of the process only.
type MemoryStore struct {
	mu    sync.Mutex
	lists map[string][]string
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		lists: make(map[string][]string),
	}
}

func (m *MemoryStore) Load(_ context.Context, key string) ([]string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	words, ok := m.lists[key]
	if !ok {
		return []string{}, nil
	}
	return slices.Clone(words), nil
}

func (m *MemoryStore) Save(_ context.Context, key string, words []string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.lists[key] = append([]string{}, words...)
	return nil
}
