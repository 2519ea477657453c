// internal/store/memory.go
//
// In-memory implementation of Store.
//   - Concurrency-safe via RWMutex (the HTTP browser may read while a test saves).
//   - State is lost when the process exits.

package store

import (
	"context"
	"sync"

	"github.com/robalobadob/hangman/internal/record"
)

// memory is a slice-backed Store; entry n lives at index n-1.
type memory struct {
	mu      sync.RWMutex
	entries []Entry
}

// NewMemoryStore constructs a new in-memory Store.
func NewMemoryStore() Store {
	return &memory{}
}

// Save appends the summary as the next numbered session.
func (m *memory) Save(ctx context.Context, sm record.Summary) (Entry, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	text := sm.Text()
	e := Entry{Number: len(m.entries) + 1, Text: text, Fields: parseFields(text)}
	m.entries = append(m.entries, e)
	return e, nil
}

// List returns a copy of all entries.
func (m *memory) List(ctx context.Context) ([]Entry, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return append([]Entry(nil), m.entries...), nil
}

// Get looks up an entry by number.
func (m *memory) Get(ctx context.Context, n int) (Entry, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if n < 1 || n > len(m.entries) {
		return Entry{}, ErrNotFound
	}
	return m.entries[n-1], nil
}
