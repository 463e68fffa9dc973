package store

import (
	"sync"

	"github.com/basedmereum/awesome-ai-agent-hackathons/pkg/errors"
	"github.com/basedmereum/awesome-ai-agent-hackathons/pkg/hackathons"
)

// Memory is an in-memory Store. It is safe for concurrent use and is the
// backend of choice for tests and dry runs.
type Memory struct {
	mu      sync.RWMutex
	records map[string]hackathons.Hackathon
}

var _ Store = (*Memory)(nil)

// NewMemory creates an empty in-memory store.
func NewMemory() *Memory {
	return &Memory{records: make(map[string]hackathons.Hackathon)}
}

// NewMemoryWith creates an in-memory store pre-populated with records.
func NewMemoryWith(records ...hackathons.Hackathon) *Memory {
	m := NewMemory()
	for _, h := range records {
		m.records[h.ID] = h
	}
	return m
}

// List returns all records ordered by id.
func (m *Memory) List() ([]hackathons.Hackathon, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	records := make([]hackathons.Hackathon, 0, len(m.records))
	for _, h := range m.records {
		records = append(records, h)
	}
	sortByID(records)
	return records, nil
}

// Get returns the record with the given id.
func (m *Memory) Get(id string) (hackathons.Hackathon, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	h, ok := m.records[id]
	if !ok {
		return hackathons.Hackathon{}, errors.NewNotFoundError("hackathon", id)
	}
	return h, nil
}

// Upsert creates or replaces a record.
func (m *Memory) Upsert(h hackathons.Hackathon) error {
	if err := h.Validate(); err != nil {
		return err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.records[h.ID] = h
	return nil
}

// Delete removes a record by id.
func (m *Memory) Delete(id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.records, id)
	return nil
}

// Close is a no-op for the in-memory backend.
func (m *Memory) Close() error { return nil }

// Len returns the number of stored records.
func (m *Memory) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.records)
}
