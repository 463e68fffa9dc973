// Package store provides persistence for hackathon records behind a small
// keyed-map abstraction: load all records, upsert by id. The reconciliation
// pipeline takes a Store by interface so tests run against the in-memory
// backend and deployments can pick files or bolt.
//
// The store assumes exclusive access for the duration of a reconciliation
// batch; the intended deployment is a single periodic job, not concurrent
// writers.
package store

import (
	"sort"

	"github.com/basedmereum/awesome-ai-agent-hackathons/pkg/hackathons"
)

// Reader provides read-only access to persisted records.
type Reader interface {
	// List returns all records, ordered by id.
	List() ([]hackathons.Hackathon, error)

	// Get returns the record with the given id, or errors.ErrNotFound.
	Get(id string) (hackathons.Hackathon, error)
}

// Writer provides write operations for persisted records.
type Writer interface {
	// Upsert creates or replaces the record keyed by its id.
	Upsert(h hackathons.Hackathon) error

	// Delete removes a record by id. Deleting a missing record is not an
	// error: deletion is an administrative action, not part of the core flow.
	Delete(id string) error
}

// Store is the complete persistence interface.
type Store interface {
	Reader
	Writer

	// Close releases any resources held by the backend.
	Close() error
}

// sortByID orders records deterministically for List implementations.
func sortByID(records []hackathons.Hackathon) {
	sort.Slice(records, func(i, j int) bool {
		return records[i].ID < records[j].ID
	})
}
