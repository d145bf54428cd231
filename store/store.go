// Package store holds report records and owns their lifecycle state.
package store

import (
	"errors"
	"time"
)

var (
	ErrDuplicateID = errors.New("a report with this id already exists")
	ErrNotFound    = errors.New("report does not exist")
)

// Store is the single source of truth for report records. Put fails with
// ErrDuplicateID on key reuse, Get and Update fail with ErrNotFound for
// unknown ids. Update applies the mutator atomically with respect to
// concurrent updates of the same record and returns the mutated copy.
// Records are never deleted in normal operation.
type Store interface {
	Put(report Report) error
	Get(id string) (Report, error)
	Update(id string, mutate func(*Report)) (Report, error)

	// Pending returns reports still awaiting triage that were created
	// before the given instant.
	Pending(before time.Time) ([]Report, error)
}
