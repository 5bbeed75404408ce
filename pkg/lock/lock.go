// Package lock provides per-account read/write locks. Scoping mutual
// exclusion to one account keeps unrelated accounts free of contention while
// still letting the transaction service span "mutate balance then append
// record" as a single critical section.
package lock

import (
	"sync"

	"github.com/google/uuid"
)

// Registry hands out one RWMutex per account id. Locks are created on first
// use and live for the life of the process; the ledger never deletes
// accounts, so the registry never shrinks.
type Registry struct {
	mu    sync.Mutex
	locks map[uuid.UUID]*sync.RWMutex
}

// NewRegistry returns an empty Registry.
func NewRegistry() *Registry {
	return &Registry{locks: make(map[uuid.UUID]*sync.RWMutex)}
}

// For returns the lock guarding the given account id, creating it if needed.
// Writers (balance mutations plus their history append) take the write lock;
// readers (balance queries, statements) take the read lock so they observe a
// consistent snapshot.
func (r *Registry) For(id uuid.UUID) *sync.RWMutex {
	r.mu.Lock()
	defer r.mu.Unlock()
	lk, ok := r.locks[id]
	if !ok {
		lk = &sync.RWMutex{}
		r.locks[id] = lk
	}
	return lk
}
