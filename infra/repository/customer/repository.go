// Package customer provides the in-memory customer repository.
package customer

import (
	"sync"

	"github.com/bankcore/ledger/pkg/domain/customer"
	"github.com/google/uuid"
)

// Repository stores customer records by id. Safe for concurrent use.
type Repository struct {
	mu        sync.RWMutex
	customers map[uuid.UUID]*customer.Customer
}

// New returns an empty repository.
func New() *Repository {
	return &Repository{customers: make(map[uuid.UUID]*customer.Customer)}
}

// Create stores a new customer. Returns customer.ErrDuplicateCustomer if the
// id is already present.
func (r *Repository) Create(c *customer.Customer) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.customers[c.ID]; ok {
		return customer.ErrDuplicateCustomer
	}
	r.customers[c.ID] = c
	return nil
}

// Get returns the customer with the given id, or customer.ErrCustomerNotFound.
func (r *Repository) Get(id uuid.UUID) (*customer.Customer, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	c, ok := r.customers[id]
	if !ok {
		return nil, customer.ErrCustomerNotFound
	}
	return c, nil
}
