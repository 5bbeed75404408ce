// Package customer provides the application service for customer identity
// records.
package customer

import (
	"log/slog"

	"github.com/bankcore/ledger/pkg/config"
	"github.com/bankcore/ledger/pkg/domain/customer"
	"github.com/bankcore/ledger/pkg/repository"
	"github.com/google/uuid"
)

// Service registers and looks up customers.
type Service struct {
	customers repository.CustomerRepository
	logger    *slog.Logger
}

// NewService creates a Service from the dependency container.
func NewService(deps config.Deps) *Service {
	return &Service{
		customers: deps.Customers,
		logger:    deps.Logger.With("service", "customer"),
	}
}

// CreateCustomer validates and stores a new customer.
func (s *Service) CreateCustomer(name, email, phone string) (*customer.Customer, error) {
	c, err := customer.New(name, email, phone)
	if err != nil {
		return nil, err
	}
	if err := s.customers.Create(c); err != nil {
		return nil, err
	}
	s.logger.Info("customer created", "customer_id", c.ID, "name", c.Name)
	return c, nil
}

// Get returns the customer with the given id.
func (s *Service) Get(customerID uuid.UUID) (*customer.Customer, error) {
	return s.customers.Get(customerID)
}
