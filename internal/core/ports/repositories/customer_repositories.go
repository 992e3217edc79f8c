package repositories

import (
	"context"

	"github.com/mkassaw/invoicing_backend/internal/core/domain"
)

// CustomerReader defines read operations for customer data
type CustomerReader interface {
	// FindCustomerByID retrieves a specific customer by its identifier.
	FindCustomerByID(ctx context.Context, customerID int64) (*domain.Customer, error)

	// ListCustomers retrieves all customers.
	ListCustomers(ctx context.Context) ([]domain.Customer, error)
}

// CustomerRepositoryFacade combines all customer-related repository interfaces
type CustomerRepositoryFacade interface {
	CustomerReader
}
