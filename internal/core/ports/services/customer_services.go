package services

import (
	"context"

	"github.com/mkassaw/invoicing_backend/internal/core/domain"
)

// CustomerReaderSvc defines read operations for customers
type CustomerReaderSvc interface {
	// GetCustomerByID retrieves a specific customer.
	GetCustomerByID(ctx context.Context, customerID int64) (*domain.Customer, error)

	// ListCustomers retrieves all customers.
	ListCustomers(ctx context.Context) ([]domain.Customer, error)
}

// CustomerSvcFacade combines all customer-related service interfaces
type CustomerSvcFacade interface {
	CustomerReaderSvc
}
