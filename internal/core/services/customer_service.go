package services

import (
	"context"

	"github.com/mkassaw/invoicing_backend/internal/core/domain"
	portsrepo "github.com/mkassaw/invoicing_backend/internal/core/ports/repositories"
	portssvc "github.com/mkassaw/invoicing_backend/internal/core/ports/services"
)

type customerService struct {
	customerRepo portsrepo.CustomerRepositoryFacade
}

// NewCustomerService creates a new CustomerService.
func NewCustomerService(customerRepo portsrepo.CustomerRepositoryFacade) portssvc.CustomerSvcFacade {
	return &customerService{customerRepo: customerRepo}
}

var _ portssvc.CustomerSvcFacade = (*customerService)(nil)

func (s *customerService) GetCustomerByID(ctx context.Context, customerID int64) (*domain.Customer, error) {
	return s.customerRepo.FindCustomerByID(ctx, customerID)
}

func (s *customerService) ListCustomers(ctx context.Context) ([]domain.Customer, error) {
	return s.customerRepo.ListCustomers(ctx)
}
