package mapping

import (
	"github.com/mkassaw/invoicing_backend/internal/core/domain"
	"github.com/mkassaw/invoicing_backend/internal/models"
)

// ToModelCustomer converts a domain Customer to a model Customer
func ToModelCustomer(d domain.Customer) models.Customer {
	return models.Customer{
		CustomerID:  d.CustomerID,
		Name:        d.Name,
		Email:       d.Email,
		Phone:       d.Phone,
		Address:     d.Address,
		Type:        string(d.Type),
		CompanyName: d.CompanyName,
		AuditFields: ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainCustomer converts a model Customer to a domain Customer
func ToDomainCustomer(m models.Customer) domain.Customer {
	return domain.Customer{
		CustomerID:  m.CustomerID,
		Name:        m.Name,
		Email:       m.Email,
		Phone:       m.Phone,
		Address:     m.Address,
		Type:        domain.CustomerType(m.Type),
		CompanyName: m.CompanyName,
		AuditFields: ToDomainAuditFields(m.AuditFields),
	}
}

// ToDomainCustomerSlice converts a slice of model Customers to domain Customers
func ToDomainCustomerSlice(ms []models.Customer) []domain.Customer {
	ds := make([]domain.Customer, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainCustomer(m)
	}
	return ds
}
