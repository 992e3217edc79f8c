package dto

import (
	"time"

	"github.com/mkassaw/invoicing_backend/internal/core/domain"
)

// CustomerResponse defines the data returned for a customer.
type CustomerResponse struct {
	CustomerID  int64     `json:"id"`
	Name        string    `json:"name"`
	Email       string    `json:"email"`
	Phone       string    `json:"phone"`
	Address     string    `json:"address"`
	Type        string    `json:"type"`
	CompanyName *string   `json:"company_name"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// ToCustomerResponse converts a domain.Customer to CustomerResponse
func ToCustomerResponse(c *domain.Customer) CustomerResponse {
	return CustomerResponse{
		CustomerID:  c.CustomerID,
		Name:        c.Name,
		Email:       c.Email,
		Phone:       c.Phone,
		Address:     c.Address,
		Type:        string(c.Type),
		CompanyName: c.CompanyName,
		CreatedAt:   c.CreatedAt,
		UpdatedAt:   c.LastUpdatedAt,
	}
}

// ToListCustomerResponse converts a slice of domain.Customer to DTOs
func ToListCustomerResponse(customers []domain.Customer) []CustomerResponse {
	res := make([]CustomerResponse, len(customers))
	for i := range customers {
		res[i] = ToCustomerResponse(&customers[i])
	}
	return res
}
