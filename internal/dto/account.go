package dto

import (
	"time"

	"github.com/mkassaw/invoicing_backend/internal/core/domain"
)

// AccountResponse defines the data returned for a payment account.
type AccountResponse struct {
	AccountID int64     `json:"id"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// ToAccountResponse converts a domain.Account to AccountResponse
func ToAccountResponse(a *domain.Account) AccountResponse {
	return AccountResponse{
		AccountID: a.AccountID,
		Name:      a.Name,
		CreatedAt: a.CreatedAt,
		UpdatedAt: a.LastUpdatedAt,
	}
}

// ToListAccountResponse converts a slice of domain.Account to DTOs
func ToListAccountResponse(accounts []domain.Account) []AccountResponse {
	res := make([]AccountResponse, len(accounts))
	for i := range accounts {
		res[i] = ToAccountResponse(&accounts[i])
	}
	return res
}
