package repositories

import (
	"context"

	"github.com/mkassaw/invoicing_backend/internal/core/domain"
)

// AccountReader defines read operations for account data
type AccountReader interface {
	// FindAccountByID retrieves a specific account by its identifier.
	FindAccountByID(ctx context.Context, accountID int64) (*domain.Account, error)

	// ListAccounts retrieves all accounts.
	ListAccounts(ctx context.Context) ([]domain.Account, error)
}

// AccountRepositoryFacade combines all account-related repository interfaces
type AccountRepositoryFacade interface {
	AccountReader
}
