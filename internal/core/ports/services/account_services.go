package services

import (
	"context"

	"github.com/mkassaw/invoicing_backend/internal/core/domain"
)

// AccountReaderSvc defines read operations for accounts
type AccountReaderSvc interface {
	// GetAccountByID retrieves a specific account.
	GetAccountByID(ctx context.Context, accountID int64) (*domain.Account, error)

	// ListAccounts retrieves all accounts.
	ListAccounts(ctx context.Context) ([]domain.Account, error)
}

// AccountSvcFacade combines all account-related service interfaces
type AccountSvcFacade interface {
	AccountReaderSvc
}
