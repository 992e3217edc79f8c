package repositories

import (
	"context"

	"github.com/mkassaw/invoicing_backend/internal/core/domain"
)

// CurrencyReader defines read operations for currency data
type CurrencyReader interface {
	// FindCurrencyByID retrieves a specific currency by its identifier.
	FindCurrencyByID(ctx context.Context, currencyID int64) (*domain.Currency, error)

	// ListCurrencies retrieves all currencies.
	ListCurrencies(ctx context.Context) ([]domain.Currency, error)
}

// CurrencyRepositoryFacade combines all currency-related repository interfaces
type CurrencyRepositoryFacade interface {
	CurrencyReader
}
