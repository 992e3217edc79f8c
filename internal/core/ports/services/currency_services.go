package services

import (
	"context"

	"github.com/mkassaw/invoicing_backend/internal/core/domain"
)

// CurrencyReaderSvc defines read operations for currencies
type CurrencyReaderSvc interface {
	// GetCurrencyByID retrieves a specific currency.
	GetCurrencyByID(ctx context.Context, currencyID int64) (*domain.Currency, error)

	// ListCurrencies retrieves all currencies.
	ListCurrencies(ctx context.Context) ([]domain.Currency, error)
}

// CurrencySvcFacade combines all currency-related service interfaces
type CurrencySvcFacade interface {
	CurrencyReaderSvc
}
