package services

import (
	"context"

	"github.com/mkassaw/invoicing_backend/internal/core/domain"
	portsrepo "github.com/mkassaw/invoicing_backend/internal/core/ports/repositories"
	portssvc "github.com/mkassaw/invoicing_backend/internal/core/ports/services"
)

type currencyService struct {
	currencyRepo portsrepo.CurrencyRepositoryFacade
}

// NewCurrencyService creates a new CurrencyService.
func NewCurrencyService(currencyRepo portsrepo.CurrencyRepositoryFacade) portssvc.CurrencySvcFacade {
	return &currencyService{currencyRepo: currencyRepo}
}

var _ portssvc.CurrencySvcFacade = (*currencyService)(nil)

func (s *currencyService) GetCurrencyByID(ctx context.Context, currencyID int64) (*domain.Currency, error) {
	return s.currencyRepo.FindCurrencyByID(ctx, currencyID)
}

func (s *currencyService) ListCurrencies(ctx context.Context) ([]domain.Currency, error) {
	return s.currencyRepo.ListCurrencies(ctx)
}
