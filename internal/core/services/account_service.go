package services

import (
	"context"

	"github.com/mkassaw/invoicing_backend/internal/core/domain"
	portsrepo "github.com/mkassaw/invoicing_backend/internal/core/ports/repositories"
	portssvc "github.com/mkassaw/invoicing_backend/internal/core/ports/services"
)

type accountService struct {
	accountRepo portsrepo.AccountRepositoryFacade
}

// NewAccountService creates a new AccountService.
func NewAccountService(accountRepo portsrepo.AccountRepositoryFacade) portssvc.AccountSvcFacade {
	return &accountService{accountRepo: accountRepo}
}

var _ portssvc.AccountSvcFacade = (*accountService)(nil)

func (s *accountService) GetAccountByID(ctx context.Context, accountID int64) (*domain.Account, error) {
	return s.accountRepo.FindAccountByID(ctx, accountID)
}

func (s *accountService) ListAccounts(ctx context.Context) ([]domain.Account, error) {
	return s.accountRepo.ListAccounts(ctx)
}
