package pgsql

import (
	"github.com/jackc/pgx/v5/pgxpool"

	portsrepo "github.com/mkassaw/invoicing_backend/internal/core/ports/repositories"
	portsstorage "github.com/mkassaw/invoicing_backend/internal/core/ports/storage"
)

func NewRepositoryProvider(dbPool *pgxpool.Pool, fileStore portsstorage.FileStore) portsrepo.RepositoryProvider {
	attachmentRepo := newPgxAttachmentRepository(dbPool, fileStore)
	invoiceRepo := newPgxInvoiceRepository(dbPool, attachmentRepo)
	paymentRepo := newPgxPaymentRepository(dbPool, attachmentRepo)
	customerRepo := newPgxCustomerRepository(dbPool)
	currencyRepo := newPgxCurrencyRepository(dbPool)
	accountRepo := newPgxAccountRepository(dbPool)

	return portsrepo.RepositoryProvider{
		InvoiceRepo:    invoiceRepo,
		PaymentRepo:    paymentRepo,
		AttachmentRepo: attachmentRepo,
		CustomerRepo:   customerRepo,
		CurrencyRepo:   currencyRepo,
		AccountRepo:    accountRepo,
	}
}
