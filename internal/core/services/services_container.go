package services

import (
	portsrepo "github.com/mkassaw/invoicing_backend/internal/core/ports/repositories"
	portssvc "github.com/mkassaw/invoicing_backend/internal/core/ports/services"
	portsstorage "github.com/mkassaw/invoicing_backend/internal/core/ports/storage"
	"github.com/mkassaw/invoicing_backend/internal/platform/config"
)

// NewServiceContainer creates a new service container with properly initialized dependencies
func NewServiceContainer(cfg *config.Config, repos portsrepo.RepositoryProvider, fileStore portsstorage.FileStore) *portssvc.ServiceContainer {
	container := &portssvc.ServiceContainer{}

	container.Invoice = NewInvoiceService(repos.InvoiceRepo, repos.AttachmentRepo)
	container.Payment = NewPaymentService(repos.PaymentRepo, repos.AttachmentRepo)
	container.Attachment = NewAttachmentService(
		repos.AttachmentRepo,
		repos.InvoiceRepo,
		repos.PaymentRepo,
		fileStore,
		cfg.MaxAttachmentSizeBytes(),
	)
	container.Customer = NewCustomerService(repos.CustomerRepo)
	container.Currency = NewCurrencyService(repos.CurrencyRepo)
	container.Account = NewAccountService(repos.AccountRepo)

	return container
}
