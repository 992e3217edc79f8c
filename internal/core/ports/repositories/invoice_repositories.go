package repositories

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/mkassaw/invoicing_backend/internal/core/domain"
)

// InvoiceReader defines read operations for invoice data
type InvoiceReader interface {
	// FindInvoiceByID retrieves a specific invoice with its line items.
	FindInvoiceByID(ctx context.Context, invoiceID int64) (*domain.Invoice, error)

	// ListInvoices retrieves all invoices with their line items, newest first.
	ListInvoices(ctx context.Context) ([]domain.Invoice, error)

	// FindItemsByInvoiceID retrieves the line items of one invoice.
	FindItemsByInvoiceID(ctx context.Context, invoiceID int64) ([]domain.InvoiceItem, error)

	// SumTotalsBetween sums invoice totals for invoices dated in [start, end].
	SumTotalsBetween(ctx context.Context, start, end time.Time) (decimal.Decimal, error)

	// CountByStatus returns the number of invoices per status.
	CountByStatus(ctx context.Context) (map[domain.InvoiceStatus]int64, error)
}

// InvoiceWriter defines write operations for invoice data
type InvoiceWriter interface {
	// SaveInvoiceWithItems persists an invoice and its line items in one transaction.
	SaveInvoiceWithItems(ctx context.Context, invoice *domain.Invoice) error

	// UpdateInvoiceWithItems overwrites an invoice and applies the item
	// reconciliation plan (deletes, updates, creates) in one transaction.
	UpdateInvoiceWithItems(ctx context.Context, invoice *domain.Invoice, deleteItemIDs []int64, updateItems []domain.InvoiceItem, createItems []domain.InvoiceItem) error

	// DeleteInvoice removes an invoice, its items, its attachment rows and
	// their stored files in one transaction.
	DeleteInvoice(ctx context.Context, invoiceID int64) error
}

// InvoiceRepositoryFacade combines all invoice-related repository interfaces
type InvoiceRepositoryFacade interface {
	InvoiceReader
	InvoiceWriter
}

// InvoiceRepositoryWithTx extends InvoiceRepositoryFacade with transaction capabilities
type InvoiceRepositoryWithTx interface {
	InvoiceRepositoryFacade
	TransactionManager
}
