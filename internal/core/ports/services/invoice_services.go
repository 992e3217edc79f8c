package services

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/mkassaw/invoicing_backend/internal/core/domain"
	"github.com/mkassaw/invoicing_backend/internal/dto"
)

// InvoiceReaderSvc defines read operations for invoices
type InvoiceReaderSvc interface {
	// GetInvoiceByID retrieves an invoice with its line items and attachments.
	GetInvoiceByID(ctx context.Context, invoiceID int64) (*domain.Invoice, []domain.Attachment, error)

	// ListInvoices retrieves all invoices with items, plus attachments per invoice.
	ListInvoices(ctx context.Context) ([]domain.Invoice, map[int64][]domain.Attachment, error)

	// SumTotalsBetween sums invoice totals for invoices dated in the range.
	SumTotalsBetween(ctx context.Context, req dto.DateRangeRequest) (decimal.Decimal, error)

	// StatusBreakdown reports invoice counts and percentages per status.
	StatusBreakdown(ctx context.Context) (*domain.StatusBreakdown, error)
}

// InvoiceWriterSvc defines write operations for invoices
type InvoiceWriterSvc interface {
	// CreateInvoice computes totals and persists the invoice with its items.
	CreateInvoice(ctx context.Context, req dto.CreateInvoiceRequest) (*domain.Invoice, error)

	// UpdateInvoice recomputes totals and reconciles line items against the payload.
	UpdateInvoice(ctx context.Context, invoiceID int64, req dto.CreateInvoiceRequest) (*domain.Invoice, error)

	// DeleteInvoice removes the invoice, its items, attachments and stored files.
	DeleteInvoice(ctx context.Context, invoiceID int64) error
}

// InvoiceSvcFacade combines all invoice-related service interfaces
type InvoiceSvcFacade interface {
	InvoiceReaderSvc
	InvoiceWriterSvc
}
