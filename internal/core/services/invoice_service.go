package services

import (
	"context"
	"errors"
	"log/slog"

	"github.com/shopspring/decimal"

	"github.com/mkassaw/invoicing_backend/internal/apperrors"
	"github.com/mkassaw/invoicing_backend/internal/core/domain"
	portsrepo "github.com/mkassaw/invoicing_backend/internal/core/ports/repositories"
	portssvc "github.com/mkassaw/invoicing_backend/internal/core/ports/services"
	"github.com/mkassaw/invoicing_backend/internal/dto"
	"github.com/mkassaw/invoicing_backend/internal/middleware"
	"github.com/mkassaw/invoicing_backend/internal/utils/billing"
)

var (
	ErrStrayItemID  = errors.New("item does not belong to this invoice")
	ErrInvalidDates = errors.New("start date must not be after end date")
)

// invoiceService owns invoice totals computation and line item reconciliation.
type invoiceService struct {
	invoiceRepo    portsrepo.InvoiceRepositoryWithTx
	attachmentRepo portsrepo.AttachmentRepositoryFacade
}

// NewInvoiceService creates a new InvoiceService.
func NewInvoiceService(invoiceRepo portsrepo.InvoiceRepositoryWithTx, attachmentRepo portsrepo.AttachmentRepositoryFacade) portssvc.InvoiceSvcFacade {
	return &invoiceService{
		invoiceRepo:    invoiceRepo,
		attachmentRepo: attachmentRepo,
	}
}

// Ensure invoiceService implements the portssvc.InvoiceSvcFacade interface
var _ portssvc.InvoiceSvcFacade = (*invoiceService)(nil)

// applyTotals recomputes and sets the stored totals from the invoice's items.
func applyTotals(invoice *domain.Invoice) {
	total, grandTotal := billing.InvoiceTotals(invoice.Items, invoice.Shipping, invoice.Discount, invoice.TaxRate, invoice.TaxMethod)
	invoice.Total = total
	invoice.GrandTotal = grandTotal
}

// CreateInvoice computes totals and persists the invoice with its items.
func (s *invoiceService) CreateInvoice(ctx context.Context, req dto.CreateInvoiceRequest) (*domain.Invoice, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	invoice, err := req.ToDomainInvoice()
	if err != nil {
		return nil, apperrors.NewAppError(422, "invalid date in invoice payload", apperrors.ErrValidation)
	}
	// Item IDs carry no meaning on create.
	for i := range invoice.Items {
		invoice.Items[i].ItemID = 0
	}
	applyTotals(&invoice)

	if err := s.invoiceRepo.SaveInvoiceWithItems(ctx, &invoice); err != nil {
		logger.Error("failed to save invoice", slog.String("reference", invoice.Reference), slog.String("error", err.Error()))
		return nil, err
	}

	items, err := s.invoiceRepo.FindItemsByInvoiceID(ctx, invoice.InvoiceID)
	if err != nil {
		return nil, err
	}
	invoice.Items = items

	logger.Info("invoice created", slog.Int64("invoice_id", invoice.InvoiceID), slog.String("reference", invoice.Reference))
	return &invoice, nil
}

// UpdateInvoice overwrites the invoice and reconciles its line items against
// the payload: persisted items absent from the payload are deleted, payload
// items with a known ID are updated, payload items without an ID are created.
// A payload ID that does not belong to the invoice fails validation before
// any write.
func (s *invoiceService) UpdateInvoice(ctx context.Context, invoiceID int64, req dto.CreateInvoiceRequest) (*domain.Invoice, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	persisted, err := s.invoiceRepo.FindInvoiceByID(ctx, invoiceID)
	if err != nil {
		return nil, err
	}

	invoice, err := req.ToDomainInvoice()
	if err != nil {
		return nil, apperrors.NewAppError(422, "invalid date in invoice payload", apperrors.ErrValidation)
	}
	invoice.InvoiceID = invoiceID
	invoice.AuditFields = persisted.AuditFields

	persistedIDs := make(map[int64]bool, len(persisted.Items))
	for _, it := range persisted.Items {
		persistedIDs[it.ItemID] = true
	}

	incomingIDs := make(map[int64]bool, len(invoice.Items))
	updateItems := []domain.InvoiceItem{}
	createItems := []domain.InvoiceItem{}
	for _, it := range invoice.Items {
		if it.ItemID == 0 {
			createItems = append(createItems, it)
			continue
		}
		if !persistedIDs[it.ItemID] {
			return nil, apperrors.NewAppError(422, "item does not belong to this invoice", ErrStrayItemID)
		}
		incomingIDs[it.ItemID] = true
		it.InvoiceID = invoiceID
		updateItems = append(updateItems, it)
	}

	deleteItemIDs := []int64{}
	for _, it := range persisted.Items {
		if !incomingIDs[it.ItemID] {
			deleteItemIDs = append(deleteItemIDs, it.ItemID)
		}
	}

	// Totals come from the payload's item set alone, so deletions are
	// already accounted for.
	applyTotals(&invoice)

	if err := s.invoiceRepo.UpdateInvoiceWithItems(ctx, &invoice, deleteItemIDs, updateItems, createItems); err != nil {
		logger.Error("failed to update invoice", slog.Int64("invoice_id", invoiceID), slog.String("error", err.Error()))
		return nil, err
	}

	items, err := s.invoiceRepo.FindItemsByInvoiceID(ctx, invoiceID)
	if err != nil {
		return nil, err
	}
	invoice.Items = items

	logger.Info("invoice updated", slog.Int64("invoice_id", invoiceID),
		slog.Int("deleted_items", len(deleteItemIDs)),
		slog.Int("updated_items", len(updateItems)),
		slog.Int("created_items", len(createItems)))
	return &invoice, nil
}

// DeleteInvoice removes the invoice, its items, attachments and stored files.
func (s *invoiceService) DeleteInvoice(ctx context.Context, invoiceID int64) error {
	logger := middleware.GetLoggerFromCtx(ctx)
	if err := s.invoiceRepo.DeleteInvoice(ctx, invoiceID); err != nil {
		return err
	}
	logger.Info("invoice deleted", slog.Int64("invoice_id", invoiceID))
	return nil
}

// GetInvoiceByID retrieves an invoice with its items and attachments.
func (s *invoiceService) GetInvoiceByID(ctx context.Context, invoiceID int64) (*domain.Invoice, []domain.Attachment, error) {
	invoice, err := s.invoiceRepo.FindInvoiceByID(ctx, invoiceID)
	if err != nil {
		return nil, nil, err
	}
	attachments, err := s.attachmentRepo.FindAttachmentsByOwner(ctx, domain.OwnerRef{Kind: domain.OwnerInvoice, ID: invoiceID})
	if err != nil {
		return nil, nil, err
	}
	return invoice, attachments, nil
}

// ListInvoices retrieves all invoices with items, plus attachments per invoice.
func (s *invoiceService) ListInvoices(ctx context.Context) ([]domain.Invoice, map[int64][]domain.Attachment, error) {
	invoices, err := s.invoiceRepo.ListInvoices(ctx)
	if err != nil {
		return nil, nil, err
	}
	ids := make([]int64, len(invoices))
	for i, inv := range invoices {
		ids[i] = inv.InvoiceID
	}
	attachments, err := s.attachmentRepo.FindAttachmentsByOwners(ctx, domain.OwnerInvoice, ids)
	if err != nil {
		return nil, nil, err
	}
	return invoices, attachments, nil
}

// SumTotalsBetween sums invoice totals for invoices dated in the range.
func (s *invoiceService) SumTotalsBetween(ctx context.Context, req dto.DateRangeRequest) (decimal.Decimal, error) {
	start, err := dto.ParseDate(req.StartDate)
	if err != nil {
		return decimal.Zero, apperrors.NewAppError(422, "invalid start date", apperrors.ErrValidation)
	}
	end, err := dto.ParseDate(req.EndDate)
	if err != nil {
		return decimal.Zero, apperrors.NewAppError(422, "invalid end date", apperrors.ErrValidation)
	}
	if start.After(end) {
		return decimal.Zero, apperrors.NewAppError(422, "start date must not be after end date", ErrInvalidDates)
	}
	return s.invoiceRepo.SumTotalsBetween(ctx, start, end)
}

// StatusBreakdown reports invoice counts and percentages per status.
// Percentages are zero when no invoices exist.
func (s *invoiceService) StatusBreakdown(ctx context.Context) (*domain.StatusBreakdown, error) {
	counts, err := s.invoiceRepo.CountByStatus(ctx)
	if err != nil {
		return nil, err
	}

	breakdown := &domain.StatusBreakdown{
		PendingCount:  counts[domain.StatusPending],
		PaidCount:     counts[domain.StatusPaid],
		OverdueCount:  counts[domain.StatusOverdue],
		CanceledCount: counts[domain.StatusCanceled],
	}
	breakdown.Total = breakdown.PendingCount + breakdown.PaidCount + breakdown.OverdueCount + breakdown.CanceledCount
	if breakdown.Total > 0 {
		total := float64(breakdown.Total)
		breakdown.PendingPercentage = float64(breakdown.PendingCount) * 100 / total
		breakdown.PaidPercentage = float64(breakdown.PaidCount) * 100 / total
		breakdown.OverduePercentage = float64(breakdown.OverdueCount) * 100 / total
		breakdown.CanceledPercentage = float64(breakdown.CanceledCount) * 100 / total
	}
	return breakdown, nil
}
