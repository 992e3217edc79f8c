package services

import (
	"context"
	"log/slog"

	"github.com/shopspring/decimal"

	"github.com/mkassaw/invoicing_backend/internal/apperrors"
	"github.com/mkassaw/invoicing_backend/internal/core/domain"
	portsrepo "github.com/mkassaw/invoicing_backend/internal/core/ports/repositories"
	portssvc "github.com/mkassaw/invoicing_backend/internal/core/ports/services"
	"github.com/mkassaw/invoicing_backend/internal/dto"
	"github.com/mkassaw/invoicing_backend/internal/middleware"
)

// paymentService provides payment recording against invoices.
type paymentService struct {
	paymentRepo    portsrepo.PaymentRepositoryWithTx
	attachmentRepo portsrepo.AttachmentRepositoryFacade
}

// NewPaymentService creates a new PaymentService.
func NewPaymentService(paymentRepo portsrepo.PaymentRepositoryWithTx, attachmentRepo portsrepo.AttachmentRepositoryFacade) portssvc.PaymentSvcFacade {
	return &paymentService{
		paymentRepo:    paymentRepo,
		attachmentRepo: attachmentRepo,
	}
}

// Ensure paymentService implements the portssvc.PaymentSvcFacade interface
var _ portssvc.PaymentSvcFacade = (*paymentService)(nil)

// CreatePayment persists a new payment.
func (s *paymentService) CreatePayment(ctx context.Context, req dto.CreatePaymentRequest) (*domain.Payment, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	payment, err := req.ToDomainPayment()
	if err != nil {
		return nil, apperrors.NewAppError(422, "invalid date in payment payload", apperrors.ErrValidation)
	}

	if err := s.paymentRepo.SavePayment(ctx, &payment); err != nil {
		logger.Error("failed to save payment", slog.Int64("invoice_id", payment.InvoiceID), slog.String("error", err.Error()))
		return nil, err
	}

	logger.Info("payment created", slog.Int64("payment_id", payment.PaymentID), slog.Int64("invoice_id", payment.InvoiceID))
	return &payment, nil
}

// UpdatePayment overwrites an existing payment with the full payload.
func (s *paymentService) UpdatePayment(ctx context.Context, paymentID int64, req dto.CreatePaymentRequest) (*domain.Payment, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	persisted, err := s.paymentRepo.FindPaymentByID(ctx, paymentID)
	if err != nil {
		return nil, err
	}

	payment, err := req.ToDomainPayment()
	if err != nil {
		return nil, apperrors.NewAppError(422, "invalid date in payment payload", apperrors.ErrValidation)
	}
	payment.PaymentID = paymentID
	payment.AuditFields = persisted.AuditFields

	if err := s.paymentRepo.UpdatePayment(ctx, &payment); err != nil {
		logger.Error("failed to update payment", slog.Int64("payment_id", paymentID), slog.String("error", err.Error()))
		return nil, err
	}

	logger.Info("payment updated", slog.Int64("payment_id", paymentID))
	return &payment, nil
}

// DeletePayment removes the payment, its attachments and stored files.
func (s *paymentService) DeletePayment(ctx context.Context, paymentID int64) error {
	logger := middleware.GetLoggerFromCtx(ctx)
	if err := s.paymentRepo.DeletePayment(ctx, paymentID); err != nil {
		return err
	}
	logger.Info("payment deleted", slog.Int64("payment_id", paymentID))
	return nil
}

// GetPaymentByID retrieves a payment with its attachments.
func (s *paymentService) GetPaymentByID(ctx context.Context, paymentID int64) (*domain.Payment, []domain.Attachment, error) {
	payment, err := s.paymentRepo.FindPaymentByID(ctx, paymentID)
	if err != nil {
		return nil, nil, err
	}
	attachments, err := s.attachmentRepo.FindAttachmentsByOwner(ctx, domain.OwnerRef{Kind: domain.OwnerPayment, ID: paymentID})
	if err != nil {
		return nil, nil, err
	}
	return payment, attachments, nil
}

// ListPayments retrieves all payments, plus attachments per payment.
func (s *paymentService) ListPayments(ctx context.Context) ([]domain.Payment, map[int64][]domain.Attachment, error) {
	payments, err := s.paymentRepo.ListPayments(ctx)
	if err != nil {
		return nil, nil, err
	}
	ids := make([]int64, len(payments))
	for i, p := range payments {
		ids[i] = p.PaymentID
	}
	attachments, err := s.attachmentRepo.FindAttachmentsByOwners(ctx, domain.OwnerPayment, ids)
	if err != nil {
		return nil, nil, err
	}
	return payments, attachments, nil
}

// SumAmountsBetween sums payment amounts for payments dated in the range.
func (s *paymentService) SumAmountsBetween(ctx context.Context, req dto.DateRangeRequest) (decimal.Decimal, error) {
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
	return s.paymentRepo.SumAmountsBetween(ctx, start, end)
}
