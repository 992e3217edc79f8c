package services

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/mkassaw/invoicing_backend/internal/core/domain"
	"github.com/mkassaw/invoicing_backend/internal/dto"
)

// PaymentReaderSvc defines read operations for payments
type PaymentReaderSvc interface {
	// GetPaymentByID retrieves a payment with its attachments.
	GetPaymentByID(ctx context.Context, paymentID int64) (*domain.Payment, []domain.Attachment, error)

	// ListPayments retrieves all payments, plus attachments per payment.
	ListPayments(ctx context.Context) ([]domain.Payment, map[int64][]domain.Attachment, error)

	// SumAmountsBetween sums payment amounts for payments dated in the range.
	SumAmountsBetween(ctx context.Context, req dto.DateRangeRequest) (decimal.Decimal, error)
}

// PaymentWriterSvc defines write operations for payments
type PaymentWriterSvc interface {
	// CreatePayment persists a new payment.
	CreatePayment(ctx context.Context, req dto.CreatePaymentRequest) (*domain.Payment, error)

	// UpdatePayment overwrites an existing payment.
	UpdatePayment(ctx context.Context, paymentID int64, req dto.CreatePaymentRequest) (*domain.Payment, error)

	// DeletePayment removes the payment, its attachments and stored files.
	DeletePayment(ctx context.Context, paymentID int64) error
}

// PaymentSvcFacade combines all payment-related service interfaces
type PaymentSvcFacade interface {
	PaymentReaderSvc
	PaymentWriterSvc
}
