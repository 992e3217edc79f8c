package repositories

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/mkassaw/invoicing_backend/internal/core/domain"
)

// PaymentReader defines read operations for payment data
type PaymentReader interface {
	// FindPaymentByID retrieves a specific payment by its identifier.
	FindPaymentByID(ctx context.Context, paymentID int64) (*domain.Payment, error)

	// ListPayments retrieves all payments, newest first.
	ListPayments(ctx context.Context) ([]domain.Payment, error)

	// SumAmountsBetween sums payment amounts for payments dated in [start, end].
	SumAmountsBetween(ctx context.Context, start, end time.Time) (decimal.Decimal, error)
}

// PaymentWriter defines write operations for payment data
type PaymentWriter interface {
	// SavePayment persists a new payment.
	SavePayment(ctx context.Context, payment *domain.Payment) error

	// UpdatePayment overwrites an existing payment.
	UpdatePayment(ctx context.Context, payment *domain.Payment) error

	// DeletePayment removes a payment, its attachment rows and their stored
	// files in one transaction.
	DeletePayment(ctx context.Context, paymentID int64) error
}

// PaymentRepositoryFacade combines all payment-related repository interfaces
type PaymentRepositoryFacade interface {
	PaymentReader
	PaymentWriter
}

// PaymentRepositoryWithTx extends PaymentRepositoryFacade with transaction capabilities
type PaymentRepositoryWithTx interface {
	PaymentRepositoryFacade
	TransactionManager
}
