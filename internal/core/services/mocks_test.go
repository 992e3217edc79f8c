package services_test

import (
	"context"
	"io"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"

	"github.com/mkassaw/invoicing_backend/internal/core/domain"
)

// --- Mock InvoiceRepository ---
type MockInvoiceRepository struct {
	mock.Mock
}

func (m *MockInvoiceRepository) Begin(ctx context.Context) (pgx.Tx, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(pgx.Tx), args.Error(1)
}

func (m *MockInvoiceRepository) Commit(ctx context.Context, tx pgx.Tx) error {
	args := m.Called(ctx, tx)
	return args.Error(0)
}

func (m *MockInvoiceRepository) Rollback(ctx context.Context, tx pgx.Tx) error {
	args := m.Called(ctx, tx)
	return args.Error(0)
}

func (m *MockInvoiceRepository) FindInvoiceByID(ctx context.Context, invoiceID int64) (*domain.Invoice, error) {
	args := m.Called(ctx, invoiceID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Invoice), args.Error(1)
}

func (m *MockInvoiceRepository) ListInvoices(ctx context.Context) ([]domain.Invoice, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Invoice), args.Error(1)
}

func (m *MockInvoiceRepository) FindItemsByInvoiceID(ctx context.Context, invoiceID int64) ([]domain.InvoiceItem, error) {
	args := m.Called(ctx, invoiceID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.InvoiceItem), args.Error(1)
}

func (m *MockInvoiceRepository) SumTotalsBetween(ctx context.Context, start, end time.Time) (decimal.Decimal, error) {
	args := m.Called(ctx, start, end)
	return args.Get(0).(decimal.Decimal), args.Error(1)
}

func (m *MockInvoiceRepository) CountByStatus(ctx context.Context) (map[domain.InvoiceStatus]int64, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[domain.InvoiceStatus]int64), args.Error(1)
}

func (m *MockInvoiceRepository) SaveInvoiceWithItems(ctx context.Context, invoice *domain.Invoice) error {
	args := m.Called(ctx, invoice)
	return args.Error(0)
}

func (m *MockInvoiceRepository) UpdateInvoiceWithItems(ctx context.Context, invoice *domain.Invoice, deleteItemIDs []int64, updateItems []domain.InvoiceItem, createItems []domain.InvoiceItem) error {
	args := m.Called(ctx, invoice, deleteItemIDs, updateItems, createItems)
	return args.Error(0)
}

func (m *MockInvoiceRepository) DeleteInvoice(ctx context.Context, invoiceID int64) error {
	args := m.Called(ctx, invoiceID)
	return args.Error(0)
}

// --- Mock PaymentRepository ---
type MockPaymentRepository struct {
	mock.Mock
}

func (m *MockPaymentRepository) Begin(ctx context.Context) (pgx.Tx, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(pgx.Tx), args.Error(1)
}

func (m *MockPaymentRepository) Commit(ctx context.Context, tx pgx.Tx) error {
	args := m.Called(ctx, tx)
	return args.Error(0)
}

func (m *MockPaymentRepository) Rollback(ctx context.Context, tx pgx.Tx) error {
	args := m.Called(ctx, tx)
	return args.Error(0)
}

func (m *MockPaymentRepository) FindPaymentByID(ctx context.Context, paymentID int64) (*domain.Payment, error) {
	args := m.Called(ctx, paymentID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Payment), args.Error(1)
}

func (m *MockPaymentRepository) ListPayments(ctx context.Context) ([]domain.Payment, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Payment), args.Error(1)
}

func (m *MockPaymentRepository) SumAmountsBetween(ctx context.Context, start, end time.Time) (decimal.Decimal, error) {
	args := m.Called(ctx, start, end)
	return args.Get(0).(decimal.Decimal), args.Error(1)
}

func (m *MockPaymentRepository) SavePayment(ctx context.Context, payment *domain.Payment) error {
	args := m.Called(ctx, payment)
	return args.Error(0)
}

func (m *MockPaymentRepository) UpdatePayment(ctx context.Context, payment *domain.Payment) error {
	args := m.Called(ctx, payment)
	return args.Error(0)
}

func (m *MockPaymentRepository) DeletePayment(ctx context.Context, paymentID int64) error {
	args := m.Called(ctx, paymentID)
	return args.Error(0)
}

// --- Mock AttachmentRepository ---
type MockAttachmentRepository struct {
	mock.Mock
}

func (m *MockAttachmentRepository) Begin(ctx context.Context) (pgx.Tx, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(pgx.Tx), args.Error(1)
}

func (m *MockAttachmentRepository) Commit(ctx context.Context, tx pgx.Tx) error {
	args := m.Called(ctx, tx)
	return args.Error(0)
}

func (m *MockAttachmentRepository) Rollback(ctx context.Context, tx pgx.Tx) error {
	args := m.Called(ctx, tx)
	return args.Error(0)
}

func (m *MockAttachmentRepository) FindAttachmentByID(ctx context.Context, attachmentID int64) (*domain.Attachment, error) {
	args := m.Called(ctx, attachmentID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Attachment), args.Error(1)
}

func (m *MockAttachmentRepository) FindAttachmentsByOwner(ctx context.Context, owner domain.OwnerRef) ([]domain.Attachment, error) {
	args := m.Called(ctx, owner)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Attachment), args.Error(1)
}

func (m *MockAttachmentRepository) FindAttachmentsByOwners(ctx context.Context, kind domain.OwnerKind, rowIDs []int64) (map[int64][]domain.Attachment, error) {
	args := m.Called(ctx, kind, rowIDs)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[int64][]domain.Attachment), args.Error(1)
}

func (m *MockAttachmentRepository) SaveAttachment(ctx context.Context, attachment *domain.Attachment) error {
	args := m.Called(ctx, attachment)
	return args.Error(0)
}

func (m *MockAttachmentRepository) MarkAttachmentStored(ctx context.Context, attachmentID int64, filePath string) error {
	args := m.Called(ctx, attachmentID, filePath)
	return args.Error(0)
}

func (m *MockAttachmentRepository) DeleteAttachment(ctx context.Context, attachmentID int64) error {
	args := m.Called(ctx, attachmentID)
	return args.Error(0)
}

func (m *MockAttachmentRepository) DeleteAttachmentsByOwnerInTx(ctx context.Context, tx pgx.Tx, owner domain.OwnerRef) error {
	args := m.Called(ctx, tx, owner)
	return args.Error(0)
}

// --- Mock FileStore ---
type MockFileStore struct {
	mock.Mock
}

func (m *MockFileStore) Save(ctx context.Context, key string, content io.Reader) error {
	args := m.Called(ctx, key, content)
	return args.Error(0)
}

func (m *MockFileStore) Delete(ctx context.Context, key string) error {
	args := m.Called(ctx, key)
	return args.Error(0)
}

func (m *MockFileStore) Exists(ctx context.Context, key string) (bool, error) {
	args := m.Called(ctx, key)
	return args.Bool(0), args.Error(1)
}
