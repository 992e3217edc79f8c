package pgsql

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"

	"github.com/mkassaw/invoicing_backend/internal/apperrors"
	"github.com/mkassaw/invoicing_backend/internal/core/domain"
	portsrepo "github.com/mkassaw/invoicing_backend/internal/core/ports/repositories"
	"github.com/mkassaw/invoicing_backend/internal/models"
	"github.com/mkassaw/invoicing_backend/internal/utils/mapping"
)

type PgxPaymentRepository struct {
	BaseRepository
	attachmentRepo portsrepo.AttachmentRepositoryFacade
}

// newPgxPaymentRepository creates a new repository for payment data.
// The attachment repository participates in cascade deletes.
func newPgxPaymentRepository(pool *pgxpool.Pool, attachmentRepo portsrepo.AttachmentRepositoryFacade) portsrepo.PaymentRepositoryWithTx {
	return &PgxPaymentRepository{
		BaseRepository: BaseRepository{Pool: pool},
		attachmentRepo: attachmentRepo,
	}
}

// Ensure PgxPaymentRepository implements portsrepo.PaymentRepositoryWithTx
var _ portsrepo.PaymentRepositoryWithTx = (*PgxPaymentRepository)(nil)

const paymentColumns = `id, customer_id, invoice_id, journal, date, payment_type, payment_method, amount, note, created_at, created_by, updated_at, updated_by`

func scanPayment(row pgx.Row) (models.Payment, error) {
	var m models.Payment
	err := row.Scan(
		&m.PaymentID,
		&m.CustomerID,
		&m.InvoiceID,
		&m.JournalID,
		&m.Date,
		&m.PaymentType,
		&m.PaymentMethod,
		&m.Amount,
		&m.Note,
		&m.CreatedAt,
		&m.CreatedBy,
		&m.LastUpdatedAt,
		&m.LastUpdatedBy,
	)
	return m, err
}

// SavePayment persists a new payment.
func (r *PgxPaymentRepository) SavePayment(ctx context.Context, payment *domain.Payment) error {
	now := time.Now()
	m := mapping.ToModelPayment(*payment)
	query := `
		INSERT INTO in_payment (customer_id, invoice_id, journal, date, payment_type, payment_method, amount, note, created_at, created_by, updated_at, updated_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
		RETURNING id;
	`
	err := r.Pool.QueryRow(ctx, query,
		m.CustomerID,
		m.InvoiceID,
		m.JournalID,
		m.Date,
		m.PaymentType,
		m.PaymentMethod,
		m.Amount,
		m.Note,
		now,
		m.CreatedBy,
		now,
		m.LastUpdatedBy,
	).Scan(&payment.PaymentID)
	if err != nil {
		if vErr := constraintViolation(err, "payment already exists"); vErr != nil {
			return vErr
		}
		return apperrors.NewAppError(500, "failed to insert payment", err)
	}
	payment.CreatedAt = now
	payment.LastUpdatedAt = now
	return nil
}

// UpdatePayment overwrites an existing payment.
func (r *PgxPaymentRepository) UpdatePayment(ctx context.Context, payment *domain.Payment) error {
	now := time.Now()
	m := mapping.ToModelPayment(*payment)
	query := `
		UPDATE in_payment
		SET customer_id = $2, invoice_id = $3, journal = $4, date = $5,
		    payment_type = $6, payment_method = $7, amount = $8, note = $9,
		    updated_at = $10, updated_by = $11
		WHERE id = $1;
	`
	cmdTag, err := r.Pool.Exec(ctx, query,
		m.PaymentID,
		m.CustomerID,
		m.InvoiceID,
		m.JournalID,
		m.Date,
		m.PaymentType,
		m.PaymentMethod,
		m.Amount,
		m.Note,
		now,
		m.LastUpdatedBy,
	)
	if err != nil {
		if vErr := constraintViolation(err, "payment already exists"); vErr != nil {
			return vErr
		}
		return apperrors.NewAppError(500, "failed to update payment", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.NewNotFoundError("payment not found for update")
	}
	payment.LastUpdatedAt = now
	return nil
}

// DeletePayment removes the payment, its attachment rows and their stored
// files in one transaction.
func (r *PgxPaymentRepository) DeletePayment(ctx context.Context, paymentID int64) error {
	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer r.Rollback(ctx, tx)

	if err := r.attachmentRepo.DeleteAttachmentsByOwnerInTx(ctx, tx, domain.OwnerRef{Kind: domain.OwnerPayment, ID: paymentID}); err != nil {
		return err
	}

	cmdTag, err := tx.Exec(ctx, `DELETE FROM in_payment WHERE id = $1;`, paymentID)
	if err != nil {
		return apperrors.NewAppError(500, "failed to delete payment", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}

	return r.Commit(ctx, tx)
}

// FindPaymentByID retrieves a payment by its ID.
func (r *PgxPaymentRepository) FindPaymentByID(ctx context.Context, paymentID int64) (*domain.Payment, error) {
	query := `SELECT ` + paymentColumns + ` FROM in_payment WHERE id = $1;`
	m, err := scanPayment(r.Pool.QueryRow(ctx, query, paymentID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, apperrors.NewAppError(500, "failed to find payment by ID", err)
	}
	d := mapping.ToDomainPayment(m)
	return &d, nil
}

// ListPayments retrieves all payments, newest first.
func (r *PgxPaymentRepository) ListPayments(ctx context.Context) ([]domain.Payment, error) {
	query := `SELECT ` + paymentColumns + ` FROM in_payment ORDER BY id DESC;`
	rows, err := r.Pool.Query(ctx, query)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to query payments", err)
	}
	defer rows.Close()

	payments := []models.Payment{}
	for rows.Next() {
		m, err := scanPayment(rows)
		if err != nil {
			return nil, apperrors.NewAppError(500, "failed to scan payment row", err)
		}
		payments = append(payments, m)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewAppError(500, "error iterating payment rows", err)
	}
	return mapping.ToDomainPaymentSlice(payments), nil
}

// SumAmountsBetween sums payment amounts for payments dated in [start, end].
func (r *PgxPaymentRepository) SumAmountsBetween(ctx context.Context, start, end time.Time) (decimal.Decimal, error) {
	query := `SELECT COALESCE(SUM(amount), 0) FROM in_payment WHERE date BETWEEN $1 AND $2;`
	var sum decimal.Decimal
	if err := r.Pool.QueryRow(ctx, query, start, end).Scan(&sum); err != nil {
		return decimal.Zero, apperrors.NewAppError(500, "failed to sum payment amounts", err)
	}
	return sum, nil
}
