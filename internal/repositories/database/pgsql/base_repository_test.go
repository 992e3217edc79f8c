package pgsql

import (
	"fmt"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mkassaw/invoicing_backend/internal/apperrors"
)

func TestConstraintViolation_UniqueViolation(t *testing.T) {
	pgErr := &pgconn.PgError{Code: "23505", ConstraintName: "in_sales_invoice_reference_key"}

	err := constraintViolation(fmt.Errorf("exec: %w", pgErr), "invoice reference already exists")

	require.Error(t, err)
	assert.ErrorIs(t, err, apperrors.ErrDuplicate)
	var appErr *apperrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, 422, appErr.Code)
	assert.Equal(t, "invoice reference already exists", appErr.Message)
}

func TestConstraintViolation_ForeignKeyViolation(t *testing.T) {
	pgErr := &pgconn.PgError{Code: "23503", ConstraintName: "in_payment_journal_fkey"}

	err := constraintViolation(pgErr, "payment already exists")

	require.Error(t, err)
	assert.ErrorIs(t, err, apperrors.ErrValidation)
	var appErr *apperrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, 422, appErr.Code)
}

func TestConstraintViolation_OtherPgErrorPassesThrough(t *testing.T) {
	err := constraintViolation(&pgconn.PgError{Code: "23502"}, "duplicate")

	assert.NoError(t, err)
}

func TestConstraintViolation_PlainErrorPassesThrough(t *testing.T) {
	err := constraintViolation(assert.AnError, "duplicate")

	assert.NoError(t, err)
}
