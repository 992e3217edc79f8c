package pgsql

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/mkassaw/invoicing_backend/internal/apperrors"
	"github.com/mkassaw/invoicing_backend/internal/core/domain"
	portsrepo "github.com/mkassaw/invoicing_backend/internal/core/ports/repositories"
	"github.com/mkassaw/invoicing_backend/internal/models"
	"github.com/mkassaw/invoicing_backend/internal/utils/mapping"
)

type PgxCurrencyRepository struct {
	BaseRepository
}

// newPgxCurrencyRepository creates a new repository for currency data.
func newPgxCurrencyRepository(pool *pgxpool.Pool) portsrepo.CurrencyRepositoryFacade {
	return &PgxCurrencyRepository{BaseRepository: BaseRepository{Pool: pool}}
}

// Ensure PgxCurrencyRepository implements portsrepo.CurrencyRepositoryFacade
var _ portsrepo.CurrencyRepositoryFacade = (*PgxCurrencyRepository)(nil)

const currencyColumns = `id, name, shortcut, symbol, decimal_numbers, usd_to_currency, is_active, is_default`

func scanCurrency(row pgx.Row) (models.Currency, error) {
	var m models.Currency
	err := row.Scan(
		&m.CurrencyID,
		&m.Name,
		&m.Shortcut,
		&m.Symbol,
		&m.DecimalNumbers,
		&m.USDToCurrency,
		&m.IsActive,
		&m.IsDefault,
	)
	return m, err
}

// FindCurrencyByID retrieves a currency by its ID.
func (r *PgxCurrencyRepository) FindCurrencyByID(ctx context.Context, currencyID int64) (*domain.Currency, error) {
	query := `SELECT ` + currencyColumns + ` FROM currency WHERE id = $1;`
	m, err := scanCurrency(r.Pool.QueryRow(ctx, query, currencyID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, apperrors.NewAppError(500, "failed to find currency by ID", err)
	}
	d := mapping.ToDomainCurrency(m)
	return &d, nil
}

// ListCurrencies retrieves all currencies.
func (r *PgxCurrencyRepository) ListCurrencies(ctx context.Context) ([]domain.Currency, error) {
	query := `SELECT ` + currencyColumns + ` FROM currency ORDER BY id;`
	rows, err := r.Pool.Query(ctx, query)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to query currencies", err)
	}
	defer rows.Close()

	currencies := []models.Currency{}
	for rows.Next() {
		m, err := scanCurrency(rows)
		if err != nil {
			return nil, apperrors.NewAppError(500, "failed to scan currency row", err)
		}
		currencies = append(currencies, m)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewAppError(500, "error iterating currency rows", err)
	}
	return mapping.ToDomainCurrencySlice(currencies), nil
}
