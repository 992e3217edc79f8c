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

type PgxCustomerRepository struct {
	BaseRepository
}

// newPgxCustomerRepository creates a new repository for customer data.
func newPgxCustomerRepository(pool *pgxpool.Pool) portsrepo.CustomerRepositoryFacade {
	return &PgxCustomerRepository{BaseRepository: BaseRepository{Pool: pool}}
}

// Ensure PgxCustomerRepository implements portsrepo.CustomerRepositoryFacade
var _ portsrepo.CustomerRepositoryFacade = (*PgxCustomerRepository)(nil)

const customerColumns = `id, name, email, phone, address, type, company_name, created_at, created_by, updated_at, updated_by`

func scanCustomer(row pgx.Row) (models.Customer, error) {
	var m models.Customer
	err := row.Scan(
		&m.CustomerID,
		&m.Name,
		&m.Email,
		&m.Phone,
		&m.Address,
		&m.Type,
		&m.CompanyName,
		&m.CreatedAt,
		&m.CreatedBy,
		&m.LastUpdatedAt,
		&m.LastUpdatedBy,
	)
	return m, err
}

// FindCustomerByID retrieves a customer by its ID.
func (r *PgxCustomerRepository) FindCustomerByID(ctx context.Context, customerID int64) (*domain.Customer, error) {
	query := `SELECT ` + customerColumns + ` FROM customer WHERE id = $1;`
	m, err := scanCustomer(r.Pool.QueryRow(ctx, query, customerID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, apperrors.NewAppError(500, "failed to find customer by ID", err)
	}
	d := mapping.ToDomainCustomer(m)
	return &d, nil
}

// ListCustomers retrieves all customers.
func (r *PgxCustomerRepository) ListCustomers(ctx context.Context) ([]domain.Customer, error) {
	query := `SELECT ` + customerColumns + ` FROM customer ORDER BY id;`
	rows, err := r.Pool.Query(ctx, query)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to query customers", err)
	}
	defer rows.Close()

	customers := []models.Customer{}
	for rows.Next() {
		m, err := scanCustomer(rows)
		if err != nil {
			return nil, apperrors.NewAppError(500, "failed to scan customer row", err)
		}
		customers = append(customers, m)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewAppError(500, "error iterating customer rows", err)
	}
	return mapping.ToDomainCustomerSlice(customers), nil
}
