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

type PgxInvoiceRepository struct {
	BaseRepository
	attachmentRepo portsrepo.AttachmentRepositoryFacade
}

// newPgxInvoiceRepository creates a new repository for invoice and line item
// data. The attachment repository participates in cascade deletes.
func newPgxInvoiceRepository(pool *pgxpool.Pool, attachmentRepo portsrepo.AttachmentRepositoryFacade) portsrepo.InvoiceRepositoryWithTx {
	return &PgxInvoiceRepository{
		BaseRepository: BaseRepository{Pool: pool},
		attachmentRepo: attachmentRepo,
	}
}

// Ensure PgxInvoiceRepository implements portsrepo.InvoiceRepositoryWithTx
var _ portsrepo.InvoiceRepositoryWithTx = (*PgxInvoiceRepository)(nil)

const invoiceColumns = `id, customer_id, currency_id, reference, date, due_date, status, is_recurring, repeat_cycle, create_before_days, tax_rate, tax_method, shipping, discount, total, grand_total, note, created_at, created_by, updated_at, updated_by`

const invoiceItemColumns = `id, invoice_id, title, description, cost, price, quantity, tax_rate, tax_method, discount, created_at, updated_at`

func scanInvoice(row pgx.Row) (models.Invoice, error) {
	var m models.Invoice
	err := row.Scan(
		&m.InvoiceID,
		&m.CustomerID,
		&m.CurrencyID,
		&m.Reference,
		&m.Date,
		&m.DueDate,
		&m.Status,
		&m.IsRecurring,
		&m.RepeatCycle,
		&m.CreateBeforeDays,
		&m.TaxRate,
		&m.TaxMethod,
		&m.Shipping,
		&m.Discount,
		&m.Total,
		&m.GrandTotal,
		&m.Note,
		&m.CreatedAt,
		&m.CreatedBy,
		&m.LastUpdatedAt,
		&m.LastUpdatedBy,
	)
	return m, err
}

func scanInvoiceItem(row pgx.Row) (models.InvoiceItem, error) {
	var m models.InvoiceItem
	err := row.Scan(
		&m.ItemID,
		&m.InvoiceID,
		&m.Title,
		&m.Description,
		&m.Cost,
		&m.Price,
		&m.Quantity,
		&m.TaxRate,
		&m.TaxMethod,
		&m.Discount,
		&m.CreatedAt,
		&m.UpdatedAt,
	)
	return m, err
}

// SaveInvoiceWithItems persists the invoice and its line items in one
// transaction. The invoice gets its generated ID; items get theirs on reload.
func (r *PgxInvoiceRepository) SaveInvoiceWithItems(ctx context.Context, invoice *domain.Invoice) error {
	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer r.Rollback(ctx, tx)

	now := time.Now()
	m := mapping.ToModelInvoice(*invoice)
	query := `
		INSERT INTO in_sales_invoice (
			customer_id, currency_id, reference, date, due_date, status,
			is_recurring, repeat_cycle, create_before_days,
			tax_rate, tax_method, shipping, discount, total, grand_total, note,
			created_at, created_by, updated_at, updated_by
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $19, $20)
		RETURNING id;
	`
	err = tx.QueryRow(ctx, query,
		m.CustomerID,
		m.CurrencyID,
		m.Reference,
		m.Date,
		m.DueDate,
		m.Status,
		m.IsRecurring,
		m.RepeatCycle,
		m.CreateBeforeDays,
		m.TaxRate,
		m.TaxMethod,
		m.Shipping,
		m.Discount,
		m.Total,
		m.GrandTotal,
		m.Note,
		now,
		m.CreatedBy,
		now,
		m.LastUpdatedBy,
	).Scan(&invoice.InvoiceID)
	if err != nil {
		if vErr := constraintViolation(err, "invoice reference already exists"); vErr != nil {
			return vErr
		}
		return apperrors.NewAppError(500, "failed to insert invoice "+m.Reference, err)
	}

	if err := insertItemsInTx(ctx, tx, invoice.InvoiceID, invoice.Items, now); err != nil {
		return err
	}

	if err := r.Commit(ctx, tx); err != nil {
		return err
	}
	invoice.CreatedAt = now
	invoice.LastUpdatedAt = now
	return nil
}

// UpdateInvoiceWithItems overwrites the invoice row and applies the item
// reconciliation plan in one transaction. Deletions run before inserts and
// updates so the persisted set matches the payload exactly.
func (r *PgxInvoiceRepository) UpdateInvoiceWithItems(ctx context.Context, invoice *domain.Invoice, deleteItemIDs []int64, updateItems []domain.InvoiceItem, createItems []domain.InvoiceItem) error {
	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer r.Rollback(ctx, tx)

	now := time.Now()
	m := mapping.ToModelInvoice(*invoice)
	query := `
		UPDATE in_sales_invoice
		SET customer_id = $2, currency_id = $3, reference = $4, date = $5, due_date = $6,
		    status = $7, is_recurring = $8, repeat_cycle = $9, create_before_days = $10,
		    tax_rate = $11, tax_method = $12, shipping = $13, discount = $14,
		    total = $15, grand_total = $16, note = $17, updated_at = $18, updated_by = $19
		WHERE id = $1;
	`
	cmdTag, err := tx.Exec(ctx, query,
		m.InvoiceID,
		m.CustomerID,
		m.CurrencyID,
		m.Reference,
		m.Date,
		m.DueDate,
		m.Status,
		m.IsRecurring,
		m.RepeatCycle,
		m.CreateBeforeDays,
		m.TaxRate,
		m.TaxMethod,
		m.Shipping,
		m.Discount,
		m.Total,
		m.GrandTotal,
		m.Note,
		now,
		m.LastUpdatedBy,
	)
	if err != nil {
		if vErr := constraintViolation(err, "invoice reference already exists"); vErr != nil {
			return vErr
		}
		return apperrors.NewAppError(500, "failed to update invoice", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.NewNotFoundError("invoice not found for update")
	}

	if len(deleteItemIDs) > 0 {
		if _, err := tx.Exec(ctx, `DELETE FROM in_sales_invoice_item WHERE invoice_id = $1 AND id = ANY($2);`, invoice.InvoiceID, deleteItemIDs); err != nil {
			return apperrors.NewAppError(500, "failed to delete invoice items", err)
		}
	}

	if len(updateItems) > 0 {
		batch := &pgx.Batch{}
		itemQuery := `
			UPDATE in_sales_invoice_item
			SET title = $3, description = $4, cost = $5, price = $6, quantity = $7,
			    tax_rate = $8, tax_method = $9, discount = $10, updated_at = $11
			WHERE id = $1 AND invoice_id = $2;
		`
		for _, it := range updateItems {
			mi := mapping.ToModelInvoiceItem(it)
			batch.Queue(itemQuery,
				mi.ItemID,
				invoice.InvoiceID,
				mi.Title,
				mi.Description,
				mi.Cost,
				mi.Price,
				mi.Quantity,
				mi.TaxRate,
				mi.TaxMethod,
				mi.Discount,
				now,
			)
		}
		if err := tx.SendBatch(ctx, batch).Close(); err != nil {
			return apperrors.NewAppError(500, "failed to execute item update batch", err)
		}
	}

	if err := insertItemsInTx(ctx, tx, invoice.InvoiceID, createItems, now); err != nil {
		return err
	}

	if err := r.Commit(ctx, tx); err != nil {
		return err
	}
	invoice.LastUpdatedAt = now
	return nil
}

func insertItemsInTx(ctx context.Context, tx pgx.Tx, invoiceID int64, items []domain.InvoiceItem, now time.Time) error {
	if len(items) == 0 {
		return nil
	}
	batch := &pgx.Batch{}
	query := `
		INSERT INTO in_sales_invoice_item (invoice_id, title, description, cost, price, quantity, tax_rate, tax_method, discount, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11);
	`
	for _, it := range items {
		mi := mapping.ToModelInvoiceItem(it)
		batch.Queue(query,
			invoiceID,
			mi.Title,
			mi.Description,
			mi.Cost,
			mi.Price,
			mi.Quantity,
			mi.TaxRate,
			mi.TaxMethod,
			mi.Discount,
			now,
			now,
		)
	}
	if err := tx.SendBatch(ctx, batch).Close(); err != nil {
		return apperrors.NewAppError(500, "failed to execute item insert batch", err)
	}
	return nil
}

// DeleteInvoice removes the invoice, its line items, its attachment rows and
// their stored files in one transaction. A file store failure rolls back
// every row deletion.
func (r *PgxInvoiceRepository) DeleteInvoice(ctx context.Context, invoiceID int64) error {
	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer r.Rollback(ctx, tx)

	if err := r.attachmentRepo.DeleteAttachmentsByOwnerInTx(ctx, tx, domain.OwnerRef{Kind: domain.OwnerInvoice, ID: invoiceID}); err != nil {
		return err
	}

	if _, err := tx.Exec(ctx, `DELETE FROM in_sales_invoice_item WHERE invoice_id = $1;`, invoiceID); err != nil {
		return apperrors.NewAppError(500, "failed to delete invoice items", err)
	}

	cmdTag, err := tx.Exec(ctx, `DELETE FROM in_sales_invoice WHERE id = $1;`, invoiceID)
	if err != nil {
		return apperrors.NewAppError(500, "failed to delete invoice", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}

	return r.Commit(ctx, tx)
}

// FindInvoiceByID retrieves an invoice with its line items.
func (r *PgxInvoiceRepository) FindInvoiceByID(ctx context.Context, invoiceID int64) (*domain.Invoice, error) {
	query := `SELECT ` + invoiceColumns + ` FROM in_sales_invoice WHERE id = $1;`
	m, err := scanInvoice(r.Pool.QueryRow(ctx, query, invoiceID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, apperrors.NewAppError(500, "failed to find invoice by ID", err)
	}

	invoice := mapping.ToDomainInvoice(m)
	items, err := r.FindItemsByInvoiceID(ctx, invoiceID)
	if err != nil {
		return nil, err
	}
	invoice.Items = items
	return &invoice, nil
}

// FindItemsByInvoiceID retrieves the line items of one invoice.
func (r *PgxInvoiceRepository) FindItemsByInvoiceID(ctx context.Context, invoiceID int64) ([]domain.InvoiceItem, error) {
	query := `SELECT ` + invoiceItemColumns + ` FROM in_sales_invoice_item WHERE invoice_id = $1 ORDER BY id;`
	rows, err := r.Pool.Query(ctx, query, invoiceID)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to query invoice items", err)
	}
	defer rows.Close()

	items := []models.InvoiceItem{}
	for rows.Next() {
		m, err := scanInvoiceItem(rows)
		if err != nil {
			return nil, apperrors.NewAppError(500, "failed to scan invoice item row", err)
		}
		items = append(items, m)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewAppError(500, "error iterating invoice item rows", err)
	}
	return mapping.ToDomainInvoiceItemSlice(items), nil
}

// ListInvoices retrieves all invoices with their line items, newest first.
func (r *PgxInvoiceRepository) ListInvoices(ctx context.Context) ([]domain.Invoice, error) {
	query := `SELECT ` + invoiceColumns + ` FROM in_sales_invoice ORDER BY id DESC;`
	rows, err := r.Pool.Query(ctx, query)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to query invoices", err)
	}
	defer rows.Close()

	modelInvoices := []models.Invoice{}
	for rows.Next() {
		m, err := scanInvoice(rows)
		if err != nil {
			return nil, apperrors.NewAppError(500, "failed to scan invoice row", err)
		}
		modelInvoices = append(modelInvoices, m)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewAppError(500, "error iterating invoice rows", err)
	}

	invoices := make([]domain.Invoice, len(modelInvoices))
	invoiceIDs := make([]int64, len(modelInvoices))
	indexByID := make(map[int64]int, len(modelInvoices))
	for i, m := range modelInvoices {
		invoices[i] = mapping.ToDomainInvoice(m)
		invoices[i].Items = []domain.InvoiceItem{}
		invoiceIDs[i] = m.InvoiceID
		indexByID[m.InvoiceID] = i
	}
	if len(invoiceIDs) == 0 {
		return invoices, nil
	}

	itemQuery := `SELECT ` + invoiceItemColumns + ` FROM in_sales_invoice_item WHERE invoice_id = ANY($1) ORDER BY invoice_id, id;`
	itemRows, err := r.Pool.Query(ctx, itemQuery, invoiceIDs)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to query invoice items during batch fetch", err)
	}
	defer itemRows.Close()

	for itemRows.Next() {
		m, err := scanInvoiceItem(itemRows)
		if err != nil {
			return nil, apperrors.NewAppError(500, "failed to scan invoice item row during batch fetch", err)
		}
		item := mapping.ToDomainInvoiceItem(m)
		if i, ok := indexByID[item.InvoiceID]; ok {
			invoices[i].Items = append(invoices[i].Items, item)
		}
	}
	if err := itemRows.Err(); err != nil {
		return nil, apperrors.NewAppError(500, "error iterating invoice item rows during batch fetch", err)
	}
	return invoices, nil
}

// SumTotalsBetween sums invoice totals for invoices dated in [start, end].
func (r *PgxInvoiceRepository) SumTotalsBetween(ctx context.Context, start, end time.Time) (decimal.Decimal, error) {
	query := `SELECT COALESCE(SUM(total), 0) FROM in_sales_invoice WHERE date BETWEEN $1 AND $2;`
	var sum decimal.Decimal
	if err := r.Pool.QueryRow(ctx, query, start, end).Scan(&sum); err != nil {
		return decimal.Zero, apperrors.NewAppError(500, "failed to sum invoice totals", err)
	}
	return sum, nil
}

// CountByStatus returns the number of invoices per status.
func (r *PgxInvoiceRepository) CountByStatus(ctx context.Context) (map[domain.InvoiceStatus]int64, error) {
	query := `SELECT status, COUNT(*) FROM in_sales_invoice GROUP BY status;`
	rows, err := r.Pool.Query(ctx, query)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to count invoices by status", err)
	}
	defer rows.Close()

	counts := make(map[domain.InvoiceStatus]int64)
	for rows.Next() {
		var status string
		var count int64
		if err := rows.Scan(&status, &count); err != nil {
			return nil, apperrors.NewAppError(500, "failed to scan status count row", err)
		}
		counts[domain.InvoiceStatus(status)] = count
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewAppError(500, "error iterating status count rows", err)
	}
	return counts, nil
}
