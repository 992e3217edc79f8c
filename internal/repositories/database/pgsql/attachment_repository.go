package pgsql

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/mkassaw/invoicing_backend/internal/apperrors"
	"github.com/mkassaw/invoicing_backend/internal/core/domain"
	portsrepo "github.com/mkassaw/invoicing_backend/internal/core/ports/repositories"
	portsstorage "github.com/mkassaw/invoicing_backend/internal/core/ports/storage"
	"github.com/mkassaw/invoicing_backend/internal/models"
	"github.com/mkassaw/invoicing_backend/internal/utils/mapping"
)

type PgxAttachmentRepository struct {
	BaseRepository
	fileStore portsstorage.FileStore
}

// newPgxAttachmentRepository creates a new repository for attachment data.
// The file store participates in delete operations so stored files and rows
// go away together.
func newPgxAttachmentRepository(pool *pgxpool.Pool, fileStore portsstorage.FileStore) portsrepo.AttachmentRepositoryWithTx {
	return &PgxAttachmentRepository{
		BaseRepository: BaseRepository{Pool: pool},
		fileStore:      fileStore,
	}
}

// Ensure PgxAttachmentRepository implements portsrepo.AttachmentRepositoryWithTx
var _ portsrepo.AttachmentRepositoryWithTx = (*PgxAttachmentRepository)(nil)

const attachmentColumns = `id, table_name, row_id, type, file_path, file_name, file_extension, file_size, cdn_uploaded, created_at, updated_at`

func scanAttachment(row pgx.Row) (models.Attachment, error) {
	var m models.Attachment
	err := row.Scan(
		&m.AttachmentID,
		&m.TableName,
		&m.RowID,
		&m.Type,
		&m.FilePath,
		&m.FileName,
		&m.FileExtension,
		&m.FileSize,
		&m.CDNUploaded,
		&m.CreatedAt,
		&m.UpdatedAt,
	)
	return m, err
}

// SaveAttachment inserts the attachment row. The file path stays null until
// MarkAttachmentStored confirms the stored file.
func (r *PgxAttachmentRepository) SaveAttachment(ctx context.Context, attachment *domain.Attachment) error {
	m := mapping.ToModelAttachment(*attachment)
	query := `
		INSERT INTO ag_attachment (table_name, row_id, type, file_name, file_extension, file_size, cdn_uploaded, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING id;
	`
	now := time.Now()
	err := r.Pool.QueryRow(ctx, query,
		m.TableName,
		m.RowID,
		m.Type,
		m.FileName,
		m.FileExtension,
		m.FileSize,
		false,
		now,
		now,
	).Scan(&attachment.AttachmentID)
	if err != nil {
		return apperrors.NewAppError(500, "failed to insert attachment", err)
	}
	attachment.CreatedAt = now
	attachment.UpdatedAt = now
	return nil
}

// MarkAttachmentStored sets the stored file path and flips the uploaded flag.
func (r *PgxAttachmentRepository) MarkAttachmentStored(ctx context.Context, attachmentID int64, filePath string) error {
	query := `
		UPDATE ag_attachment
		SET file_path = $2, cdn_uploaded = TRUE, updated_at = $3
		WHERE id = $1;
	`
	cmdTag, err := r.Pool.Exec(ctx, query, attachmentID, filePath, time.Now())
	if err != nil {
		return apperrors.NewAppError(500, "failed to mark attachment stored", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.NewNotFoundError("attachment not found for update")
	}
	return nil
}

// FindAttachmentByID retrieves an attachment by its ID.
func (r *PgxAttachmentRepository) FindAttachmentByID(ctx context.Context, attachmentID int64) (*domain.Attachment, error) {
	query := `SELECT ` + attachmentColumns + ` FROM ag_attachment WHERE id = $1;`
	m, err := scanAttachment(r.Pool.QueryRow(ctx, query, attachmentID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, apperrors.NewAppError(500, "failed to find attachment by ID", err)
	}
	d := mapping.ToDomainAttachment(m)
	return &d, nil
}

// FindAttachmentsByOwner retrieves all attachments belonging to one owning row.
func (r *PgxAttachmentRepository) FindAttachmentsByOwner(ctx context.Context, owner domain.OwnerRef) ([]domain.Attachment, error) {
	query := `SELECT ` + attachmentColumns + ` FROM ag_attachment WHERE table_name = $1 AND row_id = $2 ORDER BY id;`
	rows, err := r.Pool.Query(ctx, query, string(owner.Kind), owner.ID)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to query attachments by owner", err)
	}
	defer rows.Close()

	attachments := []models.Attachment{}
	for rows.Next() {
		m, err := scanAttachment(rows)
		if err != nil {
			return nil, apperrors.NewAppError(500, "failed to scan attachment row", err)
		}
		attachments = append(attachments, m)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewAppError(500, "error iterating attachment rows", err)
	}
	return mapping.ToDomainAttachmentSlice(attachments), nil
}

// FindAttachmentsByOwners retrieves attachments for several rows of one owner
// kind, grouped by owning row ID. Rows without attachments get an empty slice.
func (r *PgxAttachmentRepository) FindAttachmentsByOwners(ctx context.Context, kind domain.OwnerKind, rowIDs []int64) (map[int64][]domain.Attachment, error) {
	result := make(map[int64][]domain.Attachment, len(rowIDs))
	for _, id := range rowIDs {
		result[id] = []domain.Attachment{}
	}
	if len(rowIDs) == 0 {
		return result, nil
	}

	query := `SELECT ` + attachmentColumns + ` FROM ag_attachment WHERE table_name = $1 AND row_id = ANY($2) ORDER BY row_id, id;`
	rows, err := r.Pool.Query(ctx, query, string(kind), rowIDs)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to query attachments by owners", err)
	}
	defer rows.Close()

	for rows.Next() {
		m, err := scanAttachment(rows)
		if err != nil {
			return nil, apperrors.NewAppError(500, "failed to scan attachment row during batch fetch", err)
		}
		d := mapping.ToDomainAttachment(m)
		result[d.Owner.ID] = append(result[d.Owner.ID], d)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewAppError(500, "error iterating attachment rows during batch fetch", err)
	}
	return result, nil
}

// DeleteAttachment removes the row and the stored file in one transaction.
// A file store failure before commit rolls the row deletion back.
func (r *PgxAttachmentRepository) DeleteAttachment(ctx context.Context, attachmentID int64) error {
	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer r.Rollback(ctx, tx)

	var filePath *string
	err = tx.QueryRow(ctx, `SELECT file_path FROM ag_attachment WHERE id = $1 FOR UPDATE;`, attachmentID).Scan(&filePath)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return apperrors.ErrNotFound
		}
		return apperrors.NewAppError(500, "failed to lock attachment for delete", err)
	}

	if _, err := tx.Exec(ctx, `DELETE FROM ag_attachment WHERE id = $1;`, attachmentID); err != nil {
		return apperrors.NewAppError(500, "failed to delete attachment row", err)
	}

	if filePath != nil {
		if err := r.fileStore.Delete(ctx, *filePath); err != nil {
			return apperrors.NewAppError(500, "failed to delete attachment file", err)
		}
	}

	return r.Commit(ctx, tx)
}

// DeleteAttachmentsByOwnerInTx removes the attachment rows and stored files
// of one owning row inside the caller's transaction.
func (r *PgxAttachmentRepository) DeleteAttachmentsByOwnerInTx(ctx context.Context, tx pgx.Tx, owner domain.OwnerRef) error {
	rows, err := tx.Query(ctx, `SELECT file_path FROM ag_attachment WHERE table_name = $1 AND row_id = $2 FOR UPDATE;`, string(owner.Kind), owner.ID)
	if err != nil {
		return apperrors.NewAppError(500, "failed to query attachments for cascade delete", err)
	}

	filePaths := []string{}
	for rows.Next() {
		var filePath *string
		if err := rows.Scan(&filePath); err != nil {
			rows.Close()
			return apperrors.NewAppError(500, "failed to scan attachment path", err)
		}
		if filePath != nil {
			filePaths = append(filePaths, *filePath)
		}
	}
	rows.Close()
	if err := rows.Err(); err != nil {
		return apperrors.NewAppError(500, "error iterating attachment paths", err)
	}

	if _, err := tx.Exec(ctx, `DELETE FROM ag_attachment WHERE table_name = $1 AND row_id = $2;`, string(owner.Kind), owner.ID); err != nil {
		return apperrors.NewAppError(500, "failed to delete attachment rows", err)
	}

	for _, p := range filePaths {
		if err := r.fileStore.Delete(ctx, p); err != nil {
			return apperrors.NewAppError(500, "failed to delete attachment file", err)
		}
	}
	return nil
}
