package repositories

import (
	"context"

	"github.com/jackc/pgx/v5"

	"github.com/mkassaw/invoicing_backend/internal/core/domain"
)

// AttachmentReader defines read operations for attachment data
type AttachmentReader interface {
	// FindAttachmentByID retrieves a specific attachment by its identifier.
	FindAttachmentByID(ctx context.Context, attachmentID int64) (*domain.Attachment, error)

	// FindAttachmentsByOwner retrieves all attachments belonging to one owning row.
	FindAttachmentsByOwner(ctx context.Context, owner domain.OwnerRef) ([]domain.Attachment, error)

	// FindAttachmentsByOwners retrieves attachments for several rows of one
	// owner kind, grouped by owning row ID.
	FindAttachmentsByOwners(ctx context.Context, kind domain.OwnerKind, rowIDs []int64) (map[int64][]domain.Attachment, error)
}

// AttachmentWriter defines write operations for attachment data
type AttachmentWriter interface {
	// SaveAttachment inserts the attachment row with a null file path.
	SaveAttachment(ctx context.Context, attachment *domain.Attachment) error

	// MarkAttachmentStored sets the stored file path and flips the uploaded flag.
	MarkAttachmentStored(ctx context.Context, attachmentID int64, filePath string) error

	// DeleteAttachment removes the stored file and then the row, atomically.
	DeleteAttachment(ctx context.Context, attachmentID int64) error

	// DeleteAttachmentsByOwnerInTx removes the attachment rows and stored
	// files of one owning row within an existing transaction. A storage
	// failure surfaces as an error so the caller can roll back.
	DeleteAttachmentsByOwnerInTx(ctx context.Context, tx pgx.Tx, owner domain.OwnerRef) error
}

// AttachmentRepositoryFacade combines all attachment-related repository interfaces
type AttachmentRepositoryFacade interface {
	AttachmentReader
	AttachmentWriter
}

// AttachmentRepositoryWithTx extends AttachmentRepositoryFacade with transaction capabilities
type AttachmentRepositoryWithTx interface {
	AttachmentRepositoryFacade
	TransactionManager
}
