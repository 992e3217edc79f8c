package services

import (
	"context"
	"io"

	"github.com/mkassaw/invoicing_backend/internal/core/domain"
	"github.com/mkassaw/invoicing_backend/internal/dto"
)

// AttachmentUpload carries the file half of a multipart upload.
type AttachmentUpload struct {
	FileName string
	Size     int64
	Content  io.Reader
}

// AttachmentWriterSvc defines write operations for attachments
type AttachmentWriterSvc interface {
	// CreateAttachment validates the owner, stores the file and records the
	// row in two phases (row first with null path, then the stored path).
	CreateAttachment(ctx context.Context, req dto.CreateAttachmentRequest, upload AttachmentUpload) (*domain.Attachment, error)

	// DeleteAttachment removes the stored file and the row.
	DeleteAttachment(ctx context.Context, attachmentID int64) error
}

// AttachmentSvcFacade combines all attachment-related service interfaces
type AttachmentSvcFacade interface {
	AttachmentWriterSvc
}
