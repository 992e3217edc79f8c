package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"path"
	"strconv"
	"strings"

	"github.com/google/uuid"

	"github.com/mkassaw/invoicing_backend/internal/apperrors"
	"github.com/mkassaw/invoicing_backend/internal/core/domain"
	portsrepo "github.com/mkassaw/invoicing_backend/internal/core/ports/repositories"
	portssvc "github.com/mkassaw/invoicing_backend/internal/core/ports/services"
	portsstorage "github.com/mkassaw/invoicing_backend/internal/core/ports/storage"
	"github.com/mkassaw/invoicing_backend/internal/dto"
	"github.com/mkassaw/invoicing_backend/internal/middleware"
)

var ErrFileTooLarge = errors.New("attachment exceeds the size limit")

// attachmentService stores files and records their rows in two phases so a
// row never points at a file that was not written.
type attachmentService struct {
	attachmentRepo portsrepo.AttachmentRepositoryWithTx
	invoiceRepo    portsrepo.InvoiceReader
	paymentRepo    portsrepo.PaymentReader
	fileStore      portsstorage.FileStore
	maxFileBytes   int64
}

// NewAttachmentService creates a new AttachmentService.
func NewAttachmentService(
	attachmentRepo portsrepo.AttachmentRepositoryWithTx,
	invoiceRepo portsrepo.InvoiceReader,
	paymentRepo portsrepo.PaymentReader,
	fileStore portsstorage.FileStore,
	maxFileBytes int64,
) portssvc.AttachmentSvcFacade {
	return &attachmentService{
		attachmentRepo: attachmentRepo,
		invoiceRepo:    invoiceRepo,
		paymentRepo:    paymentRepo,
		fileStore:      fileStore,
		maxFileBytes:   maxFileBytes,
	}
}

// Ensure attachmentService implements the portssvc.AttachmentSvcFacade interface
var _ portssvc.AttachmentSvcFacade = (*attachmentService)(nil)

// ownerExists verifies the owning row is present before any write.
func (s *attachmentService) ownerExists(ctx context.Context, owner domain.OwnerRef) error {
	var err error
	switch owner.Kind {
	case domain.OwnerInvoice:
		_, err = s.invoiceRepo.FindInvoiceByID(ctx, owner.ID)
	case domain.OwnerPayment:
		_, err = s.paymentRepo.FindPaymentByID(ctx, owner.ID)
	default:
		return apperrors.NewAppError(422, "unknown attachment owner kind", apperrors.ErrValidation)
	}
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return apperrors.NewAppError(422, fmt.Sprintf("%s %d does not exist", owner.Kind, owner.ID), apperrors.ErrValidation)
		}
		return err
	}
	return nil
}

// CreateAttachment validates the owner, inserts the row with a null path,
// stores the file, then records the stored path and flips the uploaded flag.
func (s *attachmentService) CreateAttachment(ctx context.Context, req dto.CreateAttachmentRequest, upload portssvc.AttachmentUpload) (*domain.Attachment, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	kind, err := domain.ParseOwnerKind(req.TableName)
	if err != nil {
		return nil, apperrors.NewAppError(422, "unknown attachment owner kind", apperrors.ErrValidation)
	}
	owner := domain.OwnerRef{Kind: kind, ID: req.RowID}
	if err := s.ownerExists(ctx, owner); err != nil {
		return nil, err
	}
	if s.maxFileBytes > 0 && upload.Size > s.maxFileBytes {
		return nil, apperrors.NewAppError(422, "attachment exceeds the size limit", ErrFileTooLarge)
	}

	ext := strings.TrimPrefix(path.Ext(upload.FileName), ".")
	attachment := domain.Attachment{
		Owner:         owner,
		Type:          req.Type,
		FileName:      upload.FileName,
		FileExtension: ext,
		FileSize:      strconv.FormatInt(upload.Size, 10),
	}
	if err := s.attachmentRepo.SaveAttachment(ctx, &attachment); err != nil {
		return nil, err
	}

	key := fmt.Sprintf("%s/%d/%s", kind, owner.ID, uuid.NewString())
	if ext != "" {
		key += "." + ext
	}
	err = s.fileStore.Save(ctx, key, upload.Content)
	if err == nil {
		// The row must never point at a file that did not land.
		err = s.confirmStored(ctx, key)
	}
	if err != nil {
		logger.Error("failed to store attachment file", slog.Int64("attachment_id", attachment.AttachmentID), slog.String("error", err.Error()))
		// Best effort: the row without a stored file is useless.
		if delErr := s.attachmentRepo.DeleteAttachment(ctx, attachment.AttachmentID); delErr != nil {
			logger.Warn("failed to remove attachment row after store failure", slog.Int64("attachment_id", attachment.AttachmentID), slog.String("error", delErr.Error()))
		}
		return nil, apperrors.NewAppError(500, "failed to store attachment file", err)
	}

	if err := s.attachmentRepo.MarkAttachmentStored(ctx, attachment.AttachmentID, key); err != nil {
		return nil, err
	}
	attachment.FilePath = &key
	attachment.Uploaded = true

	logger.Info("attachment created", slog.Int64("attachment_id", attachment.AttachmentID),
		slog.String("owner_kind", string(kind)), slog.Int64("owner_id", owner.ID))
	return &attachment, nil
}

// confirmStored verifies the written file is actually present in the store
// before its path is recorded on the row.
func (s *attachmentService) confirmStored(ctx context.Context, key string) error {
	stored, err := s.fileStore.Exists(ctx, key)
	if err != nil {
		return err
	}
	if !stored {
		return fmt.Errorf("stored file %s is missing", key)
	}
	return nil
}

// DeleteAttachment removes the stored file and the row.
func (s *attachmentService) DeleteAttachment(ctx context.Context, attachmentID int64) error {
	logger := middleware.GetLoggerFromCtx(ctx)
	if err := s.attachmentRepo.DeleteAttachment(ctx, attachmentID); err != nil {
		return err
	}
	logger.Info("attachment deleted", slog.Int64("attachment_id", attachmentID))
	return nil
}
