package mapping

import (
	"github.com/mkassaw/invoicing_backend/internal/core/domain"
	"github.com/mkassaw/invoicing_backend/internal/models"
)

// ToModelAttachment converts a domain Attachment to a model Attachment
func ToModelAttachment(d domain.Attachment) models.Attachment {
	return models.Attachment{
		AttachmentID:  d.AttachmentID,
		TableName:     string(d.Owner.Kind),
		RowID:         d.Owner.ID,
		Type:          d.Type,
		FilePath:      d.FilePath,
		FileName:      d.FileName,
		FileExtension: d.FileExtension,
		FileSize:      d.FileSize,
		CDNUploaded:   d.Uploaded,
		CreatedAt:     d.CreatedAt,
		UpdatedAt:     d.UpdatedAt,
	}
}

// ToDomainAttachment converts a model Attachment to a domain Attachment
func ToDomainAttachment(m models.Attachment) domain.Attachment {
	return domain.Attachment{
		AttachmentID:  m.AttachmentID,
		Owner:         domain.OwnerRef{Kind: domain.OwnerKind(m.TableName), ID: m.RowID},
		Type:          m.Type,
		FilePath:      m.FilePath,
		FileName:      m.FileName,
		FileExtension: m.FileExtension,
		FileSize:      m.FileSize,
		Uploaded:      m.CDNUploaded,
		CreatedAt:     m.CreatedAt,
		UpdatedAt:     m.UpdatedAt,
	}
}

// ToDomainAttachmentSlice converts a slice of model Attachments to domain Attachments
func ToDomainAttachmentSlice(ms []models.Attachment) []domain.Attachment {
	ds := make([]domain.Attachment, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainAttachment(m)
	}
	return ds
}
