package dto

import (
	"time"

	"github.com/mkassaw/invoicing_backend/internal/core/domain"
)

// CreateAttachmentRequest carries the non-file fields of the multipart
// upload. The file itself comes from the multipart form.
type CreateAttachmentRequest struct {
	TableName string `form:"table_name" binding:"required,oneof=in_sales_invoice in_payment"`
	RowID     int64  `form:"row_id" binding:"required,gt=0"`
	Type      int    `form:"type"`
}

// AttachmentResponse defines the data returned for an attachment.
type AttachmentResponse struct {
	AttachmentID  int64     `json:"id"`
	TableName     string    `json:"table_name"`
	RowID         int64     `json:"row_id"`
	Type          int       `json:"type"`
	FilePath      *string   `json:"file_path"`
	FileName      string    `json:"file_name"`
	FileExtension string    `json:"file_extension"`
	FileSize      string    `json:"file_size"`
	Uploaded      bool      `json:"cdn_uploaded"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

// ToAttachmentResponse converts a domain.Attachment to AttachmentResponse
func ToAttachmentResponse(a *domain.Attachment) AttachmentResponse {
	return AttachmentResponse{
		AttachmentID:  a.AttachmentID,
		TableName:     string(a.Owner.Kind),
		RowID:         a.Owner.ID,
		Type:          a.Type,
		FilePath:      a.FilePath,
		FileName:      a.FileName,
		FileExtension: a.FileExtension,
		FileSize:      a.FileSize,
		Uploaded:      a.Uploaded,
		CreatedAt:     a.CreatedAt,
		UpdatedAt:     a.UpdatedAt,
	}
}

// ToListAttachmentResponse converts a slice of domain.Attachment to DTOs
func ToListAttachmentResponse(atts []domain.Attachment) []AttachmentResponse {
	res := make([]AttachmentResponse, len(atts))
	for i := range atts {
		res[i] = ToAttachmentResponse(&atts[i])
	}
	return res
}
