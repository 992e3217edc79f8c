package models

import "time"

// Attachment maps the ag_attachment table. Ownership is polymorphic:
// (table_name, row_id) identifies the owning row.
type Attachment struct {
	AttachmentID  int64     `json:"id"`
	TableName     string    `json:"table_name"`
	RowID         int64     `json:"row_id"`
	Type          int       `json:"type"`
	FilePath      *string   `json:"file_path"`
	FileName      string    `json:"file_name"`
	FileExtension string    `json:"file_extension"`
	FileSize      string    `json:"file_size"`
	CDNUploaded   bool      `json:"cdn_uploaded"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}
