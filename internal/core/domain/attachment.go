package domain

import (
	"fmt"
	"time"
)

// OwnerKind identifies the kind of entity an attachment belongs to.
// The values double as the owning table names in the schema.
type OwnerKind string

const (
	OwnerInvoice OwnerKind = "in_sales_invoice"
	OwnerPayment OwnerKind = "in_payment"
)

// ParseOwnerKind validates a raw owner kind against the closed set.
func ParseOwnerKind(s string) (OwnerKind, error) {
	switch OwnerKind(s) {
	case OwnerInvoice, OwnerPayment:
		return OwnerKind(s), nil
	}
	return "", fmt.Errorf("unknown attachment owner kind %q", s)
}

// OwnerRef is the tagged association identifying the row an attachment
// belongs to, standing in for a foreign key.
type OwnerRef struct {
	Kind OwnerKind `json:"kind"`
	ID   int64     `json:"id"`
}

// Attachment is a file record attached to an invoice or payment.
// FilePath stays nil until the file has been stored; Uploaded is flipped
// once the stored path is confirmed.
type Attachment struct {
	AttachmentID  int64     `json:"attachmentID"`
	Owner         OwnerRef  `json:"owner"`
	Type          int       `json:"type"`
	FilePath      *string   `json:"filePath"`
	FileName      string    `json:"fileName"`
	FileExtension string    `json:"fileExtension"`
	FileSize      string    `json:"fileSize"`
	Uploaded      bool      `json:"uploaded"`
	CreatedAt     time.Time `json:"createdAt"`
	UpdatedAt     time.Time `json:"updatedAt"`
}
