package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/mkassaw/invoicing_backend/internal/core/domain"
)

// CreatePaymentRequest defines the data needed to record a payment.
// Updates accept the same shape and overwrite every field.
type CreatePaymentRequest struct {
	CustomerID    int64           `json:"customer_id" binding:"required,gt=0"`
	InvoiceID     int64           `json:"invoice_id" binding:"required,gt=0"`
	JournalID     int64           `json:"journal" binding:"required,gt=0"`
	Date          string          `json:"date" binding:"required,datefmt"`
	PaymentType   string          `json:"payment_type" binding:"required,oneof=send receive"`
	PaymentMethod string          `json:"payment_method" binding:"required,oneof=cash bank"`
	Amount        decimal.Decimal `json:"amount" binding:"required"`
	Note          *string         `json:"note"`
}

// ToDomainPayment converts the request into a domain Payment.
func (r CreatePaymentRequest) ToDomainPayment() (domain.Payment, error) {
	date, err := ParseDate(r.Date)
	if err != nil {
		return domain.Payment{}, err
	}
	return domain.Payment{
		CustomerID:    r.CustomerID,
		InvoiceID:     r.InvoiceID,
		JournalID:     r.JournalID,
		Date:          date,
		PaymentType:   domain.PaymentType(r.PaymentType),
		PaymentMethod: domain.PaymentMethod(r.PaymentMethod),
		Amount:        r.Amount,
		Note:          r.Note,
	}, nil
}

// PaymentResponse defines the data returned for a payment, with its
// attachment records embedded.
type PaymentResponse struct {
	PaymentID     int64                `json:"id"`
	CustomerID    int64                `json:"customer_id"`
	InvoiceID     int64                `json:"invoice_id"`
	JournalID     int64                `json:"journal"`
	Date          time.Time            `json:"date"`
	PaymentType   string               `json:"payment_type"`
	PaymentMethod string               `json:"payment_method"`
	Amount        decimal.Decimal      `json:"amount"`
	Note          *string              `json:"note"`
	Attachments   []AttachmentResponse `json:"attachments"`
	CreatedAt     time.Time            `json:"created_at"`
	UpdatedAt     time.Time            `json:"updated_at"`
}

// ToPaymentResponse converts a domain.Payment and its attachments to a DTO
func ToPaymentResponse(p *domain.Payment, atts []domain.Attachment) PaymentResponse {
	return PaymentResponse{
		PaymentID:     p.PaymentID,
		CustomerID:    p.CustomerID,
		InvoiceID:     p.InvoiceID,
		JournalID:     p.JournalID,
		Date:          p.Date,
		PaymentType:   string(p.PaymentType),
		PaymentMethod: string(p.PaymentMethod),
		Amount:        p.Amount,
		Note:          p.Note,
		Attachments:   ToListAttachmentResponse(atts),
		CreatedAt:     p.CreatedAt,
		UpdatedAt:     p.LastUpdatedAt,
	}
}
