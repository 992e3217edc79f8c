package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// PaymentType is the direction of a payment.
type PaymentType string

const (
	PaymentSend    PaymentType = "send"
	PaymentReceive PaymentType = "receive"
)

// PaymentMethod is the channel a payment moved through.
type PaymentMethod string

const (
	MethodCash PaymentMethod = "cash"
	MethodBank PaymentMethod = "bank"
)

// Payment records money moving against an invoice, booked to an account journal.
type Payment struct {
	PaymentID     int64           `json:"paymentID"`
	CustomerID    int64           `json:"customerID"`
	InvoiceID     int64           `json:"invoiceID"`
	JournalID     int64           `json:"journalID"` // Account reference
	Date          time.Time       `json:"date"`
	PaymentType   PaymentType     `json:"paymentType"`
	PaymentMethod PaymentMethod   `json:"paymentMethod"`
	Amount        decimal.Decimal `json:"amount"`
	Note          *string         `json:"note"`
	AuditFields
}
