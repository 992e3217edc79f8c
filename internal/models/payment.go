package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Payment maps the in_payment table. The reference columns are all
// ON DELETE SET NULL, so they are pointers to survive NULL scans.
type Payment struct {
	PaymentID     int64           `json:"id"`
	CustomerID    *int64          `json:"customer_id"`
	InvoiceID     *int64          `json:"invoice_id"`
	JournalID     *int64          `json:"journal"` // Account reference, column name kept from schema
	Date          time.Time       `json:"date"`
	PaymentType   string          `json:"payment_type"`   // send or receive
	PaymentMethod string          `json:"payment_method"` // cash or bank
	Amount        decimal.Decimal `json:"amount"`
	Note          *string         `json:"note"`
	AuditFields
}
