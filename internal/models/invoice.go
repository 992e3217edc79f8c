package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// InvoiceStatus mirrors the status enum on in_sales_invoice.
type InvoiceStatus string

const (
	Pending  InvoiceStatus = "pending"
	Paid     InvoiceStatus = "paid"
	Overdue  InvoiceStatus = "overdue"
	Canceled InvoiceStatus = "canceled"
)

// Invoice maps the in_sales_invoice table. customer_id and currency_id are
// ON DELETE SET NULL references and repeat_cycle is a nullable enum, so all
// three are pointers to survive NULL scans.
type Invoice struct {
	InvoiceID        int64           `json:"id"`
	CustomerID       *int64          `json:"customer_id"`
	CurrencyID       *int64          `json:"currency_id"`
	Reference        string          `json:"reference"`
	Date             time.Time       `json:"date"`
	DueDate          *time.Time      `json:"due_date"`
	Status           InvoiceStatus   `json:"status"`
	IsRecurring      bool            `json:"is_recurring"`
	RepeatCycle      *string         `json:"repeat_cycle"`
	CreateBeforeDays int             `json:"create_before_days"`
	TaxRate          decimal.Decimal `json:"tax_rate"`
	TaxMethod        TaxMethod       `json:"tax_method"`
	Shipping         decimal.Decimal `json:"shipping"`
	Discount         decimal.Decimal `json:"discount"`
	Total            decimal.Decimal `json:"total"`
	GrandTotal       decimal.Decimal `json:"grand_total"`
	Note             *string         `json:"note"`
	AuditFields
}

// InvoiceItem maps the in_sales_invoice_item table.
type InvoiceItem struct {
	ItemID      int64           `json:"id"`
	InvoiceID   int64           `json:"invoice_id"`
	Title       string          `json:"title"`
	Description *string         `json:"description"`
	Cost        decimal.Decimal `json:"cost"`
	Price       decimal.Decimal `json:"price"`
	Quantity    int             `json:"quantity"`
	TaxRate     decimal.Decimal `json:"tax_rate"`
	TaxMethod   TaxMethod       `json:"tax_method"`
	Discount    decimal.Decimal `json:"discount"`
	CreatedAt   time.Time       `json:"created_at"`
	UpdatedAt   time.Time       `json:"updated_at"`
}
