package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// InvoiceStatus indicates the lifecycle state of an invoice.
type InvoiceStatus string

const (
	StatusPending  InvoiceStatus = "pending"
	StatusPaid     InvoiceStatus = "paid"
	StatusOverdue  InvoiceStatus = "overdue"
	StatusCanceled InvoiceStatus = "canceled"
)

// RepeatCycle is the recurrence interval of a recurring invoice.
// Recurrence fields are stored but no generation logic acts on them.
type RepeatCycle string

const (
	RepeatDaily   RepeatCycle = "daily"
	RepeatWeekly  RepeatCycle = "weekly"
	RepeatMonthly RepeatCycle = "monthly"
	RepeatYearly  RepeatCycle = "yearly"
)

// Invoice is a sales invoice owning zero or more line items.
// Total is the sum of the items' contributions; GrandTotal additionally
// carries shipping and the invoice-level discount/tax adjustments.
type Invoice struct {
	InvoiceID        int64           `json:"invoiceID"`
	CustomerID       int64           `json:"customerID"`
	CurrencyID       int64           `json:"currencyID"`
	Reference        string          `json:"reference"` // Unique
	Date             time.Time       `json:"date"`
	DueDate          *time.Time      `json:"dueDate"`
	Status           InvoiceStatus   `json:"status"`
	IsRecurring      bool            `json:"isRecurring"`
	RepeatCycle      RepeatCycle     `json:"repeatCycle"`
	CreateBeforeDays int             `json:"createBeforeDays"`
	TaxRate          decimal.Decimal `json:"taxRate"`
	TaxMethod        TaxMethod       `json:"taxMethod"`
	Shipping         decimal.Decimal `json:"shipping"`
	Discount         decimal.Decimal `json:"discount"`
	Total            decimal.Decimal `json:"total"`
	GrandTotal       decimal.Decimal `json:"grandTotal"`
	Note             *string         `json:"note"`
	Items            []InvoiceItem   `json:"items,omitempty"` // Often loaded separately
	AuditFields
}

// InvoiceItem is a single line of an invoice. Its contribution to the
// invoice total is derived, never stored.
type InvoiceItem struct {
	ItemID      int64           `json:"itemID"`
	InvoiceID   int64           `json:"invoiceID"`
	Title       string          `json:"title"`
	Description *string         `json:"description"`
	Cost        decimal.Decimal `json:"cost"`
	Price       decimal.Decimal `json:"price"` // Display only, not used in totals
	Quantity    int             `json:"quantity"`
	TaxRate     decimal.Decimal `json:"taxRate"`
	TaxMethod   TaxMethod       `json:"taxMethod"`
	Discount    decimal.Decimal `json:"discount"`
	CreatedAt   time.Time       `json:"createdAt"`
	UpdatedAt   time.Time       `json:"updatedAt"`
}

// StatusBreakdown holds invoice counts and percentages per status.
type StatusBreakdown struct {
	Total              int64   `json:"total"`
	PendingCount       int64   `json:"pending_count"`
	PendingPercentage  float64 `json:"pending_percentage"`
	PaidCount          int64   `json:"paid_count"`
	PaidPercentage     float64 `json:"paid_percentage"`
	OverdueCount       int64   `json:"overdue_count"`
	OverduePercentage  float64 `json:"overdue_percentage"`
	CanceledCount      int64   `json:"canceled_count"`
	CanceledPercentage float64 `json:"canceled_percentage"`
}
