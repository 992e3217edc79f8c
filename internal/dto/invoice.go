package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/mkassaw/invoicing_backend/internal/core/domain"
)

// InvoiceItemRequest defines a single line item in a create/update payload.
// ID is present only on update, for items that already exist on the invoice.
type InvoiceItemRequest struct {
	ID          *int64          `json:"id"`
	Title       string          `json:"title" binding:"required"`
	Description *string         `json:"description"`
	Cost        decimal.Decimal `json:"cost" binding:"required"`
	Price       decimal.Decimal `json:"price"`
	Quantity    int             `json:"quantity" binding:"omitempty,min=1"`
	TaxRate     decimal.Decimal `json:"tax_rate"`
	TaxMethod   string          `json:"tax_method" binding:"omitempty,oneof=inclusive exclusive"`
	Discount    decimal.Decimal `json:"discount"`
}

// CreateInvoiceRequest defines the data needed to create an invoice.
// The same shape is accepted on update; items carrying an ID there are
// reconciled against the persisted line items.
type CreateInvoiceRequest struct {
	CustomerID       int64                `json:"customer_id" binding:"required,gt=0"`
	CurrencyID       int64                `json:"currency_id" binding:"required,gt=0"`
	Reference        string               `json:"reference" binding:"required"`
	Date             string               `json:"date" binding:"required,datefmt"`
	DueDate          *string              `json:"due_date" binding:"omitempty,datefmt"`
	Status           string               `json:"status" binding:"omitempty,oneof=pending paid overdue canceled"`
	IsRecurring      bool                 `json:"is_recurring"`
	RepeatCycle      string               `json:"repeat_cycle" binding:"omitempty,oneof=daily weekly monthly yearly"`
	CreateBeforeDays int                  `json:"create_before_days"`
	TaxRate          decimal.Decimal      `json:"tax_rate"`
	TaxMethod        string               `json:"tax_method" binding:"omitempty,oneof=inclusive exclusive"`
	Shipping         decimal.Decimal      `json:"shipping"`
	Discount         decimal.Decimal      `json:"discount"`
	Note             *string              `json:"note"`
	Items            []InvoiceItemRequest `json:"items" binding:"required,min=1,dive"`
}

// ToDomainInvoice converts the request into a domain Invoice. Totals are
// left zero; the service computes them.
func (r CreateInvoiceRequest) ToDomainInvoice() (domain.Invoice, error) {
	date, err := ParseDate(r.Date)
	if err != nil {
		return domain.Invoice{}, err
	}
	dueDate, err := ParseDatePtr(r.DueDate)
	if err != nil {
		return domain.Invoice{}, err
	}
	status := domain.InvoiceStatus(r.Status)
	if status == "" {
		status = domain.StatusPending
	}
	items := make([]domain.InvoiceItem, len(r.Items))
	for i, it := range r.Items {
		items[i] = it.toDomainItem()
	}
	return domain.Invoice{
		CustomerID:       r.CustomerID,
		CurrencyID:       r.CurrencyID,
		Reference:        r.Reference,
		Date:             date,
		DueDate:          dueDate,
		Status:           status,
		IsRecurring:      r.IsRecurring,
		RepeatCycle:      domain.RepeatCycle(r.RepeatCycle),
		CreateBeforeDays: r.CreateBeforeDays,
		TaxRate:          r.TaxRate,
		TaxMethod:        normalizeTaxMethod(r.TaxMethod),
		Shipping:         r.Shipping,
		Discount:         r.Discount,
		Note:             r.Note,
		Items:            items,
	}, nil
}

func (r InvoiceItemRequest) toDomainItem() domain.InvoiceItem {
	item := domain.InvoiceItem{
		Title:       r.Title,
		Description: r.Description,
		Cost:        r.Cost,
		Price:       r.Price,
		Quantity:    r.Quantity,
		TaxRate:     r.TaxRate,
		TaxMethod:   normalizeTaxMethod(r.TaxMethod),
		Discount:    r.Discount,
	}
	if r.ID != nil {
		item.ItemID = *r.ID
	}
	return item
}

func normalizeTaxMethod(s string) domain.TaxMethod {
	if s == "" {
		return domain.TaxInclusive
	}
	return domain.TaxMethod(s)
}

// InvoiceItemResponse defines the data returned for a line item.
type InvoiceItemResponse struct {
	ItemID      int64           `json:"id"`
	InvoiceID   int64           `json:"invoice_id"`
	Title       string          `json:"title"`
	Description *string         `json:"description"`
	Cost        decimal.Decimal `json:"cost"`
	Price       decimal.Decimal `json:"price"`
	Quantity    int             `json:"quantity"`
	TaxRate     decimal.Decimal `json:"tax_rate"`
	TaxMethod   string          `json:"tax_method"`
	Discount    decimal.Decimal `json:"discount"`
	CreatedAt   time.Time       `json:"created_at"`
	UpdatedAt   time.Time       `json:"updated_at"`
}

// InvoiceResponse defines the data returned for an invoice, with its line
// items and attachment records embedded.
type InvoiceResponse struct {
	InvoiceID        int64                 `json:"id"`
	CustomerID       int64                 `json:"customer_id"`
	CurrencyID       int64                 `json:"currency_id"`
	Reference        string                `json:"reference"`
	Date             time.Time             `json:"date"`
	DueDate          *time.Time            `json:"due_date"`
	Status           domain.InvoiceStatus  `json:"status"`
	IsRecurring      bool                  `json:"is_recurring"`
	RepeatCycle      string                `json:"repeat_cycle"`
	CreateBeforeDays int                   `json:"create_before_days"`
	TaxRate          decimal.Decimal       `json:"tax_rate"`
	TaxMethod        string                `json:"tax_method"`
	Shipping         decimal.Decimal       `json:"shipping"`
	Discount         decimal.Decimal       `json:"discount"`
	Total            decimal.Decimal       `json:"total"`
	GrandTotal       decimal.Decimal       `json:"grand_total"`
	Note             *string               `json:"note"`
	Items            []InvoiceItemResponse `json:"items,omitempty"`
	Attachments      []AttachmentResponse  `json:"attachments"`
	CreatedAt        time.Time             `json:"created_at"`
	UpdatedAt        time.Time             `json:"updated_at"`
}

// ToInvoiceItemResponse converts a domain.InvoiceItem to a DTO
func ToInvoiceItemResponse(it *domain.InvoiceItem) InvoiceItemResponse {
	return InvoiceItemResponse{
		ItemID:      it.ItemID,
		InvoiceID:   it.InvoiceID,
		Title:       it.Title,
		Description: it.Description,
		Cost:        it.Cost,
		Price:       it.Price,
		Quantity:    it.Quantity,
		TaxRate:     it.TaxRate,
		TaxMethod:   string(it.TaxMethod),
		Discount:    it.Discount,
		CreatedAt:   it.CreatedAt,
		UpdatedAt:   it.UpdatedAt,
	}
}

// ToInvoiceResponse converts a domain.Invoice and its attachments to a DTO
func ToInvoiceResponse(inv *domain.Invoice, atts []domain.Attachment) InvoiceResponse {
	items := make([]InvoiceItemResponse, len(inv.Items))
	for i := range inv.Items {
		items[i] = ToInvoiceItemResponse(&inv.Items[i])
	}
	return InvoiceResponse{
		InvoiceID:        inv.InvoiceID,
		CustomerID:       inv.CustomerID,
		CurrencyID:       inv.CurrencyID,
		Reference:        inv.Reference,
		Date:             inv.Date,
		DueDate:          inv.DueDate,
		Status:           inv.Status,
		IsRecurring:      inv.IsRecurring,
		RepeatCycle:      string(inv.RepeatCycle),
		CreateBeforeDays: inv.CreateBeforeDays,
		TaxRate:          inv.TaxRate,
		TaxMethod:        string(inv.TaxMethod),
		Shipping:         inv.Shipping,
		Discount:         inv.Discount,
		Total:            inv.Total,
		GrandTotal:       inv.GrandTotal,
		Note:             inv.Note,
		Items:            items,
		Attachments:      ToListAttachmentResponse(atts),
		CreatedAt:        inv.CreatedAt,
		UpdatedAt:        inv.LastUpdatedAt,
	}
}

// AmountResponse defines the data returned by the amount-in-range operations.
type AmountResponse struct {
	Amount decimal.Decimal `json:"amount"`
}
