package mapping

import (
	"github.com/mkassaw/invoicing_backend/internal/core/domain"
	"github.com/mkassaw/invoicing_backend/internal/models"
)

// ToModelInvoice converts a domain Invoice to a model Invoice
func ToModelInvoice(d domain.Invoice) models.Invoice {
	return models.Invoice{
		InvoiceID:        d.InvoiceID,
		CustomerID:       nullableID(d.CustomerID),
		CurrencyID:       nullableID(d.CurrencyID),
		Reference:        d.Reference,
		Date:             d.Date,
		DueDate:          d.DueDate,
		Status:           models.InvoiceStatus(d.Status),
		IsRecurring:      d.IsRecurring,
		RepeatCycle:      nullableEnum(string(d.RepeatCycle)),
		CreateBeforeDays: d.CreateBeforeDays,
		TaxRate:          d.TaxRate,
		TaxMethod:        models.TaxMethod(d.TaxMethod),
		Shipping:         d.Shipping,
		Discount:         d.Discount,
		Total:            d.Total,
		GrandTotal:       d.GrandTotal,
		Note:             d.Note,
		AuditFields:      ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainInvoice converts a model Invoice to a domain Invoice
func ToDomainInvoice(m models.Invoice) domain.Invoice {
	return domain.Invoice{
		InvoiceID:        m.InvoiceID,
		CustomerID:       idValue(m.CustomerID),
		CurrencyID:       idValue(m.CurrencyID),
		Reference:        m.Reference,
		Date:             m.Date,
		DueDate:          m.DueDate,
		Status:           domain.InvoiceStatus(m.Status),
		IsRecurring:      m.IsRecurring,
		RepeatCycle:      domain.RepeatCycle(enumValue(m.RepeatCycle)),
		CreateBeforeDays: m.CreateBeforeDays,
		TaxRate:          m.TaxRate,
		TaxMethod:        domain.TaxMethod(m.TaxMethod),
		Shipping:         m.Shipping,
		Discount:         m.Discount,
		Total:            m.Total,
		GrandTotal:       m.GrandTotal,
		Note:             m.Note,
		AuditFields:      ToDomainAuditFields(m.AuditFields),
	}
}

// ToModelInvoiceItem converts a domain InvoiceItem to a model InvoiceItem
func ToModelInvoiceItem(d domain.InvoiceItem) models.InvoiceItem {
	return models.InvoiceItem{
		ItemID:      d.ItemID,
		InvoiceID:   d.InvoiceID,
		Title:       d.Title,
		Description: d.Description,
		Cost:        d.Cost,
		Price:       d.Price,
		Quantity:    d.Quantity,
		TaxRate:     d.TaxRate,
		TaxMethod:   models.TaxMethod(d.TaxMethod),
		Discount:    d.Discount,
		CreatedAt:   d.CreatedAt,
		UpdatedAt:   d.UpdatedAt,
	}
}

// ToDomainInvoiceItem converts a model InvoiceItem to a domain InvoiceItem
func ToDomainInvoiceItem(m models.InvoiceItem) domain.InvoiceItem {
	return domain.InvoiceItem{
		ItemID:      m.ItemID,
		InvoiceID:   m.InvoiceID,
		Title:       m.Title,
		Description: m.Description,
		Cost:        m.Cost,
		Price:       m.Price,
		Quantity:    m.Quantity,
		TaxRate:     m.TaxRate,
		TaxMethod:   domain.TaxMethod(m.TaxMethod),
		Discount:    m.Discount,
		CreatedAt:   m.CreatedAt,
		UpdatedAt:   m.UpdatedAt,
	}
}

// ToDomainInvoiceItemSlice converts a slice of model items to domain items
func ToDomainInvoiceItemSlice(ms []models.InvoiceItem) []domain.InvoiceItem {
	ds := make([]domain.InvoiceItem, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainInvoiceItem(m)
	}
	return ds
}
