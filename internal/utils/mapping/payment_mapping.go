package mapping

import (
	"github.com/mkassaw/invoicing_backend/internal/core/domain"
	"github.com/mkassaw/invoicing_backend/internal/models"
)

// ToModelPayment converts a domain Payment to a model Payment
func ToModelPayment(d domain.Payment) models.Payment {
	return models.Payment{
		PaymentID:     d.PaymentID,
		CustomerID:    nullableID(d.CustomerID),
		InvoiceID:     nullableID(d.InvoiceID),
		JournalID:     nullableID(d.JournalID),
		Date:          d.Date,
		PaymentType:   string(d.PaymentType),
		PaymentMethod: string(d.PaymentMethod),
		Amount:        d.Amount,
		Note:          d.Note,
		AuditFields:   ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainPayment converts a model Payment to a domain Payment
func ToDomainPayment(m models.Payment) domain.Payment {
	return domain.Payment{
		PaymentID:     m.PaymentID,
		CustomerID:    idValue(m.CustomerID),
		InvoiceID:     idValue(m.InvoiceID),
		JournalID:     idValue(m.JournalID),
		Date:          m.Date,
		PaymentType:   domain.PaymentType(m.PaymentType),
		PaymentMethod: domain.PaymentMethod(m.PaymentMethod),
		Amount:        m.Amount,
		Note:          m.Note,
		AuditFields:   ToDomainAuditFields(m.AuditFields),
	}
}

// ToDomainPaymentSlice converts a slice of model Payments to domain Payments
func ToDomainPaymentSlice(ms []models.Payment) []domain.Payment {
	ds := make([]domain.Payment, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainPayment(m)
	}
	return ds
}
