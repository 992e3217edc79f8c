package mapping

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mkassaw/invoicing_backend/internal/core/domain"
	"github.com/mkassaw/invoicing_backend/internal/models"
)

func TestToModelInvoice_NonRecurringStoresNullCycle(t *testing.T) {
	d := domain.Invoice{
		InvoiceID:   3,
		CustomerID:  1,
		CurrencyID:  2,
		Reference:   "INV-0003",
		Date:        time.Date(2026, 1, 15, 0, 0, 0, 0, time.UTC),
		Status:      domain.StatusPending,
		IsRecurring: false,
		RepeatCycle: "",
		TaxRate:     decimal.NewFromInt(10),
		TaxMethod:   domain.TaxExclusive,
	}

	m := ToModelInvoice(d)

	assert.Nil(t, m.RepeatCycle)
	require.NotNil(t, m.CustomerID)
	assert.Equal(t, int64(1), *m.CustomerID)
	require.NotNil(t, m.CurrencyID)
	assert.Equal(t, int64(2), *m.CurrencyID)
}

func TestToModelInvoice_RecurringKeepsCycle(t *testing.T) {
	d := domain.Invoice{
		IsRecurring: true,
		RepeatCycle: domain.RepeatMonthly,
	}

	m := ToModelInvoice(d)

	require.NotNil(t, m.RepeatCycle)
	assert.Equal(t, "monthly", *m.RepeatCycle)
}

func TestToDomainInvoice_NullColumnsBecomeZeroValues(t *testing.T) {
	m := models.Invoice{
		InvoiceID:   3,
		CustomerID:  nil,
		CurrencyID:  nil,
		Reference:   "INV-0003",
		RepeatCycle: nil,
	}

	d := ToDomainInvoice(m)

	assert.Equal(t, int64(0), d.CustomerID)
	assert.Equal(t, int64(0), d.CurrencyID)
	assert.Equal(t, domain.RepeatCycle(""), d.RepeatCycle)
}

func TestInvoiceMapping_RoundTripNonRecurring(t *testing.T) {
	d := domain.Invoice{
		InvoiceID:  8,
		CustomerID: 4,
		CurrencyID: 0,
		Reference:  "INV-0008",
	}

	back := ToDomainInvoice(ToModelInvoice(d))

	assert.Equal(t, d.CustomerID, back.CustomerID)
	assert.Equal(t, d.CurrencyID, back.CurrencyID)
	assert.Equal(t, d.RepeatCycle, back.RepeatCycle)
}

func TestPaymentMapping_NullReferences(t *testing.T) {
	m := ToModelPayment(domain.Payment{
		PaymentID:  5,
		CustomerID: 0,
		InvoiceID:  0,
		JournalID:  2,
	})

	assert.Nil(t, m.CustomerID)
	assert.Nil(t, m.InvoiceID)
	require.NotNil(t, m.JournalID)
	assert.Equal(t, int64(2), *m.JournalID)

	d := ToDomainPayment(models.Payment{PaymentID: 5, JournalID: nil})
	assert.Equal(t, int64(0), d.JournalID)
	assert.Equal(t, int64(0), d.CustomerID)
	assert.Equal(t, int64(0), d.InvoiceID)
}
