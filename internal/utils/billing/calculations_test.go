package billing_test

import (
	"testing"

	"github.com/mkassaw/invoicing_backend/internal/core/domain"
	"github.com/mkassaw/invoicing_backend/internal/utils/billing"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func dec(s string) decimal.Decimal {
	d, err := decimal.NewFromString(s)
	if err != nil {
		panic(err)
	}
	return d
}

func TestItemContribution(t *testing.T) {
	tests := []struct {
		name string
		item domain.InvoiceItem
		want string
	}{
		{
			name: "plain quantity times cost",
			item: domain.InvoiceItem{Cost: dec("100"), Quantity: 2, TaxMethod: domain.TaxInclusive},
			want: "200",
		},
		{
			name: "discount then exclusive tax",
			item: domain.InvoiceItem{Cost: dec("100"), Quantity: 2, Discount: dec("10"), TaxRate: dec("5"), TaxMethod: domain.TaxExclusive},
			want: "189", // 200 -> 180 after 10% discount -> 189 after 5% tax
		},
		{
			name: "inclusive tax never added on top",
			item: domain.InvoiceItem{Cost: dec("100"), Quantity: 2, Discount: dec("10"), TaxRate: dec("5"), TaxMethod: domain.TaxInclusive},
			want: "180",
		},
		{
			name: "quantity defaults to one",
			item: domain.InvoiceItem{Cost: dec("49.99"), TaxMethod: domain.TaxInclusive},
			want: "49.99",
		},
		{
			name: "zero cost yields zero",
			item: domain.InvoiceItem{Quantity: 3, Discount: dec("50"), TaxRate: dec("20"), TaxMethod: domain.TaxExclusive},
			want: "0",
		},
		{
			name: "rounds half up to two decimals",
			item: domain.InvoiceItem{Cost: dec("33.335"), Quantity: 1, TaxMethod: domain.TaxInclusive},
			want: "33.34",
		},
		{
			name: "exclusive tax with zero rate is a no-op",
			item: domain.InvoiceItem{Cost: dec("10"), Quantity: 4, TaxMethod: domain.TaxExclusive},
			want: "40",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := billing.ItemContribution(tt.item)
			assert.True(t, got.Equal(dec(tt.want)), "got %s, want %s", got, tt.want)
		})
	}
}

func TestItemContribution_DiscountTaxFormula(t *testing.T) {
	// contribution == quantity*cost*(1-d/100)*(1+t/100) for exclusive tax
	item := domain.InvoiceItem{Cost: dec("37.50"), Quantity: 3, Discount: dec("12"), TaxRate: dec("7"), TaxMethod: domain.TaxExclusive}

	expected := dec("3").Mul(dec("37.50")).
		Mul(dec("0.88")).
		Mul(dec("1.07")).
		Round(2)

	got := billing.ItemContribution(item)
	assert.True(t, got.Equal(expected), "got %s, want %s", got, expected)
}

func TestInvoiceTotals(t *testing.T) {
	items := []domain.InvoiceItem{
		{Cost: dec("100"), Quantity: 2, Discount: dec("10"), TaxRate: dec("5"), TaxMethod: domain.TaxExclusive}, // 189
		{Cost: dec("50"), Quantity: 1, TaxMethod: domain.TaxInclusive},                                          // 50
	}

	total, grand := billing.InvoiceTotals(items, dec("20"), decimal.Zero, decimal.Zero, domain.TaxInclusive)
	assert.True(t, total.Equal(dec("239")), "total: got %s", total)
	assert.True(t, grand.Equal(dec("259")), "grand: got %s", grand)
}

func TestInvoiceTotals_SingleExclusiveItemWithShipping(t *testing.T) {
	// Single item {cost:100, qty:2, discount:10, tax:5, exclusive} -> 189;
	// shipping 20, no invoice discount, inclusive -> total=189, grand=209.
	items := []domain.InvoiceItem{
		{Cost: dec("100"), Quantity: 2, Discount: dec("10"), TaxRate: dec("5"), TaxMethod: domain.TaxExclusive},
	}

	total, grand := billing.InvoiceTotals(items, dec("20"), decimal.Zero, decimal.Zero, domain.TaxInclusive)
	assert.True(t, total.Equal(dec("189")), "total: got %s", total)
	assert.True(t, grand.Equal(dec("209")), "grand: got %s", grand)
}

func TestInvoiceTotals_DiscountAndTaxOffPreShippingTotal(t *testing.T) {
	// Both adjustments are computed against the pre-shipping total and applied
	// independently: grand = total + shipping - total*d/100 + total*t/100.
	items := []domain.InvoiceItem{
		{Cost: dec("100"), Quantity: 1, TaxMethod: domain.TaxInclusive},
		{Cost: dec("100"), Quantity: 1, TaxMethod: domain.TaxInclusive},
	}

	total, grand := billing.InvoiceTotals(items, dec("30"), dec("10"), dec("8"), domain.TaxExclusive)
	require.True(t, total.Equal(dec("200")), "total: got %s", total)
	// 200 + 30 - 20 + 16 = 226; not (200+30)*0.9*1.08
	assert.True(t, grand.Equal(dec("226")), "grand: got %s", grand)
}

func TestInvoiceTotals_InclusiveTaxIgnoredAtInvoiceLevel(t *testing.T) {
	items := []domain.InvoiceItem{
		{Cost: dec("75"), Quantity: 2, TaxMethod: domain.TaxInclusive},
	}

	_, grand := billing.InvoiceTotals(items, decimal.Zero, decimal.Zero, dec("19"), domain.TaxInclusive)
	assert.True(t, grand.Equal(dec("150")), "grand: got %s", grand)
}

func TestInvoiceTotals_NoItems(t *testing.T) {
	total, grand := billing.InvoiceTotals(nil, dec("12.50"), dec("5"), dec("5"), domain.TaxExclusive)
	assert.True(t, total.Equal(decimal.Zero), "total: got %s", total)
	assert.True(t, grand.Equal(dec("12.50")), "grand: got %s", grand)
}
