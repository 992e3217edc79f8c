package billing

import (
	"github.com/mkassaw/invoicing_backend/internal/core/domain"
	"github.com/shopspring/decimal"
)

var hundred = decimal.NewFromInt(100)

// ItemContribution computes a single line's contribution to the invoice total.
// Order matters for reproducibility:
//  1. subtotal = quantity * cost
//  2. subtract the per-item percentage discount, if any
//  3. add exclusive tax on the discounted subtotal, if any
//
// Inclusive tax is assumed already embedded in the cost and is never added on
// top. Quantity defaults to 1 when unset; all results are rounded half-up to
// two decimals, matching the storage precision.
func ItemContribution(item domain.InvoiceItem) decimal.Decimal {
	quantity := item.Quantity
	if quantity <= 0 {
		quantity = 1
	}

	subtotal := decimal.NewFromInt(int64(quantity)).Mul(item.Cost)
	if item.Discount.IsPositive() {
		subtotal = subtotal.Sub(subtotal.Mul(item.Discount).Div(hundred))
	}
	if item.TaxMethod == domain.TaxExclusive && item.TaxRate.IsPositive() {
		subtotal = subtotal.Add(subtotal.Mul(item.TaxRate).Div(hundred))
	}
	return subtotal.Round(2)
}

// InvoiceTotals folds the item contributions into the invoice's stored
// (total, grand_total) pair.
//
// The invoice-level discount and exclusive tax are both computed against the
// pre-shipping item total and applied to the grand total independently, not
// chained against each other or against shipping.
func InvoiceTotals(items []domain.InvoiceItem, shipping, discount, taxRate decimal.Decimal, taxMethod domain.TaxMethod) (total, grandTotal decimal.Decimal) {
	total = decimal.Zero
	for _, item := range items {
		total = total.Add(ItemContribution(item))
	}

	grandTotal = total.Add(shipping)
	if discount.IsPositive() {
		grandTotal = grandTotal.Sub(total.Mul(discount).Div(hundred))
	}
	if taxMethod == domain.TaxExclusive && taxRate.IsPositive() {
		grandTotal = grandTotal.Add(total.Mul(taxRate).Div(hundred))
	}
	return total.Round(2), grandTotal.Round(2)
}
