package models

import "github.com/shopspring/decimal"

// Currency maps the currency table.
type Currency struct {
	CurrencyID     int64           `json:"id"`
	Name           string          `json:"name"`
	Shortcut       string          `json:"shortcut"`
	Symbol         string          `json:"symbol"`
	DecimalNumbers int             `json:"decimal_numbers"`
	USDToCurrency  decimal.Decimal `json:"usd_to_currency"`
	IsActive       bool            `json:"is_active"`
	IsDefault      bool            `json:"is_default"`
}
