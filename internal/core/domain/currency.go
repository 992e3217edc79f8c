package domain

import "github.com/shopspring/decimal"

// Currency represents a supported currency.
type Currency struct {
	CurrencyID     int64           `json:"currencyID"`
	Name           string          `json:"name"`     // e.g. "US Dollar"
	Shortcut       string          `json:"shortcut"` // ISO-like code, e.g. "USD"
	Symbol         string          `json:"symbol"`   // e.g. "$"
	DecimalNumbers int             `json:"decimalNumbers"`
	USDToCurrency  decimal.Decimal `json:"usdToCurrency"` // Exchange rate from USD
	IsActive       bool            `json:"isActive"`
	IsDefault      bool            `json:"isDefault"`
}
