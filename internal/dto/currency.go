package dto

import (
	"github.com/shopspring/decimal"

	"github.com/mkassaw/invoicing_backend/internal/core/domain"
)

// CurrencyResponse defines the data returned for a currency.
type CurrencyResponse struct {
	CurrencyID     int64           `json:"id"`
	Name           string          `json:"name"`
	Shortcut       string          `json:"shortcut"`
	Symbol         string          `json:"symbol"`
	DecimalNumbers int             `json:"decimal_numbers"`
	USDToCurrency  decimal.Decimal `json:"usd_to_currency"`
	IsActive       bool            `json:"is_active"`
	IsDefault      bool            `json:"is_default"`
}

// ToCurrencyResponse converts a domain.Currency to CurrencyResponse
func ToCurrencyResponse(c *domain.Currency) CurrencyResponse {
	return CurrencyResponse{
		CurrencyID:     c.CurrencyID,
		Name:           c.Name,
		Shortcut:       c.Shortcut,
		Symbol:         c.Symbol,
		DecimalNumbers: c.DecimalNumbers,
		USDToCurrency:  c.USDToCurrency,
		IsActive:       c.IsActive,
		IsDefault:      c.IsDefault,
	}
}

// ToListCurrencyResponse converts a slice of domain.Currency to DTOs
func ToListCurrencyResponse(currencies []domain.Currency) []CurrencyResponse {
	res := make([]CurrencyResponse, len(currencies))
	for i := range currencies {
		res[i] = ToCurrencyResponse(&currencies[i])
	}
	return res
}
