package mapping

import (
	"github.com/mkassaw/invoicing_backend/internal/core/domain"
	"github.com/mkassaw/invoicing_backend/internal/models"
)

// ToModelCurrency converts a domain Currency to a model Currency
func ToModelCurrency(d domain.Currency) models.Currency {
	return models.Currency{
		CurrencyID:     d.CurrencyID,
		Name:           d.Name,
		Shortcut:       d.Shortcut,
		Symbol:         d.Symbol,
		DecimalNumbers: d.DecimalNumbers,
		USDToCurrency:  d.USDToCurrency,
		IsActive:       d.IsActive,
		IsDefault:      d.IsDefault,
	}
}

// ToDomainCurrency converts a model Currency to a domain Currency
func ToDomainCurrency(m models.Currency) domain.Currency {
	return domain.Currency{
		CurrencyID:     m.CurrencyID,
		Name:           m.Name,
		Shortcut:       m.Shortcut,
		Symbol:         m.Symbol,
		DecimalNumbers: m.DecimalNumbers,
		USDToCurrency:  m.USDToCurrency,
		IsActive:       m.IsActive,
		IsDefault:      m.IsDefault,
	}
}

// ToDomainCurrencySlice converts a slice of model Currencies to a slice of domain Currencies
func ToDomainCurrencySlice(ms []models.Currency) []domain.Currency {
	ds := make([]domain.Currency, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainCurrency(m)
	}
	return ds
}
