package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Currency represents a supported currency in the domain.
type Currency struct {
	CurrencyCode string `json:"currencyCode"` // Primary Key (e.g., "ARS")
	Symbol       string `json:"symbol"`       // e.g., "$"
	Name         string `json:"name"`         // e.g., "Peso Argentino"
	Precision    int    `json:"precision"`    // Number of minor-unit digits, e.g. 2
	AuditFields
}

// ExchangeRate stores the conversion rate between two currencies effective from a date.
// Rate is expressed as units of ToCurrencyCode per 1 unit of FromCurrencyCode.
type ExchangeRate struct {
	ExchangeRateID   string          `json:"exchangeRateID"`
	FromCurrencyCode string          `json:"fromCurrencyCode"`
	ToCurrencyCode   string          `json:"toCurrencyCode"`
	Rate             decimal.Decimal `json:"rate"`
	DateEffective    time.Time       `json:"dateEffective"`
	AuditFields
}

// CurrencyCatalog indexes currencies by code.
type CurrencyCatalog map[string]Currency

// NewCurrencyCatalog builds a catalog from a list of currencies.
func NewCurrencyCatalog(currencies []Currency) CurrencyCatalog {
	catalog := make(CurrencyCatalog, len(currencies))
	for _, c := range currencies {
		catalog[c.CurrencyCode] = c
	}
	return catalog
}

// Symbol returns the symbol for code, or the code itself when unknown or blank.
func (c CurrencyCatalog) Symbol(code string) string {
	if cur, ok := c[code]; ok && cur.Symbol != "" {
		return cur.Symbol
	}
	return code
}
