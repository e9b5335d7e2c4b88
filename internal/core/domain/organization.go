package domain

import "github.com/shopspring/decimal"

// Organization is the tenant that owns projects, records and documents.
type Organization struct {
	OrganizationID       string               `json:"organizationID"`
	Name                 string               `json:"name"`
	FinancialPreferences FinancialPreferences `json:"financialPreferences"`
	IsActive             bool                 `json:"isActive"`
	AuditFields
}

// FinancialPreferences are the organization-level settings read by money aggregation.
type FinancialPreferences struct {
	// FunctionalCurrencyCode is the base/reporting currency.
	FunctionalCurrencyCode string `json:"functionalCurrencyCode"`
	// ReferenceCurrencyCode is the foreign currency CurrentExchangeRate is quoted against.
	ReferenceCurrencyCode string `json:"referenceCurrencyCode"`
	// CurrentExchangeRate is functional units per 1 reference unit; the fallback rate
	// for records stored without a rate.
	CurrentExchangeRate decimal.Decimal `json:"currentExchangeRate"`
	DecimalPlaces       int             `json:"decimalPlaces"`
	DisplayMode         DisplayMode     `json:"displayMode"`
	Locale              string          `json:"locale"` // BCP 47 tag, e.g. "es-AR"
}

// Default organization preference values.
const (
	DefaultDecimalPlaces = 2
	MaxDecimalPlaces     = 8
	DefaultLocale        = "es-AR"
)
