package models

import "github.com/shopspring/decimal"

// Organization is the organizations row; financial preferences are stored inline.
type Organization struct {
	OrganizationID         string          `json:"organizationID"`
	Name                   string          `json:"name"`
	FunctionalCurrencyCode string          `json:"functionalCurrencyCode"`
	ReferenceCurrencyCode  string          `json:"referenceCurrencyCode"`
	CurrentExchangeRate    decimal.Decimal `json:"currentExchangeRate"`
	DecimalPlaces          int             `json:"decimalPlaces"`
	DisplayMode            string          `json:"displayMode"`
	Locale                 string          `json:"locale"`
	IsActive               bool            `json:"isActive"`
	AuditFields
}
