package dto

import (
	"time"

	"github.com/SscSPs/construction_finance_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreateOrganizationRequest defines the data needed to create an organization.
// Omitted preferences take their defaults.
type CreateOrganizationRequest struct {
	Name                   string           `json:"name" binding:"required,max=200"`
	FunctionalCurrencyCode string           `json:"functionalCurrencyCode" binding:"required,currency_code"`
	ReferenceCurrencyCode  string           `json:"referenceCurrencyCode" binding:"omitempty,currency_code"`
	CurrentExchangeRate    *decimal.Decimal `json:"currentExchangeRate" binding:"omitempty,gt=0" swaggertype:"string"`
	DecimalPlaces          *int             `json:"decimalPlaces" binding:"omitempty,gte=0,lte=8"`
	DisplayMode            string           `json:"displayMode" binding:"omitempty,oneof=native functional mix"`
	Locale                 string           `json:"locale" binding:"omitempty,bcp47_language_tag"`
}

// UpdateFinancialPreferencesRequest replaces an organization's financial preferences.
type UpdateFinancialPreferencesRequest struct {
	FunctionalCurrencyCode string          `json:"functionalCurrencyCode" binding:"required,currency_code"`
	ReferenceCurrencyCode  string          `json:"referenceCurrencyCode" binding:"required,currency_code"`
	CurrentExchangeRate    decimal.Decimal `json:"currentExchangeRate" binding:"required,gt=0" swaggertype:"string"`
	DecimalPlaces          *int            `json:"decimalPlaces" binding:"required,gte=0,lte=8"`
	DisplayMode            string          `json:"displayMode" binding:"required,oneof=native functional mix"`
	Locale                 string          `json:"locale" binding:"required,bcp47_language_tag"`
}

// FinancialPreferencesResponse mirrors domain.FinancialPreferences.
type FinancialPreferencesResponse struct {
	FunctionalCurrencyCode string          `json:"functionalCurrencyCode"`
	ReferenceCurrencyCode  string          `json:"referenceCurrencyCode"`
	CurrentExchangeRate    decimal.Decimal `json:"currentExchangeRate" swaggertype:"string"`
	DecimalPlaces          int             `json:"decimalPlaces"`
	DisplayMode            string          `json:"displayMode"`
	Locale                 string          `json:"locale"`
}

// OrganizationResponse defines the data returned for an organization.
type OrganizationResponse struct {
	OrganizationID       string                       `json:"organizationID"`
	Name                 string                       `json:"name"`
	IsActive             bool                         `json:"isActive"`
	FinancialPreferences FinancialPreferencesResponse `json:"financialPreferences"`
	CreatedAt            time.Time                    `json:"createdAt"`
	CreatedBy            string                       `json:"createdBy"`
	LastUpdatedAt        time.Time                    `json:"lastUpdatedAt"`
	LastUpdatedBy        string                       `json:"lastUpdatedBy"`
}

// ToOrganizationResponse converts a domain.Organization to OrganizationResponse DTO
func ToOrganizationResponse(org *domain.Organization) OrganizationResponse {
	prefs := org.FinancialPreferences
	return OrganizationResponse{
		OrganizationID: org.OrganizationID,
		Name:           org.Name,
		IsActive:       org.IsActive,
		FinancialPreferences: FinancialPreferencesResponse{
			FunctionalCurrencyCode: prefs.FunctionalCurrencyCode,
			ReferenceCurrencyCode:  prefs.ReferenceCurrencyCode,
			CurrentExchangeRate:    prefs.CurrentExchangeRate,
			DecimalPlaces:          prefs.DecimalPlaces,
			DisplayMode:            string(prefs.DisplayMode),
			Locale:                 prefs.Locale,
		},
		CreatedAt:     org.CreatedAt,
		CreatedBy:     org.CreatedBy,
		LastUpdatedAt: org.LastUpdatedAt,
		LastUpdatedBy: org.LastUpdatedBy,
	}
}
