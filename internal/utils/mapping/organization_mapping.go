package mapping

import (
	"github.com/SscSPs/construction_finance_app/internal/core/domain"
	"github.com/SscSPs/construction_finance_app/internal/models"
)

// ToModelOrganization converts a domain Organization to a model Organization
func ToModelOrganization(d domain.Organization) models.Organization {
	p := d.FinancialPreferences
	return models.Organization{
		OrganizationID:         d.OrganizationID,
		Name:                   d.Name,
		FunctionalCurrencyCode: p.FunctionalCurrencyCode,
		ReferenceCurrencyCode:  p.ReferenceCurrencyCode,
		CurrentExchangeRate:    p.CurrentExchangeRate,
		DecimalPlaces:          p.DecimalPlaces,
		DisplayMode:            string(p.DisplayMode),
		Locale:                 p.Locale,
		IsActive:               d.IsActive,
		AuditFields:            ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainOrganization converts a model Organization to a domain Organization
func ToDomainOrganization(m models.Organization) domain.Organization {
	return domain.Organization{
		OrganizationID: m.OrganizationID,
		Name:           m.Name,
		FinancialPreferences: domain.FinancialPreferences{
			FunctionalCurrencyCode: m.FunctionalCurrencyCode,
			ReferenceCurrencyCode:  m.ReferenceCurrencyCode,
			CurrentExchangeRate:    m.CurrentExchangeRate,
			DecimalPlaces:          m.DecimalPlaces,
			DisplayMode:            domain.DisplayMode(m.DisplayMode),
			Locale:                 m.Locale,
		},
		IsActive:    m.IsActive,
		AuditFields: ToDomainAuditFields(m.AuditFields),
	}
}
