package services

import (
	"context"

	"github.com/SscSPs/construction_finance_app/internal/core/domain"
	"github.com/SscSPs/construction_finance_app/internal/dto"
	"github.com/shopspring/decimal"
)

// OrganizationReaderSvc defines read operations for organizations
type OrganizationReaderSvc interface {
	GetOrganization(ctx context.Context, organizationID string) (*domain.Organization, error)
	// CurrentRate resolves the fallback rate used for records stored without one:
	// the latest stored reference → functional rate, else the preference rate.
	CurrentRate(ctx context.Context, org *domain.Organization) (decimal.Decimal, error)
}

// OrganizationWriterSvc defines write operations for organizations
type OrganizationWriterSvc interface {
	CreateOrganization(ctx context.Context, req dto.CreateOrganizationRequest, creatorUserID string) (*domain.Organization, error)
	UpdateFinancialPreferences(ctx context.Context, organizationID string, req dto.UpdateFinancialPreferencesRequest, userID string) (*domain.Organization, error)
}

// OrganizationSvcFacade combines all organization-related service interfaces
type OrganizationSvcFacade interface {
	OrganizationReaderSvc
	OrganizationWriterSvc
}
