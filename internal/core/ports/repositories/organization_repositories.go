package repositories

import (
	"context"
	"time"

	"github.com/SscSPs/construction_finance_app/internal/core/domain"
)

// OrganizationReader defines read operations for organizations
type OrganizationReader interface {
	// FindOrganizationByID returns apperrors.ErrNotFound for unknown or inactive organizations.
	FindOrganizationByID(ctx context.Context, organizationID string) (*domain.Organization, error)
}

// OrganizationWriter defines write operations for organizations
type OrganizationWriter interface {
	SaveOrganization(ctx context.Context, org domain.Organization) error
	UpdateFinancialPreferences(ctx context.Context, organizationID string, prefs domain.FinancialPreferences, userID string, now time.Time) error
}

// OrganizationRepositoryFacade combines all organization-related repository interfaces
type OrganizationRepositoryFacade interface {
	OrganizationReader
	OrganizationWriter
}
