package pgsql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/SscSPs/construction_finance_app/internal/apperrors"
	"github.com/SscSPs/construction_finance_app/internal/core/domain"
	portsrepo "github.com/SscSPs/construction_finance_app/internal/core/ports/repositories"
	"github.com/SscSPs/construction_finance_app/internal/models"
	"github.com/SscSPs/construction_finance_app/internal/utils/mapping"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PgxOrganizationRepository struct {
	BaseRepository
}

func newPgxOrganizationRepository(pool *pgxpool.Pool) portsrepo.OrganizationRepositoryFacade {
	return &PgxOrganizationRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

var _ portsrepo.OrganizationRepositoryFacade = (*PgxOrganizationRepository)(nil)

func (r *PgxOrganizationRepository) SaveOrganization(ctx context.Context, org domain.Organization) error {
	m := mapping.ToModelOrganization(org)
	query := `
		INSERT INTO organizations (
			organization_id, name, functional_currency_code, reference_currency_code,
			current_exchange_rate, decimal_places, display_mode, locale, is_active,
			created_at, created_by, last_updated_at, last_updated_by
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13);
	`
	_, err := r.Pool.Exec(ctx, query,
		m.OrganizationID, m.Name, m.FunctionalCurrencyCode, m.ReferenceCurrencyCode,
		m.CurrentExchangeRate, m.DecimalPlaces, m.DisplayMode, m.Locale, m.IsActive,
		m.CreatedAt, m.CreatedBy, m.LastUpdatedAt, m.LastUpdatedBy,
	)
	if err != nil {
		return translateWriteError(err, "organization "+m.OrganizationID)
	}
	return nil
}

func (r *PgxOrganizationRepository) FindOrganizationByID(ctx context.Context, organizationID string) (*domain.Organization, error) {
	query := `
		SELECT organization_id, name, functional_currency_code, reference_currency_code,
			current_exchange_rate, decimal_places, display_mode, locale, is_active,
			created_at, created_by, last_updated_at, last_updated_by
		FROM organizations
		WHERE organization_id = $1 AND is_active;
	`
	var m models.Organization
	err := r.Pool.QueryRow(ctx, query, organizationID).Scan(
		&m.OrganizationID, &m.Name, &m.FunctionalCurrencyCode, &m.ReferenceCurrencyCode,
		&m.CurrentExchangeRate, &m.DecimalPlaces, &m.DisplayMode, &m.Locale, &m.IsActive,
		&m.CreatedAt, &m.CreatedBy, &m.LastUpdatedAt, &m.LastUpdatedBy,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFoundError("organization " + organizationID + " not found")
		}
		return nil, fmt.Errorf("failed to find organization %s: %w", organizationID, err)
	}

	org := mapping.ToDomainOrganization(m)
	return &org, nil
}

func (r *PgxOrganizationRepository) UpdateFinancialPreferences(ctx context.Context, organizationID string, prefs domain.FinancialPreferences, userID string, now time.Time) error {
	query := `
		UPDATE organizations SET
			functional_currency_code = $2,
			reference_currency_code = $3,
			current_exchange_rate = $4,
			decimal_places = $5,
			display_mode = $6,
			locale = $7,
			last_updated_at = $8,
			last_updated_by = $9
		WHERE organization_id = $1 AND is_active;
	`
	tag, err := r.Pool.Exec(ctx, query,
		organizationID,
		prefs.FunctionalCurrencyCode,
		prefs.ReferenceCurrencyCode,
		prefs.CurrentExchangeRate,
		prefs.DecimalPlaces,
		string(prefs.DisplayMode),
		prefs.Locale,
		now,
		userID,
	)
	if err != nil {
		return translateWriteError(err, "financial preferences of organization "+organizationID)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.NewNotFoundError("organization " + organizationID + " not found")
	}
	return nil
}
