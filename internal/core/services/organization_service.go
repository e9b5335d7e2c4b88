package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/SscSPs/construction_finance_app/internal/apperrors"
	"github.com/SscSPs/construction_finance_app/internal/core/domain"
	portsrepo "github.com/SscSPs/construction_finance_app/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/construction_finance_app/internal/core/ports/services"
	"github.com/SscSPs/construction_finance_app/internal/dto"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type organizationService struct {
	BaseService
	orgRepo         portsrepo.OrganizationRepositoryFacade
	rateRepo        portsrepo.ExchangeRateReader
	currencyService portssvc.CurrencyReaderSvc
	defaultLocale   string
}

// OrganizationServiceOption configures the organization service.
type OrganizationServiceOption func(*organizationService)

// WithDefaultLocale sets the locale given to organizations created without one.
func WithDefaultLocale(locale string) OrganizationServiceOption {
	return func(s *organizationService) {
		if locale != "" {
			s.defaultLocale = locale
		}
	}
}

// NewOrganizationService creates a new organization service.
func NewOrganizationService(orgRepo portsrepo.OrganizationRepositoryFacade, rateRepo portsrepo.ExchangeRateReader, currencyService portssvc.CurrencyReaderSvc, opts ...OrganizationServiceOption) portssvc.OrganizationSvcFacade {
	s := &organizationService{
		orgRepo:         orgRepo,
		rateRepo:        rateRepo,
		currencyService: currencyService,
		defaultLocale:   domain.DefaultLocale,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

var _ portssvc.OrganizationSvcFacade = (*organizationService)(nil)

func (s *organizationService) CreateOrganization(ctx context.Context, req dto.CreateOrganizationRequest, creatorUserID string) (*domain.Organization, error) {
	prefs := domain.FinancialPreferences{
		FunctionalCurrencyCode: req.FunctionalCurrencyCode,
		ReferenceCurrencyCode:  req.ReferenceCurrencyCode,
		CurrentExchangeRate:    decimal.NewFromInt(1),
		DecimalPlaces:          domain.DefaultDecimalPlaces,
		DisplayMode:            domain.DisplayMix,
		Locale:                 s.defaultLocale,
	}
	if prefs.ReferenceCurrencyCode == "" {
		prefs.ReferenceCurrencyCode = prefs.FunctionalCurrencyCode
	}
	if req.CurrentExchangeRate != nil {
		prefs.CurrentExchangeRate = *req.CurrentExchangeRate
	} else if prefs.ReferenceCurrencyCode != prefs.FunctionalCurrencyCode {
		return nil, fmt.Errorf("%w: currentExchangeRate is required when the reference currency differs from the functional currency", apperrors.ErrValidation)
	}
	if req.DecimalPlaces != nil {
		prefs.DecimalPlaces = *req.DecimalPlaces
	}
	if req.DisplayMode != "" {
		prefs.DisplayMode = domain.DisplayMode(req.DisplayMode)
	}
	if req.Locale != "" {
		prefs.Locale = req.Locale
	}

	if err := s.validatePreferences(ctx, prefs); err != nil {
		return nil, err
	}

	org := domain.Organization{
		OrganizationID:       uuid.NewString(),
		Name:                 req.Name,
		FinancialPreferences: prefs,
		IsActive:             true,
		AuditFields:          domain.NewAuditFields(creatorUserID, s.Now()),
	}

	if err := s.orgRepo.SaveOrganization(ctx, org); err != nil {
		s.LogError(ctx, err, "Failed to save organization", slog.String("name", req.Name))
		return nil, fmt.Errorf("failed to create organization: %w", err)
	}

	s.LogInfo(ctx, "Organization created",
		slog.String("organization_id", org.OrganizationID),
		slog.String("functional_currency", prefs.FunctionalCurrencyCode))
	return &org, nil
}

func (s *organizationService) GetOrganization(ctx context.Context, organizationID string) (*domain.Organization, error) {
	org, err := s.orgRepo.FindOrganizationByID(ctx, organizationID)
	if err != nil {
		return nil, fmt.Errorf("failed to get organization %s: %w", organizationID, err)
	}
	return org, nil
}

func (s *organizationService) UpdateFinancialPreferences(ctx context.Context, organizationID string, req dto.UpdateFinancialPreferencesRequest, userID string) (*domain.Organization, error) {
	org, err := s.GetOrganization(ctx, organizationID)
	if err != nil {
		return nil, err
	}

	prefs := domain.FinancialPreferences{
		FunctionalCurrencyCode: req.FunctionalCurrencyCode,
		ReferenceCurrencyCode:  req.ReferenceCurrencyCode,
		CurrentExchangeRate:    req.CurrentExchangeRate,
		DisplayMode:            domain.DisplayMode(req.DisplayMode),
		Locale:                 req.Locale,
	}
	if req.DecimalPlaces != nil {
		prefs.DecimalPlaces = *req.DecimalPlaces
	}
	if err := s.validatePreferences(ctx, prefs); err != nil {
		return nil, err
	}

	now := s.Now()
	if err := s.orgRepo.UpdateFinancialPreferences(ctx, organizationID, prefs, userID, now); err != nil {
		s.LogError(ctx, err, "Failed to update financial preferences", slog.String("organization_id", organizationID))
		return nil, fmt.Errorf("failed to update financial preferences: %w", err)
	}

	org.FinancialPreferences = prefs
	org.Touch(userID, now)
	s.LogInfo(ctx, "Financial preferences updated",
		slog.String("organization_id", organizationID),
		slog.String("current_rate", prefs.CurrentExchangeRate.String()))
	return org, nil
}

// CurrentRate prefers the latest stored reference → functional rate over the rate kept in
// the preferences. An organization whose reference currency is its functional currency
// converts at 1.
func (s *organizationService) CurrentRate(ctx context.Context, org *domain.Organization) (decimal.Decimal, error) {
	prefs := org.FinancialPreferences
	if prefs.ReferenceCurrencyCode == "" || prefs.ReferenceCurrencyCode == prefs.FunctionalCurrencyCode {
		return decimal.NewFromInt(1), nil
	}

	rate, err := s.rateRepo.FindExchangeRate(ctx, prefs.ReferenceCurrencyCode, prefs.FunctionalCurrencyCode)
	switch {
	case err == nil && rate.Rate.IsPositive():
		return rate.Rate, nil
	case err == nil, errors.Is(err, apperrors.ErrNotFound):
		s.LogDebug(ctx, "No stored exchange rate, using preference rate",
			slog.String("organization_id", org.OrganizationID),
			slog.String("from", prefs.ReferenceCurrencyCode),
			slog.String("to", prefs.FunctionalCurrencyCode))
		return prefs.CurrentExchangeRate, nil
	default:
		s.LogError(ctx, err, "Failed to look up current exchange rate", slog.String("organization_id", org.OrganizationID))
		return decimal.Zero, fmt.Errorf("failed to resolve current exchange rate: %w", err)
	}
}

func (s *organizationService) validatePreferences(ctx context.Context, prefs domain.FinancialPreferences) error {
	if !prefs.CurrentExchangeRate.IsPositive() {
		return fmt.Errorf("%w: current exchange rate must be positive", apperrors.ErrValidation)
	}
	if prefs.DecimalPlaces < 0 || prefs.DecimalPlaces > domain.MaxDecimalPlaces {
		return fmt.Errorf("%w: decimal places must be between 0 and %d", apperrors.ErrValidation, domain.MaxDecimalPlaces)
	}
	if !prefs.DisplayMode.IsValid() {
		return fmt.Errorf("%w: unknown display mode %q", apperrors.ErrValidation, prefs.DisplayMode)
	}
	if err := requireCurrency(ctx, s.currencyService, prefs.FunctionalCurrencyCode); err != nil {
		return err
	}
	if prefs.ReferenceCurrencyCode != prefs.FunctionalCurrencyCode {
		return requireCurrency(ctx, s.currencyService, prefs.ReferenceCurrencyCode)
	}
	return nil
}
