package services

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/SscSPs/construction_finance_app/internal/core/domain"
	"github.com/SscSPs/construction_finance_app/internal/core/finance"
	portsrepo "github.com/SscSPs/construction_finance_app/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/construction_finance_app/internal/core/ports/services"
)

type aggregationService struct {
	BaseService
	recordRepo      portsrepo.MonetaryRecordReader
	orgService      portssvc.OrganizationReaderSvc
	currencyService portssvc.CurrencyReaderSvc
}

// AggregationServiceOption configures the aggregation service.
type AggregationServiceOption func(*aggregationService)

// WithAggregationCurrencyService supplies the currency catalog used for symbols.
// Without it breakdown entries use currency codes as symbols.
func WithAggregationCurrencyService(currencyService portssvc.CurrencyReaderSvc) AggregationServiceOption {
	return func(s *aggregationService) {
		s.currencyService = currencyService
	}
}

// NewAggregationService creates a service that summarizes monetary records.
func NewAggregationService(recordRepo portsrepo.MonetaryRecordReader, orgService portssvc.OrganizationReaderSvc, opts ...AggregationServiceOption) portssvc.AggregationSvc {
	svc := &aggregationService{
		recordRepo: recordRepo,
		orgService: orgService,
	}
	for _, opt := range opts {
		opt(svc)
	}
	return svc
}

var _ portssvc.AggregationSvc = (*aggregationService)(nil)

// SummarizeRecords loads every input fresh, aggregates the live records and formats the
// result with the organization's locale and decimal places.
func (s *aggregationService) SummarizeRecords(ctx context.Context, organizationID string, filter domain.SummaryFilter) (*domain.MoneySummary, error) {
	org, err := s.orgService.GetOrganization(ctx, organizationID)
	if err != nil {
		return nil, err
	}
	prefs := org.FinancialPreferences

	mode := filter.Mode
	if mode == "" {
		mode = prefs.DisplayMode
	}

	currentRate, err := s.orgService.CurrentRate(ctx, org)
	if err != nil {
		return nil, err
	}

	records, err := s.recordRepo.ListRecords(ctx, organizationID, domain.RecordFilter{
		Kind:      filter.Kind,
		ProjectID: filter.ProjectID,
	})
	if err != nil {
		s.LogError(ctx, err, "Failed to load records for aggregation", slog.String("organization_id", organizationID))
		return nil, fmt.Errorf("failed to load records: %w", err)
	}

	var currencies []domain.Currency
	if s.currencyService != nil {
		if currencies, err = s.currencyService.ListCurrencies(ctx); err != nil {
			return nil, fmt.Errorf("failed to load currencies: %w", err)
		}
	}

	result, err := finance.Sum(records, mode, prefs.FunctionalCurrencyCode, currentRate,
		finance.WithCurrencies(domain.NewCurrencyCatalog(currencies)))
	if err != nil {
		s.LogError(ctx, err, "Aggregation failed",
			slog.String("organization_id", organizationID),
			slog.String("mode", string(mode)))
		return nil, fmt.Errorf("failed to aggregate records: %w", err)
	}

	formatter := finance.NewFormatter(finance.ParseLocale(prefs.Locale), currencies...)
	summary := &domain.MoneySummary{
		Result:             result,
		Breakdown:          make([]domain.FormattedBreakdownEntry, len(result.Breakdown)),
		RecordCount:        len(records),
		CurrentRate:        currentRate,
		FunctionalCurrency: prefs.FunctionalCurrencyCode,
		DecimalPlaces:      prefs.DecimalPlaces,
	}
	if result.Displayable {
		summary.TotalFormatted = formatter.Format(result.Total, result.CurrencyCode, prefs.DecimalPlaces)
	}
	for i, entry := range result.Breakdown {
		summary.Breakdown[i] = domain.FormattedBreakdownEntry{
			CurrencyBreakdownEntry: entry,
			NativeFormatted:        formatter.Format(entry.NativeTotal, entry.CurrencyCode, prefs.DecimalPlaces),
			FunctionalFormatted:    formatter.Format(entry.FunctionalTotal, prefs.FunctionalCurrencyCode, prefs.DecimalPlaces),
		}
	}

	s.LogDebug(ctx, "Records aggregated",
		slog.String("organization_id", organizationID),
		slog.String("mode", string(mode)),
		slog.Int("record_count", len(records)),
		slog.Int("currency_count", len(result.Breakdown)))
	return summary, nil
}
