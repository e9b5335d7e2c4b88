package services

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/SscSPs/construction_finance_app/internal/apperrors"
	"github.com/SscSPs/construction_finance_app/internal/core/domain"
	portsrepo "github.com/SscSPs/construction_finance_app/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/construction_finance_app/internal/core/ports/services"
	"github.com/SscSPs/construction_finance_app/internal/dto"
	"github.com/google/uuid"
)

type monetaryRecordService struct {
	BaseService
	recordRepo      portsrepo.MonetaryRecordRepositoryFacade
	orgService      portssvc.OrganizationReaderSvc
	currencyService portssvc.CurrencyReaderSvc
}

// NewMonetaryRecordService creates a service for payments, purchase-order items and
// contract amounts.
func NewMonetaryRecordService(recordRepo portsrepo.MonetaryRecordRepositoryFacade, orgService portssvc.OrganizationReaderSvc, currencyService portssvc.CurrencyReaderSvc) portssvc.MonetaryRecordSvcFacade {
	return &monetaryRecordService{
		recordRepo:      recordRepo,
		orgService:      orgService,
		currencyService: currencyService,
	}
}

var _ portssvc.MonetaryRecordSvcFacade = (*monetaryRecordService)(nil)

func (s *monetaryRecordService) RecordMonetaryRecord(ctx context.Context, organizationID string, req dto.CreateMonetaryRecordRequest, userID string) (*domain.MonetaryRecord, error) {
	kind := domain.RecordKind(req.Kind)
	if !kind.IsValid() {
		return nil, fmt.Errorf("%w: unknown record kind %q", apperrors.ErrValidation, req.Kind)
	}
	if req.ExchangeRate != nil && !req.ExchangeRate.IsPositive() {
		return nil, fmt.Errorf("%w: exchange rate must be positive", apperrors.ErrValidation)
	}
	if _, err := s.orgService.GetOrganization(ctx, organizationID); err != nil {
		return nil, err
	}
	if err := requireCurrency(ctx, s.currencyService, req.CurrencyCode); err != nil {
		return nil, err
	}

	now := s.Now()
	occurredAt := now
	if req.OccurredAt != nil {
		occurredAt = req.OccurredAt.UTC()
	}

	record := domain.MonetaryRecord{
		RecordID:       uuid.NewString(),
		OrganizationID: organizationID,
		ProjectID:      req.ProjectID,
		Kind:           kind,
		Description:    req.Description,
		Amount:         req.Amount,
		CurrencyCode:   req.CurrencyCode,
		ExchangeRate:   req.ExchangeRate,
		OccurredAt:     occurredAt,
		AuditFields:    domain.NewAuditFields(userID, now),
	}

	if err := s.recordRepo.SaveRecord(ctx, record); err != nil {
		s.LogError(ctx, err, "Failed to save monetary record",
			slog.String("organization_id", organizationID),
			slog.String("kind", req.Kind))
		return nil, fmt.Errorf("failed to record %s: %w", req.Kind, err)
	}

	s.LogInfo(ctx, "Monetary record created",
		slog.String("record_id", record.RecordID),
		slog.String("organization_id", organizationID),
		slog.String("currency_code", record.CurrencyCode))
	return &record, nil
}

func (s *monetaryRecordService) VoidMonetaryRecord(ctx context.Context, organizationID, recordID, userID string) (*domain.MonetaryRecord, error) {
	record, err := s.recordRepo.FindRecordByID(ctx, organizationID, recordID)
	if err != nil {
		return nil, fmt.Errorf("failed to find record %s: %w", recordID, err)
	}
	if record.IsVoided {
		return nil, fmt.Errorf("%w: record %s is already voided", apperrors.ErrValidation, recordID)
	}

	now := s.Now()
	if err := s.recordRepo.VoidRecord(ctx, organizationID, recordID, userID, now); err != nil {
		s.LogError(ctx, err, "Failed to void record", slog.String("record_id", recordID))
		return nil, fmt.Errorf("failed to void record %s: %w", recordID, err)
	}

	record.IsVoided = true
	record.Touch(userID, now)
	s.LogInfo(ctx, "Monetary record voided", slog.String("record_id", recordID))
	return record, nil
}

func (s *monetaryRecordService) CorrectExchangeRate(ctx context.Context, organizationID, recordID string, req dto.CorrectExchangeRateRequest, userID string) (*domain.MonetaryRecord, error) {
	if !req.ExchangeRate.IsPositive() {
		return nil, fmt.Errorf("%w: exchange rate must be positive", apperrors.ErrValidation)
	}

	record, err := s.recordRepo.FindRecordByID(ctx, organizationID, recordID)
	if err != nil {
		return nil, fmt.Errorf("failed to find record %s: %w", recordID, err)
	}
	if record.IsVoided {
		return nil, fmt.Errorf("%w: record %s is voided", apperrors.ErrValidation, recordID)
	}

	now := s.Now()
	if err := s.recordRepo.UpdateRecordExchangeRate(ctx, organizationID, recordID, req.ExchangeRate, userID, now); err != nil {
		s.LogError(ctx, err, "Failed to correct exchange rate", slog.String("record_id", recordID))
		return nil, fmt.Errorf("failed to correct exchange rate of record %s: %w", recordID, err)
	}

	previous := "none"
	if record.ExchangeRate != nil {
		previous = record.ExchangeRate.String()
	}
	rate := req.ExchangeRate
	record.ExchangeRate = &rate
	record.Touch(userID, now)

	s.LogInfo(ctx, "Exchange rate corrected",
		slog.String("record_id", recordID),
		slog.String("previous_rate", previous),
		slog.String("new_rate", rate.String()))
	return record, nil
}

func (s *monetaryRecordService) ListMonetaryRecords(ctx context.Context, organizationID string, filter domain.RecordFilter) ([]domain.MonetaryRecord, error) {
	if filter.Kind != "" && !filter.Kind.IsValid() {
		return nil, fmt.Errorf("%w: unknown record kind %q", apperrors.ErrValidation, filter.Kind)
	}
	records, err := s.recordRepo.ListRecords(ctx, organizationID, filter)
	if err != nil {
		s.LogError(ctx, err, "Failed to list records", slog.String("organization_id", organizationID))
		return nil, fmt.Errorf("failed to list records: %w", err)
	}
	if records == nil {
		return []domain.MonetaryRecord{}, nil
	}
	return records, nil
}
