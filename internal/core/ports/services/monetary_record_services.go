package services

import (
	"context"

	"github.com/SscSPs/construction_finance_app/internal/core/domain"
	"github.com/SscSPs/construction_finance_app/internal/dto"
)

// MonetaryRecordReaderSvc defines read operations for monetary records
type MonetaryRecordReaderSvc interface {
	ListMonetaryRecords(ctx context.Context, organizationID string, filter domain.RecordFilter) ([]domain.MonetaryRecord, error)
}

// MonetaryRecordWriterSvc defines write operations for monetary records
type MonetaryRecordWriterSvc interface {
	RecordMonetaryRecord(ctx context.Context, organizationID string, req dto.CreateMonetaryRecordRequest, userID string) (*domain.MonetaryRecord, error)
	VoidMonetaryRecord(ctx context.Context, organizationID, recordID, userID string) (*domain.MonetaryRecord, error)
	CorrectExchangeRate(ctx context.Context, organizationID, recordID string, req dto.CorrectExchangeRateRequest, userID string) (*domain.MonetaryRecord, error)
}

// MonetaryRecordSvcFacade combines all monetary record service interfaces
type MonetaryRecordSvcFacade interface {
	MonetaryRecordReaderSvc
	MonetaryRecordWriterSvc
}

// AggregationSvc summarizes monetary records for presentation.
type AggregationSvc interface {
	SummarizeRecords(ctx context.Context, organizationID string, filter domain.SummaryFilter) (*domain.MoneySummary, error)
}
