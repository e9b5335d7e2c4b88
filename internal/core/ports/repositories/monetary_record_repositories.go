package repositories

import (
	"context"
	"time"

	"github.com/SscSPs/construction_finance_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// MonetaryRecordReader defines read operations for monetary records
type MonetaryRecordReader interface {
	FindRecordByID(ctx context.Context, organizationID, recordID string) (*domain.MonetaryRecord, error)
	// ListRecords returns the organization's records matching filter, oldest first.
	// Voided records are excluded unless filter.IncludeVoided is set.
	ListRecords(ctx context.Context, organizationID string, filter domain.RecordFilter) ([]domain.MonetaryRecord, error)
}

// MonetaryRecordWriter defines write operations for monetary records
type MonetaryRecordWriter interface {
	SaveRecord(ctx context.Context, record domain.MonetaryRecord) error
	// VoidRecord flags a record as voided. Returns apperrors.ErrNotFound when no live
	// record matches.
	VoidRecord(ctx context.Context, organizationID, recordID, userID string, now time.Time) error
	// UpdateRecordExchangeRate is the only way a stored rate changes.
	UpdateRecordExchangeRate(ctx context.Context, organizationID, recordID string, rate decimal.Decimal, userID string, now time.Time) error
}

// MonetaryRecordRepositoryFacade combines all monetary record repository interfaces
type MonetaryRecordRepositoryFacade interface {
	MonetaryRecordReader
	MonetaryRecordWriter
}
