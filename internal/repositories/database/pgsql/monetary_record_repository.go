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
	"github.com/shopspring/decimal"
)

type PgxMonetaryRecordRepository struct {
	BaseRepository
}

func newPgxMonetaryRecordRepository(pool *pgxpool.Pool) portsrepo.MonetaryRecordRepositoryFacade {
	return &PgxMonetaryRecordRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

var _ portsrepo.MonetaryRecordRepositoryFacade = (*PgxMonetaryRecordRepository)(nil)

const recordColumns = `record_id, organization_id, project_id, kind, description, amount, currency_code,
	exchange_rate, is_voided, occurred_at, created_at, created_by, last_updated_at, last_updated_by`

func (r *PgxMonetaryRecordRepository) SaveRecord(ctx context.Context, record domain.MonetaryRecord) error {
	m := mapping.ToModelMonetaryRecord(record)
	query := `INSERT INTO monetary_records (` + recordColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14);`

	_, err := r.Pool.Exec(ctx, query,
		m.RecordID, m.OrganizationID, m.ProjectID, m.Kind, m.Description, m.Amount, m.CurrencyCode,
		m.ExchangeRate, m.IsVoided, m.OccurredAt, m.CreatedAt, m.CreatedBy, m.LastUpdatedAt, m.LastUpdatedBy,
	)
	if err != nil {
		return translateWriteError(err, "monetary record "+m.RecordID)
	}
	return nil
}

func (r *PgxMonetaryRecordRepository) FindRecordByID(ctx context.Context, organizationID, recordID string) (*domain.MonetaryRecord, error) {
	query := `SELECT ` + recordColumns + ` FROM monetary_records WHERE organization_id = $1 AND record_id = $2;`

	m, err := scanRecord(r.Pool.QueryRow(ctx, query, organizationID, recordID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFoundError("record " + recordID + " not found")
		}
		return nil, fmt.Errorf("failed to find record %s: %w", recordID, err)
	}

	record := mapping.ToDomainMonetaryRecord(m)
	return &record, nil
}

func (r *PgxMonetaryRecordRepository) ListRecords(ctx context.Context, organizationID string, filter domain.RecordFilter) ([]domain.MonetaryRecord, error) {
	query := `SELECT ` + recordColumns + ` FROM monetary_records WHERE organization_id = $1`
	args := []any{organizationID}
	argNum := 2

	if !filter.IncludeVoided {
		query += " AND NOT is_voided"
	}
	if filter.Kind != "" {
		query += fmt.Sprintf(" AND kind = $%d", argNum)
		args = append(args, string(filter.Kind))
		argNum++
	}
	if filter.ProjectID != "" {
		query += fmt.Sprintf(" AND project_id = $%d", argNum)
		args = append(args, filter.ProjectID)
	}
	query += " ORDER BY occurred_at, record_id;"

	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query records: %w", err)
	}
	defer rows.Close()

	modelRecords, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (models.MonetaryRecord, error) {
		return scanRecord(row)
	})
	if err != nil {
		return nil, fmt.Errorf("failed to scan records: %w", err)
	}
	return mapping.ToDomainMonetaryRecordSlice(modelRecords), nil
}

func (r *PgxMonetaryRecordRepository) VoidRecord(ctx context.Context, organizationID, recordID, userID string, now time.Time) error {
	query := `
		UPDATE monetary_records
		SET is_voided = TRUE, last_updated_at = $3, last_updated_by = $4
		WHERE organization_id = $1 AND record_id = $2 AND NOT is_voided;
	`
	tag, err := r.Pool.Exec(ctx, query, organizationID, recordID, now, userID)
	if err != nil {
		return apperrors.NewAppError(500, "failed to void record "+recordID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.NewNotFoundError("record " + recordID + " not found")
	}
	return nil
}

func (r *PgxMonetaryRecordRepository) UpdateRecordExchangeRate(ctx context.Context, organizationID, recordID string, rate decimal.Decimal, userID string, now time.Time) error {
	query := `
		UPDATE monetary_records
		SET exchange_rate = $3, last_updated_at = $4, last_updated_by = $5
		WHERE organization_id = $1 AND record_id = $2 AND NOT is_voided;
	`
	tag, err := r.Pool.Exec(ctx, query, organizationID, recordID, rate, now, userID)
	if err != nil {
		return apperrors.NewAppError(500, "failed to update exchange rate of record "+recordID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.NewNotFoundError("record " + recordID + " not found")
	}
	return nil
}

func scanRecord(row pgx.Row) (models.MonetaryRecord, error) {
	var m models.MonetaryRecord
	err := row.Scan(
		&m.RecordID, &m.OrganizationID, &m.ProjectID, &m.Kind, &m.Description, &m.Amount, &m.CurrencyCode,
		&m.ExchangeRate, &m.IsVoided, &m.OccurredAt, &m.CreatedAt, &m.CreatedBy, &m.LastUpdatedAt, &m.LastUpdatedBy,
	)
	return m, err
}
