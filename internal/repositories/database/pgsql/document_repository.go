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
	"github.com/SscSPs/construction_finance_app/internal/utils/pagination"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"
)

const defaultDocumentLimit = 20

type PgxDocumentRepository struct {
	BaseRepository
}

func newPgxDocumentRepository(pool *pgxpool.Pool) portsrepo.DocumentRepositoryWithTx {
	return &PgxDocumentRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

var _ portsrepo.DocumentRepositoryWithTx = (*PgxDocumentRepository)(nil)

const documentColumns = `document_id, organization_id, document_type, project_id, number, title, currency_code,
	exchange_rate, tax_pct, tax_label, discount_pct, status, parent_contract_id,
	original_contract_value, frozen_at, deleted_at, created_at, created_by, last_updated_at, last_updated_by`

const lineItemColumns = `line_item_id, document_id, description, unit, quantity, unit_price, markup_pct, position,
	created_at, created_by, last_updated_at, last_updated_by`

const insertLineItemQuery = `INSERT INTO line_items (` + lineItemColumns + `)
	VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12);`

// SaveDocument inserts the document row and its line items in one transaction.
func (r *PgxDocumentRepository) SaveDocument(ctx context.Context, doc domain.Document, items []domain.QuoteLineItem) error {
	m := mapping.ToModelDocument(doc)

	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer func() { _ = r.Rollback(ctx, tx) }()

	_, err = tx.Exec(ctx, `INSERT INTO documents (`+documentColumns+`)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $19, $20);`,
		m.DocumentID, m.OrganizationID, m.DocumentType, m.ProjectID, m.Number, m.Title, m.CurrencyCode,
		m.ExchangeRate, m.TaxPct, m.TaxLabel, m.DiscountPct, m.Status, m.ParentContractID,
		m.OriginalContractValue, m.FrozenAt, m.DeletedAt, m.CreatedAt, m.CreatedBy, m.LastUpdatedAt, m.LastUpdatedBy,
	)
	if err != nil {
		return translateWriteError(err, "document "+m.DocumentID)
	}

	if len(items) > 0 {
		batch := &pgx.Batch{}
		for _, item := range items {
			queueLineItemInsert(batch, mapping.ToModelLineItem(item))
		}
		br := tx.SendBatch(ctx, batch)
		if err := br.Close(); err != nil {
			return translateWriteError(err, "line items of document "+m.DocumentID)
		}
	}

	return r.Commit(ctx, tx)
}

func (r *PgxDocumentRepository) FindDocumentByID(ctx context.Context, organizationID, documentID string) (domain.Document, error) {
	return findDocument(ctx, r.Pool, organizationID, documentID, "")
}

func (r *PgxDocumentRepository) FindDocumentByIDForUpdate(ctx context.Context, tx pgx.Tx, organizationID, documentID string) (domain.Document, error) {
	return findDocument(ctx, tx, organizationID, documentID, " FOR UPDATE")
}

func findDocument(ctx context.Context, q querier, organizationID, documentID, lockClause string) (domain.Document, error) {
	query := `SELECT ` + documentColumns + ` FROM documents
		WHERE organization_id = $1 AND document_id = $2 AND deleted_at IS NULL` + lockClause + `;`

	m, err := scanDocument(q.QueryRow(ctx, query, organizationID, documentID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFoundError("document " + documentID + " not found")
		}
		return nil, fmt.Errorf("failed to find document %s: %w", documentID, err)
	}
	return mapping.ToDomainDocument(m)
}

// ListDocuments pages newest first using a (created_at, document_id) keyset.
func (r *PgxDocumentRepository) ListDocuments(ctx context.Context, organizationID string, filter domain.DocumentFilter) ([]domain.Document, *string, error) {
	limit := filter.Limit
	if limit <= 0 {
		limit = defaultDocumentLimit
	}
	fetchLimit := limit + 1

	query := `SELECT ` + documentColumns + ` FROM documents WHERE organization_id = $1 AND deleted_at IS NULL`
	args := []any{organizationID}
	argNum := 2

	if filter.Type != "" {
		query += fmt.Sprintf(" AND document_type = $%d", argNum)
		args = append(args, string(filter.Type))
		argNum++
	}
	if filter.Status != "" {
		query += fmt.Sprintf(" AND status = $%d", argNum)
		args = append(args, string(filter.Status))
		argNum++
	}
	if filter.ParentContractID != "" {
		query += fmt.Sprintf(" AND parent_contract_id = $%d", argNum)
		args = append(args, filter.ParentContractID)
		argNum++
	}
	if filter.NextToken != "" {
		lastCreatedAt, lastID, err := pagination.DecodeToken(filter.NextToken)
		if err != nil {
			return nil, nil, fmt.Errorf("%w: invalid nextToken: %v", apperrors.ErrValidation, err)
		}
		query += fmt.Sprintf(" AND (created_at, document_id) < ($%d, $%d)", argNum, argNum+1)
		args = append(args, lastCreatedAt, lastID)
		argNum += 2
	}
	query += fmt.Sprintf(" ORDER BY created_at DESC, document_id DESC LIMIT $%d;", argNum)
	args = append(args, fetchLimit)

	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to query documents: %w", err)
	}
	defer rows.Close()

	modelDocs, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (models.Document, error) {
		return scanDocument(row)
	})
	if err != nil {
		return nil, nil, fmt.Errorf("failed to scan documents: %w", err)
	}

	var nextToken *string
	if len(modelDocs) > limit {
		last := modelDocs[limit-1]
		token := pagination.EncodeToken(last.CreatedAt, last.DocumentID)
		nextToken = &token
		modelDocs = modelDocs[:limit]
	}

	docs := make([]domain.Document, 0, len(modelDocs))
	for _, m := range modelDocs {
		doc, err := mapping.ToDomainDocument(m)
		if err != nil {
			return nil, nil, err
		}
		docs = append(docs, doc)
	}
	return docs, nextToken, nil
}

func (r *PgxDocumentRepository) ListChangeOrders(ctx context.Context, organizationID, contractID string) ([]*domain.ChangeOrder, error) {
	query := `SELECT ` + documentColumns + ` FROM documents
		WHERE organization_id = $1 AND parent_contract_id = $2
			AND document_type = 'change_order' AND deleted_at IS NULL
		ORDER BY created_at, document_id;`

	rows, err := r.Pool.Query(ctx, query, organizationID, contractID)
	if err != nil {
		return nil, fmt.Errorf("failed to query change orders of contract %s: %w", contractID, err)
	}
	defer rows.Close()

	modelDocs, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (models.Document, error) {
		return scanDocument(row)
	})
	if err != nil {
		return nil, fmt.Errorf("failed to scan change orders: %w", err)
	}

	changeOrders := make([]*domain.ChangeOrder, 0, len(modelDocs))
	for _, m := range modelDocs {
		doc, err := mapping.ToDomainDocument(m)
		if err != nil {
			return nil, err
		}
		co, ok := doc.(*domain.ChangeOrder)
		if !ok {
			return nil, fmt.Errorf("document %s is not a change order", m.DocumentID)
		}
		changeOrders = append(changeOrders, co)
	}
	return changeOrders, nil
}

func (r *PgxDocumentRepository) UpdateDocumentPricing(ctx context.Context, header domain.DocumentHeader) error {
	query := `
		UPDATE documents
		SET tax_pct = $3, tax_label = $4, discount_pct = $5, last_updated_at = $6, last_updated_by = $7
		WHERE organization_id = $1 AND document_id = $2 AND deleted_at IS NULL;
	`
	var taxLabel *string
	if header.TaxLabel != "" {
		taxLabel = &header.TaxLabel
	}
	tag, err := r.Pool.Exec(ctx, query,
		header.OrganizationID, header.DocumentID, header.TaxPct, taxLabel, header.DiscountPct,
		header.LastUpdatedAt, header.LastUpdatedBy,
	)
	if err != nil {
		return apperrors.NewAppError(500, "failed to update pricing of document "+header.DocumentID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.NewNotFoundError("document " + header.DocumentID + " not found")
	}
	return nil
}

func (r *PgxDocumentRepository) SoftDeleteDocument(ctx context.Context, organizationID, documentID, userID string, now time.Time) error {
	query := `
		UPDATE documents
		SET deleted_at = $3, last_updated_at = $3, last_updated_by = $4
		WHERE organization_id = $1 AND document_id = $2 AND deleted_at IS NULL;
	`
	tag, err := r.Pool.Exec(ctx, query, organizationID, documentID, now, userID)
	if err != nil {
		return apperrors.NewAppError(500, "failed to delete document "+documentID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.NewNotFoundError("document " + documentID + " not found")
	}
	return nil
}

func (r *PgxDocumentRepository) UpdateDocumentStatusInTx(ctx context.Context, tx pgx.Tx, documentID string, status domain.QuoteStatus, userID string, now time.Time) error {
	query := `
		UPDATE documents
		SET status = $2, last_updated_at = $3, last_updated_by = $4
		WHERE document_id = $1 AND deleted_at IS NULL;
	`
	tag, err := tx.Exec(ctx, query, documentID, string(status), now, userID)
	if err != nil {
		return apperrors.NewAppError(500, "failed to update status of document "+documentID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.NewNotFoundError("document " + documentID + " not found")
	}
	return nil
}

// FreezeContractValueInTx only writes while original_contract_value is still NULL.
func (r *PgxDocumentRepository) FreezeContractValueInTx(ctx context.Context, tx pgx.Tx, contractID string, value decimal.Decimal, frozenAt time.Time) error {
	query := `
		UPDATE documents
		SET original_contract_value = $2, frozen_at = $3
		WHERE document_id = $1 AND document_type = 'contract' AND original_contract_value IS NULL;
	`
	tag, err := tx.Exec(ctx, query, contractID, value, frozenAt)
	if err != nil {
		return apperrors.NewAppError(500, "failed to freeze value of contract "+contractID, err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("%w: contract %s", apperrors.ErrAlreadyFrozen, contractID)
	}
	return nil
}

func (r *PgxDocumentRepository) FindLineItemsByDocumentID(ctx context.Context, documentID string) ([]domain.QuoteLineItem, error) {
	return findLineItems(ctx, r.Pool, documentID)
}

func (r *PgxDocumentRepository) FindLineItemsInTx(ctx context.Context, tx pgx.Tx, documentID string) ([]domain.QuoteLineItem, error) {
	return findLineItems(ctx, tx, documentID)
}

func findLineItems(ctx context.Context, q querier, documentID string) ([]domain.QuoteLineItem, error) {
	query := `SELECT ` + lineItemColumns + ` FROM line_items WHERE document_id = $1 ORDER BY position, created_at;`

	rows, err := q.Query(ctx, query, documentID)
	if err != nil {
		return nil, fmt.Errorf("failed to query line items of document %s: %w", documentID, err)
	}
	defer rows.Close()

	modelItems, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (models.LineItem, error) {
		return scanLineItem(row)
	})
	if err != nil {
		return nil, fmt.Errorf("failed to scan line items: %w", err)
	}
	return mapping.ToDomainLineItemSlice(modelItems), nil
}

func (r *PgxDocumentRepository) FindLineItemsByDocumentIDs(ctx context.Context, documentIDs []string) (map[string][]domain.QuoteLineItem, error) {
	result := make(map[string][]domain.QuoteLineItem, len(documentIDs))
	if len(documentIDs) == 0 {
		return result, nil
	}

	query := `SELECT ` + lineItemColumns + ` FROM line_items
		WHERE document_id = ANY($1)
		ORDER BY document_id, position, created_at;`

	rows, err := r.Pool.Query(ctx, query, documentIDs)
	if err != nil {
		return nil, fmt.Errorf("failed to query line items: %w", err)
	}
	defer rows.Close()

	modelItems, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (models.LineItem, error) {
		return scanLineItem(row)
	})
	if err != nil {
		return nil, fmt.Errorf("failed to scan line items: %w", err)
	}
	for _, m := range modelItems {
		result[m.DocumentID] = append(result[m.DocumentID], mapping.ToDomainLineItem(m))
	}
	return result, nil
}

func (r *PgxDocumentRepository) SaveLineItem(ctx context.Context, item domain.QuoteLineItem) error {
	m := mapping.ToModelLineItem(item)
	_, err := r.Pool.Exec(ctx, insertLineItemQuery, lineItemArgs(m)...)
	if err != nil {
		return translateWriteError(err, "line item "+m.LineItemID)
	}
	return nil
}

func (r *PgxDocumentRepository) UpdateLineItem(ctx context.Context, item domain.QuoteLineItem) error {
	m := mapping.ToModelLineItem(item)
	query := `
		UPDATE line_items
		SET description = $3, unit = $4, quantity = $5, unit_price = $6, markup_pct = $7, position = $8,
			last_updated_at = $9, last_updated_by = $10
		WHERE document_id = $1 AND line_item_id = $2;
	`
	tag, err := r.Pool.Exec(ctx, query,
		m.DocumentID, m.LineItemID, m.Description, m.Unit, m.Quantity, m.UnitPrice, m.MarkupPct, m.Position,
		m.LastUpdatedAt, m.LastUpdatedBy,
	)
	if err != nil {
		return apperrors.NewAppError(500, "failed to update line item "+m.LineItemID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.NewNotFoundError("line item " + m.LineItemID + " not found")
	}
	return nil
}

func (r *PgxDocumentRepository) DeleteLineItem(ctx context.Context, documentID, lineItemID string) error {
	tag, err := r.Pool.Exec(ctx, `DELETE FROM line_items WHERE document_id = $1 AND line_item_id = $2;`, documentID, lineItemID)
	if err != nil {
		return apperrors.NewAppError(500, "failed to delete line item "+lineItemID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.NewNotFoundError("line item " + lineItemID + " not found")
	}
	return nil
}

func queueLineItemInsert(batch *pgx.Batch, m models.LineItem) {
	batch.Queue(insertLineItemQuery, lineItemArgs(m)...)
}

func lineItemArgs(m models.LineItem) []any {
	return []any{
		m.LineItemID, m.DocumentID, m.Description, m.Unit, m.Quantity, m.UnitPrice, m.MarkupPct, m.Position,
		m.CreatedAt, m.CreatedBy, m.LastUpdatedAt, m.LastUpdatedBy,
	}
}

func scanDocument(row pgx.Row) (models.Document, error) {
	var m models.Document
	err := row.Scan(
		&m.DocumentID, &m.OrganizationID, &m.DocumentType, &m.ProjectID, &m.Number, &m.Title, &m.CurrencyCode,
		&m.ExchangeRate, &m.TaxPct, &m.TaxLabel, &m.DiscountPct, &m.Status, &m.ParentContractID,
		&m.OriginalContractValue, &m.FrozenAt, &m.DeletedAt, &m.CreatedAt, &m.CreatedBy, &m.LastUpdatedAt, &m.LastUpdatedBy,
	)
	return m, err
}

func scanLineItem(row pgx.Row) (models.LineItem, error) {
	var m models.LineItem
	err := row.Scan(
		&m.LineItemID, &m.DocumentID, &m.Description, &m.Unit, &m.Quantity, &m.UnitPrice, &m.MarkupPct, &m.Position,
		&m.CreatedAt, &m.CreatedBy, &m.LastUpdatedAt, &m.LastUpdatedBy,
	)
	return m, err
}
