package repositories

import (
	"context"
	"time"

	"github.com/SscSPs/construction_finance_app/internal/core/domain"
	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
)

// DocumentReader defines read operations for quotes, contracts and change orders.
// Soft-deleted documents are never returned.
type DocumentReader interface {
	FindDocumentByID(ctx context.Context, organizationID, documentID string) (domain.Document, error)
	// ListDocuments returns one page of documents and the token of the next page, if any.
	ListDocuments(ctx context.Context, organizationID string, filter domain.DocumentFilter) ([]domain.Document, *string, error)
	// ListChangeOrders returns the live change orders of a contract.
	ListChangeOrders(ctx context.Context, organizationID, contractID string) ([]*domain.ChangeOrder, error)
	FindLineItemsByDocumentID(ctx context.Context, documentID string) ([]domain.QuoteLineItem, error)
	// FindLineItemsByDocumentIDs groups line items by document ID.
	FindLineItemsByDocumentIDs(ctx context.Context, documentIDs []string) (map[string][]domain.QuoteLineItem, error)
}

// DocumentWriter defines write operations for documents and their line items
type DocumentWriter interface {
	// SaveDocument inserts a document and its line items atomically.
	SaveDocument(ctx context.Context, doc domain.Document, items []domain.QuoteLineItem) error
	UpdateDocumentPricing(ctx context.Context, header domain.DocumentHeader) error
	SoftDeleteDocument(ctx context.Context, organizationID, documentID, userID string, now time.Time) error

	SaveLineItem(ctx context.Context, item domain.QuoteLineItem) error
	UpdateLineItem(ctx context.Context, item domain.QuoteLineItem) error
	DeleteLineItem(ctx context.Context, documentID, lineItemID string) error
}

// DocumentTxWriter defines the operations that run inside a caller-managed transaction.
type DocumentTxWriter interface {
	// FindDocumentByIDForUpdate locks the document row until the transaction ends.
	FindDocumentByIDForUpdate(ctx context.Context, tx pgx.Tx, organizationID, documentID string) (domain.Document, error)
	FindLineItemsInTx(ctx context.Context, tx pgx.Tx, documentID string) ([]domain.QuoteLineItem, error)
	UpdateDocumentStatusInTx(ctx context.Context, tx pgx.Tx, documentID string, status domain.QuoteStatus, userID string, now time.Time) error
	// FreezeContractValueInTx stores the original value only while it is still unset and
	// returns apperrors.ErrAlreadyFrozen otherwise.
	FreezeContractValueInTx(ctx context.Context, tx pgx.Tx, contractID string, value decimal.Decimal, frozenAt time.Time) error
}

// DocumentRepositoryFacade combines all document-related repository interfaces
type DocumentRepositoryFacade interface {
	DocumentReader
	DocumentWriter
}

// DocumentRepositoryWithTx extends DocumentRepositoryFacade with transaction capabilities
type DocumentRepositoryWithTx interface {
	DocumentRepositoryFacade
	DocumentTxWriter
	TransactionManager
}
