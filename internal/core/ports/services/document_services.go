package services

import (
	"context"

	"github.com/SscSPs/construction_finance_app/internal/core/domain"
	"github.com/SscSPs/construction_finance_app/internal/dto"
	"github.com/shopspring/decimal"
)

// DocumentReaderSvc defines read operations for documents
type DocumentReaderSvc interface {
	GetDocument(ctx context.Context, organizationID, documentID string) (*domain.DocumentView, error)
	ListDocuments(ctx context.Context, organizationID string, filter domain.DocumentFilter) ([]domain.Document, *string, error)
	// PreviewTotals runs the totals cascade without persisting anything.
	PreviewTotals(ctx context.Context, items []domain.QuoteLineItem, taxPct, discountPct decimal.Decimal) domain.DocumentView
}

// DocumentWriterSvc defines write operations for documents and their line items
type DocumentWriterSvc interface {
	CreateDocument(ctx context.Context, organizationID string, req dto.CreateDocumentRequest, userID string) (*domain.DocumentView, error)
	UpdatePricing(ctx context.Context, organizationID, documentID string, req dto.UpdatePricingRequest, userID string) (*domain.DocumentView, error)
	AddLineItem(ctx context.Context, organizationID, documentID string, req dto.LineItemRequest, userID string) (*domain.DocumentView, error)
	UpdateLineItem(ctx context.Context, organizationID, documentID, lineItemID string, req dto.LineItemRequest, userID string) (*domain.DocumentView, error)
	DeleteLineItem(ctx context.Context, organizationID, documentID, lineItemID, userID string) (*domain.DocumentView, error)
	DeleteDocument(ctx context.Context, organizationID, documentID, userID string) error
	// TransitionStatus moves a document through its approval workflow. Approving a
	// contract freezes its original value.
	TransitionStatus(ctx context.Context, organizationID, documentID string, status domain.QuoteStatus, userID string) (*domain.DocumentView, error)
}

// DocumentSvcFacade combines all document-related service interfaces
type DocumentSvcFacade interface {
	DocumentReaderSvc
	DocumentWriterSvc
}

// ContractSvc composes contract values from their change orders.
type ContractSvc interface {
	GetContractSummary(ctx context.Context, organizationID, contractID string) (*domain.ContractView, error)
}
