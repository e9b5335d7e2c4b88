package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/SscSPs/construction_finance_app/internal/apperrors"
	"github.com/SscSPs/construction_finance_app/internal/core/domain"
	"github.com/SscSPs/construction_finance_app/internal/core/finance"
	portsrepo "github.com/SscSPs/construction_finance_app/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/construction_finance_app/internal/core/ports/services"
	"github.com/SscSPs/construction_finance_app/internal/dto"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

const (
	defaultDocumentPageSize = 20
	maxDocumentPageSize     = 100
)

type documentService struct {
	BaseService
	docRepo         portsrepo.DocumentRepositoryWithTx
	orgService      portssvc.OrganizationReaderSvc
	currencyService portssvc.CurrencyReaderSvc
}

// NewDocumentService creates the service managing quotes, contracts and change orders.
func NewDocumentService(docRepo portsrepo.DocumentRepositoryWithTx, orgService portssvc.OrganizationReaderSvc, currencyService portssvc.CurrencyReaderSvc) portssvc.DocumentSvcFacade {
	return &documentService{
		docRepo:         docRepo,
		orgService:      orgService,
		currencyService: currencyService,
	}
}

var _ portssvc.DocumentSvcFacade = (*documentService)(nil)

func (s *documentService) CreateDocument(ctx context.Context, organizationID string, req dto.CreateDocumentRequest, userID string) (*domain.DocumentView, error) {
	docType := domain.DocumentType(req.DocumentType)
	if !docType.IsValid() {
		return nil, fmt.Errorf("%w: unknown document type %q", apperrors.ErrValidation, req.DocumentType)
	}
	if _, err := s.orgService.GetOrganization(ctx, organizationID); err != nil {
		return nil, err
	}
	if err := requireCurrency(ctx, s.currencyService, req.CurrencyCode); err != nil {
		return nil, err
	}
	if docType == domain.DocumentTypeChangeOrder {
		parent, err := s.requireContract(ctx, organizationID, req.ParentContractID)
		if err != nil {
			return nil, err
		}
		if parent.CurrencyCode != req.CurrencyCode {
			return nil, fmt.Errorf("%w: change order currency %s must match contract %s currency %s",
				apperrors.ErrValidation, req.CurrencyCode, parent.DocumentID, parent.CurrencyCode)
		}
	}

	now := s.Now()
	audit := domain.NewAuditFields(userID, now)
	header := domain.DocumentHeader{
		DocumentID:     uuid.NewString(),
		OrganizationID: organizationID,
		ProjectID:      req.ProjectID,
		Number:         req.Number,
		Title:          req.Title,
		CurrencyCode:   req.CurrencyCode,
		ExchangeRate:   req.ExchangeRate,
		TaxPct:         req.TaxPct,
		TaxLabel:       req.TaxLabel,
		DiscountPct:    req.DiscountPct,
		Status:         domain.StatusDraft,
		AuditFields:    audit,
	}

	doc, err := domain.NewDocument(docType, header, req.ParentContractID)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", apperrors.ErrValidation, err)
	}

	items := dto.ToDomainLineItems(req.LineItems)
	for i := range items {
		items[i].LineItemID = uuid.NewString()
		items[i].DocumentID = header.DocumentID
		items[i].AuditFields = audit
	}

	if err := s.docRepo.SaveDocument(ctx, doc, items); err != nil {
		s.LogError(ctx, err, "Failed to save document",
			slog.String("organization_id", organizationID),
			slog.String("document_type", req.DocumentType))
		return nil, fmt.Errorf("failed to create %s: %w", req.DocumentType, err)
	}

	s.LogInfo(ctx, "Document created",
		slog.String("document_id", header.DocumentID),
		slog.String("document_type", req.DocumentType),
		slog.Int("line_items", len(items)))
	return buildDocumentView(doc, items), nil
}

func (s *documentService) GetDocument(ctx context.Context, organizationID, documentID string) (*domain.DocumentView, error) {
	doc, err := s.findDocument(ctx, organizationID, documentID)
	if err != nil {
		return nil, err
	}
	return s.loadView(ctx, doc)
}

func (s *documentService) ListDocuments(ctx context.Context, organizationID string, filter domain.DocumentFilter) ([]domain.Document, *string, error) {
	if filter.Type != "" && !filter.Type.IsValid() {
		return nil, nil, fmt.Errorf("%w: unknown document type %q", apperrors.ErrValidation, filter.Type)
	}
	if filter.Status != "" && !filter.Status.IsValid() {
		return nil, nil, fmt.Errorf("%w: unknown status %q", apperrors.ErrValidation, filter.Status)
	}
	if filter.Limit <= 0 {
		filter.Limit = defaultDocumentPageSize
	}
	if filter.Limit > maxDocumentPageSize {
		filter.Limit = maxDocumentPageSize
	}

	docs, next, err := s.docRepo.ListDocuments(ctx, organizationID, filter)
	if err != nil {
		s.LogError(ctx, err, "Failed to list documents", slog.String("organization_id", organizationID))
		return nil, nil, fmt.Errorf("failed to list documents: %w", err)
	}
	if docs == nil {
		docs = []domain.Document{}
	}
	return docs, next, nil
}

func (s *documentService) PreviewTotals(_ context.Context, items []domain.QuoteLineItem, taxPct, discountPct decimal.Decimal) domain.DocumentView {
	if items == nil {
		items = []domain.QuoteLineItem{}
	}
	return domain.DocumentView{
		LineItems:  items,
		LineTotals: finance.AllLineTotals(items),
		Totals:     finance.ComputeTotals(items, taxPct, discountPct),
	}
}

func (s *documentService) UpdatePricing(ctx context.Context, organizationID, documentID string, req dto.UpdatePricingRequest, userID string) (*domain.DocumentView, error) {
	doc, err := s.findEditableDocument(ctx, organizationID, documentID)
	if err != nil {
		return nil, err
	}

	h := doc.Header()
	h.TaxPct = req.TaxPct
	h.TaxLabel = req.TaxLabel
	h.DiscountPct = req.DiscountPct
	h.Touch(userID, s.Now())

	if err := s.docRepo.UpdateDocumentPricing(ctx, *h); err != nil {
		s.LogError(ctx, err, "Failed to update pricing", slog.String("document_id", documentID))
		return nil, fmt.Errorf("failed to update pricing of document %s: %w", documentID, err)
	}

	s.LogInfo(ctx, "Document pricing updated",
		slog.String("document_id", documentID),
		slog.String("tax_pct", req.TaxPct.String()),
		slog.String("discount_pct", req.DiscountPct.String()))
	return s.loadView(ctx, doc)
}

func (s *documentService) AddLineItem(ctx context.Context, organizationID, documentID string, req dto.LineItemRequest, userID string) (*domain.DocumentView, error) {
	doc, err := s.findEditableDocument(ctx, organizationID, documentID)
	if err != nil {
		return nil, err
	}

	item := req.ToDomainLineItem()
	if req.Position == nil {
		existing, err := s.docRepo.FindLineItemsByDocumentID(ctx, documentID)
		if err != nil {
			return nil, fmt.Errorf("failed to load line items: %w", err)
		}
		item.Position = nextPosition(existing)
	}
	item.LineItemID = uuid.NewString()
	item.DocumentID = documentID
	item.AuditFields = domain.NewAuditFields(userID, s.Now())

	if err := s.docRepo.SaveLineItem(ctx, item); err != nil {
		s.LogError(ctx, err, "Failed to save line item", slog.String("document_id", documentID))
		return nil, fmt.Errorf("failed to add line item: %w", err)
	}

	s.LogInfo(ctx, "Line item added",
		slog.String("document_id", documentID),
		slog.String("line_item_id", item.LineItemID))
	return s.loadView(ctx, doc)
}

func (s *documentService) UpdateLineItem(ctx context.Context, organizationID, documentID, lineItemID string, req dto.LineItemRequest, userID string) (*domain.DocumentView, error) {
	doc, err := s.findEditableDocument(ctx, organizationID, documentID)
	if err != nil {
		return nil, err
	}
	current, err := s.findLineItem(ctx, documentID, lineItemID)
	if err != nil {
		return nil, err
	}

	updated := req.ToDomainLineItem()
	if req.Position == nil {
		updated.Position = current.Position
	}
	updated.LineItemID = current.LineItemID
	updated.DocumentID = documentID
	updated.AuditFields = current.AuditFields
	updated.Touch(userID, s.Now())

	if err := s.docRepo.UpdateLineItem(ctx, updated); err != nil {
		s.LogError(ctx, err, "Failed to update line item", slog.String("line_item_id", lineItemID))
		return nil, fmt.Errorf("failed to update line item %s: %w", lineItemID, err)
	}

	s.LogInfo(ctx, "Line item updated",
		slog.String("document_id", documentID),
		slog.String("line_item_id", lineItemID))
	return s.loadView(ctx, doc)
}

func (s *documentService) DeleteLineItem(ctx context.Context, organizationID, documentID, lineItemID, userID string) (*domain.DocumentView, error) {
	doc, err := s.findEditableDocument(ctx, organizationID, documentID)
	if err != nil {
		return nil, err
	}
	if _, err := s.findLineItem(ctx, documentID, lineItemID); err != nil {
		return nil, err
	}

	if err := s.docRepo.DeleteLineItem(ctx, documentID, lineItemID); err != nil {
		s.LogError(ctx, err, "Failed to delete line item", slog.String("line_item_id", lineItemID))
		return nil, fmt.Errorf("failed to delete line item %s: %w", lineItemID, err)
	}

	s.LogInfo(ctx, "Line item deleted",
		slog.String("document_id", documentID),
		slog.String("line_item_id", lineItemID),
		slog.String("user_id", userID))
	return s.loadView(ctx, doc)
}

func (s *documentService) DeleteDocument(ctx context.Context, organizationID, documentID, userID string) error {
	doc, err := s.findDocument(ctx, organizationID, documentID)
	if err != nil {
		return err
	}

	if _, ok := doc.(*domain.Contract); ok {
		changeOrders, err := s.docRepo.ListChangeOrders(ctx, organizationID, documentID)
		if err != nil {
			return fmt.Errorf("failed to check change orders: %w", err)
		}
		if len(changeOrders) > 0 {
			return fmt.Errorf("%w: contract %s still has %d change orders", apperrors.ErrValidation, documentID, len(changeOrders))
		}
	}

	if err := s.docRepo.SoftDeleteDocument(ctx, organizationID, documentID, userID, s.Now()); err != nil {
		s.LogError(ctx, err, "Failed to delete document", slog.String("document_id", documentID))
		return fmt.Errorf("failed to delete document %s: %w", documentID, err)
	}

	s.LogInfo(ctx, "Document deleted",
		slog.String("document_id", documentID),
		slog.String("document_type", string(doc.DocumentType())))
	return nil
}

// TransitionStatus runs in one transaction so a contract's approval and the capture of its
// original value commit together.
func (s *documentService) TransitionStatus(ctx context.Context, organizationID, documentID string, status domain.QuoteStatus, userID string) (*domain.DocumentView, error) {
	if !status.IsValid() {
		return nil, fmt.Errorf("%w: unknown status %q", apperrors.ErrValidation, status)
	}

	tx, err := s.docRepo.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() {
		if rbErr := s.docRepo.Rollback(ctx, tx); rbErr != nil {
			s.LogError(ctx, rbErr, "Failed to roll back status transition", slog.String("document_id", documentID))
		}
	}()

	doc, err := s.docRepo.FindDocumentByIDForUpdate(ctx, tx, organizationID, documentID)
	if err != nil {
		return nil, fmt.Errorf("failed to find document %s: %w", documentID, err)
	}

	h := doc.Header()
	from := h.Status
	if !domain.CanTransition(from, status) {
		return nil, fmt.Errorf("%w: cannot move document from %s to %s", apperrors.ErrValidation, from, status)
	}

	now := s.Now()
	if err := s.docRepo.UpdateDocumentStatusInTx(ctx, tx, documentID, status, userID, now); err != nil {
		return nil, fmt.Errorf("failed to update status of document %s: %w", documentID, err)
	}
	h.Status = status
	h.Touch(userID, now)

	items, err := s.docRepo.FindLineItemsInTx(ctx, tx, documentID)
	if err != nil {
		return nil, fmt.Errorf("failed to load line items: %w", err)
	}

	if contract, ok := doc.(*domain.Contract); ok && status == domain.StatusApproved {
		totals := finance.ComputeTotals(items, h.TaxPct, h.DiscountPct)
		if err := finance.FreezeOriginalValue(contract, totals, now); err != nil {
			return nil, err
		}
		if err := s.docRepo.FreezeContractValueInTx(ctx, tx, documentID, *contract.OriginalContractValue, *contract.FrozenAt); err != nil {
			return nil, fmt.Errorf("failed to freeze contract value: %w", err)
		}
		s.LogInfo(ctx, "Contract value frozen",
			slog.String("document_id", documentID),
			slog.String("original_contract_value", contract.OriginalContractValue.String()))
	}

	if err := s.docRepo.Commit(ctx, tx); err != nil {
		return nil, fmt.Errorf("failed to commit status transition: %w", err)
	}

	s.LogInfo(ctx, "Document status changed",
		slog.String("document_id", documentID),
		slog.String("from", string(from)),
		slog.String("to", string(status)))
	return buildDocumentView(doc, items), nil
}

func (s *documentService) findDocument(ctx context.Context, organizationID, documentID string) (domain.Document, error) {
	doc, err := s.docRepo.FindDocumentByID(ctx, organizationID, documentID)
	if err != nil {
		return nil, fmt.Errorf("failed to find document %s: %w", documentID, err)
	}
	return doc, nil
}

// findEditableDocument rejects writes to rejected documents.
func (s *documentService) findEditableDocument(ctx context.Context, organizationID, documentID string) (domain.Document, error) {
	doc, err := s.findDocument(ctx, organizationID, documentID)
	if err != nil {
		return nil, err
	}
	if !doc.Header().IsEditable() {
		return nil, fmt.Errorf("%w: document %s is %s and read-only", apperrors.ErrValidation, documentID, doc.Header().Status)
	}
	return doc, nil
}

func (s *documentService) findLineItem(ctx context.Context, documentID, lineItemID string) (*domain.QuoteLineItem, error) {
	items, err := s.docRepo.FindLineItemsByDocumentID(ctx, documentID)
	if err != nil {
		return nil, fmt.Errorf("failed to load line items: %w", err)
	}
	for i := range items {
		if items[i].LineItemID == lineItemID {
			return &items[i], nil
		}
	}
	return nil, apperrors.NewNotFoundError("line item " + lineItemID + " not found")
}

// requireContract returns the live contract of the organization named by parentContractID.
func (s *documentService) requireContract(ctx context.Context, organizationID, parentContractID string) (*domain.Contract, error) {
	if parentContractID == "" {
		return nil, fmt.Errorf("%w: change order requires a parent contract", apperrors.ErrValidation)
	}
	parent, err := s.docRepo.FindDocumentByID(ctx, organizationID, parentContractID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, fmt.Errorf("%w: parent contract %s not found", apperrors.ErrValidation, parentContractID)
		}
		return nil, fmt.Errorf("failed to load parent contract: %w", err)
	}
	contract, ok := parent.(*domain.Contract)
	if !ok {
		return nil, fmt.Errorf("%w: parent document %s is a %s, not a contract", apperrors.ErrValidation, parentContractID, parent.DocumentType())
	}
	return contract, nil
}

func (s *documentService) loadView(ctx context.Context, doc domain.Document) (*domain.DocumentView, error) {
	items, err := s.docRepo.FindLineItemsByDocumentID(ctx, doc.Header().DocumentID)
	if err != nil {
		return nil, fmt.Errorf("failed to load line items: %w", err)
	}
	return buildDocumentView(doc, items), nil
}

func buildDocumentView(doc domain.Document, items []domain.QuoteLineItem) *domain.DocumentView {
	if items == nil {
		items = []domain.QuoteLineItem{}
	}
	h := doc.Header()
	return &domain.DocumentView{
		Document:   doc,
		LineItems:  items,
		LineTotals: finance.AllLineTotals(items),
		Totals:     finance.ComputeTotals(items, h.TaxPct, h.DiscountPct),
	}
}

func nextPosition(items []domain.QuoteLineItem) int {
	next := 0
	for _, item := range items {
		if item.Position >= next {
			next = item.Position + 1
		}
	}
	return next
}
