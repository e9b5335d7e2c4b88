package dto

import (
	"time"

	"github.com/SscSPs/construction_finance_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// LineItemRequest describes one priced line. Negative quantities, prices and markups are
// rejected here.
type LineItemRequest struct {
	Description string          `json:"description" binding:"required,max=500"`
	Unit        string          `json:"unit" binding:"omitempty,max=32"`
	Quantity    decimal.Decimal `json:"quantity" binding:"gte=0" swaggertype:"string" example:"10"`
	UnitPrice   decimal.Decimal `json:"unitPrice" binding:"gte=0" swaggertype:"string" example:"100"`
	MarkupPct   decimal.Decimal `json:"markupPct" binding:"gte=0" swaggertype:"string" example:"20"`
	Position    *int            `json:"position" binding:"omitempty,gte=0"`
}

// ToDomainLineItem converts the request to a line item without identifiers.
func (r LineItemRequest) ToDomainLineItem() domain.QuoteLineItem {
	item := domain.QuoteLineItem{
		Description: r.Description,
		Unit:        r.Unit,
		Quantity:    r.Quantity,
		UnitPrice:   r.UnitPrice,
		MarkupPct:   r.MarkupPct,
	}
	if r.Position != nil {
		item.Position = *r.Position
	}
	return item
}

// ToDomainLineItems converts a slice of requests, numbering positions that were not given.
func ToDomainLineItems(reqs []LineItemRequest) []domain.QuoteLineItem {
	items := make([]domain.QuoteLineItem, len(reqs))
	for i, r := range reqs {
		items[i] = r.ToDomainLineItem()
		if r.Position == nil {
			items[i].Position = i
		}
	}
	return items
}

// CreateDocumentRequest creates a quote, contract or change order with optional line items.
type CreateDocumentRequest struct {
	DocumentType     string            `json:"documentType" binding:"required,oneof=quote contract change_order"`
	ParentContractID string            `json:"parentContractID" binding:"required_if=DocumentType change_order"`
	ProjectID        string            `json:"projectID" binding:"omitempty,max=64"`
	Number           string            `json:"number" binding:"omitempty,max=64"`
	Title            string            `json:"title" binding:"required,max=200"`
	CurrencyCode     string            `json:"currencyCode" binding:"required,currency_code"`
	ExchangeRate     *decimal.Decimal  `json:"exchangeRate" binding:"omitempty,gt=0" swaggertype:"string"`
	TaxPct           decimal.Decimal   `json:"taxPct" binding:"gte=0" swaggertype:"string" example:"21"`
	TaxLabel         string            `json:"taxLabel" binding:"omitempty,max=32"`
	DiscountPct      decimal.Decimal   `json:"discountPct" binding:"gte=0,lte=100" swaggertype:"string" example:"10"`
	LineItems        []LineItemRequest `json:"lineItems" binding:"omitempty,dive"`
}

// UpdatePricingRequest replaces the document-level percentages.
type UpdatePricingRequest struct {
	TaxPct      decimal.Decimal `json:"taxPct" binding:"gte=0" swaggertype:"string"`
	TaxLabel    string          `json:"taxLabel" binding:"omitempty,max=32"`
	DiscountPct decimal.Decimal `json:"discountPct" binding:"gte=0,lte=100" swaggertype:"string"`
}

// TransitionStatusRequest moves a document to a new status.
type TransitionStatusRequest struct {
	Status string `json:"status" binding:"required,oneof=draft sent approved rejected"`
}

// PreviewTotalsRequest runs the totals cascade over unsaved input.
type PreviewTotalsRequest struct {
	LineItems   []LineItemRequest `json:"lineItems" binding:"omitempty,dive"`
	TaxPct      decimal.Decimal   `json:"taxPct" binding:"gte=0" swaggertype:"string"`
	DiscountPct decimal.Decimal   `json:"discountPct" binding:"gte=0,lte=100" swaggertype:"string"`
}

// ListDocumentsParams are the query parameters for listing documents.
type ListDocumentsParams struct {
	Type             string `form:"type" binding:"omitempty,oneof=quote contract change_order"`
	Status           string `form:"status" binding:"omitempty,oneof=draft sent approved rejected"`
	ParentContractID string `form:"parentContractID"`
	Limit            int    `form:"limit,default=20" binding:"omitempty,min=1,max=100"`
	NextToken        string `form:"nextToken"`
}

// DocumentFilter converts the parameters to a domain filter.
func (p ListDocumentsParams) DocumentFilter() domain.DocumentFilter {
	return domain.DocumentFilter{
		Type:             domain.DocumentType(p.Type),
		Status:           domain.QuoteStatus(p.Status),
		ParentContractID: p.ParentContractID,
		Limit:            p.Limit,
		NextToken:        p.NextToken,
	}
}

// TotalsResponse carries the cascade results at full precision.
type TotalsResponse struct {
	Subtotal           decimal.Decimal `json:"subtotal" swaggertype:"string"`
	MarkupAmount       decimal.Decimal `json:"markupAmount" swaggertype:"string"`
	SubtotalWithMarkup decimal.Decimal `json:"subtotalWithMarkup" swaggertype:"string"`
	DiscountAmount     decimal.Decimal `json:"discountAmount" swaggertype:"string"`
	TotalAfterDiscount decimal.Decimal `json:"totalAfterDiscount" swaggertype:"string"`
	TaxAmount          decimal.Decimal `json:"taxAmount" swaggertype:"string"`
	TotalWithTax       decimal.Decimal `json:"totalWithTax" swaggertype:"string"`
}

// ToTotalsResponse converts domain.DocumentTotals to its DTO.
func ToTotalsResponse(t domain.DocumentTotals) TotalsResponse {
	return TotalsResponse{
		Subtotal:           t.Subtotal,
		MarkupAmount:       t.MarkupAmount,
		SubtotalWithMarkup: t.SubtotalWithMarkup,
		DiscountAmount:     t.DiscountAmount,
		TotalAfterDiscount: t.TotalAfterDiscount,
		TaxAmount:          t.TaxAmount,
		TotalWithTax:       t.TotalWithTax,
	}
}

// LineItemResponse is a line item with its computed amounts.
type LineItemResponse struct {
	LineItemID         string          `json:"lineItemID"`
	Description        string          `json:"description"`
	Unit               string          `json:"unit,omitempty"`
	Quantity           decimal.Decimal `json:"quantity" swaggertype:"string"`
	UnitPrice          decimal.Decimal `json:"unitPrice" swaggertype:"string"`
	MarkupPct          decimal.Decimal `json:"markupPct" swaggertype:"string"`
	Position           int             `json:"position"`
	Subtotal           decimal.Decimal `json:"subtotal" swaggertype:"string"`
	SubtotalWithMarkup decimal.Decimal `json:"subtotalWithMarkup" swaggertype:"string"`
}

// DocumentResponse flattens the document variants into one shape. Variant-specific fields
// are omitted when they do not apply.
type DocumentResponse struct {
	DocumentID            string             `json:"documentID"`
	DocumentType          string             `json:"documentType"`
	OrganizationID        string             `json:"organizationID"`
	ProjectID             string             `json:"projectID,omitempty"`
	Number                string             `json:"number,omitempty"`
	Title                 string             `json:"title"`
	CurrencyCode          string             `json:"currencyCode"`
	ExchangeRate          *decimal.Decimal   `json:"exchangeRate,omitempty" swaggertype:"string"`
	TaxPct                decimal.Decimal    `json:"taxPct" swaggertype:"string"`
	TaxLabel              string             `json:"taxLabel,omitempty"`
	DiscountPct           decimal.Decimal    `json:"discountPct" swaggertype:"string"`
	Status                string             `json:"status"`
	ParentContractID      string             `json:"parentContractID,omitempty"`
	OriginalContractValue *decimal.Decimal   `json:"originalContractValue,omitempty" swaggertype:"string"`
	FrozenAt              *time.Time         `json:"frozenAt,omitempty"`
	LineItems             []LineItemResponse `json:"lineItems,omitempty"`
	Totals                *TotalsResponse    `json:"totals,omitempty"`
	CreatedAt             time.Time          `json:"createdAt"`
	CreatedBy             string             `json:"createdBy"`
	LastUpdatedAt         time.Time          `json:"lastUpdatedAt"`
	LastUpdatedBy         string             `json:"lastUpdatedBy"`
}

// ListDocumentsResponse is one page of documents.
type ListDocumentsResponse struct {
	Documents []DocumentResponse `json:"documents"`
	NextToken string             `json:"nextToken,omitempty"`
}

// ToDocumentResponse converts any document variant to the flat DTO.
func ToDocumentResponse(doc domain.Document) DocumentResponse {
	h := doc.Header()
	res := DocumentResponse{
		DocumentID:     h.DocumentID,
		DocumentType:   string(doc.DocumentType()),
		OrganizationID: h.OrganizationID,
		ProjectID:      h.ProjectID,
		Number:         h.Number,
		Title:          h.Title,
		CurrencyCode:   h.CurrencyCode,
		ExchangeRate:   h.ExchangeRate,
		TaxPct:         h.TaxPct,
		TaxLabel:       h.TaxLabel,
		DiscountPct:    h.DiscountPct,
		Status:         string(h.Status),
		CreatedAt:      h.CreatedAt,
		CreatedBy:      h.CreatedBy,
		LastUpdatedAt:  h.LastUpdatedAt,
		LastUpdatedBy:  h.LastUpdatedBy,
	}

	switch d := doc.(type) {
	case *domain.Contract:
		res.OriginalContractValue = d.OriginalContractValue
		res.FrozenAt = d.FrozenAt
	case *domain.ChangeOrder:
		res.ParentContractID = d.ParentContractID
	}
	return res
}

// ToDocumentViewResponse converts a document with line items and totals.
func ToDocumentViewResponse(view *domain.DocumentView) DocumentResponse {
	res := ToDocumentResponse(view.Document)
	res.LineItems = toLineItemResponses(view)
	totals := ToTotalsResponse(view.Totals)
	res.Totals = &totals
	return res
}

// PreviewTotalsResponse is the cascade over unsaved line items.
type PreviewTotalsResponse struct {
	LineItems []LineItemResponse `json:"lineItems"`
	Totals    TotalsResponse     `json:"totals"`
}

// ToPreviewTotalsResponse converts a document-less view.
func ToPreviewTotalsResponse(view domain.DocumentView) PreviewTotalsResponse {
	return PreviewTotalsResponse{
		LineItems: toLineItemResponses(&view),
		Totals:    ToTotalsResponse(view.Totals),
	}
}

func toLineItemResponses(view *domain.DocumentView) []LineItemResponse {
	items := make([]LineItemResponse, len(view.LineItems))
	for i, item := range view.LineItems {
		items[i] = LineItemResponse{
			LineItemID:         item.LineItemID,
			Description:        item.Description,
			Unit:               item.Unit,
			Quantity:           item.Quantity,
			UnitPrice:          item.UnitPrice,
			MarkupPct:          item.MarkupPct,
			Position:           item.Position,
			Subtotal:           view.LineTotals[i].Subtotal,
			SubtotalWithMarkup: view.LineTotals[i].SubtotalWithMarkup,
		}
	}
	return items
}

// ToListDocumentsResponse converts one page of documents.
func ToListDocumentsResponse(docs []domain.Document, nextToken string) ListDocumentsResponse {
	res := ListDocumentsResponse{Documents: make([]DocumentResponse, len(docs)), NextToken: nextToken}
	for i, d := range docs {
		res.Documents[i] = ToDocumentResponse(d)
	}
	return res
}

// ChangeOrderSummaryResponse is one change order's contribution to a contract.
type ChangeOrderSummaryResponse struct {
	DocumentID   string          `json:"documentID"`
	Status       string          `json:"status"`
	TotalWithTax decimal.Decimal `json:"totalWithTax" swaggertype:"string"`
}

// ContractSummaryResponse is the composite value of a contract.
type ContractSummaryResponse struct {
	ContractID               string                       `json:"contractID"`
	CurrencyCode             string                       `json:"currencyCode"`
	OriginalContractValue    decimal.Decimal              `json:"originalContractValue" swaggertype:"string"`
	OriginalValueFrozen      bool                         `json:"originalValueFrozen"`
	ApprovedChangesValue     decimal.Decimal              `json:"approvedChangesValue" swaggertype:"string"`
	PendingChangesValue      decimal.Decimal              `json:"pendingChangesValue" swaggertype:"string"`
	RevisedContractValue     decimal.Decimal              `json:"revisedContractValue" swaggertype:"string"`
	PotentialContractValue   decimal.Decimal              `json:"potentialContractValue" swaggertype:"string"`
	ChangeOrderCount         int                          `json:"changeOrderCount"`
	ApprovedChangeOrderCount int                          `json:"approvedChangeOrderCount"`
	PendingChangeOrderCount  int                          `json:"pendingChangeOrderCount"`
	ChangeOrders             []ChangeOrderSummaryResponse `json:"changeOrders"`
}

// ToContractSummaryResponse converts a domain.ContractView to its DTO.
func ToContractSummaryResponse(view *domain.ContractView) ContractSummaryResponse {
	s := view.Summary
	res := ContractSummaryResponse{
		ContractID:               view.Contract.DocumentID,
		CurrencyCode:             view.Contract.CurrencyCode,
		OriginalContractValue:    s.OriginalContractValue,
		OriginalValueFrozen:      s.OriginalValueFrozen,
		ApprovedChangesValue:     s.ApprovedChangesValue,
		PendingChangesValue:      s.PendingChangesValue,
		RevisedContractValue:     s.RevisedContractValue,
		PotentialContractValue:   s.PotentialContractValue,
		ChangeOrderCount:         s.ChangeOrderCount,
		ApprovedChangeOrderCount: s.ApprovedChangeOrderCount,
		PendingChangeOrderCount:  s.PendingChangeOrderCount,
		ChangeOrders:             make([]ChangeOrderSummaryResponse, len(view.ChangeOrders)),
	}
	for i, co := range view.ChangeOrders {
		res.ChangeOrders[i] = ChangeOrderSummaryResponse{
			DocumentID:   co.DocumentID,
			Status:       string(co.Status),
			TotalWithTax: co.Totals.TotalWithTax,
		}
	}
	return res
}
