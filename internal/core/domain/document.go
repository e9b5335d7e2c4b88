package domain

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

// DocumentType distinguishes the three variants of a financial document.
type DocumentType string

const (
	DocumentTypeQuote       DocumentType = "quote"
	DocumentTypeContract    DocumentType = "contract"
	DocumentTypeChangeOrder DocumentType = "change_order"
)

// IsValid reports whether t is a known document type.
func (t DocumentType) IsValid() bool {
	switch t {
	case DocumentTypeQuote, DocumentTypeContract, DocumentTypeChangeOrder:
		return true
	}
	return false
}

// QuoteStatus is the approval status shared by all document variants.
type QuoteStatus string

const (
	StatusDraft    QuoteStatus = "draft"
	StatusSent     QuoteStatus = "sent"
	StatusApproved QuoteStatus = "approved"
	StatusRejected QuoteStatus = "rejected"
)

// IsValid reports whether s is a known status.
func (s QuoteStatus) IsValid() bool {
	switch s {
	case StatusDraft, StatusSent, StatusApproved, StatusRejected:
		return true
	}
	return false
}

// IsPending reports whether s still awaits a decision.
func (s QuoteStatus) IsPending() bool {
	return s == StatusDraft || s == StatusSent
}

// IsTerminal reports whether no further transition is possible from s.
func (s QuoteStatus) IsTerminal() bool {
	return s == StatusApproved || s == StatusRejected
}

var allowedTransitions = map[QuoteStatus][]QuoteStatus{
	StatusDraft: {StatusSent, StatusApproved, StatusRejected},
	StatusSent:  {StatusDraft, StatusApproved, StatusRejected},
}

// CanTransition reports whether a document may move from one status to another.
// Approved and rejected are terminal.
func CanTransition(from, to QuoteStatus) bool {
	for _, next := range allowedTransitions[from] {
		if next == to {
			return true
		}
	}
	return false
}

// DocumentHeader holds the fields shared by every document variant.
type DocumentHeader struct {
	DocumentID     string           `json:"documentID"`
	OrganizationID string           `json:"organizationID"`
	ProjectID      string           `json:"projectID,omitempty"`
	Number         string           `json:"number,omitempty"`
	Title          string           `json:"title"`
	CurrencyCode   string           `json:"currencyCode"`
	ExchangeRate   *decimal.Decimal `json:"exchangeRate,omitempty"`
	TaxPct         decimal.Decimal  `json:"taxPct"`
	TaxLabel       string           `json:"taxLabel,omitempty"`
	DiscountPct    decimal.Decimal  `json:"discountPct"`
	Status         QuoteStatus      `json:"status"`
	DeletedAt      *time.Time       `json:"-"`
	AuditFields
}

// Header gives access to the shared fields.
func (h *DocumentHeader) Header() *DocumentHeader { return h }

// IsEditable reports whether line items and pricing may still change.
// Rejection is terminal, so rejected documents are read-only.
func (h *DocumentHeader) IsEditable() bool {
	return h.Status != StatusRejected
}

// Document is the sum type over Quote, Contract and ChangeOrder.
// Callers type-switch on the concrete variant.
type Document interface {
	DocumentType() DocumentType
	Header() *DocumentHeader
	isDocument()
}

// Quote is a priced proposal with no contractual weight.
type Quote struct {
	DocumentHeader
}

func (*Quote) DocumentType() DocumentType { return DocumentTypeQuote }
func (*Quote) isDocument()                {}

// Contract is a signed agreement. OriginalContractValue is captured once, when the contract
// is approved, and never recomputed afterwards.
type Contract struct {
	DocumentHeader
	OriginalContractValue *decimal.Decimal `json:"originalContractValue,omitempty"`
	FrozenAt              *time.Time       `json:"frozenAt,omitempty"`
}

func (*Contract) DocumentType() DocumentType { return DocumentTypeContract }
func (*Contract) isDocument()                {}

// IsFrozen reports whether the original value has been captured.
func (c *Contract) IsFrozen() bool {
	return c.OriginalContractValue != nil
}

// ChangeOrder amends the value of its parent contract.
type ChangeOrder struct {
	DocumentHeader
	ParentContractID string `json:"parentContractID"`
}

func (*ChangeOrder) DocumentType() DocumentType { return DocumentTypeChangeOrder }
func (*ChangeOrder) isDocument()                {}

// NewDocument builds the variant for docType around header. parentContractID is required
// for change orders and rejected for the other variants.
func NewDocument(docType DocumentType, header DocumentHeader, parentContractID string) (Document, error) {
	switch docType {
	case DocumentTypeQuote:
		if parentContractID != "" {
			return nil, fmt.Errorf("quote cannot reference a parent contract")
		}
		return &Quote{DocumentHeader: header}, nil
	case DocumentTypeContract:
		if parentContractID != "" {
			return nil, fmt.Errorf("contract cannot reference a parent contract")
		}
		return &Contract{DocumentHeader: header}, nil
	case DocumentTypeChangeOrder:
		if parentContractID == "" {
			return nil, fmt.Errorf("change order requires a parent contract")
		}
		return &ChangeOrder{DocumentHeader: header, ParentContractID: parentContractID}, nil
	default:
		return nil, fmt.Errorf("unknown document type %q", docType)
	}
}

// DocumentFilter narrows document listings.
type DocumentFilter struct {
	Type             DocumentType
	Status           QuoteStatus
	ParentContractID string
	Limit            int
	NextToken        string
}
