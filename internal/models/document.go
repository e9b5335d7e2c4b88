package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Document is the documents row shared by quotes, contracts and change orders.
// Type-specific columns are NULL for the other types.
type Document struct {
	DocumentID     string           `json:"documentID"`
	OrganizationID string           `json:"organizationID"`
	DocumentType   string           `json:"documentType"`
	ProjectID      *string          `json:"projectID"`
	Number         *string          `json:"number"`
	Title          string           `json:"title"`
	CurrencyCode   string           `json:"currencyCode"`
	ExchangeRate   *decimal.Decimal `json:"exchangeRate"`
	TaxPct         decimal.Decimal  `json:"taxPct"`
	TaxLabel       *string          `json:"taxLabel"`
	DiscountPct    decimal.Decimal  `json:"discountPct"`
	Status         string           `json:"status"`

	ParentContractID      *string          `json:"parentContractID"`      // change orders only
	OriginalContractValue *decimal.Decimal `json:"originalContractValue"` // contracts only
	FrozenAt              *time.Time       `json:"frozenAt"`              // contracts only

	DeletedAt *time.Time `json:"deletedAt"`
	AuditFields
}

// LineItem is the line_items row.
type LineItem struct {
	LineItemID  string          `json:"lineItemID"`
	DocumentID  string          `json:"documentID"`
	Description string          `json:"description"`
	Unit        *string         `json:"unit"`
	Quantity    decimal.Decimal `json:"quantity"`
	UnitPrice   decimal.Decimal `json:"unitPrice"`
	MarkupPct   decimal.Decimal `json:"markupPct"`
	Position    int             `json:"position"`
	AuditFields
}
