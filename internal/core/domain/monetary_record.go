package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// RecordKind identifies the business source of a monetary record.
type RecordKind string

const (
	RecordKindPayment           RecordKind = "payment"
	RecordKindPurchaseOrderItem RecordKind = "purchase_order_item"
	RecordKindContractAmount    RecordKind = "contract_amount"
)

// IsValid reports whether k is a known record kind.
func (k RecordKind) IsValid() bool {
	switch k {
	case RecordKindPayment, RecordKindPurchaseOrderItem, RecordKindContractAmount:
		return true
	}
	return false
}

// MonetaryRecord is the atomic unit of aggregation.
//
// ExchangeRate is functional units per 1 unit of CurrencyCode at creation time. A nil rate
// means "use the organization's current rate". Records are immutable apart from an explicit
// rate correction and the void flag.
type MonetaryRecord struct {
	RecordID       string           `json:"recordID"`
	OrganizationID string           `json:"organizationID"`
	ProjectID      string           `json:"projectID,omitempty"`
	Kind           RecordKind       `json:"kind"`
	Description    string           `json:"description,omitempty"`
	Amount         decimal.Decimal  `json:"amount"` // may be negative for refunds
	CurrencyCode   string           `json:"currencyCode"`
	ExchangeRate   *decimal.Decimal `json:"exchangeRate,omitempty"`
	IsVoided       bool             `json:"isVoided"`
	OccurredAt     time.Time        `json:"occurredAt"`
	AuditFields
}

// RecordFilter narrows the records loaded for an aggregation.
type RecordFilter struct {
	Kind          RecordKind
	ProjectID     string
	IncludeVoided bool
}
