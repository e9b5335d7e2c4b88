package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// MonetaryRecord is the monetary_records row.
type MonetaryRecord struct {
	RecordID       string           `json:"recordID"`
	OrganizationID string           `json:"organizationID"`
	ProjectID      *string          `json:"projectID"`
	Kind           string           `json:"kind"`
	Description    *string          `json:"description"`
	Amount         decimal.Decimal  `json:"amount"`
	CurrencyCode   string           `json:"currencyCode"`
	ExchangeRate   *decimal.Decimal `json:"exchangeRate"` // NULL means "use the organization rate"
	IsVoided       bool             `json:"isVoided"`
	OccurredAt     time.Time        `json:"occurredAt"`
	AuditFields
}
