package dto

import (
	"time"

	"github.com/SscSPs/construction_finance_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreateMonetaryRecordRequest records a payment, purchase-order item or contract amount.
// Amount may be negative for refunds. A missing ExchangeRate means the organization's
// current rate applies at aggregation time.
type CreateMonetaryRecordRequest struct {
	Kind         string           `json:"kind" binding:"required,oneof=payment purchase_order_item contract_amount"`
	ProjectID    string           `json:"projectID" binding:"omitempty,max=64"`
	Description  string           `json:"description" binding:"omitempty,max=500"`
	Amount       decimal.Decimal  `json:"amount" swaggertype:"string" example:"1500.00"`
	CurrencyCode string           `json:"currencyCode" binding:"required,currency_code"`
	ExchangeRate *decimal.Decimal `json:"exchangeRate" binding:"omitempty,gt=0" swaggertype:"string"`
	OccurredAt   *time.Time       `json:"occurredAt"`
}

// CorrectExchangeRateRequest replaces the stored rate of a record.
type CorrectExchangeRateRequest struct {
	ExchangeRate decimal.Decimal `json:"exchangeRate" binding:"required,gt=0" swaggertype:"string"`
}

// ListMonetaryRecordsParams are the query parameters for listing records.
type ListMonetaryRecordsParams struct {
	Kind          string `form:"kind" binding:"omitempty,oneof=payment purchase_order_item contract_amount"`
	ProjectID     string `form:"projectID"`
	IncludeVoided bool   `form:"includeVoided"`
}

// MonetaryRecordResponse defines the data returned for a monetary record.
type MonetaryRecordResponse struct {
	RecordID       string           `json:"recordID"`
	OrganizationID string           `json:"organizationID"`
	ProjectID      string           `json:"projectID,omitempty"`
	Kind           string           `json:"kind"`
	Description    string           `json:"description,omitempty"`
	Amount         decimal.Decimal  `json:"amount" swaggertype:"string"`
	CurrencyCode   string           `json:"currencyCode"`
	ExchangeRate   *decimal.Decimal `json:"exchangeRate,omitempty" swaggertype:"string"`
	IsVoided       bool             `json:"isVoided"`
	OccurredAt     time.Time        `json:"occurredAt"`
	CreatedAt      time.Time        `json:"createdAt"`
	CreatedBy      string           `json:"createdBy"`
	LastUpdatedAt  time.Time        `json:"lastUpdatedAt"`
	LastUpdatedBy  string           `json:"lastUpdatedBy"`
}

// ListMonetaryRecordsResponse wraps a record listing.
type ListMonetaryRecordsResponse struct {
	Records []MonetaryRecordResponse `json:"records"`
}

// ToMonetaryRecordResponse converts a domain.MonetaryRecord to its DTO.
func ToMonetaryRecordResponse(r *domain.MonetaryRecord) MonetaryRecordResponse {
	return MonetaryRecordResponse{
		RecordID:       r.RecordID,
		OrganizationID: r.OrganizationID,
		ProjectID:      r.ProjectID,
		Kind:           string(r.Kind),
		Description:    r.Description,
		Amount:         r.Amount,
		CurrencyCode:   r.CurrencyCode,
		ExchangeRate:   r.ExchangeRate,
		IsVoided:       r.IsVoided,
		OccurredAt:     r.OccurredAt,
		CreatedAt:      r.CreatedAt,
		CreatedBy:      r.CreatedBy,
		LastUpdatedAt:  r.LastUpdatedAt,
		LastUpdatedBy:  r.LastUpdatedBy,
	}
}

// ToListMonetaryRecordsResponse converts records to a listing DTO.
func ToListMonetaryRecordsResponse(records []domain.MonetaryRecord) ListMonetaryRecordsResponse {
	res := ListMonetaryRecordsResponse{Records: make([]MonetaryRecordResponse, len(records))}
	for i := range records {
		res.Records[i] = ToMonetaryRecordResponse(&records[i])
	}
	return res
}
