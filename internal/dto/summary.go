package dto

import (
	"github.com/SscSPs/construction_finance_app/internal/core/domain"
	"github.com/SscSPs/construction_finance_app/internal/core/finance"
	"github.com/shopspring/decimal"
)

// MoneySummaryParams are the query parameters of the money summary endpoint.
// An empty Mode uses the organization's display preference.
type MoneySummaryParams struct {
	Kind      string `form:"kind" binding:"omitempty,oneof=payment purchase_order_item contract_amount"`
	ProjectID string `form:"projectID"`
	Mode      string `form:"mode" binding:"omitempty,oneof=native functional mix"`
}

// SummaryFilter converts the parameters to a service filter.
func (p MoneySummaryParams) SummaryFilter() domain.SummaryFilter {
	return domain.SummaryFilter{
		Kind:      domain.RecordKind(p.Kind),
		ProjectID: p.ProjectID,
		Mode:      domain.DisplayMode(p.Mode),
	}
}

// CurrencyBreakdownResponse is one currency's line in a money summary.
type CurrencyBreakdownResponse struct {
	CurrencyCode        string          `json:"currencyCode"`
	Symbol              string          `json:"symbol"`
	IsPrimary           bool            `json:"isPrimary"`
	NativeTotal         decimal.Decimal `json:"nativeTotal" swaggertype:"string"`
	FunctionalTotal     decimal.Decimal `json:"functionalTotal" swaggertype:"string"`
	NativeFormatted     string          `json:"nativeFormatted"`
	FunctionalFormatted string          `json:"functionalFormatted"`
}

// MoneySummaryResponse is the presentation of an aggregation. Total is rounded to the
// organization's decimal places; TotalFormatted is empty when the total is not displayable.
type MoneySummaryResponse struct {
	Mode               string                      `json:"mode"`
	Total              string                      `json:"total"`
	TotalFormatted     string                      `json:"totalFormatted"`
	CurrencyCode       string                      `json:"currencyCode"`
	Displayable        bool                        `json:"displayable"`
	IsMultiCurrency    bool                        `json:"isMultiCurrency"`
	FunctionalCurrency string                      `json:"functionalCurrency"`
	FunctionalTotal    decimal.Decimal             `json:"functionalTotal" swaggertype:"string"`
	CurrentRate        decimal.Decimal             `json:"currentRate" swaggertype:"string"`
	RecordCount        int                         `json:"recordCount"`
	Breakdown          []CurrencyBreakdownResponse `json:"breakdown"`
}

// ToMoneySummaryResponse converts a domain.MoneySummary to its DTO.
func ToMoneySummaryResponse(s *domain.MoneySummary) MoneySummaryResponse {
	res := MoneySummaryResponse{
		Mode:               string(s.Result.Mode),
		Total:              finance.FormatPlain(s.Result.Total, s.DecimalPlaces),
		TotalFormatted:     s.TotalFormatted,
		CurrencyCode:       s.Result.CurrencyCode,
		Displayable:        s.Result.Displayable,
		IsMultiCurrency:    s.Result.IsMultiCurrency(),
		FunctionalCurrency: s.FunctionalCurrency,
		FunctionalTotal:    s.Result.FunctionalTotal,
		CurrentRate:        s.CurrentRate,
		RecordCount:        s.RecordCount,
		Breakdown:          make([]CurrencyBreakdownResponse, len(s.Breakdown)),
	}
	for i, b := range s.Breakdown {
		res.Breakdown[i] = CurrencyBreakdownResponse{
			CurrencyCode:        b.CurrencyCode,
			Symbol:              b.Symbol,
			IsPrimary:           b.IsPrimary,
			NativeTotal:         b.NativeTotal,
			FunctionalTotal:     b.FunctionalTotal,
			NativeFormatted:     b.NativeFormatted,
			FunctionalFormatted: b.FunctionalFormatted,
		}
	}
	return res
}
