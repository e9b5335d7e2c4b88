package domain

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// DisplayMode is the caller preference for presenting multi-currency sets.
type DisplayMode string

const (
	// DisplayNative shows amounts in their own currency without conversion.
	DisplayNative DisplayMode = "native"
	// DisplayFunctional converts every amount to the functional currency.
	DisplayFunctional DisplayMode = "functional"
	// DisplayMix shows a single currency natively, or the functional total plus a
	// per-currency breakdown when several currencies are present.
	DisplayMix DisplayMode = "mix"
)

// IsValid reports whether m is a known display mode.
func (m DisplayMode) IsValid() bool {
	switch m {
	case DisplayNative, DisplayFunctional, DisplayMix:
		return true
	}
	return false
}

// ParseDisplayMode parses a display mode case-insensitively.
func ParseDisplayMode(s string) (DisplayMode, error) {
	m := DisplayMode(strings.ToLower(strings.TrimSpace(s)))
	if !m.IsValid() {
		return "", fmt.Errorf("unknown display mode %q", s)
	}
	return m, nil
}

// CurrencyBreakdownEntry is one currency's share of a mixed aggregation. Derived, never stored.
type CurrencyBreakdownEntry struct {
	CurrencyCode    string          `json:"currencyCode"`
	Symbol          string          `json:"symbol"`
	NativeTotal     decimal.Decimal `json:"nativeTotal"`
	FunctionalTotal decimal.Decimal `json:"functionalTotal"`
	IsPrimary       bool            `json:"isPrimary"`
}

// AggregationResult is the output of a money aggregation.
type AggregationResult struct {
	Mode DisplayMode `json:"mode"`
	// Total is the headline figure for Mode, expressed in CurrencyCode.
	Total decimal.Decimal `json:"total"`
	// CurrencyCode is the currency Total is expressed in; empty when native mode spans
	// several currencies.
	CurrencyCode string `json:"currencyCode"`
	// Displayable is false when Total mixes currencies and must not be shown.
	Displayable     bool                     `json:"displayable"`
	NativeTotal     decimal.Decimal          `json:"nativeTotal"`
	FunctionalTotal decimal.Decimal          `json:"functionalTotal"`
	Breakdown       []CurrencyBreakdownEntry `json:"breakdown"`
}

// IsMultiCurrency reports whether more than one currency contributed.
func (r AggregationResult) IsMultiCurrency() bool {
	return len(r.Breakdown) > 1
}

// FormattedBreakdownEntry pairs a breakdown entry with display strings.
type FormattedBreakdownEntry struct {
	CurrencyBreakdownEntry
	NativeFormatted     string `json:"nativeFormatted"`
	FunctionalFormatted string `json:"functionalFormatted"`
}

// MoneySummary is an aggregation ready for presentation.
type MoneySummary struct {
	Result             AggregationResult         `json:"result"`
	TotalFormatted     string                    `json:"totalFormatted"`
	Breakdown          []FormattedBreakdownEntry `json:"breakdown"`
	RecordCount        int                       `json:"recordCount"`
	CurrentRate        decimal.Decimal           `json:"currentRate"`
	FunctionalCurrency string                    `json:"functionalCurrency"`
	DecimalPlaces      int                       `json:"decimalPlaces"`
}

// SummaryFilter selects the records of a money summary. An empty Mode means the
// organization's preferred display mode.
type SummaryFilter struct {
	Kind      RecordKind
	ProjectID string
	Mode      DisplayMode
}
