package finance

import (
	"fmt"
	"sort"

	"github.com/SscSPs/construction_finance_app/internal/apperrors"
	"github.com/SscSPs/construction_finance_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// SumOption configures Sum.
type SumOption func(*sumConfig)

type sumConfig struct {
	currencies domain.CurrencyCatalog
}

// WithCurrencies supplies the symbols used in breakdown entries.
func WithCurrencies(catalog domain.CurrencyCatalog) SumOption {
	return func(c *sumConfig) {
		c.currencies = catalog
	}
}

// Sum aggregates records for presentation in mode.
//
// Each record is converted as amount * rate, where rate is functional units per 1 unit of
// the record currency. Amounts are summed algebraically; callers exclude voided or rejected
// records before calling. Every currency that appears, even only with zero amounts, gets a
// breakdown entry. An empty input yields a zero total and an empty breakdown.
func Sum(records []domain.MonetaryRecord, mode domain.DisplayMode, functionalCurrencyCode string, currentRate decimal.Decimal, opts ...SumOption) (domain.AggregationResult, error) {
	if !mode.IsValid() {
		return domain.AggregationResult{}, fmt.Errorf("%w: unknown display mode %q", apperrors.ErrValidation, mode)
	}
	if functionalCurrencyCode == "" {
		return domain.AggregationResult{}, fmt.Errorf("%w: functional currency code is required", apperrors.ErrValidation)
	}

	cfg := sumConfig{}
	for _, opt := range opts {
		opt(&cfg)
	}

	buckets := make(map[string]*domain.CurrencyBreakdownEntry)
	nativeTotal := decimal.Zero
	functionalTotal := decimal.Zero

	for _, record := range records {
		if record.CurrencyCode == "" {
			return domain.AggregationResult{}, fmt.Errorf("%w: record %q has no currency code", apperrors.ErrValidation, record.RecordID)
		}

		rate, err := effectiveRate(record, functionalCurrencyCode, currentRate)
		if err != nil {
			return domain.AggregationResult{}, err
		}
		functionalAmount := record.Amount.Mul(rate)

		nativeTotal = nativeTotal.Add(record.Amount)
		functionalTotal = functionalTotal.Add(functionalAmount)

		bucket, ok := buckets[record.CurrencyCode]
		if !ok {
			bucket = &domain.CurrencyBreakdownEntry{
				CurrencyCode:    record.CurrencyCode,
				Symbol:          cfg.currencies.Symbol(record.CurrencyCode),
				NativeTotal:     decimal.Zero,
				FunctionalTotal: decimal.Zero,
				IsPrimary:       record.CurrencyCode == functionalCurrencyCode,
			}
			buckets[record.CurrencyCode] = bucket
		}
		bucket.NativeTotal = bucket.NativeTotal.Add(record.Amount)
		bucket.FunctionalTotal = bucket.FunctionalTotal.Add(functionalAmount)
	}

	result := domain.AggregationResult{
		Mode:            mode,
		NativeTotal:     nativeTotal,
		FunctionalTotal: functionalTotal,
		Breakdown:       sortedBreakdown(buckets),
		Displayable:     true,
	}

	switch mode {
	case domain.DisplayNative:
		result.Total = nativeTotal
		switch len(result.Breakdown) {
		case 0:
			result.CurrencyCode = functionalCurrencyCode
		case 1:
			result.CurrencyCode = result.Breakdown[0].CurrencyCode
		default:
			result.Displayable = false
		}
	case domain.DisplayFunctional:
		result.Total = functionalTotal
		result.CurrencyCode = functionalCurrencyCode
	case domain.DisplayMix:
		if len(result.Breakdown) == 1 {
			result.Total = result.Breakdown[0].NativeTotal
			result.CurrencyCode = result.Breakdown[0].CurrencyCode
		} else {
			result.Total = functionalTotal
			result.CurrencyCode = functionalCurrencyCode
		}
	}

	return result, nil
}

// sortedBreakdown puts the primary (functional) entry first, then orders by currency code.
func sortedBreakdown(buckets map[string]*domain.CurrencyBreakdownEntry) []domain.CurrencyBreakdownEntry {
	breakdown := make([]domain.CurrencyBreakdownEntry, 0, len(buckets))
	for _, b := range buckets {
		breakdown = append(breakdown, *b)
	}
	sort.Slice(breakdown, func(i, j int) bool {
		if breakdown[i].IsPrimary != breakdown[j].IsPrimary {
			return breakdown[i].IsPrimary
		}
		return breakdown[i].CurrencyCode < breakdown[j].CurrencyCode
	})
	return breakdown
}
