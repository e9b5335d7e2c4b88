package finance

import (
	"github.com/SscSPs/construction_finance_app/internal/apperrors"
	"github.com/SscSPs/construction_finance_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

var one = decimal.NewFromInt(1)

// ResolveRate returns the rate used to convert record into the functional currency:
// the record's own rate when present and positive, otherwise currentRate.
// It never returns a value <= 0; when neither rate is usable it fails with an
// *apperrors.InvalidRateError.
func ResolveRate(record domain.MonetaryRecord, currentRate decimal.Decimal) (decimal.Decimal, error) {
	if record.ExchangeRate != nil && record.ExchangeRate.IsPositive() {
		return *record.ExchangeRate, nil
	}
	if currentRate.IsPositive() {
		return currentRate, nil
	}
	return decimal.Zero, &apperrors.InvalidRateError{
		RecordID:     record.RecordID,
		CurrencyCode: record.CurrencyCode,
		StoredRate:   record.ExchangeRate,
		CurrentRate:  currentRate,
	}
}

// effectiveRate converts records already in the functional currency at the identity rate.
func effectiveRate(record domain.MonetaryRecord, functionalCurrencyCode string, currentRate decimal.Decimal) (decimal.Decimal, error) {
	if record.CurrencyCode == functionalCurrencyCode {
		return one, nil
	}
	return ResolveRate(record, currentRate)
}
