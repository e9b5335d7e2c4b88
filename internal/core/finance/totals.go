package finance

import (
	"github.com/SscSPs/construction_finance_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// percentFactor returns 1 + pct/100. Shift keeps the division exact.
func percentFactor(pct decimal.Decimal) decimal.Decimal {
	return one.Add(pct.Shift(-2))
}

// LineTotals computes the subtotal and per-line markup of a single item.
func LineTotals(item domain.QuoteLineItem) domain.LineTotals {
	subtotal := item.Subtotal()
	withMarkup := item.SubtotalWithMarkup()
	return domain.LineTotals{
		LineItemID:         item.LineItemID,
		Subtotal:           subtotal,
		MarkupAmount:       withMarkup.Sub(subtotal),
		SubtotalWithMarkup: withMarkup,
	}
}

// ComputeTotals runs the document cascade in its fixed order:
//
//  1. subtotal = Σ quantity * unitPrice
//  2. subtotalWithMarkup = Σ quantity * unitPrice * (1 + markupPct/100), per line
//  3. totalAfterDiscount = subtotalWithMarkup * (1 - discountPct/100)
//  4. totalWithTax = totalAfterDiscount * (1 + taxPct/100)
//
// Full precision is carried throughout; rounding happens only when formatting.
// Inputs are not clamped: validation of negative values belongs to the input layer.
func ComputeTotals(items []domain.QuoteLineItem, taxPct, discountPct decimal.Decimal) domain.DocumentTotals {
	subtotal := decimal.Zero
	withMarkup := decimal.Zero
	for _, item := range items {
		line := LineTotals(item)
		subtotal = subtotal.Add(line.Subtotal)
		withMarkup = withMarkup.Add(line.SubtotalWithMarkup)
	}

	afterDiscount := withMarkup.Mul(one.Sub(discountPct.Shift(-2)))
	withTax := afterDiscount.Mul(percentFactor(taxPct))

	return domain.DocumentTotals{
		Subtotal:           subtotal,
		MarkupAmount:       withMarkup.Sub(subtotal),
		SubtotalWithMarkup: withMarkup,
		DiscountAmount:     withMarkup.Sub(afterDiscount),
		TotalAfterDiscount: afterDiscount,
		TaxAmount:          withTax.Sub(afterDiscount),
		TotalWithTax:       withTax,
	}
}

// AllLineTotals computes LineTotals for each item, preserving order.
func AllLineTotals(items []domain.QuoteLineItem) []domain.LineTotals {
	lines := make([]domain.LineTotals, 0, len(items))
	for _, item := range items {
		lines = append(lines, LineTotals(item))
	}
	return lines
}
