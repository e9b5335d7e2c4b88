package domain

import "github.com/shopspring/decimal"

// QuoteLineItem belongs to exactly one document and is deleted with it.
// Quantity, UnitPrice and MarkupPct are validated non-negative at the input layer.
type QuoteLineItem struct {
	LineItemID  string          `json:"lineItemID"`
	DocumentID  string          `json:"documentID"`
	Description string          `json:"description"`
	Unit        string          `json:"unit,omitempty"`
	Quantity    decimal.Decimal `json:"quantity"`
	UnitPrice   decimal.Decimal `json:"unitPrice"`
	MarkupPct   decimal.Decimal `json:"markupPct"`
	Position    int             `json:"position"`
	AuditFields
}

// Subtotal is quantity * unit price.
func (i QuoteLineItem) Subtotal() decimal.Decimal {
	return i.Quantity.Mul(i.UnitPrice)
}

// SubtotalWithMarkup applies the line's own markup to its subtotal.
func (i QuoteLineItem) SubtotalWithMarkup() decimal.Decimal {
	return i.Subtotal().Mul(decimal.NewFromInt(1).Add(i.MarkupPct.Shift(-2)))
}
