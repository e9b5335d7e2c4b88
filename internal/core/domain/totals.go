package domain

import "github.com/shopspring/decimal"

// LineTotals are the derived amounts of a single line item.
type LineTotals struct {
	LineItemID         string          `json:"lineItemID"`
	Subtotal           decimal.Decimal `json:"subtotal"`
	MarkupAmount       decimal.Decimal `json:"markupAmount"`
	SubtotalWithMarkup decimal.Decimal `json:"subtotalWithMarkup"`
}

// DocumentTotals are the results of the subtotal → markup → discount → tax cascade.
type DocumentTotals struct {
	Subtotal           decimal.Decimal `json:"subtotal"`
	MarkupAmount       decimal.Decimal `json:"markupAmount"`
	SubtotalWithMarkup decimal.Decimal `json:"subtotalWithMarkup"`
	DiscountAmount     decimal.Decimal `json:"discountAmount"`
	TotalAfterDiscount decimal.Decimal `json:"totalAfterDiscount"`
	TaxAmount          decimal.Decimal `json:"taxAmount"`
	TotalWithTax       decimal.Decimal `json:"totalWithTax"`
}

// ChangeOrderTotals is one change order's contribution to a contract summary.
type ChangeOrderTotals struct {
	DocumentID string         `json:"documentID"`
	Totals     DocumentTotals `json:"totals"`
	Status     QuoteStatus    `json:"status"`
}

// ContractSummary is the composite financial picture of a contract. It is a projection
// recomputed on every read and never persisted.
type ContractSummary struct {
	OriginalContractValue    decimal.Decimal `json:"originalContractValue"`
	OriginalValueFrozen      bool            `json:"originalValueFrozen"`
	ApprovedChangesValue     decimal.Decimal `json:"approvedChangesValue"`
	PendingChangesValue      decimal.Decimal `json:"pendingChangesValue"`
	RevisedContractValue     decimal.Decimal `json:"revisedContractValue"`
	PotentialContractValue   decimal.Decimal `json:"potentialContractValue"`
	ChangeOrderCount         int             `json:"changeOrderCount"`
	ApprovedChangeOrderCount int             `json:"approvedChangeOrderCount"`
	PendingChangeOrderCount  int             `json:"pendingChangeOrderCount"`
}

// DocumentView is a document with its line items and computed totals.
type DocumentView struct {
	Document   Document        `json:"document"`
	LineItems  []QuoteLineItem `json:"lineItems"`
	LineTotals []LineTotals    `json:"lineTotals"`
	Totals     DocumentTotals  `json:"totals"`
}

// ContractView is a contract together with its recomputed summary and change orders.
type ContractView struct {
	Contract     *Contract           `json:"contract"`
	Summary      ContractSummary     `json:"summary"`
	ChangeOrders []ChangeOrderTotals `json:"changeOrders"`
}
