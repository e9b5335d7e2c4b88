package finance

import (
	"fmt"
	"time"

	"github.com/SscSPs/construction_finance_app/internal/apperrors"
	"github.com/SscSPs/construction_finance_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// ComposeSummary combines a contract's original value with its change orders.
//
// Approved change orders move the revised value; draft and sent ones are pending and only
// move the potential value. Rejected change orders count towards ChangeOrderCount and
// nothing else.
func ComposeSummary(originalContractValue decimal.Decimal, changeOrders []domain.ChangeOrderTotals) (domain.ContractSummary, error) {
	summary := domain.ContractSummary{
		OriginalContractValue: originalContractValue,
		ApprovedChangesValue:  decimal.Zero,
		PendingChangesValue:   decimal.Zero,
		ChangeOrderCount:      len(changeOrders),
	}

	for _, co := range changeOrders {
		switch {
		case co.Status == domain.StatusApproved:
			summary.ApprovedChangesValue = summary.ApprovedChangesValue.Add(co.Totals.TotalWithTax)
			summary.ApprovedChangeOrderCount++
		case co.Status.IsPending():
			summary.PendingChangesValue = summary.PendingChangesValue.Add(co.Totals.TotalWithTax)
			summary.PendingChangeOrderCount++
		case co.Status == domain.StatusRejected:
		default:
			return domain.ContractSummary{}, fmt.Errorf("%w: change order %q has unknown status %q", apperrors.ErrValidation, co.DocumentID, co.Status)
		}
	}

	summary.RevisedContractValue = originalContractValue.Add(summary.ApprovedChangesValue)
	summary.PotentialContractValue = summary.RevisedContractValue.Add(summary.PendingChangesValue)
	return summary, nil
}

// SummarizeContract composes the summary for contract. A frozen contract contributes its
// captured original value; an unapproved one contributes its live total, flagged unfrozen.
func SummarizeContract(contract *domain.Contract, liveTotals domain.DocumentTotals, changeOrders []domain.ChangeOrderTotals) (domain.ContractSummary, error) {
	if contract == nil {
		return domain.ContractSummary{}, fmt.Errorf("%w: contract is required", apperrors.ErrValidation)
	}
	original := liveTotals.TotalWithTax
	if contract.IsFrozen() {
		original = *contract.OriginalContractValue
	}

	summary, err := ComposeSummary(original, changeOrders)
	if err != nil {
		return domain.ContractSummary{}, err
	}
	summary.OriginalValueFrozen = contract.IsFrozen()
	return summary, nil
}

// FreezeOriginalValue captures totals.TotalWithTax as the contract's original value.
// It succeeds exactly once per contract; later calls return apperrors.ErrAlreadyFrozen
// and leave the captured value untouched.
func FreezeOriginalValue(contract *domain.Contract, totals domain.DocumentTotals, at time.Time) error {
	if contract == nil {
		return fmt.Errorf("%w: contract is required", apperrors.ErrValidation)
	}
	if contract.IsFrozen() {
		return fmt.Errorf("%w: contract %q was frozen at %s", apperrors.ErrAlreadyFrozen, contract.DocumentID, contract.FrozenAt)
	}

	value := totals.TotalWithTax
	frozenAt := at.UTC()
	contract.OriginalContractValue = &value
	contract.FrozenAt = &frozenAt
	return nil
}
