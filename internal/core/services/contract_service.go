package services

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/SscSPs/construction_finance_app/internal/apperrors"
	"github.com/SscSPs/construction_finance_app/internal/core/domain"
	"github.com/SscSPs/construction_finance_app/internal/core/finance"
	portsrepo "github.com/SscSPs/construction_finance_app/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/construction_finance_app/internal/core/ports/services"
)

type contractService struct {
	BaseService
	docRepo portsrepo.DocumentReader
}

// NewContractService creates the service composing contract values.
func NewContractService(docRepo portsrepo.DocumentReader) portssvc.ContractSvc {
	return &contractService{docRepo: docRepo}
}

var _ portssvc.ContractSvc = (*contractService)(nil)

// GetContractSummary recomputes the contract picture from current data on every call.
func (s *contractService) GetContractSummary(ctx context.Context, organizationID, contractID string) (*domain.ContractView, error) {
	doc, err := s.docRepo.FindDocumentByID(ctx, organizationID, contractID)
	if err != nil {
		return nil, fmt.Errorf("failed to find contract %s: %w", contractID, err)
	}
	contract, ok := doc.(*domain.Contract)
	if !ok {
		return nil, fmt.Errorf("%w: document %s is a %s, not a contract", apperrors.ErrValidation, contractID, doc.DocumentType())
	}

	items, err := s.docRepo.FindLineItemsByDocumentID(ctx, contractID)
	if err != nil {
		return nil, fmt.Errorf("failed to load contract line items: %w", err)
	}
	liveTotals := finance.ComputeTotals(items, contract.TaxPct, contract.DiscountPct)

	changeOrders, err := s.docRepo.ListChangeOrders(ctx, organizationID, contractID)
	if err != nil {
		return nil, fmt.Errorf("failed to load change orders: %w", err)
	}

	itemsByDoc := map[string][]domain.QuoteLineItem{}
	if len(changeOrders) > 0 {
		ids := make([]string, len(changeOrders))
		for i, co := range changeOrders {
			ids[i] = co.DocumentID
		}
		if itemsByDoc, err = s.docRepo.FindLineItemsByDocumentIDs(ctx, ids); err != nil {
			return nil, fmt.Errorf("failed to load change order line items: %w", err)
		}
	}

	coTotals := make([]domain.ChangeOrderTotals, len(changeOrders))
	for i, co := range changeOrders {
		if co.CurrencyCode != contract.CurrencyCode {
			s.LogError(ctx, apperrors.ErrValidation, "Change order currency differs from contract",
				slog.String("contract_id", contractID),
				slog.String("change_order_id", co.DocumentID),
				slog.String("currency", co.CurrencyCode))
			return nil, fmt.Errorf("%w: change order %s is in %s but contract %s is in %s",
				apperrors.ErrValidation, co.DocumentID, co.CurrencyCode, contractID, contract.CurrencyCode)
		}
		coTotals[i] = domain.ChangeOrderTotals{
			DocumentID: co.DocumentID,
			Status:     co.Status,
			Totals:     finance.ComputeTotals(itemsByDoc[co.DocumentID], co.TaxPct, co.DiscountPct),
		}
	}

	summary, err := finance.SummarizeContract(contract, liveTotals, coTotals)
	if err != nil {
		s.LogError(ctx, err, "Failed to compose contract summary", slog.String("contract_id", contractID))
		return nil, fmt.Errorf("failed to compose contract summary: %w", err)
	}

	s.LogDebug(ctx, "Contract summary composed",
		slog.String("contract_id", contractID),
		slog.Bool("frozen", summary.OriginalValueFrozen),
		slog.Int("change_orders", summary.ChangeOrderCount))
	return &domain.ContractView{
		Contract:     contract,
		Summary:      summary,
		ChangeOrders: coTotals,
	}, nil
}
