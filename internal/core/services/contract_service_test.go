package services_test

import (
	"context"
	"testing"

	"github.com/SscSPs/construction_finance_app/internal/apperrors"
	"github.com/SscSPs/construction_finance_app/internal/core/domain"
	portssvc "github.com/SscSPs/construction_finance_app/internal/core/ports/services"
	"github.com/SscSPs/construction_finance_app/internal/core/services"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

type ContractServiceTestSuite struct {
	suite.Suite
	mockDocRepo *MockDocumentRepository
	service     portssvc.ContractSvc
}

func (suite *ContractServiceTestSuite) SetupTest() {
	suite.mockDocRepo = new(MockDocumentRepository)
	suite.service = services.NewContractService(suite.mockDocRepo)
}

func plainHeader(id string, status domain.QuoteStatus) domain.DocumentHeader {
	return domain.DocumentHeader{DocumentID: id, OrganizationID: "org-1", CurrencyCode: "ARS", Status: status}
}

func singleItem(documentID, price string) []domain.QuoteLineItem {
	return []domain.QuoteLineItem{{LineItemID: documentID + "-li", DocumentID: documentID, Quantity: dec("1"), UnitPrice: dec(price)}}
}

func (suite *ContractServiceTestSuite) TestGetContractSummary_FrozenWithChangeOrders() {
	ctx := context.Background()
	original := dec("10000")
	contract := &domain.Contract{DocumentHeader: plainHeader("c-1", domain.StatusApproved), OriginalContractValue: &original}
	changeOrders := []*domain.ChangeOrder{
		{DocumentHeader: plainHeader("co-1", domain.StatusApproved), ParentContractID: "c-1"},
		{DocumentHeader: plainHeader("co-2", domain.StatusSent), ParentContractID: "c-1"},
		{DocumentHeader: plainHeader("co-3", domain.StatusRejected), ParentContractID: "c-1"},
	}

	suite.mockDocRepo.On("FindDocumentByID", ctx, "org-1", "c-1").Return(contract, nil).Once()
	// Line items were edited after approval; the frozen value must not move.
	suite.mockDocRepo.On("FindLineItemsByDocumentID", ctx, "c-1").Return(singleItem("c-1", "12000"), nil).Once()
	suite.mockDocRepo.On("ListChangeOrders", ctx, "org-1", "c-1").Return(changeOrders, nil).Once()
	suite.mockDocRepo.On("FindLineItemsByDocumentIDs", ctx, []string{"co-1", "co-2", "co-3"}).Return(map[string][]domain.QuoteLineItem{
		"co-1": singleItem("co-1", "380"),
		"co-2": singleItem("co-2", "375"),
		"co-3": singleItem("co-3", "999"),
	}, nil).Once()

	view, err := suite.service.GetContractSummary(ctx, "org-1", "c-1")

	suite.Require().NoError(err)
	s := view.Summary
	suite.True(s.OriginalValueFrozen)
	suite.True(s.OriginalContractValue.Equal(dec("10000")))
	suite.True(s.ApprovedChangesValue.Equal(dec("380")))
	suite.True(s.PendingChangesValue.Equal(dec("375")))
	suite.True(s.RevisedContractValue.Equal(dec("10380")))
	suite.True(s.PotentialContractValue.Equal(dec("10755")))
	suite.Equal(3, s.ChangeOrderCount)
	suite.Equal(1, s.ApprovedChangeOrderCount)
	suite.Equal(1, s.PendingChangeOrderCount)
	suite.Len(view.ChangeOrders, 3)
	suite.Equal(domain.StatusRejected, view.ChangeOrders[2].Status)
	suite.mockDocRepo.AssertExpectations(suite.T())
}

func (suite *ContractServiceTestSuite) TestGetContractSummary_UnfrozenUsesLiveTotal() {
	ctx := context.Background()
	h := plainHeader("c-2", domain.StatusDraft)
	h.TaxPct = decimal.NewFromInt(21)
	contract := &domain.Contract{DocumentHeader: h}

	suite.mockDocRepo.On("FindDocumentByID", ctx, "org-1", "c-2").Return(contract, nil).Once()
	suite.mockDocRepo.On("FindLineItemsByDocumentID", ctx, "c-2").Return(singleItem("c-2", "1000"), nil).Once()
	suite.mockDocRepo.On("ListChangeOrders", ctx, "org-1", "c-2").Return([]*domain.ChangeOrder{}, nil).Once()

	view, err := suite.service.GetContractSummary(ctx, "org-1", "c-2")

	suite.Require().NoError(err)
	suite.False(view.Summary.OriginalValueFrozen)
	suite.True(view.Summary.OriginalContractValue.Equal(dec("1210")))
	suite.True(view.Summary.RevisedContractValue.Equal(dec("1210")))
	suite.True(view.Summary.PotentialContractValue.Equal(dec("1210")))
	suite.Zero(view.Summary.ChangeOrderCount)
	suite.Empty(view.ChangeOrders)
	suite.mockDocRepo.AssertNotCalled(suite.T(), "FindLineItemsByDocumentIDs", mock.Anything, mock.Anything)
}

func (suite *ContractServiceTestSuite) expectFrozenContractWithApprovedChangeOrder() {
	original := dec("10000")
	contract := &domain.Contract{DocumentHeader: plainHeader("c-1", domain.StatusApproved), OriginalContractValue: &original}
	suite.mockDocRepo.On("FindDocumentByID", mock.Anything, "org-1", "c-1").Return(contract, nil)
	suite.mockDocRepo.On("FindLineItemsByDocumentID", mock.Anything, "c-1").Return(singleItem("c-1", "10000"), nil)
	suite.mockDocRepo.On("ListChangeOrders", mock.Anything, "org-1", "c-1").Return([]*domain.ChangeOrder{
		{DocumentHeader: plainHeader("co-1", domain.StatusApproved), ParentContractID: "c-1"},
		{DocumentHeader: plainHeader("co-2", domain.StatusDraft), ParentContractID: "c-1"},
	}, nil)
}

func (suite *ContractServiceTestSuite) TestGetContractSummary_RepeatedCallsAreIdentical() {
	ctx := context.Background()
	suite.expectFrozenContractWithApprovedChangeOrder()
	suite.mockDocRepo.On("FindLineItemsByDocumentIDs", ctx, []string{"co-1", "co-2"}).Return(map[string][]domain.QuoteLineItem{
		"co-1": singleItem("co-1", "380"),
		"co-2": singleItem("co-2", "120"),
	}, nil).Twice()

	first, err := suite.service.GetContractSummary(ctx, "org-1", "c-1")
	suite.Require().NoError(err)
	second, err := suite.service.GetContractSummary(ctx, "org-1", "c-1")
	suite.Require().NoError(err)

	suite.Equal(first.Summary, second.Summary)
	suite.Equal(first.ChangeOrders, second.ChangeOrders)
	suite.mockDocRepo.AssertExpectations(suite.T())
}

func (suite *ContractServiceTestSuite) TestGetContractSummary_EditedApprovedChangeOrderKeepsOriginal() {
	ctx := context.Background()
	suite.expectFrozenContractWithApprovedChangeOrder()
	suite.mockDocRepo.On("FindLineItemsByDocumentIDs", ctx, []string{"co-1", "co-2"}).Return(map[string][]domain.QuoteLineItem{
		"co-1": singleItem("co-1", "380"),
		"co-2": singleItem("co-2", "120"),
	}, nil).Once()
	suite.mockDocRepo.On("FindLineItemsByDocumentIDs", ctx, []string{"co-1", "co-2"}).Return(map[string][]domain.QuoteLineItem{
		"co-1": singleItem("co-1", "500"),
		"co-2": singleItem("co-2", "120"),
	}, nil).Once()

	before, err := suite.service.GetContractSummary(ctx, "org-1", "c-1")
	suite.Require().NoError(err)
	after, err := suite.service.GetContractSummary(ctx, "org-1", "c-1")
	suite.Require().NoError(err)

	suite.True(before.Summary.ApprovedChangesValue.Equal(dec("380")))
	suite.True(before.Summary.RevisedContractValue.Equal(dec("10380")))
	suite.True(after.Summary.ApprovedChangesValue.Equal(dec("500")))
	suite.True(after.Summary.RevisedContractValue.Equal(dec("10500")))
	suite.True(after.Summary.PotentialContractValue.Equal(dec("10620")))
	suite.True(before.Summary.OriginalContractValue.Equal(dec("10000")))
	suite.True(after.Summary.OriginalContractValue.Equal(dec("10000")))
	suite.True(after.Summary.PendingChangesValue.Equal(before.Summary.PendingChangesValue))
	suite.mockDocRepo.AssertExpectations(suite.T())
}

func (suite *ContractServiceTestSuite) TestGetContractSummary_ChangeOrderInOtherCurrency() {
	ctx := context.Background()
	usd := plainHeader("co-usd", domain.StatusApproved)
	usd.CurrencyCode = "USD"
	suite.mockDocRepo.On("FindDocumentByID", ctx, "org-1", "c-1").Return(&domain.Contract{DocumentHeader: plainHeader("c-1", domain.StatusDraft)}, nil).Once()
	suite.mockDocRepo.On("FindLineItemsByDocumentID", ctx, "c-1").Return(singleItem("c-1", "1000"), nil).Once()
	suite.mockDocRepo.On("ListChangeOrders", ctx, "org-1", "c-1").Return([]*domain.ChangeOrder{{DocumentHeader: usd, ParentContractID: "c-1"}}, nil).Once()
	suite.mockDocRepo.On("FindLineItemsByDocumentIDs", ctx, []string{"co-usd"}).Return(map[string][]domain.QuoteLineItem{
		"co-usd": singleItem("co-usd", "100"),
	}, nil).Once()

	view, err := suite.service.GetContractSummary(ctx, "org-1", "c-1")

	suite.Nil(view)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.ErrorContains(err, "co-usd is in USD")
}

func (suite *ContractServiceTestSuite) TestGetContractSummary_NotAContract() {
	ctx := context.Background()
	suite.mockDocRepo.On("FindDocumentByID", ctx, "org-1", "q-1").Return(&domain.Quote{DocumentHeader: plainHeader("q-1", domain.StatusDraft)}, nil).Once()

	_, err := suite.service.GetContractSummary(ctx, "org-1", "q-1")

	suite.ErrorIs(err, apperrors.ErrValidation)
}

func (suite *ContractServiceTestSuite) TestGetContractSummary_NotFound() {
	ctx := context.Background()
	suite.mockDocRepo.On("FindDocumentByID", ctx, "org-1", "c-404").Return(nil, apperrors.ErrNotFound).Once()

	_, err := suite.service.GetContractSummary(ctx, "org-1", "c-404")

	suite.ErrorIs(err, apperrors.ErrNotFound)
}

func TestContractService(t *testing.T) {
	suite.Run(t, new(ContractServiceTestSuite))
}
