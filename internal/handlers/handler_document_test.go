package handlers_test

import (
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/SscSPs/construction_finance_app/internal/apperrors"
	"github.com/SscSPs/construction_finance_app/internal/core/domain"
	"github.com/SscSPs/construction_finance_app/internal/dto"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
)

func (suite *HandlerTestSuite) sampleView(doc domain.Document) *domain.DocumentView {
	item := domain.QuoteLineItem{
		LineItemID:  uuid.NewString(),
		DocumentID:  doc.Header().DocumentID,
		Description: "Hormigón H21",
		Unit:        "m3",
		Quantity:    decimal.NewFromInt(10),
		UnitPrice:   decimal.NewFromInt(100),
		MarkupPct:   decimal.NewFromInt(20),
	}
	return &domain.DocumentView{
		Document:  doc,
		LineItems: []domain.QuoteLineItem{item},
		LineTotals: []domain.LineTotals{{
			LineItemID:         item.LineItemID,
			Subtotal:           decimal.NewFromInt(1000),
			MarkupAmount:       decimal.NewFromInt(200),
			SubtotalWithMarkup: decimal.NewFromInt(1200),
		}},
		Totals: domain.DocumentTotals{
			Subtotal:           decimal.NewFromInt(1000),
			MarkupAmount:       decimal.NewFromInt(200),
			SubtotalWithMarkup: decimal.NewFromInt(1200),
			DiscountAmount:     decimal.NewFromInt(120),
			TotalAfterDiscount: decimal.NewFromInt(1080),
			TaxAmount:          decimal.RequireFromString("226.8"),
			TotalWithTax:       decimal.RequireFromString("1306.8"),
		},
	}
}

func (suite *HandlerTestSuite) sampleHeader() domain.DocumentHeader {
	now := time.Now().UTC()
	return domain.DocumentHeader{
		DocumentID:     uuid.NewString(),
		OrganizationID: suite.organizationID,
		Title:          "Vivienda Pérez",
		CurrencyCode:   "ARS",
		TaxPct:         decimal.NewFromInt(21),
		DiscountPct:    decimal.NewFromInt(10),
		Status:         domain.StatusDraft,
		AuditFields: domain.AuditFields{
			CreatedAt: now, CreatedBy: suite.userID, LastUpdatedAt: now, LastUpdatedBy: suite.userID,
		},
	}
}

func (suite *HandlerTestSuite) TestCreateDocument_Success() {
	quote := &domain.Quote{DocumentHeader: suite.sampleHeader()}
	view := suite.sampleView(quote)

	suite.mockDocumentService.On("CreateDocument",
		mock.Anything,
		suite.organizationID,
		mock.MatchedBy(func(req dto.CreateDocumentRequest) bool {
			return req.DocumentType == "quote" &&
				len(req.LineItems) == 1 &&
				req.LineItems[0].Quantity.Equal(decimal.NewFromInt(10)) &&
				req.TaxPct.Equal(decimal.NewFromInt(21))
		}),
		suite.userID,
	).Return(view, nil).Once()

	w := suite.doRequest(http.MethodPost, suite.orgURL("/documents"), map[string]any{
		"documentType": "quote",
		"title":        "Vivienda Pérez",
		"currencyCode": "ARS",
		"taxPct":       "21",
		"discountPct":  "10",
		"lineItems": []map[string]any{
			{"description": "Hormigón H21", "unit": "m3", "quantity": "10", "unitPrice": "100", "markupPct": "20"},
		},
	})

	suite.Equal(http.StatusCreated, w.Code)
	var res dto.DocumentResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &res))
	suite.Equal(quote.DocumentID, res.DocumentID)
	suite.Equal("quote", res.DocumentType)
	suite.Require().Len(res.LineItems, 1)
	suite.True(res.LineItems[0].SubtotalWithMarkup.Equal(decimal.NewFromInt(1200)))
	suite.Require().NotNil(res.Totals)
	suite.True(res.Totals.TotalWithTax.Equal(decimal.RequireFromString("1306.8")))
}

func (suite *HandlerTestSuite) TestCreateDocument_ChangeOrderWithoutParent() {
	w := suite.doRequest(http.MethodPost, suite.orgURL("/documents"), map[string]any{
		"documentType": "change_order",
		"title":        "Ampliación",
		"currencyCode": "ARS",
	})

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.mockDocumentService.AssertNotCalled(suite.T(), "CreateDocument")
}

func (suite *HandlerTestSuite) TestCreateDocument_NegativeQuantity() {
	w := suite.doRequest(http.MethodPost, suite.orgURL("/documents"), map[string]any{
		"documentType": "quote",
		"title":        "Vivienda Pérez",
		"currencyCode": "ARS",
		"lineItems": []map[string]any{
			{"description": "Hierro", "quantity": "-1", "unitPrice": "100"},
		},
	})

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.Contains(suite.decodeError(w), "Quantity")
}

func (suite *HandlerTestSuite) TestCreateDocument_LowercaseCurrency() {
	w := suite.doRequest(http.MethodPost, suite.orgURL("/documents"), map[string]any{
		"documentType": "quote",
		"title":        "Vivienda Pérez",
		"currencyCode": "ars",
	})

	suite.Equal(http.StatusBadRequest, w.Code)
}

func (suite *HandlerTestSuite) TestCreateDocument_ParentNotFound() {
	suite.mockDocumentService.On("CreateDocument", mock.Anything, suite.organizationID, mock.Anything, suite.userID).
		Return(nil, apperrors.NewNotFoundError("contract missing not found")).Once()

	w := suite.doRequest(http.MethodPost, suite.orgURL("/documents"), map[string]any{
		"documentType":     "change_order",
		"parentContractID": "missing",
		"title":            "Ampliación",
		"currencyCode":     "ARS",
	})

	suite.Equal(http.StatusNotFound, w.Code)
}

func (suite *HandlerTestSuite) TestListDocuments_WithNextToken() {
	first := &domain.Contract{DocumentHeader: suite.sampleHeader()}
	second := &domain.ChangeOrder{DocumentHeader: suite.sampleHeader(), ParentContractID: first.DocumentID}
	next := "opaque-token"

	suite.mockDocumentService.On("ListDocuments",
		mock.Anything,
		suite.organizationID,
		domain.DocumentFilter{Type: domain.DocumentTypeChangeOrder, Limit: 2},
	).Return([]domain.Document{first, second}, &next, nil).Once()

	w := suite.doRequest(http.MethodGet, suite.orgURL("/documents?type=change_order&limit=2"), nil)

	suite.Equal(http.StatusOK, w.Code)
	var res dto.ListDocumentsResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &res))
	suite.Require().Len(res.Documents, 2)
	suite.Equal("contract", res.Documents[0].DocumentType)
	suite.Equal(first.DocumentID, res.Documents[1].ParentContractID)
	suite.Equal(next, res.NextToken)
}

func (suite *HandlerTestSuite) TestListDocuments_LimitOutOfRange() {
	w := suite.doRequest(http.MethodGet, suite.orgURL("/documents?limit=500"), nil)
	suite.Equal(http.StatusBadRequest, w.Code)
}

func (suite *HandlerTestSuite) TestPreviewTotals() {
	view := suite.sampleView(&domain.Quote{DocumentHeader: suite.sampleHeader()})
	view.Document = nil

	suite.mockDocumentService.On("PreviewTotals",
		mock.Anything,
		mock.MatchedBy(func(items []domain.QuoteLineItem) bool {
			return len(items) == 1 && items[0].UnitPrice.Equal(decimal.NewFromInt(100))
		}),
		mock.MatchedBy(func(d decimal.Decimal) bool { return d.Equal(decimal.NewFromInt(21)) }),
		mock.MatchedBy(func(d decimal.Decimal) bool { return d.Equal(decimal.NewFromInt(10)) }),
	).Return(*view).Once()

	w := suite.doRequest(http.MethodPost, suite.orgURL("/documents/preview-totals"), map[string]any{
		"taxPct":      "21",
		"discountPct": "10",
		"lineItems": []map[string]any{
			{"description": "Hormigón H21", "quantity": "10", "unitPrice": "100", "markupPct": "20"},
		},
	})

	suite.Equal(http.StatusOK, w.Code)
	var res dto.PreviewTotalsResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &res))
	suite.Len(res.LineItems, 1)
	suite.True(res.Totals.DiscountAmount.Equal(decimal.NewFromInt(120)))
	suite.True(res.Totals.TotalWithTax.Equal(decimal.RequireFromString("1306.8")))
}

func (suite *HandlerTestSuite) TestPreviewTotals_DiscountAboveHundred() {
	w := suite.doRequest(http.MethodPost, suite.orgURL("/documents/preview-totals"), map[string]any{
		"discountPct": "120",
	})
	suite.Equal(http.StatusBadRequest, w.Code)
}

func (suite *HandlerTestSuite) TestGetDocument_NotFound() {
	suite.mockDocumentService.On("GetDocument", mock.Anything, suite.organizationID, "missing").
		Return(nil, fmt.Errorf("%w: document missing", apperrors.ErrNotFound)).Once()

	w := suite.doRequest(http.MethodGet, suite.orgURL("/documents/missing"), nil)

	suite.Equal(http.StatusNotFound, w.Code)
}

func (suite *HandlerTestSuite) TestDeleteDocument() {
	suite.mockDocumentService.On("DeleteDocument", mock.Anything, suite.organizationID, "doc-1", suite.userID).
		Return(nil).Once()

	w := suite.doRequest(http.MethodDelete, suite.orgURL("/documents/doc-1"), nil)

	suite.Equal(http.StatusNoContent, w.Code)
}

func (suite *HandlerTestSuite) TestTransitionStatus_AlreadyFrozen() {
	suite.mockDocumentService.On("TransitionStatus", mock.Anything, suite.organizationID, "contract-1", domain.StatusApproved, suite.userID).
		Return(nil, fmt.Errorf("%w: contract contract-1", apperrors.ErrAlreadyFrozen)).Once()

	w := suite.doRequest(http.MethodPost, suite.orgURL("/documents/contract-1/status"), map[string]any{"status": "approved"})

	suite.Equal(http.StatusConflict, w.Code)
	suite.Contains(suite.decodeError(w), "already frozen")
}

func (suite *HandlerTestSuite) TestTransitionStatus_ApprovedContract() {
	header := suite.sampleHeader()
	header.Status = domain.StatusApproved
	frozen := decimal.RequireFromString("1306.8")
	frozenAt := time.Now().UTC()
	contract := &domain.Contract{DocumentHeader: header, OriginalContractValue: &frozen, FrozenAt: &frozenAt}

	suite.mockDocumentService.On("TransitionStatus", mock.Anything, suite.organizationID, contract.DocumentID, domain.StatusApproved, suite.userID).
		Return(suite.sampleView(contract), nil).Once()

	w := suite.doRequest(http.MethodPost, suite.orgURL("/documents/"+contract.DocumentID+"/status"), map[string]any{"status": "approved"})

	suite.Equal(http.StatusOK, w.Code)
	var res dto.DocumentResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &res))
	suite.Equal("approved", res.Status)
	suite.Require().NotNil(res.OriginalContractValue)
	suite.True(res.OriginalContractValue.Equal(frozen))
}

func (suite *HandlerTestSuite) TestTransitionStatus_UnknownStatus() {
	w := suite.doRequest(http.MethodPost, suite.orgURL("/documents/doc-1/status"), map[string]any{"status": "void"})
	suite.Equal(http.StatusBadRequest, w.Code)
}

func (suite *HandlerTestSuite) TestAddLineItem_ReadOnlyDocument() {
	suite.mockDocumentService.On("AddLineItem", mock.Anything, suite.organizationID, "doc-1", mock.Anything, suite.userID).
		Return(nil, apperrors.NewValidationError("document doc-1 is rejected and read-only")).Once()

	w := suite.doRequest(http.MethodPost, suite.orgURL("/documents/doc-1/items"), map[string]any{
		"description": "Arena", "quantity": "2", "unitPrice": "50",
	})

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.Contains(suite.decodeError(w), "read-only")
}

func (suite *HandlerTestSuite) TestDeleteLineItem() {
	view := suite.sampleView(&domain.Quote{DocumentHeader: suite.sampleHeader()})
	suite.mockDocumentService.On("DeleteLineItem", mock.Anything, suite.organizationID, "doc-1", "item-1", suite.userID).
		Return(view, nil).Once()

	w := suite.doRequest(http.MethodDelete, suite.orgURL("/documents/doc-1/items/item-1"), nil)

	suite.Equal(http.StatusOK, w.Code)
}

func (suite *HandlerTestSuite) TestGetContractSummary() {
	header := suite.sampleHeader()
	header.Status = domain.StatusApproved
	contract := &domain.Contract{DocumentHeader: header}
	view := &domain.ContractView{
		Contract: contract,
		Summary: domain.ContractSummary{
			OriginalContractValue:    decimal.NewFromInt(10000),
			OriginalValueFrozen:      true,
			ApprovedChangesValue:     decimal.NewFromInt(1500),
			PendingChangesValue:      decimal.NewFromInt(500),
			RevisedContractValue:     decimal.NewFromInt(11500),
			PotentialContractValue:   decimal.NewFromInt(12000),
			ChangeOrderCount:         3,
			ApprovedChangeOrderCount: 1,
			PendingChangeOrderCount:  1,
		},
		ChangeOrders: []domain.ChangeOrderTotals{
			{DocumentID: "co-1", Status: domain.StatusApproved, Totals: domain.DocumentTotals{TotalWithTax: decimal.NewFromInt(1500)}},
			{DocumentID: "co-2", Status: domain.StatusSent, Totals: domain.DocumentTotals{TotalWithTax: decimal.NewFromInt(500)}},
			{DocumentID: "co-3", Status: domain.StatusRejected, Totals: domain.DocumentTotals{TotalWithTax: decimal.NewFromInt(900)}},
		},
	}
	suite.mockContractService.On("GetContractSummary", mock.Anything, suite.organizationID, contract.DocumentID).
		Return(view, nil).Once()

	w := suite.doRequest(http.MethodGet, suite.orgURL("/contracts/"+contract.DocumentID+"/summary"), nil)

	suite.Equal(http.StatusOK, w.Code)
	var res dto.ContractSummaryResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &res))
	suite.Equal(contract.DocumentID, res.ContractID)
	suite.True(res.OriginalValueFrozen)
	suite.True(res.RevisedContractValue.Equal(decimal.NewFromInt(11500)))
	suite.True(res.PotentialContractValue.Equal(decimal.NewFromInt(12000)))
	suite.Len(res.ChangeOrders, 3)
}

func (suite *HandlerTestSuite) TestGetContractSummary_NotAContract() {
	suite.mockContractService.On("GetContractSummary", mock.Anything, suite.organizationID, "quote-1").
		Return(nil, apperrors.NewValidationError("document quote-1 is not a contract")).Once()

	w := suite.doRequest(http.MethodGet, suite.orgURL("/contracts/quote-1/summary"), nil)

	suite.Equal(http.StatusBadRequest, w.Code)
}

func (suite *HandlerTestSuite) TestGetContractSummary_UnexpectedError() {
	suite.mockContractService.On("GetContractSummary", mock.Anything, suite.organizationID, "contract-1").
		Return(nil, fmt.Errorf("connection reset")).Once()

	w := suite.doRequest(http.MethodGet, suite.orgURL("/contracts/contract-1/summary"), nil)

	suite.Equal(http.StatusInternalServerError, w.Code)
	suite.Equal("Failed to summarize contract", suite.decodeError(w))
}
