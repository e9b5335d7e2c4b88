package handlers_test

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/SscSPs/construction_finance_app/internal/apperrors"
	"github.com/SscSPs/construction_finance_app/internal/core/domain"
	"github.com/SscSPs/construction_finance_app/internal/dto"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
)

func (suite *HandlerTestSuite) TestCreateRecord_Success() {
	rate := decimal.NewFromInt(1000)
	record := &domain.MonetaryRecord{
		RecordID:       uuid.NewString(),
		OrganizationID: suite.organizationID,
		Kind:           domain.RecordKindPayment,
		Amount:         decimal.RequireFromString("-150.50"),
		CurrencyCode:   "USD",
		ExchangeRate:   &rate,
		OccurredAt:     time.Now().UTC(),
	}

	suite.mockRecordService.On("RecordMonetaryRecord",
		mock.Anything,
		suite.organizationID,
		mock.MatchedBy(func(req dto.CreateMonetaryRecordRequest) bool {
			return req.Amount.Equal(decimal.RequireFromString("-150.50")) &&
				req.ExchangeRate != nil && req.ExchangeRate.Equal(rate)
		}),
		suite.userID,
	).Return(record, nil).Once()

	w := suite.doRequest(http.MethodPost, suite.orgURL("/records"), map[string]any{
		"kind":         "payment",
		"amount":       "-150.50",
		"currencyCode": "USD",
		"exchangeRate": "1000",
	})

	suite.Equal(http.StatusCreated, w.Code)
	var res dto.MonetaryRecordResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &res))
	suite.Equal(record.RecordID, res.RecordID)
	suite.True(res.Amount.Equal(decimal.RequireFromString("-150.5")))
}

func (suite *HandlerTestSuite) TestCreateRecord_NonPositiveRate() {
	w := suite.doRequest(http.MethodPost, suite.orgURL("/records"), map[string]any{
		"kind":         "payment",
		"amount":       "10",
		"currencyCode": "USD",
		"exchangeRate": "-5",
	})
	suite.Equal(http.StatusBadRequest, w.Code)
}

func (suite *HandlerTestSuite) TestCreateRecord_UnknownKind() {
	w := suite.doRequest(http.MethodPost, suite.orgURL("/records"), map[string]any{
		"kind":         "invoice",
		"amount":       "10",
		"currencyCode": "USD",
	})
	suite.Equal(http.StatusBadRequest, w.Code)
}

func (suite *HandlerTestSuite) TestListRecords_IncludeVoided() {
	suite.mockRecordService.On("ListMonetaryRecords", mock.Anything, suite.organizationID,
		domain.RecordFilter{Kind: domain.RecordKindPurchaseOrderItem, IncludeVoided: true},
	).Return([]domain.MonetaryRecord{{RecordID: "rec-1", IsVoided: true}}, nil).Once()

	w := suite.doRequest(http.MethodGet, suite.orgURL("/records?kind=purchase_order_item&includeVoided=true"), nil)

	suite.Equal(http.StatusOK, w.Code)
	var res dto.ListMonetaryRecordsResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &res))
	suite.Require().Len(res.Records, 1)
	suite.True(res.Records[0].IsVoided)
}

func (suite *HandlerTestSuite) TestVoidRecord_NotFound() {
	suite.mockRecordService.On("VoidMonetaryRecord", mock.Anything, suite.organizationID, "rec-9", suite.userID).
		Return(nil, apperrors.NewNotFoundError("monetary record rec-9 not found")).Once()

	w := suite.doRequest(http.MethodPost, suite.orgURL("/records/rec-9/void"), nil)

	suite.Equal(http.StatusNotFound, w.Code)
}

func (suite *HandlerTestSuite) TestCorrectExchangeRate() {
	rate := decimal.RequireFromString("1050.25")
	record := &domain.MonetaryRecord{RecordID: "rec-1", CurrencyCode: "USD", ExchangeRate: &rate}
	suite.mockRecordService.On("CorrectExchangeRate", mock.Anything, suite.organizationID, "rec-1",
		mock.MatchedBy(func(req dto.CorrectExchangeRateRequest) bool { return req.ExchangeRate.Equal(rate) }),
		suite.userID,
	).Return(record, nil).Once()

	w := suite.doRequest(http.MethodPut, suite.orgURL("/records/rec-1/exchange-rate"), map[string]any{"exchangeRate": "1050.25"})

	suite.Equal(http.StatusOK, w.Code)
}

func (suite *HandlerTestSuite) TestMoneySummary_Mix() {
	summary := &domain.MoneySummary{
		Result: domain.AggregationResult{
			Mode:            domain.DisplayMix,
			Total:           decimal.RequireFromString("1100000.456"),
			CurrencyCode:    "ARS",
			Displayable:     true,
			FunctionalTotal: decimal.RequireFromString("1100000.456"),
			Breakdown: []domain.CurrencyBreakdownEntry{
				{CurrencyCode: "ARS", Symbol: "$", NativeTotal: decimal.NewFromInt(100000), FunctionalTotal: decimal.NewFromInt(100000), IsPrimary: true},
				{CurrencyCode: "USD", Symbol: "US$", NativeTotal: decimal.NewFromInt(1000), FunctionalTotal: decimal.RequireFromString("1000000.456")},
			},
		},
		TotalFormatted:     "$ 1.100.000,46",
		RecordCount:        3,
		CurrentRate:        decimal.NewFromInt(1000),
		FunctionalCurrency: "ARS",
		DecimalPlaces:      2,
	}
	summary.Breakdown = []domain.FormattedBreakdownEntry{
		{CurrencyBreakdownEntry: summary.Result.Breakdown[0], NativeFormatted: "$ 100.000,00", FunctionalFormatted: "$ 100.000,00"},
		{CurrencyBreakdownEntry: summary.Result.Breakdown[1], NativeFormatted: "US$ 1.000,00", FunctionalFormatted: "$ 1.000.000,46"},
	}

	suite.mockAggregationSvc.On("SummarizeRecords", mock.Anything, suite.organizationID,
		domain.SummaryFilter{Kind: domain.RecordKindPayment, Mode: domain.DisplayMix},
	).Return(summary, nil).Once()

	w := suite.doRequest(http.MethodGet, suite.orgURL("/summaries/money?kind=payment&mode=mix"), nil)

	suite.Equal(http.StatusOK, w.Code)
	var res dto.MoneySummaryResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &res))
	suite.Equal("mix", res.Mode)
	suite.Equal("1100000.46", res.Total)
	suite.Equal("$ 1.100.000,46", res.TotalFormatted)
	suite.True(res.IsMultiCurrency)
	suite.Equal(3, res.RecordCount)
	suite.Require().Len(res.Breakdown, 2)
	suite.True(res.Breakdown[0].IsPrimary)
	suite.Equal("US$ 1.000,00", res.Breakdown[1].NativeFormatted)
}

func (suite *HandlerTestSuite) TestMoneySummary_InvalidRate() {
	stored := decimal.Zero
	suite.mockAggregationSvc.On("SummarizeRecords", mock.Anything, suite.organizationID, domain.SummaryFilter{}).
		Return(nil, &apperrors.InvalidRateError{RecordID: "rec-1", CurrencyCode: "USD", StoredRate: &stored, CurrentRate: decimal.Zero}).Once()

	w := suite.doRequest(http.MethodGet, suite.orgURL("/summaries/money"), nil)

	suite.Equal(http.StatusUnprocessableEntity, w.Code)
	suite.Contains(suite.decodeError(w), `record "rec-1"`)
}

func (suite *HandlerTestSuite) TestMoneySummary_UnknownMode() {
	w := suite.doRequest(http.MethodGet, suite.orgURL("/summaries/money?mode=converted"), nil)
	suite.Equal(http.StatusBadRequest, w.Code)
}
