package handlers_test

import (
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/SscSPs/construction_finance_app/internal/apperrors"
	"github.com/SscSPs/construction_finance_app/internal/core/domain"
	"github.com/SscSPs/construction_finance_app/internal/dto"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
)

func (suite *HandlerTestSuite) TestCreateCurrency_Success() {
	precision := 2
	suite.mockCurrencyService.On("CreateCurrency", mock.Anything,
		dto.CreateCurrencyRequest{CurrencyCode: "USD", Symbol: "US$", Name: "Dólar", Precision: &precision},
		suite.userID,
	).Return(&domain.Currency{CurrencyCode: "USD", Symbol: "US$", Name: "Dólar", Precision: 2}, nil).Once()

	w := suite.doRequest(http.MethodPost, "/api/v1/currencies", map[string]any{
		"currencyCode": "USD", "symbol": "US$", "name": "Dólar", "precision": 2,
	})

	suite.Equal(http.StatusCreated, w.Code)
	var res dto.CurrencyResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &res))
	suite.Equal("USD", res.CurrencyCode)
	suite.Equal(2, res.Precision)
}

func (suite *HandlerTestSuite) TestCreateCurrency_Duplicate() {
	suite.mockCurrencyService.On("CreateCurrency", mock.Anything, mock.Anything, suite.userID).
		Return(nil, fmt.Errorf("%w: currency ARS", apperrors.ErrDuplicate)).Once()

	w := suite.doRequest(http.MethodPost, "/api/v1/currencies", map[string]any{
		"currencyCode": "ARS", "symbol": "$", "name": "Peso Argentino",
	})

	suite.Equal(http.StatusConflict, w.Code)
}

func (suite *HandlerTestSuite) TestCreateCurrency_InvalidCode() {
	w := suite.doRequest(http.MethodPost, "/api/v1/currencies", map[string]any{
		"currencyCode": "US1", "symbol": "$", "name": "Broken",
	})
	suite.Equal(http.StatusBadRequest, w.Code)
}

func (suite *HandlerTestSuite) TestGetCurrency_NormalizesCode() {
	suite.mockCurrencyService.On("GetCurrencyByCode", mock.Anything, "EUR").
		Return(&domain.Currency{CurrencyCode: "EUR", Symbol: "€", Name: "Euro", Precision: 2}, nil).Once()

	w := suite.doRequest(http.MethodGet, "/api/v1/currencies/eur", nil)

	suite.Equal(http.StatusOK, w.Code)
}

func (suite *HandlerTestSuite) TestGetCurrency_NotFound() {
	suite.mockCurrencyService.On("GetCurrencyByCode", mock.Anything, "BRL").
		Return(nil, apperrors.NewNotFoundError("currency BRL not found")).Once()

	w := suite.doRequest(http.MethodGet, "/api/v1/currencies/BRL", nil)

	suite.Equal(http.StatusNotFound, w.Code)
}

func (suite *HandlerTestSuite) TestGetCurrency_BadLength() {
	w := suite.doRequest(http.MethodGet, "/api/v1/currencies/DOLLAR", nil)
	suite.Equal(http.StatusBadRequest, w.Code)
}

func (suite *HandlerTestSuite) TestCreateExchangeRate_SameCurrencies() {
	w := suite.doRequest(http.MethodPost, "/api/v1/exchange-rates", map[string]any{
		"fromCurrencyCode": "USD",
		"toCurrencyCode":   "USD",
		"rate":             "1",
		"dateEffective":    time.Now().UTC().Format(time.RFC3339),
	})
	suite.Equal(http.StatusBadRequest, w.Code)
}

func (suite *HandlerTestSuite) TestGetExchangeRate() {
	suite.mockExchangeRateSvc.On("GetExchangeRate", mock.Anything, "USD", "ARS").
		Return(&domain.ExchangeRate{
			ExchangeRateID:   "rate-1",
			FromCurrencyCode: "USD",
			ToCurrencyCode:   "ARS",
			Rate:             decimal.RequireFromString("1050.25"),
			DateEffective:    time.Now().UTC(),
		}, nil).Once()

	w := suite.doRequest(http.MethodGet, "/api/v1/exchange-rates/USD/ARS", nil)

	suite.Equal(http.StatusOK, w.Code)
}

func (suite *HandlerTestSuite) TestUpdateFinancialPreferences_BadLocale() {
	w := suite.doRequest(http.MethodPut, suite.orgURL("/financial-preferences"), map[string]any{
		"functionalCurrencyCode": "ARS",
		"referenceCurrencyCode":  "USD",
		"currentExchangeRate":    "1000",
		"decimalPlaces":          2,
		"displayMode":            "mix",
		"locale":                 "not a locale",
	})
	suite.Equal(http.StatusBadRequest, w.Code)
}

func (suite *HandlerTestSuite) TestGetOrganization() {
	org := &domain.Organization{
		OrganizationID: suite.organizationID,
		Name:           "Constructora Sur",
		IsActive:       true,
		FinancialPreferences: domain.FinancialPreferences{
			FunctionalCurrencyCode: "ARS",
			ReferenceCurrencyCode:  "USD",
			CurrentExchangeRate:    decimal.NewFromInt(1000),
			DecimalPlaces:          2,
			DisplayMode:            domain.DisplayMix,
			Locale:                 "es-AR",
		},
	}
	suite.mockOrganizationSvc.On("GetOrganization", mock.Anything, suite.organizationID).Return(org, nil).Once()

	w := suite.doRequest(http.MethodGet, suite.orgURL(""), nil)

	suite.Equal(http.StatusOK, w.Code)
	var res dto.OrganizationResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &res))
	suite.Equal("Constructora Sur", res.Name)
}
