package handlers_test

import (
	"context"

	"github.com/SscSPs/construction_finance_app/internal/core/domain"
	portssvc "github.com/SscSPs/construction_finance_app/internal/core/ports/services"
	"github.com/SscSPs/construction_finance_app/internal/dto"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
)

// --- Mock CurrencyService ---
type MockCurrencyService struct {
	mock.Mock
}

func (m *MockCurrencyService) CreateCurrency(ctx context.Context, req dto.CreateCurrencyRequest, creatorUserID string) (*domain.Currency, error) {
	args := m.Called(ctx, req, creatorUserID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Currency), args.Error(1)
}
func (m *MockCurrencyService) GetCurrencyByCode(ctx context.Context, currencyCode string) (*domain.Currency, error) {
	args := m.Called(ctx, currencyCode)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Currency), args.Error(1)
}
func (m *MockCurrencyService) ListCurrencies(ctx context.Context) ([]domain.Currency, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Currency), args.Error(1)
}

var _ portssvc.CurrencySvcFacade = (*MockCurrencyService)(nil)

// --- Mock ExchangeRateService ---
type MockExchangeRateService struct {
	mock.Mock
}

func (m *MockExchangeRateService) CreateExchangeRate(ctx context.Context, req dto.CreateExchangeRateRequest, creatorUserID string) (*domain.ExchangeRate, error) {
	args := m.Called(ctx, req, creatorUserID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ExchangeRate), args.Error(1)
}
func (m *MockExchangeRateService) GetExchangeRate(ctx context.Context, fromCode, toCode string) (*domain.ExchangeRate, error) {
	args := m.Called(ctx, fromCode, toCode)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ExchangeRate), args.Error(1)
}

var _ portssvc.ExchangeRateSvcFacade = (*MockExchangeRateService)(nil)

// --- Mock OrganizationService ---
type MockOrganizationService struct {
	mock.Mock
}

func (m *MockOrganizationService) GetOrganization(ctx context.Context, organizationID string) (*domain.Organization, error) {
	args := m.Called(ctx, organizationID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Organization), args.Error(1)
}
func (m *MockOrganizationService) CurrentRate(ctx context.Context, org *domain.Organization) (decimal.Decimal, error) {
	args := m.Called(ctx, org)
	return args.Get(0).(decimal.Decimal), args.Error(1)
}
func (m *MockOrganizationService) CreateOrganization(ctx context.Context, req dto.CreateOrganizationRequest, creatorUserID string) (*domain.Organization, error) {
	args := m.Called(ctx, req, creatorUserID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Organization), args.Error(1)
}
func (m *MockOrganizationService) UpdateFinancialPreferences(ctx context.Context, organizationID string, req dto.UpdateFinancialPreferencesRequest, userID string) (*domain.Organization, error) {
	args := m.Called(ctx, organizationID, req, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Organization), args.Error(1)
}

var _ portssvc.OrganizationSvcFacade = (*MockOrganizationService)(nil)

// --- Mock MonetaryRecordService ---
type MockMonetaryRecordService struct {
	mock.Mock
}

func (m *MockMonetaryRecordService) ListMonetaryRecords(ctx context.Context, organizationID string, filter domain.RecordFilter) ([]domain.MonetaryRecord, error) {
	args := m.Called(ctx, organizationID, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.MonetaryRecord), args.Error(1)
}
func (m *MockMonetaryRecordService) RecordMonetaryRecord(ctx context.Context, organizationID string, req dto.CreateMonetaryRecordRequest, userID string) (*domain.MonetaryRecord, error) {
	args := m.Called(ctx, organizationID, req, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.MonetaryRecord), args.Error(1)
}
func (m *MockMonetaryRecordService) VoidMonetaryRecord(ctx context.Context, organizationID, recordID, userID string) (*domain.MonetaryRecord, error) {
	args := m.Called(ctx, organizationID, recordID, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.MonetaryRecord), args.Error(1)
}
func (m *MockMonetaryRecordService) CorrectExchangeRate(ctx context.Context, organizationID, recordID string, req dto.CorrectExchangeRateRequest, userID string) (*domain.MonetaryRecord, error) {
	args := m.Called(ctx, organizationID, recordID, req, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.MonetaryRecord), args.Error(1)
}

var _ portssvc.MonetaryRecordSvcFacade = (*MockMonetaryRecordService)(nil)

// --- Mock AggregationService ---
type MockAggregationService struct {
	mock.Mock
}

func (m *MockAggregationService) SummarizeRecords(ctx context.Context, organizationID string, filter domain.SummaryFilter) (*domain.MoneySummary, error) {
	args := m.Called(ctx, organizationID, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.MoneySummary), args.Error(1)
}

var _ portssvc.AggregationSvc = (*MockAggregationService)(nil)

// --- Mock DocumentService ---
type MockDocumentService struct {
	mock.Mock
}

func viewResult(args mock.Arguments) (*domain.DocumentView, error) {
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.DocumentView), args.Error(1)
}

func (m *MockDocumentService) GetDocument(ctx context.Context, organizationID, documentID string) (*domain.DocumentView, error) {
	return viewResult(m.Called(ctx, organizationID, documentID))
}
func (m *MockDocumentService) ListDocuments(ctx context.Context, organizationID string, filter domain.DocumentFilter) ([]domain.Document, *string, error) {
	args := m.Called(ctx, organizationID, filter)
	var next *string
	if args.Get(1) != nil {
		next = args.Get(1).(*string)
	}
	if args.Get(0) == nil {
		return nil, next, args.Error(2)
	}
	return args.Get(0).([]domain.Document), next, args.Error(2)
}
func (m *MockDocumentService) PreviewTotals(ctx context.Context, items []domain.QuoteLineItem, taxPct, discountPct decimal.Decimal) domain.DocumentView {
	args := m.Called(ctx, items, taxPct, discountPct)
	return args.Get(0).(domain.DocumentView)
}
func (m *MockDocumentService) CreateDocument(ctx context.Context, organizationID string, req dto.CreateDocumentRequest, userID string) (*domain.DocumentView, error) {
	return viewResult(m.Called(ctx, organizationID, req, userID))
}
func (m *MockDocumentService) UpdatePricing(ctx context.Context, organizationID, documentID string, req dto.UpdatePricingRequest, userID string) (*domain.DocumentView, error) {
	return viewResult(m.Called(ctx, organizationID, documentID, req, userID))
}
func (m *MockDocumentService) AddLineItem(ctx context.Context, organizationID, documentID string, req dto.LineItemRequest, userID string) (*domain.DocumentView, error) {
	return viewResult(m.Called(ctx, organizationID, documentID, req, userID))
}
func (m *MockDocumentService) UpdateLineItem(ctx context.Context, organizationID, documentID, lineItemID string, req dto.LineItemRequest, userID string) (*domain.DocumentView, error) {
	return viewResult(m.Called(ctx, organizationID, documentID, lineItemID, req, userID))
}
func (m *MockDocumentService) DeleteLineItem(ctx context.Context, organizationID, documentID, lineItemID, userID string) (*domain.DocumentView, error) {
	return viewResult(m.Called(ctx, organizationID, documentID, lineItemID, userID))
}
func (m *MockDocumentService) DeleteDocument(ctx context.Context, organizationID, documentID, userID string) error {
	return m.Called(ctx, organizationID, documentID, userID).Error(0)
}
func (m *MockDocumentService) TransitionStatus(ctx context.Context, organizationID, documentID string, status domain.QuoteStatus, userID string) (*domain.DocumentView, error) {
	return viewResult(m.Called(ctx, organizationID, documentID, status, userID))
}

var _ portssvc.DocumentSvcFacade = (*MockDocumentService)(nil)

// --- Mock ContractService ---
type MockContractService struct {
	mock.Mock
}

func (m *MockContractService) GetContractSummary(ctx context.Context, organizationID, contractID string) (*domain.ContractView, error) {
	args := m.Called(ctx, organizationID, contractID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ContractView), args.Error(1)
}

var _ portssvc.ContractSvc = (*MockContractService)(nil)
