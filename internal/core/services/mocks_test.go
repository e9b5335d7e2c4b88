package services_test

import (
	"context"
	"time"

	"github.com/SscSPs/construction_finance_app/internal/core/domain"
	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
)

// --- Mock CurrencyRepository ---
type MockCurrencyRepository struct {
	mock.Mock
}

func (m *MockCurrencyRepository) SaveCurrency(ctx context.Context, currency domain.Currency) error {
	args := m.Called(ctx, currency)
	return args.Error(0)
}

func (m *MockCurrencyRepository) FindCurrencyByCode(ctx context.Context, currencyCode string) (*domain.Currency, error) {
	args := m.Called(ctx, currencyCode)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Currency), args.Error(1)
}

func (m *MockCurrencyRepository) ListCurrencies(ctx context.Context) ([]domain.Currency, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Currency), args.Error(1)
}

// --- Mock ExchangeRateRepository ---
type MockExchangeRateRepository struct {
	mock.Mock
}

func (m *MockExchangeRateRepository) SaveExchangeRate(ctx context.Context, rate domain.ExchangeRate) error {
	args := m.Called(ctx, rate)
	return args.Error(0)
}

func (m *MockExchangeRateRepository) FindExchangeRate(ctx context.Context, fromCode, toCode string) (*domain.ExchangeRate, error) {
	args := m.Called(ctx, fromCode, toCode)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ExchangeRate), args.Error(1)
}

// --- Mock OrganizationRepository ---
type MockOrganizationRepository struct {
	mock.Mock
}

func (m *MockOrganizationRepository) FindOrganizationByID(ctx context.Context, organizationID string) (*domain.Organization, error) {
	args := m.Called(ctx, organizationID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Organization), args.Error(1)
}

func (m *MockOrganizationRepository) SaveOrganization(ctx context.Context, org domain.Organization) error {
	args := m.Called(ctx, org)
	return args.Error(0)
}

func (m *MockOrganizationRepository) UpdateFinancialPreferences(ctx context.Context, organizationID string, prefs domain.FinancialPreferences, userID string, now time.Time) error {
	args := m.Called(ctx, organizationID, prefs, userID, now)
	return args.Error(0)
}

// --- Mock MonetaryRecordRepository ---
type MockMonetaryRecordRepository struct {
	mock.Mock
}

func (m *MockMonetaryRecordRepository) FindRecordByID(ctx context.Context, organizationID, recordID string) (*domain.MonetaryRecord, error) {
	args := m.Called(ctx, organizationID, recordID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.MonetaryRecord), args.Error(1)
}

func (m *MockMonetaryRecordRepository) ListRecords(ctx context.Context, organizationID string, filter domain.RecordFilter) ([]domain.MonetaryRecord, error) {
	args := m.Called(ctx, organizationID, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.MonetaryRecord), args.Error(1)
}

func (m *MockMonetaryRecordRepository) SaveRecord(ctx context.Context, record domain.MonetaryRecord) error {
	args := m.Called(ctx, record)
	return args.Error(0)
}

func (m *MockMonetaryRecordRepository) VoidRecord(ctx context.Context, organizationID, recordID, userID string, now time.Time) error {
	args := m.Called(ctx, organizationID, recordID, userID, now)
	return args.Error(0)
}

func (m *MockMonetaryRecordRepository) UpdateRecordExchangeRate(ctx context.Context, organizationID, recordID string, rate decimal.Decimal, userID string, now time.Time) error {
	args := m.Called(ctx, organizationID, recordID, rate, userID, now)
	return args.Error(0)
}

// --- Mock DocumentRepository ---
type MockDocumentRepository struct {
	mock.Mock
}

func (m *MockDocumentRepository) FindDocumentByID(ctx context.Context, organizationID, documentID string) (domain.Document, error) {
	args := m.Called(ctx, organizationID, documentID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(domain.Document), args.Error(1)
}

func (m *MockDocumentRepository) ListDocuments(ctx context.Context, organizationID string, filter domain.DocumentFilter) ([]domain.Document, *string, error) {
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

func (m *MockDocumentRepository) ListChangeOrders(ctx context.Context, organizationID, contractID string) ([]*domain.ChangeOrder, error) {
	args := m.Called(ctx, organizationID, contractID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.ChangeOrder), args.Error(1)
}

func (m *MockDocumentRepository) FindLineItemsByDocumentID(ctx context.Context, documentID string) ([]domain.QuoteLineItem, error) {
	args := m.Called(ctx, documentID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.QuoteLineItem), args.Error(1)
}

func (m *MockDocumentRepository) FindLineItemsByDocumentIDs(ctx context.Context, documentIDs []string) (map[string][]domain.QuoteLineItem, error) {
	args := m.Called(ctx, documentIDs)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[string][]domain.QuoteLineItem), args.Error(1)
}

func (m *MockDocumentRepository) SaveDocument(ctx context.Context, doc domain.Document, items []domain.QuoteLineItem) error {
	args := m.Called(ctx, doc, items)
	return args.Error(0)
}

func (m *MockDocumentRepository) UpdateDocumentPricing(ctx context.Context, header domain.DocumentHeader) error {
	args := m.Called(ctx, header)
	return args.Error(0)
}

func (m *MockDocumentRepository) SoftDeleteDocument(ctx context.Context, organizationID, documentID, userID string, now time.Time) error {
	args := m.Called(ctx, organizationID, documentID, userID, now)
	return args.Error(0)
}

func (m *MockDocumentRepository) SaveLineItem(ctx context.Context, item domain.QuoteLineItem) error {
	args := m.Called(ctx, item)
	return args.Error(0)
}

func (m *MockDocumentRepository) UpdateLineItem(ctx context.Context, item domain.QuoteLineItem) error {
	args := m.Called(ctx, item)
	return args.Error(0)
}

func (m *MockDocumentRepository) DeleteLineItem(ctx context.Context, documentID, lineItemID string) error {
	args := m.Called(ctx, documentID, lineItemID)
	return args.Error(0)
}

func (m *MockDocumentRepository) FindDocumentByIDForUpdate(ctx context.Context, tx pgx.Tx, organizationID, documentID string) (domain.Document, error) {
	args := m.Called(ctx, tx, organizationID, documentID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(domain.Document), args.Error(1)
}

func (m *MockDocumentRepository) FindLineItemsInTx(ctx context.Context, tx pgx.Tx, documentID string) ([]domain.QuoteLineItem, error) {
	args := m.Called(ctx, tx, documentID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.QuoteLineItem), args.Error(1)
}

func (m *MockDocumentRepository) UpdateDocumentStatusInTx(ctx context.Context, tx pgx.Tx, documentID string, status domain.QuoteStatus, userID string, now time.Time) error {
	args := m.Called(ctx, tx, documentID, status, userID, now)
	return args.Error(0)
}

func (m *MockDocumentRepository) FreezeContractValueInTx(ctx context.Context, tx pgx.Tx, contractID string, value decimal.Decimal, frozenAt time.Time) error {
	args := m.Called(ctx, tx, contractID, value, frozenAt)
	return args.Error(0)
}

func (m *MockDocumentRepository) Begin(ctx context.Context) (pgx.Tx, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(pgx.Tx), args.Error(1)
}

func (m *MockDocumentRepository) Commit(ctx context.Context, tx pgx.Tx) error {
	args := m.Called(ctx, tx)
	return args.Error(0)
}

func (m *MockDocumentRepository) Rollback(ctx context.Context, tx pgx.Tx) error {
	args := m.Called(ctx, tx)
	return args.Error(0)
}

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func decPtr(s string) *decimal.Decimal {
	d := dec(s)
	return &d
}
