package services_test

import (
	"context"
	"testing"

	"github.com/SscSPs/construction_finance_app/internal/apperrors"
	"github.com/SscSPs/construction_finance_app/internal/core/domain"
	portssvc "github.com/SscSPs/construction_finance_app/internal/core/ports/services"
	"github.com/SscSPs/construction_finance_app/internal/core/services"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

type AggregationServiceTestSuite struct {
	suite.Suite
	mockRecordRepo   *MockMonetaryRecordRepository
	mockOrgRepo      *MockOrganizationRepository
	mockRateRepo     *MockExchangeRateRepository
	mockCurrencyRepo *MockCurrencyRepository
	service          portssvc.AggregationSvc
}

func (suite *AggregationServiceTestSuite) SetupTest() {
	suite.mockRecordRepo = new(MockMonetaryRecordRepository)
	suite.mockOrgRepo = new(MockOrganizationRepository)
	suite.mockRateRepo = new(MockExchangeRateRepository)
	suite.mockCurrencyRepo = new(MockCurrencyRepository)
	currencySvc := services.NewCurrencyService(suite.mockCurrencyRepo)
	orgSvc := services.NewOrganizationService(suite.mockOrgRepo, suite.mockRateRepo, currencySvc)
	suite.service = services.NewAggregationService(suite.mockRecordRepo, orgSvc, services.WithAggregationCurrencyService(currencySvc))

	suite.mockOrgRepo.On("FindOrganizationByID", mock.Anything, "org-1").Return(&domain.Organization{
		OrganizationID: "org-1",
		FinancialPreferences: domain.FinancialPreferences{
			FunctionalCurrencyCode: "ARS",
			ReferenceCurrencyCode:  "USD",
			CurrentExchangeRate:    dec("1000"),
			DecimalPlaces:          2,
			DisplayMode:            domain.DisplayMix,
			Locale:                 "en-US",
		},
	}, nil)
	suite.mockRateRepo.On("FindExchangeRate", mock.Anything, "USD", "ARS").Return(nil, apperrors.ErrNotFound)
	suite.mockCurrencyRepo.On("ListCurrencies", mock.Anything).Return([]domain.Currency{
		{CurrencyCode: "ARS", Symbol: "$"},
		{CurrencyCode: "USD", Symbol: "US$"},
	}, nil)
}

func (suite *AggregationServiceTestSuite) mixedRecords() []domain.MonetaryRecord {
	return []domain.MonetaryRecord{
		{RecordID: "r1", Amount: dec("100"), CurrencyCode: "USD"},
		{RecordID: "r2", Amount: dec("50000"), CurrencyCode: "ARS"},
		{RecordID: "r3", Amount: dec("20"), CurrencyCode: "USD", ExchangeRate: decPtr("1100.5")},
	}
}

func (suite *AggregationServiceTestSuite) TestSummarizeRecords_DefaultModeIsOrganizationPreference() {
	ctx := context.Background()
	filter := domain.RecordFilter{Kind: domain.RecordKindPayment, ProjectID: "proj-1"}
	suite.mockRecordRepo.On("ListRecords", ctx, "org-1", filter).Return(suite.mixedRecords(), nil).Once()

	summary, err := suite.service.SummarizeRecords(ctx, "org-1", domain.SummaryFilter{Kind: domain.RecordKindPayment, ProjectID: "proj-1"})

	suite.Require().NoError(err)
	suite.Equal(domain.DisplayMix, summary.Result.Mode)
	suite.Equal(3, summary.RecordCount)
	suite.True(summary.CurrentRate.Equal(dec("1000")))
	// 100*1000 + 50000 + 20*1100.5
	suite.True(summary.Result.Total.Equal(dec("172010")), summary.Result.Total.String())
	suite.Equal("$ 172,010.00", summary.TotalFormatted)

	suite.Require().Len(summary.Breakdown, 2)
	suite.Equal("ARS", summary.Breakdown[0].CurrencyCode)
	suite.True(summary.Breakdown[0].IsPrimary)
	suite.Equal("$ 50,000.00", summary.Breakdown[0].NativeFormatted)
	suite.Equal("USD", summary.Breakdown[1].CurrencyCode)
	suite.Equal("US$ 120.00", summary.Breakdown[1].NativeFormatted)
	suite.Equal("$ 122,010.00", summary.Breakdown[1].FunctionalFormatted)
	suite.mockRecordRepo.AssertExpectations(suite.T())
}

func (suite *AggregationServiceTestSuite) TestSummarizeRecords_NativeMixedIsNotDisplayable() {
	ctx := context.Background()
	suite.mockRecordRepo.On("ListRecords", ctx, "org-1", domain.RecordFilter{}).Return(suite.mixedRecords(), nil).Once()

	summary, err := suite.service.SummarizeRecords(ctx, "org-1", domain.SummaryFilter{Mode: domain.DisplayNative})

	suite.Require().NoError(err)
	suite.False(summary.Result.Displayable)
	suite.Empty(summary.TotalFormatted)
	suite.Len(summary.Breakdown, 2)
}

func (suite *AggregationServiceTestSuite) TestSummarizeRecords_SingleCurrencyShownNatively() {
	ctx := context.Background()
	suite.mockRecordRepo.On("ListRecords", ctx, "org-1", domain.RecordFilter{}).Return([]domain.MonetaryRecord{
		{RecordID: "r1", Amount: dec("1234.565"), CurrencyCode: "USD"},
	}, nil).Once()

	summary, err := suite.service.SummarizeRecords(ctx, "org-1", domain.SummaryFilter{})

	suite.Require().NoError(err)
	suite.Equal("USD", summary.Result.CurrencyCode)
	suite.Equal("US$ 1,234.57", summary.TotalFormatted)
}

func (suite *AggregationServiceTestSuite) TestSummarizeRecords_Empty() {
	ctx := context.Background()
	suite.mockRecordRepo.On("ListRecords", ctx, "org-1", domain.RecordFilter{}).Return([]domain.MonetaryRecord{}, nil).Once()

	summary, err := suite.service.SummarizeRecords(ctx, "org-1", domain.SummaryFilter{Mode: domain.DisplayFunctional})

	suite.Require().NoError(err)
	suite.True(summary.Result.Total.IsZero())
	suite.Equal("$ 0.00", summary.TotalFormatted)
	suite.Empty(summary.Breakdown)
}

func (suite *AggregationServiceTestSuite) TestSummarizeRecords_InvalidMode() {
	ctx := context.Background()
	suite.mockRecordRepo.On("ListRecords", ctx, "org-1", domain.RecordFilter{}).Return(suite.mixedRecords(), nil).Once()

	_, err := suite.service.SummarizeRecords(ctx, "org-1", domain.SummaryFilter{Mode: "converted"})

	suite.ErrorIs(err, apperrors.ErrValidation)
}

func (suite *AggregationServiceTestSuite) TestSummarizeRecords_UnknownOrganization() {
	suite.mockOrgRepo.On("FindOrganizationByID", mock.Anything, "missing").Return(nil, apperrors.ErrNotFound).Once()

	_, err := suite.service.SummarizeRecords(context.Background(), "missing", domain.SummaryFilter{})

	suite.ErrorIs(err, apperrors.ErrNotFound)
}

func TestAggregationService(t *testing.T) {
	suite.Run(t, new(AggregationServiceTestSuite))
}

func TestAggregationService_InvalidRate(t *testing.T) {
	recordRepo := new(MockMonetaryRecordRepository)
	orgRepo := new(MockOrganizationRepository)
	rateRepo := new(MockExchangeRateRepository)
	currencySvc := services.NewCurrencyService(new(MockCurrencyRepository))
	orgSvc := services.NewOrganizationService(orgRepo, rateRepo, currencySvc)
	svc := services.NewAggregationService(recordRepo, orgSvc)

	// Preference rate of zero can only come from bad stored data.
	orgRepo.On("FindOrganizationByID", mock.Anything, "org-1").Return(&domain.Organization{
		OrganizationID: "org-1",
		FinancialPreferences: domain.FinancialPreferences{
			FunctionalCurrencyCode: "ARS",
			ReferenceCurrencyCode:  "USD",
			CurrentExchangeRate:    dec("0"),
			DisplayMode:            domain.DisplayFunctional,
		},
	}, nil)
	rateRepo.On("FindExchangeRate", mock.Anything, "USD", "ARS").Return(nil, apperrors.ErrNotFound)
	recordRepo.On("ListRecords", mock.Anything, "org-1", domain.RecordFilter{}).Return([]domain.MonetaryRecord{
		{RecordID: "bad", Amount: dec("10"), CurrencyCode: "USD"},
	}, nil)

	_, err := svc.SummarizeRecords(context.Background(), "org-1", domain.SummaryFilter{})

	assert.ErrorIs(t, err, apperrors.ErrInvalidRate)
	assert.ErrorContains(t, err, `record "bad"`)
}
