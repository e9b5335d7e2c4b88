package services

import (
	portsrepo "github.com/SscSPs/construction_finance_app/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/construction_finance_app/internal/core/ports/services"
)

// NewServiceContainer creates a new service container with properly initialized dependencies.
// defaultLocale applies to organizations created without a locale.
func NewServiceContainer(repos portsrepo.RepositoryProvider, defaultLocale string) *portssvc.ServiceContainer {
	container := &portssvc.ServiceContainer{}

	// Currency first: every other service validates codes through it.
	container.Currency = NewCurrencyService(repos.CurrencyRepo)
	container.ExchangeRate = NewExchangeRateService(repos.ExchangeRateRepo, container.Currency)
	container.Organization = NewOrganizationService(repos.OrganizationRepo, repos.ExchangeRateRepo, container.Currency, WithDefaultLocale(defaultLocale))
	container.MonetaryRecord = NewMonetaryRecordService(repos.MonetaryRecordRepo, container.Organization, container.Currency)
	container.Aggregation = NewAggregationService(
		repos.MonetaryRecordRepo,
		container.Organization,
		WithAggregationCurrencyService(container.Currency),
	)
	container.Document = NewDocumentService(repos.DocumentRepo, container.Organization, container.Currency)
	container.Contract = NewContractService(repos.DocumentRepo)

	return container
}
