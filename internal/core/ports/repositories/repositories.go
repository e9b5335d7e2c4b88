package repositories

// RepositoryProvider holds all repository interfaces needed by services.
type RepositoryProvider struct {
	CurrencyRepo       CurrencyRepositoryFacade
	ExchangeRateRepo   ExchangeRateRepositoryFacade
	OrganizationRepo   OrganizationRepositoryFacade
	MonetaryRecordRepo MonetaryRecordRepositoryFacade
	DocumentRepo       DocumentRepositoryWithTx
}
