package pgsql

import (
	portsrepo "github.com/SscSPs/construction_finance_app/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5/pgxpool"
)

func NewRepositoryProvider(dbPool *pgxpool.Pool) portsrepo.RepositoryProvider {
	return portsrepo.RepositoryProvider{
		CurrencyRepo:       newPgxCurrencyRepository(dbPool),
		ExchangeRateRepo:   newPgxExchangeRateRepository(dbPool),
		OrganizationRepo:   newPgxOrganizationRepository(dbPool),
		MonetaryRecordRepo: newPgxMonetaryRecordRepository(dbPool),
		DocumentRepo:       newPgxDocumentRepository(dbPool),
	}
}
