package pgsql

import (
	portsrepo "github.com/SscSPs/earnings_calendar_app/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5/pgxpool"
)

func NewRepositoryProvider(dbPool *pgxpool.Pool) portsrepo.RepositoryProvider {
	eventDocumentRepo := newPgxEventDocumentRepository(dbPool, DefaultDocumentID)

	return portsrepo.RepositoryProvider{
		EventDocumentRepo: eventDocumentRepo,
	}
}
