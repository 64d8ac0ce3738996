package pgsql

import (
	portsrepo "github.com/SscSPs/currency_exchange_app/internal/core/ports/repositories"
)

// NewRepositoryProvider wires every repository onto the same pool.
// Production passes a *pgxpool.Pool; tests pass a pgxmock pool.
func NewRepositoryProvider(dbPool DB) portsrepo.RepositoryProvider {
	return portsrepo.RepositoryProvider{
		CountryRepo: newPgxCountryRepository(dbPool),
		CommentRepo: newPgxCommentRepository(dbPool),
		AdminRepo:   newPgxAdminRepository(dbPool),
	}
}
