package repositories

import (
	"context"
	"time"

	"github.com/SscSPs/currency_exchange_app/internal/core/domain"
)

// CountryReader defines read operations for the price catalog
type CountryReader interface {
	// ListCountries retrieves every country in catalog order.
	ListCountries(ctx context.Context) ([]domain.Country, error)

	// FindCountryByID retrieves a specific country.
	FindCountryByID(ctx context.Context, countryID string) (*domain.Country, error)
}

// CountryWriter defines write operations for the price catalog
type CountryWriter interface {
	// SaveCountry inserts a new country.
	SaveCountry(ctx context.Context, country domain.Country) error

	// UpdateCountries applies all patches atomically. An unknown ID aborts the batch.
	UpdateCountries(ctx context.Context, patches []domain.CountryPatch, updatedBy string, updatedAt time.Time) error

	// SetCountryEnabled flips the enabled flag of a country.
	SetCountryEnabled(ctx context.Context, countryID string, enabled bool, updatedBy string, updatedAt time.Time) error

	// DeleteCountry removes a country.
	DeleteCountry(ctx context.Context, countryID string) error
}

// CountryRepositoryFacade combines all country-related repository interfaces
type CountryRepositoryFacade interface {
	CountryReader
	CountryWriter
}
