package services

import (
	"context"

	"github.com/SscSPs/currency_exchange_app/internal/core/domain"
	"github.com/SscSPs/currency_exchange_app/internal/dto"
)

// CountryReaderSvc defines read operations for the price catalog
type CountryReaderSvc interface {
	// ListCountries retrieves the whole catalog in catalog order.
	ListCountries(ctx context.Context) ([]domain.Country, error)

	// ListActiveCountries retrieves only the entries usable by the calculator.
	ListActiveCountries(ctx context.Context) ([]domain.Country, error)
}

// CountryWriterSvc defines admin write operations for the price catalog
type CountryWriterSvc interface {
	CreateCountry(ctx context.Context, req dto.CreateCountryRequest, adminID string) (*domain.Country, error)

	// UpdateCountries applies a bulk partial update atomically.
	UpdateCountries(ctx context.Context, reqs []dto.UpdateCountryRequest, adminID string) error

	SetCountryEnabled(ctx context.Context, countryID string, enabled bool, adminID string) error
	DeleteCountry(ctx context.Context, countryID string, adminID string) error
}

// CountrySvcFacade combines all country-related service interfaces
type CountrySvcFacade interface {
	CountryReaderSvc
	CountryWriterSvc
}
