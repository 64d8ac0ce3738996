package dto

import (
	"math"
	"time"

	"github.com/SscSPs/currency_exchange_app/internal/core/domain"
)

// CreateCountryRequest defines the data needed to add a country to the catalog.
type CreateCountryRequest struct {
	Name         string  `json:"name" binding:"required"`
	CurrencyCode string  `json:"currencyCode" binding:"required,currencycode"`
	USDPrice     float64 `json:"usdPrice" binding:"required,gt=0"`
	FlagImage    string  `json:"flagImage"`
	Enabled      *bool   `json:"enabled"` // Defaults to true
}

// UpdateCountryRequest is one element of the bulk catalog update.
// Using pointers to differentiate between omitted fields and zero-value fields.
type UpdateCountryRequest struct {
	ID           string   `json:"id" binding:"required"`
	Name         *string  `json:"name,omitempty" binding:"omitempty,min=1"`
	CurrencyCode *string  `json:"currencyCode,omitempty" binding:"omitempty,currencycode"`
	USDPrice     *float64 `json:"usdPrice,omitempty" binding:"omitempty,gt=0"`
	FlagImage    *string  `json:"flagImage,omitempty"`
	Enabled      *bool    `json:"enabled,omitempty"`
}

// ListCountriesParams defines query parameters for listing countries.
type ListCountriesParams struct {
	Active bool `form:"active"`
}

// CountryResponse defines the data returned for a catalog entry.
// USDPrice is null when the stored price is not a finite number.
type CountryResponse struct {
	ID            string    `json:"id"`
	Name          string    `json:"name"`
	CurrencyCode  string    `json:"currencyCode"`
	USDPrice      *float64  `json:"usdPrice"`
	Enabled       bool      `json:"enabled"`
	FlagImage     string    `json:"flagImage"`
	CreatedAt     time.Time `json:"createdAt"`
	LastUpdatedAt time.Time `json:"lastUpdatedAt"`
}

// CreateCountryResponse wraps a newly created country.
type CreateCountryResponse struct {
	Message string          `json:"message"`
	Country CountryResponse `json:"country"`
}

// ToCountryResponse converts a domain.Country to CountryResponse DTO
func ToCountryResponse(c *domain.Country) CountryResponse {
	var price *float64
	if !math.IsNaN(c.USDPrice) && !math.IsInf(c.USDPrice, 0) {
		p := c.USDPrice
		price = &p
	}
	return CountryResponse{
		ID:            c.CountryID,
		Name:          c.Name,
		CurrencyCode:  c.CurrencyCode,
		USDPrice:      price,
		Enabled:       c.Enabled,
		FlagImage:     c.FlagImage,
		CreatedAt:     c.CreatedAt,
		LastUpdatedAt: c.LastUpdatedAt,
	}
}

// ToListCountryResponse converts a slice of domain.Country to CountryResponse DTOs
func ToListCountryResponse(countries []domain.Country) []CountryResponse {
	res := make([]CountryResponse, len(countries))
	for i := range countries {
		res[i] = ToCountryResponse(&countries[i])
	}
	return res
}

// ToCountryPatch converts a bulk update element into a domain patch.
func (r UpdateCountryRequest) ToCountryPatch() domain.CountryPatch {
	return domain.CountryPatch{
		CountryID:    r.ID,
		Name:         r.Name,
		CurrencyCode: r.CurrencyCode,
		USDPrice:     r.USDPrice,
		FlagImage:    r.FlagImage,
		Enabled:      r.Enabled,
	}
}
