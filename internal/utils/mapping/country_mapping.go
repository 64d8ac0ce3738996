package mapping

import (
	"github.com/SscSPs/currency_exchange_app/internal/core/domain"
	"github.com/SscSPs/currency_exchange_app/internal/models"
	"github.com/SscSPs/currency_exchange_app/internal/utils/catalog"
)

// ToModelCountry converts a domain Country to a model Country
func ToModelCountry(d domain.Country) models.Country {
	return models.Country{
		CountryID:    d.CountryID,
		Name:         d.Name,
		CurrencyCode: d.CurrencyCode,
		USDPrice:     d.USDPrice,
		Enabled:      d.Enabled,
		FlagImage:    d.FlagImage,
		AuditFields:  ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainCountry converts a model Country to a domain Country
func ToDomainCountry(m models.Country) domain.Country {
	return domain.Country{
		CountryID:    m.CountryID,
		Name:         m.Name,
		CurrencyCode: m.CurrencyCode,
		USDPrice:     m.USDPrice,
		Enabled:      m.Enabled,
		FlagImage:    m.FlagImage,
		AuditFields:  ToDomainAuditFields(m.AuditFields),
	}
}

// ToDomainCountrySlice converts a slice of model Countries to domain Countries
func ToDomainCountrySlice(ms []models.Country) []domain.Country {
	ds := make([]domain.Country, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainCountry(m)
	}
	return ds
}

// ToCatalogRaw feeds stored countries into the snapshot filter.
func ToCatalogRaw(countries []domain.Country) []catalog.RawEntry {
	raw := make([]catalog.RawEntry, len(countries))
	for i, c := range countries {
		raw[i] = catalog.RawEntry{
			ID:           c.CountryID,
			Name:         c.Name,
			CurrencyCode: c.CurrencyCode,
			USDPrice:     c.USDPrice,
			Enabled:      c.Enabled,
			FlagImage:    c.FlagImage,
		}
	}
	return raw
}
