package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/SscSPs/currency_exchange_app/internal/core/domain"
	portsrepo "github.com/SscSPs/currency_exchange_app/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/currency_exchange_app/internal/core/ports/services"
	"github.com/SscSPs/currency_exchange_app/internal/platform/metrics"
	"github.com/SscSPs/currency_exchange_app/internal/utils/catalog"
	"github.com/SscSPs/currency_exchange_app/internal/utils/conversion"
	"github.com/SscSPs/currency_exchange_app/internal/utils/mapping"
)

type conversionService struct {
	BaseService
	countryRepo portsrepo.CountryReader
}

// NewConversionService creates the server-side calculator.
func NewConversionService(countryRepo portsrepo.CountryReader) portssvc.ConversionSvc {
	return &conversionService{BaseService: newBaseService("conversion"), countryRepo: countryRepo}
}

// Convert prices amount against the active snapshot. A currency missing from
// the snapshot has price 0 and yields a zero result.
func (s *conversionService) Convert(ctx context.Context, amount float64, from, to string, dir conversion.Direction) (*domain.Conversion, error) {
	countries, err := s.countryRepo.ListCountries(ctx)
	if err != nil {
		s.LogError(ctx, err, "Failed to load catalog for conversion")
		return nil, fmt.Errorf("failed to load catalog: %w", err)
	}
	snapshot := catalog.FilterActive(mapping.ToCatalogRaw(countries))

	from = strings.ToUpper(strings.TrimSpace(from))
	to = strings.ToUpper(strings.TrimSpace(to))
	fromPrice := snapshot.Price(from)
	toPrice := snapshot.Price(to)

	result := conversion.Convert(amount, fromPrice, toPrice, dir)
	valid := conversion.Valid(result)
	metrics.RecordConversion(dir.String(), valid)

	return &domain.Conversion{
		Amount:    amount,
		From:      from,
		To:        to,
		Direction: dir.String(),
		FromPrice: fromPrice,
		ToPrice:   toPrice,
		Result:    result,
		Valid:     valid,
	}, nil
}
