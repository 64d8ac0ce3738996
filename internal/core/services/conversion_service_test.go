package services_test

import (
	"context"
	"errors"
	"testing"

	"github.com/SscSPs/currency_exchange_app/internal/core/domain"
	"github.com/SscSPs/currency_exchange_app/internal/core/services"
	"github.com/SscSPs/currency_exchange_app/internal/utils/conversion"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func catalogFixture() []domain.Country {
	return []domain.Country{
		{CountryID: "1", CurrencyCode: "ARS", USDPrice: 1000, Enabled: true},
		{CountryID: "2", CurrencyCode: "BRL", USDPrice: 5, Enabled: true},
		{CountryID: "3", CurrencyCode: "CLP", USDPrice: 900, Enabled: false},
	}
}

func TestConversionService_Convert(t *testing.T) {
	ctx := context.Background()
	repo := new(MockCountryRepository)
	repo.On("ListCountries", ctx).Return(catalogFixture(), nil)
	svc := services.NewConversionService(repo)

	got, err := svc.Convert(ctx, 100, "ars", "BRL", conversion.LeftToRight)
	require.NoError(t, err)
	assert.True(t, got.Valid)
	assert.Equal(t, "ARS", got.From)
	assert.Equal(t, 1000.0, got.FromPrice)
	assert.InDelta(t, 0.40, got.Result, 1e-9)
	assert.Equal(t, "LEFT_TO_RIGHT", got.Direction)

	back, err := svc.Convert(ctx, 100, "ARS", "BRL", conversion.RightToLeft)
	require.NoError(t, err)
	assert.InDelta(t, 25000.0, back.Result, 1e-6)
}

func TestConversionService_DisabledCurrencyYieldsZero(t *testing.T) {
	ctx := context.Background()
	repo := new(MockCountryRepository)
	repo.On("ListCountries", ctx).Return(catalogFixture(), nil)
	svc := services.NewConversionService(repo)

	got, err := svc.Convert(ctx, 100, "ARS", "CLP", conversion.LeftToRight)
	require.NoError(t, err)
	assert.Equal(t, 0.0, got.ToPrice)
	assert.Equal(t, 0.0, got.Result)
	assert.True(t, got.Valid)
}

func TestConversionService_RepositoryError(t *testing.T) {
	ctx := context.Background()
	repo := new(MockCountryRepository)
	repo.On("ListCountries", ctx).Return(nil, errors.New("db down"))

	_, err := services.NewConversionService(repo).Convert(ctx, 1, "ARS", "BRL", conversion.LeftToRight)
	assert.Error(t, err)
}
