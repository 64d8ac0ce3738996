package catalog_test

import (
	"encoding/json"
	"math"
	"testing"

	"github.com/SscSPs/currency_exchange_app/internal/utils/catalog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFilterActive(t *testing.T) {
	raw := []catalog.RawEntry{
		{ID: "1", CurrencyCode: "ARS", USDPrice: 1000.0, Enabled: true},
		{ID: "2", CurrencyCode: "BRL", USDPrice: 5.0, Enabled: false},
		{ID: "3", CurrencyCode: "CLP", USDPrice: "950", Enabled: true},
		{ID: "4", CurrencyCode: "UYU", USDPrice: math.NaN(), Enabled: true},
		{ID: "5", CurrencyCode: "PEN", USDPrice: 3.7, Enabled: "true"},
		{ID: "6", CurrencyCode: "COP", USDPrice: nil, Enabled: true},
		{ID: "7", CurrencyCode: "MXN", USDPrice: math.Inf(1), Enabled: true},
		{ID: "8", CurrencyCode: "EUR", USDPrice: 0.92, Enabled: true},
	}

	got := catalog.FilterActive(raw)

	require.Len(t, got, 2)
	assert.Equal(t, "ARS", got[0].CurrencyCode)
	assert.Equal(t, 1000.0, got[0].USDPrice)
	assert.True(t, got[0].Enabled)
	assert.Equal(t, "EUR", got[1].CurrencyCode)
}

func TestFilterActive_FromJSON(t *testing.T) {
	payload := `[
		{"id":"a","name":"Argentina","currencyCode":"ARS","usdPrice":1000,"enabled":true,"flagImage":"ar.png"},
		{"id":"b","name":"Brasil","currencyCode":"BRL","usdPrice":"5.1","enabled":true},
		{"id":"c","name":"Chile","currencyCode":"CLP","usdPrice":950,"enabled":false},
		{"id":"d","name":"Peru","currencyCode":"PEN","usdPrice":3.7}
	]`
	var raw []catalog.RawEntry
	require.NoError(t, json.Unmarshal([]byte(payload), &raw))

	got := catalog.FilterActive(raw)

	require.Len(t, got, 1)
	assert.Equal(t, catalog.Entry{ID: "a", Name: "Argentina", CurrencyCode: "ARS", USDPrice: 1000, Enabled: true, FlagImage: "ar.png"}, got[0])
}

func TestFilterActive_Empty(t *testing.T) {
	got := catalog.FilterActive(nil)
	assert.NotNil(t, got)
	assert.Empty(t, got)
}

func TestSnapshot_Price(t *testing.T) {
	snap := catalog.Snapshot{
		{ID: "1", CurrencyCode: "ARS", USDPrice: 1000, Enabled: true},
		{ID: "2", CurrencyCode: "BRL", USDPrice: 5, Enabled: true},
		{ID: "3", CurrencyCode: "ARS", USDPrice: 1200, Enabled: true},
	}

	assert.Equal(t, 1000.0, snap.Price("ARS"), "first match in catalog order wins")
	assert.Equal(t, 5.0, snap.Price("brl"))
	assert.Equal(t, 0.0, snap.Price("XXX"))
	assert.Equal(t, 0.0, catalog.Snapshot(nil).Price("ARS"))
	assert.Equal(t, []string{"ARS", "BRL"}, snap.Codes())
}

func TestSnapshot_LookupIgnoresCase(t *testing.T) {
	snap := catalog.Snapshot{
		{ID: "1", CurrencyCode: "ARS", USDPrice: 1000, Enabled: true},
		{ID: "2", CurrencyCode: "ars", USDPrice: 900, Enabled: true},
	}

	e, ok := snap.Lookup("aRs")
	require.True(t, ok)
	assert.Equal(t, "1", e.ID)

	_, ok = snap.Lookup("AR")
	assert.False(t, ok)
}
