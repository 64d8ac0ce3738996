package client

import (
	"context"
	"errors"
	"testing"

	"github.com/SscSPs/currency_exchange_app/internal/dto"
	"github.com/SscSPs/currency_exchange_app/internal/utils/catalog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type mockUpdater struct {
	mock.Mock
}

func (m *mockUpdater) UpdateCountries(ctx context.Context, s *Session, updates []dto.UpdateCountryRequest) error {
	args := m.Called(ctx, s, updates)
	return args.Error(0)
}

func sampleCatalog() []catalog.RawEntry {
	return []catalog.RawEntry{
		{ID: "1", Name: "Argentina", CurrencyCode: "ARS", USDPrice: 1000.0, Enabled: true},
		{ID: "2", Name: "Brasil", CurrencyCode: "BRL", USDPrice: 5.0, Enabled: true},
	}
}

func TestPendingEdits_MergeLeavesInputUntouched(t *testing.T) {
	raw := sampleCatalog()
	p := NewPendingEdits()
	p.SetUSDPrice("2", 5.5)
	p.SetEnabled("1", false)
	p.SetName("ghost", "Nowhere")

	merged := p.Merge(raw)

	assert.Equal(t, 5.5, merged[1].USDPrice)
	assert.Equal(t, false, merged[0].Enabled)
	assert.Equal(t, 5.0, raw[1].USDPrice, "input catalog must not change")
	assert.Equal(t, true, raw[0].Enabled)
	assert.Len(t, merged, 2)

	snap := catalog.FilterActive(merged)
	assert.Equal(t, []string{"BRL"}, snap.Codes())
}

func TestPendingEdits_PatchesKeepFirstEditOrder(t *testing.T) {
	p := NewPendingEdits()
	p.SetUSDPrice("b", 2)
	p.SetName("a", "A")
	p.SetCurrencyCode("b", "BBB")

	patches := p.Patches()
	require.Len(t, patches, 2)
	assert.Equal(t, "b", patches[0].ID)
	assert.Equal(t, 2.0, *patches[0].USDPrice)
	assert.Equal(t, "BBB", *patches[0].CurrencyCode)
	assert.Nil(t, patches[0].Name)
	assert.Equal(t, "a", patches[1].ID)
}

func TestPendingEdits_Submit(t *testing.T) {
	s := validSession()
	p := NewPendingEdits()
	p.SetFlagImage("1", "ar.png")

	u := new(mockUpdater)
	u.On("UpdateCountries", mock.Anything, s, p.Patches()).Return(errors.New("network down")).Once()
	require.Error(t, p.Submit(context.Background(), u, s))
	assert.Equal(t, 1, p.Len(), "edits survive a failed submit")

	u.On("UpdateCountries", mock.Anything, s, p.Patches()).Return(nil).Once()
	require.NoError(t, p.Submit(context.Background(), u, s))
	assert.Equal(t, 0, p.Len())

	require.NoError(t, p.Submit(context.Background(), u, s), "nothing to send")
	u.AssertExpectations(t)
}

func TestVisibilityDraft(t *testing.T) {
	comments := []dto.CommentResponse{
		{ID: "c1", IsVisible: true},
		{ID: "c2", IsVisible: false},
		{ID: "c3", IsVisible: false},
	}
	d := NewVisibilityDraft(comments)
	assert.True(t, d.Visible("c1"))

	d.Toggle("c1")
	d.Toggle("c3")

	updates := d.Updates(comments)
	require.Len(t, updates, 3)
	got := map[string]bool{}
	for _, u := range updates {
		got[u.ID] = *u.IsVisible
	}
	assert.Equal(t, map[string]bool{"c1": false, "c2": false, "c3": true}, got)
}
