package ui

import (
	"context"
	"errors"
	"testing"

	"github.com/SscSPs/currency_exchange_app/internal/utils/calculator"
	"github.com/SscSPs/currency_exchange_app/internal/utils/catalog"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubSource struct {
	snap catalog.Snapshot
	err  error
}

func (s *stubSource) Refresh(context.Context) (catalog.Snapshot, error) {
	return s.snap, s.err
}

func testSnapshot() catalog.Snapshot {
	return catalog.Snapshot{
		{ID: "1", CurrencyCode: "ARS", USDPrice: 1000, Enabled: true},
		{ID: "2", CurrencyCode: "BRL", USDPrice: 5, Enabled: true},
		{ID: "3", CurrencyCode: "CLP", USDPrice: 900, Enabled: true},
	}
}

func update(t *testing.T, m CalculatorModel, msg tea.Msg) CalculatorModel {
	t.Helper()
	next, _ := m.Update(msg)
	cm, ok := next.(CalculatorModel)
	require.True(t, ok)
	return cm
}

func typeText(t *testing.T, m CalculatorModel, s string) CalculatorModel {
	t.Helper()
	for _, r := range s {
		m = update(t, m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
	}
	return m
}

func loaded(t *testing.T) CalculatorModel {
	t.Helper()
	src := &stubSource{snap: testSnapshot()}
	m := NewCalculatorModel(context.Background(), src, "ARS", "BRL")
	msg := m.refresh()()
	return update(t, m, msg)
}

func TestCalculator_TypingLeftDerivesRight(t *testing.T) {
	m := loaded(t)
	m = typeText(t, m, "1000")

	st := m.State()
	assert.Equal(t, calculator.Left, st.LastEdited)
	assert.Equal(t, "1000", st.LeftAmount)
	assert.Equal(t, "4.00", st.RightAmount)
	assert.Equal(t, "4.00", m.inputs[calculator.Right].Value())
}

func TestCalculator_TabSwitchesAuthoritativeField(t *testing.T) {
	m := loaded(t)
	m = update(t, m, tea.KeyMsg{Type: tea.KeyTab})
	assert.Equal(t, calculator.Right, m.focus)

	m = typeText(t, m, "4")
	st := m.State()
	assert.Equal(t, calculator.Right, st.LastEdited)
	assert.Equal(t, "1000.00", m.inputs[calculator.Left].Value())
}

func TestCalculator_CurrencyCycleRecomputes(t *testing.T) {
	m := loaded(t)
	m = typeText(t, m, "1000")

	m = update(t, m, tea.KeyMsg{Type: tea.KeyCtrlRight})
	st := m.State()
	assert.Equal(t, "CLP", st.RightCurrency)
	assert.Equal(t, "720.00", st.RightAmount)

	m = update(t, m, tea.KeyMsg{Type: tea.KeyCtrlRight})
	assert.Equal(t, "ARS", m.State().RightCurrency)
}

func TestCalculator_FailedRefreshKeepsValues(t *testing.T) {
	m := loaded(t)
	m = typeText(t, m, "1000")

	m = update(t, m, snapshotMsg{snapshot: testSnapshot(), err: errors.New("offline")})
	assert.Equal(t, "4.00", m.State().RightAmount)
	assert.Contains(t, m.View(), "catalog refresh failed")
}

func TestCalculator_ClearingInputKeepsPeer(t *testing.T) {
	m := loaded(t)
	m = typeText(t, m, "1")
	m = typeText(t, m, "000")
	m = update(t, m, tea.KeyMsg{Type: tea.KeyBackspace})
	m = update(t, m, tea.KeyMsg{Type: tea.KeyBackspace})
	m = update(t, m, tea.KeyMsg{Type: tea.KeyBackspace})
	m = update(t, m, tea.KeyMsg{Type: tea.KeyBackspace})

	st := m.State()
	assert.Equal(t, "", st.LeftAmount)
	assert.Equal(t, "0.00", st.RightAmount, "empty input leaves the last derived value")
}

func TestNextCode(t *testing.T) {
	snap := testSnapshot()
	assert.Equal(t, "BRL", nextCode(snap, "ars"))
	assert.Equal(t, "ARS", nextCode(snap, "CLP"))
	assert.Equal(t, "ARS", nextCode(snap, "XXX"))
	assert.Equal(t, "USD", nextCode(nil, "USD"))
}
