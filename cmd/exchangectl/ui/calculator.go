// Package ui holds the terminal views of exchangectl.
package ui

import (
	"context"
	"fmt"
	"strings"

	"github.com/SscSPs/currency_exchange_app/internal/utils/calculator"
	"github.com/SscSPs/currency_exchange_app/internal/utils/catalog"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// SnapshotSource provides the active catalog.
type SnapshotSource interface {
	Refresh(ctx context.Context) (catalog.Snapshot, error)
}

// snapshotMsg carries the outcome of a catalog refresh.
type snapshotMsg struct {
	snapshot catalog.Snapshot
	err      error
}

var (
	titleStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#7D56F4")).MarginBottom(1)
	focusedStyle = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("#7D56F4")).Padding(0, 1)
	blurredStyle = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("240")).Padding(0, 1)
	currencyTag  = lipgloss.NewStyle().Bold(true)
	errorStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#FF5F87"))
	helpStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("241")).MarginTop(1)
)

// CalculatorModel is the two-field calculator. Typing in one field
// recomputes the other through a calculator.Synchronizer.
type CalculatorModel struct {
	ctx    context.Context
	source SnapshotSource
	sync   *calculator.Synchronizer

	inputs [2]textinput.Model
	focus  calculator.Field
	err    error
}

// NewCalculatorModel creates a calculator with an empty catalog. The catalog
// is fetched by Init.
func NewCalculatorModel(ctx context.Context, source SnapshotSource, left, right string) CalculatorModel {
	m := CalculatorModel{
		ctx:    ctx,
		source: source,
		sync:   calculator.New(catalog.Snapshot{}, left, right),
		focus:  calculator.Left,
	}
	for i := range m.inputs {
		ti := textinput.New()
		ti.Placeholder = "0.00"
		ti.CharLimit = 20
		ti.Width = 20
		ti.Prompt = ""
		m.inputs[i] = ti
	}
	m.inputs[calculator.Left].Focus()
	return m
}

// Init fetches the catalog.
func (m CalculatorModel) Init() tea.Cmd {
	return tea.Batch(textinput.Blink, m.refresh())
}

func (m CalculatorModel) refresh() tea.Cmd {
	return func() tea.Msg {
		snap, err := m.source.Refresh(m.ctx)
		return snapshotMsg{snapshot: snap, err: err}
	}
}

// Update handles messages.
func (m CalculatorModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case snapshotMsg:
		// A failed refresh still returns the previous snapshot.
		m.err = msg.err
		m.sync.SetSnapshot(msg.snapshot)
		m.syncInputs()
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "esc":
			return m, tea.Quit
		case "tab", "shift+tab":
			cmd := m.setFocus(1 - m.focus)
			return m, cmd
		case "ctrl+left":
			m.sync.SetLeftCurrency(nextCode(m.sync.Snapshot(), m.sync.State().LeftCurrency))
			m.syncInputs()
			return m, nil
		case "ctrl+right":
			m.sync.SetRightCurrency(nextCode(m.sync.Snapshot(), m.sync.State().RightCurrency))
			m.syncInputs()
			return m, nil
		case "ctrl+r":
			return m, m.refresh()
		}
	}

	before := m.inputs[m.focus].Value()
	var cmd tea.Cmd
	m.inputs[m.focus], cmd = m.inputs[m.focus].Update(msg)
	if after := m.inputs[m.focus].Value(); after != before {
		if m.focus == calculator.Left {
			m.sync.EditLeft(after)
		} else {
			m.sync.EditRight(after)
		}
		m.syncInputs()
	}
	return m, cmd
}

func (m *CalculatorModel) setFocus(f calculator.Field) tea.Cmd {
	m.inputs[m.focus].Blur()
	m.focus = f
	return m.inputs[m.focus].Focus()
}

// syncInputs copies the derived amount into the field that is not being edited.
func (m *CalculatorModel) syncInputs() {
	st := m.sync.State()
	if st.LastEdited == calculator.Left {
		m.inputs[calculator.Right].SetValue(st.RightAmount)
	} else {
		m.inputs[calculator.Left].SetValue(st.LeftAmount)
	}
}

// nextCode returns the code after current in catalog order, wrapping around.
func nextCode(snap catalog.Snapshot, current string) string {
	codes := snap.Codes()
	if len(codes) == 0 {
		return current
	}
	for i, c := range codes {
		if strings.EqualFold(c, current) {
			return codes[(i+1)%len(codes)]
		}
	}
	return codes[0]
}

// State exposes the synchronizer state.
func (m CalculatorModel) State() calculator.State {
	return m.sync.State()
}

// View renders the calculator.
func (m CalculatorModel) View() string {
	st := m.sync.State()
	var b strings.Builder
	b.WriteString(titleStyle.Render("Currency calculator"))
	b.WriteString("\n")

	fields := []struct {
		label string
		code  string
		field calculator.Field
	}{
		{"You send", st.LeftCurrency, calculator.Left},
		{"They receive", st.RightCurrency, calculator.Right},
	}
	boxes := make([]string, 0, len(fields))
	for _, f := range fields {
		style := blurredStyle
		if m.focus == f.field {
			style = focusedStyle
		}
		body := fmt.Sprintf("%s\n%s %s", f.label, currencyTag.Render(f.code), m.inputs[f.field].View())
		boxes = append(boxes, style.Render(body))
	}
	b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, boxes...))

	if m.err != nil {
		b.WriteString("\n")
		b.WriteString(errorStyle.Render("catalog refresh failed: " + m.err.Error()))
	} else if len(m.sync.Snapshot()) == 0 {
		b.WriteString("\n")
		b.WriteString(errorStyle.Render("no active currencies"))
	}

	b.WriteString(helpStyle.Render("tab: switch field • ctrl+←/→: change currency • ctrl+r: refresh • esc: quit"))
	return b.String()
}
