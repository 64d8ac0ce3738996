// Package calculator keeps the two amount fields of the currency calculator
// consistent with each other.
package calculator

import (
	"strconv"
	"strings"

	"github.com/SscSPs/currency_exchange_app/internal/utils/catalog"
	"github.com/SscSPs/currency_exchange_app/internal/utils/conversion"
)

// Default currencies shown when a calculator is first opened.
const (
	DefaultLeftCurrency  = "ARS"
	DefaultRightCurrency = "BRL"
)

// Field identifies one of the two amount inputs.
type Field int

const (
	Left Field = iota
	Right
)

func (f Field) String() string {
	if f == Right {
		return "EDITING_RIGHT"
	}
	return "EDITING_LEFT"
}

// State is the transient content of a calculator.
type State struct {
	LeftAmount    string
	RightAmount   string
	LeftCurrency  string
	RightCurrency string
	// LastEdited is the authoritative field; the other one is derived.
	LastEdited Field
}

// Synchronizer owns a State and recomputes the derived field after every
// change. It is not safe for concurrent use; each calculator owns one.
type Synchronizer struct {
	state    State
	snapshot catalog.Snapshot
}

// New creates a calculator with empty amounts, the left field authoritative.
func New(snapshot catalog.Snapshot, leftCurrency, rightCurrency string) *Synchronizer {
	return &Synchronizer{
		state: State{
			LeftCurrency:  leftCurrency,
			RightCurrency: rightCurrency,
			LastEdited:    Left,
		},
		snapshot: snapshot,
	}
}

// State returns a copy of the current state.
func (s *Synchronizer) State() State {
	return s.state
}

// Snapshot returns the catalog the calculator converts against.
func (s *Synchronizer) Snapshot() catalog.Snapshot {
	return s.snapshot
}

// EditLeft records user input in the left field and makes it authoritative.
func (s *Synchronizer) EditLeft(text string) {
	s.state.LeftAmount = text
	s.state.LastEdited = Left
	s.Refresh()
}

// EditRight records user input in the right field and makes it authoritative.
func (s *Synchronizer) EditRight(text string) {
	s.state.RightAmount = text
	s.state.LastEdited = Right
	s.Refresh()
}

// SetLeftCurrency changes the left currency; the authoritative field is kept.
func (s *Synchronizer) SetLeftCurrency(code string) {
	s.state.LeftCurrency = code
	s.Refresh()
}

// SetRightCurrency changes the right currency; the authoritative field is kept.
func (s *Synchronizer) SetRightCurrency(code string) {
	s.state.RightCurrency = code
	s.Refresh()
}

// SetSnapshot swaps in a newer catalog.
func (s *Synchronizer) SetSnapshot(snapshot catalog.Snapshot) {
	s.snapshot = snapshot
	s.Refresh()
}

// Refresh recomputes the derived field from the authoritative one.
// Empty or unparseable input, or an invalid result, leaves the derived
// field as it was.
func (s *Synchronizer) Refresh() {
	leftPrice := s.snapshot.Price(s.state.LeftCurrency)
	rightPrice := s.snapshot.Price(s.state.RightCurrency)

	switch s.state.LastEdited {
	case Left:
		if peer, ok := derive(s.state.LeftAmount, leftPrice, rightPrice, conversion.LeftToRight); ok {
			s.state.RightAmount = peer
		}
	case Right:
		if peer, ok := derive(s.state.RightAmount, leftPrice, rightPrice, conversion.RightToLeft); ok {
			s.state.LeftAmount = peer
		}
	}
}

func derive(text string, leftPrice, rightPrice float64, dir conversion.Direction) (string, bool) {
	text = strings.TrimSpace(text)
	if text == "" {
		return "", false
	}
	amount, err := strconv.ParseFloat(text, 64)
	if err != nil {
		return "", false
	}
	result := conversion.Convert(amount, leftPrice, rightPrice, dir)
	if !conversion.Valid(result) {
		return "", false
	}
	return conversion.FormatAmount(result), true
}
