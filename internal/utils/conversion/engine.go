// Package conversion implements the currency calculator arithmetic.
//
// Every catalog price is "units of local currency equal to 1 USD", so a
// conversion always pivots through USD. The quoted amount to receive is
// discounted by ForwardSpread and the amount to send for a desired receipt
// is inflated by its exact inverse, so a forward quote fed back through the
// reverse formula returns the original amount.
package conversion

import (
	"fmt"
	"math"
	"strings"

	"github.com/shopspring/decimal"
)

// Direction tells which side of the calculator drives the computation.
type Direction int

const (
	// LeftToRight converts the amount to send into the amount to receive.
	LeftToRight Direction = iota
	// RightToLeft converts the amount to receive into the amount to send.
	RightToLeft
)

const (
	// ForwardSpread is applied to the amount to receive.
	ForwardSpread = 0.80
	// ReverseSpread must stay the algebraic inverse of ForwardSpread.
	ReverseSpread = 1 / ForwardSpread

	// DisplayPlaces is the number of decimals shown for a converted amount.
	DisplayPlaces = 2
)

func (d Direction) String() string {
	switch d {
	case LeftToRight:
		return "LEFT_TO_RIGHT"
	case RightToLeft:
		return "RIGHT_TO_LEFT"
	default:
		return fmt.Sprintf("Direction(%d)", int(d))
	}
}

// ParseDirection accepts LEFT_TO_RIGHT/RIGHT_TO_LEFT (any case) and the
// forward/reverse aliases. An empty string means LeftToRight.
func ParseDirection(s string) (Direction, error) {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "", "LEFT_TO_RIGHT", "FORWARD":
		return LeftToRight, nil
	case "RIGHT_TO_LEFT", "REVERSE":
		return RightToLeft, nil
	default:
		return LeftToRight, fmt.Errorf("unknown conversion direction %q", s)
	}
}

// Convert computes the peer amount for amount.
//
// sourcePrice is the USD price of the left currency and destPrice the one of
// the right currency, whatever the direction. A zero price (unknown currency)
// yields 0. Non-finite inputs or a negative price yield NaN, which callers
// must check with Valid before writing the value anywhere.
func Convert(amount, sourcePrice, destPrice float64, dir Direction) float64 {
	if !Valid(amount) || !Valid(sourcePrice) || !Valid(destPrice) {
		return math.NaN()
	}
	if sourcePrice < 0 || destPrice < 0 {
		return math.NaN()
	}
	if sourcePrice == 0 || destPrice == 0 {
		return 0
	}

	switch dir {
	case LeftToRight:
		usdAmount := amount / sourcePrice
		return usdAmount * destPrice * ForwardSpread
	case RightToLeft:
		usdAmount := amount / destPrice
		return usdAmount * sourcePrice * ReverseSpread
	default:
		return math.NaN()
	}
}

// Valid reports whether x can be shown in an amount field.
func Valid(x float64) bool {
	return !math.IsNaN(x) && !math.IsInf(x, 0)
}

// Round returns x rounded half away from zero to DisplayPlaces.
func Round(x float64) float64 {
	if !Valid(x) {
		return x
	}
	return decimal.NewFromFloat(x).Round(DisplayPlaces).InexactFloat64()
}

// FormatAmount renders x with exactly DisplayPlaces decimals.
// Invalid values render as the empty string.
func FormatAmount(x float64) string {
	if !Valid(x) {
		return ""
	}
	return decimal.NewFromFloat(x).StringFixed(DisplayPlaces)
}
