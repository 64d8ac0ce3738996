// Package catalog turns raw country records into the snapshot the
// calculator converts against.
package catalog

import (
	"math"
	"strings"
)

// RawEntry is a country record as it arrives from storage or the wire.
// USDPrice and Enabled are loosely typed on purpose: a JSON decode may hand
// back a string, null or a missing value for either.
type RawEntry struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	CurrencyCode string `json:"currencyCode"`
	USDPrice     any    `json:"usdPrice"`
	Enabled      any    `json:"enabled"`
	FlagImage    string `json:"flagImage"`
}

// Entry is a country that can be used as a conversion endpoint.
type Entry struct {
	ID           string  `json:"id"`
	Name         string  `json:"name"`
	CurrencyCode string  `json:"currencyCode"`
	USDPrice     float64 `json:"usdPrice"`
	Enabled      bool    `json:"enabled"`
	FlagImage    string  `json:"flagImage"`
}

// Snapshot is the ordered list of active entries.
type Snapshot []Entry

// FilterActive keeps the entries whose price is a finite number and whose
// enabled flag is exactly true. Catalog order is preserved.
func FilterActive(raw []RawEntry) Snapshot {
	out := make(Snapshot, 0, len(raw))
	for _, r := range raw {
		price, ok := r.USDPrice.(float64)
		if !ok || math.IsNaN(price) || math.IsInf(price, 0) {
			continue
		}
		enabled, ok := r.Enabled.(bool)
		if !ok || !enabled {
			continue
		}
		out = append(out, Entry{
			ID:           r.ID,
			Name:         r.Name,
			CurrencyCode: r.CurrencyCode,
			USDPrice:     price,
			Enabled:      true,
			FlagImage:    r.FlagImage,
		})
	}
	return out
}

// Lookup returns the first entry carrying code. Codes compare case-insensitively,
// so a typed "ars" finds the stored "ARS".
func (s Snapshot) Lookup(code string) (Entry, bool) {
	for _, e := range s {
		if strings.EqualFold(e.CurrencyCode, code) {
			return e, true
		}
	}
	return Entry{}, false
}

// Price returns the USD price of code, or 0 when code is not in the snapshot.
func (s Snapshot) Price(code string) float64 {
	e, ok := s.Lookup(code)
	if !ok {
		return 0
	}
	return e.USDPrice
}

// Codes lists the currency codes in catalog order, without repeats.
func (s Snapshot) Codes() []string {
	seen := make(map[string]struct{}, len(s))
	codes := make([]string, 0, len(s))
	for _, e := range s {
		key := strings.ToUpper(e.CurrencyCode)
		if _, dup := seen[key]; dup {
			continue
		}
		seen[key] = struct{}{}
		codes = append(codes, e.CurrencyCode)
	}
	return codes
}
