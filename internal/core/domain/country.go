package domain

// Country is a catalog entry: a country, its currency and how much of that
// currency buys 1 USD.
type Country struct {
	CountryID    string  `json:"id"`           // Primary Key (UUID)
	Name         string  `json:"name"`         // Display name
	CurrencyCode string  `json:"currencyCode"` // ISO-like 3 letter code, upper case
	USDPrice     float64 `json:"usdPrice"`     // Units of local currency equal to 1 USD
	Enabled      bool    `json:"enabled"`      // Disabled entries never reach the calculator
	FlagImage    string  `json:"flagImage"`    // URL or data URI
	AuditFields
}

// CountryPatch is a partial update of one country. Nil fields are left as is.
type CountryPatch struct {
	CountryID    string
	Name         *string
	CurrencyCode *string
	USDPrice     *float64
	FlagImage    *string
	Enabled      *bool
}
