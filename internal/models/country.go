package models

// Country is the row shape of the countries table.
type Country struct {
	CountryID    string  `db:"country_id"`
	Name         string  `db:"name"`
	CurrencyCode string  `db:"currency_code"`
	USDPrice     float64 `db:"usd_price"`
	Enabled      bool    `db:"enabled"`
	FlagImage    string  `db:"flag_image"`
	AuditFields
}
