package domain

// Conversion is the outcome of one server-side calculator run.
type Conversion struct {
	Amount    float64
	From      string
	To        string
	Direction string
	FromPrice float64
	ToPrice   float64
	Result    float64
	Valid     bool
}
