package dto

import (
	"github.com/SscSPs/currency_exchange_app/internal/core/domain"
	"github.com/SscSPs/currency_exchange_app/internal/utils/conversion"
)

// ConvertRequest defines the query parameters of a server-side conversion.
type ConvertRequest struct {
	Amount    string `form:"amount" binding:"required"`
	From      string `form:"from" binding:"required,currencycode"`
	To        string `form:"to" binding:"required,currencycode"`
	Direction string `form:"direction"`
}

// ConvertResponse is the calculator result. Result is empty when Valid is false.
type ConvertResponse struct {
	Amount    float64 `json:"amount"`
	From      string  `json:"from"`
	To        string  `json:"to"`
	Direction string  `json:"direction"`
	FromPrice float64 `json:"fromPrice"`
	ToPrice   float64 `json:"toPrice"`
	Result    string  `json:"result"`
	Valid     bool    `json:"valid"`
}

// ToConvertResponse converts a domain.Conversion to ConvertResponse DTO
func ToConvertResponse(c *domain.Conversion) ConvertResponse {
	resp := ConvertResponse{
		Amount:    c.Amount,
		From:      c.From,
		To:        c.To,
		Direction: c.Direction,
		FromPrice: c.FromPrice,
		ToPrice:   c.ToPrice,
		Valid:     c.Valid,
	}
	if c.Valid {
		resp.Result = conversion.FormatAmount(c.Result)
	}
	return resp
}
