package services

import (
	"context"

	"github.com/SscSPs/currency_exchange_app/internal/core/domain"
	"github.com/SscSPs/currency_exchange_app/internal/utils/conversion"
)

// ConversionSvc runs the calculator against the current catalog.
type ConversionSvc interface {
	Convert(ctx context.Context, amount float64, from, to string, dir conversion.Direction) (*domain.Conversion, error)
}
