package services

import (
	"context"
	"time"

	"github.com/SscSPs/currency_exchange_app/internal/core/domain"
)

// AuthSvc authenticates admins and issues session tokens.
type AuthSvc interface {
	// Login checks credentials and returns a signed token with its expiry.
	Login(ctx context.Context, name, password string) (token string, expiresAt time.Time, admin *domain.Admin, err error)

	GetAdmin(ctx context.Context, adminID string) (*domain.Admin, error)

	// EnsureAdmin creates the bootstrap admin if it does not exist yet.
	EnsureAdmin(ctx context.Context, name, password string) error
}
