package repositories

import (
	"context"

	"github.com/SscSPs/currency_exchange_app/internal/core/domain"
)

// AdminReader defines read operations for admin credentials
type AdminReader interface {
	FindAdminByName(ctx context.Context, name string) (*domain.Admin, error)
	FindAdminByID(ctx context.Context, adminID string) (*domain.Admin, error)
}

// AdminWriter defines write operations for admin credentials
type AdminWriter interface {
	SaveAdmin(ctx context.Context, admin domain.Admin) error
}

// AdminRepositoryFacade combines all admin-related repository interfaces
type AdminRepositoryFacade interface {
	AdminReader
	AdminWriter
}
