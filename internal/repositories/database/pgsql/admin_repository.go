package pgsql

import (
	"context"
	"errors"
	"fmt"

	"github.com/SscSPs/currency_exchange_app/internal/apperrors"
	"github.com/SscSPs/currency_exchange_app/internal/core/domain"
	portsrepo "github.com/SscSPs/currency_exchange_app/internal/core/ports/repositories"
	"github.com/SscSPs/currency_exchange_app/internal/models"
	"github.com/SscSPs/currency_exchange_app/internal/utils/mapping"
	"github.com/jackc/pgx/v5"
)

type PgxAdminRepository struct {
	BaseRepository
}

func newPgxAdminRepository(pool DB) *PgxAdminRepository {
	return &PgxAdminRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

var _ portsrepo.AdminRepositoryFacade = (*PgxAdminRepository)(nil)

const adminColumns = `admin_id, name, password_hash, created_at, created_by, last_updated_at, last_updated_by`

func (r *PgxAdminRepository) findOne(ctx context.Context, where string, arg string) (*domain.Admin, error) {
	query := `SELECT ` + adminColumns + ` FROM admins WHERE ` + where + ` = $1;`
	var m models.Admin
	err := r.Pool.QueryRow(ctx, query, arg).Scan(
		&m.AdminID,
		&m.Name,
		&m.PasswordHash,
		&m.CreatedAt,
		&m.CreatedBy,
		&m.LastUpdatedAt,
		&m.LastUpdatedBy,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find admin by %s: %w", where, err)
	}
	admin := mapping.ToDomainAdmin(m)
	return &admin, nil
}

// FindAdminByName retrieves an admin by login name.
func (r *PgxAdminRepository) FindAdminByName(ctx context.Context, name string) (*domain.Admin, error) {
	return r.findOne(ctx, "name", name)
}

// FindAdminByID retrieves an admin by ID.
func (r *PgxAdminRepository) FindAdminByID(ctx context.Context, adminID string) (*domain.Admin, error) {
	return r.findOne(ctx, "admin_id", adminID)
}

// SaveAdmin inserts a new admin.
func (r *PgxAdminRepository) SaveAdmin(ctx context.Context, admin domain.Admin) error {
	m := mapping.ToModelAdmin(admin)
	query := `INSERT INTO admins (` + adminColumns + `) VALUES ($1, $2, $3, $4, $5, $6, $7);`
	_, err := r.Pool.Exec(ctx, query,
		m.AdminID,
		m.Name,
		m.PasswordHash,
		m.CreatedAt,
		m.CreatedBy,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("%w: admin %s", apperrors.ErrDuplicate, m.Name)
		}
		return fmt.Errorf("failed to save admin %s: %w", m.Name, err)
	}
	return nil
}
