package pgsql

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/SscSPs/currency_exchange_app/internal/apperrors"
	"github.com/SscSPs/currency_exchange_app/internal/core/domain"
	portsrepo "github.com/SscSPs/currency_exchange_app/internal/core/ports/repositories"
	"github.com/SscSPs/currency_exchange_app/internal/models"
	"github.com/SscSPs/currency_exchange_app/internal/utils/mapping"
	"github.com/jackc/pgx/v5"
)

type PgxCountryRepository struct {
	BaseRepository
}

// newPgxCountryRepository creates a new repository for the price catalog.
func newPgxCountryRepository(pool DB) *PgxCountryRepository {
	return &PgxCountryRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

// Ensure implementation matches interface
var _ portsrepo.CountryRepositoryFacade = (*PgxCountryRepository)(nil)

const countryColumns = `country_id, name, currency_code, usd_price, enabled, flag_image, created_at, created_by, last_updated_at, last_updated_by`

func scanCountry(row pgx.Row) (models.Country, error) {
	var c models.Country
	err := row.Scan(
		&c.CountryID,
		&c.Name,
		&c.CurrencyCode,
		&c.USDPrice,
		&c.Enabled,
		&c.FlagImage,
		&c.CreatedAt,
		&c.CreatedBy,
		&c.LastUpdatedAt,
		&c.LastUpdatedBy,
	)
	return c, err
}

// ListCountries retrieves every country, oldest first.
func (r *PgxCountryRepository) ListCountries(ctx context.Context) ([]domain.Country, error) {
	query := `SELECT ` + countryColumns + `
		FROM countries
		ORDER BY created_at, country_id;`

	rows, err := r.Pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query countries: %w", err)
	}
	defer rows.Close()

	modelCountries, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (models.Country, error) {
		return scanCountry(row)
	})
	if err != nil {
		return nil, fmt.Errorf("failed to scan countries: %w", err)
	}

	return mapping.ToDomainCountrySlice(modelCountries), nil
}

// FindCountryByID retrieves a specific country.
func (r *PgxCountryRepository) FindCountryByID(ctx context.Context, countryID string) (*domain.Country, error) {
	query := `SELECT ` + countryColumns + ` FROM countries WHERE country_id = $1;`

	modelCountry, err := scanCountry(r.Pool.QueryRow(ctx, query, countryID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find country %s: %w", countryID, err)
	}

	domainCountry := mapping.ToDomainCountry(modelCountry)
	return &domainCountry, nil
}

// SaveCountry inserts a new country.
func (r *PgxCountryRepository) SaveCountry(ctx context.Context, country domain.Country) error {
	m := mapping.ToModelCountry(country)
	query := `
		INSERT INTO countries (` + countryColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10);
	`
	_, err := r.Pool.Exec(ctx, query,
		m.CountryID,
		m.Name,
		m.CurrencyCode,
		m.USDPrice,
		m.Enabled,
		m.FlagImage,
		m.CreatedAt,
		m.CreatedBy,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("%w: currency %s is already listed", apperrors.ErrDuplicate, m.CurrencyCode)
		}
		return fmt.Errorf("failed to save country %s: %w", m.CountryID, err)
	}
	return nil
}

// buildCountryUpdate renders the SET clause for the non-nil fields of patch.
func buildCountryUpdate(patch domain.CountryPatch, updatedBy string, updatedAt time.Time) (string, []any) {
	sets := make([]string, 0, 7)
	args := make([]any, 0, 8)
	add := func(column string, value any) {
		args = append(args, value)
		sets = append(sets, fmt.Sprintf("%s = $%d", column, len(args)))
	}

	if patch.Name != nil {
		add("name", *patch.Name)
	}
	if patch.CurrencyCode != nil {
		add("currency_code", *patch.CurrencyCode)
	}
	if patch.USDPrice != nil {
		add("usd_price", *patch.USDPrice)
	}
	if patch.FlagImage != nil {
		add("flag_image", *patch.FlagImage)
	}
	if patch.Enabled != nil {
		add("enabled", *patch.Enabled)
	}
	add("last_updated_at", updatedAt)
	add("last_updated_by", updatedBy)

	args = append(args, patch.CountryID)
	query := fmt.Sprintf("UPDATE countries SET %s WHERE country_id = $%d;", strings.Join(sets, ", "), len(args))
	return query, args
}

// UpdateCountries applies all patches in one transaction.
func (r *PgxCountryRepository) UpdateCountries(ctx context.Context, patches []domain.CountryPatch, updatedBy string, updatedAt time.Time) error {
	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}

	for _, patch := range patches {
		query, args := buildCountryUpdate(patch, updatedBy, updatedAt)
		tag, err := tx.Exec(ctx, query, args...)
		if err != nil {
			_ = r.Rollback(ctx, tx)
			if isUniqueViolation(err) {
				return fmt.Errorf("%w: currency code already listed (country %s)", apperrors.ErrDuplicate, patch.CountryID)
			}
			return fmt.Errorf("failed to update country %s: %w", patch.CountryID, err)
		}
		if tag.RowsAffected() == 0 {
			_ = r.Rollback(ctx, tx)
			return fmt.Errorf("country %s: %w", patch.CountryID, apperrors.ErrNotFound)
		}
	}

	return r.Commit(ctx, tx)
}

// SetCountryEnabled flips the enabled flag of a country.
func (r *PgxCountryRepository) SetCountryEnabled(ctx context.Context, countryID string, enabled bool, updatedBy string, updatedAt time.Time) error {
	query := `UPDATE countries SET enabled = $1, last_updated_at = $2, last_updated_by = $3 WHERE country_id = $4;`
	tag, err := r.Pool.Exec(ctx, query, enabled, updatedAt, updatedBy, countryID)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("%w: another enabled country uses the same currency", apperrors.ErrDuplicate)
		}
		return fmt.Errorf("failed to set enabled on country %s: %w", countryID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

// DeleteCountry removes a country.
func (r *PgxCountryRepository) DeleteCountry(ctx context.Context, countryID string) error {
	tag, err := r.Pool.Exec(ctx, `DELETE FROM countries WHERE country_id = $1;`, countryID)
	if err != nil {
		return fmt.Errorf("failed to delete country %s: %w", countryID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
