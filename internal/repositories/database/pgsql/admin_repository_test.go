package pgsql

import (
	"context"
	"regexp"
	"testing"
	"time"

	"github.com/SscSPs/currency_exchange_app/internal/apperrors"
	"github.com/SscSPs/currency_exchange_app/internal/core/domain"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAdminRepository_FindAdminByName(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	now := time.Now().UTC()
	repo := newPgxAdminRepository(mock)
	rows := mock.NewRows([]string{"admin_id", "name", "password_hash", "created_at", "created_by", "last_updated_at", "last_updated_by"}).
		AddRow("a1", "root", "$2a$10$hash", now, "system", now, "system")
	mock.ExpectQuery(regexp.QuoteMeta("FROM admins WHERE name = $1")).WithArgs("root").WillReturnRows(rows)

	admin, err := repo.FindAdminByName(context.Background(), "root")
	require.NoError(t, err)
	assert.Equal(t, "a1", admin.AdminID)
	assert.Equal(t, "$2a$10$hash", admin.PasswordHash)

	mock.ExpectQuery(regexp.QuoteMeta("FROM admins WHERE admin_id = $1")).WithArgs("zz").
		WillReturnRows(mock.NewRows([]string{"admin_id"}))
	_, err = repo.FindAdminByID(context.Background(), "zz")
	assert.ErrorIs(t, err, apperrors.ErrNotFound)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestAdminRepository_SaveAdmin_Duplicate(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := newPgxAdminRepository(mock)
	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO admins")).
		WillReturnError(&pgconn.PgError{Code: pgUniqueViolation})

	err = repo.SaveAdmin(context.Background(), domain.Admin{AdminID: "a2", Name: "root"})
	assert.ErrorIs(t, err, apperrors.ErrDuplicate)
	assert.NoError(t, mock.ExpectationsWereMet())
}
