package pgsql

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/SscSPs/currency_exchange_app/internal/apperrors"
	"github.com/SscSPs/currency_exchange_app/internal/core/domain"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

type CountryRepositoryTestSuite struct {
	suite.Suite
	mock pgxmock.PgxPoolIface
	repo *PgxCountryRepository
	ctx  context.Context
	now  time.Time
}

func (suite *CountryRepositoryTestSuite) SetupTest() {
	mock, err := pgxmock.NewPool()
	suite.Require().NoError(err)
	suite.mock = mock
	suite.repo = newPgxCountryRepository(mock)
	suite.ctx = context.Background()
	suite.now = time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
}

func (suite *CountryRepositoryTestSuite) TearDownTest() {
	suite.NoError(suite.mock.ExpectationsWereMet())
	suite.mock.Close()
}

func (suite *CountryRepositoryTestSuite) countryRows() *pgxmock.Rows {
	return suite.mock.NewRows([]string{
		"country_id", "name", "currency_code", "usd_price", "enabled", "flag_image",
		"created_at", "created_by", "last_updated_at", "last_updated_by",
	})
}

func (suite *CountryRepositoryTestSuite) TestListCountries_CatalogOrder() {
	rows := suite.countryRows().
		AddRow("c1", "Argentina", "ARS", 1000.0, true, "ar.png", suite.now, "system", suite.now, "system").
		AddRow("c2", "Brasil", "BRL", 5.0, false, "", suite.now, "system", suite.now, "admin-1")
	suite.mock.ExpectQuery(regexp.QuoteMeta("FROM countries")).WillReturnRows(rows)

	got, err := suite.repo.ListCountries(suite.ctx)

	suite.Require().NoError(err)
	suite.Require().Len(got, 2)
	suite.Equal("ARS", got[0].CurrencyCode)
	suite.Equal(1000.0, got[0].USDPrice)
	suite.False(got[1].Enabled)
	suite.Equal("admin-1", got[1].LastUpdatedBy)
}

func (suite *CountryRepositoryTestSuite) TestFindCountryByID_NotFound() {
	suite.mock.ExpectQuery(regexp.QuoteMeta("WHERE country_id = $1")).
		WithArgs("missing").
		WillReturnRows(suite.countryRows())

	_, err := suite.repo.FindCountryByID(suite.ctx, "missing")
	suite.ErrorIs(err, apperrors.ErrNotFound)
}

func (suite *CountryRepositoryTestSuite) TestSaveCountry_DuplicateCurrency() {
	country := domain.Country{CountryID: "c3", Name: "Arg 2", CurrencyCode: "ARS", USDPrice: 1, Enabled: true}
	suite.mock.ExpectExec(regexp.QuoteMeta("INSERT INTO countries")).
		WithArgs("c3", "Arg 2", "ARS", 1.0, true, "", pgxmock.AnyArg(), pgxmock.AnyArg(), pgxmock.AnyArg(), pgxmock.AnyArg()).
		WillReturnError(&pgconn.PgError{Code: "23505"})

	err := suite.repo.SaveCountry(suite.ctx, country)
	suite.ErrorIs(err, apperrors.ErrDuplicate)
}

func (suite *CountryRepositoryTestSuite) TestUpdateCountries_CommitsAllPatches() {
	price := 1100.0
	enabled := false
	patches := []domain.CountryPatch{
		{CountryID: "c1", USDPrice: &price},
		{CountryID: "c2", Enabled: &enabled},
	}

	suite.mock.ExpectBegin()
	suite.mock.ExpectExec(regexp.QuoteMeta("UPDATE countries SET usd_price = $1, last_updated_at = $2, last_updated_by = $3 WHERE country_id = $4")).
		WithArgs(price, suite.now, "admin-1", "c1").
		WillReturnResult(pgxmock.NewResult("UPDATE", 1))
	suite.mock.ExpectExec(regexp.QuoteMeta("UPDATE countries SET enabled = $1")).
		WithArgs(enabled, suite.now, "admin-1", "c2").
		WillReturnResult(pgxmock.NewResult("UPDATE", 1))
	suite.mock.ExpectCommit()

	err := suite.repo.UpdateCountries(suite.ctx, patches, "admin-1", suite.now)
	suite.NoError(err)
}

func (suite *CountryRepositoryTestSuite) TestUpdateCountries_UnknownIDRollsBack() {
	name := "Chile"
	patches := []domain.CountryPatch{
		{CountryID: "c1", Name: &name},
		{CountryID: "nope", Name: &name},
	}

	suite.mock.ExpectBegin()
	suite.mock.ExpectExec(regexp.QuoteMeta("UPDATE countries")).
		WithArgs(name, suite.now, "admin-1", "c1").
		WillReturnResult(pgxmock.NewResult("UPDATE", 1))
	suite.mock.ExpectExec(regexp.QuoteMeta("UPDATE countries")).
		WithArgs(name, suite.now, "admin-1", "nope").
		WillReturnResult(pgxmock.NewResult("UPDATE", 0))
	suite.mock.ExpectRollback()

	err := suite.repo.UpdateCountries(suite.ctx, patches, "admin-1", suite.now)
	suite.ErrorIs(err, apperrors.ErrNotFound)
}

func (suite *CountryRepositoryTestSuite) TestUpdateCountries_DatabaseErrorRollsBack() {
	code := "CLP"
	suite.mock.ExpectBegin()
	suite.mock.ExpectExec(regexp.QuoteMeta("UPDATE countries")).
		WillReturnError(errors.New("connection reset"))
	suite.mock.ExpectRollback()

	err := suite.repo.UpdateCountries(suite.ctx, []domain.CountryPatch{{CountryID: "c1", CurrencyCode: &code}}, "admin-1", suite.now)
	suite.Error(err)
	suite.NotErrorIs(err, apperrors.ErrNotFound)
}

func (suite *CountryRepositoryTestSuite) TestUpdateCountries_CodeSwapConflictsAndRollsBack() {
	ars, brl := "ARS", "BRL"
	patches := []domain.CountryPatch{
		{CountryID: "c1", CurrencyCode: &brl},
		{CountryID: "c2", CurrencyCode: &ars},
	}

	// c2 still holds BRL when c1 takes it, so the enabled-code index fires on the first statement.
	suite.mock.ExpectBegin()
	suite.mock.ExpectExec(regexp.QuoteMeta("UPDATE countries")).
		WithArgs(brl, suite.now, "admin-1", "c1").
		WillReturnError(&pgconn.PgError{Code: "23505"})
	suite.mock.ExpectRollback()

	err := suite.repo.UpdateCountries(suite.ctx, patches, "admin-1", suite.now)
	suite.ErrorIs(err, apperrors.ErrDuplicate)
}

func (suite *CountryRepositoryTestSuite) TestSetCountryEnabled() {
	suite.mock.ExpectExec(regexp.QuoteMeta("UPDATE countries SET enabled = $1")).
		WithArgs(true, suite.now, "admin-1", "c1").
		WillReturnResult(pgxmock.NewResult("UPDATE", 1))
	suite.NoError(suite.repo.SetCountryEnabled(suite.ctx, "c1", true, "admin-1", suite.now))

	suite.mock.ExpectExec(regexp.QuoteMeta("UPDATE countries SET enabled = $1")).
		WithArgs(false, suite.now, "admin-1", "ghost").
		WillReturnResult(pgxmock.NewResult("UPDATE", 0))
	suite.ErrorIs(suite.repo.SetCountryEnabled(suite.ctx, "ghost", false, "admin-1", suite.now), apperrors.ErrNotFound)
}

func (suite *CountryRepositoryTestSuite) TestDeleteCountry() {
	suite.mock.ExpectExec(regexp.QuoteMeta("DELETE FROM countries")).
		WithArgs("c1").
		WillReturnResult(pgxmock.NewResult("DELETE", 1))
	suite.NoError(suite.repo.DeleteCountry(suite.ctx, "c1"))

	suite.mock.ExpectExec(regexp.QuoteMeta("DELETE FROM countries")).
		WithArgs("c1").
		WillReturnResult(pgxmock.NewResult("DELETE", 0))
	suite.ErrorIs(suite.repo.DeleteCountry(suite.ctx, "c1"), apperrors.ErrNotFound)
}

func TestCountryRepository(t *testing.T) {
	suite.Run(t, new(CountryRepositoryTestSuite))
}

func TestBuildCountryUpdate_OnlyAuditColumns(t *testing.T) {
	at := time.Unix(0, 0)
	query, args := buildCountryUpdate(domain.CountryPatch{CountryID: "c9"}, "admin-1", at)

	assert.Equal(t, "UPDATE countries SET last_updated_at = $1, last_updated_by = $2 WHERE country_id = $3;", query)
	require.Len(t, args, 3)
	assert.Equal(t, "c9", args[2])
}
