package pgsql

import (
	"context"
	"regexp"
	"testing"
	"time"

	"github.com/SscSPs/currency_exchange_app/internal/apperrors"
	"github.com/SscSPs/currency_exchange_app/internal/core/domain"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/suite"
)

type CommentRepositoryTestSuite struct {
	suite.Suite
	mock pgxmock.PgxPoolIface
	repo *PgxCommentRepository
	ctx  context.Context
	now  time.Time
}

func (suite *CommentRepositoryTestSuite) SetupTest() {
	mock, err := pgxmock.NewPool()
	suite.Require().NoError(err)
	suite.mock = mock
	suite.repo = newPgxCommentRepository(mock)
	suite.ctx = context.Background()
	suite.now = time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
}

func (suite *CommentRepositoryTestSuite) TearDownTest() {
	suite.NoError(suite.mock.ExpectationsWereMet())
	suite.mock.Close()
}

func (suite *CommentRepositoryTestSuite) TestListComments_VisibleOnly() {
	rows := suite.mock.NewRows([]string{"comment_id", "name", "comment", "is_visible", "created_at", "updated_at"}).
		AddRow("k1", "Ana", "Great rates", true, suite.now, suite.now)
	suite.mock.ExpectQuery(regexp.QuoteMeta("WHERE is_visible = TRUE")).WillReturnRows(rows)

	got, err := suite.repo.ListComments(suite.ctx, true)

	suite.Require().NoError(err)
	suite.Require().Len(got, 1)
	suite.Equal("Ana", got[0].Name)
	suite.True(got[0].IsVisible)
}

func (suite *CommentRepositoryTestSuite) TestListComments_All() {
	rows := suite.mock.NewRows([]string{"comment_id", "name", "comment", "is_visible", "created_at", "updated_at"})
	suite.mock.ExpectQuery(regexp.QuoteMeta("FROM comments ORDER BY")).
		WillReturnRows(rows)

	got, err := suite.repo.ListComments(suite.ctx, false)
	suite.NoError(err)
	suite.NotNil(got)
	suite.Empty(got)
}

func (suite *CommentRepositoryTestSuite) TestSaveComment() {
	c := domain.Comment{CommentID: "k2", Name: "Anónimo", Comment: "hola", CreatedAt: suite.now, UpdatedAt: suite.now}
	suite.mock.ExpectExec(regexp.QuoteMeta("INSERT INTO comments")).
		WithArgs("k2", "Anónimo", "hola", false, suite.now, suite.now).
		WillReturnResult(pgxmock.NewResult("INSERT", 1))

	suite.NoError(suite.repo.SaveComment(suite.ctx, c))
}

func (suite *CommentRepositoryTestSuite) TestUpdateCommentVisibility_Atomic() {
	updates := []domain.CommentVisibility{
		{CommentID: "k1", IsVisible: true},
		{CommentID: "gone", IsVisible: false},
	}
	suite.mock.ExpectBegin()
	suite.mock.ExpectExec(regexp.QuoteMeta("UPDATE comments SET is_visible")).
		WithArgs(true, suite.now, "k1").
		WillReturnResult(pgxmock.NewResult("UPDATE", 1))
	suite.mock.ExpectExec(regexp.QuoteMeta("UPDATE comments SET is_visible")).
		WithArgs(false, suite.now, "gone").
		WillReturnResult(pgxmock.NewResult("UPDATE", 0))
	suite.mock.ExpectRollback()

	err := suite.repo.UpdateCommentVisibility(suite.ctx, updates, suite.now)
	suite.ErrorIs(err, apperrors.ErrNotFound)
}

func (suite *CommentRepositoryTestSuite) TestUpdateCommentVisibility_Commit() {
	suite.mock.ExpectBegin()
	suite.mock.ExpectExec(regexp.QuoteMeta("UPDATE comments SET is_visible")).
		WithArgs(true, suite.now, "k1").
		WillReturnResult(pgxmock.NewResult("UPDATE", 1))
	suite.mock.ExpectCommit()

	suite.NoError(suite.repo.UpdateCommentVisibility(suite.ctx, []domain.CommentVisibility{{CommentID: "k1", IsVisible: true}}, suite.now))
}

func (suite *CommentRepositoryTestSuite) TestDeleteComments_ReportsCount() {
	ids := []string{"k1", "k2", "unknown"}
	suite.mock.ExpectExec(regexp.QuoteMeta("DELETE FROM comments WHERE comment_id = ANY($1)")).
		WithArgs(ids).
		WillReturnResult(pgxmock.NewResult("DELETE", 2))

	n, err := suite.repo.DeleteComments(suite.ctx, ids)
	suite.NoError(err)
	suite.Equal(int64(2), n)
}

func TestCommentRepository(t *testing.T) {
	suite.Run(t, new(CommentRepositoryTestSuite))
}
