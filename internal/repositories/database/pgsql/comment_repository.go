package pgsql

import (
	"context"
	"fmt"
	"time"

	"github.com/SscSPs/currency_exchange_app/internal/apperrors"
	"github.com/SscSPs/currency_exchange_app/internal/core/domain"
	portsrepo "github.com/SscSPs/currency_exchange_app/internal/core/ports/repositories"
	"github.com/SscSPs/currency_exchange_app/internal/models"
	"github.com/SscSPs/currency_exchange_app/internal/utils/mapping"
	"github.com/jackc/pgx/v5"
)

type PgxCommentRepository struct {
	BaseRepository
}

func newPgxCommentRepository(pool DB) *PgxCommentRepository {
	return &PgxCommentRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

var _ portsrepo.CommentRepositoryFacade = (*PgxCommentRepository)(nil)

// ListComments retrieves comments oldest first.
func (r *PgxCommentRepository) ListComments(ctx context.Context, visibleOnly bool) ([]domain.Comment, error) {
	query := `
		SELECT comment_id, name, comment, is_visible, created_at, updated_at
		FROM comments`
	if visibleOnly {
		query += ` WHERE is_visible = TRUE`
	}
	query += ` ORDER BY created_at, comment_id;`

	rows, err := r.Pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query comments: %w", err)
	}
	defer rows.Close()

	modelComments, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (models.Comment, error) {
		var c models.Comment
		err := row.Scan(&c.CommentID, &c.Name, &c.Comment, &c.IsVisible, &c.CreatedAt, &c.UpdatedAt)
		return c, err
	})
	if err != nil {
		return nil, fmt.Errorf("failed to scan comments: %w", err)
	}
	return mapping.ToDomainCommentSlice(modelComments), nil
}

// SaveComment inserts a new comment.
func (r *PgxCommentRepository) SaveComment(ctx context.Context, comment domain.Comment) error {
	m := mapping.ToModelComment(comment)
	query := `
		INSERT INTO comments (comment_id, name, comment, is_visible, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6);
	`
	_, err := r.Pool.Exec(ctx, query, m.CommentID, m.Name, m.Comment, m.IsVisible, m.CreatedAt, m.UpdatedAt)
	if err != nil {
		return fmt.Errorf("failed to save comment %s: %w", m.CommentID, err)
	}
	return nil
}

// UpdateCommentVisibility applies all visibility changes in one transaction.
func (r *PgxCommentRepository) UpdateCommentVisibility(ctx context.Context, updates []domain.CommentVisibility, updatedAt time.Time) error {
	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}

	query := `UPDATE comments SET is_visible = $1, updated_at = $2 WHERE comment_id = $3;`
	for _, u := range updates {
		tag, err := tx.Exec(ctx, query, u.IsVisible, updatedAt, u.CommentID)
		if err != nil {
			_ = r.Rollback(ctx, tx)
			return fmt.Errorf("failed to update visibility of comment %s: %w", u.CommentID, err)
		}
		if tag.RowsAffected() == 0 {
			_ = r.Rollback(ctx, tx)
			return fmt.Errorf("comment %s: %w", u.CommentID, apperrors.ErrNotFound)
		}
	}

	return r.Commit(ctx, tx)
}

// DeleteComments removes the given comments. Unknown IDs are ignored.
func (r *PgxCommentRepository) DeleteComments(ctx context.Context, commentIDs []string) (int64, error) {
	tag, err := r.Pool.Exec(ctx, `DELETE FROM comments WHERE comment_id = ANY($1);`, commentIDs)
	if err != nil {
		return 0, fmt.Errorf("failed to delete comments: %w", err)
	}
	return tag.RowsAffected(), nil
}
