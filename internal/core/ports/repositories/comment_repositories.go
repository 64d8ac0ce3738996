package repositories

import (
	"context"
	"time"

	"github.com/SscSPs/currency_exchange_app/internal/core/domain"
)

// CommentReader defines read operations for comments
type CommentReader interface {
	// ListComments retrieves comments oldest first, optionally only the visible ones.
	ListComments(ctx context.Context, visibleOnly bool) ([]domain.Comment, error)
}

// CommentWriter defines write operations for comments
type CommentWriter interface {
	// SaveComment inserts a new comment.
	SaveComment(ctx context.Context, comment domain.Comment) error

	// UpdateCommentVisibility applies all visibility changes atomically.
	UpdateCommentVisibility(ctx context.Context, updates []domain.CommentVisibility, updatedAt time.Time) error

	// DeleteComments removes the given comments and reports how many existed.
	DeleteComments(ctx context.Context, commentIDs []string) (int64, error)
}

// CommentRepositoryFacade combines all comment-related repository interfaces
type CommentRepositoryFacade interface {
	CommentReader
	CommentWriter
}
