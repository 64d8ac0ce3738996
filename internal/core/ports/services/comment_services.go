package services

import (
	"context"

	"github.com/SscSPs/currency_exchange_app/internal/core/domain"
	"github.com/SscSPs/currency_exchange_app/internal/dto"
)

// CommentReaderSvc defines read operations for comments
type CommentReaderSvc interface {
	ListVisibleComments(ctx context.Context) ([]domain.Comment, error)
	ListAllComments(ctx context.Context) ([]domain.Comment, error)
}

// CommentWriterSvc defines write operations for comments
type CommentWriterSvc interface {
	// CreateComment stores a visitor comment, hidden until moderated.
	CreateComment(ctx context.Context, req dto.CreateCommentRequest) (*domain.Comment, error)
	UpdateVisibility(ctx context.Context, updates []dto.CommentVisibilityUpdate, adminID string) error
	DeleteComments(ctx context.Context, ids []string, adminID string) (int64, error)
}

// CommentSvcFacade combines all comment-related service interfaces
type CommentSvcFacade interface {
	CommentReaderSvc
	CommentWriterSvc
}
