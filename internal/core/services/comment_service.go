package services

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/SscSPs/currency_exchange_app/internal/apperrors"
	"github.com/SscSPs/currency_exchange_app/internal/core/domain"
	portsrepo "github.com/SscSPs/currency_exchange_app/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/currency_exchange_app/internal/core/ports/services"
	"github.com/SscSPs/currency_exchange_app/internal/dto"
	"github.com/SscSPs/currency_exchange_app/internal/platform/metrics"
	"github.com/google/uuid"
)

const (
	maxCommentLength = 2000
	maxAuthorLength  = 100
)

type commentService struct {
	BaseService
	commentRepo portsrepo.CommentRepositoryFacade
}

// NewCommentService creates the comments board service.
func NewCommentService(commentRepo portsrepo.CommentRepositoryFacade) portssvc.CommentSvcFacade {
	return &commentService{BaseService: newBaseService("comments"), commentRepo: commentRepo}
}

func (s *commentService) list(ctx context.Context, visibleOnly bool) ([]domain.Comment, error) {
	comments, err := s.commentRepo.ListComments(ctx, visibleOnly)
	if err != nil {
		s.LogError(ctx, err, "Failed to list comments", slog.Bool("visible_only", visibleOnly))
		return nil, fmt.Errorf("failed to list comments in service: %w", err)
	}
	if comments == nil {
		return []domain.Comment{}, nil
	}
	return comments, nil
}

func (s *commentService) ListVisibleComments(ctx context.Context) ([]domain.Comment, error) {
	return s.list(ctx, true)
}

func (s *commentService) ListAllComments(ctx context.Context) ([]domain.Comment, error) {
	return s.list(ctx, false)
}

func (s *commentService) CreateComment(ctx context.Context, req dto.CreateCommentRequest) (*domain.Comment, error) {
	text := strings.TrimSpace(req.Comment)
	if text == "" {
		return nil, fmt.Errorf("%w: comment cannot be blank", apperrors.ErrValidation)
	}
	if utf8.RuneCountInString(text) > maxCommentLength {
		return nil, fmt.Errorf("%w: comment is longer than %d characters", apperrors.ErrValidation, maxCommentLength)
	}

	name := strings.TrimSpace(req.Name)
	if name == "" {
		name = domain.DefaultCommentAuthor
	}
	if utf8.RuneCountInString(name) > maxAuthorLength {
		return nil, fmt.Errorf("%w: name is longer than %d characters", apperrors.ErrValidation, maxAuthorLength)
	}

	now := time.Now().UTC()
	comment := domain.Comment{
		CommentID: uuid.NewString(),
		Name:      name,
		Comment:   text,
		IsVisible: false,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := s.commentRepo.SaveComment(ctx, comment); err != nil {
		s.LogError(ctx, err, "Failed to save comment")
		return nil, fmt.Errorf("failed to create comment in service: %w", err)
	}

	metrics.RecordCommentPosted()
	s.LogInfo(ctx, "Comment received", slog.String("comment_id", comment.CommentID))
	return &comment, nil
}

func (s *commentService) UpdateVisibility(ctx context.Context, updates []dto.CommentVisibilityUpdate, adminID string) error {
	if len(updates) == 0 {
		return fmt.Errorf("%w: no comments to update", apperrors.ErrValidation)
	}
	changes := make([]domain.CommentVisibility, len(updates))
	for i, u := range updates {
		changes[i] = u.ToCommentVisibility()
	}

	if err := s.commentRepo.UpdateCommentVisibility(ctx, changes, time.Now().UTC()); err != nil {
		s.LogError(ctx, err, "Failed to update comment visibility", slog.Int("count", len(changes)))
		return fmt.Errorf("failed to update comment visibility in service: %w", err)
	}
	s.LogInfo(ctx, "Comment visibility updated", slog.Int("count", len(changes)), slog.String("admin_id", adminID))
	return nil
}

func (s *commentService) DeleteComments(ctx context.Context, ids []string, adminID string) (int64, error) {
	unique := make([]string, 0, len(ids))
	seen := make(map[string]struct{}, len(ids))
	for _, id := range ids {
		id = strings.TrimSpace(id)
		if id == "" {
			continue
		}
		if _, dup := seen[id]; dup {
			continue
		}
		seen[id] = struct{}{}
		unique = append(unique, id)
	}
	if len(unique) == 0 {
		return 0, fmt.Errorf("%w: no comments to delete", apperrors.ErrValidation)
	}

	deleted, err := s.commentRepo.DeleteComments(ctx, unique)
	if err != nil {
		s.LogError(ctx, err, "Failed to delete comments", slog.Int("count", len(unique)))
		return 0, fmt.Errorf("failed to delete comments in service: %w", err)
	}
	s.LogInfo(ctx, "Comments deleted", slog.Int64("deleted", deleted), slog.String("admin_id", adminID))
	return deleted, nil
}
