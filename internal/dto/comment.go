package dto

import (
	"time"

	"github.com/SscSPs/currency_exchange_app/internal/core/domain"
)

// CreateCommentRequest is what a visitor posts. Name is optional.
type CreateCommentRequest struct {
	Name    string `json:"name"`
	Comment string `json:"comment" binding:"required"`
}

// CommentVisibilityUpdate is one element of the bulk visibility update.
type CommentVisibilityUpdate struct {
	ID        string `json:"id" binding:"required"`
	IsVisible *bool  `json:"isVisible" binding:"required"`
}

// DeleteCommentsRequest lists the comments to remove.
type DeleteCommentsRequest struct {
	IDs []string `json:"ids" binding:"required,min=1,dive,required"`
}

// CommentResponse defines the data returned for a comment.
type CommentResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Comment   string    `json:"comment"`
	IsVisible bool      `json:"isVisible"`
	CreatedAt time.Time `json:"createdAt"`
}

// CreateCommentResponse wraps a newly created comment.
type CreateCommentResponse struct {
	Message string          `json:"message"`
	Comment CommentResponse `json:"comment"`
}

// DeleteCommentsResponse reports how many comments were removed.
type DeleteCommentsResponse struct {
	Message string `json:"message"`
	Deleted int64  `json:"deleted"`
}

// ToCommentResponse converts a domain.Comment to CommentResponse DTO
func ToCommentResponse(c *domain.Comment) CommentResponse {
	return CommentResponse{
		ID:        c.CommentID,
		Name:      c.Name,
		Comment:   c.Comment,
		IsVisible: c.IsVisible,
		CreatedAt: c.CreatedAt,
	}
}

// ToListCommentResponse converts a slice of domain.Comment to CommentResponse DTOs
func ToListCommentResponse(comments []domain.Comment) []CommentResponse {
	res := make([]CommentResponse, len(comments))
	for i := range comments {
		res[i] = ToCommentResponse(&comments[i])
	}
	return res
}

// ToCommentVisibility converts a bulk visibility element into its domain form.
func (u CommentVisibilityUpdate) ToCommentVisibility() domain.CommentVisibility {
	visible := false
	if u.IsVisible != nil {
		visible = *u.IsVisible
	}
	return domain.CommentVisibility{CommentID: u.ID, IsVisible: visible}
}
