package domain

import "time"

// DefaultCommentAuthor is used when a visitor leaves the name blank.
const DefaultCommentAuthor = "Anónimo"

// Comment is a public review. New comments stay hidden until an admin
// makes them visible.
type Comment struct {
	CommentID string    `json:"id"`
	Name      string    `json:"name"`
	Comment   string    `json:"comment"`
	IsVisible bool      `json:"isVisible"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// CommentVisibility sets the visibility flag of one comment.
type CommentVisibility struct {
	CommentID string
	IsVisible bool
}
