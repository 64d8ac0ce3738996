package models

import "time"

// Comment is the row shape of the comments table.
type Comment struct {
	CommentID string    `db:"comment_id"`
	Name      string    `db:"name"`
	Comment   string    `db:"comment"`
	IsVisible bool      `db:"is_visible"`
	CreatedAt time.Time `db:"created_at"`
	UpdatedAt time.Time `db:"updated_at"`
}
