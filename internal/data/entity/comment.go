package entity

import (
	"time"
)

// Comment is immutable once created.
type Comment struct {
	ID          string    `db:"id"`
	MovieID     string    `db:"movie_id"`
	Email       string    `db:"email"`
	CommentText string    `db:"comment_text"`
	CreatedAt   time.Time `db:"created_at"`
}
