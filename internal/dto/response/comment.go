package response

import (
	"time"

	"movie-catalog/internal/data/entity"
)

type CommentResponse struct {
	ID          string    `json:"id"`
	Email       string    `json:"email"`
	CommentText string    `json:"comment_text"`
	CreatedAt   time.Time `json:"created_at"`
}

func CommentToResponse(comment *entity.Comment) CommentResponse {
	return CommentResponse{
		ID:          comment.ID,
		Email:       comment.Email,
		CommentText: comment.CommentText,
		CreatedAt:   comment.CreatedAt,
	}
}

func CommentsToResponse(comments []*entity.Comment) []CommentResponse {
	responses := make([]CommentResponse, len(comments))
	for i, comment := range comments {
		responses[i] = CommentToResponse(comment)
	}
	return responses
}
