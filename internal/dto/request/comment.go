package request

type CommentRequest struct {
	Email       string `json:"email" validate:"required"`
	CommentText string `json:"comment_text" validate:"required"`
}
