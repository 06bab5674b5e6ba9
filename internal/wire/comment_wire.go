package wire

import (
	"movie-catalog/internal/adaptor"

	"github.com/go-chi/chi/v5"
)

func wireComment(r chi.Router, commentHandler *adaptor.CommentHandler) {
	r.Get("/movies/{id}/comments", commentHandler.GetComments)
	r.Post("/movies/{id}/comments", commentHandler.CreateComment)
	r.Delete("/comments/{id}", commentHandler.DeleteComment)
}
