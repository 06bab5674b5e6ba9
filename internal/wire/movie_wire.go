package wire

import (
	"movie-catalog/internal/adaptor"

	"github.com/go-chi/chi/v5"
)

func wireMovie(r chi.Router, movieHandler *adaptor.MovieHandler) {
	// Public catalog routes
	r.Get("/movies", movieHandler.GetMovies)
	r.Get("/search", movieHandler.SearchMovies)
	r.Get("/movies/{id}", movieHandler.GetMovieByID)
	r.Get("/movies/{id}/related", movieHandler.GetRelatedMovies)

	// Reactions
	r.Post("/movies/{id}/like", movieHandler.LikeMovie)
	r.Post("/movies/{id}/unlike", movieHandler.UnlikeMovie)

	// Catalog management
	r.Post("/movies", movieHandler.CreateMovie)
	r.Put("/movies/{id}", movieHandler.UpdateMovie)
	r.Delete("/movies/{id}", movieHandler.DeleteMovie)
}
