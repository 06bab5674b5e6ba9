package response

import (
	"movie-catalog/internal/data/entity"
)

// MovieResponse is the full external representation of a Movie.
type MovieResponse struct {
	ID          string  `json:"id"`
	Title       string  `json:"title"`
	Genre       string  `json:"genre"`
	ReleaseYear int     `json:"release_year"`
	Description string  `json:"description"`
	TrailerURL  string  `json:"trailer_url"`
	VideoURL    string  `json:"video_url"`
	DownloadURL *string `json:"download_url"`
	Likes       int     `json:"likes"`
	MoviePoster *string `json:"movie_poster"`
}

// MovieSummaryResponse is the narrowed shape returned by search.
type MovieSummaryResponse struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Genre       string `json:"genre"`
	ReleaseYear int    `json:"release_year"`
	Description string `json:"description"`
}

// RelatedMovieResponse is the narrowed shape returned by related lookup.
type RelatedMovieResponse struct {
	ID          string  `json:"id"`
	Title       string  `json:"title"`
	Genre       string  `json:"genre"`
	ReleaseYear int     `json:"release_year"`
	MoviePoster *string `json:"movie_poster"`
}

// MovieCreatedResponse acknowledges a create with the assigned id.
type MovieCreatedResponse struct {
	ID      string `json:"id"`
	Message string `json:"message"`
}

// Helper converters

func MovieToResponse(movie *entity.Movie) MovieResponse {
	return MovieResponse{
		ID:          movie.ID,
		Title:       movie.Title,
		Genre:       movie.Genre,
		ReleaseYear: movie.ReleaseYear,
		Description: movie.Description,
		TrailerURL:  movie.TrailerURL,
		VideoURL:    movie.VideoURL,
		DownloadURL: movie.DownloadURL,
		Likes:       movie.Likes,
		MoviePoster: movie.MoviePoster,
	}
}

func MoviesToResponse(movies []*entity.Movie) []MovieResponse {
	responses := make([]MovieResponse, len(movies))
	for i, movie := range movies {
		responses[i] = MovieToResponse(movie)
	}
	return responses
}

func MoviesToSummaryResponse(movies []*entity.Movie) []MovieSummaryResponse {
	responses := make([]MovieSummaryResponse, len(movies))
	for i, movie := range movies {
		responses[i] = MovieSummaryResponse{
			ID:          movie.ID,
			Title:       movie.Title,
			Genre:       movie.Genre,
			ReleaseYear: movie.ReleaseYear,
			Description: movie.Description,
		}
	}
	return responses
}

func MoviesToRelatedResponse(movies []*entity.Movie) []RelatedMovieResponse {
	responses := make([]RelatedMovieResponse, len(movies))
	for i, movie := range movies {
		responses[i] = RelatedMovieResponse{
			ID:          movie.ID,
			Title:       movie.Title,
			Genre:       movie.Genre,
			ReleaseYear: movie.ReleaseYear,
			MoviePoster: movie.MoviePoster,
		}
	}
	return responses
}
