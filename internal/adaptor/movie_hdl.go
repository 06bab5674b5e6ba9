package adaptor

import (
	"fmt"
	"io"
	"net/http"
	"path/filepath"
	"strings"

	"movie-catalog/internal/dto/request"
	"movie-catalog/internal/dto/response"
	"movie-catalog/internal/usecase"
	"movie-catalog/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

const maxUploadSize = 32 << 20

var allowedPosterExts = map[string]bool{
	".jpg":  true,
	".jpeg": true,
	".png":  true,
	".webp": true,
}

type MovieHandler struct {
	service usecase.CatalogService
	log     *zap.Logger
}

func NewMovieHandler(service usecase.CatalogService, log *zap.Logger) *MovieHandler {
	return &MovieHandler{
		service: service,
		log:     log.With(zap.String("handler", "movie")),
	}
}

func (h *MovieHandler) GetMovies(w http.ResponseWriter, r *http.Request) {
	req := &request.PaginatedRequest{
		Page:  utils.ParseInt(r.URL.Query().Get("page"), request.DefaultPage),
		Limit: utils.ParseInt(r.URL.Query().Get("limit"), request.DefaultLimit),
	}

	movies, err := h.service.List(r.Context(), req)
	if err != nil {
		handleServiceError(w, h.log, err, "list movies")
		return
	}

	utils.ResponseJSON(w, http.StatusOK, movies)
}

func (h *MovieHandler) SearchMovies(w http.ResponseWriter, r *http.Request) {
	movies, err := h.service.Search(r.Context(), r.URL.Query().Get("q"))
	if err != nil {
		handleServiceError(w, h.log, err, "search movies")
		return
	}

	utils.ResponseJSON(w, http.StatusOK, movies)
}

func (h *MovieHandler) GetMovieByID(w http.ResponseWriter, r *http.Request) {
	movie, err := h.service.Get(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		handleServiceError(w, h.log, err, "get movie")
		return
	}

	utils.ResponseJSON(w, http.StatusOK, movie)
}

func (h *MovieHandler) GetRelatedMovies(w http.ResponseWriter, r *http.Request) {
	movies, err := h.service.Related(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		handleServiceError(w, h.log, err, "get related movies")
		return
	}

	utils.ResponseJSON(w, http.StatusOK, movies)
}

func (h *MovieHandler) CreateMovie(w http.ResponseWriter, r *http.Request) {
	req, upload, err := parseMovieForm(r)
	if err != nil {
		handleServiceError(w, h.log, err, "create movie")
		return
	}

	id, err := h.service.Create(r.Context(), req, upload)
	if err != nil {
		handleServiceError(w, h.log, err, "create movie")
		return
	}

	h.log.Info("Movie created", zap.String("id", id))
	utils.ResponseJSON(w, http.StatusCreated, response.MovieCreatedResponse{
		ID:      id,
		Message: "Movie added successfully",
	})
}

func (h *MovieHandler) UpdateMovie(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	req, upload, err := parseMovieForm(r)
	if err != nil {
		handleServiceError(w, h.log, err, "update movie")
		return
	}

	if err := h.service.Update(r.Context(), id, req, upload); err != nil {
		handleServiceError(w, h.log, err, "update movie")
		return
	}

	h.log.Info("Movie updated", zap.String("id", id))
	utils.ResponseMessage(w, http.StatusOK, "Movie updated successfully")
}

func (h *MovieHandler) DeleteMovie(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	if err := h.service.Delete(r.Context(), id); err != nil {
		handleServiceError(w, h.log, err, "delete movie")
		return
	}

	h.log.Info("Movie deleted", zap.String("id", id))
	utils.ResponseMessage(w, http.StatusOK, "Movie deleted successfully")
}

func (h *MovieHandler) LikeMovie(w http.ResponseWriter, r *http.Request) {
	if err := h.service.Like(r.Context(), chi.URLParam(r, "id")); err != nil {
		handleServiceError(w, h.log, err, "like movie")
		return
	}

	utils.ResponseMessage(w, http.StatusOK, "Movie liked")
}

func (h *MovieHandler) UnlikeMovie(w http.ResponseWriter, r *http.Request) {
	if err := h.service.Unlike(r.Context(), chi.URLParam(r, "id")); err != nil {
		handleServiceError(w, h.log, err, "unlike movie")
		return
	}

	utils.ResponseMessage(w, http.StatusOK, "Movie unliked")
}

// parseMovieForm extracts the movie fields and the optional poster file
// from a multipart form. The poster is absent without error when the
// client sent no movie_poster part.
func parseMovieForm(r *http.Request) (*request.MovieRequest, *request.PosterUpload, error) {
	if err := r.ParseMultipartForm(maxUploadSize); err != nil {
		return nil, nil, fmt.Errorf("%w: invalid multipart form", utils.ErrBadRequest)
	}

	req := &request.MovieRequest{
		Title:       r.FormValue("title"),
		Genre:       r.FormValue("genre"),
		ReleaseYear: utils.ParseInt(r.FormValue("release_year"), 0),
		Description: r.FormValue("description"),
		TrailerURL:  r.FormValue("trailer_url"),
		VideoURL:    r.FormValue("video_url"),
	}
	if v := r.FormValue("download_url"); v != "" {
		req.DownloadURL = &v
	}

	file, header, err := r.FormFile("movie_poster")
	if err == http.ErrMissingFile {
		return req, nil, nil
	}
	if err != nil {
		return nil, nil, fmt.Errorf("%w: invalid poster upload", utils.ErrBadRequest)
	}
	defer file.Close()

	ext := strings.ToLower(filepath.Ext(header.Filename))
	if !allowedPosterExts[ext] {
		return nil, nil, fmt.Errorf("%w: poster must be a jpg, jpeg, png or webp image", utils.ErrBadRequest)
	}

	data, err := io.ReadAll(file)
	if err != nil {
		return nil, nil, fmt.Errorf("read poster upload: %w", err)
	}

	return req, &request.PosterUpload{FileName: header.Filename, Data: data}, nil
}
