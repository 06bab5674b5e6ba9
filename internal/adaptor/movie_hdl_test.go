package adaptor

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"

	"movie-catalog/internal/dto/request"
	"movie-catalog/internal/dto/response"
	"movie-catalog/pkg/utils"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newMovieRouter(svc *stubCatalogService) *chi.Mux {
	h := NewMovieHandler(svc, zap.NewNop())
	r := chi.NewRouter()
	r.Get("/movies", h.GetMovies)
	r.Get("/search", h.SearchMovies)
	r.Get("/movies/{id}", h.GetMovieByID)
	r.Get("/movies/{id}/related", h.GetRelatedMovies)
	r.Post("/movies", h.CreateMovie)
	r.Put("/movies/{id}", h.UpdateMovie)
	r.Delete("/movies/{id}", h.DeleteMovie)
	r.Post("/movies/{id}/like", h.LikeMovie)
	r.Post("/movies/{id}/unlike", h.UnlikeMovie)
	return r
}

func decodeBody(t *testing.T, rec *httptest.ResponseRecorder, v any) {
	t.Helper()
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), v))
}

func movieForm(t *testing.T, posterName string) (*bytes.Buffer, string) {
	t.Helper()
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)

	fields := map[string]string{
		"title":        "Inception",
		"genre":        "Sci-Fi",
		"release_year": "2010",
		"description":  "A heist inside dreams",
		"trailer_url":  "https://example.com/trailer",
		"video_url":    "https://example.com/video",
	}
	for name, value := range fields {
		require.NoError(t, w.WriteField(name, value))
	}

	if posterName != "" {
		part, err := w.CreateFormFile("movie_poster", posterName)
		require.NoError(t, err)
		_, err = part.Write([]byte("fake image bytes"))
		require.NoError(t, err)
	}

	require.NoError(t, w.Close())
	return &buf, w.FormDataContentType()
}

func TestGetMoviesParsesPagination(t *testing.T) {
	var got *request.PaginatedRequest
	svc := &stubCatalogService{
		listFn: func(_ context.Context, req *request.PaginatedRequest) ([]response.MovieResponse, error) {
			got = req
			return []response.MovieResponse{}, nil
		},
	}

	rec := httptest.NewRecorder()
	newMovieRouter(svc).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/movies?page=3&limit=5", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	require.NotNil(t, got)
	assert.Equal(t, 3, got.Page)
	assert.Equal(t, 5, got.Limit)
	assert.JSONEq(t, "[]", rec.Body.String())
}

func TestGetMoviesDefaultsPagination(t *testing.T) {
	var got *request.PaginatedRequest
	svc := &stubCatalogService{
		listFn: func(_ context.Context, req *request.PaginatedRequest) ([]response.MovieResponse, error) {
			got = req
			return []response.MovieResponse{}, nil
		},
	}

	rec := httptest.NewRecorder()
	newMovieRouter(svc).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/movies?page=abc", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, request.DefaultPage, got.Page)
	assert.Equal(t, request.DefaultLimit, got.Limit)
}

func TestSearchMoviesMissingQuery(t *testing.T) {
	svc := &stubCatalogService{
		searchFn: func(_ context.Context, query string) ([]response.MovieSummaryResponse, error) {
			return nil, fmt.Errorf("%w: query parameter 'q' is required", utils.ErrBadRequest)
		},
	}

	rec := httptest.NewRecorder()
	newMovieRouter(svc).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/search", nil))

	assert.Equal(t, http.StatusBadRequest, rec.Code)

	var body map[string]string
	decodeBody(t, rec, &body)
	assert.Contains(t, body, "error")
}

func TestGetMovieByIDNotFound(t *testing.T) {
	svc := &stubCatalogService{
		getFn: func(_ context.Context, movieID string) (*response.MovieResponse, error) {
			return nil, fmt.Errorf("movie %w", utils.ErrNotFound)
		},
	}

	rec := httptest.NewRecorder()
	newMovieRouter(svc).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/movies/missing", nil))

	assert.Equal(t, http.StatusNotFound, rec.Code)

	var body map[string]string
	decodeBody(t, rec, &body)
	assert.Equal(t, "movie not found", body["error"])
}

func TestGetMovieByID(t *testing.T) {
	svc := &stubCatalogService{
		getFn: func(_ context.Context, movieID string) (*response.MovieResponse, error) {
			return &response.MovieResponse{ID: movieID, Title: "Inception"}, nil
		},
	}

	rec := httptest.NewRecorder()
	newMovieRouter(svc).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/movies/abc", nil))

	assert.Equal(t, http.StatusOK, rec.Code)

	var body response.MovieResponse
	decodeBody(t, rec, &body)
	assert.Equal(t, "abc", body.ID)
}

func TestGetRelatedMovies(t *testing.T) {
	svc := &stubCatalogService{
		relatedFn: func(_ context.Context, movieID string) ([]response.RelatedMovieResponse, error) {
			return []response.RelatedMovieResponse{{ID: "other", Title: "Other"}}, nil
		},
	}

	rec := httptest.NewRecorder()
	newMovieRouter(svc).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/movies/abc/related", nil))

	assert.Equal(t, http.StatusOK, rec.Code)

	var body []response.RelatedMovieResponse
	decodeBody(t, rec, &body)
	require.Len(t, body, 1)
	assert.Equal(t, "other", body[0].ID)
}

func TestCreateMovieWithPoster(t *testing.T) {
	var gotReq *request.MovieRequest
	var gotUpload *request.PosterUpload
	svc := &stubCatalogService{
		createFn: func(_ context.Context, req *request.MovieRequest, upload *request.PosterUpload) (string, error) {
			gotReq, gotUpload = req, upload
			return "new-id", nil
		},
	}

	body, contentType := movieForm(t, "poster.jpg")
	req := httptest.NewRequest(http.MethodPost, "/movies", body)
	req.Header.Set("Content-Type", contentType)

	rec := httptest.NewRecorder()
	newMovieRouter(svc).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusCreated, rec.Code)

	var resp response.MovieCreatedResponse
	decodeBody(t, rec, &resp)
	assert.Equal(t, "new-id", resp.ID)
	assert.Equal(t, "Movie added successfully", resp.Message)

	require.NotNil(t, gotReq)
	assert.Equal(t, "Inception", gotReq.Title)
	assert.Equal(t, 2010, gotReq.ReleaseYear)
	require.NotNil(t, gotUpload)
	assert.Equal(t, "poster.jpg", gotUpload.FileName)
	assert.Equal(t, []byte("fake image bytes"), gotUpload.Data)
}

func TestCreateMovieWithoutPoster(t *testing.T) {
	var gotUpload *request.PosterUpload
	svc := &stubCatalogService{
		createFn: func(_ context.Context, req *request.MovieRequest, upload *request.PosterUpload) (string, error) {
			gotUpload = upload
			return "new-id", nil
		},
	}

	body, contentType := movieForm(t, "")
	req := httptest.NewRequest(http.MethodPost, "/movies", body)
	req.Header.Set("Content-Type", contentType)

	rec := httptest.NewRecorder()
	newMovieRouter(svc).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Nil(t, gotUpload)
}

func TestCreateMovieRejectsUnsupportedPoster(t *testing.T) {
	called := false
	svc := &stubCatalogService{
		createFn: func(_ context.Context, req *request.MovieRequest, upload *request.PosterUpload) (string, error) {
			called = true
			return "", nil
		},
	}

	body, contentType := movieForm(t, "poster.gif")
	req := httptest.NewRequest(http.MethodPost, "/movies", body)
	req.Header.Set("Content-Type", contentType)

	rec := httptest.NewRecorder()
	newMovieRouter(svc).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.False(t, called)
}

func TestCreateMovieRejectsNonMultipart(t *testing.T) {
	svc := &stubCatalogService{}

	req := httptest.NewRequest(http.MethodPost, "/movies", bytes.NewBufferString(`{"title":"x"}`))
	req.Header.Set("Content-Type", "application/json")

	rec := httptest.NewRecorder()
	newMovieRouter(svc).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestUpdateMovie(t *testing.T) {
	var gotID string
	svc := &stubCatalogService{
		updateFn: func(_ context.Context, movieID string, req *request.MovieRequest, upload *request.PosterUpload) error {
			gotID = movieID
			return nil
		},
	}

	body, contentType := movieForm(t, "")
	req := httptest.NewRequest(http.MethodPut, "/movies/abc", body)
	req.Header.Set("Content-Type", contentType)

	rec := httptest.NewRecorder()
	newMovieRouter(svc).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "abc", gotID)

	var resp map[string]string
	decodeBody(t, rec, &resp)
	assert.Equal(t, "Movie updated successfully", resp["message"])
}

func TestDeleteMovie(t *testing.T) {
	svc := &stubCatalogService{
		deleteFn: func(_ context.Context, movieID string) error { return nil },
	}

	rec := httptest.NewRecorder()
	newMovieRouter(svc).ServeHTTP(rec, httptest.NewRequest(http.MethodDelete, "/movies/abc", nil))

	assert.Equal(t, http.StatusOK, rec.Code)

	var resp map[string]string
	decodeBody(t, rec, &resp)
	assert.Equal(t, "Movie deleted successfully", resp["message"])
}

func TestLikeAndUnlikeMovie(t *testing.T) {
	svc := &stubCatalogService{
		likeFn:   func(_ context.Context, movieID string) error { return nil },
		unlikeFn: func(_ context.Context, movieID string) error { return nil },
	}
	router := newMovieRouter(svc)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/movies/abc/like", nil))
	assert.Equal(t, http.StatusOK, rec.Code)

	var resp map[string]string
	decodeBody(t, rec, &resp)
	assert.Equal(t, "Movie liked", resp["message"])

	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/movies/abc/unlike", nil))
	assert.Equal(t, http.StatusOK, rec.Code)

	decodeBody(t, rec, &resp)
	assert.Equal(t, "Movie unliked", resp["message"])
}

func TestLikeMovieNotFound(t *testing.T) {
	svc := &stubCatalogService{
		likeFn: func(_ context.Context, movieID string) error {
			return fmt.Errorf("like movie: movie %s: %w", movieID, utils.ErrNotFound)
		},
	}

	rec := httptest.NewRecorder()
	newMovieRouter(svc).ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/movies/missing/like", nil))

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestStoreErrorSurfacesAsInternal(t *testing.T) {
	svc := &stubCatalogService{
		listFn: func(_ context.Context, req *request.PaginatedRequest) ([]response.MovieResponse, error) {
			return nil, fmt.Errorf("get movies: connection refused")
		},
	}

	rec := httptest.NewRecorder()
	newMovieRouter(svc).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/movies", nil))

	assert.Equal(t, http.StatusInternalServerError, rec.Code)

	var resp map[string]string
	decodeBody(t, rec, &resp)
	assert.Equal(t, "get movies: connection refused", resp["error"])
}
