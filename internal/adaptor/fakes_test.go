package adaptor

import (
	"context"

	"movie-catalog/internal/dto/request"
	"movie-catalog/internal/dto/response"
)

// stubCatalogService returns canned values; nil funcs mean "not expected".
type stubCatalogService struct {
	listFn    func(ctx context.Context, req *request.PaginatedRequest) ([]response.MovieResponse, error)
	searchFn  func(ctx context.Context, query string) ([]response.MovieSummaryResponse, error)
	getFn     func(ctx context.Context, movieID string) (*response.MovieResponse, error)
	relatedFn func(ctx context.Context, movieID string) ([]response.RelatedMovieResponse, error)
	createFn  func(ctx context.Context, req *request.MovieRequest, upload *request.PosterUpload) (string, error)
	updateFn  func(ctx context.Context, movieID string, req *request.MovieRequest, upload *request.PosterUpload) error
	deleteFn  func(ctx context.Context, movieID string) error
	likeFn    func(ctx context.Context, movieID string) error
	unlikeFn  func(ctx context.Context, movieID string) error
}

func (s *stubCatalogService) List(ctx context.Context, req *request.PaginatedRequest) ([]response.MovieResponse, error) {
	return s.listFn(ctx, req)
}

func (s *stubCatalogService) Search(ctx context.Context, query string) ([]response.MovieSummaryResponse, error) {
	return s.searchFn(ctx, query)
}

func (s *stubCatalogService) Get(ctx context.Context, movieID string) (*response.MovieResponse, error) {
	return s.getFn(ctx, movieID)
}

func (s *stubCatalogService) Related(ctx context.Context, movieID string) ([]response.RelatedMovieResponse, error) {
	return s.relatedFn(ctx, movieID)
}

func (s *stubCatalogService) Create(ctx context.Context, req *request.MovieRequest, upload *request.PosterUpload) (string, error) {
	return s.createFn(ctx, req, upload)
}

func (s *stubCatalogService) Update(ctx context.Context, movieID string, req *request.MovieRequest, upload *request.PosterUpload) error {
	return s.updateFn(ctx, movieID, req, upload)
}

func (s *stubCatalogService) Delete(ctx context.Context, movieID string) error {
	return s.deleteFn(ctx, movieID)
}

func (s *stubCatalogService) Like(ctx context.Context, movieID string) error {
	return s.likeFn(ctx, movieID)
}

func (s *stubCatalogService) Unlike(ctx context.Context, movieID string) error {
	return s.unlikeFn(ctx, movieID)
}

type stubCommentService struct {
	listFn   func(ctx context.Context, movieID string) ([]response.CommentResponse, error)
	createFn func(ctx context.Context, movieID string, req *request.CommentRequest) (*response.CommentResponse, error)
	deleteFn func(ctx context.Context, commentID string) error
}

func (s *stubCommentService) List(ctx context.Context, movieID string) ([]response.CommentResponse, error) {
	return s.listFn(ctx, movieID)
}

func (s *stubCommentService) Create(ctx context.Context, movieID string, req *request.CommentRequest) (*response.CommentResponse, error) {
	return s.createFn(ctx, movieID, req)
}

func (s *stubCommentService) Delete(ctx context.Context, commentID string) error {
	return s.deleteFn(ctx, commentID)
}

type stubAuthService struct {
	loginFn func(ctx context.Context, req *request.LoginRequest) (*response.LoginResponse, error)
}

func (s *stubAuthService) Login(ctx context.Context, req *request.LoginRequest) (*response.LoginResponse, error) {
	return s.loginFn(ctx, req)
}

func (s *stubAuthService) SeedAdmin(ctx context.Context, email, password string) error {
	return nil
}
