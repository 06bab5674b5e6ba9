package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"movie-catalog/internal/data/entity"
	"movie-catalog/internal/data/repository"
	"movie-catalog/internal/dto/request"
	"movie-catalog/internal/dto/response"
	"movie-catalog/pkg/storage"
	"movie-catalog/pkg/utils"

	"go.uber.org/zap"
)

// relatedLimit caps the related-movie lookup.
const relatedLimit = 5

type CatalogService interface {
	List(ctx context.Context, req *request.PaginatedRequest) ([]response.MovieResponse, error)
	Search(ctx context.Context, query string) ([]response.MovieSummaryResponse, error)
	Get(ctx context.Context, movieID string) (*response.MovieResponse, error)
	Related(ctx context.Context, movieID string) ([]response.RelatedMovieResponse, error)
	Create(ctx context.Context, req *request.MovieRequest, upload *request.PosterUpload) (string, error)
	Update(ctx context.Context, movieID string, req *request.MovieRequest, upload *request.PosterUpload) error
	Delete(ctx context.Context, movieID string) error
	Like(ctx context.Context, movieID string) error
	Unlike(ctx context.Context, movieID string) error
}

type catalogService struct {
	repo  *repository.Repository
	media storage.MediaStore
	log   *zap.Logger
}

func NewCatalogService(
	repo *repository.Repository,
	media storage.MediaStore,
	log *zap.Logger,
) CatalogService {
	return &catalogService{
		repo:  repo,
		media: media,
		log:   log.With(zap.String("service", "catalog")),
	}
}

func (s *catalogService) List(ctx context.Context, req *request.PaginatedRequest) ([]response.MovieResponse, error) {
	if req.Page < 1 {
		req.Page = request.DefaultPage
	}
	if req.Limit < 1 {
		req.Limit = request.DefaultLimit
	}

	movies, err := s.repo.Movie.FindAll(ctx, req.Limit, req.Offset())
	if err != nil {
		s.log.Error("Failed to get movies",
			zap.Error(err),
			zap.Int("page", req.Page),
			zap.Int("limit", req.Limit),
		)
		return nil, fmt.Errorf("get movies: %w", err)
	}

	s.log.Debug("Movies retrieved",
		zap.Int("count", len(movies)),
		zap.Int("page", req.Page),
		zap.Int("limit", req.Limit),
	)

	return response.MoviesToResponse(movies), nil
}

func (s *catalogService) Search(ctx context.Context, query string) ([]response.MovieSummaryResponse, error) {
	if strings.TrimSpace(query) == "" {
		return nil, fmt.Errorf("%w: query parameter 'q' is required", utils.ErrBadRequest)
	}

	movies, err := s.repo.Movie.SearchByTitle(ctx, query)
	if err != nil {
		s.log.Error("Failed to search movies",
			zap.Error(err),
			zap.String("query", query),
		)
		return nil, fmt.Errorf("search movies: %w", err)
	}

	return response.MoviesToSummaryResponse(movies), nil
}

func (s *catalogService) Get(ctx context.Context, movieID string) (*response.MovieResponse, error) {
	movie, err := s.repo.Movie.FindByID(ctx, movieID)
	if err != nil {
		return nil, fmt.Errorf("get movie: %w", err)
	}
	if movie == nil {
		return nil, fmt.Errorf("movie %w", utils.ErrNotFound)
	}

	resp := response.MovieToResponse(movie)
	return &resp, nil
}

func (s *catalogService) Related(ctx context.Context, movieID string) ([]response.RelatedMovieResponse, error) {
	movie, err := s.repo.Movie.FindByID(ctx, movieID)
	if err != nil {
		return nil, fmt.Errorf("find movie: %w", err)
	}
	if movie == nil {
		return nil, fmt.Errorf("movie %w", utils.ErrNotFound)
	}

	related, err := s.repo.Movie.FindRelated(ctx, movie.Genre, movie.ID, relatedLimit)
	if err != nil {
		s.log.Error("Failed to get related movies",
			zap.Error(err),
			zap.String("movie_id", movieID),
		)
		return nil, fmt.Errorf("get related movies: %w", err)
	}

	return response.MoviesToRelatedResponse(related), nil
}

func (s *catalogService) Create(ctx context.Context, req *request.MovieRequest, upload *request.PosterUpload) (string, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Create movie validation failed", zap.Any("errors", errs))
		return "", fmt.Errorf("%w: please provide all required fields", utils.ErrBadRequest)
	}

	movie := &entity.Movie{
		Title:       req.Title,
		Genre:       req.Genre,
		ReleaseYear: req.ReleaseYear,
		Description: req.Description,
		TrailerURL:  req.TrailerURL,
		VideoURL:    req.VideoURL,
		DownloadURL: req.DownloadURL,
		Likes:       0,
		CreatedAt:   time.Now().UTC(),
	}

	// Store the upload first so the reference lands in the same insert
	if upload != nil {
		ref, err := s.media.Store(ctx, upload.Data, upload.FileName)
		if err != nil {
			s.log.Error("Failed to store poster",
				zap.Error(err),
				zap.String("file", upload.FileName),
			)
			return "", fmt.Errorf("store poster: %w", err)
		}
		movie.MoviePoster = &ref
	}

	if err := s.repo.Movie.Create(ctx, movie); err != nil {
		s.log.Error("Failed to create movie",
			zap.Error(err),
			zap.String("title", req.Title),
		)
		return "", fmt.Errorf("create movie: %w", err)
	}

	s.log.Info("Movie created",
		zap.String("movie_id", movie.ID),
		zap.String("title", movie.Title),
	)

	return movie.ID, nil
}

func (s *catalogService) Update(ctx context.Context, movieID string, req *request.MovieRequest, upload *request.PosterUpload) error {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Update movie validation failed", zap.Any("errors", errs))
		return fmt.Errorf("%w: please provide all required fields", utils.ErrBadRequest)
	}

	movie, err := s.repo.Movie.FindByID(ctx, movieID)
	if err != nil {
		return fmt.Errorf("find movie: %w", err)
	}
	if movie == nil {
		return fmt.Errorf("movie %w", utils.ErrNotFound)
	}

	movie.Title = req.Title
	movie.Genre = req.Genre
	movie.ReleaseYear = req.ReleaseYear
	movie.Description = req.Description
	movie.TrailerURL = req.TrailerURL
	movie.VideoURL = req.VideoURL
	movie.DownloadURL = req.DownloadURL

	// Without a new upload the existing poster reference is preserved
	if upload != nil {
		ref, err := s.media.Store(ctx, upload.Data, upload.FileName)
		if err != nil {
			s.log.Error("Failed to store poster",
				zap.Error(err),
				zap.String("file", upload.FileName),
			)
			return fmt.Errorf("store poster: %w", err)
		}
		movie.MoviePoster = &ref
	}

	if err := s.repo.Movie.Update(ctx, movie); err != nil {
		s.log.Error("Failed to update movie",
			zap.Error(err),
			zap.String("movie_id", movieID),
		)
		return fmt.Errorf("update movie: %w", err)
	}

	s.log.Info("Movie updated",
		zap.String("movie_id", movieID),
		zap.String("title", movie.Title),
	)

	return nil
}

func (s *catalogService) Delete(ctx context.Context, movieID string) error {
	movie, err := s.repo.Movie.FindByID(ctx, movieID)
	if err != nil {
		return fmt.Errorf("find movie: %w", err)
	}
	if movie == nil {
		return fmt.Errorf("movie %w", utils.ErrNotFound)
	}

	if err := s.repo.Movie.Delete(ctx, movieID); err != nil {
		s.log.Error("Failed to delete movie",
			zap.Error(err),
			zap.String("movie_id", movieID),
		)
		return fmt.Errorf("delete movie: %w", err)
	}

	// Best-effort poster cleanup; a dangling asset never fails the request
	if movie.MoviePoster != nil {
		if err := s.media.Delete(ctx, *movie.MoviePoster); err != nil {
			s.log.Warn("Failed to delete poster asset",
				zap.Error(err),
				zap.String("movie_id", movieID),
				zap.String("poster", *movie.MoviePoster),
			)
		}
	}

	s.log.Info("Movie deleted",
		zap.String("movie_id", movieID),
		zap.String("title", movie.Title),
	)

	return nil
}

func (s *catalogService) Like(ctx context.Context, movieID string) error {
	if err := s.repo.Movie.IncrementLikes(ctx, movieID); err != nil {
		return fmt.Errorf("like movie: %w", err)
	}
	return nil
}

func (s *catalogService) Unlike(ctx context.Context, movieID string) error {
	if err := s.repo.Movie.DecrementLikes(ctx, movieID); err != nil {
		return fmt.Errorf("unlike movie: %w", err)
	}
	return nil
}
