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
	"movie-catalog/pkg/utils"

	"go.uber.org/zap"
)

type CommentService interface {
	List(ctx context.Context, movieID string) ([]response.CommentResponse, error)
	Create(ctx context.Context, movieID string, req *request.CommentRequest) (*response.CommentResponse, error)
	Delete(ctx context.Context, commentID string) error
}

type commentService struct {
	repo *repository.Repository
	log  *zap.Logger
}

func NewCommentService(repo *repository.Repository, log *zap.Logger) CommentService {
	return &commentService{
		repo: repo,
		log:  log.With(zap.String("service", "comment")),
	}
}

func (s *commentService) List(ctx context.Context, movieID string) ([]response.CommentResponse, error) {
	comments, err := s.repo.Comment.FindByMovieID(ctx, movieID)
	if err != nil {
		s.log.Error("Failed to get comments",
			zap.Error(err),
			zap.String("movie_id", movieID),
		)
		return nil, fmt.Errorf("get comments: %w", err)
	}

	return response.CommentsToResponse(comments), nil
}

func (s *commentService) Create(ctx context.Context, movieID string, req *request.CommentRequest) (*response.CommentResponse, error) {
	// Persisted values are the trimmed forms
	req.Email = strings.TrimSpace(req.Email)
	req.CommentText = strings.TrimSpace(req.CommentText)

	if req.Email == "" {
		return nil, fmt.Errorf("%w: email cannot be empty", utils.ErrBadRequest)
	}
	if req.CommentText == "" {
		return nil, fmt.Errorf("%w: comment text cannot be empty", utils.ErrBadRequest)
	}

	comment := &entity.Comment{
		MovieID:     movieID,
		Email:       req.Email,
		CommentText: req.CommentText,
		CreatedAt:   time.Now().UTC(),
	}

	if err := s.repo.Comment.Create(ctx, comment); err != nil {
		s.log.Error("Failed to create comment",
			zap.Error(err),
			zap.String("movie_id", movieID),
		)
		return nil, fmt.Errorf("create comment: %w", err)
	}

	s.log.Info("Comment created",
		zap.String("comment_id", comment.ID),
		zap.String("movie_id", movieID),
	)

	resp := response.CommentToResponse(comment)
	return &resp, nil
}

func (s *commentService) Delete(ctx context.Context, commentID string) error {
	if err := s.repo.Comment.Delete(ctx, commentID); err != nil {
		return fmt.Errorf("delete comment: %w", err)
	}

	return nil
}
