package usecase

import (
	"movie-catalog/internal/data/repository"
	"movie-catalog/pkg/storage"

	"go.uber.org/zap"
)

type Service struct {
	Catalog CatalogService
	Comment CommentService
	Auth    AuthService
}

func NewService(repo *repository.Repository, media storage.MediaStore, log *zap.Logger) *Service {
	return &Service{
		Catalog: NewCatalogService(repo, media, log),
		Comment: NewCommentService(repo, log),
		Auth:    NewAuthService(repo, log),
	}
}
