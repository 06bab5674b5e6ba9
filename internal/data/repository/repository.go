package repository

import (
	"context"

	"movie-catalog/internal/data/entity"
	"movie-catalog/pkg/database"

	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.uber.org/zap"
)

// MovieRepository is the persistence contract for the catalog. Lookups
// return (nil, nil) when nothing matches; mutating operations on a
// missing id fail with utils.ErrNotFound, never silently succeed.
type MovieRepository interface {
	FindAll(ctx context.Context, limit, offset int) ([]*entity.Movie, error)
	SearchByTitle(ctx context.Context, query string) ([]*entity.Movie, error)
	FindByID(ctx context.Context, id string) (*entity.Movie, error)
	FindRelated(ctx context.Context, genre, excludeID string, limit int) ([]*entity.Movie, error)
	Create(ctx context.Context, movie *entity.Movie) error
	Update(ctx context.Context, movie *entity.Movie) error
	Delete(ctx context.Context, id string) error

	// Likes are adjusted store-side by exactly 1 per call; the decrement
	// clamps at zero.
	IncrementLikes(ctx context.Context, id string) error
	DecrementLikes(ctx context.Context, id string) error
}

type CommentRepository interface {
	FindByMovieID(ctx context.Context, movieID string) ([]*entity.Comment, error)
	Create(ctx context.Context, comment *entity.Comment) error
	Delete(ctx context.Context, id string) error
}

type UserRepository interface {
	FindByEmail(ctx context.Context, email string) (*entity.User, error)
	Create(ctx context.Context, user *entity.User) error
}

type Repository struct {
	Movie   MovieRepository
	Comment CommentRepository
	User    UserRepository
}

// NewPostgresRepository wires the relational backend over a pooled
// connection handle.
func NewPostgresRepository(db database.PgxIface, log *zap.Logger) *Repository {
	return &Repository{
		Movie:   NewMovieRepository(db, log),
		Comment: NewCommentRepository(db, log),
		User:    NewUserRepository(db, log),
	}
}

// NewMongoRepository wires the document backend.
func NewMongoRepository(db *mongo.Database, log *zap.Logger) *Repository {
	return &Repository{
		Movie:   NewMongoMovieRepository(db, log),
		Comment: NewMongoCommentRepository(db, log),
		User:    NewMongoUserRepository(db, log),
	}
}
