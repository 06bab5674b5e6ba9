package repository

import (
	"context"
	"fmt"

	"movie-catalog/internal/data/entity"
	"movie-catalog/pkg/database"
	"movie-catalog/pkg/utils"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

type movieRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewMovieRepository(db database.PgxIface, log *zap.Logger) MovieRepository {
	return &movieRepository{
		db:  db,
		log: log.With(zap.String("repository", "movie")),
	}
}

const movieColumns = `id, title, genre, release_year, description, trailer_url,
	       video_url, download_url, movie_poster, likes, created_at`

func (r *movieRepository) FindAll(ctx context.Context, limit, offset int) ([]*entity.Movie, error) {
	query := `
		SELECT ` + movieColumns + `
		FROM movies
		ORDER BY created_at DESC
		LIMIT $1 OFFSET $2
	`

	rows, err := r.db.Query(ctx, query, limit, offset)
	if err != nil {
		r.log.Error("Failed to find all movies",
			zap.Error(err),
			zap.Int("limit", limit),
			zap.Int("offset", offset),
		)
		return nil, fmt.Errorf("find movies limit %d offset %d: %w", limit, offset, err)
	}
	defer rows.Close()

	return r.scanMovies(rows)
}

func (r *movieRepository) SearchByTitle(ctx context.Context, query string) ([]*entity.Movie, error) {
	sql := `
		SELECT ` + movieColumns + `
		FROM movies
		WHERE title ILIKE '%' || $1 || '%'
		ORDER BY created_at DESC
	`

	rows, err := r.db.Query(ctx, sql, query)
	if err != nil {
		r.log.Error("Failed to search movies by title",
			zap.Error(err),
			zap.String("query", query),
		)
		return nil, fmt.Errorf("search movies by title %q: %w", query, err)
	}
	defer rows.Close()

	return r.scanMovies(rows)
}

func (r *movieRepository) FindByID(ctx context.Context, id string) (*entity.Movie, error) {
	query := `
		SELECT ` + movieColumns + `
		FROM movies
		WHERE id = $1
	`

	var movie entity.Movie
	err := r.db.QueryRow(ctx, query, id).Scan(
		&movie.ID,
		&movie.Title,
		&movie.Genre,
		&movie.ReleaseYear,
		&movie.Description,
		&movie.TrailerURL,
		&movie.VideoURL,
		&movie.DownloadURL,
		&movie.MoviePoster,
		&movie.Likes,
		&movie.CreatedAt,
	)

	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find movie by ID",
			zap.Error(err),
			zap.String("movie_id", id),
		)
		return nil, fmt.Errorf("find movie by ID %s: %w", id, err)
	}

	return &movie, nil
}

func (r *movieRepository) FindRelated(ctx context.Context, genre, excludeID string, limit int) ([]*entity.Movie, error) {
	query := `
		SELECT ` + movieColumns + `
		FROM movies
		WHERE genre = $1 AND id <> $2
		ORDER BY created_at DESC
		LIMIT $3
	`

	rows, err := r.db.Query(ctx, query, genre, excludeID, limit)
	if err != nil {
		r.log.Error("Failed to find related movies",
			zap.Error(err),
			zap.String("genre", genre),
			zap.String("exclude_id", excludeID),
		)
		return nil, fmt.Errorf("find related movies for genre %s: %w", genre, err)
	}
	defer rows.Close()

	return r.scanMovies(rows)
}

func (r *movieRepository) Create(ctx context.Context, movie *entity.Movie) error {
	// Store-assigned opaque identifier
	movie.ID = uuid.NewString()

	query := `
		INSERT INTO movies (id, title, genre, release_year, description,
		                    trailer_url, video_url, download_url, movie_poster,
		                    likes, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
	`

	_, err := r.db.Exec(ctx, query,
		movie.ID,
		movie.Title,
		movie.Genre,
		movie.ReleaseYear,
		movie.Description,
		movie.TrailerURL,
		movie.VideoURL,
		movie.DownloadURL,
		movie.MoviePoster,
		movie.Likes,
		movie.CreatedAt,
	)

	if err != nil {
		r.log.Error("Failed to create movie",
			zap.Error(err),
			zap.String("title", movie.Title),
		)
		return fmt.Errorf("create movie %s: %w", movie.Title, err)
	}

	return nil
}

func (r *movieRepository) Update(ctx context.Context, movie *entity.Movie) error {
	query := `
		UPDATE movies
		SET title = $2, genre = $3, release_year = $4, description = $5,
		    trailer_url = $6, video_url = $7, download_url = $8, movie_poster = $9
		WHERE id = $1
	`

	result, err := r.db.Exec(ctx, query,
		movie.ID,
		movie.Title,
		movie.Genre,
		movie.ReleaseYear,
		movie.Description,
		movie.TrailerURL,
		movie.VideoURL,
		movie.DownloadURL,
		movie.MoviePoster,
	)

	if err != nil {
		r.log.Error("Failed to update movie",
			zap.Error(err),
			zap.String("movie_id", movie.ID),
		)
		return fmt.Errorf("update movie %s: %w", movie.ID, err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("movie %s: %w", movie.ID, utils.ErrNotFound)
	}

	return nil
}

func (r *movieRepository) Delete(ctx context.Context, id string) error {
	query := `DELETE FROM movies WHERE id = $1`

	result, err := r.db.Exec(ctx, query, id)
	if err != nil {
		r.log.Error("Failed to delete movie",
			zap.Error(err),
			zap.String("movie_id", id),
		)
		return fmt.Errorf("delete movie %s: %w", id, err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("movie %s: %w", id, utils.ErrNotFound)
	}

	r.log.Info("Movie deleted", zap.String("movie_id", id))
	return nil
}

func (r *movieRepository) IncrementLikes(ctx context.Context, id string) error {
	// Atomic store-side adjustment, no read-modify-write
	query := `UPDATE movies SET likes = likes + 1 WHERE id = $1`

	result, err := r.db.Exec(ctx, query, id)
	if err != nil {
		r.log.Error("Failed to increment likes",
			zap.Error(err),
			zap.String("movie_id", id),
		)
		return fmt.Errorf("increment likes for movie %s: %w", id, err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("movie %s: %w", id, utils.ErrNotFound)
	}

	return nil
}

func (r *movieRepository) DecrementLikes(ctx context.Context, id string) error {
	// Clamped at zero
	query := `UPDATE movies SET likes = GREATEST(likes - 1, 0) WHERE id = $1`

	result, err := r.db.Exec(ctx, query, id)
	if err != nil {
		r.log.Error("Failed to decrement likes",
			zap.Error(err),
			zap.String("movie_id", id),
		)
		return fmt.Errorf("decrement likes for movie %s: %w", id, err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("movie %s: %w", id, utils.ErrNotFound)
	}

	return nil
}

func (r *movieRepository) scanMovies(rows pgx.Rows) ([]*entity.Movie, error) {
	movies := []*entity.Movie{}
	for rows.Next() {
		var movie entity.Movie
		err := rows.Scan(
			&movie.ID,
			&movie.Title,
			&movie.Genre,
			&movie.ReleaseYear,
			&movie.Description,
			&movie.TrailerURL,
			&movie.VideoURL,
			&movie.DownloadURL,
			&movie.MoviePoster,
			&movie.Likes,
			&movie.CreatedAt,
		)
		if err != nil {
			r.log.Error("Failed to scan movie row", zap.Error(err))
			return nil, fmt.Errorf("scan movie row: %w", err)
		}
		movies = append(movies, &movie)
	}

	if err := rows.Err(); err != nil {
		r.log.Error("Rows iteration error", zap.Error(err))
		return nil, fmt.Errorf("iterate movie rows: %w", err)
	}

	return movies, nil
}
