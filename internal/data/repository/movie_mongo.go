package repository

import (
	"context"
	"fmt"
	"regexp"
	"time"

	"movie-catalog/internal/data/entity"
	"movie-catalog/pkg/utils"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
	"go.uber.org/zap"
)

// movieDoc is the stored document shape; the entity uses plain string
// ids so the caller never sees ObjectIDs.
type movieDoc struct {
	ID          bson.ObjectID `bson:"_id,omitempty"`
	Title       string        `bson:"title"`
	Genre       string        `bson:"genre"`
	ReleaseYear int           `bson:"release_year"`
	Description string        `bson:"description"`
	TrailerURL  string        `bson:"trailer_url"`
	VideoURL    string        `bson:"video_url"`
	DownloadURL *string       `bson:"download_url"`
	MoviePoster *string       `bson:"movie_poster"`
	Likes       int           `bson:"likes"`
	CreatedAt   time.Time     `bson:"created_at"`
}

func (d *movieDoc) toEntity() *entity.Movie {
	return &entity.Movie{
		ID:          d.ID.Hex(),
		Title:       d.Title,
		Genre:       d.Genre,
		ReleaseYear: d.ReleaseYear,
		Description: d.Description,
		TrailerURL:  d.TrailerURL,
		VideoURL:    d.VideoURL,
		DownloadURL: d.DownloadURL,
		MoviePoster: d.MoviePoster,
		Likes:       d.Likes,
		CreatedAt:   d.CreatedAt,
	}
}

type mongoMovieRepository struct {
	coll *mongo.Collection
	log  *zap.Logger
}

func NewMongoMovieRepository(db *mongo.Database, log *zap.Logger) MovieRepository {
	return &mongoMovieRepository{
		coll: db.Collection("movies"),
		log:  log.With(zap.String("repository", "movie")),
	}
}

func (r *mongoMovieRepository) FindAll(ctx context.Context, limit, offset int) ([]*entity.Movie, error) {
	opts := options.Find().
		SetSort(bson.D{{Key: "created_at", Value: -1}}).
		SetLimit(int64(limit)).
		SetSkip(int64(offset))

	cursor, err := r.coll.Find(ctx, bson.D{}, opts)
	if err != nil {
		r.log.Error("Failed to find all movies",
			zap.Error(err),
			zap.Int("limit", limit),
			zap.Int("offset", offset),
		)
		return nil, fmt.Errorf("find movies limit %d offset %d: %w", limit, offset, err)
	}

	return r.decodeMovies(ctx, cursor)
}

func (r *mongoMovieRepository) SearchByTitle(ctx context.Context, query string) ([]*entity.Movie, error) {
	// Case-insensitive substring match anywhere in the title
	filter := bson.M{"title": bson.M{
		"$regex":   regexp.QuoteMeta(query),
		"$options": "i",
	}}
	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})

	cursor, err := r.coll.Find(ctx, filter, opts)
	if err != nil {
		r.log.Error("Failed to search movies by title",
			zap.Error(err),
			zap.String("query", query),
		)
		return nil, fmt.Errorf("search movies by title %q: %w", query, err)
	}

	return r.decodeMovies(ctx, cursor)
}

func (r *mongoMovieRepository) FindByID(ctx context.Context, id string) (*entity.Movie, error) {
	oid, err := bson.ObjectIDFromHex(id)
	if err != nil {
		// Not a valid object id, so nothing can match
		return nil, nil
	}

	var doc movieDoc
	err = r.coll.FindOne(ctx, bson.M{"_id": oid}).Decode(&doc)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find movie by ID",
			zap.Error(err),
			zap.String("movie_id", id),
		)
		return nil, fmt.Errorf("find movie by ID %s: %w", id, err)
	}

	return doc.toEntity(), nil
}

func (r *mongoMovieRepository) FindRelated(ctx context.Context, genre, excludeID string, limit int) ([]*entity.Movie, error) {
	filter := bson.M{"genre": genre}
	if oid, err := bson.ObjectIDFromHex(excludeID); err == nil {
		filter["_id"] = bson.M{"$ne": oid}
	}
	opts := options.Find().
		SetSort(bson.D{{Key: "created_at", Value: -1}}).
		SetLimit(int64(limit))

	cursor, err := r.coll.Find(ctx, filter, opts)
	if err != nil {
		r.log.Error("Failed to find related movies",
			zap.Error(err),
			zap.String("genre", genre),
			zap.String("exclude_id", excludeID),
		)
		return nil, fmt.Errorf("find related movies for genre %s: %w", genre, err)
	}

	return r.decodeMovies(ctx, cursor)
}

func (r *mongoMovieRepository) Create(ctx context.Context, movie *entity.Movie) error {
	doc := movieDoc{
		ID:          bson.NewObjectID(),
		Title:       movie.Title,
		Genre:       movie.Genre,
		ReleaseYear: movie.ReleaseYear,
		Description: movie.Description,
		TrailerURL:  movie.TrailerURL,
		VideoURL:    movie.VideoURL,
		DownloadURL: movie.DownloadURL,
		MoviePoster: movie.MoviePoster,
		Likes:       movie.Likes,
		CreatedAt:   movie.CreatedAt,
	}

	if _, err := r.coll.InsertOne(ctx, doc); err != nil {
		r.log.Error("Failed to create movie",
			zap.Error(err),
			zap.String("title", movie.Title),
		)
		return fmt.Errorf("create movie %s: %w", movie.Title, err)
	}

	movie.ID = doc.ID.Hex()
	return nil
}

func (r *mongoMovieRepository) Update(ctx context.Context, movie *entity.Movie) error {
	oid, err := bson.ObjectIDFromHex(movie.ID)
	if err != nil {
		return fmt.Errorf("movie %s: %w", movie.ID, utils.ErrNotFound)
	}

	update := bson.M{"$set": bson.M{
		"title":        movie.Title,
		"genre":        movie.Genre,
		"release_year": movie.ReleaseYear,
		"description":  movie.Description,
		"trailer_url":  movie.TrailerURL,
		"video_url":    movie.VideoURL,
		"download_url": movie.DownloadURL,
		"movie_poster": movie.MoviePoster,
	}}

	result, err := r.coll.UpdateOne(ctx, bson.M{"_id": oid}, update)
	if err != nil {
		r.log.Error("Failed to update movie",
			zap.Error(err),
			zap.String("movie_id", movie.ID),
		)
		return fmt.Errorf("update movie %s: %w", movie.ID, err)
	}

	if result.MatchedCount == 0 {
		return fmt.Errorf("movie %s: %w", movie.ID, utils.ErrNotFound)
	}

	return nil
}

func (r *mongoMovieRepository) Delete(ctx context.Context, id string) error {
	oid, err := bson.ObjectIDFromHex(id)
	if err != nil {
		return fmt.Errorf("movie %s: %w", id, utils.ErrNotFound)
	}

	result, err := r.coll.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		r.log.Error("Failed to delete movie",
			zap.Error(err),
			zap.String("movie_id", id),
		)
		return fmt.Errorf("delete movie %s: %w", id, err)
	}

	if result.DeletedCount == 0 {
		return fmt.Errorf("movie %s: %w", id, utils.ErrNotFound)
	}

	r.log.Info("Movie deleted", zap.String("movie_id", id))
	return nil
}

func (r *mongoMovieRepository) IncrementLikes(ctx context.Context, id string) error {
	oid, err := bson.ObjectIDFromHex(id)
	if err != nil {
		return fmt.Errorf("movie %s: %w", id, utils.ErrNotFound)
	}

	result, err := r.coll.UpdateOne(ctx,
		bson.M{"_id": oid},
		bson.M{"$inc": bson.M{"likes": 1}},
	)
	if err != nil {
		r.log.Error("Failed to increment likes",
			zap.Error(err),
			zap.String("movie_id", id),
		)
		return fmt.Errorf("increment likes for movie %s: %w", id, err)
	}

	if result.MatchedCount == 0 {
		return fmt.Errorf("movie %s: %w", id, utils.ErrNotFound)
	}

	return nil
}

func (r *mongoMovieRepository) DecrementLikes(ctx context.Context, id string) error {
	oid, err := bson.ObjectIDFromHex(id)
	if err != nil {
		return fmt.Errorf("movie %s: %w", id, utils.ErrNotFound)
	}

	// Guarded atomic decrement; likes never drop below zero
	result, err := r.coll.UpdateOne(ctx,
		bson.M{"_id": oid, "likes": bson.M{"$gt": 0}},
		bson.M{"$inc": bson.M{"likes": -1}},
	)
	if err != nil {
		r.log.Error("Failed to decrement likes",
			zap.Error(err),
			zap.String("movie_id", id),
		)
		return fmt.Errorf("decrement likes for movie %s: %w", id, err)
	}

	if result.MatchedCount > 0 {
		return nil
	}

	// Either the movie is missing or likes was already zero
	count, err := r.coll.CountDocuments(ctx, bson.M{"_id": oid})
	if err != nil {
		return fmt.Errorf("decrement likes for movie %s: %w", id, err)
	}
	if count == 0 {
		return fmt.Errorf("movie %s: %w", id, utils.ErrNotFound)
	}

	return nil
}

func (r *mongoMovieRepository) decodeMovies(ctx context.Context, cursor *mongo.Cursor) ([]*entity.Movie, error) {
	defer cursor.Close(ctx)

	movies := []*entity.Movie{}
	for cursor.Next(ctx) {
		var doc movieDoc
		if err := cursor.Decode(&doc); err != nil {
			r.log.Error("Failed to decode movie document", zap.Error(err))
			return nil, fmt.Errorf("decode movie document: %w", err)
		}
		movies = append(movies, doc.toEntity())
	}

	if err := cursor.Err(); err != nil {
		r.log.Error("Cursor iteration error", zap.Error(err))
		return nil, fmt.Errorf("iterate movie documents: %w", err)
	}

	return movies, nil
}
