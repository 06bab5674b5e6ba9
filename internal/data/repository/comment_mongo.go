package repository

import (
	"context"
	"fmt"
	"time"

	"movie-catalog/internal/data/entity"
	"movie-catalog/pkg/utils"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
	"go.uber.org/zap"
)

type commentDoc struct {
	ID          bson.ObjectID `bson:"_id,omitempty"`
	MovieID     bson.ObjectID `bson:"movie_id"`
	Email       string        `bson:"email"`
	CommentText string        `bson:"comment_text"`
	CreatedAt   time.Time     `bson:"created_at"`
}

func (d *commentDoc) toEntity() *entity.Comment {
	return &entity.Comment{
		ID:          d.ID.Hex(),
		MovieID:     d.MovieID.Hex(),
		Email:       d.Email,
		CommentText: d.CommentText,
		CreatedAt:   d.CreatedAt,
	}
}

type mongoCommentRepository struct {
	coll *mongo.Collection
	log  *zap.Logger
}

func NewMongoCommentRepository(db *mongo.Database, log *zap.Logger) CommentRepository {
	return &mongoCommentRepository{
		coll: db.Collection("movie_comments"),
		log:  log.With(zap.String("repository", "comment")),
	}
}

func (r *mongoCommentRepository) FindByMovieID(ctx context.Context, movieID string) ([]*entity.Comment, error) {
	oid, err := bson.ObjectIDFromHex(movieID)
	if err != nil {
		// No resolvable movie, so no comments
		return []*entity.Comment{}, nil
	}

	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})

	cursor, err := r.coll.Find(ctx, bson.M{"movie_id": oid}, opts)
	if err != nil {
		r.log.Error("Failed to find comments by movie ID",
			zap.Error(err),
			zap.String("movie_id", movieID),
		)
		return nil, fmt.Errorf("find comments by movie ID %s: %w", movieID, err)
	}
	defer cursor.Close(ctx)

	comments := []*entity.Comment{}
	for cursor.Next(ctx) {
		var doc commentDoc
		if err := cursor.Decode(&doc); err != nil {
			r.log.Error("Failed to decode comment document", zap.Error(err))
			return nil, fmt.Errorf("decode comment document: %w", err)
		}
		comments = append(comments, doc.toEntity())
	}

	if err := cursor.Err(); err != nil {
		r.log.Error("Cursor iteration error", zap.Error(err))
		return nil, fmt.Errorf("iterate comment documents: %w", err)
	}

	return comments, nil
}

func (r *mongoCommentRepository) Create(ctx context.Context, comment *entity.Comment) error {
	movieOID, err := bson.ObjectIDFromHex(comment.MovieID)
	if err != nil {
		return fmt.Errorf("movie %s: %w", comment.MovieID, utils.ErrNotFound)
	}

	doc := commentDoc{
		ID:          bson.NewObjectID(),
		MovieID:     movieOID,
		Email:       comment.Email,
		CommentText: comment.CommentText,
		CreatedAt:   comment.CreatedAt,
	}

	if _, err := r.coll.InsertOne(ctx, doc); err != nil {
		r.log.Error("Failed to create comment",
			zap.Error(err),
			zap.String("movie_id", comment.MovieID),
		)
		return fmt.Errorf("create comment for movie %s: %w", comment.MovieID, err)
	}

	comment.ID = doc.ID.Hex()
	return nil
}

func (r *mongoCommentRepository) Delete(ctx context.Context, id string) error {
	oid, err := bson.ObjectIDFromHex(id)
	if err != nil {
		return fmt.Errorf("comment %s: %w", id, utils.ErrNotFound)
	}

	result, err := r.coll.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		r.log.Error("Failed to delete comment",
			zap.Error(err),
			zap.String("comment_id", id),
		)
		return fmt.Errorf("delete comment %s: %w", id, err)
	}

	if result.DeletedCount == 0 {
		return fmt.Errorf("comment %s: %w", id, utils.ErrNotFound)
	}

	r.log.Info("Comment deleted", zap.String("comment_id", id))
	return nil
}
