package usecase

import (
	"context"
	"testing"

	"movie-catalog/internal/dto/request"
	"movie-catalog/pkg/utils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newTestComments(comments *fakeCommentRepo) CommentService {
	return NewCommentService(newTestRepository(nil, comments, nil), zap.NewNop())
}

func TestCommentCreate(t *testing.T) {
	repo := &fakeCommentRepo{}
	svc := newTestComments(repo)

	resp, err := svc.Create(context.Background(), "movie-1", &request.CommentRequest{
		Email:       "  viewer@example.com ",
		CommentText: " great movie ",
	})
	require.NoError(t, err)

	assert.NotEmpty(t, resp.ID)
	assert.Equal(t, "viewer@example.com", resp.Email)
	assert.Equal(t, "great movie", resp.CommentText)
	assert.False(t, resp.CreatedAt.IsZero())
}

func TestCommentCreateRejectsBlankFields(t *testing.T) {
	svc := newTestComments(&fakeCommentRepo{})

	_, err := svc.Create(context.Background(), "movie-1", &request.CommentRequest{
		Email:       "   ",
		CommentText: "fine",
	})
	assert.ErrorIs(t, err, utils.ErrBadRequest)

	_, err = svc.Create(context.Background(), "movie-1", &request.CommentRequest{
		Email:       "viewer@example.com",
		CommentText: "   ",
	})
	assert.ErrorIs(t, err, utils.ErrBadRequest)
}

func TestCommentListFiltersByMovie(t *testing.T) {
	repo := &fakeCommentRepo{}
	svc := newTestComments(repo)

	for _, movieID := range []string{"movie-1", "movie-1", "movie-2"} {
		_, err := svc.Create(context.Background(), movieID, &request.CommentRequest{
			Email:       "viewer@example.com",
			CommentText: "nice",
		})
		require.NoError(t, err)
	}

	comments, err := svc.List(context.Background(), "movie-1")
	require.NoError(t, err)
	assert.Len(t, comments, 2)
}

func TestCommentListEmpty(t *testing.T) {
	svc := newTestComments(&fakeCommentRepo{})

	comments, err := svc.List(context.Background(), "movie-1")
	require.NoError(t, err)
	assert.NotNil(t, comments)
	assert.Empty(t, comments)
}

func TestCommentDelete(t *testing.T) {
	repo := &fakeCommentRepo{}
	svc := newTestComments(repo)

	resp, err := svc.Create(context.Background(), "movie-1", &request.CommentRequest{
		Email:       "viewer@example.com",
		CommentText: "nice",
	})
	require.NoError(t, err)

	require.NoError(t, svc.Delete(context.Background(), resp.ID))
	assert.Empty(t, repo.comments)
}

func TestCommentDeleteNotFound(t *testing.T) {
	svc := newTestComments(&fakeCommentRepo{})

	err := svc.Delete(context.Background(), "missing")
	assert.ErrorIs(t, err, utils.ErrNotFound)
}
