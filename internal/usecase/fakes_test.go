package usecase

import (
	"context"
	"fmt"
	"strings"

	"movie-catalog/internal/data/entity"
	"movie-catalog/internal/data/repository"
	"movie-catalog/pkg/utils"
)

// fakeMovieRepo is an in-memory MovieRepository honoring the same
// contract as the real backends: (nil, nil) on missing lookups,
// utils.ErrNotFound on missing mutations, clamped decrements.
type fakeMovieRepo struct {
	movies map[string]*entity.Movie
	order  []string
	nextID int
	err    error
}

func newFakeMovieRepo() *fakeMovieRepo {
	return &fakeMovieRepo{movies: make(map[string]*entity.Movie)}
}

func (r *fakeMovieRepo) add(movie *entity.Movie) *entity.Movie {
	if movie.ID == "" {
		r.nextID++
		movie.ID = fmt.Sprintf("movie-%d", r.nextID)
	}
	r.movies[movie.ID] = movie
	r.order = append(r.order, movie.ID)
	return movie
}

func (r *fakeMovieRepo) FindAll(_ context.Context, limit, offset int) ([]*entity.Movie, error) {
	if r.err != nil {
		return nil, r.err
	}
	all := make([]*entity.Movie, 0, len(r.order))
	for _, id := range r.order {
		all = append(all, r.movies[id])
	}
	if offset >= len(all) {
		return []*entity.Movie{}, nil
	}
	all = all[offset:]
	if limit < len(all) {
		all = all[:limit]
	}
	return all, nil
}

func (r *fakeMovieRepo) SearchByTitle(_ context.Context, query string) ([]*entity.Movie, error) {
	if r.err != nil {
		return nil, r.err
	}
	matches := []*entity.Movie{}
	for _, id := range r.order {
		movie := r.movies[id]
		if strings.Contains(strings.ToLower(movie.Title), strings.ToLower(query)) {
			matches = append(matches, movie)
		}
	}
	return matches, nil
}

func (r *fakeMovieRepo) FindByID(_ context.Context, id string) (*entity.Movie, error) {
	if r.err != nil {
		return nil, r.err
	}
	return r.movies[id], nil
}

func (r *fakeMovieRepo) FindRelated(_ context.Context, genre, excludeID string, limit int) ([]*entity.Movie, error) {
	if r.err != nil {
		return nil, r.err
	}
	related := []*entity.Movie{}
	for _, id := range r.order {
		movie := r.movies[id]
		if movie.Genre == genre && movie.ID != excludeID {
			related = append(related, movie)
		}
		if len(related) == limit {
			break
		}
	}
	return related, nil
}

func (r *fakeMovieRepo) Create(_ context.Context, movie *entity.Movie) error {
	if r.err != nil {
		return r.err
	}
	r.add(movie)
	return nil
}

func (r *fakeMovieRepo) Update(_ context.Context, movie *entity.Movie) error {
	if r.err != nil {
		return r.err
	}
	if _, ok := r.movies[movie.ID]; !ok {
		return fmt.Errorf("movie %s: %w", movie.ID, utils.ErrNotFound)
	}
	r.movies[movie.ID] = movie
	return nil
}

func (r *fakeMovieRepo) Delete(_ context.Context, id string) error {
	if r.err != nil {
		return r.err
	}
	if _, ok := r.movies[id]; !ok {
		return fmt.Errorf("movie %s: %w", id, utils.ErrNotFound)
	}
	delete(r.movies, id)
	for i, existing := range r.order {
		if existing == id {
			r.order = append(r.order[:i], r.order[i+1:]...)
			break
		}
	}
	return nil
}

func (r *fakeMovieRepo) IncrementLikes(_ context.Context, id string) error {
	if r.err != nil {
		return r.err
	}
	movie, ok := r.movies[id]
	if !ok {
		return fmt.Errorf("movie %s: %w", id, utils.ErrNotFound)
	}
	movie.Likes++
	return nil
}

func (r *fakeMovieRepo) DecrementLikes(_ context.Context, id string) error {
	if r.err != nil {
		return r.err
	}
	movie, ok := r.movies[id]
	if !ok {
		return fmt.Errorf("movie %s: %w", id, utils.ErrNotFound)
	}
	if movie.Likes > 0 {
		movie.Likes--
	}
	return nil
}

type fakeCommentRepo struct {
	comments []*entity.Comment
	nextID   int
	err      error
}

func (r *fakeCommentRepo) FindByMovieID(_ context.Context, movieID string) ([]*entity.Comment, error) {
	if r.err != nil {
		return nil, r.err
	}
	matches := []*entity.Comment{}
	for _, comment := range r.comments {
		if comment.MovieID == movieID {
			matches = append(matches, comment)
		}
	}
	return matches, nil
}

func (r *fakeCommentRepo) Create(_ context.Context, comment *entity.Comment) error {
	if r.err != nil {
		return r.err
	}
	r.nextID++
	comment.ID = fmt.Sprintf("comment-%d", r.nextID)
	r.comments = append(r.comments, comment)
	return nil
}

func (r *fakeCommentRepo) Delete(_ context.Context, id string) error {
	if r.err != nil {
		return r.err
	}
	for i, comment := range r.comments {
		if comment.ID == id {
			r.comments = append(r.comments[:i], r.comments[i+1:]...)
			return nil
		}
	}
	return fmt.Errorf("comment %s: %w", id, utils.ErrNotFound)
}

type fakeUserRepo struct {
	users  map[string]*entity.User
	nextID int
	err    error
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: make(map[string]*entity.User)}
}

func (r *fakeUserRepo) FindByEmail(_ context.Context, email string) (*entity.User, error) {
	if r.err != nil {
		return nil, r.err
	}
	return r.users[email], nil
}

func (r *fakeUserRepo) Create(_ context.Context, user *entity.User) error {
	if r.err != nil {
		return r.err
	}
	r.nextID++
	user.ID = fmt.Sprintf("user-%d", r.nextID)
	r.users[user.Email] = user
	return nil
}

// fakeMediaStore records stores and deletes instead of touching disk.
type fakeMediaStore struct {
	stored    []string
	deleted   []string
	storeErr  error
	deleteErr error
}

func (m *fakeMediaStore) Store(_ context.Context, _ []byte, originalName string) (string, error) {
	if m.storeErr != nil {
		return "", m.storeErr
	}
	ref := "/poster/" + originalName
	m.stored = append(m.stored, ref)
	return ref, nil
}

func (m *fakeMediaStore) Delete(_ context.Context, ref string) error {
	if m.deleteErr != nil {
		return m.deleteErr
	}
	m.deleted = append(m.deleted, ref)
	return nil
}

func newTestRepository(movies *fakeMovieRepo, comments *fakeCommentRepo, users *fakeUserRepo) *repository.Repository {
	if movies == nil {
		movies = newFakeMovieRepo()
	}
	if comments == nil {
		comments = &fakeCommentRepo{}
	}
	if users == nil {
		users = newFakeUserRepo()
	}
	return &repository.Repository{
		Movie:   movies,
		Comment: comments,
		User:    users,
	}
}
