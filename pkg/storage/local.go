package storage

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"go.uber.org/zap"
)

// PosterURLPrefix is where the API serves locally stored posters.
const PosterURLPrefix = "/poster/"

type LocalStore struct {
	dir string
	log *zap.Logger
}

func NewLocalStore(dir string, log *zap.Logger) (*LocalStore, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("create upload dir %s: %w", dir, err)
	}

	return &LocalStore{
		dir: dir,
		log: log.With(zap.String("storage", "local")),
	}, nil
}

func (s *LocalStore) Store(ctx context.Context, data []byte, originalName string) (string, error) {
	fitted, err := fitPoster(data, originalName)
	if err != nil {
		return "", fmt.Errorf("process poster %s: %w", originalName, err)
	}

	name := newPosterName(originalName)
	path := filepath.Join(s.dir, name)

	if err := os.WriteFile(path, fitted, 0644); err != nil {
		s.log.Error("Failed to write poster file",
			zap.Error(err),
			zap.String("path", path),
		)
		return "", fmt.Errorf("write poster %s: %w", name, err)
	}

	s.log.Debug("Poster stored",
		zap.String("name", name),
		zap.Int("bytes", len(fitted)),
	)

	return PosterURLPrefix + name, nil
}

func (s *LocalStore) Delete(ctx context.Context, ref string) error {
	name := filepath.Base(strings.TrimPrefix(ref, PosterURLPrefix))
	if name == "" || name == "." {
		return nil
	}

	if err := os.Remove(filepath.Join(s.dir, name)); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("remove poster %s: %w", name, err)
	}

	return nil
}

// Dir exposes the upload directory for the static file route.
func (s *LocalStore) Dir() string {
	return s.dir
}
