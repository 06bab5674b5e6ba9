// Package storage persists uploaded poster images behind a common
// interface with local-disk and S3 backends.
package storage

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
)

// MediaStore persists binary poster content and returns an opaque
// reference usable to retrieve the asset later: a relative path served
// by this process, or an absolute URL on a remote object store.
type MediaStore interface {
	Store(ctx context.Context, data []byte, originalName string) (string, error)

	// Delete is best-effort: a dangling asset is acceptable collateral,
	// a failed user-facing operation is not. Callers log and move on.
	Delete(ctx context.Context, ref string) error
}

// newPosterName derives a collision-resistant file name, keeping the
// original extension.
func newPosterName(originalName string) string {
	ext := strings.ToLower(filepath.Ext(originalName))
	return fmt.Sprintf("%d-%s%s", time.Now().UnixMilli(), uuid.NewString()[:8], ext)
}

func contentTypeForExt(ext string) string {
	switch strings.ToLower(ext) {
	case ".jpg", ".jpeg":
		return "image/jpeg"
	case ".png":
		return "image/png"
	case ".webp":
		return "image/webp"
	default:
		return "application/octet-stream"
	}
}
