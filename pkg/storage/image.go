package storage

import (
	"bytes"
	"path/filepath"
	"strings"

	"github.com/disintegration/imaging"
)

// Poster bounding box; aspect ratio is preserved and images are never
// upscaled.
const (
	maxPosterWidth  = 600
	maxPosterHeight = 800
)

// fitPoster bounds the image to the poster box. Formats without an
// encoder (webp) are stored as uploaded.
func fitPoster(data []byte, originalName string) ([]byte, error) {
	var format imaging.Format
	switch strings.ToLower(filepath.Ext(originalName)) {
	case ".jpg", ".jpeg":
		format = imaging.JPEG
	case ".png":
		format = imaging.PNG
	default:
		return data, nil
	}

	img, err := imaging.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, err
	}

	bounds := img.Bounds()
	if bounds.Dx() <= maxPosterWidth && bounds.Dy() <= maxPosterHeight {
		// Already within bounds; avoid a pointless re-encode
		return data, nil
	}

	resized := imaging.Fit(img, maxPosterWidth, maxPosterHeight, imaging.Lanczos)

	var buf bytes.Buffer
	if err := imaging.Encode(&buf, resized, format, imaging.JPEGQuality(90)); err != nil {
		return nil, err
	}

	return buf.Bytes(), nil
}
