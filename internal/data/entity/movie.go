package entity

import (
	"time"
)

type Movie struct {
	ID          string    `db:"id"`
	Title       string    `db:"title"`
	Genre       string    `db:"genre"`
	ReleaseYear int       `db:"release_year"`
	Description string    `db:"description"`
	TrailerURL  string    `db:"trailer_url"`
	VideoURL    string    `db:"video_url"`
	DownloadURL *string   `db:"download_url"`
	MoviePoster *string   `db:"movie_poster"`
	Likes       int       `db:"likes"`
	CreatedAt   time.Time `db:"created_at"`
}
