package request

// MovieRequest carries the multipart form fields for create and update.
// download_url is the only optional field.
type MovieRequest struct {
	Title       string  `json:"title" validate:"required"`
	Genre       string  `json:"genre" validate:"required"`
	ReleaseYear int     `json:"release_year" validate:"required"`
	Description string  `json:"description" validate:"required"`
	TrailerURL  string  `json:"trailer_url" validate:"required"`
	VideoURL    string  `json:"video_url" validate:"required"`
	DownloadURL *string `json:"download_url,omitempty"`
}

// PosterUpload is the optional image accompanying a create/update.
// The API layer has already checked the extension allow-list.
type PosterUpload struct {
	FileName string
	Data     []byte
}
