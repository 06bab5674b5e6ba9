package request

const (
	DefaultPage  = 1
	DefaultLimit = 10
)

// PaginatedRequest derives limit/offset from a 1-based page number.
// No upper bound is enforced; the handler supplies the defaults.
type PaginatedRequest struct {
	Page  int `json:"page"`
	Limit int `json:"limit"`
}

func (p PaginatedRequest) Offset() int {
	if p.Page < 1 {
		return 0
	}
	return (p.Page - 1) * p.Limit
}
