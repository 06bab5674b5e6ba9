package entity

import (
	"time"
)

// User is the admin account. Provisioned at startup, never written by
// the HTTP surface.
type User struct {
	ID           string    `db:"id"`
	Email        string    `db:"email"`
	PasswordHash string    `db:"password"`
	CreatedAt    time.Time `db:"created_at"`
}
