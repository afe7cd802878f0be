package domain

import (
	"errors"
	"time"
)

var ErrUserNotFound = errors.New("user not found")

// User is a shopper account held in the in-memory store.
//
// LastLogin doubles as the last-modified timestamp: every mutating store
// operation refreshes it, matching the behaviour the storefront relies on.
type User struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"createdAt"`
	LastLogin time.Time `json:"lastLogin"`
}
