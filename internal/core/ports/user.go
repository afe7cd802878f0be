package ports

import (
	"context"

	"github.com/smartshop/assistant-api/internal/core/domain"
)

// CreateUserInput carries the fields required to create a user.
type CreateUserInput struct {
	Name  string
	Email string
}

// UserUpdate is a partial update: nil fields are left untouched, non-nil
// fields fully replace the stored value (shallow merge).
type UserUpdate struct {
	Name  *string
	Email *string
}

// UserRepository defines the in-memory store for users.
//
// Absence is reported as an explicit ok=false, never as an error: the store
// itself cannot fail, it can only miss. Translating a miss into
// domain.ErrUserNotFound is the service layer's job.
type UserRepository interface {
	// Create stores a new user under a freshly generated unique ID.
	Create(ctx context.Context, name, email string) *domain.User
	Get(ctx context.Context, id string) (*domain.User, bool)
	Update(ctx context.Context, id string, upd UserUpdate) (*domain.User, bool)
	// Delete removes the user and reports whether a record existed.
	Delete(ctx context.Context, id string) bool
	// List returns all users in insertion order.
	List(ctx context.Context) []*domain.User
}

// UserService defines use-case operations for users.
type UserService interface {
	Create(ctx context.Context, input CreateUserInput) (*domain.User, error)
	Get(ctx context.Context, id string) (*domain.User, error)
	Update(ctx context.Context, id string, upd UserUpdate) (*domain.User, error)
	Delete(ctx context.Context, id string) error
	List(ctx context.Context) ([]*domain.User, error)
}
