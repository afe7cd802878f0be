// Package memory implements the resource stores as process-local maps.
// Nothing is durable: all records are lost on process termination.
package memory

import (
	"context"
	"sync"
	"time"

	"github.com/smartshop/assistant-api/internal/core/domain"

	"github.com/smartshop/assistant-api/internal/core/ports"
)

// UserRepository is an in-memory keyed store for users.
//
// A mutex guards the map because Echo runs handlers on concurrent
// goroutines; the order slice preserves deterministic insertion-order
// listing. IDs are never reused within a running process: deleting a record
// does not return its ID to circulation.
type UserRepository struct {
	mu    sync.RWMutex
	users map[string]*domain.User
	order []string
}

func NewUserRepository() *UserRepository {
	return &UserRepository{users: make(map[string]*domain.User)}
}

func (r *UserRepository) Create(_ context.Context, name, email string) *domain.User {
	r.mu.Lock()
	defer r.mu.Unlock()

	id := newID("usr")
	for _, taken := r.users[id]; taken; _, taken = r.users[id] {
		id = newID("usr")
	}

	now := time.Now().UTC()
	user := &domain.User{
		ID:        id,
		Name:      name,
		Email:     email,
		CreatedAt: now,
		LastLogin: now,
	}
	r.users[id] = user
	r.order = append(r.order, id)

	clone := *user
	return &clone
}

func (r *UserRepository) Get(_ context.Context, id string) (*domain.User, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	user, ok := r.users[id]
	if !ok {
		return nil, false
	}
	clone := *user
	return &clone, true
}

// Update merges the non-nil fields of upd onto the stored record and
// refreshes LastLogin. The merge is shallow: a supplied field fully replaces
// the stored value.
func (r *UserRepository) Update(_ context.Context, id string, upd ports.UserUpdate) (*domain.User, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()

	user, ok := r.users[id]
	if !ok {
		return nil, false
	}

	if upd.Name != nil {
		user.Name = *upd.Name
	}
	if upd.Email != nil {
		user.Email = *upd.Email
	}
	user.LastLogin = nextTimestamp(user.LastLogin)

	clone := *user
	return &clone, true
}

func (r *UserRepository) Delete(_ context.Context, id string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.users[id]; !ok {
		return false
	}
	delete(r.users, id)
	for i, oid := range r.order {
		if oid == id {
			r.order = append(r.order[:i], r.order[i+1:]...)
			break
		}
	}
	return true
}

func (r *UserRepository) List(_ context.Context) []*domain.User {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]*domain.User, 0, len(r.order))
	for _, id := range r.order {
		clone := *r.users[id]
		out = append(out, &clone)
	}
	return out
}
