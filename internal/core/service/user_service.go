package service

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/smartshop/assistant-api/internal/core/domain"
	"github.com/smartshop/assistant-api/internal/core/ports"
)

// UserService implements ports.UserService on top of the in-memory store,
// translating store misses into domain.ErrUserNotFound.
type UserService struct {
	repo   ports.UserRepository
	logger zerolog.Logger
}

func NewUserService(repo ports.UserRepository, logger zerolog.Logger) *UserService {
	return &UserService{repo: repo, logger: logger}
}

func (s *UserService) Create(ctx context.Context, input ports.CreateUserInput) (*domain.User, error) {
	user := s.repo.Create(ctx, input.Name, input.Email)
	s.logger.Info().Str("user_id", user.ID).Str("email", user.Email).Msg("user created")
	return user, nil
}

func (s *UserService) Get(ctx context.Context, id string) (*domain.User, error) {
	user, ok := s.repo.Get(ctx, id)
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	return user, nil
}

func (s *UserService) Update(ctx context.Context, id string, upd ports.UserUpdate) (*domain.User, error) {
	user, ok := s.repo.Update(ctx, id, upd)
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	s.logger.Info().Str("user_id", id).Msg("user updated")
	return user, nil
}

func (s *UserService) Delete(ctx context.Context, id string) error {
	if !s.repo.Delete(ctx, id) {
		return domain.ErrUserNotFound
	}
	s.logger.Info().Str("user_id", id).Msg("user deleted")
	return nil
}

func (s *UserService) List(ctx context.Context) ([]*domain.User, error) {
	return s.repo.List(ctx), nil
}
