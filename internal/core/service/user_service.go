package service

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/spendbook/expenses-api/internal/core/domain"
	"github.com/spendbook/expenses-api/internal/core/ports"
)

type UserService struct {
	repo   ports.UserRepository
	logger zerolog.Logger
}

func NewUserService(repo ports.UserRepository, logger zerolog.Logger) *UserService {
	return &UserService{repo: repo, logger: logger}
}

func (s *UserService) List(ctx context.Context) ([]*domain.User, error) {
	return s.repo.List(ctx)
}

func (s *UserService) Get(ctx context.Context, id int64) (*domain.User, error) {
	return s.repo.FindByID(ctx, id)
}

// Create stores a new user. The repository assigns the id.
func (s *UserService) Create(ctx context.Context, name string) (*domain.User, error) {
	if name == "" {
		return nil, domain.ErrNameRequired
	}

	user := &domain.User{Name: name}
	if err := s.repo.Create(ctx, user); err != nil {
		s.logger.Error().Err(err).Msg("failed to create user")
		return nil, err
	}

	s.logger.Info().Int64("user_id", user.ID).Msg("user created")
	return user, nil
}

// Rename replaces the user's name in place.
func (s *UserService) Rename(ctx context.Context, id int64, name string) (*domain.User, error) {
	if name == "" {
		return nil, domain.ErrNameRequired
	}

	user, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	user.Name = name
	if err := s.repo.Update(ctx, user); err != nil {
		return nil, err
	}

	s.logger.Info().Int64("user_id", user.ID).Msg("user renamed")
	return user, nil
}

// Delete removes the user. Expenses referencing it keep their stale userId;
// the reference is only checked when an expense is created or reassigned.
func (s *UserService) Delete(ctx context.Context, id int64) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}

	s.logger.Info().Int64("user_id", id).Msg("user deleted")
	return nil
}
