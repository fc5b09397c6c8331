package application

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/foodhub-app/user-service/internal/domain/entity"
	repo "github.com/foodhub-app/user-service/internal/domain/repository"
)

// UserService orchestrates the user use cases over the repository. It owns
// the mapping between aggregates and transfer objects.
type UserService struct {
	Repo   repo.UserRepository
	Logger *logrus.Logger
}

func NewUserService(r repo.UserRepository, logger *logrus.Logger) *UserService {
	return &UserService{Repo: r, Logger: logger}
}

// Create checks for an existing user with the same normalized email, then
// constructs and persists a new aggregate. The pre-check is race-prone by
// nature; the unique constraint on the email column is the real guard, and a
// duplicate insert is translated to the same conflict error the pre-check
// produces.
func (s *UserService) Create(ctx context.Context, dto CreateUserDto) (uuid.UUID, error) {
	email, err := entity.NewEmail(dto.Email)
	if err != nil {
		return uuid.Nil, fmt.Errorf("%w: %w", ErrValidation, err)
	}

	existing, err := s.Repo.GetByEmail(ctx, email.Value())
	if err != nil && !errors.Is(err, repo.ErrNotFound) {
		return uuid.Nil, fmt.Errorf("%w: %w", ErrStorage, err)
	}
	if existing != nil {
		return uuid.Nil, fmt.Errorf("%w: %s", ErrConflict, email.Value())
	}

	user, err := entity.NewUser(dto.Name, email, dto.Phone)
	if err != nil {
		return uuid.Nil, fmt.Errorf("%w: %w", ErrValidation, err)
	}

	if err := s.Repo.Add(ctx, user); err != nil {
		if errors.Is(err, repo.ErrDuplicateEmail) {
			return uuid.Nil, fmt.Errorf("%w: %s", ErrConflict, email.Value())
		}
		return uuid.Nil, fmt.Errorf("%w: %w", ErrStorage, err)
	}

	s.Logger.WithFields(logrus.Fields{"user_id": user.ID(), "email": email.Value()}).Info("user created")
	return user.ID(), nil
}

// Update applies a profile update to an existing user. Email and creation
// timestamp are never changed here.
func (s *UserService) Update(ctx context.Context, dto UpdateUserDto) error {
	if dto.ID == uuid.Nil {
		return fmt.Errorf("%w: %w", ErrValidation, entity.ErrUserIDEmpty)
	}

	user, err := s.Repo.GetByID(ctx, dto.ID)
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return fmt.Errorf("%w: %s", ErrNotFound, dto.ID)
		}
		return fmt.Errorf("%w: %w", ErrStorage, err)
	}

	if err := user.UpdateProfile(dto.Name, dto.Phone); err != nil {
		return fmt.Errorf("%w: %w", ErrValidation, err)
	}

	if err := s.Repo.Update(ctx, user); err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return fmt.Errorf("%w: %s", ErrNotFound, dto.ID)
		}
		return fmt.Errorf("%w: %w", ErrStorage, err)
	}

	s.Logger.WithField("user_id", dto.ID).Info("user updated")
	return nil
}

// GetByID returns the user as a transfer object, or (nil, nil) when absent.
func (s *UserService) GetByID(ctx context.Context, id uuid.UUID) (*UserDto, error) {
	if id == uuid.Nil {
		return nil, fmt.Errorf("%w: %w", ErrValidation, entity.ErrUserIDEmpty)
	}

	user, err := s.Repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("%w: %w", ErrStorage, err)
	}
	return toUserDto(user), nil
}

// GetByEmail normalizes the email the same way NewEmail does before the
// lookup, so case and whitespace variations match. Absent users yield
// (nil, nil), not an error.
func (s *UserService) GetByEmail(ctx context.Context, email string) (*UserDto, error) {
	normalized, err := entity.NewEmail(email)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrValidation, err)
	}

	user, err := s.Repo.GetByEmail(ctx, normalized.Value())
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("%w: %w", ErrStorage, err)
	}
	return toUserDto(user), nil
}

// GetAll returns every user. No pagination: callers must treat this as a
// design limit for large datasets.
func (s *UserService) GetAll(ctx context.Context) ([]*UserDto, error) {
	users, err := s.Repo.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrStorage, err)
	}

	dtos := make([]*UserDto, 0, len(users))
	for _, u := range users {
		dtos = append(dtos, toUserDto(u))
	}
	return dtos, nil
}
