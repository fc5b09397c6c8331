package repository

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"github.com/foodhub-app/user-service/internal/domain/entity"
)

var (
	// ErrNotFound is returned when no user matches the given id or email.
	ErrNotFound = errors.New("user not found")
	// ErrDuplicateEmail is returned when an insert violates the unique
	// constraint on the normalized email column.
	ErrDuplicateEmail = errors.New("email already exists")
)

// UserRepository defines the persistence operations for the user aggregate.
// Implementations return fresh aggregate instances on every read and must
// honor context cancellation on in-flight calls.
type UserRepository interface {
	Add(ctx context.Context, u *entity.User) error
	GetByID(ctx context.Context, id uuid.UUID) (*entity.User, error)
	GetByEmail(ctx context.Context, email string) (*entity.User, error)
	GetAll(ctx context.Context) ([]*entity.User, error)
	Update(ctx context.Context, u *entity.User) error
}
