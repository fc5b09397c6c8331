// Package inmemory provides a map-backed UserRepository used by service
// tests and the seed command's dry-run mode.
package inmemory

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/foodhub-app/user-service/internal/domain/entity"
	"github.com/foodhub-app/user-service/internal/domain/repository"
)

// UserRepository is an in-memory implementation of repository.UserRepository.
// It enforces the same email uniqueness the Postgres schema does.
type UserRepository struct {
	mu      sync.RWMutex
	byID    map[uuid.UUID]*entity.User
	byEmail map[string]uuid.UUID
}

var _ repository.UserRepository = (*UserRepository)(nil)

func NewUserRepository() *UserRepository {
	return &UserRepository{
		byID:    make(map[uuid.UUID]*entity.User),
		byEmail: make(map[string]uuid.UUID),
	}
}

func (r *UserRepository) Add(ctx context.Context, u *entity.User) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()

	email := u.Email().Value()
	if _, exists := r.byEmail[email]; exists {
		return repository.ErrDuplicateEmail
	}
	clone := *u
	r.byID[u.ID()] = &clone
	r.byEmail[email] = u.ID()
	return nil
}

func (r *UserRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.User, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()

	u, ok := r.byID[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	clone := *u
	return &clone, nil
}

func (r *UserRepository) GetByEmail(ctx context.Context, email string) (*entity.User, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()

	id, ok := r.byEmail[entity.NormalizeEmail(email)]
	if !ok {
		return nil, repository.ErrNotFound
	}
	clone := *r.byID[id]
	return &clone, nil
}

func (r *UserRepository) GetAll(ctx context.Context) ([]*entity.User, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()

	users := make([]*entity.User, 0, len(r.byID))
	for _, u := range r.byID {
		clone := *u
		users = append(users, &clone)
	}
	return users, nil
}

func (r *UserRepository) Update(ctx context.Context, u *entity.User) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()

	prev, ok := r.byID[u.ID()]
	if !ok {
		return repository.ErrNotFound
	}
	newEmail := u.Email().Value()
	if owner, exists := r.byEmail[newEmail]; exists && owner != u.ID() {
		return repository.ErrDuplicateEmail
	}
	delete(r.byEmail, prev.Email().Value())
	clone := *u
	r.byID[u.ID()] = &clone
	r.byEmail[newEmail] = u.ID()
	return nil
}
