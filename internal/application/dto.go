package application

import (
	"time"

	"github.com/google/uuid"

	"github.com/foodhub-app/user-service/internal/domain/entity"
)

// UserDto is the flat projection of the user aggregate returned by queries.
type UserDto struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Phone     string    `json:"phone,omitempty"`
	IsActive  bool      `json:"is_active"`
	CreatedAt time.Time `json:"created_at"`
}

// CreateUserDto carries the input for user creation.
type CreateUserDto struct {
	Name  string `json:"name" binding:"required"`
	Email string `json:"email" binding:"required,email"`
	Phone string `json:"phone"`
}

// UpdateUserDto carries the input for a profile update. Email is deliberately
// absent: profile updates never change the email address.
type UpdateUserDto struct {
	ID    uuid.UUID `json:"id"`
	Name  string    `json:"name" binding:"required"`
	Phone string    `json:"phone"`
}

func toUserDto(u *entity.User) *UserDto {
	return &UserDto{
		ID:        u.ID(),
		Name:      u.Name(),
		Email:     u.Email().Value(),
		Phone:     u.Phone(),
		IsActive:  u.IsActive(),
		CreatedAt: u.CreatedAt(),
	}
}
