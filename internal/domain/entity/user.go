package entity

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// User is the aggregate root for the user domain. All fields are unexported;
// every mutation goes through a method so the invariants (non-empty id and
// name, valid email) hold for the whole lifetime of the value.
type User struct {
	id        uuid.UUID
	name      string
	email     Email
	phone     string
	isActive  bool
	createdAt time.Time
}

// NewUser creates a fresh user with a generated id, active state, and the
// current UTC time as creation timestamp.
func NewUser(name string, email Email, phone string) (*User, error) {
	return RehydrateUser(uuid.New(), name, email, phone, true, time.Now().UTC())
}

// RehydrateUser rebuilds a user from stored fields. Persistence adapters use
// this; it validates everything again so a corrupt row cannot produce an
// invalid aggregate.
func RehydrateUser(id uuid.UUID, name string, email Email, phone string, isActive bool, createdAt time.Time) (*User, error) {
	if id == uuid.Nil {
		return nil, ErrUserIDEmpty
	}
	if strings.TrimSpace(name) == "" {
		return nil, ErrUserNameEmpty
	}
	if email.IsZero() {
		return nil, ErrEmailRequired
	}
	return &User{
		id:        id,
		name:      strings.TrimSpace(name),
		email:     email,
		phone:     strings.TrimSpace(phone),
		isActive:  isActive,
		createdAt: createdAt,
	}, nil
}

func (u *User) ID() uuid.UUID        { return u.id }
func (u *User) Name() string         { return u.name }
func (u *User) Email() Email         { return u.email }
func (u *User) Phone() string        { return u.phone }
func (u *User) IsActive() bool       { return u.isActive }
func (u *User) CreatedAt() time.Time { return u.createdAt }

// UpdateProfile replaces name and phone. Email and creation timestamp are
// never touched here.
func (u *User) UpdateProfile(name, phone string) error {
	if strings.TrimSpace(name) == "" {
		return ErrUserNameEmpty
	}
	u.name = strings.TrimSpace(name)
	u.phone = strings.TrimSpace(phone)
	return nil
}

// UpdateEmail swaps the email value object.
func (u *User) UpdateEmail(newEmail Email) error {
	if newEmail.IsZero() {
		return ErrEmailRequired
	}
	u.email = newEmail
	return nil
}

// Activate is a no-op when the user is already active.
func (u *User) Activate() {
	if u.isActive {
		return
	}
	u.isActive = true
}

// Deactivate is a no-op when the user is already inactive.
func (u *User) Deactivate() {
	if !u.isActive {
		return
	}
	u.isActive = false
}
