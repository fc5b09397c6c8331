package entity

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleUser(t *testing.T) *User {
	t.Helper()
	email, err := NewEmail("test@example.com")
	require.NoError(t, err)
	u, err := NewUser("Test User", email, "1234567890")
	require.NoError(t, err)
	return u
}

func TestNewUser(t *testing.T) {
	u := sampleUser(t)

	assert.NotEqual(t, uuid.Nil, u.ID())
	assert.Equal(t, "Test User", u.Name())
	assert.Equal(t, "test@example.com", u.Email().Value())
	assert.Equal(t, "1234567890", u.Phone())
	assert.True(t, u.IsActive())
	assert.WithinDuration(t, time.Now().UTC(), u.CreatedAt(), 2*time.Second)
}

func TestNewUser_BlankName(t *testing.T) {
	email, err := NewEmail("test@example.com")
	require.NoError(t, err)

	for _, name := range []string{"", "   "} {
		_, err := NewUser(name, email, "")
		assert.ErrorIs(t, err, ErrUserNameEmpty, "name %q", name)
	}
}

func TestNewUser_TrimsNameAndPhone(t *testing.T) {
	email, err := NewEmail("test@example.com")
	require.NoError(t, err)
	u, err := NewUser("  Jane Doe  ", email, "  555 ")
	require.NoError(t, err)
	assert.Equal(t, "Jane Doe", u.Name())
	assert.Equal(t, "555", u.Phone())
}

func TestRehydrateUser(t *testing.T) {
	email, err := NewEmail("old@example.com")
	require.NoError(t, err)
	id := uuid.New()
	created := time.Date(2023, 4, 1, 12, 0, 0, 0, time.UTC)

	u, err := RehydrateUser(id, "Jane", email, "", false, created)
	require.NoError(t, err)
	assert.Equal(t, id, u.ID())
	assert.False(t, u.IsActive())
	assert.Equal(t, created, u.CreatedAt())
}

func TestRehydrateUser_Invalid(t *testing.T) {
	email, err := NewEmail("test@example.com")
	require.NoError(t, err)
	now := time.Now().UTC()

	_, err = RehydrateUser(uuid.Nil, "Jane", email, "", true, now)
	assert.ErrorIs(t, err, ErrUserIDEmpty)

	_, err = RehydrateUser(uuid.New(), "  ", email, "", true, now)
	assert.ErrorIs(t, err, ErrUserNameEmpty)

	_, err = RehydrateUser(uuid.New(), "Jane", Email{}, "", true, now)
	assert.ErrorIs(t, err, ErrEmailRequired)
}

func TestUpdateProfile(t *testing.T) {
	u := sampleUser(t)
	createdAt := u.CreatedAt()
	email := u.Email()

	require.NoError(t, u.UpdateProfile("Updated Name", "9876543210"))
	assert.Equal(t, "Updated Name", u.Name())
	assert.Equal(t, "9876543210", u.Phone())
	assert.Equal(t, email, u.Email())
	assert.Equal(t, createdAt, u.CreatedAt())
}

func TestUpdateProfile_BlankName(t *testing.T) {
	u := sampleUser(t)
	err := u.UpdateProfile("   ", "123")
	assert.ErrorIs(t, err, ErrUserNameEmpty)
	assert.Equal(t, "Test User", u.Name())
}

func TestUpdateEmail(t *testing.T) {
	u := sampleUser(t)
	next, err := NewEmail("new@example.com")
	require.NoError(t, err)

	require.NoError(t, u.UpdateEmail(next))
	assert.Equal(t, "new@example.com", u.Email().Value())

	assert.ErrorIs(t, u.UpdateEmail(Email{}), ErrEmailRequired)
}

func TestActivateDeactivate_Idempotent(t *testing.T) {
	u := sampleUser(t)
	require.True(t, u.IsActive())

	u.Deactivate()
	assert.False(t, u.IsActive())
	u.Deactivate()
	assert.False(t, u.IsActive())

	u.Activate()
	assert.True(t, u.IsActive())
	u.Activate()
	assert.True(t, u.IsActive())
}
