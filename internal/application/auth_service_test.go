package application

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/foodhub-app/user-service/internal/auth/google"
	"github.com/foodhub-app/user-service/pkg/helpers"
)

// stubValidator accepts exactly one token string and returns fixed claims.
type stubValidator struct {
	accepted string
	info     *google.TokenInfo
}

func (s *stubValidator) Validate(ctx context.Context, rawToken string) (*google.TokenInfo, error) {
	if rawToken != s.accepted {
		return nil, google.ErrTokenInvalid
	}
	return s.info, nil
}

func newAuthService(t *testing.T, validator TokenValidator) (*AuthService, *UserService) {
	t.Helper()
	users, _ := newUserService()
	issuer, err := helpers.NewJWTManager("test-secret", "FoodHub", "FoodHub", time.Hour)
	require.NoError(t, err)
	return NewAuthService(validator, users, issuer, nil, testLogger()), users
}

func TestLogin_RejectedToken(t *testing.T) {
	validator := &stubValidator{accepted: "good-token"}
	svc, users := newAuthService(t, validator)

	_, err := svc.Login(context.Background(), "forged-token")
	assert.ErrorIs(t, err, ErrAuthRejected)

	// No user may be created for a rejected assertion.
	all, err := users.GetAll(context.Background())
	require.NoError(t, err)
	assert.Empty(t, all)
}

func TestLogin_CreatesUserForUnseenEmail(t *testing.T) {
	validator := &stubValidator{
		accepted: "good-token",
		info:     &google.TokenInfo{Email: "jane@example.com", Name: "Jane Doe", Subject: "google-sub-1"},
	}
	svc, users := newAuthService(t, validator)
	ctx := context.Background()

	result, err := svc.Login(ctx, "good-token")
	require.NoError(t, err)
	assert.NotEqual(t, uuid.Nil, result.UserID)
	assert.Equal(t, "jane@example.com", result.Email)
	assert.Equal(t, "Jane Doe", result.Name)
	assert.NotEmpty(t, result.Token)

	created, err := users.GetByEmail(ctx, "jane@example.com")
	require.NoError(t, err)
	require.NotNil(t, created)
	assert.Equal(t, result.UserID, created.ID)
}

func TestLogin_ReusesExistingUser(t *testing.T) {
	validator := &stubValidator{
		accepted: "good-token",
		info:     &google.TokenInfo{Email: "jane@example.com", Name: "Jane Doe", Subject: "google-sub-1"},
	}
	svc, users := newAuthService(t, validator)
	ctx := context.Background()

	existingID, err := users.Create(ctx, CreateUserDto{Name: "Jane Doe", Email: "jane@example.com"})
	require.NoError(t, err)

	result, err := svc.Login(ctx, "good-token")
	require.NoError(t, err)
	assert.Equal(t, existingID, result.UserID)

	all, err := users.GetAll(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 1)
}

func TestLogin_TokenCarriesIdentity(t *testing.T) {
	validator := &stubValidator{
		accepted: "good-token",
		info:     &google.TokenInfo{Email: "jane@example.com", Name: "Jane Doe", Subject: "google-sub-1"},
	}
	users, _ := newUserService()
	issuer, err := helpers.NewJWTManager("test-secret", "FoodHub", "FoodHub", time.Hour)
	require.NoError(t, err)
	svc := NewAuthService(validator, users, issuer, nil, testLogger())

	result, err := svc.Login(context.Background(), "good-token")
	require.NoError(t, err)

	claims, err := issuer.Parse(result.Token)
	require.NoError(t, err)
	assert.Equal(t, result.UserID.String(), claims.Subject)
	assert.Equal(t, "jane@example.com", claims.Email)
	assert.Equal(t, "Jane Doe", claims.Name)
	assert.NotEmpty(t, claims.ID)
}

func TestLogin_NameFallsBackToEmail(t *testing.T) {
	validator := &stubValidator{
		accepted: "good-token",
		info:     &google.TokenInfo{Email: "jane@example.com", Subject: "google-sub-1"},
	}
	svc, users := newAuthService(t, validator)

	result, err := svc.Login(context.Background(), "good-token")
	require.NoError(t, err)

	created, err := users.GetByID(context.Background(), result.UserID)
	require.NoError(t, err)
	require.NotNil(t, created)
	assert.Equal(t, "jane@example.com", created.Name)
}
