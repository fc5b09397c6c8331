package application

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"

	"github.com/foodhub-app/user-service/internal/auth/google"
)

// TokenValidator verifies a third-party identity assertion and returns the
// verified claims.
type TokenValidator interface {
	Validate(ctx context.Context, rawToken string) (*google.TokenInfo, error)
}

// TokenIssuer mints application session tokens for a verified identity.
type TokenIssuer interface {
	Generate(userID uuid.UUID, email, name string) (token string, jti string, expiresAt time.Time, err error)
}

// LoginResult is what a successful login returns to the caller.
type LoginResult struct {
	UserID uuid.UUID `json:"user_id"`
	Email  string    `json:"email"`
	Name   string    `json:"name"`
	Token  string    `json:"token"`
}

// AuthService composes the token validator, the user use cases, and the
// token issuer into the end-to-end login flow.
type AuthService struct {
	Validator TokenValidator
	Users     *UserService
	Issuer    TokenIssuer
	Redis     *redis.Client
	Logger    *logrus.Logger
}

func NewAuthService(validator TokenValidator, users *UserService, issuer TokenIssuer, rdb *redis.Client, logger *logrus.Logger) *AuthService {
	return &AuthService{Validator: validator, Users: users, Issuer: issuer, Redis: rdb, Logger: logger}
}

func issuedTokenKey(jti string) string {
	return "token:issued:" + jti
}

// Login runs the full flow: validate the Google ID token, find or create the
// user for the verified email, and mint a session token. A rejected
// assertion surfaces as ErrAuthRejected; everything else is an internal
// failure the handler turns into a generic response.
func (s *AuthService) Login(ctx context.Context, rawIDToken string) (*LoginResult, error) {
	info, err := s.Validator.Validate(ctx, rawIDToken)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrAuthRejected, err)
	}

	userID, err := s.resolveUser(ctx, info)
	if err != nil {
		return nil, err
	}

	token, jti, expiresAt, err := s.Issuer.Generate(userID, info.Email, info.Name)
	if err != nil {
		return nil, fmt.Errorf("issue session token: %w", err)
	}
	s.recordIssuedToken(ctx, jti, userID, expiresAt)

	s.Logger.WithFields(logrus.Fields{"user_id": userID, "email": info.Email}).Info("google authentication completed")

	return &LoginResult{UserID: userID, Email: info.Email, Name: info.Name, Token: token}, nil
}

// resolveUser reuses the existing user for the verified email or creates a
// fresh one. A conflict from the create path means another request won the
// insert race, so the lookup is retried once.
func (s *AuthService) resolveUser(ctx context.Context, info *google.TokenInfo) (uuid.UUID, error) {
	existing, err := s.Users.GetByEmail(ctx, info.Email)
	if err != nil {
		return uuid.Nil, err
	}
	if existing != nil {
		s.Logger.WithFields(logrus.Fields{"user_id": existing.ID, "email": info.Email}).Info("existing user for google login")
		return existing.ID, nil
	}

	name := info.Name
	if name == "" {
		name = info.Email
	}
	userID, err := s.Users.Create(ctx, CreateUserDto{Name: name, Email: info.Email})
	if err == nil {
		s.Logger.WithFields(logrus.Fields{"user_id": userID, "email": info.Email}).Info("created user for google login")
		return userID, nil
	}
	if !errors.Is(err, ErrConflict) {
		return uuid.Nil, err
	}

	winner, err := s.Users.GetByEmail(ctx, info.Email)
	if err != nil {
		return uuid.Nil, err
	}
	if winner == nil {
		return uuid.Nil, fmt.Errorf("%w: user vanished after duplicate insert", ErrStorage)
	}
	return winner.ID, nil
}

// recordIssuedToken writes the jti to redis with the token's lifetime as
// TTL. Purely diagnostic: nothing reads this to enforce anything, and a
// missing redis client or a write failure never blocks a login.
func (s *AuthService) recordIssuedToken(ctx context.Context, jti string, userID uuid.UUID, expiresAt time.Time) {
	if s.Redis == nil {
		return
	}
	ttl := time.Until(expiresAt)
	if ttl <= 0 {
		return
	}
	if err := s.Redis.Set(ctx, issuedTokenKey(jti), userID.String(), ttl).Err(); err != nil {
		s.Logger.WithError(err).WithField("jti", jti).Warn("failed to record issued token")
	}
}
