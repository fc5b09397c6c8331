package helpers

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// ErrSecretMissing makes a missing signing secret fatal at construction time
// rather than a silent per-request failure.
var ErrSecretMissing = errors.New("jwt signing secret not configured")

const defaultTokenTTL = 60 * time.Minute

// SessionClaims is the claim set carried by application session tokens.
type SessionClaims struct {
	Email string `json:"email"`
	Name  string `json:"name"`
	jwt.RegisteredClaims
}

// JWTManager mints and parses the application's session tokens (HS256).
// Tokens stay valid until their embedded expiry; there is no revocation.
type JWTManager struct {
	secret   []byte
	issuer   string
	audience string
	ttl      time.Duration
	now      func() time.Time
}

// NewJWTManager fails when the secret is empty. A non-positive ttl falls back
// to 60 minutes.
func NewJWTManager(secret, issuer, audience string, ttl time.Duration) (*JWTManager, error) {
	if secret == "" {
		return nil, ErrSecretMissing
	}
	if ttl <= 0 {
		ttl = defaultTokenTTL
	}
	return &JWTManager{
		secret:   []byte(secret),
		issuer:   issuer,
		audience: audience,
		ttl:      ttl,
		now:      time.Now,
	}, nil
}

// Generate mints a session token for the given verified identity. The jti is
// a fresh uuid so issued tokens can be traced individually.
func (m *JWTManager) Generate(userID uuid.UUID, email, name string) (token string, jti string, expiresAt time.Time, err error) {
	now := m.now()
	expiresAt = now.Add(m.ttl)
	jti = uuid.NewString()

	claims := &SessionClaims{
		Email: email,
		Name:  name,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   userID.String(),
			ID:        jti,
			Issuer:    m.issuer,
			Audience:  jwt.ClaimStrings{m.audience},
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(expiresAt),
		},
	}

	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	token, err = t.SignedString(m.secret)
	return token, jti, expiresAt, err
}

// Parse validates signature, issuer, audience, and expiry (no extra
// tolerance) and returns the claims.
func (m *JWTManager) Parse(tokenStr string) (*SessionClaims, error) {
	claims := &SessionClaims{}
	tkn, err := jwt.ParseWithClaims(tokenStr, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return m.secret, nil
	}, jwt.WithIssuer(m.issuer), jwt.WithAudience(m.audience), jwt.WithTimeFunc(func() time.Time { return m.now() }))
	if err != nil {
		return nil, err
	}
	if !tkn.Valid {
		return nil, errors.New("invalid token")
	}
	return claims, nil
}

// TTL reports the configured token lifetime.
func (m *JWTManager) TTL() time.Duration { return m.ttl }
