// Package google verifies Google-issued OAuth ID tokens and extracts the
// identity claims the rest of the system trusts.
package google

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/sirupsen/logrus"
	"google.golang.org/api/idtoken"
)

// ErrTokenInvalid is the only error callers see for a rejected assertion.
// The concrete reason goes to the log, never to the client.
var ErrTokenInvalid = errors.New("google id token rejected")

// Google publishes tokens under both issuer forms; both must be accepted.
var acceptedIssuers = map[string]bool{
	"accounts.google.com":         true,
	"https://accounts.google.com": true,
}

const issuedAtTolerance = 5 * time.Minute

// TokenInfo holds the verified identity claims. No field is populated before
// full verification passes.
type TokenInfo struct {
	Email   string
	Name    string
	Subject string
}

// verifyFunc performs the cryptographic verification of the raw token.
// Production uses idtoken.Validate; tests swap in a stub.
type verifyFunc func(ctx context.Context, token, audience string) (*idtoken.Payload, error)

// Validator is a stateless verifier of Google ID tokens.
type Validator struct {
	audiences []string
	verify    verifyFunc
	logger    *logrus.Logger
	now       func() time.Time
}

// NewValidator builds a validator accepting any of the given audiences
// (client ID plus an optional secondary audience).
func NewValidator(audiences []string, logger *logrus.Logger) *Validator {
	cleaned := make([]string, 0, len(audiences))
	for _, a := range audiences {
		if a = strings.TrimSpace(a); a != "" {
			cleaned = append(cleaned, a)
		}
	}
	return &Validator{
		audiences: cleaned,
		verify:    idtoken.Validate,
		logger:    logger,
		now:       time.Now,
	}
}

// Validate verifies the raw token and returns the extracted claims. Every
// failure path returns an error wrapping ErrTokenInvalid; no partial claims
// ever escape.
func (v *Validator) Validate(ctx context.Context, rawToken string) (*TokenInfo, error) {
	if strings.TrimSpace(rawToken) == "" {
		v.logger.Warn("google token validation failed: empty token")
		return nil, fmt.Errorf("%w: empty token", ErrTokenInvalid)
	}
	if len(v.audiences) == 0 {
		v.logger.Error("google token validation failed: no audience configured")
		return nil, fmt.Errorf("%w: audience not configured", ErrTokenInvalid)
	}

	// Signature, structure, and expiry are checked by the library. The
	// audience is checked against our allow-list afterwards so a secondary
	// audience can be accepted alongside the client ID.
	payload, err := v.verify(ctx, rawToken, "")
	if err != nil {
		v.logger.WithError(err).Warn("google token verification failed")
		return nil, fmt.Errorf("%w: %v", ErrTokenInvalid, err)
	}

	if !v.audienceAllowed(payload.Audience) {
		v.logger.WithField("audience", payload.Audience).Warn("google token has unexpected audience")
		return nil, fmt.Errorf("%w: audience mismatch", ErrTokenInvalid)
	}

	// Issuer is checked explicitly on top of the library's validation:
	// Google uses two issuer string forms and both must be allow-listed.
	if !acceptedIssuers[payload.Issuer] {
		v.logger.WithField("issuer", payload.Issuer).Warn("google token has invalid issuer")
		return nil, fmt.Errorf("%w: invalid issuer", ErrTokenInvalid)
	}

	issuedAt := time.Unix(payload.IssuedAt, 0)
	if issuedAt.After(v.now().Add(issuedAtTolerance)) {
		v.logger.WithField("issued_at", issuedAt).Warn("google token issued in the future")
		return nil, fmt.Errorf("%w: issued-at outside tolerance", ErrTokenInvalid)
	}

	email, _ := payload.Claims["email"].(string)
	name, _ := payload.Claims["name"].(string)
	if email == "" {
		v.logger.Warn("google token carries no email claim")
		return nil, fmt.Errorf("%w: missing email claim", ErrTokenInvalid)
	}

	v.logger.WithFields(logrus.Fields{"email": email, "issuer": payload.Issuer}).Info("google token validated")

	return &TokenInfo{Email: email, Name: name, Subject: payload.Subject}, nil
}

func (v *Validator) audienceAllowed(aud string) bool {
	for _, a := range v.audiences {
		if a == aud {
			return true
		}
	}
	return false
}
