package google

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/api/idtoken"
)

func quietLogger() *logrus.Logger {
	logger := logrus.New()
	logger.SetLevel(logrus.PanicLevel)
	return logger
}

func fixedNow() time.Time {
	return time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)
}

func validPayload() *idtoken.Payload {
	now := fixedNow()
	return &idtoken.Payload{
		Issuer:   "https://accounts.google.com",
		Audience: "client-id",
		Subject:  "google-sub-1",
		IssuedAt: now.Add(-time.Minute).Unix(),
		Expires:  now.Add(time.Hour).Unix(),
		Claims: map[string]interface{}{
			"email": "jane@example.com",
			"name":  "Jane Doe",
		},
	}
}

func newTestValidator(payload *idtoken.Payload, verifyErr error) *Validator {
	v := NewValidator([]string{"client-id", "secondary-aud"}, quietLogger())
	v.now = fixedNow
	v.verify = func(ctx context.Context, token, audience string) (*idtoken.Payload, error) {
		if verifyErr != nil {
			return nil, verifyErr
		}
		return payload, nil
	}
	return v
}

func TestValidate_Success(t *testing.T) {
	v := newTestValidator(validPayload(), nil)

	info, err := v.Validate(context.Background(), "raw-token")
	require.NoError(t, err)
	assert.Equal(t, "jane@example.com", info.Email)
	assert.Equal(t, "Jane Doe", info.Name)
	assert.Equal(t, "google-sub-1", info.Subject)
}

func TestValidate_AcceptsBothIssuerForms(t *testing.T) {
	for _, issuer := range []string{"accounts.google.com", "https://accounts.google.com"} {
		payload := validPayload()
		payload.Issuer = issuer
		v := newTestValidator(payload, nil)

		_, err := v.Validate(context.Background(), "raw-token")
		assert.NoError(t, err, "issuer %s", issuer)
	}
}

func TestValidate_SecondaryAudience(t *testing.T) {
	payload := validPayload()
	payload.Audience = "secondary-aud"
	v := newTestValidator(payload, nil)

	_, err := v.Validate(context.Background(), "raw-token")
	assert.NoError(t, err)
}

func TestValidate_EmptyToken(t *testing.T) {
	v := newTestValidator(validPayload(), nil)

	for _, raw := range []string{"", "   "} {
		_, err := v.Validate(context.Background(), raw)
		assert.ErrorIs(t, err, ErrTokenInvalid)
	}
}

func TestValidate_NoAudienceConfigured(t *testing.T) {
	v := NewValidator(nil, quietLogger())

	_, err := v.Validate(context.Background(), "raw-token")
	assert.ErrorIs(t, err, ErrTokenInvalid)
}

func TestValidate_VerificationFailure(t *testing.T) {
	v := newTestValidator(nil, errors.New("signature mismatch"))

	_, err := v.Validate(context.Background(), "raw-token")
	assert.ErrorIs(t, err, ErrTokenInvalid)
}

func TestValidate_AudienceMismatch(t *testing.T) {
	payload := validPayload()
	payload.Audience = "someone-else"
	v := newTestValidator(payload, nil)

	_, err := v.Validate(context.Background(), "raw-token")
	assert.ErrorIs(t, err, ErrTokenInvalid)
}

func TestValidate_InvalidIssuer(t *testing.T) {
	payload := validPayload()
	payload.Issuer = "https://evil.example.com"
	v := newTestValidator(payload, nil)

	_, err := v.Validate(context.Background(), "raw-token")
	assert.ErrorIs(t, err, ErrTokenInvalid)
}

func TestValidate_IssuedAtWithinTolerance(t *testing.T) {
	// Up to five minutes of clock skew on issued-at is accepted.
	payload := validPayload()
	payload.IssuedAt = fixedNow().Add(4 * time.Minute).Unix()
	v := newTestValidator(payload, nil)

	_, err := v.Validate(context.Background(), "raw-token")
	assert.NoError(t, err)
}

func TestValidate_IssuedAtBeyondTolerance(t *testing.T) {
	payload := validPayload()
	payload.IssuedAt = fixedNow().Add(6 * time.Minute).Unix()
	v := newTestValidator(payload, nil)

	_, err := v.Validate(context.Background(), "raw-token")
	assert.ErrorIs(t, err, ErrTokenInvalid)
}

func TestValidate_MissingEmailClaim(t *testing.T) {
	payload := validPayload()
	delete(payload.Claims, "email")
	v := newTestValidator(payload, nil)

	_, err := v.Validate(context.Background(), "raw-token")
	assert.ErrorIs(t, err, ErrTokenInvalid)
}
