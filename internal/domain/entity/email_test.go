package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewEmail_Valid(t *testing.T) {
	cases := []string{
		"user@example.com",
		"test.user@domain.co.uk",
		"user+tag@gmail.com",
		"123@test.com",
	}
	for _, raw := range cases {
		t.Run(raw, func(t *testing.T) {
			email, err := NewEmail(raw)
			require.NoError(t, err)
			assert.Equal(t, raw, email.Value())
			assert.False(t, email.IsZero())
		})
	}
}

func TestNewEmail_Normalizes(t *testing.T) {
	email, err := NewEmail("  USER@Example.COM ")
	require.NoError(t, err)
	assert.Equal(t, "user@example.com", email.Value())
}

func TestNewEmail_Empty(t *testing.T) {
	for _, raw := range []string{"", "   ", "\t\n"} {
		_, err := NewEmail(raw)
		assert.ErrorIs(t, err, ErrEmailEmpty, "input %q", raw)
	}
}

func TestNewEmail_InvalidFormat(t *testing.T) {
	cases := []string{
		"notanemail",
		"missing@domain",
		"@nodomain.com",
		"user @domain.com",
		"user@.com",
	}
	for _, raw := range cases {
		t.Run(raw, func(t *testing.T) {
			_, err := NewEmail(raw)
			assert.ErrorIs(t, err, ErrEmailFormat)
		})
	}
}

func TestEmail_EqualityIsNormalizationInvariant(t *testing.T) {
	a, err := NewEmail("Test@Example.COM")
	require.NoError(t, err)
	b, err := NewEmail("test@example.com")
	require.NoError(t, err)
	assert.Equal(t, a, b)
}

func TestNormalizeEmail(t *testing.T) {
	assert.Equal(t, "a@b.com", NormalizeEmail("  A@B.Com "))
}
