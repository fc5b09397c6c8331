package entity

import (
	"regexp"
	"strings"
)

// local-part @ domain labels ending in a 2+ letter TLD. Input is lower-cased
// before matching, so the pattern only needs the lower-case ranges.
var emailPattern = regexp.MustCompile(`^[a-z0-9._%+-]+@[a-z0-9.-]+\.[a-z]{2,}$`)

// Email is an immutable value object holding a normalized email address.
// Two emails differing only in case or surrounding whitespace compare equal.
type Email struct {
	value string
}

// NewEmail normalizes raw (trim, lower-case) and validates it.
// Construction is the only way to obtain a non-zero Email.
func NewEmail(raw string) (Email, error) {
	if strings.TrimSpace(raw) == "" {
		return Email{}, ErrEmailEmpty
	}
	normalized := strings.ToLower(strings.TrimSpace(raw))
	if !emailPattern.MatchString(normalized) {
		return Email{}, ErrEmailFormat
	}
	return Email{value: normalized}, nil
}

// Value returns the normalized address.
func (e Email) Value() string { return e.value }

func (e Email) String() string { return e.value }

// IsZero reports whether e is the zero value (never produced by NewEmail).
func (e Email) IsZero() bool { return e.value == "" }

// NormalizeEmail applies the same normalization NewEmail uses, without
// validating. Lookups must use this so case variations match stored rows.
func NormalizeEmail(raw string) string {
	return strings.ToLower(strings.TrimSpace(raw))
}
