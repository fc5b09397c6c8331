package entity

import "errors"

var (
	// ErrEmailEmpty is returned when an email is constructed from a blank string.
	ErrEmailEmpty = errors.New("email cannot be empty")
	// ErrEmailFormat is returned when an email does not match the accepted grammar.
	ErrEmailFormat = errors.New("email format is invalid")

	ErrUserIDEmpty   = errors.New("user id must not be empty")
	ErrUserNameEmpty = errors.New("user name cannot be empty")
	ErrEmailRequired = errors.New("email is required")
)
