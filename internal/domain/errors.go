package domain

import "errors"

// Sentinel errors for the domain layer. These provide consistent, checkable
// errors for the few operations of the site that can fail.
var (
	ErrInvalidEmail   = errors.New("invalid email address")
	ErrInvalidContent = errors.New("invalid site content")
	ErrSinkClosed     = errors.New("newsletter sink is closed")
)
