package registration

import "errors"

var (
	ErrChallengeNotFound = errors.New("verification challenge not found or expired")
	ErrInvalidCode       = errors.New("invalid verification code")
	ErrTooManyAttempts   = errors.New("too many verification attempts")
	ErrMissingCode       = errors.New("challenge id and code are required")
)
