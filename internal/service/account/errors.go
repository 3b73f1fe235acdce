package account

import "errors"

var (
	ErrMissingRequiredFields = errors.New("missing required fields")
	ErrInvalidUsername       = errors.New("invalid username")
	ErrInvalidPassword       = errors.New("invalid password")
	ErrInvalidEmail          = errors.New("invalid email")
	ErrInvalidMobile         = errors.New("invalid mobile number")
	ErrInvalidBusinessType   = errors.New("invalid business type")

	ErrDuplicateUsername  = errors.New("username already exists")
	ErrAccountNotFound    = errors.New("account not found")
	ErrInvalidCredentials = errors.New("invalid credentials or account not approved")
)
