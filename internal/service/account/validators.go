package account

import (
	"regexp"
	"strings"

	"freightforge/internal/entities"

	"github.com/go-playground/validator/v10"
)

const minPasswordLength = 6

var (
	validate = validator.New(validator.WithRequiredStructEnabled())

	usernamePattern = regexp.MustCompile(`^[A-Za-z0-9_.-]{3,32}$`)
	mobilePattern   = regexp.MustCompile(`^\+?[0-9][0-9 ()-]{3,19}$`)
)

func isBlank(s *string) bool {
	return s == nil || strings.TrimSpace(*s) == ""
}

func isValidUsername(username string) bool {
	return usernamePattern.MatchString(username)
}

func isValidPassword(password string) bool {
	return len(password) >= minPasswordLength
}

func isValidEmail(email string) bool {
	return validate.Var(email, "required,email") == nil
}

func isValidMobile(mobile string) bool {
	return mobilePattern.MatchString(strings.TrimSpace(mobile))
}

// Administration is reserved for the built-in admin account.
func isValidBusinessType(t entities.BusinessType) bool {
	switch t {
	case entities.BusinessAgriculture, entities.BusinessLogistics, entities.BusinessOther:
		return true
	default:
		return false
	}
}
