package httperr

import (
	"errors"
	"strings"
)

// BusinessError carries a stable snake_case code for clients and a pt-BR
// message for people.
type BusinessError struct {
	Code    string
	Message string
}

func (e BusinessError) Error() string {
	if e.Message == "" {
		return e.Code
	}
	return e.Code + ": " + e.Message
}

func ErrBusiness(code string) error {
	return BusinessError{Code: code}
}

// Validation builds a business error with a readable reason.
func Validation(code, message string) error {
	return BusinessError{Code: code, Message: message}
}

func IsBusiness(err error, code string) bool {
	var be BusinessError
	if errors.As(err, &be) {
		return be.Code == code
	}
	return false
}

func AsBusiness(err error) (BusinessError, bool) {
	var be BusinessError
	if errors.As(err, &be) {
		return be, true
	}
	return BusinessError{}, false
}

// IsNotFound reports a business error whose code ends in _not_found.
func IsNotFound(err error) bool {
	be, ok := AsBusiness(err)
	return ok && strings.HasSuffix(be.Code, "_not_found")
}
