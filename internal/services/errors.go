package services

import (
	"errors"
	"fmt"

	"github.com/Rajiv3012/Pet-Adoption-Platform-sub001/internal/repositories"
)

// ValidationError reports input the caller must fix. Its message is safe to
// return to clients.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string { return e.Message }

func invalid(format string, args ...interface{}) error {
	return &ValidationError{Message: fmt.Sprintf(format, args...)}
}

// IsValidation reports whether err is (or wraps) a ValidationError.
func IsValidation(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}

// IsNotFound reports whether err wraps repositories.ErrNotFound.
func IsNotFound(err error) bool {
	return errors.Is(err, repositories.ErrNotFound)
}

// ErrForbidden is returned when the caller may not touch the resource.
var ErrForbidden = errors.New("forbidden")
