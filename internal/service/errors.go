package service

import (
	"errors"
	"fmt"
)

// ErrValidation is the sentinel wrapped by all input-validation failures.
// Handlers map it to 400.
var ErrValidation = errors.New("validation failed")

// validationError wraps ErrValidation with a detail message.
func validationError(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrValidation, fmt.Sprintf(format, args...))
}
