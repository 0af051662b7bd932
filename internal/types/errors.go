package types

import (
	"errors"
	"fmt"
)

// Sentinel error kinds. Handlers map these to HTTP status codes:
// invalid input -> 400, external service -> 502, export -> 500.
var (
	ErrInvalidInput    = errors.New("invalid input")
	ErrExternalService = errors.New("external service error")
	ErrExport          = errors.New("export error")
)

// InvalidInputf wraps ErrInvalidInput with a formatted message.
func InvalidInputf(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrInvalidInput, fmt.Sprintf(format, args...))
}

// ExternalServicef wraps ErrExternalService with a formatted message.
func ExternalServicef(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrExternalService, fmt.Sprintf(format, args...))
}

// Exportf wraps ErrExport with a formatted message.
func Exportf(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrExport, fmt.Sprintf(format, args...))
}
