package histlog

import (
	"errors"
	"fmt"
)

// Error categories. Every error returned by this package wraps exactly
// one of these sentinels, so callers can classify failures with errors.Is.
var (
	// ErrConfig marks invalid constructor or builder arguments.
	ErrConfig = errors.New("histlog: invalid configuration")
	// ErrValidation marks invalid logging call arguments.
	ErrValidation = errors.New("histlog: invalid log call")
	// ErrIO marks filesystem failures during append or rotation.
	ErrIO = errors.New("histlog: file sink failure")
)

// configErrorf wraps ErrConfig with a formatted detail message.
func configErrorf(format string, args ...any) error {
	return fmt.Errorf("%w: "+format, append([]any{ErrConfig}, args...)...)
}

// validationErrorf wraps ErrValidation with a formatted detail message.
func validationErrorf(format string, args ...any) error {
	return fmt.Errorf("%w: "+format, append([]any{ErrValidation}, args...)...)
}

// ioErrorf wraps ErrIO with a formatted detail message. The underlying
// OS error should be passed through %w so its chain stays inspectable.
func ioErrorf(format string, args ...any) error {
	return fmt.Errorf("%w: "+format, append([]any{ErrIO}, args...)...)
}
