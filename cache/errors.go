package cache

import (
	goerrors "errors"

	"github.com/agilira/go-errors"
)

// Error codes reported by this package.
const (
	ErrCodeInvalidCapacity errors.ErrorCode = "LFU_INVALID_CAPACITY"
)

const msgInvalidCapacity = "invalid capacity: must be non-negative"

// NewErrInvalidCapacity creates the configuration error returned by New
// for a negative capacity.
func NewErrInvalidCapacity(capacity int) error {
	return errors.NewWithContext(ErrCodeInvalidCapacity, msgInvalidCapacity, map[string]interface{}{
		"provided_capacity": capacity,
		"minimum_required":  0,
	})
}

// IsConfigError reports whether err was caused by invalid Options.
func IsConfigError(err error) bool {
	return errors.HasCode(err, ErrCodeInvalidCapacity)
}

// ErrorCode extracts the error code from err, or "" if it carries none.
func ErrorCode(err error) errors.ErrorCode {
	if err == nil {
		return ""
	}
	var coder errors.ErrorCoder
	if goerrors.As(err, &coder) {
		return coder.ErrorCode()
	}
	return ""
}
