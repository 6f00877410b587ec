package utils

import (
	"fmt"
	"net/http"
	"strings"

	"appraisalhub-properties/internal/errors"
)

// WrapError adds context to an error while preserving the original.
func WrapError(err error, message string, args ...interface{}) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", fmt.Sprintf(message, args...), err)
}

// IsRetryableError determines if an error is transient and worth retrying.
func IsRetryableError(err error) bool {
	if appErr, ok := err.(*errors.AppError); ok {
		return appErr.HTTPStatus == http.StatusServiceUnavailable ||
			strings.Contains(appErr.TechnicalMessage, "timeout") ||
			strings.Contains(appErr.TechnicalMessage, "connection")
	}
	return strings.Contains(err.Error(), "timeout") ||
		strings.Contains(err.Error(), "connection")
}
