// Package errors provides error handling and HTTP status code mapping.
package errors

import (
	"errors"
	"net/http"
	"strings"

	"github.com/keywarden/keywarden/internal/api/dto"
	"github.com/keywarden/keywarden/internal/certutil"
)

// Error codes for API responses.
const (
	CodeInvalidRequest  = "INVALID_REQUEST"
	CodeNotFound        = "NOT_FOUND"
	CodeValidation      = "VALIDATION_ERROR"
	CodeUnknownStandard = "UNKNOWN_STANDARD"
	CodeNotCertificate  = "NOT_A_CERTIFICATE"
	CodeUnsupportedKey  = "UNSUPPORTED_KEY"
	CodeInternal        = "INTERNAL_ERROR"
)

// MapError maps an internal error to an HTTP status code and APIError.
func MapError(err error) (int, *dto.APIError) {
	if err == nil {
		return http.StatusOK, nil
	}

	// Check for known assessment errors
	switch {
	case errors.Is(err, certutil.ErrNotCertificate):
		return http.StatusBadRequest, &dto.APIError{
			Code:    CodeNotCertificate,
			Message: err.Error(),
		}
	case errors.Is(err, certutil.ErrUnsupportedKey):
		return http.StatusUnprocessableEntity, &dto.APIError{
			Code:    CodeUnsupportedKey,
			Message: err.Error(),
		}
	}

	// Check for AssessError with operation context
	var assessErr *certutil.AssessError
	if errors.As(err, &assessErr) {
		return http.StatusInternalServerError, &dto.APIError{
			Code:    "ASSESS_" + strings.ToUpper(assessErr.Op) + "_ERROR",
			Message: assessErr.Error(),
			Details: map[string]string{
				"operation": assessErr.Op,
			},
		}
	}

	// Default internal error
	return http.StatusInternalServerError, &dto.APIError{
		Code:    CodeInternal,
		Message: "An internal error occurred",
	}
}

// NewBadRequest creates a bad request error.
func NewBadRequest(message string) *dto.APIError {
	return &dto.APIError{
		Code:    CodeInvalidRequest,
		Message: message,
	}
}

// NewNotFound creates a not found error.
func NewNotFound(resource, id string) *dto.APIError {
	return &dto.APIError{
		Code:    CodeNotFound,
		Message: resource + " not found",
		Details: map[string]string{"id": id},
	}
}

// NewUnknownStandard creates an error for an unregistered standard name.
func NewUnknownStandard(name string) *dto.APIError {
	return &dto.APIError{
		Code:    CodeUnknownStandard,
		Message: "unknown standard: " + name,
		Details: map[string]string{"standard": name},
	}
}

// NewValidationError creates a validation error.
func NewValidationError(message string, details map[string]string) *dto.APIError {
	return &dto.APIError{
		Code:    CodeValidation,
		Message: message,
		Details: details,
	}
}
