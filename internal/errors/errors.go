package errors

import (
	"errors"
	"net/http"
)

var (
	// ErrDuplicateIdentity is returned when registering an email that is already taken.
	ErrDuplicateIdentity = errors.New("email already registered")
	// ErrAuthFailure is returned for bad credentials and for invalid or expired tokens.
	ErrAuthFailure = errors.New("could not validate credentials")
	// ErrModelUnavailable is returned when no predictor was loaded at startup.
	ErrModelUnavailable = errors.New("model not loaded")
	// ErrPasswordTooLong is returned for passwords bcrypt cannot hash (over 72 bytes).
	ErrPasswordTooLong = errors.New("password must be at most 72 bytes")
	// ErrScoringFailure matches every *ScoringError.
	ErrScoringFailure = errors.New("assessment failed")
)

// ScoringError wraps an unexpected failure while encoding or scoring an input.
type ScoringError struct {
	Cause error
}

// NewScoringError wraps cause as a scoring failure.
func NewScoringError(cause error) *ScoringError {
	return &ScoringError{Cause: cause}
}

func (e *ScoringError) Error() string {
	if e.Cause == nil {
		return ErrScoringFailure.Error()
	}
	return ErrScoringFailure.Error() + ": " + e.Cause.Error()
}

func (e *ScoringError) Unwrap() error {
	return e.Cause
}

// Is reports true for ErrScoringFailure so callers can match on the sentinel.
func (e *ScoringError) Is(target error) bool {
	return target == ErrScoringFailure
}

// ErrorResponse represents a standardized error response.
type ErrorResponse struct {
	Error string `json:"error"`
	Code  string `json:"code"`
}

// HTTPError represents an HTTP error with status code.
type HTTPError struct {
	StatusCode int
	Message    string
	Code       string
}

func (e *HTTPError) Error() string {
	return e.Message
}

// NewHTTPError creates a new HTTP error.
func NewHTTPError(statusCode int, message, code string) *HTTPError {
	return &HTTPError{
		StatusCode: statusCode,
		Message:    message,
		Code:       code,
	}
}

// ToErrorResponse converts an HTTPError to ErrorResponse.
func (e *HTTPError) ToErrorResponse() ErrorResponse {
	return ErrorResponse{
		Error: e.Message,
		Code:  e.Code,
	}
}

// MapErrorToHTTP maps domain errors to HTTP errors.
func MapErrorToHTTP(err error) *HTTPError {
	switch {
	case errors.Is(err, ErrDuplicateIdentity):
		return NewHTTPError(http.StatusBadRequest, ErrDuplicateIdentity.Error(), "DUPLICATE_IDENTITY")
	case errors.Is(err, ErrPasswordTooLong):
		return NewHTTPError(http.StatusBadRequest, ErrPasswordTooLong.Error(), "VALIDATION_ERROR")
	case errors.Is(err, ErrAuthFailure):
		return NewHTTPError(http.StatusUnauthorized, ErrAuthFailure.Error(), "AUTH_FAILURE")
	case errors.Is(err, ErrModelUnavailable):
		return NewHTTPError(http.StatusInternalServerError, ErrModelUnavailable.Error(), "MODEL_UNAVAILABLE")
	case errors.Is(err, ErrScoringFailure):
		msg := ErrScoringFailure.Error()
		var se *ScoringError
		if errors.As(err, &se) {
			msg = se.Error()
		}
		return NewHTTPError(http.StatusInternalServerError, msg, "SCORING_FAILED")
	default:
		return NewHTTPError(http.StatusInternalServerError, "internal server error", "INTERNAL_ERROR")
	}
}
