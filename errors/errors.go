// Package errors defines the structured application error type and the
// error taxonomy used across the request pipeline. Every handler-visible
// failure is an *AppError carrying the HTTP status the client should see.
package errors

import (
	"fmt"
	"net/http"

	"github.com/akshayraj-industries/website-backend/logger"
)

type ErrorType string

const (
	ValidationError       ErrorType = "VALIDATION_ERROR"
	RateLimitError        ErrorType = "RATE_LIMIT_EXCEEDED"
	DuplicateError        ErrorType = "DUPLICATE_SUBMISSION"
	MethodNotAllowedError ErrorType = "METHOD_NOT_ALLOWED"
	NotFoundError         ErrorType = "NOT_FOUND"
	AuthError             ErrorType = "AUTHENTICATION_ERROR"
	ForbiddenError        ErrorType = "FORBIDDEN"
	DatabaseError         ErrorType = "DATABASE_ERROR"
	ServerError           ErrorType = "SERVER_ERROR"
)

// AppError represents a structured application error.
type AppError struct {
	Type       ErrorType `json:"type"`
	Message    string    `json:"message"`
	Detail     string    `json:"detail,omitempty"`
	HTTPStatus int       `json:"-"`
	Raw        error     `json:"-"`
	// RetryAfterSeconds is set on rate-limit errors so the handler layer can
	// emit a Retry-After header.
	RetryAfterSeconds int `json:"-"`
}

func (e *AppError) Error() string {
	if e.Detail != "" {
		return fmt.Sprintf("%s: %s (%s)", e.Type, e.Message, e.Detail)
	}
	return fmt.Sprintf("%s: %s", e.Type, e.Message)
}

// Unwrap exposes the wrapped raw error, if any.
func (e *AppError) Unwrap() error {
	return e.Raw
}

// GetHTTPStatus returns the HTTP status for the error, defaulting to 500.
func (e *AppError) GetHTTPStatus() int {
	if e.HTTPStatus == 0 {
		return http.StatusInternalServerError
	}
	return e.HTTPStatus
}

func getHTTPStatus(errType ErrorType) int {
	switch errType {
	case ValidationError:
		return http.StatusUnprocessableEntity
	case RateLimitError:
		return http.StatusTooManyRequests
	case DuplicateError:
		return http.StatusConflict
	case MethodNotAllowedError:
		return http.StatusMethodNotAllowed
	case NotFoundError:
		return http.StatusNotFound
	case AuthError:
		return http.StatusUnauthorized
	case ForbiddenError:
		return http.StatusForbidden
	default:
		return http.StatusInternalServerError
	}
}

// New creates a new AppError.
func New(errType ErrorType, message string, detail string) *AppError {
	return &AppError{
		Type:       errType,
		Message:    message,
		Detail:     detail,
		HTTPStatus: getHTTPStatus(errType),
	}
}

// Wrap wraps a raw error with AppError context.
func Wrap(err error, errType ErrorType, message string) *AppError {
	if err == nil {
		return nil
	}
	return &AppError{
		Type:       errType,
		Message:    message,
		Detail:     err.Error(),
		HTTPStatus: getHTTPStatus(errType),
		Raw:        err,
	}
}

// ValidationFailed reports a client-fixable validation failure (422).
// Detail enumerates the offending fields.
func ValidationFailed(message string, details string) *AppError {
	return New(ValidationError, message, details)
}

// RateLimitExceeded reports that the caller must wait before retrying (429).
func RateLimitExceeded(message string, retryAfterSeconds int) *AppError {
	return &AppError{
		Type:              RateLimitError,
		Message:           message,
		HTTPStatus:        http.StatusTooManyRequests,
		RetryAfterSeconds: retryAfterSeconds,
	}
}

// DuplicateSubmission reports that an equivalent inquiry already exists (409).
func DuplicateSubmission(message string) *AppError {
	return New(DuplicateError, message, "")
}

// MethodNotAllowed reports a non-POST hit on a form endpoint (405).
func MethodNotAllowed() *AppError {
	return New(MethodNotAllowedError, "Invalid request method", "")
}

// NotFound reports a missing entity (404).
func NotFound(entity string, id interface{}) *AppError {
	return &AppError{
		Type:       NotFoundError,
		Message:    fmt.Sprintf("%s not found", entity),
		Detail:     fmt.Sprintf("ID: %v", id),
		HTTPStatus: http.StatusNotFound,
	}
}

// AuthenticationFailed reports a failed admin login or invalid token (401).
func AuthenticationFailed(message string) *AppError {
	return New(AuthError, message, "")
}

// Forbidden reports an authorization failure (403).
func Forbidden(message string, details string) *AppError {
	return New(ForbiddenError, message, details)
}

// NewDatabaseError logs the raw storage failure server-side and returns a
// sanitized 500 for the client. Nothing was persisted when this fires in the
// intake path, so no compensation is needed.
func NewDatabaseError(err error) *AppError {
	logger.GetLogger().Errorw("Database error", "error", err)
	return &AppError{
		Type:       DatabaseError,
		Message:    "An error occurred while processing your request. Please try again later.",
		HTTPStatus: http.StatusInternalServerError,
		Raw:        err,
	}
}

// InternalServerError reports a generic server-side failure (500).
func InternalServerError(message string) *AppError {
	return &AppError{
		Type:       ServerError,
		Message:    message,
		HTTPStatus: http.StatusInternalServerError,
	}
}
