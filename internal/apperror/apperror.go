// Package apperror defines the application error taxonomy. Every rejected
// action carries a human-readable reason and maps to an HTTP status code.
package apperror

import (
	"errors"
	"fmt"
	"net/http"
)

// Kind classifies an application error.
type Kind int

const (
	// Validation covers empty or oversized content and malformed input.
	Validation Kind = iota
	// ModerationRejected means the content contained a prohibited word.
	ModerationRejected
	// RateLimited means the action was already taken today or a daily cap was hit.
	RateLimited
	// NotFound means the referenced entity does not exist.
	NotFound
	// Forbidden means the caller is not allowed to perform the action.
	Forbidden
	// Unauthenticated means the action requires a logged-in identity.
	Unauthenticated
	// Conflict means the entity already exists.
	Conflict
	// Internal covers unexpected failures.
	Internal
)

// Error is the application error type. Word is set only for moderation
// rejections and names the prohibited word that triggered the rejection.
type Error struct {
	Kind    Kind
	Message string
	Word    string
	Err     error
}

// Error returns the human-readable reason.
func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

// Unwrap returns the underlying error, if any.
func (e *Error) Unwrap() error {
	return e.Err
}

// StatusCode maps the error kind to an HTTP status code.
func (e *Error) StatusCode() int {
	switch e.Kind {
	case Validation, ModerationRejected:
		return http.StatusBadRequest
	case RateLimited:
		return http.StatusTooManyRequests
	case NotFound:
		return http.StatusNotFound
	case Forbidden:
		return http.StatusForbidden
	case Unauthenticated:
		return http.StatusUnauthorized
	case Conflict:
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

// NewValidation creates a validation error.
func NewValidation(message string) *Error {
	return &Error{Kind: Validation, Message: message}
}

// NewModerationRejected creates a moderation rejection naming the word.
func NewModerationRejected(word string) *Error {
	return &Error{
		Kind:    ModerationRejected,
		Message: fmt.Sprintf("Content contains prohibited word: %s", word),
		Word:    word,
	}
}

// NewRateLimited creates a rate-limit rejection.
func NewRateLimited(message string) *Error {
	return &Error{Kind: RateLimited, Message: message}
}

// NewNotFound creates a not-found error.
func NewNotFound(message string) *Error {
	return &Error{Kind: NotFound, Message: message}
}

// NewForbidden creates a forbidden error.
func NewForbidden(message string) *Error {
	return &Error{Kind: Forbidden, Message: message}
}

// NewUnauthenticated creates an unauthenticated error.
func NewUnauthenticated(message string) *Error {
	return &Error{Kind: Unauthenticated, Message: message}
}

// NewConflict creates a conflict error.
func NewConflict(message string) *Error {
	return &Error{Kind: Conflict, Message: message}
}

// NewInternal wraps an unexpected failure.
func NewInternal(message string, err error) *Error {
	return &Error{Kind: Internal, Message: message, Err: err}
}

// IsKind reports whether err is an application error of the given kind.
func IsKind(err error, kind Kind) bool {
	var appErr *Error
	if errors.As(err, &appErr) {
		return appErr.Kind == kind
	}
	return false
}
